// Marquee
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <http://www.gnu.org/licenses/>.

// Package sentiment trains and serves a binary movie review sentiment
// classifier.
package sentiment

import (
	"math"
	"strconv"
	"strings"
)

// Label is a canonical binary sentiment label.
type Label int

const (
	Negative Label = 0
	Positive Label = 1
)

func (l Label) String() string {
	if l == Positive {
		return string(PredictionPositive)
	}
	return string(PredictionNegative)
}

// Prediction is the public answer of a Model.
type Prediction string

const (
	PredictionPositive Prediction = "pos"
	PredictionNegative Prediction = "neg"
	PredictionUnknown  Prediction = "unknown"
)

var positiveSynonyms = map[string]struct{}{
	"pos":      {},
	"positive": {},
	"1":        {},
	"true":     {},
	"t":        {},
	"y":        {},
	"yes":      {},
}

// missingTokens are cell values read as missing rather than as text, the
// same set common dataframe readers use.
var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// NormalizeLabel maps a raw label of any shape to Positive or Negative.
// Missing values and unrecognized strings are Negative.
func NormalizeLabel(v any) Label {
	switch x := v.(type) {
	case nil:
		return Negative
	case bool:
		if x {
			return Positive
		}
		return Negative
	case int:
		return numericLabel(float64(x))
	case int8:
		return numericLabel(float64(x))
	case int16:
		return numericLabel(float64(x))
	case int32:
		return numericLabel(float64(x))
	case int64:
		return numericLabel(float64(x))
	case uint:
		return numericLabel(float64(x))
	case uint8:
		return numericLabel(float64(x))
	case uint16:
		return numericLabel(float64(x))
	case uint32:
		return numericLabel(float64(x))
	case uint64:
		return numericLabel(float64(x))
	case float32:
		return numericLabel(float64(x))
	case float64:
		return numericLabel(x)
	case string:
		return stringLabel(x)
	default:
		return Negative
	}
}

func numericLabel(v float64) Label {
	// NaN compares false and lands on Negative
	if v >= 1 {
		return Positive
	}
	return Negative
}

func stringLabel(s string) Label {
	if _, ok := positiveSynonyms[strings.ToLower(strings.TrimSpace(s))]; ok {
		return Positive
	}
	return Negative
}

func isMissing(cell string) bool {
	_, ok := missingTokens[strings.TrimSpace(cell)]
	return ok
}

// typeColumn converts raw CSV cells to typed values for NormalizeLabel. A
// column where every present cell is numeric becomes float64 values,
// otherwise present cells stay strings. Missing cells are nil.
func typeColumn(cells []string) []any {
	out := make([]any, len(cells))
	nums := make([]float64, len(cells))
	numeric := true
	for i, c := range cells {
		if isMissing(c) {
			nums[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			numeric = false
			break
		}
		nums[i] = f
	}

	for i, c := range cells {
		switch {
		case isMissing(c):
			out[i] = nil
		case numeric:
			out[i] = nums[i]
		default:
			out[i] = c
		}
	}
	return out
}

// interpretClass maps a raw classifier class name to a Prediction. Numeric
// names are positive only when equal to 1; other names go through the
// positive synonym set.
func interpretClass(raw string) Prediction {
	if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		if math.Trunc(f) == 1 {
			return PredictionPositive
		}
		return PredictionNegative
	}
	if stringLabel(raw) == Positive {
		return PredictionPositive
	}
	return PredictionNegative
}
