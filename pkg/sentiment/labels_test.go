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

package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    any
		name     string
		expected Label
	}{
		{name: "nil", input: nil, expected: Negative},
		{name: "zero", input: 0, expected: Negative},
		{name: "one", input: 1, expected: Positive},
		{name: "negative number", input: -3, expected: Negative},
		{name: "large number", input: 10, expected: Positive},
		{name: "fraction below one", input: 0.99, expected: Negative},
		{name: "float one", input: 1.0, expected: Positive},
		{name: "NaN", input: math.NaN(), expected: Negative},
		{name: "int64", input: int64(2), expected: Positive},
		{name: "float32", input: float32(0.5), expected: Negative},
		{name: "bool true", input: true, expected: Positive},
		{name: "bool false", input: false, expected: Negative},
		{name: "Positive mixed case", input: "Positive", expected: Positive},
		{name: "neg", input: "neg", expected: Negative},
		{name: "yes", input: "yes", expected: Positive},
		{name: "padded upper", input: "  POS ", expected: Positive},
		{name: "string one", input: "1", expected: Positive},
		{name: "string two", input: "2", expected: Negative},
		{name: "true", input: "TRUE", expected: Positive},
		{name: "t", input: "t", expected: Positive},
		{name: "y", input: "Y", expected: Positive},
		{name: "unknown word", input: "banana", expected: Negative},
		{name: "empty string", input: "", expected: Negative},
		{name: "unsupported type", input: []int{1}, expected: Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeLabel(tt.input))
		})
	}
}

// TestPropertyNormalizeLabelIsBinary verifies every string maps to a binary label.
func TestPropertyNormalizeLabelIsBinary(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		l := NormalizeLabel(s)
		if l != Positive && l != Negative {
			t.Fatalf("label %d for %q", l, s)
		}
	})
}

// TestPropertyNormalizeLabelNumericThreshold verifies numbers split at one.
func TestPropertyNormalizeLabelNumericThreshold(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Float64().Draw(t, "v")
		want := Negative
		if v >= 1 {
			want = Positive
		}
		if got := NormalizeLabel(v); got != want {
			t.Fatalf("NormalizeLabel(%v) = %d, want %d", v, got, want)
		}
	})
}

func TestTypeColumn(t *testing.T) {
	t.Parallel()

	t.Run("numeric column", func(t *testing.T) {
		t.Parallel()
		got := typeColumn([]string{"1", "0", "", "2.5"})
		assert.Equal(t, []any{1.0, 0.0, nil, 2.5}, got)
	})

	t.Run("mixed column keeps strings", func(t *testing.T) {
		t.Parallel()
		got := typeColumn([]string{"1", "pos", "NA"})
		assert.Equal(t, []any{"1", "pos", nil}, got)
	})

	t.Run("numeric strings in text column", func(t *testing.T) {
		t.Parallel()
		// "2" is numeric-positive only in a numeric column
		labels := []Label{}
		for _, v := range typeColumn([]string{"2", "neg"}) {
			labels = append(labels, NormalizeLabel(v))
		}
		assert.Equal(t, []Label{Negative, Negative}, labels)

		labels = labels[:0]
		for _, v := range typeColumn([]string{"2", "0"}) {
			labels = append(labels, NormalizeLabel(v))
		}
		assert.Equal(t, []Label{Positive, Negative}, labels)
	})
}

func TestInterpretClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected Prediction
	}{
		{raw: "1", expected: PredictionPositive},
		{raw: "0", expected: PredictionNegative},
		{raw: "1.0", expected: PredictionPositive},
		{raw: "2", expected: PredictionNegative},
		{raw: "pos", expected: PredictionPositive},
		{raw: "Positive", expected: PredictionPositive},
		{raw: "neg", expected: PredictionNegative},
		{raw: "yes", expected: PredictionPositive},
		{raw: "whatever", expected: PredictionNegative},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, interpretClass(tt.raw))
		})
	}
}
