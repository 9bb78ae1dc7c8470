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

package resolver

import (
	"fmt"

	"github.com/hbollon/go-edlib"
	"github.com/pmezard/go-difflib/difflib"
)

// Metric names accepted by SimilarityFor.
const (
	MetricRatio              = "ratio"
	MetricLevenshtein        = "levenshtein"
	MetricDamerauLevenshtein = "damerau-levenshtein"
	MetricJaroWinkler        = "jaro-winkler"
	MetricLCS                = "lcs"
)

// Similarity scores two strings in [0, 1], where 1 is identical.
type Similarity func(a, b string) float64

// SimilarityFor returns the named metric. An empty name is MetricRatio.
func SimilarityFor(name string) (Similarity, error) {
	switch name {
	case "", MetricRatio:
		return Ratio, nil
	case MetricLevenshtein:
		return edlibMetric(edlib.Levenshtein), nil
	case MetricDamerauLevenshtein:
		return edlibMetric(edlib.DamerauLevenshtein), nil
	case MetricJaroWinkler:
		return func(a, b string) float64 {
			return float64(edlib.JaroWinklerSimilarity(a, b))
		}, nil
	case MetricLCS:
		return edlibMetric(edlib.Lcs), nil
	default:
		return nil, fmt.Errorf("unknown similarity metric: %q", name)
	}
}

func edlibMetric(algo edlib.Algorithm) Similarity {
	return func(a, b string) float64 {
		sim, err := edlib.StringsSimilarity(a, b, algo)
		if err != nil {
			return 0
		}
		return float64(sim)
	}
}

// Ratio is the sequence matcher similarity 2*M/T, where M counts the
// characters in matching blocks and T is the combined length.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// scoreFunc scores one candidate against a fixed query. ok is false when the
// candidate is known to fall below the cutoff.
type scoreFunc func(candidate string) (score float64, ok bool)

// ratioScorer reuses one matcher for the query and applies the cheap upper
// bounds before computing the full ratio.
func ratioScorer(query string, cutoff float64) scoreFunc {
	m := difflib.NewMatcher(nil, chars(query))
	return func(candidate string) (float64, bool) {
		m.SetSeq1(chars(candidate))
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			return 0, false
		}
		r := m.Ratio()
		return r, r >= cutoff
	}
}

func metricScorer(sim Similarity, query string, cutoff float64) scoreFunc {
	return func(candidate string) (float64, bool) {
		s := sim(candidate, query)
		return s, s >= cutoff
	}
}
