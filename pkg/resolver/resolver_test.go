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
	"strings"
	"testing"

	"github.com/ZaparooProject/marquee/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type staticSource struct {
	cat *catalog.Catalog
}

func (s staticSource) Catalog() *catalog.Catalog {
	return s.cat
}

func newResolver(t *testing.T, opts Options, titles ...string) *Resolver {
	t.Helper()
	records := make([]catalog.Record, len(titles))
	for i, title := range titles {
		records[i] = catalog.Record{Title: title}
	}
	r, err := New(staticSource{cat: catalog.New(records)}, opts)
	require.NoError(t, err)
	return r
}

func titlesOf(records []catalog.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func TestResolve_Exact(t *testing.T) {
	t.Parallel()

	r := newResolver(t, Options{}, "The Matrix", "Inception", "Matrix Reloaded")
	res := r.Resolve("matrix")

	assert.Equal(t, []string{"The Matrix", "Matrix Reloaded"}, titlesOf(res.ExactMatches))
	assert.Empty(t, res.Suggestions)
	assert.Nil(t, res.Correction)
	assert.Equal(t, OutcomeExact, res.Outcome())
}

func TestResolve_Correction(t *testing.T) {
	t.Parallel()

	r := newResolver(t, Options{}, "Interstellar")
	res := r.Resolve("Intersteller")

	require.NotNil(t, res.Correction)
	assert.Equal(t, "Interstellar", *res.Correction)
	assert.Equal(t, []string{"Interstellar"}, res.Suggestions)
	assert.Equal(t, []string{"Interstellar"}, titlesOf(res.ExactMatches))
	assert.Equal(t, OutcomeCorrected, res.Outcome())
}

func TestResolve_CorrectionIncludesContainingTitles(t *testing.T) {
	t.Parallel()

	r := newResolver(t, Options{}, "Alien", "Aliens", "Heat")
	res := r.Resolve("Alein")

	require.NotNil(t, res.Correction)
	assert.Equal(t, "Alien", *res.Correction)
	assert.Equal(t, []string{"Alien", "Aliens"}, titlesOf(res.ExactMatches))
}

func TestResolve_NoMatch(t *testing.T) {
	t.Parallel()

	r := newResolver(t, Options{}, "Inception")
	res := r.Resolve("xyzzyqqq")

	assert.Empty(t, res.ExactMatches)
	assert.Empty(t, res.Suggestions)
	assert.Nil(t, res.Correction)
	assert.Equal(t, OutcomeNone, res.Outcome())
}

func TestResolve_SuggestionsWithoutCorrection(t *testing.T) {
	t.Parallel()

	r := newResolver(t, Options{CorrectCutoff: 0.99}, "Heat", "Heathers")
	res := r.Resolve("Haet")

	assert.Nil(t, res.Correction)
	assert.Empty(t, res.ExactMatches)
	assert.Equal(t, []string{"Heat"}, res.Suggestions)
	assert.Equal(t, OutcomeSuggested, res.Outcome())
}

func TestResolve_EmptyQuery(t *testing.T) {
	t.Parallel()

	r := newResolver(t, Options{}, "Heat")
	for _, q := range []string{"", "   ", "\t\n"} {
		res := r.Resolve(q)
		assert.Empty(t, res.ExactMatches)
		assert.Empty(t, res.Suggestions)
		assert.Nil(t, res.Correction)
	}
}

func TestResolve_TrimsQuery(t *testing.T) {
	t.Parallel()

	r := newResolver(t, Options{}, "Heat")
	assert.Equal(t, []string{"Heat"}, titlesOf(r.Resolve("  heat ").ExactMatches))
}

func TestResolve_EmptyCatalog(t *testing.T) {
	t.Parallel()

	r := newResolver(t, Options{})
	res := r.Resolve("anything")
	assert.Equal(t, OutcomeNone, res.Outcome())
}

func TestResolve_BlankTitlesNeverMatch(t *testing.T) {
	t.Parallel()

	r := newResolver(t, Options{}, "", "Heat", "")
	res := r.Resolve("e")
	assert.Equal(t, []string{"Heat"}, titlesOf(res.ExactMatches))
}

func TestResolve_SuggestionLimitAndOrder(t *testing.T) {
	t.Parallel()

	titles := []string{"Star Wars", "Star Wars", "Star Wars", "Star Warz", "Star Wart", "Star Ware", "Star Warp", "Star Wan"}
	r := newResolver(t, Options{MaxSuggestions: 3}, titles...)
	res := r.Resolve("Star Wxrs")

	assert.Equal(t, []string{"Star Wars", "Star Warz", "Star Wart"}, res.Suggestions)
}

func TestResolve_FuzzyPhaseIsCaseSensitive(t *testing.T) {
	t.Parallel()

	// the lowercase query shares few characters with the uppercase title
	r := newResolver(t, Options{}, "ALIEN")
	res := r.Resolve("alein")
	assert.Empty(t, res.Suggestions)
	assert.Nil(t, res.Correction)
}

func TestResolve_UnicodeTitles(t *testing.T) {
	t.Parallel()

	r := newResolver(t, Options{}, "Amélie")
	res := r.Resolve("AMÉLIE")
	assert.Equal(t, []string{"Amélie"}, titlesOf(res.ExactMatches))
}

func TestResolve_AlternativeMetrics(t *testing.T) {
	t.Parallel()

	for _, metric := range []string{MetricLevenshtein, MetricDamerauLevenshtein, MetricJaroWinkler, MetricLCS} {
		t.Run(metric, func(t *testing.T) {
			t.Parallel()
			r := newResolver(t, Options{Similarity: metric}, "Interstellar", "Inception")
			res := r.Resolve("Intersteller")
			require.NotNil(t, res.Correction)
			assert.Equal(t, "Interstellar", *res.Correction)
		})
	}
}

func TestNew_UnknownMetric(t *testing.T) {
	t.Parallel()

	_, err := New(staticSource{cat: catalog.New(nil)}, Options{Similarity: "soundex"})
	require.Error(t, err)
}

func TestRatio(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Ratio("abc", "abc"), 1e-9)
	assert.InDelta(t, 0.0, Ratio("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, Ratio("abcd", "bcde"), 1e-9)
	assert.InDelta(t, 22.0/24.0, Ratio("interstellar", "intersteller"), 1e-9)
}

func TestResolve_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		titles := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z ]{0,12}`), 0, 20).Draw(t, "titles")
		query := rapid.StringMatching(`[A-Za-z ]{0,12}`).Draw(t, "query")

		records := make([]catalog.Record, len(titles))
		for i, title := range titles {
			records[i] = catalog.Record{Title: title}
		}
		r, err := New(staticSource{cat: catalog.New(records)}, Options{})
		if err != nil {
			t.Fatal(err)
		}
		res := r.Resolve(query)

		if len(res.Suggestions) > DefaultMaxSuggestions {
			t.Fatalf("too many suggestions: %v", res.Suggestions)
		}
		seen := map[string]bool{}
		for _, s := range res.Suggestions {
			if seen[s] {
				t.Fatalf("duplicate suggestion %q", s)
			}
			seen[s] = true
		}

		if res.Correction != nil {
			if len(res.Suggestions) == 0 || res.Suggestions[0] != *res.Correction {
				t.Fatalf("correction %q is not the top suggestion", *res.Correction)
			}
			needle := catalog.Fold(*res.Correction)
			for _, rec := range res.ExactMatches {
				if !strings.Contains(catalog.Fold(rec.Title), needle) {
					t.Fatalf("match %q does not contain correction %q", rec.Title, *res.Correction)
				}
			}
			found := false
			for _, rec := range res.ExactMatches {
				if catalog.Fold(rec.Title) == needle {
					found = true
				}
			}
			if !found {
				t.Fatalf("correction %q missing from matches", *res.Correction)
			}
			return
		}

		if len(res.ExactMatches) > 0 && len(res.Suggestions) > 0 {
			t.Fatal("suggestions alongside exact matches")
		}
		needle := catalog.Fold(strings.TrimSpace(query))
		for _, rec := range res.ExactMatches {
			if !strings.Contains(catalog.Fold(rec.Title), needle) {
				t.Fatalf("match %q does not contain query %q", rec.Title, query)
			}
		}
	})
}
