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

// Package resolver maps a free-text movie title query to catalog records,
// tolerating typos.
package resolver

import (
	"sort"
	"strings"

	"github.com/ZaparooProject/marquee/pkg/catalog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultMaxSuggestions = 5
	DefaultSuggestCutoff  = 0.6
	DefaultCorrectCutoff  = 0.75
)

// Outcome classifies a Result.
type Outcome string

const (
	OutcomeExact     Outcome = "exact"
	OutcomeCorrected Outcome = "corrected"
	OutcomeSuggested Outcome = "suggested"
	OutcomeNone      Outcome = "none"
)

// Source supplies the catalog to search. *catalog.Index implements it.
type Source interface {
	Catalog() *catalog.Catalog
}

// Result is the answer to one query. Suggestions are ordered best first.
// Correction is set only when the best suggestion was close enough to be
// treated as the intended title, in which case ExactMatches holds the
// records for the correction.
type Result struct {
	Correction   *string          `json:"correction"`
	ExactMatches []catalog.Record `json:"exactMatches"`
	Suggestions  []string         `json:"suggestions"`
}

func (r *Result) Outcome() Outcome {
	switch {
	case r.Correction != nil:
		return OutcomeCorrected
	case len(r.ExactMatches) > 0:
		return OutcomeExact
	case len(r.Suggestions) > 0:
		return OutcomeSuggested
	default:
		return OutcomeNone
	}
}

type Options struct {
	Similarity     string
	MaxSuggestions int
	SuggestCutoff  float64
	CorrectCutoff  float64
}

type Resolver struct {
	source     Source
	similarity Similarity
	metric     string
	opts       Options
}

// New returns a resolver over src. Zero option values take the defaults.
func New(src Source, opts Options) (*Resolver, error) {
	sim, err := SimilarityFor(opts.Similarity)
	if err != nil {
		return nil, err
	}
	if opts.Similarity == "" {
		opts.Similarity = MetricRatio
	}
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = DefaultMaxSuggestions
	}
	if opts.SuggestCutoff <= 0 {
		opts.SuggestCutoff = DefaultSuggestCutoff
	}
	if opts.CorrectCutoff <= 0 {
		opts.CorrectCutoff = DefaultCorrectCutoff
	}
	return &Resolver{
		source:     src,
		similarity: sim,
		metric:     opts.Similarity,
		opts:       opts,
	}, nil
}

// Resolve looks query up in the catalog. It never fails: a query that
// matches nothing yields an empty result.
func (r *Resolver) Resolve(query string) Result {
	res := Result{
		ExactMatches: []catalog.Record{},
		Suggestions:  []string{},
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return res
	}

	cat := r.source.Catalog()
	res.ExactMatches = exactMatches(cat, q)
	if len(res.ExactMatches) > 0 {
		return res
	}

	titles := cat.Titles()
	if len(titles) == 0 {
		return res
	}

	res.Suggestions = r.closeMatches(q, titles)
	if len(res.Suggestions) == 0 {
		return res
	}

	best := res.Suggestions[0]
	score := r.similarity(catalog.Fold(q), catalog.Fold(best))
	log.Debug().
		Str("query", q).
		Str("best", best).
		Float64("score", score).
		Msg("resolver best suggestion")
	if score >= r.opts.CorrectCutoff {
		res.Correction = &best
		res.ExactMatches = exactMatches(cat, best)
	}
	return res
}

// exactMatches returns every record whose title contains q, ignoring case,
// in catalog order.
func exactMatches(cat *catalog.Catalog, q string) []catalog.Record {
	needle := catalog.Fold(q)
	matches := []catalog.Record{}
	for i := range cat.Len() {
		rec, folded := cat.Record(i)
		if rec.Title != "" && strings.Contains(folded, needle) {
			matches = append(matches, rec)
		}
	}
	return matches
}

type scored struct {
	title string
	score float64
}

// closeMatches ranks distinct titles by similarity to q, keeping at most
// MaxSuggestions that reach SuggestCutoff. Equal scores keep catalog order.
func (r *Resolver) closeMatches(q string, titles []string) []string {
	var score scoreFunc
	if r.metric == MetricRatio {
		score = ratioScorer(q, r.opts.SuggestCutoff)
	} else {
		score = metricScorer(r.similarity, q, r.opts.SuggestCutoff)
	}

	seen := make(map[string]struct{}, len(titles))
	var candidates []scored
	for _, title := range titles {
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		if s, ok := score(title); ok {
			candidates = append(candidates, scored{title: title, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > r.opts.MaxSuggestions {
		candidates = candidates[:r.opts.MaxSuggestions]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.title
	}
	return out
}
