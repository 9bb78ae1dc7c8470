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

package config

const (
	DefaultMaxSuggestions = 5
	DefaultSuggestCutoff  = 0.6
	DefaultCorrectCutoff  = 0.75
)

// Similarity algorithm names accepted by resolver.similarity.
const (
	SimilarityRatio              = "ratio"
	SimilarityLevenshtein        = "levenshtein"
	SimilarityDamerauLevenshtein = "damerau-levenshtein"
	SimilarityJaroWinkler        = "jaro-winkler"
	SimilarityLCS                = "lcs"
)

type Resolver struct {
	Similarity     string  `toml:"similarity,omitempty" validate:"omitempty,oneof=ratio levenshtein damerau-levenshtein jaro-winkler lcs"` //nolint:lll // validator tag
	MaxSuggestions int     `toml:"max_suggestions" validate:"gte=1,lte=50"`
	SuggestCutoff  float64 `toml:"suggest_cutoff" validate:"gte=0,lte=1"`
	CorrectCutoff  float64 `toml:"correct_cutoff" validate:"gte=0,lte=1"`
}

func (c *Instance) MaxSuggestions() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Resolver.MaxSuggestions
}

func (c *Instance) SuggestCutoff() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Resolver.SuggestCutoff
}

func (c *Instance) CorrectCutoff() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Resolver.CorrectCutoff
}

func (c *Instance) Similarity() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Resolver.Similarity == "" {
		return SimilarityRatio
	}
	return c.vals.Resolver.Similarity
}
