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
	DefaultRatingThreshold = 7.0
	DefaultMaxFeatures     = 20000
	DefaultMaxIterations   = 2000
)

type Sentiment struct {
	ModelPath       string  `toml:"model_path" validate:"required"`
	DatasetPath     string  `toml:"dataset_path,omitempty"`
	CorpusDir       string  `toml:"corpus_dir,omitempty"`
	RatingThreshold float64 `toml:"rating_threshold"`
	MaxFeatures     int     `toml:"max_features" validate:"gte=1"`
	MaxIterations   int     `toml:"max_iterations" validate:"gte=1"`
}

func (c *Instance) ModelPath(dataDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return resolvePath(dataDir, c.vals.Sentiment.ModelPath)
}

// DatasetPath returns the primary training CSV, or an empty string if
// primary training is disabled.
func (c *Instance) DatasetPath(dataDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return resolvePath(dataDir, c.vals.Sentiment.DatasetPath)
}

// CorpusDir returns the legacy pos/neg corpus directory, or an empty string
// if it's disabled.
func (c *Instance) CorpusDir(dataDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return resolvePath(dataDir, c.vals.Sentiment.CorpusDir)
}

func (c *Instance) RatingThreshold() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Sentiment.RatingThreshold
}

func (c *Instance) MaxFeatures() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Sentiment.MaxFeatures
}

func (c *Instance) MaxIterations() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Sentiment.MaxIterations
}
