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
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Source records what a model was built from.
type Source string

const (
	SourceDataset  Source = "dataset"
	SourceCorpus   Source = "corpus"
	SourceFallback Source = "fallback"
)

const DefaultMaxFeatures = 20000

type modelKind int

const (
	kindConstant modelKind = iota
	kindLinear
)

// Info describes a model without exposing its parameters.
type Info struct {
	TrainedAt time.Time `json:"trainedAt"`
	ID        string    `json:"id"`
	Source    Source    `json:"source"`
	Kind      string    `json:"kind"`
	Features  int       `json:"features"`
	Examples  int       `json:"examples"`
}

// Model is a trained sentiment classifier. It is never modified after it
// is built, so one instance can be shared by concurrent callers.
type Model struct {
	vectorizer *Vectorizer
	classifier *LogisticRegression
	info       Info
	classes    [2]string
	constant   string
	kind       modelKind
}

// TrainOptions control model fitting.
type TrainOptions struct {
	Clock         clockwork.Clock
	MaxFeatures   int
	MaxIterations int
	C             float64
}

func (o TrainOptions) withDefaults() TrainOptions {
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.MaxFeatures <= 0 {
		o.MaxFeatures = DefaultMaxFeatures
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.C <= 0 {
		o.C = DefaultC
	}
	return o
}

// Train fits a TF-IDF vectorizer and logistic regression to the dataset. A
// dataset with a single class produces a model that always predicts it.
//
//nolint:gocritic // options passed by value
func Train(ds *Dataset, src Source, opts TrainOptions) (*Model, error) {
	opts = opts.withDefaults()
	if ds == nil || ds.Len() == 0 {
		return nil, &TrainingError{Source: string(src), Err: errors.New("no training examples")}
	}
	if len(ds.Labels) != len(ds.Texts) {
		return nil, &TrainingError{
			Source: string(src),
			Err:    fmt.Errorf("%d texts but %d labels", len(ds.Texts), len(ds.Labels)),
		}
	}

	vec, err := FitVectorizer(ds.Texts, opts.MaxFeatures)
	if err != nil {
		return nil, &TrainingError{Source: string(src), Err: err}
	}

	info := Info{
		ID:        uuid.New().String(),
		TrainedAt: opts.Clock.Now(),
		Source:    src,
		Features:  vec.Features(),
		Examples:  ds.Len(),
	}

	var counts [2]int
	for i, l := range ds.Labels {
		if l != Negative && l != Positive {
			return nil, &TrainingError{Source: string(src), Err: fmt.Errorf("example %d has invalid label %d", i, l)}
		}
		counts[l]++
	}
	if counts[Negative] == 0 || counts[Positive] == 0 {
		majority := Negative
		if counts[Positive] > 0 {
			majority = Positive
		}
		log.Warn().
			Str("source", string(src)).
			Str("class", ds.Classes[majority]).
			Msg("training data has a single class, model will predict it for every input")
		info.Kind = "constant"
		return &Model{
			kind:       kindConstant,
			vectorizer: vec,
			classes:    ds.Classes,
			constant:   ds.Classes[majority],
			info:       info,
		}, nil
	}

	xs := make([]SparseVector, ds.Len())
	for i, text := range ds.Texts {
		xs[i] = vec.Transform(text)
	}

	clf, err := fitLogistic(xs, ds.Labels, vec.Features(), opts.C, opts.MaxIterations)
	if err != nil {
		return nil, &TrainingError{Source: string(src), Err: err}
	}

	info.Kind = "linear"
	log.Info().
		Str("source", string(src)).
		Int("examples", ds.Len()).
		Int("features", vec.Features()).
		Msg("trained sentiment model")

	return &Model{
		kind:       kindLinear,
		vectorizer: vec,
		classifier: clf,
		classes:    ds.Classes,
		info:       info,
	}, nil
}

// NewFallback returns a model that predicts the default class for every
// non-empty input.
func NewFallback(clock clockwork.Clock) *Model {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Model{
		kind:     kindConstant,
		classes:  numericClasses,
		constant: numericClasses[Negative],
		info: Info{
			ID:        uuid.New().String(),
			TrainedAt: clock.Now(),
			Source:    SourceFallback,
			Kind:      "constant",
		},
	}
}

// Predict classifies text. Empty text is "unknown", every other input is
// "pos" or "neg".
func (m *Model) Predict(text string) Prediction {
	if text == "" {
		return PredictionUnknown
	}
	return interpretClass(m.rawClass(text))
}

// rawClass returns the class name the underlying classifier picks.
func (m *Model) rawClass(text string) string {
	if m.kind == kindConstant || m.classifier == nil {
		return m.constant
	}
	if m.classifier.Decision(m.vectorizer.Transform(text)) > 0 {
		return m.classes[Positive]
	}
	return m.classes[Negative]
}

// PositiveProbability returns the classifier's estimate that text is
// positive. Constant models return 1 or 0.
func (m *Model) PositiveProbability(text string) float64 {
	if m.kind == kindConstant || m.classifier == nil {
		if interpretClass(m.constant) == PredictionPositive {
			return 1
		}
		return 0
	}
	return m.classifier.Probability(m.vectorizer.Transform(text))
}

func (m *Model) Info() Info {
	return m.info
}

// IsFallback reports whether the model ignores its input.
func (m *Model) IsFallback() bool {
	return m.kind == kindConstant
}
