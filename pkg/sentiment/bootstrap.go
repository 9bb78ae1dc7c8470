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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ZaparooProject/marquee/pkg/helpers/syncutil"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Step names a stage of the bootstrap sequence.
type Step string

const (
	StepArtifact Step = "artifact"
	StepDataset  Step = "dataset"
	StepCorpus   Step = "corpus"
	StepFallback Step = "fallback"
)

// Attempt is one bootstrap step that did not produce a model.
type Attempt struct {
	Err  error
	Step Step
}

// Outcome is the result of bootstrapping: the model and the step that
// produced it, plus every step that failed before it.
type Outcome struct {
	Model    *Model
	Step     Step
	Failures []Attempt
	Duration time.Duration
}

// BootstrapOptions locate the training sources. Empty paths disable the
// matching step.
type BootstrapOptions struct {
	Clock           clockwork.Clock
	Store           *FileStore
	DatasetPath     string
	CorpusDir       string
	Train           TrainOptions
	RatingThreshold float64
	// SkipArtifact ignores any persisted model and retrains.
	SkipArtifact bool
}

// Bootstrapper builds the process's sentiment model exactly once. It tries
// the persisted artifact, then the primary dataset, then the legacy corpus,
// and finally settles on the constant fallback model.
type Bootstrapper struct {
	fs      afero.Fs
	outcome *Outcome
	opts    BootstrapOptions
	mu      syncutil.Mutex
}

//nolint:gocritic // options passed by value
func NewBootstrapper(afs afero.Fs, opts BootstrapOptions) *Bootstrapper {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Train.Clock == nil {
		opts.Train.Clock = opts.Clock
	}
	return &Bootstrapper{fs: afs, opts: opts}
}

type bootstrapStep struct {
	run  func() (*Model, error)
	step Step
}

// Run returns the bootstrapped model, building it on the first call.
// Concurrent and repeated calls share one outcome. Run never fails: a
// cancelled context skips the remaining training steps and yields the
// fallback model.
func (b *Bootstrapper) Run(ctx context.Context) *Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.outcome != nil {
		return b.outcome
	}

	start := b.opts.Clock.Now()
	steps := []bootstrapStep{
		{step: StepArtifact, run: b.restore},
		{step: StepDataset, run: b.trainDataset},
		{step: StepCorpus, run: b.trainCorpus},
	}

	outcome := &Outcome{}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			outcome.Failures = append(outcome.Failures, Attempt{Step: s.step, Err: err})
			continue
		}

		m, err := s.run()
		if err != nil {
			log.Warn().Err(err).Str("step", string(s.step)).Msg("sentiment model source unavailable")
			outcome.Failures = append(outcome.Failures, Attempt{Step: s.step, Err: err})
			continue
		}

		outcome.Model = m
		outcome.Step = s.step
		break
	}

	if outcome.Model == nil {
		log.Warn().Msg("no sentiment training data available, using fallback model")
		outcome.Model = NewFallback(b.opts.Clock)
		outcome.Step = StepFallback
	}

	outcome.Duration = b.opts.Clock.Since(start)
	log.Info().
		Str("step", string(outcome.Step)).
		Str("model", outcome.Model.Info().ID).
		Dur("took", outcome.Duration).
		Msg("sentiment model ready")

	b.outcome = outcome
	return outcome
}

// Outcome returns the result of a completed Run, or nil.
func (b *Bootstrapper) Outcome() *Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.outcome
}

func (b *Bootstrapper) restore() (*Model, error) {
	if b.opts.SkipArtifact {
		return nil, errors.New("persisted model ignored")
	}
	if b.opts.Store == nil {
		return nil, fmt.Errorf("%w: no artifact store", ErrLoad)
	}
	return b.opts.Store.Load()
}

func (b *Bootstrapper) trainDataset() (*Model, error) {
	if b.opts.DatasetPath == "" {
		return nil, fmt.Errorf("%w: dataset disabled", ErrSourceMissing)
	}
	ds, err := LoadDataset(b.fs, b.opts.DatasetPath, b.opts.RatingThreshold)
	if err != nil {
		return nil, err
	}
	return b.trainAndPersist(ds, SourceDataset)
}

func (b *Bootstrapper) trainCorpus() (*Model, error) {
	if b.opts.CorpusDir == "" {
		return nil, fmt.Errorf("%w: corpus disabled", ErrSourceMissing)
	}
	ds, err := LoadCorpus(b.fs, b.opts.CorpusDir)
	if err != nil {
		return nil, err
	}
	return b.trainAndPersist(ds, SourceCorpus)
}

func (b *Bootstrapper) trainAndPersist(ds *Dataset, src Source) (*Model, error) {
	m, err := Train(ds, src, b.opts.Train)
	if err != nil {
		return nil, err
	}
	if b.opts.Store != nil {
		if err := b.opts.Store.Save(m); err != nil {
			log.Warn().Err(err).Msg("failed to persist sentiment model")
		}
	}
	return m, nil
}
