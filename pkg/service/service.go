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

package service

import (
	"context"
	"fmt"
	"net"
	"path/filepath"

	"github.com/ZaparooProject/marquee/pkg/api"
	"github.com/ZaparooProject/marquee/pkg/catalog"
	"github.com/ZaparooProject/marquee/pkg/config"
	"github.com/ZaparooProject/marquee/pkg/helpers"
	"github.com/ZaparooProject/marquee/pkg/metrics"
	"github.com/ZaparooProject/marquee/pkg/resolver"
	"github.com/ZaparooProject/marquee/pkg/sentiment"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

var modelSources = []string{
	string(sentiment.StepArtifact),
	string(sentiment.StepDataset),
	string(sentiment.StepCorpus),
	string(sentiment.StepFallback),
}

// Options adjust how the core is built. The zero value uses the real clock,
// the default data dir and a new metrics registry.
type Options struct {
	Clock   clockwork.Clock
	Metrics *metrics.Metrics
	// Listener replaces the configured API address when set.
	Listener net.Listener
	DataDir  string
	// Retrain ignores the persisted model artifact.
	Retrain bool
}

func (o *Options) setDefaults() {
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.Metrics == nil {
		o.Metrics = metrics.New()
	}
	if o.DataDir == "" {
		o.DataDir = helpers.DataDir()
	}
}

// Core holds the bootstrapped model and the catalog resolver.
type Core struct {
	Model    *sentiment.Model
	Outcome  *sentiment.Outcome
	Index    *catalog.Index
	Resolver *resolver.Resolver
}

// NewCore bootstraps the sentiment model and loads the catalog at the same
// time. Bootstrapping never fails on missing or broken data; the only errors
// are bad resolver settings or a cancelled context.
func NewCore(ctx context.Context, afs afero.Fs, cfg *config.Instance, opts Options) (*Core, error) {
	opts.setDefaults()

	ix := catalog.NewIndex(afs, cfg.CatalogPath(opts.DataDir))
	ix.OnReload(opts.Metrics.CatalogReloaded)

	res, err := resolver.New(ix, resolver.Options{
		Similarity:     cfg.Similarity(),
		MaxSuggestions: cfg.MaxSuggestions(),
		SuggestCutoff:  cfg.SuggestCutoff(),
		CorrectCutoff:  cfg.CorrectCutoff(),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid resolver settings: %w", err)
	}

	boot := sentiment.NewBootstrapper(afs, sentiment.BootstrapOptions{
		Clock:           opts.Clock,
		Store:           sentiment.NewFileStore(afs, cfg.ModelPath(opts.DataDir)),
		DatasetPath:     cfg.DatasetPath(opts.DataDir),
		CorpusDir:       cfg.CorpusDir(opts.DataDir),
		RatingThreshold: cfg.RatingThreshold(),
		SkipArtifact:    opts.Retrain,
		Train: sentiment.TrainOptions{
			MaxFeatures:   cfg.MaxFeatures(),
			MaxIterations: cfg.MaxIterations(),
		},
	})

	var outcome *sentiment.Outcome
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		outcome = boot.Run(gctx)
		return nil
	})
	g.Go(func() error {
		cat := ix.Catalog()
		log.Info().Str("path", ix.Path()).Int("records", cat.Len()).Msg("catalog ready")
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to start core: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("startup cancelled: %w", err)
	}

	opts.Metrics.SetModelSource(string(outcome.Step), modelSources)

	return &Core{
		Model:    outcome.Model,
		Outcome:  outcome,
		Index:    ix,
		Resolver: res,
	}, nil
}

// Start builds the core on the OS filesystem, watches the catalog file for
// changes and serves the API until stop is called or the server fails.
//
//nolint:gocritic // options passed by value
func Start(
	cfg *config.Instance,
	opts Options,
) (stop func() error, done <-chan struct{}, err error) {
	log.Info().Msgf("version: %s", config.AppVersion)
	opts.setDefaults()

	ctx, cancel := context.WithCancel(context.Background())

	afs := afero.NewOsFs()
	core, err := NewCore(ctx, afs, cfg, opts)
	if err != nil {
		cancel()
		log.Error().Err(err).Msg("error building core")
		return nil, nil, err
	}

	ln := opts.Listener
	if ln == nil {
		ln, err = api.Listen(cfg)
		if err != nil {
			cancel()
			log.Error().Err(err).Msg("error opening API listener")
			return nil, nil, err
		}
	}

	watcher := watchCatalog(afs, core.Index)

	deps := api.Deps{
		Model:    core.Model,
		Resolver: core.Resolver,
		Catalog:  core.Index,
		Metrics:  opts.Metrics,
		Clock:    opts.Clock,
	}

	log.Info().Msg("starting API service")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.Serve(gctx, ln, cfg, deps)
	})

	doneCh := make(chan struct{})
	var serveErr error
	go func() {
		serveErr = g.Wait()
		if serveErr != nil {
			log.Error().Err(serveErr).Msg("API service exited")
		}
		if watcher != nil {
			watcher.Stop()
		}
		cancel()
		log.Info().Msg("service stopped")
		close(doneCh)
	}()

	return func() error {
		log.Info().Msg("stopping service")
		cancel()
		<-doneCh
		return serveErr
	}, doneCh, nil
}

// watchCatalog reloads the catalog whenever its file changes. A watcher that
// can't start is logged and skipped; the index still revalidates on read.
func watchCatalog(afs afero.Fs, ix *catalog.Index) *fileWatcher {
	dir := filepath.Dir(ix.Path())
	if err := afs.MkdirAll(dir, 0o750); err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("failed to create catalog directory")
		return nil
	}

	w, err := newFileWatcher(ix.Path(), reloadDebounce, func() {
		if err := ix.Reload(); err != nil {
			log.Warn().Err(err).Msg("catalog reload failed")
			return
		}
		log.Info().Int("records", ix.Catalog().Len()).Msg("catalog reloaded")
	})
	if err != nil {
		log.Warn().Err(err).Msg("catalog watcher unavailable")
		return nil
	}
	return w
}
