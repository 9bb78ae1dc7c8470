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

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/ZaparooProject/marquee/internal/telemetry"
	"github.com/ZaparooProject/marquee/pkg/api/client"
	"github.com/ZaparooProject/marquee/pkg/config"
	"github.com/ZaparooProject/marquee/pkg/helpers"
	"github.com/ZaparooProject/marquee/pkg/resolver"
	"github.com/ZaparooProject/marquee/pkg/sentiment"
	"github.com/ZaparooProject/marquee/pkg/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrMissingValue = errors.New("flag requires a value")

type Flags struct {
	Predict *string
	Search  *string
	Version *bool
	Retrain *bool
	Daemon  *bool
	Remote  *bool
	set     *flag.FlagSet
}

// SetupFlags defines the command line flags on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		set: fs,
		Predict: fs.String(
			"predict",
			"",
			"classify review text as pos or neg and exit",
		),
		Search: fs.String(
			"search",
			"",
			"look up a movie title in the catalog and exit",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		Retrain: fs.Bool(
			"retrain",
			false,
			"ignore the saved model and train a new one",
		),
		Daemon: fs.Bool(
			"daemon",
			false,
			"run the service in the foreground, logging to stderr",
		),
		Remote: fs.Bool(
			"remote",
			false,
			"send -predict and -search to the running service",
		),
	}
}

func (f *Flags) isPassed(name string) bool {
	found := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses args and handles flags that need no setup. It reports whether
// the program should exit.
func (f *Flags) Pre(args []string, out io.Writer) (bool, error) {
	if err := f.set.Parse(args); err != nil {
		return true, fmt.Errorf("failed to parse flags: %w", err)
	}
	if *f.Version {
		_, _ = fmt.Fprintf(out, "Marquee v%s\n", config.AppVersion)
		return true, nil
	}
	return false, nil
}

// LogWriters returns the extra log outputs for the chosen mode.
func (f *Flags) LogWriters() []io.Writer {
	if *f.Daemon {
		return []io.Writer{os.Stderr}
	}
	return nil
}

// OneShot reports whether a query flag was given.
func (f *Flags) OneShot() bool {
	return f.isPassed("predict") || f.isPassed("search")
}

// ServiceOptions returns the service options the flags select.
func (f *Flags) ServiceOptions() service.Options {
	return service.Options{Retrain: *f.Retrain}
}

// Post runs a one-shot query if one was requested. Queries go to the running
// service with -remote and to a freshly bootstrapped core otherwise.
func (f *Flags) Post(ctx context.Context, cfg *config.Instance, out io.Writer) error {
	if !f.OneShot() {
		return nil
	}

	var api client.APIClient
	if *f.Remote {
		api = client.NewLocalClient(cfg)
	} else {
		core, err := service.NewCore(ctx, afero.NewOsFs(), cfg, f.ServiceOptions())
		if err != nil {
			return err
		}
		api = LocalCore{Core: core}
	}

	return f.run(ctx, api, out)
}

func (f *Flags) run(ctx context.Context, api client.APIClient, out io.Writer) error {
	switch {
	case f.isPassed("predict"):
		if *f.Predict == "" {
			return fmt.Errorf("predict: %w", ErrMissingValue)
		}
		p, err := api.Predict(ctx, *f.Predict)
		if err != nil {
			log.Error().Err(err).Msg("error predicting")
			return fmt.Errorf("error predicting: %w", err)
		}
		_, _ = fmt.Fprintln(out, p)
	case f.isPassed("search"):
		if *f.Search == "" {
			return fmt.Errorf("search: %w", ErrMissingValue)
		}
		res, err := api.Search(ctx, *f.Search)
		if err != nil {
			log.Error().Err(err).Msg("error searching")
			return fmt.Errorf("error searching: %w", err)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}
	return nil
}

// LocalCore answers queries in process.
type LocalCore struct {
	Core *service.Core
}

var _ client.APIClient = LocalCore{}

func (l LocalCore) Predict(_ context.Context, review string) (sentiment.Prediction, error) {
	return l.Core.Model.Predict(review), nil
}

func (l LocalCore) Search(_ context.Context, query string) (resolver.Result, error) {
	return l.Core.Resolver.Resolve(query), nil
}

// Setup initializes logging, the user config and error reporting.
//
//nolint:gocritic // config struct copied for immutability
func Setup(defaultConfig config.Values, writers []io.Writer) (*config.Instance, error) {
	if err := helpers.InitLogging(helpers.LogDir(), writers); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(), defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	helpers.SetLogLevel(cfg.DebugLogging())

	if err := telemetry.Init(telemetry.Options{
		Enabled:     cfg.ErrorReporting(),
		DSN:         cfg.TelemetryDSN(),
		AppVersion:  config.AppVersion,
		Environment: runtime.GOOS,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	return cfg, nil
}
