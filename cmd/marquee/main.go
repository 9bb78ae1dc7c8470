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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaparooProject/marquee/internal/telemetry"
	"github.com/ZaparooProject/marquee/pkg/cli"
	"github.com/ZaparooProject/marquee/pkg/config"
	"github.com/ZaparooProject/marquee/pkg/service"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags(flag.CommandLine)

	exit, err := flags.Pre(os.Args[1:], os.Stdout)
	if err != nil || exit {
		return err
	}

	cfg, err := cli.Setup(config.BaseDefaults, flags.LogWriters())
	if err != nil {
		return err
	}
	defer telemetry.Close()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if flags.OneShot() {
		return flags.Post(ctx, cfg, os.Stdout)
	}

	stopSvc, done, err := service.Start(cfg, flags.ServiceOptions())
	if err != nil {
		log.Error().Msgf("error starting service: %s", err)
		return fmt.Errorf("error starting service: %w", err)
	}

	if *flags.Daemon {
		log.Info().Msg("started in daemon mode")
	} else {
		_, _ = fmt.Printf("Marquee v%s listening on %s\n", config.AppVersion, cfg.APIListen())
	}

	select {
	case <-ctx.Done():
	case <-done:
	}

	if err := stopSvc(); err != nil {
		log.Error().Msgf("error stopping service: %s", err)
		return fmt.Errorf("error stopping service: %w", err)
	}
	return nil
}
