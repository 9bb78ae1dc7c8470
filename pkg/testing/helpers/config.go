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

// Package helpers provides shared fixtures for tests across packages.
package helpers

import (
	"fmt"

	"github.com/ZaparooProject/marquee/pkg/config"
)

// NewTestConfig creates a config with defaults in configDir. The API listens
// on an ephemeral loopback port so tests can run in parallel.
func NewTestConfig(configDir string) (*config.Instance, error) {
	cfg, err := config.NewConfig(configDir, config.BaseDefaults)
	if err != nil {
		return nil, fmt.Errorf("failed to create test config: %w", err)
	}
	cfg.SetAPIListen("127.0.0.1:0")
	return cfg, nil
}
