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

//go:build !deadlock

// Package syncutil holds the mutex types used across Marquee. Building with
// -tags=deadlock swaps in go-deadlock so lock ordering bugs in the catalog
// index, config and bootstrapper are reported instead of hanging.
package syncutil

import "sync"

const DeadlockEnabled = false

//nolint:gocritic // embedding sync.Mutex is intentional
type Mutex struct {
	sync.Mutex //nolint:forbidigo // this package wraps sync.Mutex
}

//nolint:gocritic // embedding sync.RWMutex is intentional
type RWMutex struct {
	sync.RWMutex //nolint:forbidigo // this package wraps sync.RWMutex
}
