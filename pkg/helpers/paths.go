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

package helpers

import (
	"os"
	"path/filepath"

	"github.com/ZaparooProject/marquee/pkg/config"
	"github.com/adrg/xdg"
)

// DataDir returns the directory holding the catalog, training data, model
// artifact and logs. MARQUEE_DATA overrides the XDG location.
func DataDir() string {
	if v := os.Getenv(config.DataEnv); v != "" {
		return v
	}
	return filepath.Join(xdg.DataHome, config.AppName)
}

func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

func LogDir() string {
	return filepath.Join(DataDir(), config.LogsDir)
}
