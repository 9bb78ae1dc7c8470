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
	"testing"

	"github.com/ZaparooProject/marquee/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestConfig(t *testing.T) {
	t.Parallel()

	configDir := t.TempDir()
	cfg, err := NewTestConfig(configDir)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", cfg.APIListen())

	_, err = os.Stat(filepath.Join(configDir, config.CfgFile))
	assert.NoError(t, err, "config file should exist")
}

func TestFSHelper(t *testing.T) {
	t.Parallel()

	h := NewMemoryFS()
	require.NoError(t, h.WriteCatalog("/data/movies.csv", "Heat", `Say "Hi"`))
	require.NoError(t, h.CreateCorpus("/corpus", []string{"good"}, []string{"bad", "worse"}))

	assert.True(t, h.FileExists("/data/movies.csv"))
	assert.True(t, h.FileExists("/corpus/pos/cv000.txt"))
	assert.True(t, h.FileExists("/corpus/neg/cv001.txt"))
	assert.False(t, h.FileExists("/corpus/pos/cv001.txt"))
}
