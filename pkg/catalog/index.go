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

package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ZaparooProject/marquee/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ReloadFunc is called after every attempt to parse the catalog file.
type ReloadFunc func(records int, err error)

type fileStamp struct {
	modTime time.Time
	size    int64
	exists  bool
}

// Index caches the parsed catalog and reparses it when the file's
// modification time or size changes.
type Index struct {
	fs       afero.Fs
	catalog  *Catalog
	onReload ReloadFunc
	stamp    fileStamp
	path     string
	mu       syncutil.RWMutex
	loaded   bool
}

func NewIndex(afs afero.Fs, path string) *Index {
	return &Index{fs: afs, path: path}
}

func (ix *Index) Path() string {
	return ix.path
}

// OnReload registers a hook for reload results. It replaces any previous
// hook.
func (ix *Index) OnReload(fn ReloadFunc) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.onReload = fn
}

func (s fileStamp) same(o fileStamp) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

func (ix *Index) stat() (fileStamp, error) {
	fi, err := ix.fs.Stat(ix.path)
	if errors.Is(err, fs.ErrNotExist) {
		return fileStamp{}, nil
	} else if err != nil {
		return fileStamp{}, fmt.Errorf("failed to stat catalog: %w", err)
	}
	return fileStamp{modTime: fi.ModTime(), size: fi.Size(), exists: true}, nil
}

// Catalog returns the current catalog, reparsing the file if it changed
// since the last load. If the file cannot be read the last good catalog is
// kept, and before any successful load that is an empty catalog.
func (ix *Index) Catalog() *Catalog {
	stamp, err := ix.stat()

	ix.mu.RLock()
	if ix.loaded && (err != nil || stamp.same(ix.stamp)) {
		c := ix.catalog
		ix.mu.RUnlock()
		return c
	}
	ix.mu.RUnlock()

	if err := ix.reload(false); err != nil {
		log.Error().Err(err).Str("path", ix.path).Msg("failed to reload catalog")
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.catalog
}

// Reload reparses the catalog file regardless of the cached state.
func (ix *Index) Reload() error {
	return ix.reload(true)
}

func (ix *Index) reload(force bool) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	stamp, err := ix.stat()
	if err == nil && !force && ix.loaded && stamp.same(ix.stamp) {
		return nil
	}

	var c *Catalog
	if err == nil {
		c, err = Load(ix.fs, ix.path)
	}
	if err != nil {
		if ix.catalog == nil {
			ix.catalog = New(nil)
		}
		ix.notify(0, err)
		return err
	}

	ix.catalog = c
	ix.stamp = stamp
	ix.loaded = true
	log.Debug().Str("path", ix.path).Int("records", c.Len()).Msg("loaded catalog")
	ix.notify(c.Len(), nil)
	return nil
}

func (ix *Index) notify(records int, err error) {
	if ix.onReload != nil {
		ix.onReload(records, err)
	}
}
