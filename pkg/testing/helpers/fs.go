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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// WriteFile writes content to path, creating parent directories.
func (h *FSHelper) WriteFile(path, content string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// WriteCatalog writes a catalog CSV with only a title column.
func (h *FSHelper) WriteCatalog(path string, titles ...string) error {
	var b strings.Builder
	b.WriteString("title\n")
	for _, title := range titles {
		b.WriteString(`"` + strings.ReplaceAll(title, `"`, `""`) + `"` + "\n")
	}
	return h.WriteFile(path, b.String())
}

// CreateCorpus writes a pos/neg review corpus under dir, one file per
// review.
func (h *FSHelper) CreateCorpus(dir string, pos, neg []string) error {
	structure := map[string]any{
		"pos": map[string]any{},
		"neg": map[string]any{},
	}
	for i, text := range pos {
		structure["pos"].(map[string]any)[fmt.Sprintf("cv%03d.txt", i)] = text
	}
	for i, text := range neg {
		structure["neg"].(map[string]any)[fmt.Sprintf("cv%03d.txt", i)] = text
	}
	return h.createStructureRecursive(dir, structure)
}

// CreateDirectoryStructure creates a directory tree. Values are file
// contents (string or []byte), nested maps for directories, or nil for an
// empty directory.
func (h *FSHelper) CreateDirectoryStructure(structure map[string]any) error {
	return h.createStructureRecursive("", structure)
}

func (h *FSHelper) createStructureRecursive(basePath string, structure map[string]any) error {
	for name, content := range structure {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := h.WriteFile(fullPath, v); err != nil {
				return err
			}
		case []byte:
			if err := h.WriteFile(fullPath, string(v)); err != nil {
				return err
			}
		case map[string]any:
			if err := h.Fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", fullPath, err)
			}
			if err := h.createStructureRecursive(fullPath, v); err != nil {
				return err
			}
		case nil:
			if err := h.Fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("failed to create empty directory %s: %w", fullPath, err)
			}
		}
	}
	return nil
}

// FileExists checks if a file exists
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	return err == nil && exists
}
