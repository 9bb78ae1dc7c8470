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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// corpusCategories are the subdirectories of a legacy corpus, in label
// order.
var corpusCategories = [2]string{"neg", "pos"}

// LoadCorpus reads a legacy review corpus: a directory holding neg/ and pos/
// subdirectories with one review per file. Files are read in name order and
// hidden files are skipped.
func LoadCorpus(afs afero.Fs, dir string) (*Dataset, error) {
	exists, err := afero.DirExists(afs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat corpus dir: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, dir)
	}

	ds := &Dataset{Classes: corpusCategories}
	for label, category := range corpusCategories {
		catDir := filepath.Join(dir, category)
		ok, err := afero.DirExists(afs, catDir)
		if err != nil {
			return nil, fmt.Errorf("failed to stat corpus category %s: %w", category, err)
		} else if !ok {
			log.Warn().Str("dir", catDir).Msg("corpus category missing")
			continue
		}

		entries, err := afero.ReadDir(afs, catDir)
		if err != nil {
			return nil, fmt.Errorf("failed to list corpus category %s: %w", category, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			data, err := afero.ReadFile(afs, filepath.Join(catDir, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("failed to read corpus file %s: %w", entry.Name(), err)
			}
			ds.Texts = append(ds.Texts, strings.ToValidUTF8(string(data), "\uFFFD"))
			ds.Labels = append(ds.Labels, Label(label))
		}
	}

	if ds.Len() == 0 {
		return nil, &TrainingError{Source: "corpus", Err: fmt.Errorf("no documents in %s", dir)}
	}

	log.Debug().Str("dir", dir).Int("documents", ds.Len()).Msg("loaded review corpus")
	return ds, nil
}
