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

// Package catalog reads the movie catalog CSV into records used for title
// lookups.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/ZaparooProject/marquee/pkg/helpers/tabular"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"
)

// Record is one catalog entry. Fields missing from the source are empty.
type Record struct {
	Title       string `json:"title"`
	PosterURL   string `json:"posterUrl"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"releaseDate"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
}

// row lists every recognized column, including synonyms.
type row struct {
	Title       string `csv:"title"`
	PosterURL   string `csv:"poster_url"`
	GenreIDs    string `csv:"genre_ids"`
	Genre       string `csv:"genre"`
	ReleaseDate string `csv:"release_date"`
	VoteAverage string `csv:"vote_average"`
	Rating      string `csv:"rating"`
	Overview    string `csv:"overview"`
	Description string `csv:"description"`
}

func (r *row) record() Record {
	return Record{
		Title:       strings.TrimSpace(r.Title),
		PosterURL:   strings.TrimSpace(r.PosterURL),
		Genre:       firstNonBlank(r.GenreIDs, r.Genre),
		ReleaseDate: strings.TrimSpace(r.ReleaseDate),
		Rating:      firstNonBlank(r.VoteAverage, r.Rating),
		Description: firstNonBlank(r.Overview, r.Description),
	}
}

func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// Fold returns the form of s used for case-insensitive comparison.
func Fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// Catalog is an immutable, ordered set of records.
type Catalog struct {
	records []Record
	folded  []string
}

func New(records []Record) *Catalog {
	c := &Catalog{
		records: records,
		folded:  make([]string, len(records)),
	}
	for i, r := range records {
		c.folded[i] = Fold(r.Title)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns the records in source order. The slice must not be
// modified.
func (c *Catalog) Records() []Record {
	return c.records
}

// Record returns the i-th record and its folded title.
func (c *Catalog) Record(i int) (Record, string) {
	return c.records[i], c.folded[i]
}

// Titles returns every non-empty title in source order.
func (c *Catalog) Titles() []string {
	titles := make([]string, 0, len(c.records))
	for _, r := range c.records {
		if r.Title != "" {
			titles = append(titles, r.Title)
		}
	}
	return titles
}

// Parse reads a catalog CSV. Column names are matched case-insensitively.
func Parse(r io.Reader) (*Catalog, error) {
	var rows []row
	if _, err := tabular.Decode(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	records := make([]Record, len(rows))
	for i := range rows {
		records[i] = rows[i].record()
	}
	return New(records), nil
}

// Load reads the catalog at path. A missing file is an empty catalog.
func Load(afs afero.Fs, path string) (*Catalog, error) {
	f, err := afs.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", path).Msg("catalog file not found")
		return New(nil), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func(f afero.File) {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close catalog file")
		}
	}(f)

	return Parse(f)
}
