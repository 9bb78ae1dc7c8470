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

// Package tabular decodes header-driven CSV files into structs using gocsv,
// matching column names case-insensitively and ignoring surrounding
// whitespace in the header.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
)

// Header is the normalized header row of a decoded file.
type Header []string

// Has reports whether the file had a column with the given name. Lookups
// are case-insensitive.
func (h Header) Has(name string) bool {
	return slices.Contains(h, NormalizeColumn(name))
}

// NormalizeColumn returns the canonical form of a column name.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

// Reader implements gocsv.CSVReader. Rows may have a varying number of
// fields and leading whitespace after a delimiter is skipped.
type Reader struct {
	r      *csv.Reader
	header Header
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	return &Reader{r: cr}
}

func (r *Reader) Read() ([]string, error) {
	rec, err := r.r.Read()
	if err != nil {
		return nil, err //nolint:wrapcheck // io.EOF must pass through unwrapped
	}
	if r.header == nil {
		r.header = make(Header, len(rec))
		for i, col := range rec {
			r.header[i] = NormalizeColumn(col)
		}
		return slices.Clone(r.header), nil
	}
	return rec, nil
}

func (r *Reader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
}

// Header returns the normalized header, or nil if nothing has been read.
func (r *Reader) Header() Header {
	return r.header
}

// Decode reads every row of in into out, which must be a pointer to a slice
// of structs tagged with lowercase csv names. An empty input decodes to no
// rows and an empty header.
func Decode(in io.Reader, out any) (Header, error) {
	r := NewReader(in)
	err := gocsv.UnmarshalCSV(r, out)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return Header{}, nil
	} else if err != nil {
		return r.Header(), fmt.Errorf("failed to decode csv: %w", err)
	}
	return r.Header(), nil
}
