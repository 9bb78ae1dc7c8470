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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/ZaparooProject/marquee/pkg/helpers/tabular"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Dataset is a set of labeled training texts. Classes holds the raw class
// name for Negative and Positive, which the trained model reports back.
type Dataset struct {
	Texts   []string
	Labels  []Label
	Classes [2]string
}

func (d *Dataset) Len() int {
	return len(d.Texts)
}

var numericClasses = [2]string{"0", "1"}

// Schema identifies which columns of a tabular dataset supply the text and
// the label.
type Schema int

const (
	SchemaUnrecognized Schema = iota
	// SchemaReviewLabel uses review text with a sentiment or label column.
	SchemaReviewLabel
	// SchemaReviewRating uses review text labelled by a rating threshold.
	SchemaReviewRating
	// SchemaTitleRating uses the title as proxy text, labelled by rating.
	SchemaTitleRating
)

func (s Schema) String() string {
	switch s {
	case SchemaReviewLabel:
		return "review+label"
	case SchemaReviewRating:
		return "review+rating"
	case SchemaTitleRating:
		return "title+rating"
	case SchemaUnrecognized:
		return "unrecognized"
	default:
		return "schema(" + strconv.Itoa(int(s)) + ")"
	}
}

// DetectSchema picks the highest priority schema the header satisfies.
func DetectSchema(h tabular.Header) Schema {
	switch {
	case h.Has("review") && (h.Has("sentiment") || h.Has("label")):
		return SchemaReviewLabel
	case h.Has("review") && h.Has("rating"):
		return SchemaReviewRating
	case h.Has("title") && h.Has("rating"):
		return SchemaTitleRating
	default:
		return SchemaUnrecognized
	}
}

type datasetRow struct {
	Review    string `csv:"review"`
	Sentiment string `csv:"sentiment"`
	Label     string `csv:"label"`
	Title     string `csv:"title"`
	Rating    string `csv:"rating"`
}

type extractFunc func(h tabular.Header, rows []datasetRow, threshold float64) (*Dataset, error)

var extractors = map[Schema]extractFunc{
	SchemaReviewLabel:  extractReviewLabel,
	SchemaReviewRating: extractReviewRating,
	SchemaTitleRating:  extractTitleRating,
}

// LoadDataset reads a labeled CSV dataset from path.
func LoadDataset(afs afero.Fs, path string, threshold float64) (*Dataset, error) {
	f, err := afs.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func(f afero.File) {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close dataset file")
		}
	}(f)

	return ParseDataset(f, threshold)
}

// ParseDataset detects the schema of a CSV dataset and extracts texts and
// labels. Rows with a rating that is present but not numeric fail the whole
// load.
func ParseDataset(r io.Reader, threshold float64) (*Dataset, error) {
	var rows []datasetRow
	header, err := tabular.Decode(r, &rows)
	if err != nil {
		return nil, &TrainingError{Source: "dataset", Err: err}
	}

	schema := DetectSchema(header)
	extract, ok := extractors[schema]
	if !ok {
		return nil, fmt.Errorf("%w: columns %v", ErrSchemaUnrecognized, []string(header))
	}

	log.Debug().
		Str("schema", schema.String()).
		Int("rows", len(rows)).
		Msg("detected dataset schema")

	ds, err := extract(header, rows, threshold)
	if err != nil {
		return nil, err
	}
	if ds.Len() == 0 {
		return nil, &TrainingError{Source: "dataset", Err: errors.New("dataset has no rows")}
	}
	return ds, nil
}

func extractReviewLabel(h tabular.Header, rows []datasetRow, _ float64) (*Dataset, error) {
	useSentiment := h.Has("sentiment")
	cells := make([]string, len(rows))
	texts := make([]string, len(rows))
	for i, row := range rows {
		texts[i] = row.Review
		if useSentiment {
			cells[i] = row.Sentiment
		} else {
			cells[i] = row.Label
		}
	}

	typed := typeColumn(cells)
	labels := make([]Label, len(typed))
	for i, v := range typed {
		labels[i] = NormalizeLabel(v)
	}

	return &Dataset{Texts: texts, Labels: labels, Classes: numericClasses}, nil
}

func extractReviewRating(_ tabular.Header, rows []datasetRow, threshold float64) (*Dataset, error) {
	texts := make([]string, len(rows))
	ratings := make([]string, len(rows))
	for i, row := range rows {
		texts[i] = row.Review
		ratings[i] = row.Rating
	}
	return ratingDataset(texts, ratings, threshold)
}

func extractTitleRating(_ tabular.Header, rows []datasetRow, threshold float64) (*Dataset, error) {
	texts := make([]string, len(rows))
	ratings := make([]string, len(rows))
	for i, row := range rows {
		texts[i] = row.Title
		ratings[i] = row.Rating
	}
	return ratingDataset(texts, ratings, threshold)
}

func ratingDataset(texts, ratings []string, threshold float64) (*Dataset, error) {
	labels := make([]Label, len(ratings))
	for i, raw := range ratings {
		rating, err := parseRating(raw)
		if err != nil {
			return nil, &TrainingError{
				Source: "dataset",
				Err:    fmt.Errorf("row %d: %w", i+1, err),
			}
		}
		// missing ratings are NaN and never reach the threshold
		if rating >= threshold {
			labels[i] = Positive
		}
	}
	return &Dataset{Texts: texts, Labels: labels, Classes: numericClasses}, nil
}

func parseRating(raw string) (float64, error) {
	if isMissing(raw) {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q: %w", raw, err)
	}
	return v, nil
}
