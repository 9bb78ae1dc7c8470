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
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ArtifactVersion is bumped whenever the persisted layout or the meaning of
// its parameters changes. Older artifacts are rejected and retrained.
const ArtifactVersion = 1

type artifact struct {
	TrainedAt  time.Time
	Vocabulary map[string]int
	ID         string
	Source     Source
	Constant   string
	Classes    [2]string
	IDF        []float64
	Weights    []float64
	Intercept  float64
	Examples   int
	Version    int
	Kind       modelKind
}

// Encode writes the model to w.
func (m *Model) Encode(w io.Writer) error {
	a := artifact{
		Version:   ArtifactVersion,
		ID:        m.info.ID,
		TrainedAt: m.info.TrainedAt,
		Source:    m.info.Source,
		Examples:  m.info.Examples,
		Kind:      m.kind,
		Classes:   m.classes,
		Constant:  m.constant,
	}
	if m.vectorizer != nil {
		a.Vocabulary = m.vectorizer.Vocabulary
		a.IDF = m.vectorizer.IDF
	}
	if m.classifier != nil {
		a.Weights = m.classifier.Weights
		a.Intercept = m.classifier.Intercept
	}

	if err := gob.NewEncoder(w).Encode(&a); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return nil
}

// Decode reads a model written by Encode. Any problem with the data is
// reported as ErrLoad.
func Decode(r io.Reader) (*Model, error) {
	var a artifact
	if err := gob.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if a.Version != ArtifactVersion {
		return nil, fmt.Errorf("%w: artifact version %d, expected %d", ErrLoad, a.Version, ArtifactVersion)
	}
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	m := &Model{
		kind:     a.Kind,
		classes:  a.Classes,
		constant: a.Constant,
		info: Info{
			ID:        a.ID,
			TrainedAt: a.TrainedAt,
			Source:    a.Source,
			Examples:  a.Examples,
			Features:  len(a.IDF),
		},
	}
	if a.Vocabulary != nil {
		m.vectorizer = &Vectorizer{Vocabulary: a.Vocabulary, IDF: a.IDF}
	}

	switch a.Kind {
	case kindLinear:
		m.info.Kind = "linear"
		m.classifier = &LogisticRegression{Weights: a.Weights, Intercept: a.Intercept}
	case kindConstant:
		m.info.Kind = "constant"
	}
	return m, nil
}

func (a *artifact) validate() error {
	switch a.Kind {
	case kindConstant:
		if a.Constant == "" {
			return errors.New("constant model without a class")
		}
		return nil
	case kindLinear:
	default:
		return fmt.Errorf("unknown model kind %d", a.Kind)
	}

	if len(a.IDF) == 0 || len(a.Vocabulary) != len(a.IDF) {
		return fmt.Errorf("vocabulary has %d terms but %d weights", len(a.Vocabulary), len(a.IDF))
	}
	if len(a.Weights) != len(a.IDF) {
		return fmt.Errorf("classifier has %d weights for %d features", len(a.Weights), len(a.IDF))
	}
	for term, idx := range a.Vocabulary {
		if idx < 0 || idx >= len(a.IDF) {
			return fmt.Errorf("term %q has out of range index %d", term, idx)
		}
	}
	if a.Classes[0] == "" || a.Classes[1] == "" {
		return errors.New("missing class names")
	}
	return nil
}

// FileStore persists a model as a single file.
type FileStore struct {
	fs   afero.Fs
	path string
}

func NewFileStore(afs afero.Fs, path string) *FileStore {
	return &FileStore{fs: afs, path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load restores the stored model. A missing file is ErrLoad wrapping
// ErrSourceMissing.
func (s *FileStore) Load() (*Model, error) {
	f, err := s.fs.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w: %s", ErrLoad, ErrSourceMissing, s.path)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer func(f afero.File) {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close model artifact")
		}
	}(f)

	return Decode(f)
}

// Save writes the model to a temporary file next to the target and renames
// it into place, so readers never see a partial artifact.
func (s *FileStore) Save(m *Model) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		if rmErr := s.fs.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			log.Warn().Err(rmErr).Str("path", tmpName).Msg("failed to remove temp artifact")
		}
	}

	if err := m.Encode(tmp); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		cleanup()
		return fmt.Errorf("failed to move artifact into place: %w", err)
	}

	log.Info().Str("path", s.path).Str("id", m.info.ID).Msg("saved model artifact")
	return nil
}
