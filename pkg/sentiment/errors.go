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
)

var (
	// ErrSchemaUnrecognized is returned when a dataset's columns match none
	// of the known schemas.
	ErrSchemaUnrecognized = errors.New("dataset schema not recognized")
	// ErrLoad is returned when a model artifact is missing, corrupt or was
	// written by an incompatible version.
	ErrLoad = errors.New("failed to load model artifact")
	// ErrSourceMissing is returned when a training source does not exist.
	ErrSourceMissing = errors.New("source not found")
	// ErrEmptyVocabulary is returned when every token in the training texts
	// was filtered out.
	ErrEmptyVocabulary = errors.New("empty vocabulary")
)

// TrainingError wraps a failure to build training data or fit a model.
type TrainingError struct {
	Err    error
	Source string
}

func (e *TrainingError) Error() string {
	return fmt.Sprintf("training from %s failed: %v", e.Source, e.Err)
}

func (e *TrainingError) Unwrap() error {
	return e.Err
}
