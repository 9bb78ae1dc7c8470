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

package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ratingParams struct {
	Rating string `validate:"rating"`
}

type reviewParams struct {
	Review string `validate:"nonblank,max=10"`
}

func TestValidateRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "empty", value: ""},
		{name: "integer", value: "7"},
		{name: "decimal", value: "8.5"},
		{name: "padded", value: " 9 "},
		{name: "zero", value: "0"},
		{name: "max", value: "10"},
		{name: "too high", value: "11", wantErr: true},
		{name: "negative", value: "-1", wantErr: true},
		{name: "text", value: "great", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := DefaultValidator.Validate(&ratingParams{Rating: tt.value})
			if tt.wantErr {
				var ve *Error
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "rating", ve.Fields[0].Tag)
				assert.Equal(t, "rating must be a number from 0 to 10", ve.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNonBlank(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultValidator.Validate(&reviewParams{Review: "good"}))

	err := DefaultValidator.Validate(&reviewParams{Review: "   "})
	require.Error(t, err)
	assert.Equal(t, "review is required", err.Error())

	err = DefaultValidator.Validate(&reviewParams{Review: strings.Repeat("a", 11)})
	require.Error(t, err)
	assert.Equal(t, "review must be at most 10 characters", err.Error())
}

func TestError_Empty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "validation failed", (&Error{}).Error())
}

func TestValidateAndUnmarshal(t *testing.T) {
	t.Parallel()

	var p ratingParams
	require.NoError(t, ValidateAndUnmarshal([]byte(`{"Rating":"6"}`), &p))
	assert.Equal(t, "6", p.Rating)

	var empty ratingParams
	require.NoError(t, ValidateAndUnmarshal(nil, &empty))
	assert.Empty(t, empty.Rating)

	var bad ratingParams
	require.ErrorIs(t, ValidateAndUnmarshal([]byte(`{"Rating":`), &bad), ErrInvalidBody)

	var invalid ratingParams
	var ve *Error
	require.ErrorAs(t, ValidateAndUnmarshal([]byte(`{"Rating":"99"}`), &invalid), &ve)
}
