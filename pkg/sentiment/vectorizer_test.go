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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "lowercases and drops punctuation", input: "The Matrix, 1999!", expected: []string{"the", "matrix", "1999"}},
		{name: "single characters dropped", input: "a b cd", expected: []string{"cd"}},
		{name: "apostrophes split words", input: "don't", expected: []string{"don"}},
		{name: "underscores kept", input: "snake_case", expected: []string{"snake_case"}},
		{name: "unicode letters", input: "Amélie", expected: []string{"amélie"}},
		{name: "empty", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tokenize(tt.input))
		})
	}
}

func TestIsStopWord(t *testing.T) {
	t.Parallel()

	assert.True(t, isStopWord("the"))
	assert.True(t, isStopWord("and"))
	assert.False(t, isStopWord("matrix"))
	assert.False(t, isStopWord("1999"))
}

func TestFitVectorizer(t *testing.T) {
	t.Parallel()

	v, err := FitVectorizer([]string{"apple banana apple", "banana cherry"}, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"apple": 0, "banana": 1, "cherry": 2}, v.Vocabulary)
	require.Len(t, v.IDF, 3)
	assert.InDelta(t, math.Log(3.0/2.0)+1, v.IDF[0], 1e-12)
	assert.InDelta(t, 1.0, v.IDF[1], 1e-12)
}

func TestFitVectorizer_MaxFeatures(t *testing.T) {
	t.Parallel()

	// apple and banana occur twice, cherry once
	v, err := FitVectorizer([]string{"cherry banana apple", "banana apple"}, 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"apple": 0, "banana": 1}, v.Vocabulary)

	// ties are broken alphabetically
	v, err = FitVectorizer([]string{"zebra yak xerus"}, 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"xerus": 0, "yak": 1}, v.Vocabulary)
}

func TestFitVectorizer_StopWordsRemoved(t *testing.T) {
	t.Parallel()

	v, err := FitVectorizer([]string{"the matrix and the machines"}, 0)
	require.NoError(t, err)
	assert.NotContains(t, v.Vocabulary, "the")
	assert.NotContains(t, v.Vocabulary, "and")
	assert.Contains(t, v.Vocabulary, "matrix")
}

func TestFitVectorizer_EmptyVocabulary(t *testing.T) {
	t.Parallel()

	_, err := FitVectorizer([]string{"the and of", "", "a"}, 0)
	require.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestTransform(t *testing.T) {
	t.Parallel()

	v, err := FitVectorizer([]string{"apple banana apple", "banana cherry"}, 0)
	require.NoError(t, err)

	vec := v.Transform("Banana apple APPLE durian")
	assert.Equal(t, []int{0, 1}, vec.Indices)
	assert.InDelta(t, 1.0, floats.Norm(vec.Values, 2), 1e-12)

	want := []float64{2 * v.IDF[0], v.IDF[1]}
	floats.Scale(1/floats.Norm(want, 2), want)
	assert.InDeltaSlice(t, want, vec.Values, 1e-12)

	empty := v.Transform("durian elderberry")
	assert.Empty(t, empty.Indices)
	assert.Empty(t, empty.Values)
}

func TestSparseVectorDot(t *testing.T) {
	t.Parallel()

	vec := SparseVector{Indices: []int{0, 2}, Values: []float64{0.5, 2}}
	assert.InDelta(t, 0.5*4+2*3, vec.Dot([]float64{4, 100, 3}), 1e-12)
}
