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
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"golang.org/x/text/unicode/norm"
	"gonum.org/v1/gonum/floats"
)

var reToken = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

// tokenize lowercases text and splits it into word tokens of at least two
// characters.
func tokenize(text string) []string {
	return reToken.FindAllString(strings.ToLower(norm.NFC.String(text)), -1)
}

// isStopWord reports whether the English stop word list removes term.
// Terms containing digits are never stop words.
func isStopWord(term string) bool {
	if strings.ContainsFunc(term, unicode.IsDigit) {
		return false
	}
	return strings.TrimSpace(stopwords.CleanString(term, "en", false)) == ""
}

// SparseVector is a feature vector holding only its non-zero entries, with
// Indices in ascending order.
type SparseVector struct {
	Indices []int
	Values  []float64
}

func (v SparseVector) Dot(dense []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * dense[idx]
	}
	return sum
}

// Vectorizer turns text into L2-normalized TF-IDF vectors over a fixed
// vocabulary.
type Vectorizer struct {
	Vocabulary map[string]int
	IDF        []float64
}

// FitVectorizer learns a vocabulary of at most maxFeatures terms, keeping
// the most frequent terms across all texts, and their smoothed inverse
// document frequencies.
func FitVectorizer(texts []string, maxFeatures int) (*Vectorizer, error) {
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)
	stop := make(map[string]bool)

	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			isStop, ok := stop[tok]
			if !ok {
				isStop = isStopWord(tok)
				stop[tok] = isStop
			}
			if isStop {
				continue
			}
			termFreq[tok]++
			if _, dup := seen[tok]; !dup {
				seen[tok] = struct{}{}
				docFreq[tok]++
			}
		}
	}

	if len(termFreq) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(termFreq))
	for term := range termFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if maxFeatures > 0 && len(terms) > maxFeatures {
		sort.SliceStable(terms, func(i, j int) bool {
			return termFreq[terms[i]] > termFreq[terms[j]]
		})
		terms = terms[:maxFeatures]
		sort.Strings(terms)
	}

	n := float64(len(texts))
	v := &Vectorizer{
		Vocabulary: make(map[string]int, len(terms)),
		IDF:        make([]float64, len(terms)),
	}
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	return v, nil
}

func (v *Vectorizer) Features() int {
	return len(v.IDF)
}

// Transform returns the TF-IDF vector of text. Terms outside the vocabulary
// are ignored, so text with no known terms yields an empty vector.
func (v *Vectorizer) Transform(text string) SparseVector {
	counts := make(map[int]float64)
	for _, tok := range tokenize(text) {
		if idx, ok := v.Vocabulary[tok]; ok {
			counts[idx]++
		}
	}

	vec := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)
	for _, idx := range vec.Indices {
		vec.Values = append(vec.Values, counts[idx]*v.IDF[idx])
	}

	if l2 := floats.Norm(vec.Values, 2); l2 > 0 {
		floats.Scale(1/l2, vec.Values)
	}
	return vec
}
