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

package mocks

import (
	"context"

	"github.com/ZaparooProject/marquee/pkg/resolver"
	"github.com/ZaparooProject/marquee/pkg/sentiment"
	"github.com/stretchr/testify/mock"
)

// MockAPIClient is a mock implementation of client.APIClient for testing.
type MockAPIClient struct {
	mock.Mock
}

// NewMockAPIClient creates a new mock API client.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

func (m *MockAPIClient) Predict(ctx context.Context, review string) (sentiment.Prediction, error) {
	args := m.Called(ctx, review)
	p, _ := args.Get(0).(sentiment.Prediction)
	return p, args.Error(1)
}

func (m *MockAPIClient) Search(ctx context.Context, query string) (resolver.Result, error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).(resolver.Result)
	return res, args.Error(1)
}

// SetupPrediction configures the mock to classify review as p.
func (m *MockAPIClient) SetupPrediction(review string, p sentiment.Prediction) {
	m.On("Predict", mock.Anything, review).Return(p, nil)
}

// SetupPredictionError configures the mock to fail every prediction.
func (m *MockAPIClient) SetupPredictionError(err error) {
	m.On("Predict", mock.Anything, mock.Anything).Return(sentiment.Prediction(""), err)
}

// SetupSearch configures the mock to answer query with res.
func (m *MockAPIClient) SetupSearch(query string, res resolver.Result) {
	m.On("Search", mock.Anything, query).Return(res, nil)
}

// SetupSearchError configures the mock to fail every search.
func (m *MockAPIClient) SetupSearchError(err error) {
	m.On("Search", mock.Anything, mock.Anything).Return(resolver.Result{}, err)
}
