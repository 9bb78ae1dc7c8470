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

package client

import (
	"context"

	"github.com/ZaparooProject/marquee/pkg/resolver"
	"github.com/ZaparooProject/marquee/pkg/sentiment"
)

// APIClient abstracts API communication for testability.
type APIClient interface {
	Predict(ctx context.Context, review string) (sentiment.Prediction, error)
	Search(ctx context.Context, query string) (resolver.Result, error)
}

var _ APIClient = (*Client)(nil)
