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

package requests

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/ZaparooProject/marquee/pkg/catalog"
	"github.com/ZaparooProject/marquee/pkg/metrics"
	"github.com/ZaparooProject/marquee/pkg/resolver"
	"github.com/ZaparooProject/marquee/pkg/sentiment"
)

// Predictor classifies review text. *sentiment.Model implements it.
type Predictor interface {
	Predict(text string) sentiment.Prediction
	Info() sentiment.Info
}

// TitleResolver looks up catalog titles. *resolver.Resolver implements it.
type TitleResolver interface {
	Resolve(query string) resolver.Result
}

// CatalogSource supplies the current catalog. *catalog.Index implements it.
type CatalogSource interface {
	Catalog() *catalog.Catalog
}

// RequestEnv is everything a method handler needs to answer one request.
type RequestEnv struct {
	Context  context.Context
	Model    Predictor
	Resolver TitleResolver
	Catalog  CatalogSource
	Metrics  *metrics.Metrics
	Query    url.Values
	Params   json.RawMessage
	ID       string
}
