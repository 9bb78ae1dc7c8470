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

// Package models holds the JSON request and response bodies of the HTTP API.
package models

import (
	"github.com/ZaparooProject/marquee/pkg/api/validation"
	"github.com/ZaparooProject/marquee/pkg/sentiment"
)

const (
	MessageReviewAdded = "Review added."
	MessageNoData      = "No data submitted."
)

type PredictParams struct {
	Review string `json:"review" validate:"max=20000"`
}

type ReviewParams struct {
	Movie  string `json:"movie" validate:"max=500"`
	Review string `json:"review" validate:"max=20000"`
	Rating string `json:"rating" validate:"rating"`
}

type PredictResponse struct {
	Prediction sentiment.Prediction `json:"prediction"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ModelStatus struct {
	ID     string           `json:"id"`
	Source sentiment.Source `json:"source"`
	Kind   string           `json:"kind"`
}

type StatusResponse struct {
	Service     string      `json:"service"`
	Version     string      `json:"version"`
	Model       ModelStatus `json:"model"`
	CatalogSize int         `json:"catalogSize"`
}

type ErrorResponse struct {
	Error     string                  `json:"error"`
	RequestID string                  `json:"requestId,omitempty"`
	Fields    []validation.FieldError `json:"fields,omitempty"`
}
