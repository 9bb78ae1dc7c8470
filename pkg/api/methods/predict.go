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

// Package methods implements the HTTP API operations.
package methods

import (
	"strings"

	"github.com/ZaparooProject/marquee/pkg/api/models"
	"github.com/ZaparooProject/marquee/pkg/api/models/requests"
	"github.com/ZaparooProject/marquee/pkg/api/validation"
	"github.com/rs/zerolog/log"
)

// HandlePredict classifies the submitted review. Surrounding whitespace is
// ignored, so a blank review is "unknown".
func HandlePredict(env requests.RequestEnv) (any, error) { //nolint:gocritic // single-use parameter in API handler
	var params models.PredictParams
	if err := validation.ValidateAndUnmarshal(env.Params, &params); err != nil {
		return nil, err
	}

	review := strings.TrimSpace(params.Review)
	prediction := env.Model.Predict(review)
	log.Debug().
		Str("request", env.ID).
		Int("length", len(review)).
		Str("prediction", string(prediction)).
		Msg("predicted sentiment")

	if env.Metrics != nil {
		env.Metrics.PredictionsTotal.WithLabelValues(string(prediction)).Inc()
	}
	return models.PredictResponse{Prediction: prediction}, nil
}
