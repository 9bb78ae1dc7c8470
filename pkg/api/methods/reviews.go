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

package methods

import (
	"strings"

	"github.com/ZaparooProject/marquee/pkg/api/models"
	"github.com/ZaparooProject/marquee/pkg/api/models/requests"
	"github.com/ZaparooProject/marquee/pkg/api/validation"
	"github.com/rs/zerolog/log"
)

// HandleAddReview acknowledges a review submission. Reviews are not stored.
func HandleAddReview(env requests.RequestEnv) (any, error) { //nolint:gocritic // single-use parameter in API handler
	var params models.ReviewParams
	if err := validation.ValidateAndUnmarshal(env.Params, &params); err != nil {
		return nil, err
	}

	movie := strings.TrimSpace(params.Movie)
	review := strings.TrimSpace(params.Review)
	if movie == "" && review == "" {
		return models.MessageResponse{Message: models.MessageNoData}, nil
	}

	log.Info().
		Str("request", env.ID).
		Str("movie", movie).
		Str("rating", strings.TrimSpace(params.Rating)).
		Msg("received review")
	return models.MessageResponse{Message: models.MessageReviewAdded}, nil
}
