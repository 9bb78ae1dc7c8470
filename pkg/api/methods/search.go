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
	"time"

	"github.com/ZaparooProject/marquee/pkg/api/models/requests"
	"github.com/rs/zerolog/log"
)

// HandleSearch resolves the "q" query parameter against the catalog.
func HandleSearch(env requests.RequestEnv) (any, error) { //nolint:gocritic // single-use parameter in API handler
	q := strings.TrimSpace(env.Query.Get("q"))

	start := time.Now()
	res := env.Resolver.Resolve(q)
	took := time.Since(start)

	outcome := res.Outcome()
	log.Info().
		Str("request", env.ID).
		Str("query", q).
		Str("outcome", string(outcome)).
		Int("matches", len(res.ExactMatches)).
		Int("suggestions", len(res.Suggestions)).
		Dur("took", took).
		Msg("resolved title query")

	if env.Metrics != nil {
		env.Metrics.ResolutionsTotal.WithLabelValues(string(outcome)).Inc()
		env.Metrics.ResolveLatency.Observe(took.Seconds())
	}
	return res, nil
}
