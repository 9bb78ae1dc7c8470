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

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestNew_IndependentRegistries(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()
	a.PredictionsTotal.WithLabelValues("pos").Inc()

	assert.Contains(t, scrape(t, a), `marquee_predictions_total{label="pos"} 1`)
	assert.NotContains(t, scrape(t, b), `marquee_predictions_total{label="pos"}`)
}

func TestSetModelSource(t *testing.T) {
	t.Parallel()

	m := New()
	all := []string{"artifact", "dataset", "corpus", "fallback"}
	m.SetModelSource("dataset", all)
	m.SetModelSource("corpus", all)

	body := scrape(t, m)
	assert.Contains(t, body, `marquee_model_source{source="dataset"} 0`)
	assert.Contains(t, body, `marquee_model_source{source="corpus"} 1`)
}

func TestCatalogReloaded(t *testing.T) {
	t.Parallel()

	m := New()
	m.CatalogReloaded(42, nil)
	m.CatalogReloaded(0, errors.New("boom"))

	body := scrape(t, m)
	assert.Contains(t, body, `marquee_catalog_reloads_total{status="ok"} 1`)
	assert.Contains(t, body, `marquee_catalog_reloads_total{status="error"} 1`)
	assert.Contains(t, body, `marquee_catalog_records 42`)
}

func TestHandler_IncludesRuntimeCollectors(t *testing.T) {
	t.Parallel()

	m := New()
	m.ResolutionsTotal.WithLabelValues("exact").Inc()

	body := scrape(t, m)
	assert.Contains(t, body, `marquee_resolutions_total{outcome="exact"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
