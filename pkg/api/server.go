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

// Package api serves the sentiment and title lookup operations over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	apimw "github.com/ZaparooProject/marquee/pkg/api/middleware"
	"github.com/ZaparooProject/marquee/pkg/api/methods"
	"github.com/ZaparooProject/marquee/pkg/api/models"
	"github.com/ZaparooProject/marquee/pkg/api/models/requests"
	"github.com/ZaparooProject/marquee/pkg/api/validation"
	"github.com/ZaparooProject/marquee/pkg/config"
	"github.com/ZaparooProject/marquee/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

var defaultAllowedOrigins = []string{"https://*", "http://*"}

// Deps are the services the API exposes. Metrics may be nil.
type Deps struct {
	Model    requests.Predictor
	Resolver requests.TitleResolver
	Catalog  requests.CatalogSource
	Metrics  *metrics.Metrics
	Clock    clockwork.Clock
}

type methodFunc func(requests.RequestEnv) (any, error)

// NewRouter builds the HTTP handler for the API.
//
//nolint:gocritic // deps passed by value
func NewRouter(cfg *config.Instance, deps Deps, limiter *apimw.IPRateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(apimw.IPAllowlist(apimw.NewIPFilter(cfg.AllowedIPs())))
	if deps.Metrics != nil {
		r.Use(apimw.Metrics(deps.Metrics))
	}
	r.Use(middleware.NoCache)
	r.Use(middleware.Timeout(config.ApiRequestTimeout))

	origins := cfg.AllowedOrigins()
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{},
	}))

	r.Get("/", handle(deps, methods.HandleStatus, http.StatusOK))

	r.Route("/api", func(r chi.Router) {
		r.Use(apimw.RateLimit(limiter))

		r.Post("/predict", handle(deps, methods.HandlePredict, http.StatusOK))
		r.Get("/predict", redirectHome)
		r.Get("/search", func(w http.ResponseWriter, r *http.Request) {
			if strings.TrimSpace(r.URL.Query().Get("q")) == "" {
				redirectHome(w, r)
				return
			}
			handle(deps, methods.HandleSearch, http.StatusOK)(w, r)
		})
		r.Post("/reviews", handle(deps, methods.HandleAddReview, http.StatusAccepted))
		r.Get("/reviews", redirectHome)
		r.Get("/model", handle(deps, methods.HandleModel, http.StatusOK))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	return r
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

//nolint:gocritic // deps passed by value
func handle(deps Deps, fn methodFunc, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.GetReqID(r.Context())

		params, err := readParams(w, r)
		if err != nil {
			writeError(w, reqID, http.StatusBadRequest, err)
			return
		}

		env := requests.RequestEnv{
			Context:  r.Context(),
			Model:    deps.Model,
			Resolver: deps.Resolver,
			Catalog:  deps.Catalog,
			Metrics:  deps.Metrics,
			Query:    r.URL.Query(),
			Params:   params,
			ID:       reqID,
		}

		resp, err := fn(env)
		if err != nil {
			var ve *validation.Error
			switch {
			case errors.As(err, &ve):
				writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
					Error:     ve.Error(),
					RequestID: reqID,
					Fields:    ve.Fields,
				})
			case errors.Is(err, validation.ErrInvalidBody):
				writeError(w, reqID, http.StatusBadRequest, err)
			default:
				log.Error().Err(err).Str("request", reqID).Str("path", r.URL.Path).Msg("error handling request")
				writeError(w, reqID, http.StatusInternalServerError, errors.New("internal error"))
			}
			return
		}

		writeJSON(w, status, resp)
	}
}

// readParams returns the request body as JSON. Form submissions are
// converted to a JSON object of their first values.
func readParams(w http.ResponseWriter, r *http.Request) (json.RawMessage, error) {
	if r.Body == nil || r.Method == http.MethodGet {
		return nil, nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && (mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data") {
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(maxBodyBytes)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", validation.ErrInvalidBody, err)
		}
		fields := make(map[string]string, len(r.PostForm))
		for k := range r.PostForm {
			fields[k] = r.PostForm.Get(k)
		}
		b, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to encode form: %w", err)
		}
		return b, nil
	}

	b, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", validation.ErrInvalidBody, err)
	}
	return b, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, reqID string, status int, err error) {
	writeJSON(w, status, models.ErrorResponse{Error: err.Error(), RequestID: reqID})
}

// Listen opens the configured API address.
func Listen(cfg *config.Instance) (net.Listener, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(context.Background(), "tcp", cfg.APIListen())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.APIListen(), err)
	}
	return ln, nil
}

// Serve answers API requests on ln until ctx is cancelled, then shuts the
// server down gracefully.
//
//nolint:gocritic // deps passed by value
func Serve(ctx context.Context, ln net.Listener, cfg *config.Instance, deps Deps) error {
	perMinute, burst := cfg.RateLimit()
	limiter := apimw.NewIPRateLimiter(deps.Clock, perMinute, burst)

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	cleanupDone := limiter.StartCleanup(cleanupCtx)
	defer func() {
		stopCleanup()
		<-cleanupDone
	}()

	srv := &http.Server{
		Handler:           NewRouter(cfg, deps, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", ln.Addr().String()).Msg("API server listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("API server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("API server shutdown did not complete")
		_ = srv.Close()
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("API server failed: %w", err)
	}
	log.Info().Msg("API server stopped")
	return nil
}
