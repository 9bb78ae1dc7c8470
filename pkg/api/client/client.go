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

// Package client talks to a running Marquee API service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/ZaparooProject/marquee/pkg/api/models"
	"github.com/ZaparooProject/marquee/pkg/config"
	"github.com/ZaparooProject/marquee/pkg/resolver"
	"github.com/ZaparooProject/marquee/pkg/sentiment"
	"github.com/rs/zerolog/log"
)

var (
	ErrRequestTimeout   = errors.New("request timed out")
	ErrRequestCancelled = errors.New("request cancelled")
	ErrServerError      = errors.New("server returned an error")
)

// Client sends requests to one API base URL.
type Client struct {
	http    *http.Client
	baseURL string
}

// New returns a client for baseURL. A nil httpClient uses one with the
// default API request timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.ApiRequestTimeout}
	}
	return &Client{http: httpClient, baseURL: baseURL}
}

// LocalURL returns the base URL of the API on this machine.
func LocalURL(cfg *config.Instance) string {
	host, port, err := net.SplitHostPort(cfg.APIListen())
	if err != nil {
		return "http://" + cfg.APIListen()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

// NewLocalClient returns a client for the API service on this machine.
func NewLocalClient(cfg *config.Instance) *Client {
	return New(LocalURL(cfg), nil)
}

func (c *Client) Predict(ctx context.Context, review string) (sentiment.Prediction, error) {
	var resp models.PredictResponse
	err := c.do(ctx, http.MethodPost, "/api/predict", models.PredictParams{Review: review}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Prediction, nil
}

func (c *Client) Search(ctx context.Context, query string) (resolver.Result, error) {
	var res resolver.Result
	err := c.do(ctx, http.MethodGet, "/api/search?q="+url.QueryEscape(query), nil, &res)
	return res, err
}

func (c *Client) Status(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse
	err := c.do(ctx, http.MethodGet, "/", nil, &status)
	return status, err
}

func (c *Client) do(ctx context.Context, method, path string, params, dest any) error {
	var body io.Reader = http.NoBody
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if params != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			return ErrRequestCancelled
		case errors.Is(err, context.DeadlineExceeded):
			return ErrRequestTimeout
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return ErrRequestTimeout
		}
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func(b io.ReadCloser) {
		if closeErr := b.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing response body")
		}
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr models.ErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%w: %d %s", ErrServerError, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%w: %d", ErrServerError, resp.StatusCode)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
