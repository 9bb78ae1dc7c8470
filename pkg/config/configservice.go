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

package config

import (
	"strconv"
)

const (
	DefaultAPIPort           = 8075
	DefaultRequestsPerMinute = 100
	DefaultBurst             = 20
)

type Service struct {
	APIPort           *int     `toml:"api_port,omitempty" validate:"omitempty,min=1,max=65535"`
	RequestsPerMinute *int     `toml:"requests_per_minute,omitempty" validate:"omitempty,gte=1"`
	Burst             *int     `toml:"burst,omitempty" validate:"omitempty,gte=1"`
	APIListen         string   `toml:"api_listen,omitempty" validate:"omitempty,hostname_port"`
	AllowedOrigins    []string `toml:"allowed_origins,omitempty"`
	AllowedIPs        []string `toml:"allowed_ips,omitempty"`
}

func (c *Instance) APIPort() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiPortLocked()
}

// apiPortLocked returns the API port. Caller must hold mu (read or write).
func (c *Instance) apiPortLocked() int {
	if c.vals.Service.APIPort == nil {
		return DefaultAPIPort
	}
	return *c.vals.Service.APIPort
}

func (c *Instance) SetAPIPort(port int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Service.APIPort = &port
}

func (c *Instance) APIListen() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Service.APIListen == "" {
		return ":" + strconv.Itoa(c.apiPortLocked())
	}
	return c.vals.Service.APIListen
}

func (c *Instance) SetAPIListen(addr string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Service.APIListen = addr
}

func (c *Instance) AllowedOrigins() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Service.AllowedOrigins
}

func (c *Instance) AllowedIPs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Service.AllowedIPs
}

func (c *Instance) SetAllowedIPs(ips []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Service.AllowedIPs = ips
}

// RateLimit returns the per-client request budget per minute and the burst
// size for the HTTP API.
func (c *Instance) RateLimit() (perMinute, burst int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	perMinute = DefaultRequestsPerMinute
	if c.vals.Service.RequestsPerMinute != nil {
		perMinute = *c.vals.Service.RequestsPerMinute
	}
	burst = DefaultBurst
	if c.vals.Service.Burst != nil {
		burst = *c.vals.Service.Burst
	}
	return perMinute, burst
}
