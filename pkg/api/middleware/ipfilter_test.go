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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPFilter_IsAllowed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		allowed    []string
		want       bool
	}{
		{name: "empty list allows all", allowed: nil, remoteAddr: "8.8.8.8:80", want: true},
		{name: "exact IPv4", allowed: []string{"192.168.1.10"}, remoteAddr: "192.168.1.10:5000", want: true},
		{name: "other IPv4", allowed: []string{"192.168.1.10"}, remoteAddr: "192.168.1.11:5000", want: false},
		{name: "CIDR", allowed: []string{"10.0.0.0/8"}, remoteAddr: "10.20.30.40:1", want: true},
		{name: "outside CIDR", allowed: []string{"10.0.0.0/8"}, remoteAddr: "11.0.0.1:1", want: false},
		{name: "IPv6 loopback", allowed: []string{"::1"}, remoteAddr: "[::1]:8075", want: true},
		{name: "IPv4-mapped IPv6", allowed: []string{"127.0.0.1"}, remoteAddr: "[::ffff:127.0.0.1]:1", want: true},
		{name: "entry with port", allowed: []string{"192.168.1.1:8075"}, remoteAddr: "192.168.1.1:9", want: true},
		{name: "invalid entries skipped", allowed: []string{"nonsense", "172.16.0.1"}, remoteAddr: "172.16.0.1:1", want: true},
		{name: "unparsable remote", allowed: []string{"172.16.0.1"}, remoteAddr: "garbage", want: false},
		{name: "only invalid entries", allowed: []string{"nonsense"}, remoteAddr: "1.2.3.4:1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewIPFilter(tt.allowed).IsAllowed(tt.remoteAddr))
		})
	}
}

func TestIPAllowlist(t *testing.T) {
	t.Parallel()

	handler := IPAllowlist(NewIPFilter([]string{"127.0.0.1"}))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.RemoteAddr = "127.0.0.1:4000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.RemoteAddr = "192.168.0.5:4000"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10.1.2.3", ClientIP("10.1.2.3:55"))
	assert.Equal(t, "::1", ClientIP("[::1]:55"))
	assert.Equal(t, "not-an-ip", ClientIP("not-an-ip"))
}
