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
	"net"
	"net/http"
	"net/netip"

	"github.com/rs/zerolog/log"
)

// ParseRemoteIP extracts the address from a RemoteAddr (IP:port) string.
func ParseRemoteIP(remoteAddr string) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

// ClientIP returns the remote IP as a string, or the raw RemoteAddr when it
// cannot be parsed.
func ClientIP(remoteAddr string) string {
	if addr, ok := ParseRemoteIP(remoteAddr); ok {
		return addr.String()
	}
	return remoteAddr
}

// IPFilter is an allowlist of addresses and CIDR prefixes. An empty list
// allows every client.
type IPFilter struct {
	addrs    []netip.Addr
	prefixes []netip.Prefix
	enabled  bool
}

func NewIPFilter(allowed []string) *IPFilter {
	f := &IPFilter{enabled: len(allowed) > 0}

	for _, entry := range allowed {
		// tolerate a pasted address with port, e.g. "192.168.1.1:8075"
		if host, _, err := net.SplitHostPort(entry); err == nil {
			entry = host
		}

		if prefix, err := netip.ParsePrefix(entry); err == nil {
			f.prefixes = append(f.prefixes, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			f.addrs = append(f.addrs, addr.Unmap())
			continue
		}

		log.Warn().Str("ip", entry).Msg("invalid IP or CIDR in allowed_ips, skipping")
	}

	return f
}

// IsAllowed reports whether remoteAddr passes the allowlist.
func (f *IPFilter) IsAllowed(remoteAddr string) bool {
	if !f.enabled {
		return true
	}

	addr, ok := ParseRemoteIP(remoteAddr)
	if !ok {
		log.Warn().Str("addr", remoteAddr).Msg("failed to parse IP address")
		return false
	}

	for _, allowed := range f.addrs {
		if addr == allowed {
			return true
		}
	}
	for _, prefix := range f.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// IPAllowlist rejects requests from clients outside the filter.
func IPAllowlist(filter *IPFilter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !filter.IsAllowed(r.RemoteAddr) {
				log.Debug().
					Str("ip", ClientIP(r.RemoteAddr)).
					Str("path", r.URL.Path).
					Str("method", r.Method).
					Msg("request from blocked IP")

				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
