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

package telemetry

import (
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "no username in path", input: "/usr/local/bin/marquee", expected: "/usr/local/bin/marquee"},
		{
			name:     "linux home path",
			input:    "/home/sam/.local/share/marquee/sentiment_model.gob",
			expected: "/home/<user>/.local/share/marquee/sentiment_model.gob",
		},
		{
			name:     "linux home path uppercase",
			input:    "/Home/Sam/dev/marquee/pkg/config/config.go",
			expected: "/home/<user>/dev/marquee/pkg/config/config.go",
		},
		{
			name:     "macos users path",
			input:    "/Users/sam/Library/Application Support/marquee/marquee.toml",
			expected: "/Users/<user>/Library/Application Support/marquee/marquee.toml",
		},
		{
			name:     "windows path",
			input:    "C:\\Users\\sam\\AppData\\Local\\marquee\\marquee.toml",
			expected: "C:\\Users\\<user>\\AppData\\Local\\marquee\\marquee.toml",
		},
		{
			name:     "windows path different drive",
			input:    "D:\\Users\\admin\\marquee\\logs",
			expected: "C:\\Users\\<user>\\marquee\\logs",
		},
		{
			name:     "error message with path",
			input:    "failed to open catalog: /home/user123/data/MoviesTopRated.csv: no such file",
			expected: "failed to open catalog: /home/<user>/data/MoviesTopRated.csv: no such file",
		},
		{
			name:     "multiple paths in message",
			input:    "copying /home/alice/src to /home/bob/dst",
			expected: "copying /home/<user>/src to /home/<user>/dst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizePath(tt.input))
		})
	}
}

func TestSanitizeEvent(t *testing.T) {
	t.Parallel()

	event := &sentry.Event{
		ServerName: "sams-laptop",
		Message:    "failed to read /home/sam/movies.csv",
		Extra:      map[string]any{"path": "/Users/sam/x", "count": 3},
		Exception: []sentry.Exception{{
			Stacktrace: &sentry.Stacktrace{Frames: []sentry.Frame{{
				AbsPath:  "/home/sam/src/marquee/main.go",
				Filename: "/home/sam/src/marquee/main.go",
			}}},
		}},
	}

	got := sanitizeEvent(event)
	assert.Empty(t, got.ServerName)
	assert.Equal(t, "failed to read /home/<user>/movies.csv", got.Message)
	assert.Equal(t, "/Users/<user>/x", got.Extra["path"])
	assert.Equal(t, 3, got.Extra["count"])
	assert.Equal(t, "/home/<user>/src/marquee/main.go", got.Exception[0].Stacktrace.Frames[0].AbsPath)
}

func TestInit_Disabled(t *testing.T) {
	t.Parallel()

	require.NoError(t, Init(Options{Enabled: false, DSN: "https://key@example.invalid/1"}))
	assert.False(t, Enabled())
}

func TestInit_RequiresDSN(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Init(Options{Enabled: true}), ErrNoDSN)
	assert.False(t, Enabled())
}

func TestCloseAndFlushWhenDisabled(t *testing.T) {
	t.Parallel()

	Close()
	Flush()
}
