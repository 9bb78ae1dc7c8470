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

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ZaparooProject/marquee/pkg/config"
	"github.com/ZaparooProject/marquee/pkg/metrics"
	"github.com/ZaparooProject/marquee/pkg/resolver"
	"github.com/ZaparooProject/marquee/pkg/sentiment"
	"github.com/ZaparooProject/marquee/pkg/testing/fixtures"
	testhelpers "github.com/ZaparooProject/marquee/pkg/testing/helpers"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const dataDir = "/data"

func newTestConfig(t *testing.T) *config.Instance {
	t.Helper()
	cfg, err := testhelpers.NewTestConfig(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func coreOptions() Options {
	return Options{
		Clock:   clockwork.NewFakeClock(),
		Metrics: metrics.New(),
		DataDir: dataDir,
	}
}

func TestNewCore_FallbackWithoutData(t *testing.T) {
	t.Parallel()
	cfg := newTestConfig(t)
	fsh := testhelpers.NewMemoryFS()

	core, err := NewCore(context.Background(), fsh.Fs, cfg, coreOptions())
	require.NoError(t, err)

	assert.Equal(t, sentiment.StepFallback, core.Outcome.Step)
	assert.True(t, core.Model.IsFallback())
	assert.Equal(t, 0, core.Index.Catalog().Len())

	res := core.Resolver.Resolve("matrix")
	assert.Equal(t, resolver.OutcomeNone, res.Outcome())
}

func TestNewCore_TrainsThenRestores(t *testing.T) {
	t.Parallel()
	cfg := newTestConfig(t)
	fsh := testhelpers.NewMemoryFS()
	require.NoError(t, fsh.WriteFile(cfg.CatalogPath(dataDir), fixtures.RatedCatalogCSV))

	core, err := NewCore(context.Background(), fsh.Fs, cfg, coreOptions())
	require.NoError(t, err)
	assert.Equal(t, sentiment.StepDataset, core.Outcome.Step)
	assert.True(t, fsh.FileExists(cfg.ModelPath(dataDir)))
	assert.False(t, core.Model.IsFallback())
	assert.Equal(t, len(fixtures.RatedCatalogTitles), core.Index.Catalog().Len())

	restored, err := NewCore(context.Background(), fsh.Fs, cfg, coreOptions())
	require.NoError(t, err)
	assert.Equal(t, sentiment.StepArtifact, restored.Outcome.Step)
	assert.Equal(t, core.Model.Info().ID, restored.Model.Info().ID)

	opts := coreOptions()
	opts.Retrain = true
	retrained, err := NewCore(context.Background(), fsh.Fs, cfg, opts)
	require.NoError(t, err)
	assert.Equal(t, sentiment.StepDataset, retrained.Outcome.Step)
	assert.NotEqual(t, core.Model.Info().ID, retrained.Model.Info().ID)
}

func TestNewCore_ResolvesCatalog(t *testing.T) {
	t.Parallel()
	cfg := newTestConfig(t)
	fsh := testhelpers.NewMemoryFS()
	require.NoError(t, fsh.WriteCatalog(cfg.CatalogPath(dataDir), fixtures.CatalogTitles...))

	core, err := NewCore(context.Background(), fsh.Fs, cfg, coreOptions())
	require.NoError(t, err)

	res := core.Resolver.Resolve("Intersteller")
	require.NotNil(t, res.Correction)
	assert.Equal(t, "Interstellar", *res.Correction)
	require.Len(t, res.ExactMatches, 1)
	assert.Equal(t, "Interstellar", res.ExactMatches[0].Title)
}

func TestNewCore_CancelledContext(t *testing.T) {
	t.Parallel()
	cfg := newTestConfig(t)
	fsh := testhelpers.NewMemoryFS()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCore(ctx, fsh.Fs, cfg, coreOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func getJSON(base, path string, dest any) (int, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, base+path, http.NoBody)
	if err != nil {
		return 0, err
	}
	req.Close = true
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %q: %w", body, err)
	}
	return resp.StatusCode, nil
}

func TestStart_ServesAndStops(t *testing.T) {
	cfg := newTestConfig(t)
	dir := t.TempDir()
	catalogPath := cfg.CatalogPath(dir)
	writeFile(t, catalogPath, fixtures.RatedCatalogCSV)

	var lc net.ListenConfig
	ln, err := lc.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + ln.Addr().String()

	stop, done, err := Start(cfg, Options{DataDir: dir, Listener: ln})
	require.NoError(t, err)

	var status struct {
		Model struct {
			Source string `json:"source"`
		} `json:"model"`
		CatalogSize int `json:"catalogSize"`
	}
	code, err := getJSON(base, "/", &status)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, len(fixtures.RatedCatalogTitles), status.CatalogSize)
	assert.Equal(t, string(sentiment.SourceDataset), status.Model.Source)

	var res resolver.Result
	code, err = getJSON(base, "/api/search?q=matrix", &res)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, res.ExactMatches, 2)

	writeFile(t, catalogPath, "title\nThe Matrix\nArrival\n")
	assert.Eventually(t, func() bool {
		var r resolver.Result
		_, err := getJSON(base, "/api/search?q="+url.QueryEscape("arrival"), &r)
		return err == nil && len(r.ExactMatches) == 1
	}, 5*time.Second, 200*time.Millisecond)

	require.NoError(t, stop())
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("service did not stop")
	}
}

func TestFileWatcher_DebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "catalog.csv")
	writeFile(t, target, "title\n")

	var calls atomic.Int32
	w, err := newFileWatcher(target, 20*time.Millisecond, func() {
		calls.Add(1)
	})
	require.NoError(t, err)
	defer w.Stop()

	writeFile(t, filepath.Join(dir, "other.csv"), "title\n")
	assert.Never(t, func() bool { return calls.Load() > 0 }, 200*time.Millisecond, 10*time.Millisecond)

	for i := range 5 {
		writeFile(t, target, fmt.Sprintf("title\nMovie %d\n", i))
	}
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestFileWatcher_SeesReplacement(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "catalog.csv")

	var calls atomic.Int32
	w, err := newFileWatcher(target, 10*time.Millisecond, func() {
		calls.Add(1)
	})
	require.NoError(t, err)
	defer w.Stop()

	tmp := filepath.Join(dir, "catalog.csv.tmp")
	writeFile(t, tmp, "title\nArrival\n")
	require.NoError(t, os.Rename(tmp, target))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	_, err := newFileWatcher(filepath.Join(t.TempDir(), "missing", "catalog.csv"), time.Millisecond, func() {})
	require.Error(t, err)
}
