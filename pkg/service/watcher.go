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
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const reloadDebounce = 250 * time.Millisecond

// fileWatcher calls onChange after a file has stopped changing. It watches
// the parent directory so replacing the file by rename is also seen.
type fileWatcher struct {
	watcher  *fsnotify.Watcher
	onChange func()
	stopChan chan struct{}
	path     string
	debounce time.Duration
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func newFileWatcher(path string, debounce time.Duration, onChange func()) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &fileWatcher{
		watcher:  watcher,
		onChange: onChange,
		stopChan: make(chan struct{}),
		path:     abs,
		debounce: debounce,
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *fileWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		_ = w.watcher.Close()
		w.wg.Wait()
	})
}

func (w *fileWatcher) run() {
	defer w.wg.Done()

	debounceTimer := time.NewTimer(0)
	if !debounceTimer.Stop() {
		<-debounceTimer.C
	}

	for {
		select {
		case <-w.stopChan:
			debounceTimer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || event.Op == fsnotify.Chmod {
				continue
			}
			log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("watched file changed")
			debounceTimer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("fsnotify error")

		case <-debounceTimer.C:
			w.onChange()
		}
	}
}
