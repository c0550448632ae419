// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch opens the given file with [Sheet.Open] every time it is written
// or created, until the context is done. It watches the
// directory of the file so that it also sees editors that replace the file.
// Errors from reopening the file are logged and do not stop watching. If
// onLoad is non-nil, it is called with the result of every reopen. Watch
// blocks, so it is typically run in its own goroutine; it only returns an
// error if the watcher can not be set up.
func (s *Sheet) Watch(ctx context.Context, filename string, onLoad func(err error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("settings: watch %q: %w", s.Name, err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("settings: watch %q: %w", s.Name, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("settings: watch %q: %w", s.Name, err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			err := s.Open(abs)
			if err != nil {
				slog.Error("settings: reload failed", "sheet", s.Name, "file", abs, "err", err)
			} else {
				slog.Debug("settings: reloaded", "sheet", s.Name, "file", abs)
			}
			if onLoad != nil {
				onLoad(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("settings: watch error", "sheet", s.Name, "err", err)
		}
	}
}
