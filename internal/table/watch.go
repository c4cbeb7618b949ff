// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch refreshes LoadOnce handles whenever their backing file is written,
// created or renamed into place. It watches the parent directories so that
// editors which replace files atomically are seen. Watch returns once the
// watcher is running; the returned channel reports the path of every
// successful refresh and is closed when ctx is done.
func Watch(ctx context.Context, log zerolog.Logger, handles ...*Handle) (<-chan string, error) {
	byPath := make(map[string][]*Handle)
	dirs := make(map[string]struct{})
	for _, h := range handles {
		if h == nil || h.mode != LoadOnce || h.path == "" {
			continue
		}
		abs, err := filepath.Abs(h.path)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", h.path, err)
		}
		byPath[abs] = append(byPath[abs], h)
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	refreshed := make(chan string, 16)

	go func() {
		defer close(refreshed)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil {
					continue
				}
				for _, h := range byPath[abs] {
					if err := h.Refresh(); err != nil {
						log.Warn().Err(err).Str("dataset", h.path).Msg("refresh failed, keeping previous snapshot")
						continue
					}
					log.Info().Str("dataset", h.path).Msg("dataset refreshed")
					select {
					case refreshed <- h.path:
					default:
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("dataset watcher error")
			}
		}
	}()

	return refreshed, nil
}
