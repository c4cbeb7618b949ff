// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"fmt"
	"sync"
	"time"
)

// Mode selects when a Handle reads its file.
type Mode int

const (
	// LoadOnce reads the file when the handle is opened and again only on Refresh.
	LoadOnce Mode = iota

	// ReloadPerCall reads the file on every Snapshot.
	ReloadPerCall
)

func (m Mode) String() string {
	if m == ReloadPerCall {
		return "reload-per-call"
	}
	return "load-once"
}

// Handle owns one file-backed dataset and its load policy.
type Handle struct {
	path string
	mode Mode

	mu       sync.RWMutex
	table    *Table
	loadedAt time.Time
}

// Open returns a handle for the CSV at path. A LoadOnce handle reads the
// file immediately and fails if it cannot.
func Open(path string, mode Mode) (*Handle, error) {
	h := &Handle{path: path, mode: mode}
	if mode == LoadOnce {
		if err := h.Refresh(); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// FromTable wraps an already loaded table in a LoadOnce handle. Refresh on
// such a handle re-reads nothing and keeps the table.
func FromTable(t *Table) *Handle {
	return &Handle{mode: LoadOnce, table: t, loadedAt: time.Now()}
}

// Path returns the backing file, or "" for handles built with FromTable.
func (h *Handle) Path() string { return h.path }

// Mode returns the load policy.
func (h *Handle) Mode() Mode { return h.mode }

// LoadedAt returns when the current LoadOnce snapshot was read.
func (h *Handle) LoadedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loadedAt
}

// Snapshot returns the table to query. ReloadPerCall handles read the file
// now; LoadOnce handles return the last loaded table.
func (h *Handle) Snapshot() (*Table, error) {
	if h.mode == ReloadPerCall {
		return Load(h.path)
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.table == nil {
		return nil, fmt.Errorf("dataset %s not loaded", h.path)
	}
	return h.table, nil
}

// Refresh re-reads the file and swaps it in. On error the previous
// snapshot stays in place.
func (h *Handle) Refresh() error {
	if h.path == "" {
		return nil
	}
	t, err := Load(h.path)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.table = t
	h.loadedAt = time.Now()
	h.mu.Unlock()
	return nil
}
