// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog answers the keyword, price, dealer and suggestion queries
// over the vehicle, problem and parts datasets.
//
// Every query scans one dataset snapshot in source order and returns the
// matching records without re-sorting. Malformed cells exclude only their own
// row; a dataset missing a column the query needs fails the whole query with
// a *table.MissingColumnError.
package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pdiddy/autoaid/internal/table"
	"github.com/pdiddy/autoaid/pkg/types"
)

// Default dataset file names inside DataConfig.Dir.
const (
	DefaultVehiclesFile = "dataset.csv"
	DefaultProblemsFile = "problems-solutions.csv"
	DefaultPartsFile    = "parts.csv"
)

// Datasets are the handles the engine reads. Problems serves the keyword and
// dealer queries; Suggestions serves SuggestSolutions and may be the same
// handle as Problems.
type Datasets struct {
	Vehicles    *table.Handle
	Problems    *table.Handle
	Suggestions *table.Handle
	Parts       *table.Handle
}

// Engine runs catalog queries. It is safe for concurrent use.
type Engine struct {
	ds  Datasets
	log zerolog.Logger
}

// New returns an engine over ds.
func New(ds Datasets, log zerolog.Logger) *Engine {
	if ds.Suggestions == nil {
		ds.Suggestions = ds.Problems
	}
	return &Engine{ds: ds, log: log}
}

// Open builds the dataset handles described by cfg and returns an engine
// over them. Load-once datasets are read now; a missing file fails Open.
func Open(cfg types.DataConfig, log zerolog.Logger) (*Engine, error) {
	open := func(dc types.DatasetConfig, fallback string, reloadByDefault bool) (*table.Handle, error) {
		path := dc.Path
		if path == "" {
			path = fallback
		}
		if !filepath.IsAbs(path) && cfg.Dir != "" {
			path = filepath.Join(cfg.Dir, path)
		}
		mode := table.LoadOnce
		if dc.ReloadOr(reloadByDefault) {
			mode = table.ReloadPerCall
		}
		h, err := table.Open(path, mode)
		if err != nil {
			return nil, fmt.Errorf("opening dataset %s: %w", path, err)
		}
		log.Debug().Str("dataset", path).Stringer("mode", mode).Msg("dataset opened")
		return h, nil
	}

	var (
		ds  Datasets
		err error
	)
	if ds.Vehicles, err = open(cfg.Vehicles, DefaultVehiclesFile, false); err != nil {
		return nil, err
	}
	if ds.Problems, err = open(cfg.Problems, DefaultProblemsFile, false); err != nil {
		return nil, err
	}
	if ds.Parts, err = open(cfg.Parts, DefaultPartsFile, true); err != nil {
		return nil, err
	}

	if cfg.SharedProblemSnapshot {
		ds.Suggestions = ds.Problems
	} else {
		fallback := cfg.Problems.Path
		if fallback == "" {
			fallback = DefaultProblemsFile
		}
		if ds.Suggestions, err = open(cfg.Suggestions, fallback, true); err != nil {
			return nil, err
		}
	}

	return New(ds, log), nil
}

// Handles returns the distinct dataset handles, for refresh and watching.
func (e *Engine) Handles() []*table.Handle {
	seen := make(map[*table.Handle]bool)
	var out []*table.Handle
	for _, h := range []*table.Handle{e.ds.Vehicles, e.ds.Problems, e.ds.Suggestions, e.ds.Parts} {
		if h == nil || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}

// Refresh re-reads every load-once dataset. It stops at the first failure;
// datasets already refreshed keep their new snapshot.
func (e *Engine) Refresh() error {
	for _, h := range e.Handles() {
		if h.Mode() != table.LoadOnce {
			continue
		}
		if err := h.Refresh(); err != nil {
			return fmt.Errorf("refreshing %s: %w", h.Path(), err)
		}
	}
	return nil
}

func snapshot(h *table.Handle, name string, required ...string) (*table.Table, error) {
	if h == nil {
		return nil, fmt.Errorf("%s dataset not configured", name)
	}
	t, err := h.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("loading %s dataset: %w", name, err)
	}
	if err := t.Require(required...); err != nil {
		return nil, err
	}
	return t, nil
}
