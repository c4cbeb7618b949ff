// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package maintenance retrieves service history by licence plate from an
// external record store. The store is either a SQL database (sqlite3,
// postgres, mysql) holding a maintenancelogs table or a Redis instance
// holding one JSON list per plate.
package maintenance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/pdiddy/autoaid/pkg/types"
)

// ErrLookupUnavailable matches every *LookupUnavailableError via errors.Is.
var ErrLookupUnavailable = errors.New("maintenance store unavailable")

// LookupUnavailableError reports that the record store could not be reached
// or failed to answer. Lookups are never retried.
type LookupUnavailableError struct {
	Backend string
	Err     error
}

func (e *LookupUnavailableError) Error() string {
	return fmt.Sprintf("maintenance store %s unavailable: %v", e.Backend, e.Err)
}

func (e *LookupUnavailableError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrLookupUnavailable) succeed.
func (e *LookupUnavailableError) Is(target error) bool {
	return target == ErrLookupUnavailable
}

func unavailable(backend string, err error) error {
	var lue *LookupUnavailableError
	if errors.As(err, &lue) {
		return err
	}
	return &LookupUnavailableError{Backend: backend, Err: err}
}

// Store is a maintenance record store.
type Store interface {
	// FindByPlate returns every log whose plate number equals plate exactly,
	// in whatever order the store yields them.
	FindByPlate(ctx context.Context, plate string) ([]types.MaintenanceLog, error)

	// Add stores rec, assigning a log ID when rec has none, and returns it.
	Add(ctx context.Context, rec types.MaintenanceLog) (types.MaintenanceLog, error)

	// Migrate prepares the store's schema. It is a no-op where none is needed.
	Migrate(ctx context.Context) error

	Close() error
}

// Open connects to the store selected by cfg.Driver and runs Migrate when
// cfg.Migrate is set.
func Open(ctx context.Context, cfg types.StoreConfig, log zerolog.Logger) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Driver {
	case types.DriverRedis:
		s, err = OpenRedis(ctx, cfg.Redis)
	case types.DriverSQLite, types.DriverPostgres, types.DriverMySQL, "":
		s, err = OpenSQL(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown maintenance store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err := s.Migrate(ctx); err != nil {
			s.Close()
			return nil, fmt.Errorf("migrating maintenance store: %w", err)
		}
	}
	return s, nil
}

// Lookup returns the maintenance logs recorded for plate. Any store failure
// is returned as a *LookupUnavailableError.
func Lookup(ctx context.Context, s Store, plate string) ([]types.MaintenanceLog, error) {
	logs, err := s.FindByPlate(ctx, plate)
	if err != nil {
		return nil, unavailable(fmt.Sprintf("%T", s), err)
	}
	if logs == nil {
		logs = []types.MaintenanceLog{}
	}
	return logs, nil
}

// PlateFromFilename derives placeholder plate text from an uploaded image
// name: the base name without its extension, with whitespace removed. It
// stands in for plate recognition, which is not implemented.
func PlateFromFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}
