// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package maintenance

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/pdiddy/autoaid/pkg/types"
)

const tableName = "maintenancelogs"

// SQLStore reads and writes the maintenancelogs table.
type SQLStore struct {
	db     *sql.DB
	driver types.StoreDriver
	log    zerolog.Logger
}

// OpenSQL opens and pings the database described by cfg. A failed ping is
// a *LookupUnavailableError.
func OpenSQL(ctx context.Context, cfg types.StoreConfig, log zerolog.Logger) (*SQLStore, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = types.DriverSQLite
	}
	dsn, err := cfg.DataSourceName()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, unavailable(string(driver), err)
	}

	log.Debug().Str("driver", string(driver)).Msg("maintenance store connected")
	return NewSQLStore(db, driver, log), nil
}

// NewSQLStore wraps an open database handle.
func NewSQLStore(db *sql.DB, driver types.StoreDriver, log zerolog.Logger) *SQLStore {
	return &SQLStore{db: db, driver: driver, log: log}
}

// Close releases the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Migrate creates the maintenancelogs table and its plate index if missing.
func (s *SQLStore) Migrate(ctx context.Context) error {
	var statements []string
	switch s.driver {
	case types.DriverMySQL:
		statements = []string{
			`CREATE TABLE IF NOT EXISTS maintenancelogs (
				log_id VARCHAR(64) PRIMARY KEY,
				plate_number VARCHAR(32) NOT NULL,
				date_of_service VARCHAR(32),
				type_of_service TEXT,
				service_provider TEXT,
				INDEX idx_maintenancelogs_plate (plate_number)
			)`,
		}
	default:
		statements = []string{
			`CREATE TABLE IF NOT EXISTS maintenancelogs (
				log_id VARCHAR(64) PRIMARY KEY,
				plate_number VARCHAR(32) NOT NULL,
				date_of_service VARCHAR(32),
				type_of_service TEXT,
				service_provider TEXT
			)`,
			`CREATE INDEX IF NOT EXISTS idx_maintenancelogs_plate ON maintenancelogs(plate_number)`,
		}
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// FindByPlate selects the logs whose plate_number equals plate.
func (s *SQLStore) FindByPlate(ctx context.Context, plate string) ([]types.MaintenanceLog, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(
		`SELECT log_id, plate_number, date_of_service, type_of_service, service_provider
		 FROM `+tableName+` WHERE plate_number = ?`), plate)
	if err != nil {
		return nil, unavailable(string(s.driver), err)
	}
	defer rows.Close()

	logs := []types.MaintenanceLog{}
	for rows.Next() {
		var rec types.MaintenanceLog
		var date, serviceType, provider sql.NullString
		if err := rows.Scan(&rec.LogID, &rec.PlateNumber, &date, &serviceType, &provider); err != nil {
			return nil, fmt.Errorf("scanning maintenance log: %w", err)
		}
		rec.DateOfService = normalizeDate(date.String)
		rec.TypeOfService = serviceType.String
		rec.ServiceProvider = provider.String
		logs = append(logs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(string(s.driver), err)
	}

	s.log.Debug().Str("plate", plate).Int("found", len(logs)).Msg("maintenance lookup")
	return logs, nil
}

// Add inserts rec, generating a UUID log ID when rec.LogID is empty.
func (s *SQLStore) Add(ctx context.Context, rec types.MaintenanceLog) (types.MaintenanceLog, error) {
	if rec.LogID == "" {
		rec.LogID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, s.bind(
		`INSERT INTO `+tableName+` (log_id, plate_number, date_of_service, type_of_service, service_provider)
		 VALUES (?, ?, ?, ?, ?)`),
		rec.LogID, rec.PlateNumber, rec.DateOfService, rec.TypeOfService, rec.ServiceProvider,
	)
	if err != nil {
		return rec, fmt.Errorf("inserting maintenance log %s: %w", rec.LogID, err)
	}
	return rec, nil
}

// bind rewrites ? placeholders as $1, $2, ... for postgres.
func (s *SQLStore) bind(query string) string {
	if s.driver != types.DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeDate renders driver-formatted timestamps at midnight as plain
// dates and leaves everything else as stored.
func normalizeDate(s string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05"} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return s
	}
	return s
}
