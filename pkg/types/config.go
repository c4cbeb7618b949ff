// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"net/url"
	"time"
)

// DatasetConfig locates one CSV dataset and selects its load policy.
type DatasetConfig struct {
	// Path is the CSV file. Relative paths are resolved against DataConfig.Dir.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// Reload re-reads the file on every query instead of once at startup.
	// Nil leaves the choice to the dataset's default: the parts and
	// suggestion datasets reload per call, the others load once.
	Reload *bool `json:"reload,omitempty" yaml:"reload,omitempty" mapstructure:"reload"`
}

// ReloadOr returns Reload, or def when it is unset.
func (d DatasetConfig) ReloadOr(def bool) bool {
	if d.Reload == nil {
		return def
	}
	return *d.Reload
}

// DataConfig holds the dataset locations.
type DataConfig struct {
	Dir      string        `json:"dir" yaml:"dir" mapstructure:"dir"`
	Vehicles DatasetConfig `json:"vehicles" yaml:"vehicles" mapstructure:"vehicles"`
	Problems DatasetConfig `json:"problems" yaml:"problems" mapstructure:"problems"`
	Parts    DatasetConfig `json:"parts" yaml:"parts" mapstructure:"parts"`

	// Suggestions is the problem dataset as read by the suggestion engine.
	// Empty Path means the same file as Problems.
	Suggestions DatasetConfig `json:"suggestions" yaml:"suggestions" mapstructure:"suggestions"`

	// SharedProblemSnapshot makes suggestions read the Problems handle so both
	// query shapes observe one snapshot.
	SharedProblemSnapshot bool `json:"shared_problem_snapshot" yaml:"shared_problem_snapshot" mapstructure:"shared_problem_snapshot"`

	// Watch refreshes load-once datasets when their files change.
	Watch bool `json:"watch" yaml:"watch" mapstructure:"watch"`
}

// StoreDriver selects the maintenance log backend.
type StoreDriver string

const (
	DriverSQLite   StoreDriver = "sqlite3"
	DriverPostgres StoreDriver = "postgres"
	DriverMySQL    StoreDriver = "mysql"
	DriverRedis    StoreDriver = "redis"
)

// RedisConfig holds Redis connection settings for the redis driver.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr" mapstructure:"addr"`
	Password string `json:"password,omitempty" yaml:"password,omitempty" mapstructure:"password"`
	DB       int    `json:"db" yaml:"db" mapstructure:"db"`
	Prefix   string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`
}

// StoreConfig holds maintenance log store settings. Host, Port, User,
// Password and Name are used to build a DSN when DSN is empty.
type StoreConfig struct {
	Driver   StoreDriver `json:"driver" yaml:"driver" mapstructure:"driver"`
	DSN      string      `json:"dsn,omitempty" yaml:"dsn,omitempty" mapstructure:"dsn"`
	Host     string      `json:"host" yaml:"host" mapstructure:"host"`
	Port     int         `json:"port" yaml:"port" mapstructure:"port"`
	User     string      `json:"user" yaml:"user" mapstructure:"user"`
	Password string      `json:"password,omitempty" yaml:"password,omitempty" mapstructure:"password"`
	Name     string      `json:"name" yaml:"name" mapstructure:"name"`

	// Migrate creates the maintenancelogs table on open if it is missing.
	Migrate bool `json:"migrate" yaml:"migrate" mapstructure:"migrate"`

	Redis RedisConfig `json:"redis" yaml:"redis" mapstructure:"redis"`
}

// DataSourceName returns the DSN handed to sql.Open for the configured driver.
func (c StoreConfig) DataSourceName() (string, error) {
	if c.DSN != "" {
		return c.DSN, nil
	}
	switch c.Driver {
	case DriverSQLite, "":
		name := c.Name
		if name == "" {
			name = "autoaid.db"
		}
		return name + "?_journal_mode=WAL", nil
	case DriverPostgres:
		port := c.Port
		if port == 0 {
			port = 5432
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     fmt.Sprintf("%s:%d", c.Host, port),
			Path:     "/" + c.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String(), nil
	case DriverMySQL:
		port := c.Port
		if port == 0 {
			port = 3306
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", c.User, c.Password, c.Host, port, c.Name), nil
	default:
		return "", fmt.Errorf("driver %q has no SQL data source", c.Driver)
	}
}

// ServerConfig holds HTTP boundary settings.
type ServerConfig struct {
	Addr            string        `json:"addr" yaml:"addr" mapstructure:"addr"`
	RequestTimeout  time.Duration `json:"request_timeout" yaml:"request_timeout" mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`

	// MaxUploadBytes bounds multipart bodies on /maintenancelog.
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
}

// LogConfig selects log level and format ("console" or "json").
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all autoaid settings.
type Config struct {
	Data   DataConfig   `json:"data" yaml:"data" mapstructure:"data"`
	Store  StoreConfig  `json:"store" yaml:"store" mapstructure:"store"`
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}
