// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/autoaid/pkg/types"
)

// legacyEnv maps config keys to the unprefixed variables older deployments
// used for the maintenance database.
var legacyEnv = map[string]string{
	"store.host":     "DB_HOST",
	"store.port":     "DB_PORT",
	"store.user":     "DB_USER",
	"store.password": "DB_PASS",
	"store.name":     "DB_NAME",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", "table")

	v.SetDefault("data.dir", "data")
	v.SetDefault("data.vehicles.path", "")
	v.SetDefault("data.vehicles.reload", false)
	v.SetDefault("data.problems.path", "")
	v.SetDefault("data.problems.reload", false)
	v.SetDefault("data.parts.path", "")
	v.SetDefault("data.parts.reload", true)
	v.SetDefault("data.suggestions.path", "")
	v.SetDefault("data.suggestions.reload", true)
	v.SetDefault("data.shared_problem_snapshot", false)
	v.SetDefault("data.watch", false)

	v.SetDefault("store.driver", string(types.DriverSQLite))
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.host", "localhost")
	v.SetDefault("store.port", 0)
	v.SetDefault("store.user", "")
	v.SetDefault("store.password", "")
	v.SetDefault("store.name", "")
	v.SetDefault("store.migrate", false)
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.prefix", "autoaid:")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_upload_bytes", 10<<20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// configure prepares v: defaults, the config file, .env and the environment.
// A missing config file is not an error.
func configure(v *viper.Viper, cfgFile string) error {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("autoaid")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "autoaid"))
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	v.SetEnvPrefix("AUTOAID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		v.BindEnv(key, "AUTOAID_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), legacy)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// decodeConfig unmarshals v into a Config.
func decodeConfig(v *viper.Viper) (types.Config, error) {
	var c types.Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}
