// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build integration

package maintenance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pdiddy/autoaid/pkg/types"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Migrate(ctx))

	first, err := s.Add(ctx, types.MaintenanceLog{
		PlateNumber: "ABC123", DateOfService: "2024-01-05",
		TypeOfService: "Oil change", ServiceProvider: "QuickLube",
	})
	require.NoError(t, err)
	_, err = s.Add(ctx, types.MaintenanceLog{PlateNumber: "XYZ999", TypeOfService: "Brake pads"})
	require.NoError(t, err)

	got, err := Lookup(ctx, s, "ABC123")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, first, got[0])

	got, err = Lookup(ctx, s, "abc123")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()

	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("autoaid_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pg.Terminate(ctx); err != nil {
			t.Logf("terminating postgres container: %v", err)
		}
	})

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := types.StoreConfig{
		Driver:   types.DriverPostgres,
		Host:     host,
		Port:     port.Int(),
		User:     "test",
		Password: "test",
		Name:     "autoaid_test",
	}
	s, err := Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	rc, err := tcredis.Run(ctx,
		"redis:7.4-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := rc.Terminate(ctx); err != nil {
			t.Logf("terminating redis container: %v", err)
		}
	})

	host, err := rc.Host(ctx)
	require.NoError(t, err)
	port, err := rc.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cfg := types.StoreConfig{
		Driver: types.DriverRedis,
		Redis:  types.RedisConfig{Addr: fmt.Sprintf("%s:%s", host, port.Port())},
	}
	s, err := Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}
