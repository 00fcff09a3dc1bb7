package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("DB_TIMEOUT", "")

	cfg := FromEnv()
	require.Equal(t, "users.db", cfg.DatabasePath)
	require.Equal(t, 30*time.Second, cfg.BusyTimeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/var/lib/userdb/users.db")
	t.Setenv("DB_TIMEOUT", "5")

	cfg := FromEnv()
	require.Equal(t, "/var/lib/userdb/users.db", cfg.DatabasePath)
	require.Equal(t, 5*time.Second, cfg.BusyTimeout)
}

func TestFromEnvMalformedTimeoutFallsBack(t *testing.T) {
	t.Setenv("DB_TIMEOUT", "soon")

	cfg := FromEnv()
	require.Equal(t, 30*time.Second, cfg.BusyTimeout)
}
