package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultDatabasePath = "users.db"
	defaultTimeoutSecs  = 30
)

// Config holds everything the store needs to open the database.
// It is read once and passed around by value; nothing re-reads the
// environment after construction.
type Config struct {
	// DatabasePath is the SQLite file to open.
	DatabasePath string
	// BusyTimeout bounds how long a connection waits on a locked
	// database before the engine reports busy.
	BusyTimeout time.Duration
}

// FromEnv builds a Config from DATABASE_PATH and DB_TIMEOUT,
// falling back to users.db and 30 seconds.
func FromEnv() Config {
	return Config{
		DatabasePath: envString("DATABASE_PATH", defaultDatabasePath),
		BusyTimeout:  time.Duration(envInt("DB_TIMEOUT", defaultTimeoutSecs)) * time.Second,
	}
}

func envString(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}
