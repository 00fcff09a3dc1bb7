package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/hetulpatel/userdb/internal/config"
	"github.com/hetulpatel/userdb/internal/logging"
	sqlstore "github.com/hetulpatel/userdb/internal/storage/sqlite"
)

func main() {
	godotenv.Load()
	logging.InitFromEnv()

	cfg := config.FromEnv()
	logging.Debugf("[userdb-init] path=%s busy_timeout=%s", cfg.DatabasePath, cfg.BusyTimeout)

	if !sqlstore.Initialize(context.Background(), cfg) {
		os.Exit(1)
	}
}
