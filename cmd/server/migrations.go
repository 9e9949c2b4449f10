package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
)

// migrationsDir is the path to the SQL migration files, relative to the
// directory the server is started from.
const migrationsDir = "migrations"

// slogGooseLogger adapts goose's logger interface to slog so migration
// output shows up in the structured log stream.
type slogGooseLogger struct {
	log *slog.Logger
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...))
}

// runMigrationCommand executes a goose migration command against the
// application database. Supported commands are "up", "down", and "status".
func (app *application) runMigrationCommand(command string) error {
	dir, err := filepath.Abs(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to resolve migrations directory: %w", err)
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("migrations directory %q not found: %w", dir, err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	goose.SetLogger(&slogGooseLogger{log: app.logger})

	app.logger.Info("Running migration command",
		"command", command,
		"dir", dir,
		"database_url", maskDatabaseURL(app.config.Database.URL))

	switch command {
	case "up":
		err = goose.Up(app.db, dir)
	case "down":
		err = goose.Down(app.db, dir)
	case "status":
		err = goose.Status(app.db, dir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}

	return nil
}
