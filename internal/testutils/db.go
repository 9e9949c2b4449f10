package testutils

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/pressly/goose/v3"
)

var migrationsRunOnce sync.Once

// testGooseLogger silences goose's informational output during tests.
type testGooseLogger struct{}

func (l *testGooseLogger) Printf(format string, v ...interface{}) {}

func (l *testGooseLogger) Fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", v...)
}

// SetupTestDatabaseSchema resets the test database to baseline and applies
// all project migrations. Call it once from TestMain; repeated calls are
// no-ops via sync.Once.
func SetupTestDatabaseSchema(db *sql.DB) error {
	var setupErr error
	migrationsRunOnce.Do(func() {
		if err := goose.SetDialect("postgres"); err != nil {
			setupErr = fmt.Errorf("failed to set goose dialect: %w", err)
			return
		}
		goose.SetLogger(&testGooseLogger{})

		migrationsDir, err := findMigrationsDir()
		if err != nil {
			setupErr = err
			return
		}

		if err := goose.DownTo(db, migrationsDir, 0); err != nil {
			setupErr = fmt.Errorf("failed to reset database schema: %w", err)
			return
		}
		if err := goose.Up(db, migrationsDir); err != nil {
			setupErr = fmt.Errorf("failed to apply migrations: %w", err)
			return
		}
	})
	return setupErr
}

// findMigrationsDir locates the migrations directory by walking up from
// this file's location to the directory containing go.mod.
func findMigrationsDir() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to determine current file path")
	}

	dir := filepath.Dir(currentFile)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			migrationsDir := filepath.Join(dir, "migrations")
			if _, err := os.Stat(migrationsDir); err != nil {
				return "", fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
			}
			return migrationsDir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not locate project root from %s", currentFile)
		}
		dir = parent
	}
}

// WithTx runs a test function inside a transaction that is always rolled
// back, so each test sees a clean schema and tests can run in parallel
// without interfering with each other.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	if db == nil {
		t.Skip("integration test requires DATABASE_URL")
	}

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Errorf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
