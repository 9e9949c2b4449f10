// Package testutils provides shared helpers for integration tests:
// environment detection, schema setup, transaction-scoped isolation, and
// direct-SQL fixtures.
package testutils

import (
	"os"
	"testing"
)

// IsIntegrationTestEnvironment reports whether a test database is
// available. Integration tests skip (or TestMain exits early) when it
// returns false, so the unit suite runs without Postgres.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// GetTestDatabaseURL returns the database URL for integration tests,
// failing the test when DATABASE_URL is unset.
func GetTestDatabaseURL(t *testing.T) string {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL environment variable is required for this test")
	}
	return dbURL
}

// MustGetTestDatabaseURL is the TestMain variant of GetTestDatabaseURL,
// where no testing.T exists yet. It panics if DATABASE_URL is unset;
// callers are expected to have checked IsIntegrationTestEnvironment first.
func MustGetTestDatabaseURL() string {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		panic("DATABASE_URL environment variable is required for integration tests")
	}
	return dbURL
}
