package service

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/graceshop/shop-api/internal/testutils"
)

// testTimeout bounds each database operation in the tests below.
const testTimeout = 5 * time.Second

// testDB backs the integration tests in this package. It stays nil
// without a DATABASE_URL, in which case those tests skip and only the
// sqlmock-based unit tests run. The service opens its own transactions,
// so its integration tests commit fixtures and clean up after themselves
// instead of using the rolled-back-transaction harness.
var testDB *sql.DB

func TestMain(m *testing.M) {
	if !testutils.IsIntegrationTestEnvironment() {
		os.Exit(m.Run())
	}

	var err error
	testDB, err = sql.Open("pgx", testutils.MustGetTestDatabaseURL())
	if err != nil {
		fmt.Printf("Failed to open database connection: %v\n", err)
		os.Exit(1)
	}

	testDB.SetMaxOpenConns(5)
	testDB.SetMaxIdleConns(5)
	testDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	if err := testDB.PingContext(ctx); err != nil {
		fmt.Printf("Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	if err := testutils.SetupTestDatabaseSchema(testDB); err != nil {
		fmt.Printf("Failed to set up test database schema: %v\n", err)
		os.Exit(1)
	}

	exitCode := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Printf("Failed to close database connection: %v\n", err)
	}

	os.Exit(exitCode)
}
