// Package main implements the entry point for the shop API server,
// a Postgres-backed storefront backend exposing products, orders,
// carts, and user accounts over HTTP.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a migration command (up, down, status) and exit",
	)
	flag.Parse()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if *migrateCmd != "" {
		if err := app.runMigrationCommand(*migrateCmd); err != nil {
			app.logger.Error("Migration command failed",
				"command", *migrateCmd,
				"error", err)
			os.Exit(1)
		}
		return
	}

	// Normal server start applies pending migrations first so the
	// schema always matches the code that is about to serve it.
	if err := app.runMigrationCommand("up"); err != nil {
		app.logger.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	if err := app.startHTTPServer(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
