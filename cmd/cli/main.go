package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/retail-tools/retail-atlas/pkg/runtime/terminal"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
	"github.com/retail-tools/retail-atlas/pkg/store/duckdb"
	"github.com/retail-tools/retail-atlas/pkg/store/retail"
)

func main() {
	_ = godotenv.Load()

	db, err := openDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	store, err := retail.NewStore(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Engine: analytics.NewEngine(store, analytics.DefaultConfig()),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openDatabase() (*sql.DB, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", err)
		}
		return db, nil
	}

	path := os.Getenv("DUCKDB_PATH")
	if path == "" {
		path = "retail-atlas.db"
	}
	return duckdb.NewDB(duckdb.Settings{DbPath: path})
}
