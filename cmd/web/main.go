package main

import (
	"database/sql"
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/retail-tools/retail-atlas/pkg/server"
	"github.com/retail-tools/retail-atlas/pkg/services/analytics"
	"github.com/retail-tools/retail-atlas/pkg/store/duckdb"
	"github.com/retail-tools/retail-atlas/pkg/store/retail"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Retail Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the engine config file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	engineCfg := analytics.DefaultConfig()
	if cfgPath != "" {
		loaded, err := analytics.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load engine config: %w", err)
		}
		engineCfg = *loaded
		logger.Info().Str("path", cfgPath).Msg("engine configuration loaded")
	}

	db, err := openDatabase(logger)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := retail.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create retail store: %w", err)
	}

	engine := analytics.NewEngine(store, engineCfg)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Engine: engine,
		},
	})

	return webAPI.Start()
}

// openDatabase prefers a Postgres DSN from the environment and falls back to
// an embedded DuckDB file for local runs.
func openDatabase(logger zerolog.Logger) (*sql.DB, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to reach postgres: %w", err)
		}
		logger.Info().Msg("connected to postgres")
		return db, nil
	}

	path := os.Getenv("DUCKDB_PATH")
	if path == "" {
		path = "retail-atlas.db"
	}
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: path})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	logger.Info().Str("path", path).Msg("using embedded DuckDB")
	return db, nil
}
