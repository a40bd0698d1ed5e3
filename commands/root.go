package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/kendall-kelly/task-exchange-api/config"
	"github.com/kendall-kelly/task-exchange-api/store"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	port   string
	dbPath string
)

// rootCmd runs the server when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "task-exchange-api",
	Short: "Task Exchange API - CRUD service for users, orders and offers",
	Long: `Task Exchange API serves users, orders and offers over HTTP.

On first start against a new database the users, orders and offers
fixtures are loaded from FIXTURES_DIR (or FIXTURES_S3_BUCKET).`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&port, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "SQLite database file (overrides DATABASE_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// loadConfig reads the environment and applies command line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if port != "" {
		cfg.Port = port
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore connects to the database and creates missing tables.
// fresh is true when the database did not exist before.
func openStore(cfg *config.Config) (st *store.Store, fresh bool, err error) {
	db, fresh, err := config.ConnectDatabase(cfg)
	if err != nil {
		return nil, false, err
	}

	st = store.New(db)
	if err := st.Migrate(); err != nil {
		closeStore(st)
		return nil, false, err
	}
	log.Println("Database migration completed successfully")

	return st, fresh, nil
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		log.Printf("warning: failed to close database: %v", err)
	}
}
