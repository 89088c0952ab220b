package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/wishlist/internal/config"
	"github.com/mrlokans/wishlist/internal/database"
)

// CreateDBCommand drops every table and recreates the schema.
type CreateDBCommand struct {
	Database config.Database
}

func NewCreateDBCommand(cfg config.Database) *CreateDBCommand {
	return &CreateDBCommand{Database: cfg}
}

func (cmd *CreateDBCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-db", flag.ContinueOnError)
	registerDatabaseFlags(fs, &cmd.Database)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-db [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Drop all tables and recreate the schema. Existing data is lost.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *CreateDBCommand) Run() error {
	db, err := database.Open(cmd.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		return err
	}

	fmt.Printf("Database recreated (%s)\n", describe(cmd.Database))
	return nil
}

func registerDatabaseFlags(fs *flag.FlagSet, cfg *config.Database) {
	fs.StringVar(&cfg.Driver, "driver", cfg.Driver, "Database driver: sqlite or postgres")
	fs.StringVar(&cfg.Path, "db", cfg.Path, "Path to the SQLite database file")
	fs.StringVar(&cfg.URL, "url", cfg.URL, "PostgreSQL connection URL")
}

func describe(cfg config.Database) string {
	if cfg.Driver == config.DriverPostgres {
		return "postgres"
	}
	return cfg.Path
}
