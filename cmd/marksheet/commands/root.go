package commands

import (
	"context"
	"database/sql"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/marksheet-io/marksheet/internal/config"
	"github.com/marksheet-io/marksheet/internal/db"
	"github.com/marksheet-io/marksheet/internal/grading"
	"github.com/marksheet-io/marksheet/internal/record"
	"github.com/marksheet-io/marksheet/pkg/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "marksheet",
	Short: "Record weighted test scores and compute grades under multiple grading systems",
	Long: `marksheet keeps a tree of subjects, seasons and tests, aggregates
weighted test scores into per-subject percentages, and computes results
under the supported grading systems (MSG and rank-point variants).

Examples:
  marksheet set subjects/Math "H2"
  marksheet set seasons/mid/ca1 --subject Math --score 45 --full 50 --weight 1
  marksheet table --system uasrp-sg-90rp
  marksheet grade uasrp-sg-90rp`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Called once from main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		l := log()
		l.Error().Err(err).Msg("command failed")
	}
	return err
}

func init() {
	cobra.OnInitialize(func() { _ = godotenv.Load() })
}

func cfg() config.Config { return config.FromEnv() }

func log() zerolog.Logger {
	c := cfg()
	return logger.New(c.LogLevel, c.LogFormat)
}

// openStore opens the configured SQL store. The returned func closes it.
func openStore(ctx context.Context, c config.Config) (record.Store, *sql.DB, error) {
	dbh, err := db.Open(ctx, db.Driver(c.DBDriver), c.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	return record.NewSQLStore(dbh, c.DBDriver), dbh, nil
}

// loadTable returns the configured band catalog, built-in unless overridden.
func loadTable(c config.Config) (grading.Table, error) {
	if c.BandTablePath == "" {
		return grading.DefaultTable(), nil
	}
	f, err := os.Open(c.BandTablePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grading.ReadTable(f)
}
