package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marksheet-io/marksheet/internal/grading"
	"github.com/marksheet-io/marksheet/internal/render"
)

var (
	tableSeason string
	tableSystem string
	tableRaw    bool
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Render aggregated subject scores (or the raw test tree)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg()
		ctx := cmd.Context()
		store, dbh, err := openStore(ctx, c)
		if err != nil {
			return err
		}
		defer dbh.Close()

		snap, err := store.Snapshot(ctx)
		if err != nil {
			return err
		}
		input := snap.GradingInput()
		if tableRaw {
			render.Seasons(os.Stdout, input.Seasons)
			return nil
		}

		subjects, err := grading.Aggregate(input, tableSeason)
		if err != nil {
			return err
		}
		var sheet map[string]grading.Grade
		if tableSystem != "" {
			table, err := loadTable(c)
			if err != nil {
				return err
			}
			if sheet, err = grading.GradeSheet(subjects, tableSystem, table); err != nil {
				return err
			}
		}
		render.Aggregates(os.Stdout, subjects, sheet)
		return nil
	},
}

func init() {
	tableCmd.Flags().StringVar(&tableSeason, "season", "", "restrict aggregation to one season")
	tableCmd.Flags().StringVar(&tableSystem, "system", "", "also map grades under this system")
	tableCmd.Flags().BoolVar(&tableRaw, "raw", false, "show the raw test tree instead")
	rootCmd.AddCommand(tableCmd)
}
