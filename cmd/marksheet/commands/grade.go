package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marksheet-io/marksheet/internal/grading"
	"github.com/marksheet-io/marksheet/internal/render"
)

var gradeSeason string

var gradeCmd = &cobra.Command{
	Use:   "grade <system>",
	Short: "Compute the final result under a grading system",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg()
		ctx := cmd.Context()
		store, dbh, err := openStore(ctx, c)
		if err != nil {
			return err
		}
		defer dbh.Close()

		table, err := loadTable(c)
		if err != nil {
			return err
		}
		snap, err := store.Snapshot(ctx)
		if err != nil {
			return err
		}
		subjects, err := grading.Aggregate(snap.GradingInput(), gradeSeason)
		if err != nil {
			return err
		}
		res, err := grading.Evaluate(subjects, args[0], table)
		if err != nil {
			return err
		}
		render.Summary(os.Stdout, res)
		return nil
	},
}

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "List the supported grading system identifiers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range grading.SystemIDs() {
			fmt.Println(id)
		}
	},
}

func init() {
	gradeCmd.Flags().StringVar(&gradeSeason, "season", "", "restrict aggregation to one season")
	rootCmd.AddCommand(gradeCmd, systemsCmd)
}
