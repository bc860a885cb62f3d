package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marksheet-io/marksheet/internal/record"
	"github.com/marksheet-io/marksheet/internal/render"
)

var (
	testSubject string
	testScore   float64
	testFull    float64
	testWeight  float64
	subjectTint string
)

var setCmd = &cobra.Command{
	Use:   "set <path> [type]",
	Short: "Create or update a subject or a test",
	Long: `Write to a record path.

  set subjects/<name> "<type tags>"
  set seasons/<season>/<test> --subject <name> --score N --full N --weight N`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := record.ParsePath(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		store, dbh, err := openStore(ctx, cfg())
		if err != nil {
			return err
		}
		defer dbh.Close()

		switch p.Kind {
		case record.KindSubject:
			typ := ""
			if len(args) == 2 {
				typ = args[1]
			}
			tint := subjectTint
			if tint == "" {
				tint = render.HexColor(p.Name)
			}
			return store.PutSubject(ctx, record.Subject{Name: p.Name, Type: typ, Color: tint})
		case record.KindTest:
			return store.PutTest(ctx, p.Season, record.Test{
				Name:      p.Name,
				Subject:   testSubject,
				Score:     testScore,
				Full:      testFull,
				Weightage: testWeight,
			})
		default:
			return fmt.Errorf("path %q is not writable", args[0])
		}
	},
}

var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print a record path as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := record.ParsePath(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		store, dbh, err := openStore(ctx, cfg())
		if err != nil {
			return err
		}
		defer dbh.Close()

		var v any
		switch p.Kind {
		case record.KindSubjects:
			v, err = store.ListSubjects(ctx)
		case record.KindSubject:
			v, err = store.GetSubject(ctx, p.Name)
		case record.KindSeasons:
			var snap record.Snapshot
			snap, err = store.Snapshot(ctx)
			v = snap.Seasons
		case record.KindSeason:
			var snap record.Snapshot
			snap, err = store.Snapshot(ctx)
			if err == nil {
				tests, ok := snap.Seasons[p.Season]
				if !ok {
					return fmt.Errorf("season %q not found", p.Season)
				}
				v = tests
			}
		case record.KindTest:
			v, err = store.GetTest(ctx, p.Season, p.Name)
		}
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	},
}

var delCmd = &cobra.Command{
	Use:   "del <path>",
	Short: "Delete a subject, season or test",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := record.ParsePath(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		store, dbh, err := openStore(ctx, cfg())
		if err != nil {
			return err
		}
		defer dbh.Close()

		switch p.Kind {
		case record.KindSubject:
			return store.DeleteSubject(ctx, p.Name)
		case record.KindSeason:
			return store.DeleteSeason(ctx, p.Season)
		case record.KindTest:
			return store.DeleteTest(ctx, p.Season, p.Name)
		default:
			return fmt.Errorf("path %q is not deletable", args[0])
		}
	},
}

func init() {
	setCmd.Flags().StringVar(&testSubject, "subject", "", "subject a test belongs to")
	setCmd.Flags().Float64Var(&testScore, "score", 0, "marks scored")
	setCmd.Flags().Float64Var(&testFull, "full", 0, "full marks of the test")
	setCmd.Flags().Float64Var(&testWeight, "weight", 1, "weightage of the test")
	setCmd.Flags().StringVar(&subjectTint, "color", "", "display color (default: derived from name)")

	rootCmd.AddCommand(setCmd, getCmd, delCmd)
}
