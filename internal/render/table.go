package render

import (
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/marksheet-io/marksheet/internal/grading"
)

// Aggregates renders the per-subject score table. When a grade sheet is given
// the table grows Grade and Points columns.
func Aggregates(w io.Writer, subjects map[string]grading.SubjectScore, sheet map[string]grading.Grade) {
	names := make([]string, 0, len(subjects))
	for name := range subjects {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(w)
	header := []string{"Subject", "Type", "Score"}
	if sheet != nil {
		header = append(header, "Grade", "Points")
	}
	table.SetHeader(header)

	for _, name := range names {
		s := subjects[name]
		row := []string{Colorize(name), s.Type, formatScore(s.Score)}
		if sheet != nil {
			g := sheet[name]
			row = append(row, g.Label, formatScore(g.Points))
		}
		table.Append(row)
	}
	table.Render()
}

// Seasons renders the raw test tree, one row per test.
func Seasons(w io.Writer, seasons map[string]map[string]grading.Test) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Season", "Test", "Subject", "Score", "Full", "Weightage"})

	seasonNames := make([]string, 0, len(seasons))
	for name := range seasons {
		seasonNames = append(seasonNames, name)
	}
	sort.Strings(seasonNames)
	for _, season := range seasonNames {
		tests := seasons[season]
		testNames := make([]string, 0, len(tests))
		for name := range tests {
			testNames = append(testNames, name)
		}
		sort.Strings(testNames)
		for _, name := range testNames {
			t := tests[name]
			table.Append([]string{
				season, name, Colorize(t.Subject),
				formatScore(t.Score), formatScore(t.Full), formatScore(t.Weightage),
			})
		}
	}
	table.Render()
}

// Summary prints the dispatcher's one-line result.
func Summary(w io.Writer, res grading.Result) {
	_, _ = color.New(color.FgGreen, color.Bold).Fprintln(w, res.Summary)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
