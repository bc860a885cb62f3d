package http

import (
	"encoding/json"
	"errors"
	"strings"

	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marksheet-io/marksheet/internal/grading"
	"github.com/marksheet-io/marksheet/internal/record"
)

type aggregateRow struct {
	Type   string  `json:"type"`
	Score  float64 `json:"score"`
	Grade  string  `json:"grade,omitempty"`
	Points float64 `json:"points,omitempty"`
}

// GET /aggregates?season=&system=
// Returns per-subject aggregated percentages; with a system, each row also
// carries its mapped grade.
func AggregatesHandler(store record.Store, table grading.Table) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		season := strings.TrimSpace(r.URL.Query().Get("season"))
		system := strings.TrimSpace(r.URL.Query().Get("system"))

		snap, err := store.Snapshot(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		subjects, err := grading.Aggregate(snap.GradingInput(), season)
		if err != nil {
			writeGradingError(w, err)
			return
		}

		rows := make(map[string]aggregateRow, len(subjects))
		for name, s := range subjects {
			rows[name] = aggregateRow{Type: s.Type, Score: s.Score}
		}
		if system != "" {
			sheet, err := grading.GradeSheet(subjects, system, table)
			if err != nil {
				writeGradingError(w, err)
				return
			}
			for name, g := range sheet {
				row := rows[name]
				row.Grade = g.Label
				row.Points = g.Points
				rows[name] = row
			}
		}
		_ = json.NewEncoder(w).Encode(rows)
	}
}

// GET /results/{system}?season=
func ResultHandler(store record.Store, table grading.Table) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		system := strings.TrimSpace(chi.URLParam(r, "system"))
		season := strings.TrimSpace(r.URL.Query().Get("season"))

		snap, err := store.Snapshot(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		subjects, err := grading.Aggregate(snap.GradingInput(), season)
		if err != nil {
			writeGradingError(w, err)
			return
		}
		res, err := grading.Evaluate(subjects, system, table)
		if err != nil {
			writeGradingError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

// GET /systems
func SystemsHandler() nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_ = json.NewEncoder(w).Encode(grading.SystemIDs())
	}
}

// writeGradingError maps engine failures: bad identifiers are the caller's
// request (400); records that cannot satisfy the system are unprocessable (422).
func writeGradingError(w nethttp.ResponseWriter, err error) {
	var noTests *grading.NoTestsError
	var insufficient *grading.InsufficientCandidatesError
	switch {
	case errors.Is(err, grading.ErrUnsupportedSystem), errors.Is(err, grading.ErrUnknownSystem):
		nethttp.Error(w, err.Error(), nethttp.StatusBadRequest)
	case errors.As(err, &noTests), errors.As(err, &insufficient):
		nethttp.Error(w, err.Error(), nethttp.StatusUnprocessableEntity)
	default:
		nethttp.Error(w, err.Error(), nethttp.StatusInternalServerError)
	}
}
