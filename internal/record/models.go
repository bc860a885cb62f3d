// Package record is the path-addressed store of subjects, seasons and tests.
// It owns persistence and path resolution; the grading engine only ever sees
// the plain snapshot shape produced here.
package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/marksheet-io/marksheet/internal/grading"
)

// ErrNotFound is wrapped by store lookups that miss.
var ErrNotFound = errors.New("not found")

// Subject is a recorded subject. Type is a comma-joined set of uppercase tags
// (H1, H2, GP, MTL, PW, L, S, H); Color is an opaque display hint assigned by
// the rendering layer and ignored by all computation.
type Subject struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
}

// Test is one weighted test result under a season.
type Test struct {
	Name      string  `json:"name"`
	Subject   string  `json:"subject"`
	Score     float64 `json:"score"`
	Full      float64 `json:"full"`
	Weightage float64 `json:"weightage"`
}

// Validate rejects tests that would corrupt aggregation.
func (t Test) Validate() error {
	if strings.TrimSpace(t.Subject) == "" {
		return errors.New("test needs a subject")
	}
	if t.Full <= 0 {
		return fmt.Errorf("test %q: full must be > 0", t.Name)
	}
	if t.Weightage <= 0 {
		return fmt.Errorf("test %q: weightage must be > 0", t.Name)
	}
	return nil
}

// NormalizeType uppercases and tidies a comma-joined tag string.
func NormalizeType(typ string) string {
	parts := strings.Split(typ, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.ToUpper(strings.TrimSpace(p)); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ",")
}

// Snapshot is a full copy of the record tree, safe to hand to the caller.
type Snapshot struct {
	Subjects map[string]Subject         `json:"subjects"`
	Seasons  map[string]map[string]Test `json:"seasons"`
}

// GradingInput converts a snapshot into the plain record shape the grading
// engine consumes.
func (s Snapshot) GradingInput() grading.Record {
	rec := grading.Record{
		Subjects: make(map[string]string, len(s.Subjects)),
		Seasons:  make(map[string]map[string]grading.Test, len(s.Seasons)),
	}
	for name, sub := range s.Subjects {
		rec.Subjects[name] = sub.Type
	}
	for season, tests := range s.Seasons {
		m := make(map[string]grading.Test, len(tests))
		for name, t := range tests {
			m[name] = grading.Test{Subject: t.Subject, Score: t.Score, Full: t.Full, Weightage: t.Weightage}
		}
		rec.Seasons[season] = m
	}
	return rec
}
