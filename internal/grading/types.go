// Package grading computes standardized academic performance metrics from
// weighted test records: per-subject percentage aggregation, percentage-to-band
// mapping, and the subject-selection rules of the supported grading systems.
//
// The package is pure computation. It consumes a plain Record snapshot and a
// band Table per call, holds no state between calls, and performs no I/O.
package grading

import "strings"

// Record is the plain input shape handed over by the record store.
// The store owns path addressing and persistence; this package sees neither.
type Record struct {
	Subjects map[string]string          // subject name -> comma-joined type tags
	Seasons  map[string]map[string]Test // season -> test name -> test
}

// Test is one weighted test result belonging to a subject.
type Test struct {
	Subject   string
	Score     float64
	Full      float64
	Weightage float64
}

// SubjectScore is a subject after aggregation: its type tags and the rounded
// weighted-average percentage. Created fresh per aggregation, never persisted.
type SubjectScore struct {
	Type  string  `json:"type"`
	Score float64 `json:"score"`
}

// Tags returns the parsed, normalized type tag set.
func (s SubjectScore) Tags() []string { return splitTags(s.Type) }

// Scored is a (subject, score) pair flowing through categorization and
// selection. Type carries the tags effective at the current stage: the raw
// tag set for direct selection, or the single category tag once a subject has
// been routed through Categorize (a downgraded H2 subject is an H1 subject
// from that point on).
type Scored struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Score float64 `json:"score"`
}

func splitTags(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.ToUpper(strings.TrimSpace(p)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, t := range a {
		if hasTag(b, t) {
			return true
		}
	}
	return false
}
