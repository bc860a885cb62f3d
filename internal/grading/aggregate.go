package grading

import (
	"fmt"
	"math"
)

// Aggregate reduces every subject's weighted tests into a single rounded
// percentage. An empty season means all seasons. Each test contributes
// score/full*100 weighted by its weightage; the subject's percentage is the
// weighted mean, rounded to the nearest integer before any grade mapping.
//
// A subject that accumulates zero weightage fails with NoTestsError rather
// than dividing by zero.
func Aggregate(rec Record, season string) (map[string]SubjectScore, error) {
	type acc struct{ score, full float64 }
	accs := make(map[string]*acc, len(rec.Subjects))
	for name := range rec.Subjects {
		accs[name] = &acc{}
	}

	for seasonName, tests := range rec.Seasons {
		if season != "" && seasonName != season {
			continue
		}
		for testName, t := range tests {
			a, ok := accs[t.Subject]
			if !ok {
				return nil, fmt.Errorf("test %q references unknown subject %q", testName, t.Subject)
			}
			a.score += t.Score / t.Full * 100 * t.Weightage
			a.full += t.Weightage
		}
	}

	out := make(map[string]SubjectScore, len(accs))
	for name, a := range accs {
		if a.full == 0 {
			return nil, &NoTestsError{Subject: name}
		}
		out[name] = SubjectScore{Type: rec.Subjects[name], Score: math.Round(a.score / a.full)}
	}
	return out, nil
}
