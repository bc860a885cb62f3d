package grading

import (
	"fmt"
	"math"
	"strconv"
)

// System is a closed enum over the supported grading systems, so dispatch is
// an exhaustive match rather than open-ended string branching.
type System int

const (
	SystemUnsupported System = iota
	SystemMSGL1R5            // msg-sg-l1r5
	SystemMSGAvgAll          // msg-sg-avg-all
	SystemMSGAvgL2R5         // msg-sg-avg-l2r5
	SystemUASRP90            // uasrp-sg-90rp
	SystemUASRP70            // uasrp-sg-70rp
)

var systemIDs = map[string]System{
	"msg-sg-l1r5":     SystemMSGL1R5,
	"msg-sg-avg-all":  SystemMSGAvgAll,
	"msg-sg-avg-l2r5": SystemMSGAvgL2R5,
	"uasrp-sg-90rp":   SystemUASRP90,
	"uasrp-sg-70rp":   SystemUASRP70,
}

// ParseSystem resolves an identifier to a supported system.
func ParseSystem(id string) (System, error) {
	if s, ok := systemIDs[id]; ok {
		return s, nil
	}
	return SystemUnsupported, fmt.Errorf("%w: %s", ErrUnsupportedSystem, id)
}

// SystemIDs returns the supported identifiers in a fixed display order.
func SystemIDs() []string {
	return []string{"msg-sg-l1r5", "msg-sg-avg-all", "msg-sg-avg-l2r5", "uasrp-sg-90rp", "uasrp-sg-70rp"}
}

// Result is the outcome of one dispatch call.
type Result struct {
	System  string  `json:"system"`
	Total   float64 `json:"total,omitempty"`
	Average float64 `json:"average,omitempty"`
	Summary string  `json:"summary"`
}

// Evaluate computes the final result for one grading system over already
// aggregated subjects.
func Evaluate(subjects map[string]SubjectScore, systemID string, table Table) (Result, error) {
	sys, err := ParseSystem(systemID)
	if err != nil {
		return Result{}, err
	}
	switch sys {
	case SystemMSGL1R5:
		return msgPoints(subjects, systemID, table, map[string]int{"L": 1, "S": 1, "H": 1, "S,H": 3})
	case SystemMSGAvgAll:
		return msgAverage(subjects, systemID, table, nil)
	case SystemMSGAvgL2R5:
		return msgAverage(subjects, systemID, table, map[string]int{"L": 2, "S": 1, "H": 1, "S,H": 3})
	case SystemUASRP90:
		return rankPoints90(subjects, systemID, table)
	case SystemUASRP70:
		return rankPoints70(subjects, systemID, table)
	}
	return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedSystem, systemID)
}

// GradeSheet maps every aggregated subject to its grade under the given
// system, for table rendering.
func GradeSheet(subjects map[string]SubjectScore, systemID string, table Table) (map[string]Grade, error) {
	out := make(map[string]Grade, len(subjects))
	for name, s := range subjects {
		g, err := table.MapGrade(systemID, s.Type, s.Score)
		if err != nil {
			return nil, err
		}
		out[name] = g
	}
	return out, nil
}

func msgPoints(subjects map[string]SubjectScore, systemID string, table Table, quotas map[string]int) (Result, error) {
	selected, err := SelectBest(subjects, quotas)
	if err != nil {
		return Result{}, err
	}
	sum, err := sumPoints(selected, systemID, table)
	if err != nil {
		return Result{}, err
	}
	return Result{
		System:  systemID,
		Total:   sum,
		Summary: fmt.Sprintf("you have %s points.", formatPoints(sum)),
	}, nil
}

// msgAverage averages mapped points, over every subject when quotas is nil,
// otherwise over the selected subjects only. The average is rounded to two
// decimals at this final step only.
func msgAverage(subjects map[string]SubjectScore, systemID string, table Table, quotas map[string]int) (Result, error) {
	pool := subjects
	if quotas != nil {
		selected, err := SelectBest(subjects, quotas)
		if err != nil {
			return Result{}, err
		}
		pool = map[string]SubjectScore{}
		for _, list := range selected {
			for _, s := range list {
				pool[s.Name] = SubjectScore{Type: s.Type, Score: s.Score}
			}
		}
	}
	if len(pool) == 0 {
		return Result{}, fmt.Errorf("no subjects to average for %s", systemID)
	}
	var sum float64
	for _, s := range pool {
		g, err := table.MapGrade(systemID, s.Type, s.Score)
		if err != nil {
			return Result{}, err
		}
		sum += g.Points
	}
	avg := math.Round(sum/float64(len(pool))*100) / 100
	return Result{
		System:  systemID,
		Average: avg,
		Summary: fmt.Sprintf("you have a %.2f MSG.", avg),
	}, nil
}

// rankPoints90 is the 90-point scheme: three H2 and three H1 content subjects
// (GP and PW count as H1), with mother-tongue folded in on top when it helps.
func rankPoints90(subjects map[string]SubjectScore, systemID string, table Table) (Result, error) {
	c := Categorize(subjects)
	c.H2, c.H1 = DowngradeH2(c.H2, c.H1, 3)
	h1 := append(append(c.H1, retag(c.GP, "H1")...), retag(c.PW, "H1")...)
	selected, err := SelectBest(subjectsFrom(c.H2, h1), map[string]int{"H2": 3, "H1": 3})
	if err != nil {
		return Result{}, err
	}
	return rankPointsResult(selected, c.MTL, 90, systemID, table)
}

// rankPoints70 is the 70-point scheme: three H2 plus GP, with H1 content and
// mother-tongue as the optional pool.
func rankPoints70(subjects map[string]SubjectScore, systemID string, table Table) (Result, error) {
	c := Categorize(subjects)
	c.H2, c.H1 = DowngradeH2(c.H2, c.H1, 3)
	selected, err := SelectBest(subjectsFrom(c.H2, c.GP), map[string]int{"H2": 3, "GP": 1})
	if err != nil {
		return Result{}, err
	}
	pool := append(append([]Scored(nil), c.H1...), c.MTL...)
	return rankPointsResult(selected, pool, 70, systemID, table)
}

func rankPointsResult(selected map[string][]Scored, pool []Scored, max float64, systemID string, table Table) (Result, error) {
	sum, err := sumPoints(selected, systemID, table)
	if err != nil {
		return Result{}, err
	}
	total, err := AugmentOptional(sum, max, pool, systemID, table)
	if err != nil {
		return Result{}, err
	}
	return Result{
		System:  systemID,
		Total:   total,
		Summary: fmt.Sprintf("you have %s RP.", formatPoints(total)),
	}, nil
}

func sumPoints(selected map[string][]Scored, systemID string, table Table) (float64, error) {
	var sum float64
	for _, list := range selected {
		for _, s := range list {
			g, err := table.MapGrade(systemID, s.Type, s.Score)
			if err != nil {
				return 0, err
			}
			sum += g.Points
		}
	}
	return sum, nil
}

// formatPoints trims trailing zeros so whole totals print as integers.
func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
