package grading

import "sort"

// AugmentOptional greedily folds optional subjects into a running rank-point
// total. max is the point-pool denominator so far (70 or 90 in the supported
// systems); accepting a subject rebases it by 20 when the current max is 70,
// by 10 otherwise. A candidate is accepted only while it strictly improves
// the average total/max*100.
//
// Candidates are tried in descending mapped-point order, so the first
// non-improving candidate ends the scan: with the denominator growing by the
// same increment, no lower-point candidate can improve where a higher one
// failed. Returns the final total.
func AugmentOptional(total, max float64, pool []Scored, system string, table Table) (float64, error) {
	type rated struct {
		Scored
		points float64
	}
	rs := make([]rated, 0, len(pool))
	for _, s := range pool {
		g, err := table.MapGrade(system, s.Type, s.Score)
		if err != nil {
			return 0, err
		}
		rs = append(rs, rated{Scored: s, points: g.Points})
	}
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].points != rs[j].points {
			return rs[i].points > rs[j].points
		}
		return rs[i].Name < rs[j].Name
	})

	for _, r := range rs {
		inc := 10.0
		if max == 70 {
			inc = 20
		}
		newTotal, newMax := total+r.points, max+inc
		if newTotal/newMax*100 <= total/max*100 {
			break
		}
		total, max = newTotal, newMax
	}
	return total, nil
}
