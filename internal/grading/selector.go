package grading

import "sort"

// SelectBest assigns the best-scoring eligible subjects to each quota without
// reusing a subject across quotas. A quota key is one or more comma-joined
// type tags ("S,H" accepts subjects tagged S or H); its value is the required
// number of subjects. On success every quota's result holds exactly its
// required count.
//
// The assignment is deterministic and greedy, not globally optimal across
// overlapping quotas: candidates are considered in ascending tag-set size
// (fewer tags = more specific, claimed first by their narrow quotas), then
// descending score, then name; quotas are processed in descending required
// count, then key. Fails with InsufficientCandidatesError if any quota cannot
// be filled from the subjects still unused when it is processed.
func SelectBest(subjects map[string]SubjectScore, quotas map[string]int) (map[string][]Scored, error) {
	type candidate struct {
		name  string
		typ   string
		score float64
		tags  []string
		used  bool
	}
	cands := make([]*candidate, 0, len(subjects))
	for name, s := range subjects {
		cands = append(cands, &candidate{name: name, typ: s.Type, score: s.Score, tags: s.Tags()})
	}
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if len(a.tags) != len(b.tags) {
			return len(a.tags) < len(b.tags)
		}
		if a.score != b.score {
			return a.score > b.score
		}
		return a.name < b.name
	})

	type quota struct {
		key   string
		count int
		tags  []string
	}
	qs := make([]quota, 0, len(quotas))
	for key, count := range quotas {
		qs = append(qs, quota{key: key, count: count, tags: splitTags(key)})
	}
	sort.Slice(qs, func(i, j int) bool {
		if qs[i].count != qs[j].count {
			return qs[i].count > qs[j].count
		}
		return qs[i].key < qs[j].key
	})

	result := make(map[string][]Scored, len(qs))
	for _, q := range qs {
		eligible := make([]*candidate, 0, q.count)
		for _, c := range cands {
			if !c.used && intersects(c.tags, q.tags) {
				eligible = append(eligible, c)
			}
		}
		if len(eligible) < q.count {
			return nil, &InsufficientCandidatesError{Quota: q.key, Required: q.count, Available: len(eligible)}
		}
		picked := make([]Scored, 0, q.count)
		for _, c := range eligible[:q.count] {
			c.used = true
			picked = append(picked, Scored{Name: c.name, Type: c.typ, Score: c.score})
		}
		result[q.key] = picked
	}
	return result, nil
}
