package grading

import "sort"

// Categories is the exclusive partition of subjects used by the uasrp systems.
// Every subject lands in exactly one list.
type Categories struct {
	PW  []Scored
	GP  []Scored
	MTL []Scored
	H2  []Scored
	H1  []Scored
}

// categoryPriority is the matching order; the first tag a subject carries
// decides its bucket. Subjects matching none default to H1.
var categoryPriority = []string{"PW", "GP", "MTL", "H2", "H1"}

// Categorize partitions subjects by their highest-priority category tag.
// Each Scored entry's Type is the category it landed in, not the raw tag set:
// from here on a subject is treated as a member of its category.
func Categorize(subjects map[string]SubjectScore) Categories {
	var c Categories
	for name, s := range subjects {
		cat := "H1"
		tags := s.Tags()
		for _, p := range categoryPriority {
			if hasTag(tags, p) {
				cat = p
				break
			}
		}
		entry := Scored{Name: name, Type: cat, Score: s.Score}
		switch cat {
		case "PW":
			c.PW = append(c.PW, entry)
		case "GP":
			c.GP = append(c.GP, entry)
		case "MTL":
			c.MTL = append(c.MTL, entry)
		case "H2":
			c.H2 = append(c.H2, entry)
		default:
			c.H1 = append(c.H1, entry)
		}
	}
	return c
}

// DowngradeH2 caps the H2 list at max entries, keeping the highest scores and
// spilling the excess into H1. Spilled subjects are retagged H1 so later
// selection treats them as such. Total subject count across the two lists is
// unchanged.
func DowngradeH2(h2, h1 []Scored, max int) (cappedH2, extendedH1 []Scored) {
	sorted := append([]Scored(nil), h2...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Name < sorted[j].Name
	})
	if len(sorted) <= max {
		return sorted, h1
	}
	extendedH1 = append([]Scored(nil), h1...)
	for _, s := range sorted[max:] {
		s.Type = "H1"
		extendedH1 = append(extendedH1, s)
	}
	return sorted[:max], extendedH1
}

// retag returns a copy of the list with every entry's Type replaced.
func retag(list []Scored, typ string) []Scored {
	out := make([]Scored, len(list))
	for i, s := range list {
		s.Type = typ
		out[i] = s
	}
	return out
}

// subjectsFrom rebuilds a selection input map from category lists.
func subjectsFrom(lists ...[]Scored) map[string]SubjectScore {
	out := map[string]SubjectScore{}
	for _, list := range lists {
		for _, s := range list {
			out[s.Name] = SubjectScore{Type: s.Type, Score: s.Score}
		}
	}
	return out
}
