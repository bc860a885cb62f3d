package grading

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Band is one grading tier: the minimum percentage that earns it and the
// points it awards.
type Band struct {
	Label  string  `json:"grade"`
	Bound  float64 `json:"bound"`
	Points float64 `json:"points"`
}

// Grade is the mapped outcome for a single subject.
type Grade struct {
	Label  string  `json:"grade"`
	Points float64 `json:"points"`
}

// Table maps a system family key (e.g. "msg-sg") to its bands, listed from
// highest bound to lowest. Slice order is semantic: lookup scans in this order
// and the last entry is the catch-all.
type Table map[string][]Band

// reducedKey keeps the first two hyphen-separated components of a system
// identifier, so "uasrp-sg-70rp" and "uasrp-sg-90rp" share one band table.
func reducedKey(system string) string {
	parts := strings.SplitN(system, "-", 3)
	if len(parts) < 2 {
		return system
	}
	return parts[0] + "-" + parts[1]
}

// MapGrade maps a percentage to a band under the given system. The match is
// the first band whose bound the percentage reaches; a percentage below every
// bound lands on the last band. Subjects tagged H2 earn double points under
// the uasrp-sg family.
func (t Table) MapGrade(system, typ string, pct float64) (Grade, error) {
	bands, ok := t[reducedKey(system)]
	if !ok || len(bands) == 0 {
		return Grade{}, fmt.Errorf("%w: %s", ErrUnknownSystem, system)
	}
	i := 0
	for i < len(bands)-1 && pct < bands[i].Bound {
		i++
	}
	g := Grade{Label: bands[i].Label, Points: bands[i].Points}
	if strings.HasPrefix(system, "uasrp-sg") && hasTag(splitTags(typ), "H2") {
		g.Points *= 2
	}
	return g, nil
}

// tableEntry is the on-disk form of one system's bands. JSON objects do not
// preserve key order, so the catalog is an array.
type tableEntry struct {
	System string `json:"system"`
	Bands  []Band `json:"bands"`
}

// ParseTable decodes a band catalog from its JSON array form.
func ParseTable(data []byte) (Table, error) {
	var entries []tableEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse band table: %w", err)
	}
	t := make(Table, len(entries))
	for _, e := range entries {
		if e.System == "" {
			return nil, fmt.Errorf("parse band table: entry without system key")
		}
		if len(e.Bands) == 0 {
			return nil, fmt.Errorf("parse band table: system %q has no bands", e.System)
		}
		t[e.System] = e.Bands
	}
	return t, nil
}

// ReadTable decodes a band catalog from a reader, e.g. a catalog file.
func ReadTable(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseTable(data)
}
