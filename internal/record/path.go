package record

import (
	"fmt"
	"strings"
)

// PathKind narrows what a parsed path addresses.
type PathKind int

const (
	KindSubjects PathKind = iota // subjects
	KindSubject                  // subjects/<name>
	KindSeasons                  // seasons
	KindSeason                   // seasons/<season>
	KindTest                     // seasons/<season>/<test>
)

// Path is a resolved slash-delimited address into the record tree.
type Path struct {
	Kind   PathKind
	Season string
	Name   string
}

// ParsePath resolves a slash-delimited address. Accepted forms:
//
//	subjects
//	subjects/<name>
//	seasons
//	seasons/<season>
//	seasons/<season>/<test>
func ParsePath(raw string) (Path, error) {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return Path{}, fmt.Errorf("empty path")
	}
	segs := strings.Split(trimmed, "/")
	for _, s := range segs {
		if s == "" {
			return Path{}, fmt.Errorf("malformed path %q", raw)
		}
	}
	switch segs[0] {
	case "subjects":
		switch len(segs) {
		case 1:
			return Path{Kind: KindSubjects}, nil
		case 2:
			return Path{Kind: KindSubject, Name: segs[1]}, nil
		}
	case "seasons":
		switch len(segs) {
		case 1:
			return Path{Kind: KindSeasons}, nil
		case 2:
			return Path{Kind: KindSeason, Season: segs[1]}, nil
		case 3:
			return Path{Kind: KindTest, Season: segs[1], Name: segs[2]}, nil
		}
	}
	return Path{}, fmt.Errorf("unresolvable path %q", raw)
}
