package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marksheet-io/marksheet/internal/record"
)

func TestParsePath(t *testing.T) {
	cases := []struct {
		raw  string
		want record.Path
	}{
		{"subjects", record.Path{Kind: record.KindSubjects}},
		{"subjects/Math", record.Path{Kind: record.KindSubject, Name: "Math"}},
		{"/subjects/Math/", record.Path{Kind: record.KindSubject, Name: "Math"}},
		{"seasons", record.Path{Kind: record.KindSeasons}},
		{"seasons/mid", record.Path{Kind: record.KindSeason, Season: "mid"}},
		{"seasons/mid/ca1", record.Path{Kind: record.KindTest, Season: "mid", Name: "ca1"}},
	}
	for _, tc := range cases {
		got, err := record.ParsePath(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestParsePathRejects(t *testing.T) {
	for _, raw := range []string{
		"",
		"/",
		"grades",
		"subjects/Math/extra",
		"seasons/mid/ca1/extra",
		"seasons//ca1",
	} {
		_, err := record.ParsePath(raw)
		assert.Error(t, err, "path %q", raw)
	}
}
