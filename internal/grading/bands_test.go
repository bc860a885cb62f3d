package grading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marksheet-io/marksheet/internal/grading"
)

func twoBandTable() grading.Table {
	return grading.Table{
		"uasrp-sg": {
			{Label: "A*", Bound: 80, Points: 4},
			{Label: "C", Bound: 0, Points: 1},
		},
	}
}

func TestMapGradeBoundary(t *testing.T) {
	table := grading.DefaultTable()

	// A percentage exactly on a bound maps to that band, not the one below.
	g, err := table.MapGrade("msg-sg-l1r5", "L", 75)
	require.NoError(t, err)
	assert.Equal(t, "A1", g.Label)
	assert.Equal(t, 1.0, g.Points)

	g, err = table.MapGrade("msg-sg-l1r5", "L", 74)
	require.NoError(t, err)
	assert.Equal(t, "A2", g.Label)

	// Zero lands on the lowest band, never "no match".
	g, err = table.MapGrade("msg-sg-l1r5", "L", 0)
	require.NoError(t, err)
	assert.Equal(t, "F9", g.Label)
	assert.Equal(t, 9.0, g.Points)
}

func TestMapGradeH2Doubling(t *testing.T) {
	table := twoBandTable()

	// H2 subject under a uasrp-sg system earns double points.
	g, err := table.MapGrade("uasrp-sg-90rp", "H2", 85)
	require.NoError(t, err)
	assert.Equal(t, "A*", g.Label)
	assert.Equal(t, 8.0, g.Points)

	// Same band, no H2 tag: undoubled.
	g, err = table.MapGrade("uasrp-sg-90rp", "H1", 85)
	require.NoError(t, err)
	assert.Equal(t, "A*", g.Label)
	assert.Equal(t, 4.0, g.Points)

	// Doubling is a uasrp-sg family rule only.
	msg := grading.Table{"msg-sg": twoBandTable()["uasrp-sg"]}
	g, err = msg.MapGrade("msg-sg-l1r5", "H2", 85)
	require.NoError(t, err)
	assert.Equal(t, 4.0, g.Points)
}

func TestMapGradeReducedKey(t *testing.T) {
	table := grading.DefaultTable()

	// "uasrp-sg-70rp" and "uasrp-sg-90rp" share the "uasrp-sg" table.
	g70, err := table.MapGrade("uasrp-sg-70rp", "H1", 70)
	require.NoError(t, err)
	g90, err := table.MapGrade("uasrp-sg-90rp", "H1", 70)
	require.NoError(t, err)
	assert.Equal(t, g70, g90)
	assert.Equal(t, "A", g70.Label)
}

func TestMapGradeUnknownSystem(t *testing.T) {
	table := grading.DefaultTable()
	_, err := table.MapGrade("ib-ch-42", "H1", 50)
	assert.ErrorIs(t, err, grading.ErrUnknownSystem)
}

func TestParseTable(t *testing.T) {
	data := []byte(`[
		{"system":"msg-sg","bands":[{"grade":"A1","bound":75,"points":1},{"grade":"F9","bound":0,"points":9}]}
	]`)
	table, err := grading.ParseTable(data)
	require.NoError(t, err)

	g, err := table.MapGrade("msg-sg-l1r5", "L", 80)
	require.NoError(t, err)
	assert.Equal(t, "A1", g.Label)

	_, err = grading.ParseTable([]byte(`[{"bands":[{"grade":"A","bound":0,"points":1}]}]`))
	assert.Error(t, err)

	_, err = grading.ParseTable([]byte(`[{"system":"msg-sg","bands":[]}]`))
	assert.Error(t, err)
}
