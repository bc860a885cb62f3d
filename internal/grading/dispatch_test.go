package grading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marksheet-io/marksheet/internal/grading"
)

func TestEvaluateMSGL1R5(t *testing.T) {
	subjects := map[string]grading.SubjectScore{
		"EL":   {Type: "L", Score: 80}, // A1, 1
		"Math": {Type: "S", Score: 75}, // A1, 1
		"Sci":  {Type: "S", Score: 65}, // B3, 3
		"Geo":  {Type: "H", Score: 70}, // A2, 2
		"Hist": {Type: "H", Score: 55}, // C5, 5
		"Lit":  {Type: "H", Score: 45}, // D7, 7
		"Art":  {Type: "S", Score: 50}, // C6, 6
	}
	res, err := grading.Evaluate(subjects, "msg-sg-l1r5", grading.DefaultTable())
	require.NoError(t, err)

	// Selected: EL, Math, Sci, Geo, Hist, Art -> 1+1+3+2+5+6
	assert.Equal(t, 18.0, res.Total)
	assert.Equal(t, "you have 18 points.", res.Summary)
}

func TestEvaluateMSGAvgAll(t *testing.T) {
	subjects := map[string]grading.SubjectScore{
		"EL":   {Type: "L", Score: 80}, // A1, 1
		"Math": {Type: "S", Score: 75}, // A1, 1
		"CL":   {Type: "L", Score: 62}, // B4, 4
	}
	res, err := grading.Evaluate(subjects, "msg-sg-avg-all", grading.DefaultTable())
	require.NoError(t, err)

	assert.Equal(t, 2.0, res.Average)
	assert.Equal(t, "you have a 2.00 MSG.", res.Summary)
}

func TestEvaluateMSGAvgL2R5(t *testing.T) {
	subjects := map[string]grading.SubjectScore{
		"EL":   {Type: "L", Score: 80}, // A1, 1
		"CL":   {Type: "L", Score: 62}, // B4, 4
		"Math": {Type: "S", Score: 75}, // A1, 1
		"Art":  {Type: "S", Score: 50}, // C6, 6
		"Geo":  {Type: "H", Score: 70}, // A2, 2
		"Hist": {Type: "H", Score: 55}, // C5, 5
		"Lit":  {Type: "H", Score: 45}, // D7, 7
		"Sci":  {Type: "S", Score: 65}, // B3, 3
	}
	res, err := grading.Evaluate(subjects, "msg-sg-avg-l2r5", grading.DefaultTable())
	require.NoError(t, err)

	// Selected seven: EL, CL, Math, Art, Geo, Hist, Sci -> (1+4+1+6+2+5+3)/7
	assert.Equal(t, 3.14, res.Average)
	assert.Equal(t, "you have a 3.14 MSG.", res.Summary)
}

func TestEvaluateUASRP90(t *testing.T) {
	subjects := map[string]grading.SubjectScore{
		"Phy":     {Type: "H2", Score: 80},  // A doubled, 20
		"Chem":    {Type: "H2", Score: 75},  // A doubled, 20
		"Math":    {Type: "H2", Score: 65},  // B doubled, 17.5
		"Econ":    {Type: "H2", Score: 55},  // downgraded to H1: C, 7.5
		"GP":      {Type: "GP", Score: 70},  // counts as H1: A, 10
		"Project": {Type: "PW", Score: 60},  // counts as H1: B, 8.75
		"Chinese": {Type: "MTL", Score: 75}, // optional: A, 10
	}
	res, err := grading.Evaluate(subjects, "uasrp-sg-90rp", grading.DefaultTable())
	require.NoError(t, err)

	// 57.5 (H2) + 26.25 (H1) = 83.75; adding Chinese: 93.75/100 > 83.75/90.
	assert.Equal(t, 93.75, res.Total)
	assert.Equal(t, "you have 93.75 RP.", res.Summary)
}

func TestEvaluateUASRP70(t *testing.T) {
	subjects := map[string]grading.SubjectScore{
		"Phy":     {Type: "H2", Score: 80},  // 20
		"Chem":    {Type: "H2", Score: 75},  // 20
		"Math":    {Type: "H2", Score: 65},  // 17.5
		"GP":      {Type: "GP", Score: 70},  // 10
		"Hist":    {Type: "H1", Score: 70},  // optional: A, 10
		"Chinese": {Type: "MTL", Score: 75}, // optional: A, 10
	}
	res, err := grading.Evaluate(subjects, "uasrp-sg-70rp", grading.DefaultTable())
	require.NoError(t, err)

	// 67.5/70 = 96.4; best optional gives 77.5/90 = 86.1, so nothing is added.
	assert.Equal(t, 67.5, res.Total)
	assert.Equal(t, "you have 67.5 RP.", res.Summary)
}

func TestEvaluateUASRPDowngradeFeedsQuota(t *testing.T) {
	// Four H2 subjects, no native H1: the downgraded H2 must fill the H1 side.
	subjects := map[string]grading.SubjectScore{
		"Phy":     {Type: "H2", Score: 80}, // 20
		"Chem":    {Type: "H2", Score: 75}, // 20
		"Math":    {Type: "H2", Score: 70}, // 20
		"Econ":    {Type: "H2", Score: 68}, // downgraded: B as H1, 8.75
		"GP":      {Type: "GP", Score: 70}, // 10
		"Project": {Type: "PW", Score: 70}, // 10
	}
	res, err := grading.Evaluate(subjects, "uasrp-sg-90rp", grading.DefaultTable())
	require.NoError(t, err)
	assert.Equal(t, 88.75, res.Total)
	assert.Equal(t, "you have 88.75 RP.", res.Summary)
}

func TestEvaluateUnsupported(t *testing.T) {
	_, err := grading.Evaluate(nil, "msg-sg-l6r5", grading.DefaultTable())
	assert.ErrorIs(t, err, grading.ErrUnsupportedSystem)
}

func TestEvaluateInsufficient(t *testing.T) {
	subjects := map[string]grading.SubjectScore{
		"Phy": {Type: "H2", Score: 80},
	}
	_, err := grading.Evaluate(subjects, "uasrp-sg-70rp", grading.DefaultTable())
	var insufficient *grading.InsufficientCandidatesError
	assert.ErrorAs(t, err, &insufficient)
}

func TestGradeSheet(t *testing.T) {
	subjects := map[string]grading.SubjectScore{
		"Phy": {Type: "H2", Score: 80},
		"GP":  {Type: "GP", Score: 70},
	}
	sheet, err := grading.GradeSheet(subjects, "uasrp-sg-90rp", grading.DefaultTable())
	require.NoError(t, err)
	assert.Equal(t, grading.Grade{Label: "A", Points: 20}, sheet["Phy"])
	assert.Equal(t, grading.Grade{Label: "A", Points: 10}, sheet["GP"])
}

func TestParseSystem(t *testing.T) {
	for _, id := range grading.SystemIDs() {
		_, err := grading.ParseSystem(id)
		assert.NoError(t, err, id)
	}
	_, err := grading.ParseSystem("msg-sg")
	assert.ErrorIs(t, err, grading.ErrUnsupportedSystem)
}