package grading

// DefaultTable returns the built-in band catalog.
//
// msg-sg follows the O-level scale where fewer points are better (A1 = 1,
// F9 = 9). uasrp-sg lists H1-scale rank points; H2 subjects earn double via
// the MapGrade side rule, so a straight-A H2 maps to 20.
func DefaultTable() Table {
	return Table{
		"msg-sg": {
			{Label: "A1", Bound: 75, Points: 1},
			{Label: "A2", Bound: 70, Points: 2},
			{Label: "B3", Bound: 65, Points: 3},
			{Label: "B4", Bound: 60, Points: 4},
			{Label: "C5", Bound: 55, Points: 5},
			{Label: "C6", Bound: 50, Points: 6},
			{Label: "D7", Bound: 45, Points: 7},
			{Label: "E8", Bound: 40, Points: 8},
			{Label: "F9", Bound: 0, Points: 9},
		},
		"uasrp-sg": {
			{Label: "A", Bound: 70, Points: 10},
			{Label: "B", Bound: 60, Points: 8.75},
			{Label: "C", Bound: 55, Points: 7.5},
			{Label: "D", Bound: 50, Points: 6.25},
			{Label: "E", Bound: 45, Points: 5},
			{Label: "S", Bound: 40, Points: 2.5},
			{Label: "U", Bound: 0, Points: 0},
		},
	}
}
