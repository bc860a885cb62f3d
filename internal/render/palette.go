// Package render draws record and grading output for the terminal. Subject
// colors are derived from the subject name alone, so a subject keeps its color
// across runs and machines.
package render

import (
	"hash/fnv"

	"github.com/fatih/color"
)

type swatch struct {
	hex  string
	attr color.Attribute
}

var palette = []swatch{
	{"#2e9e44", color.FgGreen},
	{"#d8a22e", color.FgYellow},
	{"#2f6fd8", color.FgBlue},
	{"#b54fc4", color.FgMagenta},
	{"#2aa9a2", color.FgCyan},
	{"#d4513d", color.FgRed},
	{"#67c26b", color.FgHiGreen},
	{"#e0c35c", color.FgHiYellow},
	{"#6a9ee8", color.FgHiBlue},
	{"#cf86de", color.FgHiMagenta},
	{"#6cc7c1", color.FgHiCyan},
	{"#e58a74", color.FgHiRed},
}

func paletteIndex(name string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return int(h.Sum32() % uint32(len(palette)))
}

// HexColor returns the stable display color for a subject name.
func HexColor(name string) string {
	return palette[paletteIndex(name)].hex
}

// Colorize wraps a subject name in its stable terminal color.
func Colorize(name string) string {
	return color.New(palette[paletteIndex(name)].attr).Sprint(name)
}
