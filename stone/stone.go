// Package stone defines the closed color enumeration for board points.
package stone

import (
	"fmt"
	"strings"
)

// Color is the occupancy state of a single intersection.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Glyph returns the single-character board glyph for the color.
func (c Color) Glyph() string {
	switch c {
	case Black:
		return "X"
	case White:
		return "O"
	}
	return "."
}

// Opponent returns the opposing stone color. It is total over the two
// stone colors and panics on Empty.
func Opponent(c Color) Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Sprintf("stone: no opponent for %v", c))
}

// Parse converts a user-entered color name ("b", "black", "w", "white")
// to a stone color.
func Parse(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "b", "black", "x":
		return Black, nil
	case "w", "white", "o":
		return White, nil
	}
	return Empty, fmt.Errorf("stone: unrecognized color %q", s)
}
