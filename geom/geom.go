// Package geom maps between (x, y) coordinates and linear point indices
// on a square board, enumerates grid neighbors, and produces the display
// labels used in diagnostics. Points are indexed 0..dim²-1 in row-major
// scan order, top-left first.
package geom

import (
	"fmt"
	"strconv"
	"strings"

	"goban/cache"
)

// ToIndex maps zero-based (x, y) coordinates to a linear point index.
func ToIndex(dim, x, y int) int {
	return y*dim + x
}

// Coords is the inverse of ToIndex.
func Coords(dim, idx int) (x, y int) {
	return idx % dim, idx / dim
}

// adjacency returns the per-point neighbor table for dim, building and
// caching it on first use. Each entry lists the 2-4 grid-adjacent indices,
// no diagonals.
func adjacency(dim int) [][]int {
	if dim < 1 {
		panic(fmt.Sprintf("geom: dimension must be >= 1, got %d", dim))
	}
	obj, err := cache.Load("geom:adjacency:"+strconv.Itoa(dim), func(key string) (interface{}, error) {
		adj := make([][]int, dim*dim)
		for idx := range adj {
			x, y := Coords(dim, idx)
			nbrs := make([]int, 0, 4)
			if y > 0 {
				nbrs = append(nbrs, idx-dim)
			}
			if x > 0 {
				nbrs = append(nbrs, idx-1)
			}
			if x < dim-1 {
				nbrs = append(nbrs, idx+1)
			}
			if y < dim-1 {
				nbrs = append(nbrs, idx+dim)
			}
			adj[idx] = nbrs
		}
		return adj, nil
	})
	if err != nil {
		panic(err)
	}
	return obj.([][]int)
}

// Neighbors returns the grid-adjacent indices of idx. The returned slice
// is shared and must not be modified.
func Neighbors(dim, idx int) []int {
	return adjacency(dim)[idx]
}

// ColumnLetter returns the display letter for a zero-based column,
// skipping 'I' per board-labeling convention.
func ColumnLetter(col int) byte {
	c := byte('A' + col)
	if c >= 'I' {
		c++
	}
	return c
}

// Label returns the display label for a point, e.g. "D4". Columns are
// lettered A.. left to right, rows numbered 1..dim top to bottom. For
// diagnostics only.
func Label(idx, dim int) string {
	x, y := Coords(dim, idx)
	return fmt.Sprintf("%c%d", ColumnLetter(x), y+1)
}

// ParseLabel converts a display label back to a point index.
func ParseLabel(dim int, s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return 0, fmt.Errorf("geom: bad label %q", s)
	}
	c := s[0]
	if c == 'I' || c < 'A' || c > 'Z' {
		return 0, fmt.Errorf("geom: bad column in label %q", s)
	}
	x := int(c - 'A')
	if c > 'I' {
		x--
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, fmt.Errorf("geom: bad row in label %q", s)
	}
	y := row - 1
	if x < 0 || x >= dim || y < 0 || y >= dim {
		return 0, fmt.Errorf("geom: label %q out of range for dim %d", s, dim)
	}
	return ToIndex(dim, x, y), nil
}
