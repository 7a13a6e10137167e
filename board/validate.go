package board

import (
	"fmt"
	"os"
	"reflect"

	"github.com/rs/zerolog/log"

	"goban/geom"
	"goban/stone"
)

// A positionCheck ties an incrementally maintained value to an
// independent from-scratch recomputation. applies gates the check on the
// point's color.
type positionCheck struct {
	name    string
	applies func(stone.Color) bool
	got     func(b *Board, idx int) interface{}
	want    func(b *Board, idx int) interface{}
}

func anyColor(stone.Color) bool { return true }

func stonesOnly(c stone.Color) bool { return c != stone.Empty }

func emptyOnly(c stone.Color) bool { return c == stone.Empty }

var positionChecks = []positionCheck{
	{"white-neighbors", anyColor,
		func(b *Board, i int) interface{} { return b.positions[i].whiteNbrs },
		func(b *Board, i int) interface{} { return b.countNeighbors(i, stone.White) }},
	{"black-neighbors", anyColor,
		func(b *Board, i int) interface{} { return b.positions[i].blackNbrs },
		func(b *Board, i int) interface{} { return b.countNeighbors(i, stone.Black) }},
	{"empty-root", emptyOnly,
		func(b *Board, i int) interface{} { return b.Root(i) },
		func(b *Board, i int) interface{} { return i }},
	{"group", stonesOnly,
		func(b *Board, i int) interface{} { return b.rootMembers(i) },
		func(b *Board, i int) interface{} { return b.Group(i) }},
	{"neighbor-sum", stonesOnly,
		func(b *Board, i int) interface{} { return b.positions[b.Root(i)].nbrSum },
		func(b *Board, i int) interface{} { s, _ := b.calcNeighborSums(i); return s }},
	{"neighbor-sum-of-squares", stonesOnly,
		func(b *Board, i int) interface{} { return b.positions[b.Root(i)].nbrSumSq },
		func(b *Board, i int) interface{} { _, sq := b.calcNeighborSums(i); return sq }},
	{"liberties", stonesOnly,
		func(b *Board, i int) interface{} { return b.Liberties(i) },
		func(b *Board, i int) interface{} { return b.calcLiberties(i) }},
	{"atari", stonesOnly,
		func(b *Board, i int) interface{} { return b.Atari(i) },
		func(b *Board, i int) interface{} { return len(b.distinctLiberties(i)) == 1 }},
}

// ValidatePositions recomputes every aggregate from scratch and asserts
// it against the incrementally maintained value, point by point. On
// mismatch the board is dumped and the check panics. This is a test and
// debug instrument; it never runs on the production mutation path.
func (b *Board) ValidatePositions() {
	for idx := range b.positions {
		c := b.positions[idx].color
		for _, chk := range positionChecks {
			if !chk.applies(c) {
				continue
			}
			got, want := chk.got(b, idx), chk.want(b, idx)
			if !reflect.DeepEqual(got, want) {
				fmt.Fprintln(os.Stderr, b.ToDisplayText())
				log.Error().
					Str("check", chk.name).
					Str("point", geom.Label(idx, b.dim)).
					Interface("have", got).
					Interface("want", want).
					Msg("incremental aggregate disagrees with recomputation")
				panic(fmt.Sprintf("board: %s mismatch at %s: have %v, want %v",
					chk.name, geom.Label(idx, b.dim), got, want))
			}
		}
	}
}

func (b *Board) countNeighbors(idx int, c stone.Color) int {
	count := 0
	for _, n := range geom.Neighbors(b.dim, idx) {
		if b.positions[n].color == c {
			count++
		}
	}
	return count
}

// rootMembers enumerates the points sharing idx's union-find root, the
// incremental counterpart of the Group traversal.
func (b *Board) rootMembers(idx int) []int {
	r := b.Root(idx)
	var members []int
	for i := range b.positions {
		if b.positions[i].color != stone.Empty && b.Root(i) == r {
			members = append(members, i)
		}
	}
	return members
}

// calcNeighborSums recomputes the multiplicity-weighted sum and sum of
// squares of empty-neighbor indices over idx's whole group.
func (b *Board) calcNeighborSums(idx int) (sum, sumSq int) {
	for _, m := range b.Group(idx) {
		for _, n := range geom.Neighbors(b.dim, m) {
			if b.positions[n].color == stone.Empty {
				sum += n
				sumSq += n * n
			}
		}
	}
	return sum, sumSq
}

// calcLiberties counts adjacency edges from idx's group to empty points,
// with multiplicity. This matches the stored aggregate's definition, not
// the distinct-point count.
func (b *Board) calcLiberties(idx int) int {
	count := 0
	for _, m := range b.Group(idx) {
		for _, n := range geom.Neighbors(b.dim, m) {
			if b.positions[n].color == stone.Empty {
				count++
			}
		}
	}
	return count
}

// distinctLiberties returns the set of distinct empty points adjacent to
// idx's group.
func (b *Board) distinctLiberties(idx int) map[int]struct{} {
	libs := make(map[int]struct{})
	for _, m := range b.Group(idx) {
		for _, n := range geom.Neighbors(b.dim, m) {
			if b.positions[n].color == stone.Empty {
				libs[n] = struct{}{}
			}
		}
	}
	return libs
}
