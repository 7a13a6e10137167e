package board

import (
	"goban/geom"
	"goban/stone"
)

// EyeType classifies a point as a single-point eye for White or Black, or
// neither (Empty). A point is an eye for a color iff every grid neighbor
// is a stone of that color and the opponent cannot immediately capture by
// playing there: a surround in atari, where the opponent's placement
// would be a valid or even ko-barred capture, does not count. This is a
// heuristic, not life-and-death analysis.
func (b *Board) EyeType(idx int) stone.Color {
	if b.positions[idx].color != stone.Empty {
		return stone.Empty
	}
	for _, c := range []stone.Color{stone.White, stone.Black} {
		if b.surroundedBy(idx, c) && b.CaptureType(stone.Opponent(c), idx) == CaptureNone {
			return c
		}
	}
	return stone.Empty
}

func (b *Board) surroundedBy(idx int, c stone.Color) bool {
	for _, n := range geom.Neighbors(b.dim, idx) {
		if b.positions[n].color != c {
			return false
		}
	}
	return true
}

// FinalScore sums each color's captured stones with its count of
// single-point eyes. An approximation valid for simple, fully settled
// positions; contested or unresolved boards will be misjudged.
func (b *Board) FinalScore() Score {
	s := Score{White: b.whiteScore, Black: b.blackScore}
	for idx := range b.positions {
		switch b.EyeType(idx) {
		case stone.White:
			s.White++
		case stone.Black:
			s.Black++
		}
	}
	return s
}
