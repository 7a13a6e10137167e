package board

import (
	"goban/geom"
	"goban/stone"
)

// CaptureType classifies what playing a color at a point would do to
// adjacent opposing groups.
type CaptureType int

const (
	// CaptureNone: no adjacent opposing group would be captured.
	CaptureNone CaptureType = iota
	// CaptureValid: an opposing group is captured and the resulting
	// position has not occurred before.
	CaptureValid
	// CaptureKo: the capture would recreate a retained prior position and
	// is disallowed.
	CaptureKo
)

func (t CaptureType) String() string {
	switch t {
	case CaptureValid:
		return "valid"
	case CaptureKo:
		return "ko"
	}
	return "none"
}

// CaptureType reports, without mutating the board, whether playing c at
// idx captures an opposing group and whether that capture is disallowed
// as a position repeat. Only one capture target is evaluated per call:
// the first opposing neighbor whose group is in atari.
func (b *Board) CaptureType(c stone.Color, idx int) CaptureType {
	t, _ := b.captureTarget(c, idx)
	return t
}

func (b *Board) captureTarget(c stone.Color, idx int) (CaptureType, int) {
	if c == stone.Empty || b.positions[idx].color != stone.Empty {
		return CaptureNone, -1
	}
	opp := stone.Opponent(c)
	for _, n := range geom.Neighbors(b.dim, idx) {
		if b.positions[n].color != opp || !b.Atari(n) {
			continue
		}
		// idx is empty and adjacent, so it is the atari group's single
		// distinct liberty; playing here captures the group.
		members := b.Group(n)
		if len(members) == 1 {
			// Single-stone captures can recreate a prior position (ko).
			// Simulate on a cloned hash; the board's real hash state is
			// never touched.
			h := b.hash.Clone()
			h.Rotate()
			h.Update(idx, c)
			h.Update(members[0], opp)
			if h.IsRepeat() {
				return CaptureKo, n
			}
		}
		return CaptureValid, n
	}
	return CaptureNone, -1
}
