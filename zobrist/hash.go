package zobrist

import (
	"lukechampine.com/frand"

	"goban/stone"
)

const bignum = 1<<63 - 2

// History tracks a zobrist hash for a running game position plus a ring
// of retained prior position values used for the ko/superko repeat test.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// The random tables are generated per game and shared read-only between a
// History and its clones, so a simulated move hashed on a clone is
// directly comparable with values retained on the original.
type History struct {
	// table[idx][color-1] for the two stone colors; empty contributes
	// nothing to the hash.
	table [][2]uint64

	current uint64
	past    []uint64
	window  int
}

// NewHistory creates a fresh position history for a dim x dim board.
// window is the number of retained prior positions the repeat test sees:
// <= 0 retains the whole game (positional superko), 2 approximates simple
// ko. All boards participating in the same superko check must share one
// window setting.
func NewHistory(dim, window int) *History {
	table := make([][2]uint64, dim*dim)
	for i := range table {
		for j := 0; j < 2; j++ {
			table[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	return &History{table: table, window: window}
}

// Clone returns an independent copy sharing the random tables. Mutating
// the clone never touches the original's state.
func (h *History) Clone() *History {
	past := make([]uint64, len(h.past))
	copy(past, h.past)
	return &History{table: h.table, current: h.current, past: past, window: h.window}
}

// Rotate retains the current position value and begins a new tentative
// position layer. Values older than the window are discarded.
func (h *History) Rotate() {
	h.past = append(h.past, h.current)
	if h.window > 0 && len(h.past) > h.window {
		h.past = h.past[len(h.past)-h.window:]
	}
}

// Update incorporates one point's color change. The XOR toggle makes
// placement and removal of the same stone the same call; updating with
// Empty is a no-op.
func (h *History) Update(idx int, c stone.Color) {
	if c == stone.Empty {
		return
	}
	h.current ^= h.table[idx][c-1]
}

// IsRepeat reports whether the current value equals some retained prior
// position within the configured window.
func (h *History) IsRepeat() bool {
	for _, p := range h.past {
		if p == h.current {
			return true
		}
	}
	return false
}

// Current returns the hash value of the position being tracked.
func (h *History) Current() uint64 {
	return h.current
}

// Window returns the configured history window.
func (h *History) Window() int {
	return h.window
}
