// Package board implements the incremental board-state engine for a
// two-player area-capture game on a square grid. The board keeps, after
// every stone placement, a consistent view of occupancy, connected groups
// (union-find over a flat point arena), per-group liberty aggregates with
// an O(1) algebraic atari test, zobrist position history for ko/superko
// classification, and a captures-plus-eyes score estimate.
package board

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"

	"goban/cache"
	"goban/geom"
	"goban/stone"
	"goban/zobrist"
)

// DefaultKoHistoryWindow retains the whole game for the repeat test
// (positional superko). A window of 2 approximates simple ko.
const DefaultKoHistoryWindow = 0

// A Point is one intersection of the grid. parent is the union-find link;
// a point is its group's root when parent equals its own index. The
// liberty aggregates (liberties, nbrSum, nbrSumSq) are meaningful only
// when read through the root, and count adjacency edges to empty points
// WITH multiplicity: a group touching one empty point from three stones
// counts three. whiteNbrs/blackNbrs are per-point adjacent stone counts,
// valid for every point regardless of occupancy.
type Point struct {
	color     stone.Color
	parent    int
	liberties int
	nbrSum    int
	nbrSumSq  int
	whiteNbrs int
	blackNbrs int
}

func initialPoint(idx int) Point {
	return Point{color: stone.Empty, parent: idx}
}

// Score holds captured-stone counts (and, from FinalScore, the eye
// estimate) per color.
type Score struct {
	White int
	Black int
}

// Board is the single owned, mutable object of the engine. All mutation
// goes through its methods; one Board belongs to one logical thread of
// control. Branching for look-ahead goes through Copy.
type Board struct {
	dim        int
	positions  []Point
	empty      map[int]struct{}
	whiteScore int
	blackScore int
	hash       *zobrist.History
}

// EmptyBoard constructs a blank board of the given dimension with the
// default ko history window. Blank point arenas are memoized per
// dimension; every call still gets its own mutable copy and a fresh hash.
func EmptyBoard(dim int) (*Board, error) {
	return EmptyBoardWindow(dim, DefaultKoHistoryWindow)
}

// EmptyBoardWindow is EmptyBoard with an explicit ko history window. The
// window must match across all boards participating in one superko check.
func EmptyBoardWindow(dim, window int) (*Board, error) {
	if dim < 1 {
		return nil, fmt.Errorf("board: dimension must be >= 1, got %d", dim)
	}
	tmpl, err := blankPositions(dim)
	if err != nil {
		return nil, err
	}
	positions := make([]Point, len(tmpl))
	copy(positions, tmpl)
	empty := make(map[int]struct{}, len(positions))
	for i := range positions {
		empty[i] = struct{}{}
	}
	return &Board{
		dim:       dim,
		positions: positions,
		empty:     empty,
		hash:      zobrist.NewHistory(dim, window),
	}, nil
}

func blankPositions(dim int) ([]Point, error) {
	obj, err := cache.Load("board:blank:"+strconv.Itoa(dim), func(key string) (interface{}, error) {
		pts := make([]Point, dim*dim)
		for i := range pts {
			pts[i] = initialPoint(i)
		}
		return pts, nil
	})
	if err != nil {
		return nil, err
	}
	return obj.([]Point), nil
}

// Copy returns an independent deep copy for branching. The zobrist random
// tables are shared read-only; everything else is copied.
func (b *Board) Copy() *Board {
	positions := make([]Point, len(b.positions))
	copy(positions, b.positions)
	empty := make(map[int]struct{}, len(b.empty))
	for k := range b.empty {
		empty[k] = struct{}{}
	}
	return &Board{
		dim:        b.dim,
		positions:  positions,
		empty:      empty,
		whiteScore: b.whiteScore,
		blackScore: b.blackScore,
		hash:       b.hash.Clone(),
	}
}

func (b *Board) Dim() int {
	return b.dim
}

// Color returns the occupancy of idx. Out-of-range indices are a caller
// error and panic via bounds checking, as do the other point accessors.
func (b *Board) Color(idx int) stone.Color {
	return b.positions[idx].color
}

// WhiteNeighbors returns the count of white stones adjacent to idx.
func (b *Board) WhiteNeighbors(idx int) int {
	return b.positions[idx].whiteNbrs
}

// BlackNeighbors returns the count of black stones adjacent to idx.
func (b *Board) BlackNeighbors(idx int) int {
	return b.positions[idx].blackNbrs
}

// Captures returns the running captured-stone counts.
func (b *Board) Captures() Score {
	return Score{White: b.whiteScore, Black: b.blackScore}
}

// Hash returns the current position hash value.
func (b *Board) Hash() uint64 {
	return b.hash.Current()
}

// EmptyPoints returns the unoccupied indices in ascending order.
func (b *Board) EmptyPoints() []int {
	idxs := lo.Keys(b.empty)
	sort.Ints(idxs)
	return idxs
}

// Fingerprint is a fast digest of the occupancy vector, for diagnostics
// and structural comparison. Unlike Hash it carries no game history.
func (b *Board) Fingerprint() uint64 {
	buf := make([]byte, len(b.positions))
	for i := range b.positions {
		buf[i] = byte(b.positions[i].color)
	}
	return xxhash.Sum64(buf)
}

// Root follows parent links to the group's canonical representative.
// Empty points are their own root.
func (b *Board) Root(idx int) int {
	for b.positions[idx].parent != idx {
		idx = b.positions[idx].parent
	}
	return idx
}

// Group returns the full connected set of same-color points containing
// idx, in ascending order, computed by traversal. An empty point is a
// singleton group of itself. This is the from-scratch enumeration used by
// the validator and scoring, not a union-find read.
func (b *Board) Group(idx int) []int {
	c := b.positions[idx].color
	if c == stone.Empty {
		return []int{idx}
	}
	seen := map[int]bool{idx: true}
	frontier := []int{idx}
	var members []int
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		members = append(members, v)
		for _, n := range geom.Neighbors(b.dim, v) {
			if !seen[n] && b.positions[n].color == c {
				seen[n] = true
				frontier = append(frontier, n)
			}
		}
	}
	sort.Ints(members)
	return members
}

// Liberties returns the group's liberty aggregate: adjacency edges from
// the group to empty points, counted with multiplicity.
func (b *Board) Liberties(idx int) int {
	return b.positions[b.Root(idx)].liberties
}

// Atari reports whether idx's group has exactly one distinct liberty
// point. Tested in O(1) against the root aggregates via the identity
// sum² == liberties × sumOfSquares, which holds iff every term of the
// neighbor-index multiset is identical (Cauchy-Schwarz equality for a
// constant sequence). A group with zero liberties is not in atari.
func (b *Board) Atari(idx int) bool {
	r := &b.positions[b.Root(idx)]
	return r.liberties > 0 && r.nbrSum*r.nbrSum == r.liberties*r.nbrSumSq
}

// ErrPositionRepeat is returned by Play when the committed move is a
// ko-disallowed capture.
var ErrPositionRepeat = fmt.Errorf("board: move recreates a prior position (ko)")

// Play commits a color change at idx, performing any resulting capture
// and updating score and hash. The caller should consult CaptureType
// first for legality; a ko-disallowed capture is refused here with
// ErrPositionRepeat rather than silently applied. Suicide is not policed;
// move legality beyond ko is the caller's concern.
func (b *Board) Play(c stone.Color, idx int) error {
	if c == stone.Empty {
		return fmt.Errorf("board: cannot play the empty color")
	}
	if idx < 0 || idx >= len(b.positions) {
		return fmt.Errorf("board: index %d out of range [0, %d)", idx, len(b.positions))
	}
	if b.positions[idx].color != stone.Empty {
		return fmt.Errorf("board: point %s is occupied", geom.Label(idx, b.dim))
	}
	ct, target := b.captureTarget(c, idx)
	if ct == CaptureKo {
		return ErrPositionRepeat
	}
	b.hash.Rotate()
	b.place(c, idx)
	if ct == CaptureValid {
		b.capture(target, c)
	}
	return nil
}

// place puts a stone of color c on the empty point idx, keeping every
// aggregate consistent: adjacent groups lose the liberty edge this point
// provided, neighbor stone counts are bumped, the new stone seeds its own
// empty-neighbor aggregates, and adjacent same-color groups are unioned.
func (b *Board) place(c stone.Color, idx int) {
	for _, n := range geom.Neighbors(b.dim, idx) {
		np := &b.positions[n]
		if c == stone.White {
			np.whiteNbrs++
		} else {
			np.blackNbrs++
		}
		if np.color != stone.Empty {
			// One decrement per adjacency edge; two stones of one
			// group adjacent to idx each remove their own edge.
			r := &b.positions[b.Root(n)]
			r.liberties--
			r.nbrSum -= idx
			r.nbrSumSq -= idx * idx
		}
	}

	p := &b.positions[idx]
	p.color = c
	p.parent = idx
	p.liberties, p.nbrSum, p.nbrSumSq = 0, 0, 0
	for _, n := range geom.Neighbors(b.dim, idx) {
		if b.positions[n].color == stone.Empty {
			p.liberties++
			p.nbrSum += n
			p.nbrSumSq += n * n
		}
	}
	delete(b.empty, idx)
	b.hash.Update(idx, c)

	for _, n := range geom.Neighbors(b.dim, idx) {
		if b.positions[n].color == c {
			b.union(idx, n)
		}
	}
}

// union merges the groups containing x and y. Aggregates add directly:
// the multiplicity rule makes the merge dedup-free, since each adjacency
// edge belongs to exactly one of the two groups.
func (b *Board) union(x, y int) {
	rx, ry := b.Root(x), b.Root(y)
	if rx == ry {
		return
	}
	px, py := &b.positions[rx], &b.positions[ry]
	py.parent = rx
	px.liberties += py.liberties
	px.nbrSum += py.nbrSum
	px.nbrSumSq += py.nbrSumSq
	py.liberties, py.nbrSum, py.nbrSumSq = 0, 0, 0
}

// capture removes the group containing target, credits the capturing
// color's score, and restores the freed liberties to every surviving
// adjacent group.
func (b *Board) capture(target int, by stone.Color) int {
	members := b.Group(target)
	victim := b.positions[target].color

	for _, m := range members {
		p := &b.positions[m]
		p.color = stone.Empty
		p.parent = m
		p.liberties, p.nbrSum, p.nbrSumSq = 0, 0, 0
		b.empty[m] = struct{}{}
		b.hash.Update(m, victim)
		for _, n := range geom.Neighbors(b.dim, m) {
			np := &b.positions[n]
			if victim == stone.White {
				np.whiteNbrs--
			} else {
				np.blackNbrs--
			}
		}
	}

	// Second pass, after every member is empty: each freed point is a new
	// liberty edge for each adjacent surviving group, with multiplicity.
	for _, m := range members {
		for _, n := range geom.Neighbors(b.dim, m) {
			if b.positions[n].color != stone.Empty {
				r := &b.positions[b.Root(n)]
				r.liberties++
				r.nbrSum += m
				r.nbrSumSq += m * m
			}
		}
	}

	if by == stone.White {
		b.whiteScore += len(members)
	} else {
		b.blackScore += len(members)
	}
	return len(members)
}
