package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"goban/stone"
)

// The concrete 9x9 scenario: a lone black stone has its liberties reduced
// to one by three white stones, then white plays the capturing point.
func TestSingleStoneCapture(t *testing.T) {
	is := is.New(t)
	b, err := EmptyBoard(9)
	is.NoErr(err)
	play(t, b, "b E5", "w E4", "w D5", "w F5")

	center := mustIndex(t, 9, "E5")
	capturePoint := mustIndex(t, 9, "E6")
	is.True(b.Atari(center))
	is.Equal(b.CaptureType(stone.White, capturePoint), CaptureValid)

	is.NoErr(b.Play(stone.White, capturePoint))
	is.Equal(b.Color(center), stone.Empty)
	is.Equal(b.Captures(), Score{White: 1, Black: 0})

	// all four surrounding white stones regained the freed liberty
	for _, label := range []string{"E4", "D5", "F5", "E6"} {
		idx := mustIndex(t, 9, label)
		_, ok := b.distinctLiberties(idx)[center]
		is.True(ok)
	}
	b.ValidatePositions()
}

func TestCaptureTypeDoesNotMutate(t *testing.T) {
	is := is.New(t)
	b, err := EmptyBoard(9)
	is.NoErr(err)
	play(t, b, "b E5", "w E4", "w D5", "w F5")
	before := b.Copy()
	hash := b.Hash()

	is.Equal(b.CaptureType(stone.White, mustIndex(t, 9, "E6")), CaptureValid)
	is.Equal(b.CaptureType(stone.Black, mustIndex(t, 9, "E6")), CaptureNone)

	is.Equal(b.Hash(), hash)
	is.True(b.Equals(before))
}

// Classic one-stone ko: capture, then the immediate recapture recreates
// the prior position and must classify as ko.
func TestKoRoundTrip(t *testing.T) {
	is := is.New(t)
	b, err := EmptyBoard(5)
	is.NoErr(err)
	play(t, b,
		"b B1", "w C1",
		"b A2", "w D2",
		"b B3", "w C3",
		"w B2", // the ko stone, in atari at C2
	)

	koStone := mustIndex(t, 5, "B2")
	koPoint := mustIndex(t, 5, "C2")
	is.True(b.Atari(koStone))

	// first capture: this position has never occurred
	is.Equal(b.CaptureType(stone.Black, koPoint), CaptureValid)
	is.NoErr(b.Play(stone.Black, koPoint))
	is.Equal(b.Color(koStone), stone.Empty)
	is.Equal(b.Captures(), Score{White: 0, Black: 1})

	// the recapture would recreate the pre-capture position
	is.Equal(b.CaptureType(stone.White, koStone), CaptureKo)
	err = b.Play(stone.White, koStone)
	is.True(errors.Is(err, ErrPositionRepeat))
	// nothing was applied
	is.Equal(b.Color(koPoint), stone.Black)
	is.Equal(b.Captures(), Score{White: 0, Black: 1})
	b.ValidatePositions()
}

func TestKoForgottenOutsideWindow(t *testing.T) {
	is := is.New(t)
	b, err := EmptyBoardWindow(5, 1)
	is.NoErr(err)
	play(t, b,
		"b B1", "w C1",
		"b A2", "w D2",
		"b B3", "w C3",
		"w B2",
	)
	koStone := mustIndex(t, 5, "B2")
	koPoint := mustIndex(t, 5, "C2")
	is.NoErr(b.Play(stone.Black, koPoint))
	// with a one-deep window the pre-capture position is already evicted
	is.Equal(b.CaptureType(stone.White, koStone), CaptureValid)
}

func TestMultiStoneCaptureSkipsKoCheck(t *testing.T) {
	is := is.New(t)
	b, err := EmptyBoard(5)
	is.NoErr(err)
	// two black stones in the corner, strangled by white
	play(t, b, "b A1", "b B1", "w A2", "w C1")
	is.True(b.Atari(mustIndex(t, 5, "A1")))
	capturePoint := mustIndex(t, 5, "B2")
	is.Equal(b.CaptureType(stone.White, capturePoint), CaptureValid)
	is.NoErr(b.Play(stone.White, capturePoint))
	is.Equal(b.Captures(), Score{White: 2, Black: 0})
	is.Equal(b.Color(mustIndex(t, 5, "A1")), stone.Empty)
	is.Equal(b.Color(mustIndex(t, 5, "B1")), stone.Empty)
	b.ValidatePositions()
}

func TestCaptureNoneWithoutAtariNeighbor(t *testing.T) {
	is := is.New(t)
	b, err := EmptyBoard(5)
	is.NoErr(err)
	play(t, b, "b C3")
	// the lone black stone has four liberties; no capture anywhere
	for _, e := range b.EmptyPoints() {
		is.Equal(b.CaptureType(stone.White, e), CaptureNone)
	}
}

// Capturing a group strictly increases the liberties of every group that
// was adjacent to the captured stones.
func TestLibertyMonotonicityUnderCapture(t *testing.T) {
	is := is.New(t)
	b, err := EmptyBoard(5)
	is.NoErr(err)
	play(t, b,
		"b B1", "w C1",
		"b A2", "w D2",
		"b B3", "w C3",
		"w B2",
	)
	adjacent := []string{"B1", "A2", "B3"} // black groups touching the ko stone
	before := make(map[string]int)
	for _, label := range adjacent {
		before[label] = b.Liberties(mustIndex(t, 5, label))
	}
	is.NoErr(b.Play(stone.Black, mustIndex(t, 5, "C2")))
	for _, label := range adjacent {
		is.True(b.Liberties(mustIndex(t, 5, label)) > before[label])
	}
}
