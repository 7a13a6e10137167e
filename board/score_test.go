package board

import (
	"testing"

	"github.com/matryer/is"

	"goban/stone"
)

func TestEyeTypeCorner(t *testing.T) {
	is := is.New(t)
	b, err := EmptyBoard(5)
	is.NoErr(err)
	play(t, b, "w B1", "w A2")
	is.Equal(b.EyeType(mustIndex(t, 5, "A1")), stone.White)
	// a stone is never an eye
	is.Equal(b.EyeType(mustIndex(t, 5, "B1")), stone.Empty)
	// an open point with mixed or missing surround is no eye
	is.Equal(b.EyeType(mustIndex(t, 5, "C3")), stone.Empty)
}

func TestEyeDeniedWhenSurroundCapturable(t *testing.T) {
	is := is.New(t)
	b, err := EmptyBoard(5)
	is.NoErr(err)
	// white B1/A2 enclose A1, but black strangles both stones: each is a
	// separate group in atari, so black could capture by playing A1.
	play(t, b, "w B1", "w A2", "b C1", "b B2", "b A3")
	is.True(b.Atari(mustIndex(t, 5, "B1")))
	is.True(b.Atari(mustIndex(t, 5, "A2")))
	is.True(b.CaptureType(stone.Black, mustIndex(t, 5, "A1")) != CaptureNone)
	is.Equal(b.EyeType(mustIndex(t, 5, "A1")), stone.Empty)
}

func TestFinalScoreAdditivity(t *testing.T) {
	is := is.New(t)
	b, err := EmptyBoard(5)
	is.NoErr(err)
	// a white eye in the A1 corner, a black eye in the E5 corner
	play(t, b, "w B1", "w A2", "b E4", "b D5")
	is.Equal(b.FinalScore(), Score{White: 1, Black: 1})

	// captures add on top of eyes: white takes a lone black stone
	play(t, b, "b D2", "w D1", "w C2", "w E2")
	is.True(b.Atari(mustIndex(t, 5, "D2")))
	is.NoErr(b.Play(stone.White, mustIndex(t, 5, "D3")))
	is.Equal(b.Captures(), Score{White: 1, Black: 0})

	score := b.FinalScore()
	// independently recount the eyes by direct neighbor inspection
	eyes := Score{}
	for idx := 0; idx < 25; idx++ {
		switch b.EyeType(idx) {
		case stone.White:
			eyes.White++
		case stone.Black:
			eyes.Black++
		}
	}
	is.Equal(score, Score{White: 1 + eyes.White, Black: 0 + eyes.Black})
	b.ValidatePositions()
}
