package engine

import (
	"testing"

	"github.com/chessstego/chessstego-go/internal/errors"
	"github.com/chessstego/chessstego-go/internal/testutil"
)

func TestNewGame_InitialPosition(t *testing.T) {
	g := NewGame()

	testutil.AssertTrue(t, g.WhiteToMove())
	testutil.AssertTrue(t, !g.GameOver())
	testutil.AssertEqual(t, g.Result(), "*")

	moves := g.LegalMoves()
	testutil.AssertEqual(t, len(moves), 20)

	for _, m := range moves {
		testutil.AssertEqual(t, len(m.UCI), 4, "move %v", m)
		testutil.AssertTrue(t, m.SAN != "", "move %v has no SAN", m)
	}
}

func TestPlay(t *testing.T) {
	g := NewGame()

	testutil.AssertNoError(t, g.Play("e2e4"))
	testutil.AssertTrue(t, !g.WhiteToMove())

	testutil.AssertNoError(t, g.Play("e7e5"))
	testutil.AssertTrue(t, g.WhiteToMove())
}

func TestPlay_UnknownMove(t *testing.T) {
	g := NewGame()

	err := g.Play("e2e5")
	testutil.AssertErrorIs(t, err, errors.ErrUnknownMove)
}

func TestSANRendering(t *testing.T) {
	g := NewGame()

	sans := map[string]string{}
	for _, m := range g.LegalMoves() {
		sans[m.UCI] = m.SAN
	}
	testutil.AssertEqual(t, sans["g1f3"], "Nf3")
	testutil.AssertEqual(t, sans["e2e4"], "e4")
}

func TestCheckmate(t *testing.T) {
	g := NewGame()

	// Scholar's mate.
	for _, uci := range []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"} {
		testutil.AssertNoError(t, g.Play(uci), "move %s", uci)
	}

	testutil.AssertTrue(t, g.GameOver())
	testutil.AssertEqual(t, g.Result(), "1-0")
	testutil.AssertEqual(t, len(g.LegalMoves()), 0)
}

func TestNewGameFromFEN(t *testing.T) {
	// Rook check along the back rank leaves black exactly one move.
	g, err := NewGameFromFEN("R6k/8/5K2/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, !g.WhiteToMove())

	moves := g.LegalMoves()
	testutil.AssertEqual(t, len(moves), 1)
	testutil.AssertEqual(t, moves[0].UCI, "h8h7")

	_, err = NewGameFromFEN("not a fen")
	testutil.AssertErrorIs(t, err, errors.ErrMalformedFEN)
}
