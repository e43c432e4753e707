// Package engine exposes the narrow rules-engine surface the PGN codec
// consumes: enumerate legal moves, apply one, and query game state. The
// codec never inspects board internals, so any engine satisfying Game can
// back it; the provided implementation wraps github.com/notnil/chess.
//
// A Game instance owns mutable board state and must not be shared across
// concurrent encode or decode calls.
package engine

import (
	chesslib "github.com/notnil/chess"

	"github.com/chessstego/chessstego-go/internal/errors"
)

// Move is one legal move in the current position, in the two notations the
// codec needs: UCI (origin square + destination square + optional promotion
// piece, the canonical ordering key) and SAN (the PGN rendering).
type Move struct {
	UCI string
	SAN string
}

// Game is the rules-engine contract.
type Game interface {
	// LegalMoves returns the legal moves of the current position, in no
	// particular order.
	LegalMoves() []Move

	// Play applies the legal move identified by its UCI string.
	Play(uci string) error

	// GameOver reports whether the game has ended by rule (checkmate,
	// stalemate, or another drawing condition).
	GameOver() bool

	// WhiteToMove reports whose turn it is.
	WhiteToMove() bool

	// Result returns the PGN result token: "1-0", "0-1", "1/2-1/2", or
	// "*" while the game is in progress.
	Result() string
}

type notnilGame struct {
	game *chesslib.Game
}

// NewGame returns a Game at the standard chess starting position.
func NewGame() Game {
	return &notnilGame{game: chesslib.NewGame()}
}

// NewGameFromFEN returns a Game starting from an arbitrary position. It
// fails with ErrMalformedFEN if the engine rejects the FEN.
func NewGameFromFEN(fen string) (Game, error) {
	opt, err := chesslib.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedFEN, "%v", err)
	}
	return &notnilGame{game: chesslib.NewGame(opt)}, nil
}

func (g *notnilGame) LegalMoves() []Move {
	pos := g.game.Position()
	valid := pos.ValidMoves()
	moves := make([]Move, len(valid))
	for i, m := range valid {
		moves[i] = Move{
			UCI: m.String(),
			SAN: chesslib.AlgebraicNotation{}.Encode(pos, m),
		}
	}
	return moves
}

func (g *notnilGame) Play(uci string) error {
	for _, m := range g.game.ValidMoves() {
		if m.String() == uci {
			return g.game.Move(m)
		}
	}
	return errors.Wrapf(errors.ErrUnknownMove, "uci %q", uci)
}

func (g *notnilGame) GameOver() bool {
	return g.game.Outcome() != chesslib.NoOutcome
}

func (g *notnilGame) WhiteToMove() bool {
	return g.game.Position().Turn() == chesslib.White
}

func (g *notnilGame) Result() string {
	return g.game.Outcome().String()
}
