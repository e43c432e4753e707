package fen

import (
	"strings"

	"github.com/chessstego/chessstego-go/internal/errors"
)

// board is an 8x8 grid of piece symbols in FEN letter form, row 0 being the
// topmost rank (rank 8). A zero byte marks an empty square.
type board [8][8]byte

// expandPieceField parses a FEN piece-placement field into a board. It fails
// with ErrMalformedFEN unless the field has exactly 8 ranks of exactly 8
// squares each.
func expandPieceField(field string) (*board, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, errors.Wrapf(errors.ErrMalformedFEN, "%d ranks, want 8", len(ranks))
	}

	var b board
	for r, rank := range ranks {
		c := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if c >= 8 {
				return nil, errors.Wrapf(errors.ErrMalformedFEN, "rank %d overflows 8 squares", 8-r)
			}
			b[r][c] = byte(ch)
			c++
		}
		if c != 8 {
			return nil, errors.Wrapf(errors.ErrMalformedFEN, "rank %d has %d squares, want 8", 8-r, c)
		}
	}
	return &b, nil
}

// pieceField renders the board back into a FEN piece-placement field,
// collapsing runs of empty squares into counts.
func (b *board) pieceField() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < 8; c++ {
			if b[r][c] == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(b[r][c])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}
