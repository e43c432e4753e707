// Package fen hides messages in the free squares of a fixed chess position.
//
// The carrier board leaves 56 squares empty. Each free square holds one
// digit of a mixed-radix number: base 9 on the back ranks where pawns are
// illegal, base 11 elsewhere, base 10 where one knight color would give
// check. The first two free squares form a length header in the restricted
// base-9 system; the remaining 54 carry the message as a base-28 integer.
// Digits map to piece symbols through per-square tables, digit 0 always
// meaning the square stays empty, so the empty message reproduces the base
// board exactly.
package fen

import (
	"math/big"
	"strings"

	"github.com/chessstego/chessstego-go/internal/errors"
	"github.com/chessstego/chessstego-go/internal/radix"
)

// headerSquares is the number of leading free squares reserved for the
// message length. Two base-9 positions represent 0..80, which comfortably
// covers lengths 0..38.
const headerSquares = 2

// Encode hides message in a FEN string. The message may only use the
// 28-character alphabet and at most MaxMessageLen characters.
func Encode(message string) (string, error) {
	if len(message) > MaxMessageLen {
		return "", errors.Wrapf(errors.ErrMessageTooLong,
			"%d characters, maximum %d", len(message), MaxMessageLen)
	}
	msgInt, err := MessageToInt(message)
	if err != nil {
		return "", err
	}

	l, err := layout()
	if err != nil {
		return "", err
	}
	headerBases := l.bases[:headerSquares]
	bodyBases := l.bases[headerSquares:]

	length := big.NewInt(int64(len(message)))
	if length.Cmp(radix.Capacity(headerBases)) >= 0 {
		return "", errors.Wrapf(errors.ErrHeaderOverflow, "length %d", len(message))
	}
	headerDigits, err := radix.ToDigits(length, headerBases)
	if err != nil {
		return "", err
	}

	if msgInt.Cmp(radix.Capacity(bodyBases)) >= 0 {
		return "", errors.Wrapf(errors.ErrBodyOverflow,
			"message needs more than %d digit positions", len(bodyBases))
	}
	bodyDigits, err := radix.ToDigits(msgInt, bodyBases)
	if err != nil {
		return "", err
	}

	b, err := expandPieceField(basePieceField)
	if err != nil {
		return "", errors.Wrap(errors.ErrMalformedBoard, err.Error())
	}
	digits := append(headerDigits, bodyDigits...)
	for i, d := range digits {
		sq := l.free[i]
		sym, err := l.tables[i].symbol(d)
		if err != nil {
			return "", &errors.SquareError{Err: err, Row: sq.row, Col: sq.col, Digit: d}
		}
		b[sq.row][sq.col] = sym
	}

	return b.pieceField() + " " + trailingFields, nil
}

// Decode recovers the message hidden in a FEN produced by Encode. The free
// squares are read in the same fixed order with the same per-square tables,
// so any symbol a square cannot carry fails with ErrUnknownSymbol.
func Decode(fen string) (string, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return "", errors.Wrapf(errors.ErrMalformedFEN, "%d fields, want 6", len(fields))
	}
	b, err := expandPieceField(fields[0])
	if err != nil {
		return "", err
	}

	l, err := layout()
	if err != nil {
		return "", err
	}

	digits := make([]int, len(l.free))
	for i, sq := range l.free {
		d, err := l.tables[i].digit(b[sq.row][sq.col])
		if err != nil {
			return "", &errors.SquareError{
				Err:    err,
				Row:    sq.row,
				Col:    sq.col,
				Symbol: string(b[sq.row][sq.col]),
				Digit:  -1,
			}
		}
		digits[i] = d
	}

	length := radix.ToValue(digits[:headerSquares], l.bases[:headerSquares])
	msgInt := radix.ToValue(digits[headerSquares:], l.bases[headerSquares:])

	return IntToMessage(msgInt, int(length.Int64()))
}
