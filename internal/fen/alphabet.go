package fen

import (
	"math/big"
	"strings"

	"github.com/chessstego/chessstego-go/internal/errors"
)

// Alphabet is the 28-symbol message alphabet. A character's position is its
// digit value in base 28, so "a" is zero and leading a's vanish from the
// integer form; the length header exists to bring them back.
const Alphabet = "abcdefghijklmnopqrstuvwxyz \\"

// MaxMessageLen is the longest message the 54 body squares can always carry.
const MaxMessageLen = 38

var alphabetBase = big.NewInt(int64(len(Alphabet)))

// MessageToInt interprets a message as a base-28 integer, most significant
// character first. It fails with ErrInvalidCharacter on any character
// outside the alphabet.
func MessageToInt(message string) (*big.Int, error) {
	value := new(big.Int)
	digit := new(big.Int)
	for _, ch := range message {
		idx := strings.IndexRune(Alphabet, ch)
		if idx < 0 {
			return nil, errors.Wrapf(errors.ErrInvalidCharacter, "character %q", ch)
		}
		digit.SetInt64(int64(idx))
		value.Mul(value, alphabetBase)
		value.Add(value, digit)
	}
	return value, nil
}

// IntToMessage converts value back into a message of exactly length
// characters, padding with leading a's. A nonzero remainder after length
// digits means the length header did not match the value; that is surfaced
// as ErrValueTooLarge rather than silently truncated.
func IntToMessage(value *big.Int, length int) (string, error) {
	rem := new(big.Int).Set(value)
	digit := new(big.Int)
	out := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		rem.QuoRem(rem, alphabetBase, digit)
		out[i] = Alphabet[digit.Int64()]
	}
	if rem.Sign() != 0 {
		return "", errors.Wrapf(errors.ErrValueTooLarge,
			"value has more than %d base-%d digits", length, len(Alphabet))
	}
	return string(out), nil
}
