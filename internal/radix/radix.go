// Package radix converts between unbounded integers and mixed-radix digit
// sequences, where each digit position carries its own base. The FEN codec
// uses it with 56 per-square bases whose combined capacity far exceeds any
// machine word, so all arithmetic is on math/big.
package radix

import (
	"math/big"

	"github.com/chessstego/chessstego-go/internal/errors"
)

// Capacity returns the number of distinct values representable by the given
// bases, i.e. the product of all bases.
func Capacity(bases []int) *big.Int {
	capacity := big.NewInt(1)
	for _, b := range bases {
		capacity.Mul(capacity, big.NewInt(int64(b)))
	}
	return capacity
}

// ToDigits converts a non-negative value into one digit per base, most
// significant first. Position i holds floor(value / product(bases[i+1:]))
// after earlier positions have been subtracted out. It fails with
// ErrValueTooLarge when value is at or above the combined capacity.
func ToDigits(value *big.Int, bases []int) ([]int, error) {
	products := suffixProducts(bases)

	rem := new(big.Int).Set(value)
	quo := new(big.Int)
	digits := make([]int, len(bases))
	for i := range bases {
		quo.QuoRem(rem, products[i], rem)
		if quo.Cmp(big.NewInt(int64(bases[i]))) >= 0 {
			return nil, errors.Wrapf(errors.ErrValueTooLarge,
				"value exceeds capacity of %d positions", len(bases))
		}
		digits[i] = int(quo.Int64())
	}
	// The last position's suffix product is 1, so any non-empty bases
	// consume the whole value. Only empty bases can leave a remainder.
	if rem.Sign() != 0 {
		return nil, errors.Wrapf(errors.ErrValueTooLarge,
			"value exceeds capacity of %d positions", len(bases))
	}
	return digits, nil
}

// ToValue converts a digit sequence (most significant first) back into an
// integer. Digits already validated against their bases cannot fail here.
func ToValue(digits []int, bases []int) *big.Int {
	products := suffixProducts(bases)

	value := new(big.Int)
	term := new(big.Int)
	for i, d := range digits {
		term.Mul(big.NewInt(int64(d)), products[i])
		value.Add(value, term)
	}
	return value
}

// suffixProducts returns, for each position i, the product of bases[i+1:].
func suffixProducts(bases []int) []*big.Int {
	products := make([]*big.Int, len(bases))
	acc := big.NewInt(1)
	for i := len(bases) - 1; i >= 0; i-- {
		products[i] = new(big.Int).Set(acc)
		acc.Mul(acc, big.NewInt(int64(bases[i])))
	}
	return products
}
