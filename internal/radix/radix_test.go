package radix

import (
	"math/big"
	"testing"

	"github.com/chessstego/chessstego-go/internal/errors"
	"github.com/chessstego/chessstego-go/internal/testutil"
)

func TestCapacity(t *testing.T) {
	testutil.AssertEqual(t, Capacity(nil).Int64(), int64(1))
	testutil.AssertEqual(t, Capacity([]int{9, 9}).Int64(), int64(81))
	testutil.AssertEqual(t, Capacity([]int{2, 3, 5}).Int64(), int64(30))
}

func TestToDigits(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		bases []int
		want  []int
	}{
		{"zero", 0, []int{9, 9}, []int{0, 0}},
		{"uniform base", 42, []int{10, 10}, []int{4, 2}},
		{"mixed bases", 29, []int{5, 2, 3}, []int{4, 1, 2}}, // 4*6 + 1*3 + 2
		{"max value", 80, []int{9, 9}, []int{8, 8}},
		{"single position", 7, []int{11}, []int{7}},
		{"empty bases", 0, nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDigits(big.NewInt(tt.value), tt.bases)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestToDigits_ValueTooLarge(t *testing.T) {
	_, err := ToDigits(big.NewInt(81), []int{9, 9})
	testutil.AssertErrorIs(t, err, errors.ErrValueTooLarge)

	_, err = ToDigits(big.NewInt(1), nil)
	testutil.AssertErrorIs(t, err, errors.ErrValueTooLarge)
}

func TestToValue(t *testing.T) {
	testutil.AssertEqual(t, ToValue([]int{4, 1, 2}, []int{5, 2, 3}).Int64(), int64(29))
	testutil.AssertEqual(t, ToValue([]int{0, 0}, []int{9, 9}).Int64(), int64(0))
	testutil.AssertEqual(t, ToValue([]int{8, 8}, []int{9, 9}).Int64(), int64(80))
}

// TestRoundTrip_BoardBases exercises the conversion with per-square bases in
// the shape the FEN codec uses, over every value near the capacity edges.
func TestRoundTrip_BoardBases(t *testing.T) {
	bases := []int{9, 11, 10, 11, 9, 10, 11, 11}
	capacity := Capacity(bases)

	checks := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(123456),
		new(big.Int).Sub(capacity, big.NewInt(1)),
	}
	for _, v := range checks {
		digits, err := ToDigits(v, bases)
		testutil.AssertNoError(t, err, "value %s", v)
		back := ToValue(digits, bases)
		testutil.AssertTrue(t, back.Cmp(v) == 0, "value %s came back as %s", v, back)
	}

	_, err := ToDigits(capacity, bases)
	testutil.AssertErrorIs(t, err, errors.ErrValueTooLarge, "capacity itself must not fit")
}

// TestRoundTrip_BigValues confirms exact arithmetic well past 64 bits.
func TestRoundTrip_BigValues(t *testing.T) {
	bases := make([]int, 54)
	for i := range bases {
		bases[i] = 11
	}

	// 28^38 - 1, the largest base-28 integer of a maximum-length message.
	v := new(big.Int).Exp(big.NewInt(28), big.NewInt(38), nil)
	v.Sub(v, big.NewInt(1))

	digits, err := ToDigits(v, bases)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, ToValue(digits, bases).Cmp(v) == 0)
}
