package fen

import (
	"testing"

	"github.com/chessstego/chessstego-go/internal/errors"
	"github.com/chessstego/chessstego-go/internal/testutil"
)

func TestLayout_FreeSquares(t *testing.T) {
	l, err := layout()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(l.free), 56)

	// Row-major scan order: each square strictly after its predecessor.
	for i := 1; i < len(l.free); i++ {
		prev, cur := l.free[i-1], l.free[i]
		testutil.AssertTrue(t,
			cur.row > prev.row || (cur.row == prev.row && cur.col > prev.col),
			"free squares out of scan order at index %d", i)
	}

	// The first two free squares (the header) sit on the top rank.
	testutil.AssertTrue(t, l.free[0] == square{0, 0})
	testutil.AssertTrue(t, l.free[1] == square{0, 1})
	testutil.AssertEqual(t, l.bases[:2], []int{9, 9})
}

func TestLayout_BaseDistribution(t *testing.T) {
	l, err := layout()
	testutil.AssertNoError(t, err)

	counts := map[int]int{}
	for _, b := range l.bases {
		counts[b]++
	}
	// 12 back-rank squares, 4 knight-excluded squares, 40 full squares.
	testutil.AssertEqual(t, counts, map[int]int{9: 12, 10: 4, 11: 40})
}

func TestDigitBase(t *testing.T) {
	tests := []struct {
		name string
		sq   square
		want int
	}{
		{"top rank", square{0, 3}, 9},
		{"bottom rank", square{7, 5}, 9},
		{"middle", square{3, 3}, 11},
		{"b3 black knight excluded", square{5, 1}, 10},
		{"c2 black knight excluded", square{6, 2}, 10},
		{"f7 white knight excluded", square{1, 5}, 10},
		{"g6 white knight excluded", square{2, 6}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, digitBase(tt.sq), tt.want)
		})
	}
}

func TestSymbolTables_Bijective(t *testing.T) {
	tables := map[string]*symbolTable{
		"restricted":      tableRestricted,
		"full":            tableFull,
		"no black knight": tableNoBlackKnight,
		"no white knight": tableNoWhiteKnight,
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			for d := 0; d < table.base(); d++ {
				sym, err := table.symbol(d)
				testutil.AssertNoError(t, err, "digit %d", d)
				back, err := table.digit(sym)
				testutil.AssertNoError(t, err, "digit %d", d)
				testutil.AssertEqual(t, back, d)
			}

			_, err := table.symbol(table.base())
			testutil.AssertErrorIs(t, err, errors.ErrDigitOutOfRange)
		})
	}
}

func TestSymbolTables_KnightExclusions(t *testing.T) {
	// Kings never appear in any table, pawns never on the back ranks.
	for _, sym := range []byte{'K', 'k'} {
		_, err := tableFull.digit(sym)
		testutil.AssertErrorIs(t, err, errors.ErrUnknownSymbol)
	}
	for _, sym := range []byte{'P', 'p'} {
		_, err := tableRestricted.digit(sym)
		testutil.AssertErrorIs(t, err, errors.ErrUnknownSymbol)
	}

	_, err := tableNoBlackKnight.digit('n')
	testutil.AssertErrorIs(t, err, errors.ErrUnknownSymbol)
	_, err = tableNoWhiteKnight.digit('N')
	testutil.AssertErrorIs(t, err, errors.ErrUnknownSymbol)
}

func TestTableFor(t *testing.T) {
	testutil.AssertTrue(t, tableFor(square{0, 0}) == tableRestricted)
	testutil.AssertTrue(t, tableFor(square{7, 7}) == tableRestricted)
	testutil.AssertTrue(t, tableFor(square{4, 4}) == tableFull)
	testutil.AssertTrue(t, tableFor(square{5, 1}) == tableNoBlackKnight)
	testutil.AssertTrue(t, tableFor(square{1, 5}) == tableNoWhiteKnight)
}

func TestExpandPieceField_Malformed(t *testing.T) {
	cases := []string{
		"8/8/8",             // too few ranks
		"8/8/8/8/8/8/8/7",   // short rank
		"9/8/8/8/8/8/8/8",   // long rank
		"rr7/8/8/8/8/8/8/8", // overfull rank
	}
	for _, field := range cases {
		_, err := expandPieceField(field)
		testutil.AssertErrorIs(t, err, errors.ErrMalformedFEN, "field %q", field)
	}
}

func TestPieceFieldRoundTrip(t *testing.T) {
	fields := []string{
		basePieceField,
		"8/8/8/8/8/8/8/8",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
	}
	for _, field := range fields {
		b, err := expandPieceField(field)
		testutil.AssertNoError(t, err, "field %q", field)
		testutil.AssertEqual(t, b.pieceField(), field)
	}
}
