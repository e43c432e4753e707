package fen

import (
	"sync"

	"github.com/chessstego/chessstego-go/internal/errors"
)

// The fixed carrier position. Both kings are tucked into opposite corners
// behind their own pieces, leaving 56 empty squares to carry digits. The
// trailing FEN fields are constant: the payload lives entirely in the
// piece-placement field.
const (
	basePieceField = "6bk/6rb/8/8/8/8/BR6/KB6"
	trailingFields = "w - - 1 1"
)

// square is a board coordinate, row 0 = rank 8, col 0 = file a.
type square struct {
	row, col int
}

// Knight placement would give check from these squares, so the symbol table
// there drops the offending knight color and the digit base shrinks to 10.
var (
	blackKnightExcluded = map[square]bool{
		{5, 1}: true, // b3
		{6, 2}: true, // c2
	}
	whiteKnightExcluded = map[square]bool{
		{1, 5}: true, // f7
		{2, 6}: true, // g6
	}
)

// digitBase returns the digit base a square can carry: 9 on the first and
// last rank (no pawns there), otherwise 11, reduced to 10 on the four
// knight-excluded squares.
func digitBase(sq square) int {
	if sq.row == 0 || sq.row == 7 {
		return 9
	}
	if blackKnightExcluded[sq] || whiteKnightExcluded[sq] {
		return 10
	}
	return 11
}

// symbolTable is a bijection between digits 0..base-1 and piece symbols.
// Digit 0 is always the empty square.
type symbolTable struct {
	symbols string       // symbols[i] is the piece for digit i+1
	digits  map[byte]int // inverse lookup, empty square excluded
}

func newSymbolTable(symbols string) *symbolTable {
	t := &symbolTable{symbols: symbols, digits: make(map[byte]int, len(symbols))}
	for i := 0; i < len(symbols); i++ {
		t.digits[symbols[i]] = i + 1
	}
	return t
}

// The four fixed tables, in the original alternating white/black symbol
// order. Restricted drops both pawns; the knight tables drop one knight.
var (
	tableRestricted    = newSymbolTable("QqRrBbNn")
	tableFull          = newSymbolTable("QqRrBbNnPp")
	tableNoBlackKnight = newSymbolTable("QqRrBbNPp")
	tableNoWhiteKnight = newSymbolTable("QqRrBbnPp")
)

// base returns the number of digit values the table covers, counting empty.
func (t *symbolTable) base() int {
	return len(t.symbols) + 1
}

// symbol maps a digit to its piece letter, 0 meaning empty (zero byte).
// It fails with ErrDigitOutOfRange when digit is outside 0..base-1.
func (t *symbolTable) symbol(digit int) (byte, error) {
	if digit < 0 || digit > len(t.symbols) {
		return 0, errors.Wrapf(errors.ErrDigitOutOfRange, "digit %d, base %d", digit, t.base())
	}
	if digit == 0 {
		return 0, nil
	}
	return t.symbols[digit-1], nil
}

// digit maps a piece letter back to its digit, the empty square (zero byte)
// being 0. A symbol not present in the table fails with ErrUnknownSymbol;
// this is the decoder's defense against foreign FENs.
func (t *symbolTable) digit(symbol byte) (int, error) {
	if symbol == 0 {
		return 0, nil
	}
	d, ok := t.digits[symbol]
	if !ok {
		return 0, errors.ErrUnknownSymbol
	}
	return d, nil
}

// tableFor selects the symbol table matching a square's base and exclusion
// category.
func tableFor(sq square) *symbolTable {
	switch {
	case digitBase(sq) == 9:
		return tableRestricted
	case blackKnightExcluded[sq]:
		return tableNoBlackKnight
	case whiteKnightExcluded[sq]:
		return tableNoWhiteKnight
	default:
		return tableFull
	}
}

// boardLayout is the fixed digit-position order: the 56 free squares of the
// base board in row-major scan order, each with its base and symbol table.
type boardLayout struct {
	free   []square
	bases  []int
	tables []*symbolTable
}

const freeSquareCount = 56

var (
	layoutOnce   sync.Once
	cachedLayout *boardLayout
	layoutErr    error
)

// layout returns the shared read-only board layout, computing it on first
// use. An error here means the fixed board constant is inconsistent, which
// is a programming invariant violation rather than an input failure.
func layout() (*boardLayout, error) {
	layoutOnce.Do(func() {
		cachedLayout, layoutErr = buildLayout()
	})
	return cachedLayout, layoutErr
}

func buildLayout() (*boardLayout, error) {
	b, err := expandPieceField(basePieceField)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMalformedBoard, err.Error())
	}

	l := &boardLayout{}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if b[r][c] != 0 {
				continue
			}
			sq := square{r, c}
			l.free = append(l.free, sq)
			l.bases = append(l.bases, digitBase(sq))
			l.tables = append(l.tables, tableFor(sq))
		}
	}
	if len(l.free) != freeSquareCount {
		return nil, errors.Wrapf(errors.ErrMalformedBoard,
			"%d free squares, want %d", len(l.free), freeSquareCount)
	}
	return l, nil
}
