package pgn

import (
	"math/bits"
	"sort"
	"strings"

	"github.com/chessstego/chessstego-go/internal/engine"
)

// canonicalize returns the legal moves sorted by their UCI key (origin,
// destination, promotion). Encoder and decoder both derive move indices
// from this order, so it must not depend on the engine's enumeration order.
func canonicalize(moves []engine.Move) []engine.Move {
	sorted := make([]engine.Move, len(moves))
	copy(sorted, moves)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UCI < sorted[j].UCI
	})
	return sorted
}

// bitsNeeded returns floor(log2(n)) for n > 1 and 0 otherwise. A single
// legal move is forced and carries no information.
func bitsNeeded(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}

// indexOf finds the canonical index of a SAN token among the sorted legal
// moves, or -1. Tokens are matched exactly first, then with check, mate,
// and annotation suffixes stripped so lightly reformatted game text still
// decodes.
func indexOf(moves []engine.Move, token string) int {
	for i, m := range moves {
		if m.SAN == token {
			return i
		}
	}
	stripped := strings.TrimRight(token, "+#!?")
	for i, m := range moves {
		if strings.TrimRight(m.SAN, "+#") == stripped {
			return i
		}
	}
	return -1
}
