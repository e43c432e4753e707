// Package pgn hides messages in the move choices of a legal chess game.
//
// The message is compressed, prefixed with a 32-bit big-endian count of the
// payload bits, and the resulting stream drives move selection: at each ply
// with n legal moves the next floor(log2 n) bits, reduced modulo n, pick a
// move from the canonical (UCI-sorted) order. A forced move consumes no
// bits. Decoding replays the game, reads each played move's canonical index
// back out of the identical ordering, and stops purely by bit count; it
// never needs to detect game termination.
package pgn

import (
	"strings"

	"github.com/chessstego/chessstego-go/internal/bitstream"
	"github.com/chessstego/chessstego-go/internal/compress"
	"github.com/chessstego/chessstego-go/internal/engine"
	"github.com/chessstego/chessstego-go/internal/errors"
)

// lengthHeaderBits is the width of the payload bit-count prefix.
const lengthHeaderBits = 32

// Codec encodes and decodes messages against a rules engine and a
// compressor. Every call drives its own engine instance, so a Codec is safe
// for concurrent use.
type Codec struct {
	compressor     compress.Compressor
	newGame        func() engine.Game
	newGameFromFEN func(fen string) (engine.Game, error)
}

// NewCodec returns a Codec on the default collaborators: zlib compression
// and a standard game from the initial position.
func NewCodec() *Codec {
	return &Codec{
		compressor:     compress.NewZlib(),
		newGame:        engine.NewGame,
		newGameFromFEN: engine.NewGameFromFEN,
	}
}

// Encode hides a UTF-8 message in the move list of a legal game and
// returns the complete PGN text. It fails with ErrGameEnded if the game
// reaches checkmate or a draw before the whole bitstream is embedded.
func Encode(message string) (string, error) {
	return NewCodec().Encode(message)
}

// Decode recovers the message hidden in a PGN produced by Encode.
func Decode(text string) (string, error) {
	return NewCodec().Decode(text)
}

// Encode implements the message-to-PGN direction.
func (c *Codec) Encode(message string) (string, error) {
	compressed, err := c.compressor.Compress([]byte(message))
	if err != nil {
		return "", err
	}
	payload := bitstream.FromBytes(compressed)
	header, err := bitstream.FromUint(uint64(len(payload)), lengthHeaderBits)
	if err != nil {
		return "", err
	}
	stream := append(header, payload...)

	g := c.newGame()
	var sans []string
	pos := 0
	for pos < len(stream) {
		if g.GameOver() {
			return "", errors.Wrapf(errors.ErrGameEnded,
				"%d bits left to embed", len(stream)-pos)
		}

		moves := canonicalize(g.LegalMoves())
		n := len(moves)
		idx := 0
		if b := bitsNeeded(n); b > 0 {
			chunk := stream[pos:min(pos+b, len(stream))]
			pos += b
			for len(chunk) < b {
				// Tail of the message: pad with zero bits.
				chunk = append(chunk, 0)
			}
			idx = int(bitstream.ToUint(chunk)) % n
		}

		chosen := moves[idx]
		if err := g.Play(chosen.UCI); err != nil {
			return "", err
		}
		sans = append(sans, chosen.SAN)
	}

	// A game that ended by rule carries its real result. Otherwise the
	// moves simply stop, so label it a resignation by the side to move.
	result := g.Result()
	termination := ""
	if !g.GameOver() {
		termination = "resignation"
		if g.WhiteToMove() {
			result = "0-1"
		} else {
			result = "1-0"
		}
	}

	return renderGame(sans, result, termination), nil
}

// Decode implements the PGN-to-message direction.
func (c *Codec) Decode(text string) (string, error) {
	tokens := moveTokens(text)

	g := c.newGame()
	// Foreign games may carry a setup position in a FEN tag pair; replay
	// has to start there or every move index comes out wrong.
	if fen, ok := startingFEN(text); ok && c.newGameFromFEN != nil {
		var err error
		g, err = c.newGameFromFEN(fen)
		if err != nil {
			return "", err
		}
	}
	var extracted []byte
	declared := -1
	for ply, token := range tokens {
		if declared >= 0 && len(extracted) >= lengthHeaderBits+declared {
			break
		}

		moves := canonicalize(g.LegalMoves())
		idx := indexOf(moves, token)
		if idx < 0 {
			return "", &errors.MoveError{Err: errors.ErrUnknownMove, Ply: ply + 1, Token: token}
		}

		if b := bitsNeeded(len(moves)); b > 0 {
			// Keep the low b bits; the encoder never selects an index
			// needing more, so only foreign games lose anything here.
			bits, err := bitstream.FromUint(uint64(idx)&(1<<uint(b)-1), b)
			if err != nil {
				return "", err
			}
			extracted = append(extracted, bits...)
		}
		if err := g.Play(moves[idx].UCI); err != nil {
			return "", err
		}

		if declared < 0 && len(extracted) >= lengthHeaderBits {
			declared = int(bitstream.ToUint(extracted[:lengthHeaderBits]))
		}
	}

	if declared < 0 {
		return "", errors.Wrapf(errors.ErrDecompression,
			"game too short: %d header bits extracted, need %d", len(extracted), lengthHeaderBits)
	}
	payload := extracted[lengthHeaderBits:min(lengthHeaderBits+declared, len(extracted))]

	decompressed, err := c.compressor.Decompress(bitstream.ToBytes(payload))
	if err != nil {
		return "", err
	}
	return string(decompressed), nil
}

// startingFEN returns the position of a [FEN "..."] tag pair, if present.
func startingFEN(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "[FEN ") {
			continue
		}
		start := strings.IndexByte(trimmed, '"')
		end := strings.LastIndexByte(trimmed, '"')
		if start >= 0 && end > start {
			return trimmed[start+1 : end], true
		}
	}
	return "", false
}

// moveTokens strips a PGN down to its move tokens: tag-pair lines, escape
// lines, comments, variations, NAGs, move numbers, and result tokens are
// all discarded.
func moveTokens(text string) []string {
	var movetext strings.Builder
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "%") {
			continue
		}
		movetext.WriteString(line)
		movetext.WriteByte('\n')
	}

	var tokens []string
	depth := 0
	inComment := false
	for _, field := range strings.Fields(movetext.String()) {
		for field != "" {
			switch {
			case inComment:
				if i := strings.IndexByte(field, '}'); i >= 0 {
					inComment = false
					field = field[i+1:]
					continue
				}
				field = ""
			case strings.HasPrefix(field, "{"):
				inComment = true
				field = field[1:]
			case strings.HasPrefix(field, "("):
				depth++
				field = field[1:]
			case strings.HasPrefix(field, ")"):
				if depth > 0 {
					depth--
				}
				field = field[1:]
			default:
				end := len(field)
				if i := strings.IndexAny(field, "{()"); i >= 0 {
					end = i
				}
				if tok := cleanToken(field[:end]); tok != "" && depth == 0 {
					tokens = append(tokens, tok)
				}
				field = field[end:]
			}
		}
	}
	return tokens
}

// cleanToken normalizes one whitespace-delimited movetext token, returning
// "" for anything that is not a move: move numbers ("3.", "3..."), glued
// number prefixes ("3.e4"), NAGs, and result tokens. Trailing suffix
// annotations ("!", "?", "!?", ...) are stripped.
func cleanToken(tok string) string {
	switch tok {
	case "", "1-0", "0-1", "1/2-1/2", "*":
		return ""
	}
	if strings.HasPrefix(tok, "$") {
		return ""
	}
	tok = strings.TrimRight(tok, "!?")

	// Strip a leading move number with its dots.
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i > 0 && i < len(tok) && tok[i] == '.' {
		for i < len(tok) && tok[i] == '.' {
			i++
		}
		tok = tok[i:]
	} else if i == len(tok) {
		return ""
	}
	return tok
}
