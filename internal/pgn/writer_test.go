package pgn

import (
	"strings"
	"testing"

	"github.com/chessstego/chessstego-go/internal/testutil"
)

func TestRenderGame(t *testing.T) {
	got := renderGame([]string{"e4", "e5", "Nf3"}, "1-0", "resignation")

	for _, want := range []string{
		"[Event \"?\"]",
		"[Date \"????.??.??\"]",
		"[Result \"1-0\"]",
		"[Termination \"resignation\"]",
		"1. e4 e5 2. Nf3 1-0",
	} {
		testutil.AssertContains(t, got, want)
	}

	// A blank line separates headers from movetext.
	testutil.AssertContains(t, got, "\"]\n\n1. e4")
}

func TestRenderGame_NoTermination(t *testing.T) {
	got := renderGame([]string{"e4", "e5"}, "1/2-1/2", "")
	testutil.AssertTrue(t, !strings.Contains(got, "Termination"))
	testutil.AssertContains(t, got, "1. e4 e5 1/2-1/2")
}

func TestWrapTokens(t *testing.T) {
	tokens := []string{"aaaa", "bbbb", "cccc", "dddd"}
	got := wrapTokens(tokens, 10)
	testutil.AssertEqual(t, got, "aaaa bbbb\ncccc dddd")
}

func TestRenderGame_WrapsLongMovetext(t *testing.T) {
	sans := make([]string, 120)
	for i := range sans {
		sans[i] = "Nf3"
	}
	got := renderGame(sans, "*", "")

	for _, line := range strings.Split(got, "\n") {
		testutil.AssertTrue(t, len(line) <= maxLineLength, "line %q too long", line)
	}
}
