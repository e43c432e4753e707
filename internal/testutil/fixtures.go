package testutil

// AlphabetMessages is a corpus of messages over the FEN codec's 28-character
// alphabet (a-z, space, backslash), covering the empty string, single
// characters, alphabet edges, and the 38-character maximum.
var AlphabetMessages = []string{
	"",
	"a",
	"z",
	" ",
	"\\",
	"hello world",
	"attack at dawn",
	"the quick brown fox jumps over the \\",
	"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", // 38 chars, maximum length
	"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", // 38 leading-zero digits
}

// UTF8Messages is a corpus of arbitrary UTF-8 messages for the PGN codec,
// which carries any byte sequence.
var UTF8Messages = []string{
	"",
	"a",
	"hello, world",
	"The rain in Spain stays mainly in the plain.",
	"díacritics and ünïcode ♞",
	"line\nbreaks\tand\ttabs",
}
