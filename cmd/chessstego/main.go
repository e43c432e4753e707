// chessstego hides text messages inside valid chess notation: a single
// board position (FEN) or a full game (PGN).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chessstego/chessstego-go/internal/fen"
	"github.com/chessstego/chessstego-go/internal/pgn"
	"github.com/chessstego/chessstego-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showHelp {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Printf("chessstego version %s\n", programVersion)
		os.Exit(0)
	}

	mode := flag.Arg(0)
	if mode != "encode" && mode != "decode" {
		usage()
		os.Exit(2)
	}

	input, err := readInput()
	if err != nil {
		fatal(err)
	}

	out := os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fatal(fmt.Errorf("creating output file %s: %w", *outputFile, err))
		}
		defer f.Close()
		out = f
	}

	if *batchMode {
		if err := runBatch(out, mode, *carrierFlag, input, *numWorkers); err != nil {
			fatal(err)
		}
		return
	}

	result, err := transform(mode, *carrierFlag, input)
	if err != nil {
		fatal(err)
	}
	fmt.Fprintln(out, result)
}

// readInput takes the message or carrier from the second positional
// argument, falling back to stdin.
func readInput() (string, error) {
	if flag.NArg() >= 2 {
		return flag.Arg(1), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// transform runs one encode or decode call against the selected carrier.
func transform(mode, carrier, input string) (string, error) {
	switch carrier {
	case "fen":
		if mode == "encode" {
			return fen.Encode(input)
		}
		return fen.Decode(input)
	case "pgn":
		if mode == "encode" {
			return pgn.Encode(input)
		}
		return pgn.Decode(input)
	default:
		return "", fmt.Errorf("unknown carrier %q: want fen or pgn", carrier)
	}
}

// runBatch processes one message or carrier per input line on a worker
// pool, writing results in input order. An individual line failing does
// not abort the batch; its error is reported on stderr and the run exits
// non-zero at the end.
func runBatch(w io.Writer, mode, carrier, input string, workers int) error {
	if carrier != "fen" {
		return errors.New("batch mode supports only the fen carrier: pgn carriers span multiple lines")
	}

	var lines []string
	if input != "" {
		lines = strings.Split(input, "\n")
	}

	results := worker.Process(lines, workers, func(item worker.WorkItem) worker.ProcessResult {
		out, err := transform(mode, carrier, item.Text)
		return worker.ProcessResult{Output: out, Index: item.Index, Err: err}
	})

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "chessstego: line %d: %v\n", r.Index+1, r.Err)
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintln(w, r.Output)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d line(s) failed", failed, len(results))
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "chessstego: %v\n", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessstego [options] encode|decode [message-or-carrier]\n\n")
	fmt.Fprintf(os.Stderr, "Hides a text message inside valid chess notation.\n")
	fmt.Fprintf(os.Stderr, "The input is read from the second argument, or from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCarriers (-carrier):\n")
	fmt.Fprintf(os.Stderr, "  fen   One board position; messages over a-z, space and backslash,\n")
	fmt.Fprintf(os.Stderr, "        at most %d characters\n", fen.MaxMessageLen)
	fmt.Fprintf(os.Stderr, "  pgn   A full game; arbitrary UTF-8 messages\n")
}
