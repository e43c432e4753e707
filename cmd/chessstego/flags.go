// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"runtime"
)

var (
	// Carrier selection
	carrierFlag = flag.String("carrier", "fen", "Carrier format: fen or pgn")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Batch processing
	batchMode  = flag.Bool("batch", false, "Process each input line as a separate message (fen carrier only)")
	numWorkers = flag.Int("workers", runtime.NumCPU(), "Number of parallel workers in batch mode")

	// General
	showHelp    = flag.Bool("h", false, "Show usage information")
	showVersion = flag.Bool("version", false, "Show version and exit")
)
