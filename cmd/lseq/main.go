// Command lseq is the lseq interpreter CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"nickandperla.net/lseq/pkg/lseq"
)

func main() {
	var (
		evalStr      = flag.String("e", "", "Evaluate lseq string")
		file         = flag.String("f", "", "Execute lseq file")
		dbPath       = flag.String("db", "lseq.db", "SQLite history database path")
		noHistory    = flag.Bool("no-history", false, "Disable session history")
		historyLimit = flag.Int("history-limit", 50, "Entries reported by the history command (0 = all)")
	)

	flag.Parse()

	opts := []lseq.Option{}
	if *noHistory {
		opts = append(opts, lseq.WithNoHistory())
	} else {
		opts = append(opts, lseq.WithSQLiteStore(*dbPath))
	}
	if *historyLimit > 0 {
		opts = append(opts, lseq.WithHistoryLimit(*historyLimit))
	}

	runtime, err := lseq.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer runtime.Close()

	var result string

	switch {
	case *evalStr != "":
		result, err = runtime.Eval(*evalStr)

	case *file != "":
		result, err = runtime.EvalFile(*file)

	case !isTerminal(os.Stdin):
		result, err = runtime.EvalReader(os.Stdin)

	default:
		runREPL(runtime)
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if result != "" {
		fmt.Println(result)
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
