package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/peterh/liner"

	"blockbits/internal/bitmap"
	"blockbits/internal/common"
)

func main() {
	bits := flag.Uint64("bits", uint64(DefaultOptions.Bits), "number of bits in the initial bitmap")
	historyFile := flag.String("history", "", "history file (default ~/"+historyFileName+")")
	maxHistory := flag.Int("max-history", DefaultOptions.MaxHistory, "number of commands kept in history")
	quiet := flag.Bool("quiet", false, "disable timing logs")
	flag.Parse()

	if *bits > bitmap.MaxBits {
		fmt.Fprintf(os.Stderr, "-bits %d exceeds maximum of %d\n", *bits, uint64(bitmap.MaxBits))
		os.Exit(2)
	}

	opts := NewOptions(
		WithBits(uint32(*bits)),
		WithHistoryFile(*historyFile),
		WithMaxHistory(*maxHistory),
		WithLogging(!*quiet),
	)
	common.LoggingEnabled = opts.Logging

	hist, err := newHistory(opts.HistoryFile, opts.MaxHistory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open history: %v\n", err)
		os.Exit(1)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	hist.replay(line)

	sh := newShell(os.Stdout, opts.Bits, hist, rand.New(rand.NewSource(time.Now().UnixNano())))

	fmt.Println("bbits - block bitmap shell")
	fmt.Printf("config: bits=%d blocks=%d history=%s\n", sh.bm.Len(), sh.bm.BlockCount(), opts.HistoryFile)
	fmt.Println(usage)

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintf(os.Stderr, "input error: %v\n", err)
			}
			break
		}

		if hist.add(input) {
			line.AppendHistory(input)
		}
		if !sh.exec(input) {
			break
		}
	}

	if err := hist.save(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to save history: %v\n", err)
	}
}
