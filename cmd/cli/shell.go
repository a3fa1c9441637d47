package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"blockbits/internal/bitmap"
	"blockbits/internal/filter"
)

const usage = "commands: new <bits> | set <i> | clear <i> | test <i> | block <i> | inspect <i> | dump | seed <n> | bloom <n> <p> | bloom add|has <key> | bloom info | info | history [n] | exit"

// shell executes one command line at a time against a single bitmap.
type shell struct {
	bm   bitmap.Bitmap
	bf   *filter.BloomFilter
	out  io.Writer
	hist *History
	rng  *rand.Rand
}

func newShell(out io.Writer, bits uint32, hist *History, rng *rand.Rand) *shell {
	return &shell{
		bm:   bitmap.NewBitmap(bits),
		out:  out,
		hist: hist,
		rng:  rng,
	}
}

func (s *shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// exec runs line and reports whether the shell should keep reading.
func (s *shell) exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "new":
		if len(args) != 1 {
			s.printf("usage: new <bits>\n")
			return true
		}
		n, err := parseBitCount(args[0])
		if err != nil {
			s.printf("%v\n", err)
			return true
		}
		s.bm = bitmap.NewBitmap(n)
		s.printf("bitmap: %d bits in %d blocks\n", s.bm.Len(), s.bm.BlockCount())
	case "set":
		if i, ok := s.uintArg(args, "set <i>"); ok {
			s.printBlock(s.bm.SetBit(i))
		}
	case "clear":
		if i, ok := s.uintArg(args, "clear <i>"); ok {
			s.printBlock(s.bm.ClearBit(i))
		}
	case "block":
		if i, ok := s.uintArg(args, "block <i>"); ok {
			s.printBlock(s.bm.GetBlock(i))
		}
	case "test":
		if i, ok := s.uintArg(args, "test <i>"); ok {
			if s.bm.IsBitSet(i) {
				s.printf("1\n")
			} else {
				s.printf("0\n")
			}
		}
	case "inspect":
		if i, ok := s.uintArg(args, "inspect <i>"); ok {
			s.inspectBit(i)
		}
	case "dump":
		s.dump()
	case "seed":
		n, ok := s.uintArg(args, "seed <n>")
		if !ok {
			return true
		}
		if n < 1 {
			s.printf("seed: n must be a positive integer\n")
			return true
		}
		s.runSeed(n)
	case "bloom":
		s.bloom(args)
	case "info":
		s.printf("bits=%d blocks=%d block_width=%d\n", s.bm.Len(), s.bm.BlockCount(), bitmap.BlockWidth)
	case "history":
		s.showHistory(args)
	case "help":
		s.printf("%s\n", usage)
	case "exit", "quit":
		return false
	default:
		s.printf("unknown command\n")
	}
	return true
}

// uintArg parses the single unsigned argument of a command, printing the
// usage line when it is missing or malformed.
func (s *shell) uintArg(args []string, use string) (uint64, bool) {
	if len(args) != 1 {
		s.printf("usage: %s\n", use)
		return 0, false
	}
	n, err := parseUint(args[0])
	if err != nil {
		s.printf("%v\n", err)
		return 0, false
	}
	return n, true
}

func parseUint(arg string) (uint64, error) {
	n, err := strconv.ParseUint(arg, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", arg, err)
	}
	return n, nil
}

// parseBitCount parses a bitmap size, rejecting sizes above bitmap.MaxBits.
func parseBitCount(arg string) (uint32, error) {
	n, err := parseUint(arg)
	if err != nil {
		return 0, err
	}
	if n > bitmap.MaxBits {
		return 0, fmt.Errorf("bit count %d exceeds maximum of %d", n, uint64(bitmap.MaxBits))
	}
	return uint32(n), nil
}

func (s *shell) printBlock(block bitmap.Block, ok bool) {
	if !ok {
		s.printf("absent\n")
		return
	}
	s.printf("%s\n", block)
}

func (s *shell) showHistory(args []string) {
	if s.hist == nil {
		return
	}
	n := 0
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			s.printf("usage: history [n]\n")
			return
		}
		n = v
	}
	for _, cmd := range s.hist.list(n) {
		s.printf("%s\n", cmd)
	}
}
