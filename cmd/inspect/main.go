package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"blockbits/internal/bitmap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fmt.Fprintf(os.Stderr, "usage: %s <bits> [index...]\n", os.Args[0])
		os.Exit(1)
	}
}

// run builds a bitmap of args[0] bits, sets each remaining index and prints
// the resulting block layout.
func run(args []string, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("missing bit count")
	}

	numBits, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid bit count %q: %w", args[0], err)
	}
	if numBits > bitmap.MaxBits {
		return fmt.Errorf("bit count %d exceeds maximum of %d", numBits, uint64(bitmap.MaxBits))
	}

	indices := make([]uint64, 0, len(args)-1)
	for _, arg := range args[1:] {
		i, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", arg, err)
		}
		indices = append(indices, i)
	}

	bm := bitmap.NewBitmap(uint32(numBits))
	fmt.Fprintf(w, "Bitmap: %d bits, %d blocks of %d bits\n", bm.Len(), bm.BlockCount(), bitmap.BlockWidth)

	for _, i := range indices {
		if _, ok := bm.SetBit(i); !ok {
			fmt.Fprintf(w, "ignored out-of-range index %d\n", i)
		}
	}
	fmt.Fprintln(w)

	return bitmap.WriteBlockTable(w, bm)
}
