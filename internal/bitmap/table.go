package bitmap

import (
	"fmt"
	"io"
)

// WriteBlockTable writes one line per block of b: the block index, the bit
// range it covers, and its value in hex and binary. Bit ranges stop at the
// last addressable bit.
func WriteBlockTable(w io.Writer, b Bitmap) error {
	if _, err := fmt.Fprintf(w, "%-6s %-13s %-10s  %s\n", "BLOCK", "BITS", "HEX", "BINARY"); err != nil {
		return err
	}

	// n is at most MaxBits, so first+BlockWidth cannot wrap.
	n := b.Len()
	for first := uint64(0); first < n; first += BlockWidth {
		block, ok := b.GetBlock(first)
		if !ok {
			return fmt.Errorf("bitmap: block for bit %d missing in %d-bit bitmap", first, n)
		}

		last := min(first+BlockWidth, n) - 1
		blockIdx, _ := Locate(first)
		bits := fmt.Sprintf("%d-%d", first, last)
		if _, err := fmt.Fprintf(w, "%-6d %-13s %s  %032b\n", blockIdx, bits, block, uint32(block)); err != nil {
			return err
		}
	}
	return nil
}
