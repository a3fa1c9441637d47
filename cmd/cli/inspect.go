package main

import (
	"blockbits/internal/bitmap"
)

// inspectBit shows how bit i is addressed: its block, its offset inside
// the block, the mask for that offset and the current block contents.
func (s *shell) inspectBit(i uint64) {
	blockIdx, offset := bitmap.Locate(i)
	mask := bitmap.Mask(offset)
	s.printf("bit=%d block=%d offset=%d mask=%s\n", i, blockIdx, offset, mask)

	block, ok := s.bm.GetBlock(i)
	if !ok {
		s.printf("out of range for %d-bit bitmap\n", s.bm.Len())
		return
	}
	state := 0
	if s.bm.IsBitSet(i) {
		state = 1
	}
	s.printf("value=%s state=%d\n", block, state)
}
