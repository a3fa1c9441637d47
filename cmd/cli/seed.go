package main

import (
	"time"

	"blockbits/internal/common"
)

// runSeed sets n randomly chosen in-range bits. Bits that were already set
// count as repeats.
func (s *shell) runSeed(n uint64) {
	size := s.bm.Len()
	if size == 0 {
		s.printf("seed: bitmap has no bits\n")
		return
	}

	start := time.Now()
	fresh := uint64(0)
	for k := uint64(0); k < n; k++ {
		i := s.rng.Uint64() % size
		if !s.bm.IsBitSet(i) {
			fresh++
		}
		s.bm.SetBit(i)
	}

	common.LogDuration(start, "seeded %d bits (%d new, %d repeats) across %d blocks",
		n, fresh, n-fresh, s.bm.BlockCount())
}
