package main

import (
	"blockbits/internal/bitmap"
)

func (s *shell) dump() {
	if s.bm.Len() == 0 {
		s.printf("bitmap is empty\n")
		return
	}
	if err := bitmap.WriteBlockTable(s.out, s.bm); err != nil {
		s.printf("dump error: %v\n", err)
		return
	}
	s.printf("\nTotal blocks: %d\n", s.bm.BlockCount())
}
