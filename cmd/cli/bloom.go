package main

import (
	"strconv"

	"blockbits/internal/filter"
)

const bloomUsage = "usage: bloom <n> <p> | bloom add <key> | bloom has <key> | bloom info"

// bloom manages the shell's bloom filter. The filter is independent of the
// bitmap edited by set/clear.
func (s *shell) bloom(args []string) {
	if len(args) != 2 && !(len(args) == 1 && args[0] == "info") {
		s.printf("%s\n", bloomUsage)
		return
	}

	switch args[0] {
	case "add", "has", "info":
		if s.bf == nil {
			s.printf("no bloom filter; create one with bloom <n> <p>\n")
			return
		}
	}

	switch args[0] {
	case "add":
		s.bf.Add([]byte(args[1]))
		s.printBloomInfo()
	case "has":
		if s.bf.MayContain([]byte(args[1])) {
			s.printf("maybe\n")
		} else {
			s.printf("no\n")
		}
	case "info":
		s.printBloomInfo()
	default:
		n, err := parseUint(args[0])
		if err != nil {
			s.printf("%v\n", err)
			return
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil || !(p > 0 && p < 1) {
			s.printf("bloom: p must be a rate between 0 and 1\n")
			return
		}
		s.bf = filter.NewBloomFilter(filter.OptimalBloomFilterParams(n, p))
		s.printBloomInfo()
	}
}

func (s *shell) printBloomInfo() {
	occupied, total := s.bf.OccupiedBlocks()
	s.printf("bloom: k=%d m=%d occupied=%d/%d blocks\n", s.bf.K(), s.bf.M(), occupied, total)
}
