package filter

import (
	"hash/fnv"
	"math"

	"blockbits/internal/bitmap"
)

// BloomFilter implements a space-efficient probabilistic data structure
// for set membership testing with no false negatives. Its bit array is a
// fixed-capacity bitmap.Bitmap.
type BloomFilter struct {
	bits bitmap.Bitmap
	k    uint32 // number of hash functions
	m    uint32 // number of bits in bitmap
}

// OptimalBloomFilterParams computes optimal bloom filter parameters.
// n: expected number of elements to insert
// p: desired false positive rate, clamped into (0, 1)
// Returns: k (number of hash functions), m (number of bits)
//
// A rate of 1 or more needs no bits at all. m is capped at bitmap.MaxBits.
func OptimalBloomFilterParams(n uint64, p float64) (k uint32, m uint32) {
	if p >= 1 || n == 0 {
		return 1, 0
	}
	if !(p > 0) { // also catches NaN
		p = math.SmallestNonzeroFloat64
	}

	// m = -n * ln(p) / (ln(2)^2)
	bits := math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	m = uint32(math.Min(bits, bitmap.MaxBits))

	// k = (m/n) * ln(2)
	k = uint32(math.Ceil(float64(m) / float64(n) * math.Ln2))
	if k < 1 {
		k = 1
	}

	return k, m
}

// NewBloomFilter creates a new bloom filter.
// k: number of hash functions
// m: number of bits in the bitmap
func NewBloomFilter(k uint32, m uint32) *BloomFilter {
	return &BloomFilter{
		bits: bitmap.NewBitmap(m),
		k:    k,
		m:    m,
	}
}

// K returns the number of hash functions.
func (bf *BloomFilter) K() uint32 { return bf.k }

// M returns the number of bits.
func (bf *BloomFilter) M() uint32 { return bf.m }

// Add inserts a key into the bloom filter.
func (bf *BloomFilter) Add(key []byte) {
	bf.probe(key, func(pos uint64) bool {
		bf.bits.SetBit(pos)
		return true
	})
}

// MayContain returns true if the key might be in the set.
// Returns false if the key is definitely NOT in the set.
func (bf *BloomFilter) MayContain(key []byte) bool {
	found := true
	bf.probe(key, func(pos uint64) bool {
		found = bf.bits.IsBitSet(pos)
		return found
	})
	return found
}

// OccupiedBlocks returns how many blocks of the bit array have at least one
// bit set, and how many blocks there are in total.
func (bf *BloomFilter) OccupiedBlocks() (occupied, total int) {
	for first := uint64(0); first < bf.bits.Len(); first += bitmap.BlockWidth {
		if block, ok := bf.bits.GetBlock(first); ok && block != 0 {
			occupied++
		}
	}
	return occupied, bf.bits.BlockCount()
}

// probe calls fn with each of the k bit positions for key until fn returns
// false. A filter with no bits has no positions.
func (bf *BloomFilter) probe(key []byte, fn func(pos uint64) bool) {
	if bf.m == 0 {
		return
	}
	h1, h2 := bf.hash(key)
	for i := uint32(0); i < bf.k; i++ {
		if !fn((h1 + uint64(i)*h2) % uint64(bf.m)) {
			return
		}
	}
}

// hash computes two hash values using FNV-1a for double hashing.
func (bf *BloomFilter) hash(key []byte) (uint64, uint64) {
	h1 := fnv.New64a()
	h1.Write(key)
	hash1 := h1.Sum64()

	// Second hash: same function over a suffixed key
	h2 := fnv.New64a()
	h2.Write(key)
	h2.Write([]byte{0x01})
	hash2 := h2.Sum64()

	// A zero step would probe the same position k times
	if hash2 == 0 {
		hash2 = 1
	}

	return hash1, hash2
}
