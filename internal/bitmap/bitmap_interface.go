package bitmap

// Bitmap is a fixed-capacity bit array stored in 32-bit blocks.
//
// Every method is defined for every index: an index outside [0, Len()) is
// reported through the boolean result and never modifies the bitmap.
type Bitmap interface {
	// GetBlock returns a copy of the block holding bit i.
	GetBlock(i uint64) (Block, bool)

	// SetBit sets bit i and returns the updated block.
	SetBit(i uint64) (Block, bool)

	// ClearBit clears bit i and returns the updated block.
	ClearBit(i uint64) (Block, bool)

	// IsBitSet reports whether bit i is set. Out-of-range indices report false.
	IsBitSet(i uint64) bool

	// Len returns the number of addressable bits.
	Len() uint64

	// BlockCount returns the number of allocated blocks.
	BlockCount() int
}
