package bitmap

import (
	"fmt"
	"math"
)

// BlockWidth is the number of bits held by one Block.
const BlockWidth = 32

// MaxBits is the largest bit count NewBitmap accepts.
const MaxBits = math.MaxUint32

// Block is one storage unit of a bitmap. Bit 0 of a block is its most
// significant bit.
type Block uint32

func (b Block) String() string {
	return fmt.Sprintf("0x%08X", uint32(b))
}

// bitmapImpl is a concrete implementation of the Bitmap interface.
type bitmapImpl struct {
	blocks  []Block // nil when numBits == 0
	numBits uint64  // Total number of bits in the bitmap
}

var _ Bitmap = (*bitmapImpl)(nil)

// NewBitmap creates a new bitmap with the specified number of bits.
// All bits are initialized to 0. A zero-bit bitmap allocates nothing and
// rejects every index.
func NewBitmap(numBits uint32) Bitmap {
	b := &bitmapImpl{numBits: uint64(numBits)}
	if numBits > 0 {
		b.blocks = make([]Block, blockCount(b.numBits))
	}
	return b
}

// blockCount returns the minimum number of blocks covering numBits.
func blockCount(numBits uint64) uint64 {
	switch {
	case numBits == 0:
		return 0
	case numBits <= BlockWidth:
		return 1
	case numBits%BlockWidth == 0:
		return numBits / BlockWidth
	default:
		return numBits/BlockWidth + 1
	}
}

// Locate translates a bit index into the index of its block and the bit's
// offset inside that block. It does not check the index against any bitmap.
func Locate(i uint64) (blockIdx uint64, offset uint32) {
	return i / BlockWidth, uint32(i % BlockWidth)
}

// Mask returns a block with only the bit at offset set, counting from the
// most significant bit.
func Mask(offset uint32) Block {
	return Block(1) << (BlockWidth - 1 - offset)
}

// inRange reports whether i addresses an allocated bit.
func (b *bitmapImpl) inRange(i uint64) bool {
	return b.blocks != nil && i <= b.numBits-1
}

// GetBlock returns a copy of the block holding bit i.
func (b *bitmapImpl) GetBlock(i uint64) (Block, bool) {
	if !b.inRange(i) {
		return 0, false
	}
	blockIdx, _ := Locate(i)
	return b.blocks[blockIdx], true
}

// SetBit sets bit i to 1 and returns the updated block.
func (b *bitmapImpl) SetBit(i uint64) (Block, bool) {
	if !b.inRange(i) {
		return 0, false
	}
	blockIdx, offset := Locate(i)
	b.blocks[blockIdx] |= Mask(offset)
	return b.blocks[blockIdx], true
}

// ClearBit sets bit i to 0 and returns the updated block.
func (b *bitmapImpl) ClearBit(i uint64) (Block, bool) {
	if !b.inRange(i) {
		return 0, false
	}
	blockIdx, offset := Locate(i)
	b.blocks[blockIdx] &^= Mask(offset)
	return b.blocks[blockIdx], true
}

// IsBitSet returns true if bit i is set.
func (b *bitmapImpl) IsBitSet(i uint64) bool {
	if !b.inRange(i) {
		return false
	}
	blockIdx, offset := Locate(i)
	return b.blocks[blockIdx]&Mask(offset) != 0
}

// Len returns the number of addressable bits.
func (b *bitmapImpl) Len() uint64 {
	return b.numBits
}

// BlockCount returns the number of allocated blocks.
func (b *bitmapImpl) BlockCount() int {
	return len(b.blocks)
}
