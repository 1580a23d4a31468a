package region

import "unsafe"

// block is one contiguous buffer owned by an arena.
type block struct {
	buf    []byte         // backing memory
	base   unsafe.Pointer // &buf[0]
	size   uintptr        // len(buf)
	offset uintptr        // bytes consumed, padding included
}

func newBlock(buf []byte) block {
	return block{
		buf:  buf,
		base: unsafe.Pointer(unsafe.SliceData(buf)),
		size: uintptr(len(buf)),
	}
}

// alloc carves size bytes aligned to align out of the block.
// Returns nil if the block cannot hold the request after padding.
func (b *block) alloc(size, align uintptr) unsafe.Pointer {
	cur := uintptr(b.base) + b.offset
	pad := ((cur + align - 1) &^ (align - 1)) - cur
	avail := b.size - b.offset
	if pad > avail || size > avail-pad {
		return nil
	}
	p := unsafe.Add(b.base, b.offset+pad)
	b.offset += pad + size
	return p
}

// free reports the bytes left after aligning the offset to align.
func (b *block) free(align uintptr) uintptr {
	cur := uintptr(b.base) + b.offset
	pad := ((cur + align - 1) &^ (align - 1)) - cur
	if avail := b.size - b.offset; pad < avail {
		return avail - pad
	}
	return 0
}

// blockSource supplies and reclaims block buffers.
type blockSource interface {
	alloc(size int) ([]byte, error)
	free(buf []byte) error
}

// heapSource hands out ordinary Go slices and leaves reclamation to the GC.
type heapSource struct{}

func (heapSource) alloc(size int) ([]byte, error) { return make([]byte, size), nil }

func (heapSource) free([]byte) error { return nil }
