package region

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"unsafe"
)

// DefaultBlockSize is the default minimum block size for new arenas (64 KiB).
const DefaultBlockSize = 1 << 16

const errReleased = "region: use after Release()"

// ptrAlign is the alignment AllocBytes hands out.
const ptrAlign = unsafe.Alignof(uintptr(0))

// zeroBase is returned for zero-byte requests.
var zeroBase struct{}

// noCopy makes go vet's copylocks check flag copies of an Arena.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Arena is a monotonic bump allocator over a growable list of blocks.
// Not goroutine-safe; use SafeArena or one arena per goroutine.
// An Arena must not be copied; use Move or MoveFrom to hand it over.
type Arena struct {
	_ noCopy

	blocks    []block
	cur       int // block receiving allocations
	blockSize int
	capacity  int

	dtors   *destructorChunk // newest chunk of pending destructors
	spare   *destructorChunk // drained chunks kept for reuse
	pending int

	src blockSource
	log *slog.Logger
}

// NewArena creates a new Arena whose blocks are at least blockSize bytes.
// If blockSize <= 0, DefaultBlockSize is used. The first block is
// allocated immediately.
func NewArena(blockSize int, opts ...Option) *Arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	o := buildOptions(opts)
	a := &Arena{
		blockSize: blockSize,
		src:       o.source,
		log:       o.logger,
	}
	a.grow(blockSize)
	return a
}

// AllocRaw returns size bytes aligned to align. align must be a power of
// two. The memory is not zeroed and stays valid until the next Clear,
// Release or Move of the arena.
func (a *Arena) AllocRaw(size, align uintptr) unsafe.Pointer {
	checkAlign(align)
	if size == 0 {
		return unsafe.Pointer(&zeroBase)
	}
	if a.cur < len(a.blocks) {
		b := &a.blocks[a.cur]
		if size <= b.size-b.offset {
			p := unsafe.Add(b.base, b.offset)
			if uintptr(p)&(align-1) == 0 {
				b.offset += size
				return p
			}
		}
	}
	return a.allocSlow(size, align)
}

// allocSlow pads the active block, then moves on to the next retained block,
// then grows. Kept out of line so AllocRaw stays small enough to inline.
//
//go:noinline
func (a *Arena) allocSlow(size, align uintptr) unsafe.Pointer {
	a.panicIfReleased()
	if p := a.blocks[a.cur].alloc(size, align); p != nil {
		return p
	}
	for a.cur+1 < len(a.blocks) {
		a.cur++
		if p := a.blocks[a.cur].alloc(size, align); p != nil {
			return p
		}
	}
	if size > math.MaxInt-(align-1) {
		panic(fmt.Sprintf("region: allocation of %d bytes overflows", size))
	}
	a.grow(max(int(size+align-1), a.blockSize))
	return a.blocks[a.cur].alloc(size, align)
}

// AllocBytes returns a []byte slice pointing into the arena's active block,
// aligned to pointer size. Returns nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	p := a.AllocRaw(uintptr(n), ptrAlign)
	return unsafe.Slice((*byte)(p), n)
}

// EnsureCapacity ensures the active block has at least n free bytes at
// pointer alignment. If not, it moves on to a retained block that does or
// grows the arena with a new one.
func (a *Arena) EnsureCapacity(n int) {
	a.panicIfReleased()
	if n <= 0 || a.blocks[a.cur].free(ptrAlign) >= uintptr(n) {
		return
	}
	for a.cur+1 < len(a.blocks) {
		a.cur++
		if a.blocks[a.cur].free(ptrAlign) >= uintptr(n) {
			return
		}
	}
	a.grow(max(n+int(ptrAlign)-1, a.blockSize))
}

// Clear runs every pending destructor in reverse construction order, then
// rewinds all blocks to zero for reuse. Blocks are retained, so NumBlocks
// is unchanged. Every pointer previously handed out becomes invalid.
func (a *Arena) Clear() {
	a.panicIfReleased()
	a.runDestructors()
	for i := range a.blocks {
		a.blocks[i].offset = 0
	}
	a.cur = 0
}

// Release runs pending destructors, returns all blocks to their backing
// store and makes the arena unusable. Any subsequent allocation panics.
// Releasing twice is a no-op.
func (a *Arena) Release() {
	if a.blocks == nil {
		return
	}
	a.runDestructors()
	a.dropBlocks()
	a.spare = nil
}

// Move transfers ownership of every block and pending destructor to a new
// Arena and leaves a released.
func (a *Arena) Move() *Arena {
	a.panicIfReleased()
	dst := &Arena{src: a.src, log: a.log}
	dst.take(a)
	return dst
}

// MoveFrom clears a, drops its blocks, and takes over src's blocks and
// pending destructors. src is left released. Moving an arena onto itself
// does nothing.
func (a *Arena) MoveFrom(src *Arena) {
	if a == src {
		return
	}
	src.panicIfReleased()
	if a.blocks != nil {
		a.Clear()
		a.dropBlocks()
	}
	a.src = src.src
	a.log = src.log
	a.take(src)
}

// take moves src's state into a, which must hold no blocks.
func (a *Arena) take(src *Arena) {
	a.blocks, src.blocks = src.blocks, nil
	a.cur, src.cur = src.cur, 0
	a.blockSize = src.blockSize
	a.capacity, src.capacity = src.capacity, 0
	a.dtors, src.dtors = src.dtors, nil
	a.spare, src.spare = src.spare, nil
	a.pending, src.pending = src.pending, 0
}

// dropBlocks hands every block back to the backing store.
func (a *Arena) dropBlocks() {
	for i := range a.blocks {
		if err := a.src.free(a.blocks[i].buf); err != nil {
			a.log.Error("region: release block", slog.Int("block", i), slog.Any("err", err))
		}
	}
	a.blocks = nil
	a.cur = 0
	a.capacity = 0
}

// grow appends a new block of size bytes and makes it active.
func (a *Arena) grow(size int) {
	buf, err := a.src.alloc(size)
	if err != nil {
		panic(fmt.Errorf("region: grow %d bytes: %w", size, err))
	}
	a.blocks = append(a.blocks, newBlock(buf))
	a.cur = len(a.blocks) - 1
	a.capacity += size
	if a.log.Enabled(context.Background(), slog.LevelDebug) {
		a.log.LogAttrs(context.Background(), slog.LevelDebug, "region: grow",
			slog.Int("size", size),
			slog.Int("blocks", len(a.blocks)),
			slog.Int("capacity", a.capacity))
	}
}

// panicIfReleased panics if the arena has been released or moved from.
func (a *Arena) panicIfReleased() {
	if a.blocks == nil {
		panic(errReleased)
	}
}
