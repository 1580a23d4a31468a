package region_test

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/region"
)

func TestBoundaryConditions(t *testing.T) {
	t.Run("ExactBlockSizeAllocation", func(t *testing.T) {
		const blockSize = 1024
		a := region.NewArena(blockSize)
		defer a.Release()

		buf := a.AllocBytes(blockSize)
		assert.Len(t, buf, blockSize)
		assert.Equal(t, 1, a.NumBlocks())

		// the block is full: this must grow
		buf2 := a.AllocBytes(1)
		assert.Len(t, buf2, 1)
		assert.Equal(t, 2, a.NumBlocks())
	})

	t.Run("AlignmentBoundaries", func(t *testing.T) {
		a := region.NewArena(1024)
		defer a.Release()

		align := unsafe.Alignof(uintptr(0))
		for _, size := range []int{1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17} {
			buf := a.AllocBytes(size)
			require.Len(t, buf, size)
			assert.Zero(t, uintptr(unsafe.Pointer(&buf[0]))%align, "size %d", size)
		}
	})

	t.Run("BlockSizeOne", func(t *testing.T) {
		a := region.NewArena(1)
		defer a.Release()

		p := region.New(a, uint64(0xFEEDFACE))
		assert.Equal(t, uint64(0xFEEDFACE), *p)
		assert.Zero(t, uintptr(unsafe.Pointer(p))%8)
		assert.Equal(t, 2, a.NumBlocks())
	})
}

func TestMemoryCorruption(t *testing.T) {
	a := region.NewArena(1000)
	defer a.Release()

	// objects do not fit blocks evenly, so several straddle growth points
	ptrs := make([]*[64]byte, 100)
	for i := range ptrs {
		ptrs[i] = region.Alloc[[64]byte](a)
		for j := range ptrs[i] {
			ptrs[i][j] = byte(i)
		}
	}

	for i, p := range ptrs {
		for j, b := range p {
			if b != byte(i) {
				t.Fatalf("corruption at ptr[%d][%d]: got %d, want %d", i, j, b, byte(i))
			}
		}
	}
}

func TestTypeSpecificConstruction(t *testing.T) {
	a := region.NewArena(4096)
	defer a.Release()

	t.Run("BasicTypes", func(t *testing.T) {
		pBool := region.New(a, true)
		pInt8 := region.New(a, int8(-8))
		pInt16 := region.New(a, int16(-16))
		pUint32 := region.New(a, uint32(32))
		pFloat32 := region.New(a, float32(1.5))
		pComplex := region.New(a, complex(1, 2))

		assert.True(t, *pBool)
		assert.Equal(t, int8(-8), *pInt8)
		assert.Equal(t, int16(-16), *pInt16)
		assert.Equal(t, uint32(32), *pUint32)
		assert.Equal(t, float32(1.5), *pFloat32)
		assert.Equal(t, complex(1, 2), *pComplex)
	})

	t.Run("IntrusiveLinks", func(t *testing.T) {
		// pointers between objects of the same arena are allowed
		type node struct {
			val  int
			next *node
		}
		var head *node
		for i := range 50 {
			head = region.New(a, node{val: i, next: head})
		}
		want := 49
		for n := head; n != nil; n = n.next {
			assert.Equal(t, want, n.val)
			want--
		}
		assert.Equal(t, -1, want)
	})

	t.Run("ArraysAndSlices", func(t *testing.T) {
		pArray := region.Alloc[[10]int](a)
		assert.Equal(t, [10]int{}, *pArray)

		slice := region.AllocSlice[int](a, 20)
		assert.Len(t, slice, 20)
		assert.Equal(t, 20, cap(slice))
		for i := range slice {
			slice[i] = i * 3
		}
		for i := range slice {
			assert.Equal(t, i*3, slice[i])
		}

		assert.Nil(t, region.AllocSlice[int](a, 0))
		assert.Nil(t, region.AllocSlice[int](a, -1))
		assert.Nil(t, region.AllocSliceZeroed[int](a, 0))
	})
}

func TestClearBehavior(t *testing.T) {
	a := region.NewArena(1024)
	defer a.Release()

	for i := 0; i < 5; i++ {
		a.AllocBytes(512)
	}
	initialBlocks := a.NumBlocks()
	initialCapacity := a.Capacity()
	require.Equal(t, 3, initialBlocks)

	a.Clear()

	assert.Zero(t, a.SizeInUse())
	assert.Equal(t, initialBlocks, a.NumBlocks())
	assert.Equal(t, initialCapacity, a.Capacity())
	assert.Zero(t, a.Utilization())

	for i := 0; i < 5; i++ {
		a.AllocBytes(512)
	}
	assert.Equal(t, initialBlocks, a.NumBlocks())
}

func TestUseAfterRelease(t *testing.T) {
	a := region.NewArena(1024)
	a.Release()

	assert.Panics(t, func() { a.AllocBytes(100) })
	assert.Panics(t, func() { a.EnsureCapacity(100) })
	assert.Panics(t, func() { a.Clear() })
	assert.Panics(t, func() { region.Alloc[int](a) })
	assert.Panics(t, func() { region.New(a, 1) })
	assert.Panics(t, func() { region.AllocSlice[int](a, 10) })
	assert.Panics(t, func() { _, _ = region.NewAllocator[int](a).Allocate(1) })

	// multiple releases are safe
	assert.NotPanics(t, a.Release)
}

func TestMemoryLeaks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping memory leak test in short mode")
	}

	var m1, m2 runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m1)

	for i := 0; i < 1000; i++ {
		a := region.NewArena(1024)
		for j := 0; j < 100; j++ {
			a.AllocBytes(64)
		}
		a.Release()
	}

	runtime.GC()
	runtime.ReadMemStats(&m2)

	if m2.Alloc > m1.Alloc*2 {
		t.Errorf("Potential memory leak: before=%d, after=%d", m1.Alloc, m2.Alloc)
	}
}

func TestKeepAlive(t *testing.T) {
	var ptr *int

	func() {
		a := region.NewArena(1024)
		p := region.Alloc[int](a)
		*p = 42
		ptr = region.PtrAndKeepAlive(a, p)
	}()

	// the interior pointer keeps the heap block reachable
	runtime.GC()
	assert.Equal(t, 42, *ptr)
}
