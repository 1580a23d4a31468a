//go:build unix

package region

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmapArena(t *testing.T) {
	a := NewArena(4096, WithMmap())
	_, ok := a.src.(mmapSource)
	require.True(t, ok)

	p := New(a, uint64(42))
	assert.Equal(t, uint64(42), *p)
	assert.Zero(t, uintptr(unsafe.Pointer(p))%unsafe.Alignof(uint64(0)))

	for range 3 {
		buf := a.AllocBytes(4000)
		buf[0], buf[len(buf)-1] = 1, 2
	}
	blocks := a.NumBlocks()
	assert.Greater(t, blocks, 1)

	a.Clear()
	for range 3 {
		a.AllocBytes(4000)
	}
	assert.Equal(t, blocks, a.NumBlocks(), "cleared mappings are reused")

	resetDestroyLog(t)
	New(a, tracker{id: 1})
	a.Release()
	assert.Equal(t, []int{1}, destroyLog)
	assert.Zero(t, a.NumBlocks())
}

func TestMmapSourceFree(t *testing.T) {
	src := mmapSource{}
	buf, err := src.alloc(1 << 16)
	require.NoError(t, err)
	require.Len(t, buf, 1<<16)
	assert.Zero(t, uintptr(unsafe.Pointer(&buf[0]))%4096, "mappings are page aligned")

	require.NoError(t, src.free(buf))
}
