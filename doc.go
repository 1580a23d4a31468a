// Package region implements a monotonic region allocator (memory arena) for Go.
//
// # Overview
//
// An arena hands out memory for many short-lived objects from large
// contiguous blocks by bumping an offset, and reclaims everything at once.
// There is no per-object free. Typical uses:
//
//   - Request- or task-scoped allocations with one cleanup point
//   - Building large transient graphs without per-node GC cost
//   - Backing generic containers through an Allocator handle
//
// # Basic Usage
//
//	a := region.NewArena(0) // Use default block size
//	defer a.Release()       // Run destructors and drop blocks
//
//	// Raw, aligned memory
//	p := a.AllocRaw(32, 16)
//
//	// Typed construction
//	pt := region.New(a, Point{X: 1, Y: 2})
//	buf := region.AllocSlice[int](a, 100)
//
//	// Run destructors and rewind for reuse
//	a.Clear()
//
// # Destructors
//
// New, Make and Alloc register a destructor when *T implements Destroyer.
// Clear and Release call them in exact reverse construction order, so an
// object constructed after its dependencies is torn down before them.
// Records are kept in chunks of DestructorChunkSize entries; types without
// a Destroy method cost nothing.
//
// # Growth
//
// When the active block cannot fit a request the arena moves on to the next
// retained block, and only when none is left appends a new block of
// max(size+align-1, BlockSize()) bytes. Blocks are never resized or freed
// before Release, so earlier pointers stay valid. After Clear the same
// allocation sequence replays into the retained blocks without growing.
//
// # Containers
//
// Allocator[T] is a copyable handle that generic containers use to obtain
// storage; Rebind derives handles for internal node types. Deallocate is a
// no-op. Two handles are Equal iff they reference the same Arena.
// See the container subpackage.
//
// # Garbage Collection
//
// Block memory is not scanned by the garbage collector. Values stored in an
// arena must not hold the only reference to Go heap memory; pointers to other
// memory of the same arena are fine. WithMmap moves blocks outside the Go
// heap entirely. Build with -tags arenadebug to check AllocRaw alignment
// arguments at run time.
//
// # Thread Safety
//
// Arena is not thread-safe. Use one arena per goroutine, or SafeArena:
//
//	s := region.NewSafeArena(0)
//	defer s.Release()
//	p := region.SafeAlloc[MyStruct](s)
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Blocks: %d, capacity: %d bytes\n", m.NumBlocks, m.Capacity)
package region
