package region

// SizeInUse returns the total number of bytes currently allocated in the arena.
// This includes internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, b := range a.blocks {
		sum += int(b.offset)
	}
	return sum
}

// NumBlocks returns the number of blocks currently owned by the arena.
// Clear keeps blocks, so the count only drops to zero on Release.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// Capacity returns the total capacity (in bytes) of all blocks in the arena.
func (a *Arena) Capacity() int {
	return a.capacity
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// BlockSize returns the minimum block size configured for this arena.
func (a *Arena) BlockSize() int {
	return a.blockSize
}

// PendingDestructors returns how many destructors the next Clear will run.
func (a *Arena) PendingDestructors() int {
	return a.pending
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:          a.SizeInUse(),
		Capacity:           a.Capacity(),
		NumBlocks:          a.NumBlocks(),
		BlockSize:          a.BlockSize(),
		PendingDestructors: a.PendingDestructors(),
		Utilization:        a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse          int     // Bytes currently allocated
	Capacity           int     // Total capacity in bytes
	NumBlocks          int     // Number of blocks
	BlockSize          int     // Configured minimum block size
	PendingDestructors int     // Destructors queued for the next Clear
	Utilization        float64 // Ratio of used to total capacity (0.0-1.0)
}

// SafeArena metrics take the lock for each read.

// SizeInUse returns the bytes allocated so far.
func (s *SafeArena) SizeInUse() int { return with(s, (*Arena).SizeInUse) }

// NumBlocks returns the number of blocks.
func (s *SafeArena) NumBlocks() int { return with(s, (*Arena).NumBlocks) }

// Capacity returns the total capacity of all blocks.
func (s *SafeArena) Capacity() int { return with(s, (*Arena).Capacity) }

// Utilization returns the ratio of bytes in use to total capacity.
func (s *SafeArena) Utilization() float64 { return with(s, (*Arena).Utilization) }

// BlockSize returns the configured block size.
func (s *SafeArena) BlockSize() int { return with(s, (*Arena).BlockSize) }

// Metrics returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics { return with(s, (*Arena).Metrics) }
