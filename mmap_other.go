//go:build !unix

package region

// Without mmap the heap source is used.
func newMmapSource() blockSource { return heapSource{} }
