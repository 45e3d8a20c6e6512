package mcts

import "unsafe"

// sliceMemory approximates the bytes a slice has allocated (by capacity, not
// length, since append-driven growth can over-allocate) for children vectors
// and proven-outcome vectors, used to enforce Config.MaxMemoryMB.
func sliceMemory(children []SearchNode) int64 {
	return int64(cap(children)) * int64(unsafe.Sizeof(SearchNode{}))
}

func float64SliceMemory(values []float64) int64 {
	return int64(cap(values)) * int64(unsafe.Sizeof(float64(0)))
}
