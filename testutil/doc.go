// Package testutil provides testing utilities for membuf.
//
// This package is intended for use in tests and benchmarks only.
// It provides NativeSource wrappers that count, fail or misalign
// allocations so allocator behaviour can be observed deterministically.
//
// # Counting Allocations
//
//	src := testutil.NewCountingSource(membuf.MmapSource{})
//	a := membuf.NewAllocator(membuf.WithSource(src))
//	_, err := a.AllocateAligned(64, 7)
//	// src.Maps() == 0: invalid alignment is rejected before mapping
//
// # Controlled Base Addresses
//
//	src := testutil.NewShiftedSource(3)
//	// every block starts 3 bytes past a page boundary
package testutil
