// Package vec implements a generic growable contiguous-storage container
// (a from-scratch dynamic array) for Go.
//
// # Overview
//
// The container is built from two layers. A Block owns a single
// contiguous slab of element slots and knows nothing about element
// liveness; a Vector owns exactly one Block plus a live-element count and
// handles construction, destruction, growth and failure safety. The
// split is what lets growth relocate live elements into a fresh block
// without redundant construction, and lets every growth operation keep a
// strong guarantee: it either fully succeeds or leaves the vector
// exactly as it was.
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Always clean up
//
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 99)   // [1, 99, 2]
//	v.Erase(1)        // [1, 2]
//
//	for i, p := range v.All() {
//		fmt.Println(i, *p)
//	}
//
// # Element Lifecycle
//
// Element types that own resources or can fail while being constructed,
// copied or moved supply hooks through Ops:
//
//	v := vec.NewWithOps[conn](vec.Ops[conn]{
//		Copy:    cloneConn,
//		Destroy: closeConn,
//	})
//
// Relocation during growth follows a fixed transfer policy: elements are
// moved when the move is declared non-failing (or when the type cannot
// be copied at all), and copied otherwise, so a failure midway through a
// reallocation leaves the original elements untouched.
//
// # Failure Model
//
// Two failure kinds surface as errors: ErrAllocationFailure from the
// storage layer, and whatever the element hooks return, wrapped with
// position context. Contract violations (indexing out of range, popping
// an empty vector, erasing at Len, use after Release) are caller bugs:
// they panic, and the cheap precondition checks are compiled in only
// under the vecdebug build tag.
//
// # Thread Safety
//
// A Vector has a single owner. It is not safe for concurrent mutation;
// concurrent reads are fine only while no mutation is in flight.
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized, capacity doubles when exceeded
//   - Insert/Erase at i: O(n - i)
//   - Reserve/Resize: O(n) relocation, exact requested capacity
//   - Move/Take/Swap: O(1)
//
// # Metrics and Monitoring
//
// Stats returns a snapshot of length, capacity and byte usage, and
// NewCollector adapts it to a prometheus.Collector:
//
//	s := v.Stats()
//	fmt.Printf("utilization: %.2f%%\n", s.Utilization*100)
package vec
