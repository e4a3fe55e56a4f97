package vec

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// noCopy is embedded into types that must not be copied after first use.
// go vet's copylocks check reports violations.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Block owns a single contiguous slab of storage sized for a fixed number
// of element slots. It knows nothing about element liveness: slots hold
// the zero value until the owner constructs into them, and the owner is
// responsible for resetting any slot it abandons. The slab is typed so
// the garbage collector stays aware of pointer-bearing slots.
//
// Blocks are move-only. Ownership is transferred with swap or take, never
// by value copy.
type Block[T any] struct {
	noCopy noCopy
	slots  []T
}

// acquire reserves storage for capacity slots without constructing any
// elements. capacity 0 acquires nothing. On failure the block is left
// empty; a previously held slab must be released by the caller first.
func (b *Block[T]) acquire(capacity int) error {
	if capacity == 0 {
		b.slots = nil
		return nil
	}
	if capacity < 0 {
		return errors.Wrapf(ErrAllocationFailure, "acquire %d slots", capacity)
	}
	var zero T
	if size := int(unsafe.Sizeof(zero)); size > 0 && capacity > math.MaxInt/size {
		return errors.Wrapf(ErrAllocationFailure, "acquire %d slots of %d bytes", capacity, size)
	}
	b.slots = make([]T, capacity)
	return nil
}

// release frees the slab. Safe on an empty block.
func (b *Block[T]) release() {
	b.slots = nil
}

// capacity returns the number of slots backed by the slab.
func (b *Block[T]) capacity() int {
	return len(b.slots)
}

// at returns the address of slot offset. offset == capacity is legal so
// ranges can be computed, but the result must not be dereferenced then.
// The bound is asserted only under the vecdebug build tag.
func (b *Block[T]) at(offset int) *T {
	check(offset >= 0 && offset <= len(b.slots), "block offset out of range")
	if offset == len(b.slots) {
		if len(b.slots) == 0 {
			return nil
		}
		p := unsafe.Pointer(unsafe.SliceData(b.slots))
		return (*T)(unsafe.Add(p, uintptr(offset)*unsafe.Sizeof(b.slots[0])))
	}
	return &b.slots[offset]
}

// swap exchanges the slabs and capacities of two blocks in constant time.
func (b *Block[T]) swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// take transfers ownership of other's slab into b, releasing whatever b
// held and leaving other empty.
func (b *Block[T]) take(other *Block[T]) {
	if b == other {
		return
	}
	b.slots = other.slots
	other.slots = nil
}
