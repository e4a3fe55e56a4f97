package vec

import "github.com/pkg/errors"

// Vector is a generic growable array over a single contiguous block.
// Positions [0, Len) hold live elements; positions [Len, Cap) are unused
// slots. Capacity changes only through explicit growth and never shrinks.
// Not goroutine-safe: single owner, external synchronization required for
// concurrent use.
type Vector[T any] struct {
	data     Block[T]
	size     int
	ops      Ops[T]
	released bool
}

// New creates an empty vector with plain value-type element semantics.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithOps creates an empty vector with a custom element lifecycle.
func NewWithOps[T any](ops Ops[T]) *Vector[T] {
	return &Vector[T]{ops: ops}
}

// NewLen creates a vector of n default-constructed elements with capacity
// exactly n.
func NewLen[T any](n int) (*Vector[T], error) {
	return NewLenOps[T](n, Ops[T]{})
}

// NewLenOps is NewLen with a custom element lifecycle. If a construction
// fails, elements built so far are destroyed and the block is released;
// nothing leaks.
func NewLenOps[T any](n int, ops Ops[T]) (*Vector[T], error) {
	v := &Vector[T]{ops: ops}
	if err := v.data.acquire(n); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		e, err := v.ops.construct()
		if err != nil {
			v.ops.destroyRange(v.data.slots[:i])
			v.data.release()
			return nil, errors.Wrapf(err, "construct element %d", i)
		}
		v.data.slots[i] = e
	}
	v.size = n
	return v, nil
}

// Release destroys all live elements and frees the block. Any subsequent
// mutation or element access panics.
func (v *Vector[T]) Release() {
	if v.released {
		return
	}
	v.ops.destroyRange(v.live())
	v.data.release()
	v.size = 0
	v.released = true
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots backed by acquired storage.
func (v *Vector[T]) Cap() int {
	return v.data.capacity()
}

// At returns the address of element i. The address is invalidated by any
// reallocating operation. The bound is asserted only under the vecdebug
// build tag; out-of-range access in release builds is a caller bug.
func (v *Vector[T]) At(i int) *T {
	v.panicIfReleased()
	check(i >= 0 && i < v.size, "index out of range")
	return &v.data.slots[i]
}

// Swap exchanges contents, capacity and element lifecycle with other in
// constant time. Never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.panicIfReleased()
	other.panicIfReleased()
	v.data.swap(&other.data)
	v.size, other.size = other.size, v.size
	v.ops, other.ops = other.ops, v.ops
}

// Move returns a new vector owning v's block and elements, leaving v
// empty (size 0, capacity 0). Constant time, never fails.
func (v *Vector[T]) Move() *Vector[T] {
	v.panicIfReleased()
	out := &Vector[T]{ops: v.ops}
	out.data.take(&v.data)
	out.size, v.size = v.size, 0
	return out
}

// Take moves rhs's contents into v in constant time. v's previous
// contents are destroyed and rhs is left empty (size 0, capacity 0) but
// still usable.
func (v *Vector[T]) Take(rhs *Vector[T]) {
	v.panicIfReleased()
	rhs.panicIfReleased()
	if v == rhs {
		return
	}
	v.Swap(rhs)
	rhs.ops.destroyRange(rhs.live())
	rhs.data.release()
	rhs.size = 0
}

// Clone copy-constructs a deep copy sized exactly to Len. Either it fully
// succeeds or it returns an error having released everything it built.
// Panics if the element type is marked NoCopy.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.panicIfReleased()
	out := &Vector[T]{ops: v.ops}
	if err := out.data.acquire(v.size); err != nil {
		return nil, err
	}
	if err := v.ops.relocate(out.data.slots[:v.size], v.live(), false); err != nil {
		out.data.release()
		return nil, err
	}
	out.size = v.size
	return out, nil
}

// CopyFrom copy-assigns rhs into v.
//
// When rhs.Len exceeds v's capacity, a full copy of rhs is built and
// swapped in, so a failure leaves v untouched (strong guarantee). When
// capacity already suffices, the overlapping prefix is assigned element
// by element, excess trailing elements are destroyed or missing ones
// copy-constructed, and no reallocation happens; a mid-prefix failure
// then leaves v valid with already-assigned positions updated.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	v.panicIfReleased()
	rhs.panicIfReleased()
	if v == rhs {
		return nil
	}
	if rhs.size > v.data.capacity() {
		tmp, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}
	n := min(v.size, rhs.size)
	for i := 0; i < n; i++ {
		e, err := v.ops.copyOne(&rhs.data.slots[i])
		if err != nil {
			return errors.Wrapf(err, "assign element %d", i)
		}
		v.ops.destroy(&v.data.slots[i])
		v.data.slots[i] = e
	}
	if rhs.size < v.size {
		v.ops.destroyRange(v.data.slots[rhs.size:v.size])
	} else {
		for i := v.size; i < rhs.size; i++ {
			e, err := v.ops.copyOne(&rhs.data.slots[i])
			if err != nil {
				v.ops.destroyRange(v.data.slots[v.size:i])
				return errors.Wrapf(err, "copy element %d", i)
			}
			v.data.slots[i] = e
		}
	}
	v.size = rhs.size
	return nil
}

// Reserve grows capacity to at least n, relocating live elements per the
// transfer policy. A no-op when n does not exceed the current capacity.
// On failure the vector is untouched (strong guarantee).
func (v *Vector[T]) Reserve(n int) error {
	v.panicIfReleased()
	if n <= v.data.capacity() {
		return nil
	}
	var next Block[T]
	if err := next.acquire(n); err != nil {
		return err
	}
	byMove := v.ops.transferByMove()
	if err := v.ops.relocate(next.slots[:v.size], v.live(), byMove); err != nil {
		next.release()
		return err
	}
	if !byMove {
		v.ops.destroyRange(v.live())
	}
	v.data.swap(&next)
	next.release()
	return nil
}

// Resize sets the live count to n. Shrinking destroys trailing elements
// in place; growing reserves capacity and default-constructs the new
// tail. The size is committed only after every construction succeeded.
func (v *Vector[T]) Resize(n int) error {
	v.panicIfReleased()
	check(n >= 0, "negative size")
	if n == v.size {
		return nil
	}
	if n < v.size {
		v.ops.destroyRange(v.data.slots[n:v.size])
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	for i := v.size; i < n; i++ {
		e, err := v.ops.construct()
		if err != nil {
			v.ops.destroyRange(v.data.slots[v.size:i])
			return errors.Wrapf(err, "construct element %d", i)
		}
		v.data.slots[i] = e
	}
	v.size = n
	return nil
}

// PushBack appends value and returns the address of the new element.
func (v *Vector[T]) PushBack(value T) (*T, error) {
	return v.emplace(v.size, func() (T, error) { return value, nil })
}

// EmplaceBack appends an element produced by construct; nil construct
// default-constructs. Returns the address of the new element.
func (v *Vector[T]) EmplaceBack(construct func() (T, error)) (*T, error) {
	return v.emplace(v.size, construct)
}

// Insert places value at index i, shifting later elements up by one, and
// returns the address of the new element. i may equal Len to append.
func (v *Vector[T]) Insert(i int, value T) (*T, error) {
	return v.emplace(i, func() (T, error) { return value, nil })
}

// Emplace inserts an element produced by construct at index i; nil
// construct default-constructs.
//
// When growth is needed the operation has the strong guarantee (for
// element types the transfer policy copies or moves without failing): on
// any error the new block is torn down and v is exactly as before. The
// in-place path without growth deliberately does not: if a shifting move
// fails midway, v stays valid and destructible but element values at
// shifted positions are unspecified.
func (v *Vector[T]) Emplace(i int, construct func() (T, error)) (*T, error) {
	return v.emplace(i, construct)
}

func (v *Vector[T]) emplace(i int, construct func() (T, error)) (*T, error) {
	v.panicIfReleased()
	check(i >= 0 && i <= v.size, "insert position out of range")
	if construct == nil {
		construct = v.ops.construct
	}
	if v.size == v.data.capacity() {
		return v.emplaceGrow(i, construct)
	}
	if i == v.size {
		e, err := construct()
		if err != nil {
			return nil, err
		}
		v.data.slots[i] = e
		v.size++
		return &v.data.slots[i], nil
	}
	// Build the new value first so a construction failure leaves v
	// untouched.
	e, err := construct()
	if err != nil {
		return nil, err
	}
	// Move the last element into the free trailing slot, shift
	// [i, size-1) one step toward the end, then drop the value in.
	for j := v.size; j > i; j-- {
		m, err := v.ops.move(&v.data.slots[j-1])
		if err != nil {
			// Mid-shift failure: keep [0, size) live by destroying the
			// extra trailing element; shifted values are unspecified.
			if j <= v.size-1 {
				v.ops.destroy(&v.data.slots[v.size])
			}
			v.ops.destroy(&e)
			return nil, errors.Wrapf(err, "shift element %d", j-1)
		}
		v.data.slots[j] = m
	}
	v.data.slots[i] = e
	v.size++
	return &v.data.slots[i], nil
}

// emplaceGrow inserts at i while growing to max(1, 2*size). The new
// element is constructed directly into its final slot in the new block,
// the prefix and suffix are relocated around it, originals destroyed,
// and only then is the new block swapped in.
func (v *Vector[T]) emplaceGrow(i int, construct func() (T, error)) (*T, error) {
	newCap := 1
	if v.size > 0 {
		newCap = 2 * v.size
	}
	var next Block[T]
	if err := next.acquire(newCap); err != nil {
		return nil, err
	}
	e, err := construct()
	if err != nil {
		next.release()
		return nil, err
	}
	next.slots[i] = e
	byMove := v.ops.transferByMove()
	if err := v.ops.relocate(next.slots[:i], v.data.slots[:i], byMove); err != nil {
		v.ops.destroy(&next.slots[i])
		next.release()
		return nil, err
	}
	if err := v.ops.relocate(next.slots[i+1:v.size+1], v.data.slots[i:v.size], byMove); err != nil {
		v.ops.destroyRange(next.slots[:i+1])
		next.release()
		return nil, err
	}
	if !byMove {
		v.ops.destroyRange(v.live())
	}
	v.data.swap(&next)
	next.release()
	v.size++
	return &v.data.slots[i], nil
}

// Erase removes the element at i, shifting later elements down by one.
// No reallocation. i must address a live element; erasing at Len is a
// contract violation. A mid-shift move failure leaves v valid with
// shifted values unspecified.
func (v *Vector[T]) Erase(i int) error {
	v.panicIfReleased()
	check(i >= 0 && i < v.size, "erase position out of range")
	v.ops.destroy(&v.data.slots[i])
	for j := i; j < v.size-1; j++ {
		m, err := v.ops.move(&v.data.slots[j+1])
		if err != nil {
			return errors.Wrapf(err, "shift element %d", j+1)
		}
		v.data.slots[j] = m
	}
	v.size--
	return nil
}

// PopBack destroys the last live element. Popping an empty vector is a
// contract violation.
func (v *Vector[T]) PopBack() {
	v.panicIfReleased()
	check(v.size > 0, "PopBack on empty vector")
	v.ops.destroy(&v.data.slots[v.size-1])
	v.size--
}

// live returns the live range [0, size).
func (v *Vector[T]) live() []T {
	return v.data.slots[:v.size]
}

func (v *Vector[T]) panicIfReleased() {
	if v.released {
		panic("vec: use after Release()")
	}
}
