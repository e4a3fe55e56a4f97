package vec

import "iter"

// All returns an iterator over index/address pairs of the live range
// [0, Len). Bounds are re-derived on every range statement, so iteration
// is restartable and observes the current length. Addresses yielded
// before a reallocating operation are invalidated by it.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		v.panicIfReleased()
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.data.slots[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over element values of the live range.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.panicIfReleased()
		for i := 0; i < v.size; i++ {
			if !yield(v.data.slots[i]) {
				return
			}
		}
	}
}
