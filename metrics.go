package vec

import "unsafe"

// LiveBytes returns the number of bytes occupied by live elements.
func (v *Vector[T]) LiveBytes() int {
	var zero T
	return v.size * int(unsafe.Sizeof(zero))
}

// CapBytes returns the number of bytes backed by acquired storage.
func (v *Vector[T]) CapBytes() int {
	var zero T
	return v.data.capacity() * int(unsafe.Sizeof(zero))
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 for a vector with no capacity.
func (v *Vector[T]) Utilization() float64 {
	c := v.data.capacity()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Stats returns a snapshot of vector statistics.
func (v *Vector[T]) Stats() Stats {
	var zero T
	return Stats{
		Len:         v.size,
		Cap:         v.data.capacity(),
		ElemSize:    int(unsafe.Sizeof(zero)),
		LiveBytes:   v.LiveBytes(),
		CapBytes:    v.CapBytes(),
		Utilization: v.Utilization(),
	}
}

// Stats contains statistical information about a vector.
type Stats struct {
	Len         int     // Live elements
	Cap         int     // Slots backed by storage
	ElemSize    int     // Bytes per element slot
	LiveBytes   int     // Bytes occupied by live elements
	CapBytes    int     // Bytes backed by storage
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
}
