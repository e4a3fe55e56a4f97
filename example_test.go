package vec

import (
	"fmt"
	"slices"
)

// Example demonstrates basic vector usage
func Example() {
	v := New[int]()
	defer v.Release() // Always clean up

	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)
	fmt.Printf("elements: %v len: %d cap: %d\n", slices.Collect(v.Values()), v.Len(), v.Cap())

	v.Insert(1, 99)
	fmt.Printf("after insert: %v\n", slices.Collect(v.Values()))

	v.Erase(1)
	fmt.Printf("after erase: %v\n", slices.Collect(v.Values()))

	v.Resize(5)
	fmt.Printf("after resize: %v\n", slices.Collect(v.Values()))

	s := v.Stats()
	fmt.Printf("utilization: %.2f%%\n", s.Utilization*100)

	// Output:
	// elements: [1 2 3] len: 3 cap: 4
	// after insert: [1 99 2 3]
	// after erase: [1 2 3]
	// after resize: [1 2 3 0 0]
	// utilization: 100.00%
}

// ExampleOps demonstrates custom element lifecycle hooks
func ExampleOps() {
	type handle struct{ name string }

	v := NewWithOps[handle](Ops[handle]{
		Destroy: func(h *handle) { fmt.Println("closing", h.name) },
	})

	v.PushBack(handle{name: "a"})
	v.PushBack(handle{name: "b"})
	v.PopBack()
	v.Release()

	// Output:
	// closing b
	// closing a
}

// ExampleVector_Move demonstrates constant-time ownership transfer
func ExampleVector_Move() {
	v := New[string]()
	v.PushBack("x")
	v.PushBack("y")

	m := v.Move()
	defer m.Release()
	defer v.Release()

	fmt.Printf("source: len %d cap %d\n", v.Len(), v.Cap())
	fmt.Printf("destination: %v\n", slices.Collect(m.Values()))

	// Output:
	// source: len 0 cap 0
	// destination: [x y]
}
