//go:build vecdebug

package vec

// check panics unless cond holds. Precondition checks compile to nothing
// without the vecdebug build tag; violating them in release builds is
// undefined behavior, as documented on each operation.
func check(cond bool, msg string) {
	if !cond {
		panic("vec: " + msg)
	}
}
