package vec

import "github.com/pkg/errors"

// Ops supplies the element lifecycle for a Vector. The zero value treats
// T as a plain value type: construction yields the zero value, copies and
// moves are plain assignments, and destruction just resets the slot.
//
// Hooks exist for element types that own resources or can fail midway
// through construction, copying or moving. Failures returned by hooks
// surface from the vector operation that triggered them, wrapped with
// position context; errors.Is and errors.Cause reach the original error.
type Ops[T any] struct {
	// Construct default-constructs a new element. nil yields the zero
	// value.
	Construct func() (T, error)

	// Copy deep-copies the element at src. nil falls back to plain
	// assignment unless NoCopy is set.
	Copy func(src *T) (T, error)

	// NoCopy marks the element type move-only. Clone, CopyFrom and any
	// copy-based path panic, and relocation always moves regardless of
	// MoveNoFail.
	NoCopy bool

	// Move transfers the value out of src, leaving src reset to an empty
	// state. A moved-from slot is considered consumed: Destroy does not
	// run on it. nil falls back to assignment plus a zero reset, which
	// never fails.
	Move func(src *T) (T, error)

	// MoveNoFail declares that Move never returns an error. The transfer
	// policy relocates by moving only when this holds (or when NoCopy
	// forces it). The assignment fallback is implicitly no-fail.
	MoveNoFail bool

	// Destroy tears down a live element. The slot is reset to the zero
	// value afterwards in either case, so a block never pins memory
	// reachable from dead elements.
	Destroy func(*T)
}

// transferByMove resolves the relocation rule once per relocating
// operation: move when the element's move cannot fail, or when no copy
// path exists at all; copy otherwise.
func (o *Ops[T]) transferByMove() bool {
	if o.NoCopy {
		return true
	}
	return o.Move == nil || o.MoveNoFail
}

func (o *Ops[T]) construct() (T, error) {
	if o.Construct == nil {
		var zero T
		return zero, nil
	}
	return o.Construct()
}

func (o *Ops[T]) copyOne(src *T) (T, error) {
	if o.NoCopy {
		panic("vec: copy of move-only element type")
	}
	if o.Copy == nil {
		return *src, nil
	}
	return o.Copy(src)
}

func (o *Ops[T]) move(src *T) (T, error) {
	if o.Move == nil {
		v := *src
		var zero T
		*src = zero
		return v, nil
	}
	return o.Move(src)
}

func (o *Ops[T]) destroy(p *T) {
	if o.Destroy != nil {
		o.Destroy(p)
	}
	var zero T
	*p = zero
}

// destroyRange tears down every element of a live range.
func (o *Ops[T]) destroyRange(s []T) {
	for i := range s {
		o.destroy(&s[i])
	}
}

// relocate constructs the elements of src into dst slot by slot, moving
// or copying per byMove. On failure the already-relocated prefix of dst
// is destroyed and the element's error is returned; when copying, src is
// untouched.
func (o *Ops[T]) relocate(dst, src []T, byMove bool) error {
	for i := range src {
		var (
			v   T
			err error
		)
		if byMove {
			v, err = o.move(&src[i])
		} else {
			v, err = o.copyOne(&src[i])
		}
		if err != nil {
			o.destroyRange(dst[:i])
			return errors.Wrapf(err, "relocate element %d", i)
		}
		dst[i] = v
	}
	return nil
}
