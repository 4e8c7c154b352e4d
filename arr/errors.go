package arr

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the element-reference helpers.
//
// Mut2, Mut3 and Mut panic with an error wrapping one of these, so a caller
// that recovers can still classify the failure with [errors.Is]:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, arr.ErrAliasedIndex) {
//	        // two indices named the same element
//	    }
//	}()
var (
	// ErrAliasedIndex is reported when two requested indices name the same
	// element, so the returned pointers would alias one another.
	ErrAliasedIndex = errors.New("arr: aliased index")

	// ErrUnsupportedArity is reported by [Mut] when it is given anything
	// other than two or three indices.
	ErrUnsupportedArity = errors.New("arr: unsupported number of indices")
)

// AliasError is returned by [TryMut2] when both indices are equal.
//
// The one element both indices refer to is still reachable through Elem,
// so the caller can fall back to working on a single element.
//
//	a, b, err := arr.TryMut2(items, i, j)
//	var ae *arr.AliasError[int]
//	if errors.As(err, &ae) {
//	    *ae.Elem++
//	}
type AliasError[T any] struct {
	Index int
	Elem  *T
}

// Error implements the error interface.
func (e *AliasError[T]) Error() string {
	return fmt.Sprintf("%s: a0 == a1 == %d", ErrAliasedIndex, e.Index)
}

// Unwrap returns [ErrAliasedIndex].
func (e *AliasError[T]) Unwrap() error { return ErrAliasedIndex }

func aliased(i, j, idx int) error {
	return fmt.Errorf("%w: a%d == a%d == %d", ErrAliasedIndex, i, j, idx)
}
