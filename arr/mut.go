package arr

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Element references
// ─────────────────────────────────────────────────────────────────────────────

// Mut2 returns pointers to items[a0] and items[a1], in that order.
//
// It panics with an error wrapping [ErrAliasedIndex] if a0 == a1. Indices
// outside [0, len(items)) panic through ordinary slice indexing.
func Mut2[T any](items []T, a0, a1 int) (*T, *T) {
	if a0 == a1 {
		panic(aliased(0, 1, a0))
	}
	return &items[a0], &items[a1]
}

// Mut3 returns pointers to items[a0], items[a1] and items[a2], in that order.
//
// It panics with an error wrapping [ErrAliasedIndex] if any two indices are
// equal. Indices outside [0, len(items)) panic through ordinary slice
// indexing.
func Mut3[T any](items []T, a0, a1, a2 int) (*T, *T, *T) {
	switch {
	case a0 == a1:
		panic(aliased(0, 1, a0))
	case a1 == a2:
		panic(aliased(1, 2, a1))
	case a0 == a2:
		panic(aliased(0, 2, a0))
	}
	return &items[a0], &items[a1], &items[a2]
}

// TryMut2 is the non-panicking form of [Mut2].
//
// When a0 != a1 it returns pointers to items[a0] and items[a1] and a nil
// error. When a0 == a1 it returns nil pointers and an [*AliasError] whose
// Elem points at the shared element. Out-of-range indices still panic.
func TryMut2[T any](items []T, a0, a1 int) (*T, *T, error) {
	if a0 == a1 {
		return nil, nil, &AliasError[T]{Index: a0, Elem: &items[a0]}
	}
	return &items[a0], &items[a1], nil
}

// Mut returns one pointer per index, routing to [Mut2] or [Mut3] by the
// number of indices given. Any other count panics with an error wrapping
// [ErrUnsupportedArity].
//
//	h := arr.Mut(items, 1, 2, 0)
//	*h[0], *h[2] = *h[2], *h[0]
func Mut[T any](items []T, indices ...int) []*T {
	switch len(indices) {
	case 2:
		p0, p1 := Mut2(items, indices[0], indices[1])
		return []*T{p0, p1}
	case 3:
		p0, p1, p2 := Mut3(items, indices[0], indices[1], indices[2])
		return []*T{p0, p1, p2}
	default:
		panic(fmt.Errorf("%w: got %d, want 2 or 3", ErrUnsupportedArity, len(indices)))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place helpers
// ─────────────────────────────────────────────────────────────────────────────

// Swap exchanges items[i] and items[j] in place. Swapping an element with
// itself is a no-op.
func Swap[T any](items []T, i, j int) {
	a, b, err := TryMut2(items, i, j)
	if err != nil {
		return
	}
	*a, *b = *b, *a
}

// Rotate3 shifts three elements left in place: items[a0] receives the value
// of items[a1], items[a1] that of items[a2], and items[a2] that of items[a0].
// It panics like [Mut3] when indices repeat.
func Rotate3[T any](items []T, a0, a1, a2 int) {
	p0, p1, p2 := Mut3(items, a0, a1, a2)
	*p0, *p1, *p2 = *p1, *p2, *p0
}
