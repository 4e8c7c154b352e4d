// Package arr hands out several mutable pointers into one slice at once,
// guaranteeing that no two of them point at the same element.
//
// Taking &items[i] twice is always legal in Go, so nothing in the language
// stops two "independent" pointers from silently aliasing each other. The
// helpers here check that the requested indices are pairwise distinct before
// taking the addresses, which makes every pointer they return safe to write
// through without affecting the others:
//
//	items := []int{1, 2, 3, 4}
//	a, b := arr.Mut2(items, 1, 2)       // *a == 2, *b == 3
//	x, y, z := arr.Mut3(items, 1, 2, 0) // *z == 1
//	arr.Mut2(items, 1, 1)               // panics: arr: aliased index
//
// # Panicking and recoverable forms
//
// [Mut2], [Mut3] and the [Mut] dispatcher treat a repeated index as a
// programming error and panic with an error wrapping [ErrAliasedIndex].
//
// [TryMut2] treats it as an expected condition instead and returns an
// [*AliasError] whose Elem still points at the single requested element:
//
//	a, b, err := arr.TryMut2(items, i, j)
//	var ae *arr.AliasError[int]
//	if errors.As(err, &ae) {
//	    *ae.Elem = 0
//	}
//
// There is deliberately no three-index recoverable form.
//
// # Bounds and lifetime
//
// Indices are not bounds-checked by this package; an index outside
// [0, len(items)) panics through ordinary slice indexing.
//
// The returned pointers reference the slice's backing array. They stop
// observing the slice once it is reallocated (for instance by an append that
// exceeds its capacity), so callers must not grow the slice while holding
// them.
package arr
