package arr_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-arref/arr"
)

func ExampleMut2() {
	items := []int{1, 2, 3, 4}
	a, b := arr.Mut2(items, 1, 2)
	*a, *b = *a*10, *b*10
	fmt.Println(items)
	// Output: [1 20 30 4]
}

func ExampleMut3() {
	items := []int{1, 2, 3, 4}
	a, b, c := arr.Mut3(items, 1, 2, 0)
	fmt.Println(*a, *b, *c)
	// Output: 2 3 1
}

func ExampleMut() {
	items := []int{1, 2, 3, 4}
	h := arr.Mut(items, 1, 2, 0)
	fmt.Println(len(h), *h[0], *h[1], *h[2])
	// Output: 3 2 3 1
}

func ExampleMut2_aliased() {
	defer func() {
		err, _ := recover().(error)
		fmt.Println(errors.Is(err, arr.ErrAliasedIndex), err)
	}()
	arr.Mut2([]int{1, 2, 3, 4}, 1, 1)
	// Output: true arr: aliased index: a0 == a1 == 1
}

func ExampleTryMut2() {
	items := []int{1, 2, 3}
	a, b, err := arr.TryMut2(items, 1, 2)
	fmt.Println(*a, *b, err)

	_, _, err = arr.TryMut2(items, 1, 1)
	var ae *arr.AliasError[int]
	if errors.As(err, &ae) {
		fmt.Println(*ae.Elem)
		*ae.Elem = 7
	}
	fmt.Println(items)
	// Output:
	// 2 3 <nil>
	// 2
	// [1 7 3]
}

func ExampleSwap() {
	items := []string{"a", "b", "c"}
	arr.Swap(items, 0, 2)
	arr.Swap(items, 1, 1)
	fmt.Println(items)
	// Output: [c b a]
}

func ExampleRotate3() {
	items := []int{1, 2, 3, 4}
	arr.Rotate3(items, 0, 1, 2)
	fmt.Println(items)
	// Output: [2 3 1 4]
}
