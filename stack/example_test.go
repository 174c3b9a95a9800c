package stack_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/stack"
)

// ExampleStack shows LIFO order and the default-returning variants.
func ExampleStack() {
	s := stack.New[string](2)
	s.Push("a")
	s.Push("b")

	fmt.Println(s.PopOr("-"), s.PopOr("-"), s.PopOr("-"))
	// Output:
	// b a -
}
