package setpart_test

import (
	"fmt"

	"github.com/katalvlaran/lvpart/setpart"
)

// ExampleNew enumerates the groupings of three items.
func ExampleNew() {
	g, err := setpart.New([]string{"a", "b", "c"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("groupings:", g.Len())
	for groups, ok := g.Next(); ok; groups, ok = g.Next() {
		fmt.Println(groups, g.Assignment())
	}
	// Output:
	// groupings: 5
	// [[a b c]] [0 0 0]
	// [[a b] [c]] [0 0 1]
	// [[a c] [b]] [0 1 0]
	// [[a] [b c]] [0 1 1]
	// [[a] [b] [c]] [0 1 2]
}
