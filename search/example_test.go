package search_test

import (
	"fmt"

	"github.com/katalvlaran/lowindex/search"
	"github.com/katalvlaran/lowindex/words"
)

// The subgroups of Z/3 = ⟨x | x³⟩: the whole group and the trivial
// subgroup of index 3.
func ExampleTree_List() {
	nodes := search.NewTree(1, 3, []words.Relator{{1, 1, 1}}, nil).List()
	for _, n := range nodes {
		fmt.Println(n.PermutationRep())
	}
	// Output:
	// [[0]]
	// [[1 2 0]]
}
