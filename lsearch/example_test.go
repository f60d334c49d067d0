package lsearch_test

import (
	"fmt"

	"github.com/karinahu/homework1-record/lsearch"
)

func ExampleSearch() {
	fmt.Println(lsearch.Search([]int{0, 1, 7, 9}, 7))
	fmt.Println(lsearch.Search([]int{0, 1, 7, 9}, 8))
	// Output:
	// 2 <nil>
	// -1 not found
}
