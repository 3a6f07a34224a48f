package sequences_test

import (
	"fmt"

	"github.com/on-the-ground/kosmos/sequences"
)

func ExamplePartition() {
	p := sequences.Partition()
	terms, _ := p.Terms(0, 10)
	fmt.Println(terms)
	// Output: [1 1 2 3 5 7 11 15 22 30 42]
}

func ExampleStirlingSecond() {
	s := sequences.StirlingSecond()
	row, _ := s.Row(4)
	fmt.Println(row)
	// Output: [0 1 7 6 1]
}
