package sequences

import (
	"math/big"
	"sort"

	"github.com/on-the-ground/kosmos/recurrence"
)

// Constructor builds a fresh univariate sequence.
type Constructor func(opts ...recurrence.Option[*big.Int]) *Integers

// LatticeConstructor builds a fresh bivariate sequence.
type LatticeConstructor func(opts ...recurrence.Option[*big.Int]) *IntegerLattice

// Named returns the univariate sequences by name.
func Named() map[string]Constructor {
	return map[string]Constructor{
		"fibonacci":        Fibonacci,
		"lucas":            Lucas,
		"factorial":        Factorial,
		"double_factorial": DoubleFactorial,
		"partition":        Partition,
		"catalan":          Catalan,
		"motzkin":          Motzkin,
		"bell":             Bell,
		"derangements":     Derangements,
		"labeled_dags":     LabeledDAGs,
	}
}

// NamedLattices returns the bivariate sequences by name.
func NamedLattices() map[string]LatticeConstructor {
	return map[string]LatticeConstructor{
		"binomial":        Binomial,
		"stirling_first":  StirlingFirst,
		"stirling_second": StirlingSecond,
		"delannoy":        Delannoy,
	}
}

// Names returns the sorted names of Named and NamedLattices.
func Names() (univariate, bivariate []string) {
	for name := range Named() {
		univariate = append(univariate, name)
	}
	for name := range NamedLattices() {
		bivariate = append(bivariate, name)
	}
	sort.Strings(univariate)
	sort.Strings(bivariate)
	return univariate, bivariate
}
