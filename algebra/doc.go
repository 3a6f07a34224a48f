// Package algebra bundles operations into candidate structures for the law
// suites in laws/algebra and laws/relation.
//
// A bundle only claims a structure. Whether an instance really is a monoid
// or a field is decided by running the matching suite against it:
//
//	suite := lawalg.Monoid(algebra.IntegerAddition().Monoid, gens.IntegerDomain(-100, 100))
//	report := suite.Run()
package algebra
