// Package property is the catalogue of atomic laws. Each constructor names
// the operation under test by its symbol and returns a laws.Law quantified
// over a domain; counterexample details print both sides of the identity
// with the symbol substituted.
package property
