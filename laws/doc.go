// Package laws checks algebraic laws by randomized, shrinking search for
// counterexamples.
//
// A Law is a named universally quantified property over a Domain: a gopter
// generator together with the equality and printer used to judge and report
// samples. Checking a law yields an Outcome that separates three cases:
//
//   - Passed: every sample satisfied the property.
//   - Failed: a sample violated it. The Counterexample holds the shrunk
//     arguments and says which side diverged.
//   - Errored: the check itself could not run (no generator, a generator or
//     candidate that panics, too many discarded samples). The error wraps
//     ErrLawSetup.
//
// Laws are composed into a Suite. Running a suite runs every law, even after
// a failure, and returns a Report.
package laws
