package laws

import (
	"errors"
	"fmt"
)

// ErrLawSetup marks a check that could not run. It is never a law failure.
var ErrLawSetup = errors.New("laws: setup error")

// Failure is the error of a falsified law.
type Failure struct {
	Law            string
	Counterexample Counterexample
}

func (f *Failure) Error() string {
	return fmt.Sprintf("law %s falsified: %s", f.Law, f.Counterexample)
}

func setupError(law string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrLawSetup, law, fmt.Sprintf(format, args...))
}
