package laws

import (
	"fmt"
	"strings"

	"github.com/rickb777/date/v2/timespan"
)

// Status is the verdict of a check.
type Status int

const (
	Passed Status = iota
	Failed
	Errored
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Errored:
		return "errored"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Counterexample is a shrunk sample that violates a law.
type Counterexample struct {
	// Args are the raw sample values, in the order the law quantifies them.
	Args []any
	// Rendered are Args through the domain printer.
	Rendered []string
	// Detail says which side of the identity diverged.
	Detail  string
	Shrinks int
	Seed    int64
}

var argNames = []string{"a", "b", "c", "d"}

func (c Counterexample) String() string {
	parts := make([]string, len(c.Rendered))
	for i, r := range c.Rendered {
		name := fmt.Sprintf("x%d", i)
		if i < len(argNames) {
			name = argNames[i]
		}
		parts[i] = name + " = " + r
	}
	return fmt.Sprintf("%s: %s (seed %d, %d shrinks)", strings.Join(parts, ", "), c.Detail, c.Seed, c.Shrinks)
}

// Outcome is the result of checking one law.
type Outcome struct {
	Law       string
	Status    Status
	Succeeded int
	Seed      int64
	// Counterexample is set when Status is Failed.
	Counterexample *Counterexample
	// Cause is set when Status is Errored and wraps ErrLawSetup.
	Cause error
	Span  timespan.TimeSpan
}

// Err returns nil for a passed law, a *Failure for a falsified one and the
// setup error otherwise.
func (o Outcome) Err() error {
	switch o.Status {
	case Failed:
		return &Failure{Law: o.Law, Counterexample: *o.Counterexample}
	case Errored:
		return o.Cause
	}
	return nil
}
