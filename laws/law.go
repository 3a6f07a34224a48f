package laws

import (
	"fmt"
	"strings"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/on-the-ground/kosmos/shared/helper"
	"github.com/rickb777/date/v2/timespan"
)

// Law is a named property that can be checked against samples.
type Law interface {
	Name() string
	Check(cfg Config) Outcome
}

// property is a Law over samples of a single Domain. verify returns "" when
// the sample satisfies the law and a description of the violation
// otherwise.
type property[T any] struct {
	name   string
	domain Domain[T]
	setup  error
	prop   gopter.Prop
	verify func(args []T) string
}

// ForAll1 returns a law quantified over one sample of d.
func ForAll1[T any](name string, d Domain[T], verify func(a T) string) Law {
	return newProperty(name, d, 1, verify, func(args []T) string {
		return verify(args[0])
	})
}

// ForAll2 returns a law quantified over two samples of d.
func ForAll2[T any](name string, d Domain[T], verify func(a, b T) string) Law {
	return newProperty(name, d, 2, verify, func(args []T) string {
		return verify(args[0], args[1])
	})
}

// ForAll3 returns a law quantified over three samples of d.
func ForAll3[T any](name string, d Domain[T], verify func(a, b, c T) string) Law {
	return newProperty(name, d, 3, verify, func(args []T) string {
		return verify(args[0], args[1], args[2])
	})
}

// ForAll4 returns a law quantified over four samples of d.
func ForAll4[T any](name string, d Domain[T], verify func(a, b, c, e T) string) Law {
	return newProperty(name, d, 4, verify, func(args []T) string {
		return verify(args[0], args[1], args[2], args[3])
	})
}

func newProperty[T any](name string, d Domain[T], arity int, condition any, verify func([]T) string) *property[T] {
	p := &property[T]{name: name, domain: d, verify: verify}
	if p.setup = d.validate(name); p.setup != nil {
		return p
	}
	gens := make([]gopter.Gen, arity)
	for i := range gens {
		gens[i] = d.Gen
	}
	p.prop = prop.ForAll(condition, gens...)
	return p
}

func (p *property[T]) Name() string { return p.name }

func (p *property[T]) Check(cfg Config) Outcome {
	cfg = cfg.normalized()
	out := Outcome{Law: p.name, Seed: cfg.Seed}
	if p.setup != nil {
		now := time.Now()
		out.Status, out.Cause, out.Span = Errored, p.setup, timespan.BetweenTimes(now, now)
		return out
	}

	start := time.Now()
	res := p.prop.Check(cfg.parameters())
	out.Span = timespan.BetweenTimes(start, time.Now())
	out.Succeeded = res.Succeeded

	switch res.Status {
	case gopter.TestPassed, gopter.TestProved:
		out.Status = Passed
	case gopter.TestFailed:
		out.Status = Failed
		out.Counterexample = p.counterexample(res, cfg.Seed)
	case gopter.TestExhausted:
		out.Status = Errored
		out.Cause = setupError(p.name, "exhausted after %d discarded samples", res.Discarded)
	default:
		out.Status = Errored
		out.Cause = setupError(p.name, "%v", res.Error)
	}
	return out
}

// counterexample re-verifies the shrunk arguments so the detail describes
// the reported sample rather than the original one.
func (p *property[T]) counterexample(res *gopter.TestResult, seed int64) *Counterexample {
	ce := &Counterexample{Seed: seed}
	for _, arg := range res.Args {
		ce.Args = append(ce.Args, arg.Arg)
		ce.Shrinks += arg.Shrinks
	}

	args, err := helper.ValuesAs[T](ce.Args)
	if err != nil {
		for _, raw := range ce.Args {
			ce.Rendered = append(ce.Rendered, fmt.Sprintf("%v", raw))
		}
		ce.Detail = strings.Join(res.Labels, "; ")
		return ce
	}
	for _, a := range args {
		ce.Rendered = append(ce.Rendered, p.domain.Render(a))
	}
	if ce.Detail = p.verify(args); ce.Detail == "" {
		ce.Detail = strings.Join(res.Labels, "; ")
	}
	return ce
}
