package laws

import (
	"fmt"

	"github.com/leanovate/gopter"
	"github.com/on-the-ground/kosmos/eq"
	"github.com/on-the-ground/kosmos/render"
)

// Domain is the sample space of a law: a generator of T values, the
// equality used to compare results and the printer used in reports.
type Domain[T any] struct {
	Gen     gopter.Gen
	Eq      eq.Eq[T]
	Printer render.Printer[T]
}

// NewDomain returns a domain. A nil printer renders with %v.
func NewDomain[T any](gen gopter.Gen, equal eq.Eq[T], printer render.Printer[T]) Domain[T] {
	if printer == nil {
		printer = render.Default[T]()
	}
	return Domain[T]{Gen: gen, Eq: equal, Printer: printer}
}

// Render prints v with the domain printer.
func (d Domain[T]) Render(v T) string {
	if d.Printer == nil {
		return fmt.Sprintf("%v", v)
	}
	return d.Printer(v)
}

// Where restricts the domain to values satisfying keep. Rejected samples
// are discarded, not counted as passes.
func (d Domain[T]) Where(keep func(T) bool) Domain[T] {
	if d.Gen == nil {
		return d
	}
	d.Gen = d.Gen.SuchThat(keep)
	return d
}

func (d Domain[T]) validate(law string) error {
	switch {
	case d.Gen == nil:
		return setupError(law, "domain has no generator")
	case d.Eq == nil:
		return setupError(law, "domain has no equality")
	}
	return nil
}
