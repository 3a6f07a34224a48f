package property

import (
	"fmt"
	"strings"

	"github.com/on-the-ground/kosmos/laws"
)

func named(law, symbol string) string {
	return law + "(" + symbol + ")"
}

// expr substitutes symbol for every · in form.
func expr(form, symbol string) string {
	return strings.ReplaceAll(form, "·", symbol)
}

// expr2 substitutes mul for ⊗ and add for ⊕ in form.
func expr2(form, mul, add string) string {
	return strings.NewReplacer("⊗", mul, "⊕", add).Replace(form)
}

// differ returns "" when left and right are equal and a description of
// both sides otherwise.
func differ[T any](d laws.Domain[T], leftExpr string, left T, rightExpr string, right T) string {
	if d.Eq(left, right) {
		return ""
	}
	return fmt.Sprintf("%s = %s, %s = %s", leftExpr, d.Render(left), rightExpr, d.Render(right))
}

// first returns the first non-empty detail.
func first(details ...string) string {
	for _, d := range details {
		if d != "" {
			return d
		}
	}
	return ""
}
