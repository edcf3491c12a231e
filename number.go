// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package surreal

import (
	"fmt"
	"strings"
)

// Number is a finitely-represented surreal number: two option sets of
// previously constructed Numbers. The zero value is the surreal zero { | }.
//
// Number is immutable. The option sets are never mutated after construction,
// so values may be freely copied and shared across goroutines.
type Number struct {
	left  options
	right options

	// form is the structural encoding of this number, fixed at
	// construction. Two Numbers are structurally identical exactly when
	// their forms match. Empty only for the zero value, whose form is
	// "(|)".
	form string
}

// New constructs { left | right }, validating the construction rule: every
// right option must exceed every left option. A violating pair yields
// ErrInvalidConstruction.
//
// With simplify set, only the greatest left option and the least right
// option are retained; the value is unchanged. Without it the full sets are
// kept, deduplicated by equivalence, which preserves the exact structure the
// caller supplied.
func New(left, right []Number, simplify bool) (Number, error) {
	for _, r := range right {
		for _, l := range left {
			if r.Leq(l) {
				return Number{}, fmt.Errorf("%w: %v <= %v", ErrInvalidConstruction, r, l)
			}
		}
	}
	var n Number
	if simplify {
		if len(left) > 0 {
			n.left = options{extremeOf(left, true)}
		}
		if len(right) > 0 {
			n.right = options{extremeOf(right, false)}
		}
	} else {
		n.left = fromSlice(left)
		n.right = fromSlice(right)
	}
	n.form = buildForm(n.left, n.right)
	return n, nil
}

// NewPair constructs { lo | hi }, the simplest value strictly between lo and
// hi. lo must be strictly less than hi.
func NewPair(lo, hi Number) (Number, error) {
	if !lo.Less(hi) {
		return Number{}, fmt.Errorf("%w: pair {%v | %v} requires %v < %v", ErrInvalidConstruction, lo, hi, lo, hi)
	}
	n := Number{left: options{lo}, right: options{hi}}
	n.form = buildForm(n.left, n.right)
	return n, nil
}

// mustNew assembles a Number from already-normalized option sets. Arithmetic
// on valid numbers can only produce valid pairs, so a violation here is an
// engine bug and panics.
func mustNew(left, right options) Number {
	for _, r := range right {
		for _, l := range left {
			if r.Leq(l) {
				panic(fmt.Sprintf("surreal: arithmetic produced invalid pair {%v | %v}", left, right))
			}
		}
	}
	return Number{left: left, right: right, form: buildForm(left, right)}
}

// Left returns a copy of the left option set in ascending order.
func (n Number) Left() []Number {
	if len(n.left) == 0 {
		return nil
	}
	return append([]Number(nil), n.left...)
}

// Right returns a copy of the right option set in ascending order.
func (n Number) Right() []Number {
	if len(n.right) == 0 {
		return nil
	}
	return append([]Number(nil), n.right...)
}

// Terms reports the total member count across both option sets. The
// arithmetic Context uses this as its complexity measure when deciding
// between equivalent representations.
func (n Number) Terms() int { return len(n.left) + len(n.right) }

// Depth reports the birthday of this representation: the longest option
// chain down to { | }. Zero is born on day 0, the integer n on day |n|, and
// each halving of a dyadic adds a day.
func (n Number) Depth() int {
	d := 0
	for _, c := range n.left {
		if cd := c.Depth() + 1; cd > d {
			d = cd
		}
	}
	for _, c := range n.right {
		if cd := c.Depth() + 1; cd > d {
			d = cd
		}
	}
	return d
}

// Identical reports structural identity: same option tree, not merely the
// same value. Eq is the coarser, numeric comparison.
func (n Number) Identical(b Number) bool { return n.structForm() == b.structForm() }

// Neg returns the negation: option sets swapped, members negated
// recursively. The result has the same depth and term count as n.
func (n Number) Neg() Number {
	var left, right options
	for _, r := range n.right {
		left.insert(r.Neg())
	}
	for _, l := range n.left {
		right.insert(l.Neg())
	}
	return mustNew(left, right)
}

// structForm returns the structural encoding, accounting for the zero value
// whose form field was never populated.
func (n Number) structForm() string {
	if n.form == "" {
		return "(|)"
	}
	return n.form
}

// buildForm encodes option sets as nested parentheses. Forms are balanced
// and therefore self-delimiting; no separator between siblings is needed.
func buildForm(left, right options) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, l := range left {
		b.WriteString(l.structForm())
	}
	b.WriteByte('|')
	for _, r := range right {
		b.WriteString(r.structForm())
	}
	b.WriteByte(')')
	return b.String()
}
