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
	"math"
)

// NewInt constructs the canonical surreal integer v.
//
// A positive integer n is zero nested n times on the left,
// { { ... { | } ... | } | }, born on day n. Negative integers nest on the
// right instead. Cost is linear in |v|.
func NewInt(v int) Number {
	var n Number
	switch {
	case v > 0:
		for i := 0; i < v; i++ {
			n = mustNew(options{n}, nil)
		}
	case v < 0:
		for i := 0; i > v; i-- {
			n = mustNew(nil, options{n})
		}
	}
	return n
}

// NewFloat constructs the canonical surreal equivalent of v by binary
// search: starting from { floor | ceil }, each step halves the bracketing
// interval and deepens the candidate by one day, until the midpoint is
// indistinguishable from v at float64 precision. Exact dyadic rationals
// therefore terminate at their true depth; other values terminate when the
// precision runs out.
//
// NaN, infinities and magnitudes beyond the integer range yield
// ErrNotFinite.
func NewFloat(v float64) (Number, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}, fmt.Errorf("%w: cannot construct %v", ErrNotFinite, v)
	}
	fl, ce := math.Floor(v), math.Ceil(v)
	if fl == ce {
		if fl < math.MinInt64 || fl >= math.MaxInt64 {
			return Number{}, fmt.Errorf("%w: %g overflows the integer range", ErrNotFinite, v)
		}
		return NewInt(int(fl)), nil
	}

	mid := (fl + ce) / 2
	surFloor := NewInt(int(fl))
	surCeil := NewInt(int(ce))
	surMid := mustNew(options{surFloor}, options{surCeil})

	for mid != v {
		if v < mid {
			// Midpoint becomes the new ceiling; bisect downward.
			ce = mid
			mid = (fl + ce) / 2
			surCeil = surMid
			surMid = mustNew(options{surFloor}, options{surMid})
		} else {
			// Midpoint becomes the new floor; bisect upward.
			fl = mid
			mid = (fl + ce) / 2
			surFloor = surMid
			surMid = mustNew(options{surMid}, options{surCeil})
		}
	}
	return surMid, nil
}

// Float approximates n as a float64.
//
// The empty pair is 0. With only left options the result is one above the
// greatest left approximation; with only right options, one below the least
// right approximation; with both, the midpoint of the two. For canonical
// forms this recovers the exact dyadic value. Non-canonical but equivalent
// forms can approximate differently; convert through the arithmetic Context
// first when that matters.
func (n Number) Float() float64 {
	switch {
	case len(n.left) == 0 && len(n.right) == 0:
		return 0
	case len(n.left) == 0:
		return minFloat(n.right) - 1
	case len(n.right) == 0:
		return maxFloat(n.left) + 1
	default:
		return (maxFloat(n.left) + minFloat(n.right)) / 2
	}
}

func maxFloat(o options) float64 {
	best := o[0].Float()
	for _, n := range o[1:] {
		if f := n.Float(); f > best {
			best = f
		}
	}
	return best
}

func minFloat(o options) float64 {
	best := o[0].Float()
	for _, n := range o[1:] {
		if f := n.Float(); f < best {
			best = f
		}
	}
	return best
}
