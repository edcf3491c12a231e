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

import "strings"

// Leq reports n <= b. This is the fundamental surreal relation; every other
// comparison derives from it.
//
// n <= b fails exactly when some left option of n is >= b, or some right
// option of b is <= n. The recursion bottoms out at { | }, for which both
// sets are empty and the relation holds vacuously.
func (n Number) Leq(b Number) bool {
	for _, l := range n.left {
		if b.Leq(l) {
			return false
		}
	}
	for _, r := range b.right {
		if r.Leq(n) {
			return false
		}
	}
	return true
}

// Geq reports n >= b.
func (n Number) Geq(b Number) bool { return b.Leq(n) }

// Eq reports numeric equivalence: n <= b and b <= n. Structurally different
// representations of the same value compare equal; use Identical for
// structural identity.
func (n Number) Eq(b Number) bool { return n.Leq(b) && b.Leq(n) }

// Ne reports numeric inequality.
func (n Number) Ne(b Number) bool { return !n.Eq(b) }

// Less reports n < b.
func (n Number) Less(b Number) bool { return n.Leq(b) && !b.Leq(n) }

// Greater reports n > b.
func (n Number) Greater(b Number) bool { return b.Leq(n) && !n.Leq(b) }

// Cmp places all Numbers in a strict total order: by value first, and among
// equivalent representations by structural encoding. It returns -1 if n
// orders before b, +1 if after, and 0 only for structurally identical
// numbers. The arithmetic caches rely on this for operand normalization.
func (n Number) Cmp(b Number) int {
	nb := n.Leq(b)
	bn := b.Leq(n)
	switch {
	case nb && !bn:
		return -1
	case bn && !nb:
		return 1
	default:
		return strings.Compare(n.structForm(), b.structForm())
	}
}
