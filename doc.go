// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package surreal implements Conway's surreal numbers with finite left and
// right option sets.
//
// A surreal number is an ordered pair of sets of previously constructed
// surreal numbers, written { L | R }, subject to one rule: no member of R may
// be less than or equal to any member of L. Starting from the empty pair
// { | } (zero), this construction generates all integers, all dyadic
// rationals, and — with infinite sets, handled by the lazy subpackage — the
// transfinite and infinitesimal numbers.
//
// # Data Model
//
// Number is an immutable value type. Its option sets are deduplicated by
// numeric equivalence and kept in ascending order. Two numbers with different
// structure can represent the same value; Eq tests that equivalence
// (a <= b && b <= a), while Cmp provides the strict total order used
// internally for set bookkeeping and cache keying.
//
// # Arithmetic
//
// Negation is pure structural recursion. Addition and multiplication are
// defined by mutual recursion over the operands' option sets and are
// intercepted by a Context, which memoizes results per operand pair and
// substitutes structurally simpler equivalent representations as they are
// discovered. Without this interception the representations produced by
// repeated composition grow without bound.
//
// A package-level default Context backs the top-level Add, Sub and Mul
// functions. Programs that want an isolated or resettable memo space can
// create their own with NewContext.
//
// # Thread Safety
//
// Number values are immutable and safe to share. Context serializes all
// arithmetic behind a single lock; see Context for details.
//
// # Limitations
//
// Work grows exponentially with operand depth. Multiplying numbers of depth
// greater than about 10 takes impractically long; this is inherent to the
// definition, not a defect, and no cancellation mechanism is provided in the
// arithmetic path.
package surreal
