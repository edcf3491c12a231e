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

// options is an option set: ascending by value, deduplicated by numeric
// equivalence. The first insert of an equivalence class fixes the
// representative; later equivalent inserts are dropped.
type options []Number

// insert adds n unless an equivalent member is already present.
func (o *options) insert(n Number) {
	lo, hi := 0, len(*o)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case n.Less((*o)[mid]):
			hi = mid
		case n.Greater((*o)[mid]):
			lo = mid + 1
		default:
			return
		}
	}
	*o = append(*o, Number{})
	copy((*o)[lo+1:], (*o)[lo:])
	(*o)[lo] = n
}

// min returns the least member. Callers guarantee the set is non-empty.
func (o options) min() Number { return o[0] }

// max returns the greatest member. Callers guarantee the set is non-empty.
func (o options) max() Number { return o[len(o)-1] }

// fromSlice builds an option set from arbitrary input, deduplicating as it
// goes.
func fromSlice(nums []Number) options {
	var o options
	for _, n := range nums {
		o.insert(n)
	}
	return o
}

// extremeOf scans raw input for its greatest (wantMax) or least member,
// keeping the earliest representative on ties.
func extremeOf(nums []Number, wantMax bool) Number {
	best := nums[0]
	for _, n := range nums[1:] {
		if wantMax && n.Greater(best) {
			best = n
		}
		if !wantMax && n.Less(best) {
			best = n
		}
	}
	return best
}

// union merges two option sets into a fresh one.
func union(a, b options) options {
	var o options
	for _, n := range a {
		o.insert(n)
	}
	for _, n := range b {
		o.insert(n)
	}
	return o
}
