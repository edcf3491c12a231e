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
	"sort"
	"testing"
)

// ladder returns canonical numbers with known, distinct values in ascending
// order.
func ladder(t *testing.T) []Number {
	t.Helper()
	vals := []float64{-2, -1, -0.5, 0, 0.5, 1, 2}
	out := make([]Number, len(vals))
	for i, v := range vals {
		out[i] = mustFloat(t, v)
	}
	return out
}

func TestLeqMatchesValueOrder(t *testing.T) {
	ns := ladder(t)
	for _, a := range ns {
		for _, b := range ns {
			want := a.Float() <= b.Float()
			if got := a.Leq(b); got != want {
				t.Errorf("Leq(%v, %v) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestDerivedRelationsAgree(t *testing.T) {
	ns := ladder(t)
	for _, a := range ns {
		for _, b := range ns {
			leq, geq := a.Leq(b), a.Geq(b)
			if a.Eq(b) != (leq && geq) {
				t.Errorf("Eq(%v, %v) disagrees with Leq/Geq", a, b)
			}
			if a.Ne(b) != !a.Eq(b) {
				t.Errorf("Ne(%v, %v) disagrees with Eq", a, b)
			}
			if a.Less(b) != (leq && !geq) {
				t.Errorf("Less(%v, %v) disagrees with Leq/Geq", a, b)
			}
			if a.Greater(b) != (geq && !leq) {
				t.Errorf("Greater(%v, %v) disagrees with Leq/Geq", a, b)
			}
			if a.Geq(b) != b.Leq(a) {
				t.Errorf("Geq(%v, %v) is not the mirror of Leq", a, b)
			}
		}
	}
}

func TestEqAcrossRepresentations(t *testing.T) {
	forms := []Number{
		NewInt(1),
		mustPair(t, NewInt(0), NewInt(2)),
		mustPair(t, mustFloat(t, 0.5), NewInt(2)),
		construct(t, []Number{NewInt(0), mustFloat(t, 0.5)}, nums(3), false),
	}
	for i, a := range forms {
		for j, b := range forms {
			if !a.Eq(b) {
				t.Errorf("forms %d and %d should be equivalent: %v vs %v", i, j, a, b)
			}
			if a.Less(b) || a.Greater(b) {
				t.Errorf("forms %d and %d should be neither above nor below each other", i, j)
			}
		}
	}
}

func TestCmpTotalOrder(t *testing.T) {
	one := NewInt(1)
	alsoOne := mustPair(t, NewInt(0), NewInt(2))

	if got := one.Cmp(one); got != 0 {
		t.Errorf("Cmp(x, x) = %d, want 0", got)
	}
	if got := one.Cmp(alsoOne); got == 0 {
		t.Error("Cmp of equivalent but distinct forms should break the tie")
	}
	if one.Cmp(alsoOne) != -alsoOne.Cmp(one) {
		t.Error("Cmp is not antisymmetric")
	}
	if NewInt(0).Cmp(one) != -1 || one.Cmp(NewInt(0)) != 1 {
		t.Error("Cmp disagrees with value order")
	}
}

func TestCmpSortIsDeterministic(t *testing.T) {
	build := func() []Number {
		ns := []Number{
			NewInt(2),
			NewInt(0),
			mustPair(t, NewInt(0), NewInt(2)), // equivalent to 1
			NewInt(1),
			NewInt(-1),
			mustFloat(t, 0.5),
		}
		sort.Slice(ns, func(i, j int) bool { return ns[i].Cmp(ns[j]) < 0 })
		return ns
	}
	first, second := build(), build()
	for i := range first {
		if !first[i].Identical(second[i]) {
			t.Fatalf("sort order unstable at %d: %v vs %v", i, first[i], second[i])
		}
	}
	// Values must come out ascending regardless of tie-breaks.
	for i := 1; i < len(first); i++ {
		if first[i-1].Greater(first[i]) {
			t.Fatalf("sorted values out of order at %d", i)
		}
	}
}
