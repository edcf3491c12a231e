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

import "sync/atomic"

// Entry is one memoized arithmetic result: a normalized operand pair and
// the representation currently cached for it.
type Entry struct {
	A, B   Number
	Result Number
}

// memoTable memoizes a commutative binary operation over Numbers and doubles
// as the registry of known representations for canonical substitution.
//
// Description:
//
//	Operand pairs are normalized by Cmp before keying, so op(a,b) and
//	op(b,a) share a slot. Entries are held in insertion order alongside a
//	key index; the order matters because canonicalize scans linearly and
//	the first equivalent entry encountered wins, which keeps substitution
//	deterministic run to run.
//
// Thread Safety:
//
//	Not self-synchronized. The owning Context serializes all access; the
//	stat counters are atomic only so Stats can be sampled cheaply.
type memoTable struct {
	op      string
	index   map[string]int
	entries []Entry

	hits      atomic.Int64
	misses    atomic.Int64
	adopted   atomic.Int64
	rewritten atomic.Int64
}

func newMemoTable(op string) *memoTable {
	return &memoTable{op: op, index: make(map[string]int)}
}

// normalize orders an operand pair canonically so both argument orders key
// the same entry.
func normalize(a, b Number) (Number, Number) {
	if a.Cmp(b) > 0 {
		return b, a
	}
	return a, b
}

// pairKey concatenates the operands' structural encodings. Forms are
// balanced-parenthesis strings, so the concatenation is unambiguous.
func pairKey(a, b Number) string {
	return a.structForm() + ";" + b.structForm()
}

// lookup returns the cached result for a normalized operand pair.
//
// Outputs:
//   - Number: the cached representation, valid only when found.
//   - bool: whether the pair was present.
func (t *memoTable) lookup(a, b Number) (Number, bool) {
	if i, ok := t.index[pairKey(a, b)]; ok {
		t.hits.Add(1)
		recordLookup(t.op, true)
		return t.entries[i].Result, true
	}
	t.misses.Add(1)
	recordLookup(t.op, false)
	return Number{}, false
}

// canonicalize reconciles a freshly computed raw result against every cached
// representation, preferring whichever equivalent form has fewer terms.
//
// Description:
//
//	The table is scanned in insertion order. On meeting an equivalent
//	entry: if the cached form is leaner, it is adopted outright and the
//	scan stops. If the raw form is leaner, the cached entry is rewritten
//	in place and the scan continues, upgrading any further bloated
//	equivalents. At equal complexity the cached form is adopted so that
//	equal values converge on one structure. A rewrite changes what later
//	lookups of the rewritten pair return; results already handed out keep
//	their original structure.
func (t *memoTable) canonicalize(raw Number) Number {
	rawTerms := raw.Terms()
	for i := range t.entries {
		cached := t.entries[i].Result
		if !raw.Eq(cached) {
			continue
		}
		switch {
		case rawTerms > cached.Terms():
			t.adopted.Add(1)
			recordAdopt(t.op)
			return cached
		case rawTerms < cached.Terms():
			t.entries[i].Result = raw
			t.rewritten.Add(1)
			recordRewrite(t.op)
		default:
			t.adopted.Add(1)
			recordAdopt(t.op)
			return cached
		}
	}
	return raw
}

// store records the result for a normalized operand pair. An existing entry
// is left untouched.
func (t *memoTable) store(a, b, result Number) {
	key := pairKey(a, b)
	if _, ok := t.index[key]; ok {
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{A: a, B: b, Result: result})
}

// snapshot copies the table in insertion order.
func (t *memoTable) snapshot() []Entry {
	if len(t.entries) == 0 {
		return nil
	}
	return append([]Entry(nil), t.entries...)
}

func (t *memoTable) stats() TableStats {
	return TableStats{
		Entries:   len(t.entries),
		Hits:      t.hits.Load(),
		Misses:    t.misses.Load(),
		Adopted:   t.adopted.Load(),
		Rewritten: t.rewritten.Load(),
	}
}

func (t *memoTable) reset() {
	t.index = make(map[string]int)
	t.entries = nil
	t.hits.Store(0)
	t.misses.Store(0)
	t.adopted.Store(0)
	t.rewritten.Store(0)
}
