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

import "sync"

// Context owns the memoization state for surreal arithmetic: one table for
// addition, one for multiplication. All addition and multiplication flows
// through a Context; beyond caching, the tables drive canonical
// substitution, so two Contexts can return structurally different (always
// equivalent) representations for the same expression depending on what
// each has already computed.
//
// # Thread Safety
//
// A single mutex serializes every operation, including Stats and Reset.
// Arithmetic is deeply recursive with heavy shared-table traffic, so
// finer-grained locking buys nothing; the lock is taken once per public
// call, never during recursion.
//
// # Lifecycle
//
// The zero value is not usable; create with NewContext. Contexts grow
// without bound as results accumulate. Reset reclaims everything at the
// cost of recomputing from scratch afterward.
type Context struct {
	mu  sync.Mutex
	add *memoTable
	mul *memoTable
}

// NewContext returns an empty arithmetic context.
func NewContext() *Context {
	return &Context{add: newMemoTable("add"), mul: newMemoTable("mul")}
}

// defaultContext backs the package-level arithmetic functions.
var defaultContext = NewContext()

// DefaultContext returns the shared context used by the package-level Add,
// Sub and Mul.
func DefaultContext() *Context { return defaultContext }

// Add returns a + b.
func (c *Context) Add(a, b Number) Number {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addLocked(a, b)
}

// Sub returns a - b, computed as a + (-b).
func (c *Context) Sub(a, b Number) Number {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addLocked(a, b.Neg())
}

// Mul returns a * b.
func (c *Context) Mul(a, b Number) Number {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mulLocked(a, b)
}

// AddEntries returns the addition table in insertion order.
func (c *Context) AddEntries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.add.snapshot()
}

// MulEntries returns the multiplication table in insertion order.
func (c *Context) MulEntries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mul.snapshot()
}

// Reset drops all memoized results and zeroes the counters.
func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add.reset()
	c.mul.reset()
}

// TableStats describes one memo table.
type TableStats struct {
	// Entries is the number of cached operand pairs.
	Entries int
	// Hits and Misses count lookups.
	Hits   int64
	Misses int64
	// Adopted counts results replaced by an equivalent cached form;
	// Rewritten counts cached entries upgraded in place by a leaner
	// result.
	Adopted   int64
	Rewritten int64
}

// Stats reports both tables.
type Stats struct {
	Add TableStats
	Mul TableStats
}

// Stats returns a consistent snapshot of cache activity.
func (c *Context) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Add: c.add.stats(), Mul: c.mul.stats()}
}

// Add returns a + b using the default context.
func Add(a, b Number) Number { return defaultContext.Add(a, b) }

// Sub returns a - b using the default context.
func Sub(a, b Number) Number { return defaultContext.Sub(a, b) }

// Mul returns a * b using the default context.
func Mul(a, b Number) Number { return defaultContext.Mul(a, b) }

// AddAssign replaces n with n + b, computed through the default context.
func (n *Number) AddAssign(b Number) { *n = defaultContext.Add(*n, b) }

// SubAssign replaces n with n - b, computed through the default context.
func (n *Number) SubAssign(b Number) { *n = defaultContext.Sub(*n, b) }

// MulAssign replaces n with n * b, computed through the default context.
func (n *Number) MulAssign(b Number) { *n = defaultContext.Mul(*n, b) }
