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

// Recursive arithmetic. Everything here runs with the owning Context's lock
// held; the *Locked suffix marks that contract. Results are assembled
// without simplification so the memo tables see the true structural cost of
// each computation, then passed through canonicalize to reconcile them with
// leaner known forms.

// addLocked computes a + b:
//
//	a + b = { Al+b, Bl+a | Ar+b, Br+a }
//
// where X+n applies addLocked member-wise.
func (c *Context) addLocked(a, b Number) Number {
	x, y := normalize(a, b)
	if res, ok := c.add.lookup(x, y); ok {
		return res
	}

	left := union(c.addSetNum(a.left, b), c.addSetNum(b.left, a))
	right := union(c.addSetNum(a.right, b), c.addSetNum(b.right, a))

	res := c.add.canonicalize(mustNew(left, right))
	c.add.store(x, y, res)
	return res
}

// mulLocked computes a * b:
//
//	a*b = { u*b + a*v - u*v : (u,v) in Al×Bl or Ar×Br |
//	        u*b + a*v - u*v : (u,v) in Al×Br or Ar×Bl }
//
// Each term draws one option u from a and one option v from b and uses that
// same pair in all three of its products. A pair group with an empty factor
// contributes nothing.
func (c *Context) mulLocked(a, b Number) Number {
	x, y := normalize(a, b)
	if res, ok := c.mul.lookup(x, y); ok {
		return res
	}

	left := union(c.mulTerms(a, b, a.left, b.left), c.mulTerms(a, b, a.right, b.right))
	right := union(c.mulTerms(a, b, a.left, b.right), c.mulTerms(a, b, a.right, b.left))

	res := c.mul.canonicalize(mustNew(left, right))
	c.mul.store(x, y, res)
	return res
}

// mulTerms builds u*b + a*v - u*v for every pair (u, v) in us×vs.
func (c *Context) mulTerms(a, b Number, us, vs options) options {
	var out options
	for _, u := range us {
		for _, v := range vs {
			ub := c.mulLocked(u, b)
			av := c.mulLocked(a, v)
			uv := c.mulLocked(u, v)
			out.insert(c.addLocked(c.addLocked(ub, av), uv.Neg()))
		}
	}
	return out
}

// addSetNum adds n to every member of o.
func (c *Context) addSetNum(o options, n Number) options {
	var out options
	for _, e := range o {
		out.insert(c.addLocked(e, n))
	}
	return out
}
