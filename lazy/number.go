// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package lazy

import (
	"math"

	"github.com/AleutianAI/surreal"
)

// SizeInfinite declares a side with no last element. Any negative size is
// treated the same way.
const SizeInfinite = -1

// Number is a surreal number whose option sets are produced on demand.
//
// It is deliberately a pointer type: fetching an option populates an
// internal per-index cache, and every holder of the number should see that
// cache fill in rather than recompute.
//
// Number is not safe for concurrent use.
type Number struct {
	left  side
	right side
}

type side struct {
	gen   Generator
	size  int
	cache map[int]*Number
}

// at fetches and memoizes the i-th option. The generator is trusted on
// range; asking a side for an index its size does not cover, or any index
// of an empty side, is a caller bug and panics on the nil generator.
func (s *side) at(i int) *Number {
	if v, ok := s.cache[i]; ok {
		return v
	}
	v := s.gen.At(i)
	if s.cache == nil {
		s.cache = make(map[int]*Number)
	}
	s.cache[i] = v
	return v
}

// New builds { left | right } from one generator and declared size per
// side. A negative size means the side is infinite; size 0 means empty, and
// the generator may then be nil.
//
// No validation is performed, at construction or later. The generators are
// trusted to yield ascending options on the left and descending options on
// the right as the index grows toward the bound of the side, and to keep
// every right option above every left option.
func New(left, right Generator, leftSize, rightSize int) *Number {
	return &Number{
		left:  side{gen: left, size: leftSize},
		right: side{gen: right, size: rightSize},
	}
}

// FromFinite embeds an eager surreal number. Only the decisive options
// survive: the greatest left option and the least right option, each
// embedded recursively behind a constant generator. The value is unchanged.
func FromFinite(fin surreal.Number) *Number {
	n := &Number{}
	if left := fin.Left(); len(left) > 0 {
		child := FromFinite(left[len(left)-1])
		n.left = side{gen: constant{child}, size: 1}
	}
	if right := fin.Right(); len(right) > 0 {
		child := FromFinite(right[0])
		n.right = side{gen: constant{child}, size: 1}
	}
	return n
}

// FromInt embeds the canonical surreal integer v.
func FromInt(v int) *Number { return FromFinite(surreal.NewInt(v)) }

// FromFloat embeds the canonical surreal form of v. The error cases are
// those of surreal.NewFloat.
func FromFloat(v float64) (*Number, error) {
	fin, err := surreal.NewFloat(v)
	if err != nil {
		return nil, err
	}
	return FromFinite(fin), nil
}

// Left returns the i-th left option, generating and caching it on first
// access.
func (n *Number) Left(i int) *Number { return n.left.at(i) }

// Right returns the i-th right option, generating and caching it on first
// access.
func (n *Number) Right(i int) *Number { return n.right.at(i) }

// LeftSize returns the declared left side size; negative means infinite.
func (n *Number) LeftSize() int { return n.left.size }

// RightSize returns the declared right side size; negative means infinite.
func (n *Number) RightSize() int { return n.right.size }

// Finite converts to an eager surreal number.
//
// Conversion keeps only the last generated option of each finite side, the
// greatest on the left and the least on the right, converting it
// recursively. Any infinite side anywhere in the tree aborts with
// ErrInfiniteSet, unwrapped, no matter how deep it was found.
func (n *Number) Finite() (surreal.Number, error) {
	if n.left.size < 0 || n.right.size < 0 {
		return surreal.Number{}, ErrInfiniteSet
	}

	var left, right []surreal.Number
	if n.left.size > 0 {
		child, err := n.Left(n.left.size - 1).Finite()
		if err != nil {
			return surreal.Number{}, err
		}
		left = append(left, child)
	}
	if n.right.size > 0 {
		child, err := n.Right(n.right.size - 1).Finite()
		if err != nil {
			return surreal.Number{}, err
		}
		right = append(right, child)
	}
	return surreal.New(left, right, true)
}

// Float approximates the number by converting it to finite form first.
// Numbers with an infinite set anywhere in them have no finite conversion
// and report NaN.
func (n *Number) Float() float64 {
	fin, err := n.Finite()
	if err != nil {
		return math.NaN()
	}
	return fin.Float()
}
