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

// Generator produces the options of one side of a lazy number on demand.
// At is only called for indexes the side's declared size permits, and at
// most once per index; results are cached by the owning Number.
type Generator interface {
	At(i int) *Number
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(i int) *Number

// At calls f.
func (f GeneratorFunc) At(i int) *Number { return f(i) }

// Constant returns a Generator that yields n at every index. Sides of
// embedded finite numbers use this shape.
func Constant(n *Number) Generator { return constant{n} }

type constant struct{ n *Number }

func (c constant) At(int) *Number { return c.n }
