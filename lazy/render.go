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
	"strconv"
	"strings"
)

// Approx renders the number with at most width options materialized per
// infinite side, eliding the rest with "...". Finite sides render in full.
// The depth parameter works as in the surreal package: options below it
// print as float approximations, so an infinite option prints as NaN.
//
// Options read left to right in ascending value order on both sides: an
// infinite left side trails off upward ("1 2 3 ... |") and an infinite
// right side descends in from above ("| ... 1/4 1/2").
func (n *Number) Approx(width, depth int) string {
	var b strings.Builder
	n.writeApprox(&b, width, depth)
	return b.String()
}

func (n *Number) writeApprox(b *strings.Builder, width, depth int) {
	b.WriteString("{ ")
	switch {
	case n.left.size > 0:
		for i := 0; i < n.left.size; i++ {
			writeOption(b, n.Left(i), width, depth)
		}
	case n.left.size < 0 && width > 0:
		for i := 0; i < width; i++ {
			writeOption(b, n.Left(i), width, depth)
		}
		b.WriteString("... ")
	}
	b.WriteString("| ")
	switch {
	case n.right.size > 0:
		for i := n.right.size - 1; i >= 0; i-- {
			writeOption(b, n.Right(i), width, depth)
		}
	case n.right.size < 0 && width > 0:
		b.WriteString("... ")
		for i := width - 1; i >= 0; i-- {
			writeOption(b, n.Right(i), width, depth)
		}
	}
	b.WriteByte('}')
}

func writeOption(b *strings.Builder, opt *Number, width, depth int) {
	if depth > 0 {
		opt.writeApprox(b, width, depth-1)
	} else {
		b.WriteString(strconv.FormatFloat(opt.Float(), 'g', -1, 64))
	}
	b.WriteByte(' ')
}

// Verbose renders the bracket structure only, materializing at most width
// options per infinite side.
func (n *Number) Verbose(width int) string {
	var b strings.Builder
	n.writeVerbose(&b, width)
	return b.String()
}

func (n *Number) writeVerbose(b *strings.Builder, width int) {
	b.WriteString("{ ")
	switch {
	case n.left.size > 0:
		for i := 0; i < n.left.size; i++ {
			n.Left(i).writeVerbose(b, width)
			b.WriteByte(' ')
		}
	case n.left.size < 0 && width > 0:
		for i := 0; i < width; i++ {
			n.Left(i).writeVerbose(b, width)
			b.WriteByte(' ')
		}
		b.WriteString("... ")
	}
	b.WriteString("| ")
	switch {
	case n.right.size > 0:
		for i := n.right.size - 1; i >= 0; i-- {
			n.Right(i).writeVerbose(b, width)
			b.WriteByte(' ')
		}
	case n.right.size < 0 && width > 0:
		b.WriteString("... ")
		for i := width - 1; i >= 0; i-- {
			n.Right(i).writeVerbose(b, width)
			b.WriteByte(' ')
		}
	}
	b.WriteByte('}')
}

// String renders with the default window: five options per infinite side,
// immediate options as floats.
func (n *Number) String() string { return n.Approx(5, 0) }
