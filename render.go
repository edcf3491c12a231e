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
	"strconv"
	"strings"
)

// Verbose renders the full structure: every option expanded recursively,
// spaces after each member, zero as "{ | }". One is "{ { | } | }".
func (n Number) Verbose() string {
	var b strings.Builder
	n.writeVerbose(&b)
	return b.String()
}

func (n Number) writeVerbose(b *strings.Builder) {
	b.WriteString("{ ")
	for _, l := range n.left {
		l.writeVerbose(b)
		b.WriteByte(' ')
	}
	b.WriteString("| ")
	for _, r := range n.right {
		r.writeVerbose(b)
		b.WriteByte(' ')
	}
	b.WriteByte('}')
}

// Approx renders the pair structure to the given depth, then switches to
// float approximations: at depth 0 or below the options print as floats, at
// depth 1 the options' options do, and so on.
func (n Number) Approx(depth int) string {
	var b strings.Builder
	n.writeApprox(&b, depth)
	return b.String()
}

func (n Number) writeApprox(b *strings.Builder, depth int) {
	b.WriteString("{ ")
	for _, l := range n.left {
		if depth > 0 {
			l.writeApprox(b, depth-1)
		} else {
			b.WriteString(formatFloat(l.Float()))
		}
		b.WriteByte(' ')
	}
	b.WriteString("| ")
	for _, r := range n.right {
		if depth > 0 {
			r.writeApprox(b, depth-1)
		} else {
			b.WriteString(formatFloat(r.Float()))
		}
		b.WriteByte(' ')
	}
	b.WriteByte('}')
}

// String renders as Approx(0): the immediate options as floats.
func (n Number) String() string { return n.Approx(0) }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
