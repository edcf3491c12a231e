// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package lazy extends surreal numbers to infinite option sets.
//
// Where the surreal package stores options eagerly, a lazy.Number describes
// each side with a Generator, a demand-driven sequence of further lazy
// numbers, plus a declared size. A negative size marks the side as infinite.
// This is enough to express the classic transfinite constructions: omega as
// { 1 2 3 ... | }, epsilon as { 0 | ... 1/4 1/2 }, and so on, while finite
// numbers embed losslessly via FromFinite.
//
// Generated options are memoized per index, so a generator is invoked at
// most once for any position regardless of how often the number is printed
// or converted.
//
// Nothing here is validated at construction. A Generator is trusted to
// yield ascending values on the left, descending values on the right, and
// to keep every right option above every left option; see New.
package lazy
