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

import "errors"

var (
	// ErrInvalidConstruction indicates a { L | R } pair that violates the
	// construction rule: some right option was less than or equal to some
	// left option. Such a pair is a game, not a number, and no Number is
	// produced for it.
	ErrInvalidConstruction = errors.New("invalid construction: right option <= left option")

	// ErrNotFinite indicates a conversion was asked to produce a Number
	// from a value outside the finite range the package supports, such as
	// a NaN or infinite float.
	ErrNotFinite = errors.New("value is not finite")
)
