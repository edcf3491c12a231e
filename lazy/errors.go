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

import "errors"

// ErrInfiniteSet indicates a finite conversion met an infinite option set,
// either at the top level or in some nested option. The value cannot be
// represented by the surreal package's eager sets.
var ErrInfiniteSet = errors.New("encountered infinite set")
