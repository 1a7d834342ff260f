// SPDX-License-Identifier: MIT
package itemgen

import "errors"

var (
	// ErrBadCount indicates a requested item count < 1.
	ErrBadCount = errors.New("itemgen: item count must be at least 1")
	// ErrBadSizeRange indicates min ≤ 0 or max < min.
	ErrBadSizeRange = errors.New("itemgen: size range must satisfy 0 < min ≤ max")
	// ErrUnknownScenario indicates an unrecognized scenario name.
	ErrUnknownScenario = errors.New("itemgen: unknown scenario")
)
