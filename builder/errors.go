// SPDX-License-Identifier: MIT
// Package: meshkit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` via wrapf.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates that a size parameter (sides, resolution, ring
// dimensions) is below the minimum the requested constructor needs.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n/resolution */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrConstructFailed indicates that a constructor could not assemble its
// topology without breaking a mesh invariant — in practice, an AddFace
// call reported a topology violation on what should be a canonical shape.
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect options */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a runtime-resolved option value that is
// meaningless for the requested constructor. Violations detectable inside
// a WithX constructor panic there instead.
var ErrOptionViolation = errors.New("builder: invalid option value")

// wrapf prefixes err with the canonical constructor name and a short
// context message, preserving the sentinel for errors.Is.
func wrapf(method, context string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, context, err)
}
