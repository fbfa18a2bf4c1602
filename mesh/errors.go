package mesh

import "errors"

// Sentinel errors signaled by Euler operators and property accessors.
//
// Predicates (Is*Ok) never return these; they report bool and never mutate.
// Euler operators validate preconditions first and either succeed atomically
// or return one of these without touching the mesh.
var (
	// ErrInvalidInput flags a precondition violation in a higher-level
	// collaborator's input. The core never raises it itself; it is exported
	// for algorithm packages built on top of this one to reuse.
	ErrInvalidInput = errors.New("mesh: invalid input")

	// ErrTopology flags an attempt to create or require a non-manifold
	// configuration: a complex vertex, a complex edge, a failed patch
	// re-link, or a non-manifold hole.
	ErrTopology = errors.New("mesh: topology violation")

	// ErrAllocation flags that the element index space is exhausted.
	ErrAllocation = errors.New("mesh: element index space exhausted")

	// ErrPropertyTypeMismatch flags a property requested by name with the
	// wrong element type.
	ErrPropertyTypeMismatch = errors.New("mesh: property type mismatch")
)
