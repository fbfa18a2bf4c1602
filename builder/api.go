// SPDX-License-Identifier: MIT
// Package: meshkit/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMesh(mopts, bopts, cons...). Creates m, resolves
//     cfg, runs cons in order.
//   - All public factories are implemented in impl_*.go, one file per family.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same options and constructor order ⇒ identical meshes,
//     identical handle values.
//   - Safety: never panic at runtime; return sentinel errors from
//     constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshkit/mesh"
)

// Constructor applies a deterministic mesh mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit vertices and faces in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(m *mesh.Mesh, cfg *builderConfig) error

// BuildMesh creates a new mesh.Mesh with mesh options mopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildMesh: %w" and
// returned immediately; no partial cleanup is attempted by design.
//
// Composing several constructors is how multi-part fixtures are built
// deterministically; pass WithUniqueVertices to fuse parts that touch at
// exact positions.
func BuildMesh(mopts []mesh.Option, bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	m := mesh.NewMesh(mopts...)

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	return m, nil
}

// Apply is a thin helper: resolve cfg and run the constructors against an
// existing mesh. Combined with per-call WithOrigin/WithUniqueVertices this
// is how multi-part fixtures are assembled from differently-placed parts.
// It returns sentinel errors; it never panics.
func Apply(m *mesh.Mesh, opts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(opts...)

	if m == nil {
		return fmt.Errorf("Apply: nil mesh: %w", ErrConstructFailed)
	}

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
