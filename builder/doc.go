// Package builder provides “functional-options”-style constructors for the
// canonical surface meshes the rest of the module (and its test suites)
// keep reaching for: the minimal triangle/quad fixtures, the one-ring fans,
// planar quad grids, the five Platonic solids, and the classic revolved
// shapes (cone, cylinder, torus).
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds scale, origin, and vertex dedup policy.
//   - Fixture constructors (impl_fixtures.go):
//     – Triangle, Quad, VertexOneRing, EdgeOneRing, LShape.
//   - Planar constructors (impl_plane.go):
//     – Plane(resolution): quad grid on the unit square.
//   - Platonic solids (impl_platonic.go):
//     – Tetrahedron, Hexahedron, Octahedron, Dodecahedron, Icosahedron;
//       Octahedron and Dodecahedron are derived as duals, exactly like the
//       reference construction.
//   - Revolved shapes (impl_revolved.go):
//     – Cone, Cylinder, Torus.
//
// Guarantees:
//
//   - Determinism: the same constructor with the same options always emits
//     identical vertex and face orders, so handle values are reproducible.
//   - Constructors validate parameters early and return sentinel errors
//     (ErrBadSize, ErrConstructFailed); they never panic at runtime.
//     Option constructors (WithScale, ...) fast-fail on meaningless values
//     by panicking, since those are programmer errors.
//   - Every constructor is a pure consumer of mesh.AddVertex/AddFace; the
//     builder holds no privileged access to the core.
//
// See individual function documentation for parameter contracts and the
// exact element counts each shape produces.
package builder
