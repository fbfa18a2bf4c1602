// Package meshkit is your in-memory toolkit for building, exploring, and
// reshaping polygon surface meshes in Go.
//
// 🚀 What is meshkit?
//
//	A halfedge-mesh kernel that brings together:
//
//	  • Core primitives: vertices, halfedges, edges & faces as dense handles
//	  • Euler operators: add_face, split, flip, collapse, insert, remove
//	  • Dynamic properties: attach any typed per-element data by name
//
// ✨ Why choose meshkit?
//
//   - Predictable        — single-writer contract, no hidden locking
//   - Compact            — opposite(h) is h XOR 1, never a stored field
//   - Extensible         — name-keyed typed property arrays on every kind
//   - Pure Go            — no cgo; testify is the only third-party dep
//
// Under the hood, everything is organized under three subpackages:
//
//	property/ — name-keyed, type-checked, densely indexed per-element arrays
//	mesh/     — halfedge connectivity, Euler operators, circulators, GC
//	builder/  — deterministic constructors: fixtures, grids, solids, tori
//
// Quick ASCII example:
//
//	    v3───v2
//	    │  ╱ │
//	    v0───v1
//
//	represents the unit square triangulated along its diagonal; flipping
//	the diagonal edge re-connects it through v1 and v3.
//
// Deletion is deferred: delete operators mark elements, and
// GarbageCollection compacts the arrays, renumbering every live handle
// through a returned remap. See the mesh package documentation for the
// full lifecycle and invariants.
package meshkit
