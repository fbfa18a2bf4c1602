// SPDX-License-Identifier: MIT
// Package: meshkit/builder
//
// impl_fixtures.go — the small canonical fixtures: a single triangle, a
// single quad, the two one-ring fans, and the L-shaped polygon. These are
// the shapes the core's own scenarios are phrased in; keeping their vertex
// coordinates and face orders fixed here keeps every downstream test and
// example reproducible.

package builder

import "github.com/katalvlaran/meshkit/mesh"

// Triangle returns a Constructor that adds one triangle face on three
// fresh vertices of the canonical right triangle in the z=0 plane.
// Counts: 3 vertices, 3 edges, 1 face.
func Triangle() Constructor {
	return func(m *mesh.Mesh, cfg *builderConfig) error {
		v0 := cfg.addPoint(m, mesh.Vec3{X: 0, Y: 0, Z: 0})
		v1 := cfg.addPoint(m, mesh.Vec3{X: 1, Y: 0, Z: 0})
		v2 := cfg.addPoint(m, mesh.Vec3{X: 0, Y: 1, Z: 0})
		if _, err := m.AddTriangle(v0, v1, v2); err != nil {
			return wrapf(MethodTriangle, "AddTriangle", ErrConstructFailed)
		}
		return nil
	}
}

// Quad returns a Constructor that adds one quad face on the unit square.
// Counts: 4 vertices, 4 edges, 1 face.
func Quad() Constructor {
	return func(m *mesh.Mesh, cfg *builderConfig) error {
		v0 := cfg.addPoint(m, mesh.Vec3{X: 0, Y: 0, Z: 0})
		v1 := cfg.addPoint(m, mesh.Vec3{X: 1, Y: 0, Z: 0})
		v2 := cfg.addPoint(m, mesh.Vec3{X: 1, Y: 1, Z: 0})
		v3 := cfg.addPoint(m, mesh.Vec3{X: 0, Y: 1, Z: 0})
		if _, err := m.AddQuad(v0, v1, v2, v3); err != nil {
			return wrapf(MethodQuad, "AddQuad", ErrConstructFailed)
		}
		return nil
	}
}

// VertexOneRing returns a Constructor for the 6-triangle fan whose fourth
// vertex (index 3) is the interior center — the canonical one-ring
// fixture. Counts: 7 vertices, 12 edges, 6 faces.
func VertexOneRing() Constructor {
	points := []mesh.Vec3{
		{X: 0.4499998093, Y: 0.5196152329},
		{X: 0.2999998033, Y: 0.5196152329},
		{X: 0.5249998569, Y: 0.3897114396},
		{X: 0.3749998510, Y: 0.3897114396},
		{X: 0.2249998450, Y: 0.3897114396},
		{X: 0.4499999285, Y: 0.2598076165},
		{X: 0.2999999225, Y: 0.2598076165},
	}
	tris := [][3]int{
		{3, 0, 1}, {3, 2, 0}, {4, 3, 1}, {5, 2, 3}, {6, 5, 3}, {6, 3, 4},
	}
	return fanConstructor(MethodVertexOneRing, points, tris)
}

// EdgeOneRing returns a Constructor for the 10-triangle strip around a
// center edge (vertices 4 and 5 are its interior endpoints).
// Counts: 10 vertices, 19 edges, 10 faces.
func EdgeOneRing() Constructor {
	points := []mesh.Vec3{
		{X: 0.5999997854, Y: 0.5196152329},
		{X: 0.4499998093, Y: 0.5196152329},
		{X: 0.2999998033, Y: 0.5196152329},
		{X: 0.6749998331, Y: 0.3897114396},
		{X: 0.5249998569, Y: 0.3897114396},
		{X: 0.3749998510, Y: 0.3897114396},
		{X: 0.2249998450, Y: 0.3897114396},
		{X: 0.5999999046, Y: 0.2598076165},
		{X: 0.4499999285, Y: 0.2598076165},
		{X: 0.2999999225, Y: 0.2598076165},
	}
	tris := [][3]int{
		{4, 0, 1}, {4, 3, 0}, {5, 1, 2}, {5, 4, 1}, {6, 5, 2},
		{7, 3, 4}, {8, 7, 4}, {8, 4, 5}, {9, 8, 5}, {9, 5, 6},
	}
	return fanConstructor(MethodEdgeOneRing, points, tris)
}

// LShape returns a Constructor for a single 12-gon face shaped like an L,
// useful for exercising polygon (non-triangle, non-quad) face handling.
func LShape() Constructor {
	points := []mesh.Vec3{
		{X: 0.0, Y: 0.0}, {X: 0.5, Y: 0.0}, {X: 1.0, Y: 0.0},
		{X: 1.0, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: 1.0},
		{X: 0.5, Y: 1.5}, {X: 0.5, Y: 2.0}, {X: 0.0, Y: 2.0},
		{X: 0.0, Y: 1.5}, {X: 0.0, Y: 1.0}, {X: 0.0, Y: 0.5},
	}
	return func(m *mesh.Mesh, cfg *builderConfig) error {
		vs := make([]mesh.Vertex, len(points))
		for i, p := range points {
			vs[i] = cfg.addPoint(m, p)
		}
		if _, err := m.AddFace(vs); err != nil {
			return wrapf(MethodLShape, "AddFace", ErrConstructFailed)
		}
		return nil
	}
}

// fanConstructor assembles a fixed triangle list over fixed points; shared
// by the one-ring fixtures.
func fanConstructor(method string, points []mesh.Vec3, tris [][3]int) Constructor {
	return func(m *mesh.Mesh, cfg *builderConfig) error {
		vs := make([]mesh.Vertex, len(points))
		for i, p := range points {
			vs[i] = cfg.addPoint(m, p)
		}
		for _, tri := range tris {
			if _, err := m.AddTriangle(vs[tri[0]], vs[tri[1]], vs[tri[2]]); err != nil {
				return wrapf(method, "AddTriangle", ErrConstructFailed)
			}
		}
		return nil
	}
}
