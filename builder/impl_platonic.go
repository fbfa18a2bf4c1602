// SPDX-License-Identifier: MIT
// Package: meshkit/builder
//
// impl_platonic.go — the five Platonic solids as surface meshes.
//
// Canonical model:
//   • Tetrahedron, Hexahedron, and Icosahedron carry explicit coordinates
//     and face lists.
//   • Octahedron and Dodecahedron are derived as the duals of Hexahedron
//     and Icosahedron respectively (face centroids become vertices, vertex
//     fans become faces), projected to the unit sphere — the same
//     construction the reference geometry uses.
//
// Contract:
//   • Vertex and face emission order is fixed; equal options ⇒ equal
//     handles.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(V+E+F) per solid (constants: V≤20, E≤30, F≤20).

package builder

import (
	"math"

	"github.com/katalvlaran/meshkit/mesh"
)

// Tetrahedron returns a Constructor for the regular tetrahedron.
// Counts: 4 vertices, 6 edges, 4 triangles.
func Tetrahedron() Constructor {
	a := 1.0 / 3.0
	b := math.Sqrt(8.0 / 9.0)
	c := math.Sqrt(2.0 / 9.0)
	d := math.Sqrt(2.0 / 3.0)

	points := []mesh.Vec3{
		{X: 0, Y: 0, Z: 1},
		{X: -c, Y: d, Z: -a},
		{X: -c, Y: -d, Z: -a},
		{X: b, Y: 0, Z: -a},
	}
	tris := [][3]int{
		{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {3, 2, 1},
	}
	return fanConstructor(MethodPlatonicSolid, points, tris)
}

// Hexahedron returns a Constructor for the cube.
// Counts: 8 vertices, 12 edges, 6 quads.
func Hexahedron() Constructor {
	a := 1.0 / math.Sqrt(3.0)
	points := []mesh.Vec3{
		{X: -a, Y: -a, Z: -a},
		{X: a, Y: -a, Z: -a},
		{X: a, Y: a, Z: -a},
		{X: -a, Y: a, Z: -a},
		{X: -a, Y: -a, Z: a},
		{X: a, Y: -a, Z: a},
		{X: a, Y: a, Z: a},
		{X: -a, Y: a, Z: a},
	}
	quads := [][4]int{
		{3, 2, 1, 0}, {2, 6, 5, 1}, {5, 6, 7, 4},
		{0, 4, 7, 3}, {3, 7, 6, 2}, {1, 5, 4, 0},
	}
	return func(m *mesh.Mesh, cfg *builderConfig) error {
		vs := make([]mesh.Vertex, len(points))
		for i, p := range points {
			vs[i] = cfg.addPoint(m, p)
		}
		for _, q := range quads {
			if _, err := m.AddQuad(vs[q[0]], vs[q[1]], vs[q[2]], vs[q[3]]); err != nil {
				return wrapf(MethodPlatonicSolid, "AddQuad", ErrConstructFailed)
			}
		}
		return nil
	}
}

// Icosahedron returns a Constructor for the regular icosahedron.
// Counts: 12 vertices, 30 edges, 20 triangles.
func Icosahedron() Constructor {
	phi := (1.0 + math.Sqrt(5.0)) * 0.5
	a := 1.0
	b := 1.0 / phi

	raw := []mesh.Vec3{
		{X: 0, Y: b, Z: -a},
		{X: b, Y: a, Z: 0},
		{X: -b, Y: a, Z: 0},
		{X: 0, Y: b, Z: a},
		{X: 0, Y: -b, Z: a},
		{X: -a, Y: 0, Z: b},
		{X: 0, Y: -b, Z: -a},
		{X: a, Y: 0, Z: -b},
		{X: a, Y: 0, Z: b},
		{X: -a, Y: 0, Z: -b},
		{X: b, Y: -a, Z: 0},
		{X: -b, Y: -a, Z: 0},
	}
	points := make([]mesh.Vec3, len(raw))
	for i, p := range raw {
		points[i] = normalized(p)
	}

	tris := [][3]int{
		{2, 1, 0}, {1, 2, 3}, {5, 4, 3}, {4, 8, 3}, {7, 6, 0},
		{6, 9, 0}, {11, 10, 4}, {10, 11, 6}, {9, 5, 2}, {5, 9, 11},
		{8, 7, 1}, {7, 8, 10}, {2, 5, 3}, {8, 1, 3}, {9, 2, 0},
		{1, 7, 0}, {11, 9, 6}, {7, 10, 6}, {5, 11, 4}, {10, 8, 4},
	}
	return fanConstructor(MethodPlatonicSolid, points, tris)
}

// Octahedron returns a Constructor for the regular octahedron, derived as
// the unit-sphere-projected dual of the cube.
// Counts: 6 vertices, 12 edges, 8 triangles.
func Octahedron() Constructor {
	return dualOf(Hexahedron())
}

// Dodecahedron returns a Constructor for the regular dodecahedron, derived
// as the unit-sphere-projected dual of the icosahedron.
// Counts: 20 vertices, 30 edges, 12 pentagons.
func Dodecahedron() Constructor {
	return dualOf(Icosahedron())
}

// dualOf runs base on a scratch mesh with the identity transform, builds
// its dual (one vertex per face centroid, one face per vertex fan), and
// emits the dual through cfg so scale/origin/dedup apply to the final
// positions. Only valid for closed base meshes.
func dualOf(base Constructor) Constructor {
	return func(m *mesh.Mesh, cfg *builderConfig) error {
		tmp := mesh.NewMesh()
		if err := base(tmp, newBuilderConfig()); err != nil {
			return err
		}

		// centroid of each base face becomes a dual vertex
		dualVertex := make(map[mesh.Face]mesh.Vertex)
		for it := tmp.Faces(); it.HasNext(); {
			f := it.Next()
			dualVertex[f] = cfg.addPoint(m, normalized(centroid(tmp, f)))
		}

		// the face fan around each base vertex becomes a dual face
		for it := tmp.Vertices(); it.HasNext(); {
			v := it.Next()
			var ring []mesh.Vertex
			for fit := tmp.FaceAroundVertexBegin(v); fit.HasNext(); {
				ring = append(ring, dualVertex[fit.Next()])
			}
			if _, err := m.AddFace(ring); err != nil {
				return wrapf(MethodPlatonicSolid, "dual AddFace", ErrConstructFailed)
			}
		}

		return nil
	}
}

// centroid returns the arithmetic mean of f's corner positions.
func centroid(m *mesh.Mesh, f mesh.Face) mesh.Vec3 {
	var c mesh.Vec3
	n := 0.0
	for it := m.VertexAroundFaceBegin(f); it.HasNext(); {
		p := m.Position(it.Next())
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
		n++
	}
	c.X /= n
	c.Y /= n
	c.Z /= n
	return c
}

// normalized projects p onto the unit sphere.
func normalized(p mesh.Vec3) mesh.Vec3 {
	n := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	return mesh.Vec3{X: p.X / n, Y: p.Y / n, Z: p.Z / n}
}
