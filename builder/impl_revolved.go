// SPDX-License-Identifier: MIT
// Package: meshkit/builder
//
// impl_revolved.go — Cone, Cylinder, Torus.
//
// Contract:
//   • sides/resolutions below their minimums ⇒ ErrBadSize.
//   • radius/height/thickness must be positive ⇒ ErrOptionViolation.
//   • Caps are single polygon faces (n-gons), walls are triangles (cone)
//     or quads (cylinder, torus); the torus is closed and boundary-free.
//   • Deterministic emission order throughout.
//
// Complexity: O(n) for Cone/Cylinder, O(radial·tubular) for Torus.

package builder

import (
	"math"

	"github.com/katalvlaran/meshkit/mesh"
)

// Cone returns a Constructor for a cone with an n-sided base in the z=0
// plane and its tip at height h on the z axis.
// Counts: n+1 vertices, 2n edges, n triangles plus one n-gon base.
func Cone(n int, radius, height float64) Constructor {
	return func(m *mesh.Mesh, cfg *builderConfig) error {
		if n < MinRevolutionSides {
			return wrapf(MethodCone, "sides below minimum", ErrBadSize)
		}
		if radius <= 0 || height <= 0 {
			return wrapf(MethodCone, "non-positive radius or height", ErrOptionViolation)
		}

		base := make([]mesh.Vertex, n)
		for i := 0; i < n; i++ {
			r := float64(i) / float64(n) * 2 * math.Pi
			base[i] = cfg.addPoint(m, mesh.Vec3{
				X: math.Cos(r) * radius,
				Y: math.Sin(r) * radius,
			})
		}

		tip := cfg.addPoint(m, mesh.Vec3{Z: height})

		for i := 0; i < n; i++ {
			ii := (i + 1) % n
			if _, err := m.AddTriangle(tip, base[i], base[ii]); err != nil {
				return wrapf(MethodCone, "AddTriangle", ErrConstructFailed)
			}
		}

		// base polygon, reversed for consistent outward orientation
		rev := make([]mesh.Vertex, n)
		for i, v := range base {
			rev[n-1-i] = v
		}
		if _, err := m.AddFace(rev); err != nil {
			return wrapf(MethodCone, "AddFace(base)", ErrConstructFailed)
		}

		return nil
	}
}

// Cylinder returns a Constructor for an n-sided cylinder with caps, its
// axis along z.
// Counts: 2n vertices, n quads plus two n-gon caps.
func Cylinder(n int, radius, height float64) Constructor {
	return func(m *mesh.Mesh, cfg *builderConfig) error {
		if n < MinRevolutionSides {
			return wrapf(MethodCylinder, "sides below minimum", ErrBadSize)
		}
		if radius <= 0 || height <= 0 {
			return wrapf(MethodCylinder, "non-positive radius or height", ErrOptionViolation)
		}

		bottom := make([]mesh.Vertex, n)
		top := make([]mesh.Vertex, n)
		for i := 0; i < n; i++ {
			r := float64(i) / float64(n) * 2 * math.Pi
			x := math.Cos(r) * radius
			y := math.Sin(r) * radius
			bottom[i] = cfg.addPoint(m, mesh.Vec3{X: x, Y: y})
			top[i] = cfg.addPoint(m, mesh.Vec3{X: x, Y: y, Z: height})
		}

		for i := 0; i < n; i++ {
			ii := (i + 1) % n
			if _, err := m.AddQuad(bottom[i], bottom[ii], top[ii], top[i]); err != nil {
				return wrapf(MethodCylinder, "AddQuad(wall)", ErrConstructFailed)
			}
		}

		if _, err := m.AddFace(top); err != nil {
			return wrapf(MethodCylinder, "AddFace(top)", ErrConstructFailed)
		}

		rev := make([]mesh.Vertex, n)
		for i, v := range bottom {
			rev[n-1-i] = v
		}
		if _, err := m.AddFace(rev); err != nil {
			return wrapf(MethodCylinder, "AddFace(bottom)", ErrConstructFailed)
		}

		return nil
	}
}

// Torus returns a Constructor for a closed quad torus: radial×tubular
// vertices, the same number of quads, genus one, no boundary.
func Torus(radial, tubular int, radius, thickness float64) Constructor {
	return func(m *mesh.Mesh, cfg *builderConfig) error {
		if radial < MinTorusResolution || tubular < MinTorusResolution {
			return wrapf(MethodTorus, "resolution below minimum", ErrBadSize)
		}
		if radius <= 0 || thickness <= 0 || thickness >= radius {
			return wrapf(MethodTorus, "need 0 < thickness < radius", ErrOptionViolation)
		}

		vs := make([]mesh.Vertex, 0, radial*tubular)
		for i := 0; i < radial; i++ {
			for j := 0; j < tubular; j++ {
				u := float64(j) / float64(tubular) * 2 * math.Pi
				v := float64(i) / float64(radial) * 2 * math.Pi
				vs = append(vs, cfg.addPoint(m, mesh.Vec3{
					X: (radius + thickness*math.Cos(v)) * math.Cos(u),
					Y: (radius + thickness*math.Cos(v)) * math.Sin(u),
					Z: thickness * math.Sin(v),
				}))
			}
		}

		for i := 0; i < radial; i++ {
			iNext := (i + 1) % radial
			for j := 0; j < tubular; j++ {
				jNext := (j + 1) % tubular
				i0 := vs[i*tubular+j]
				i1 := vs[i*tubular+jNext]
				i2 := vs[iNext*tubular+jNext]
				i3 := vs[iNext*tubular+j]
				if _, err := m.AddQuad(i0, i1, i2, i3); err != nil {
					return wrapf(MethodTorus, "AddQuad", ErrConstructFailed)
				}
			}
		}

		return nil
	}
}
