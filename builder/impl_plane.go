// SPDX-License-Identifier: MIT
// Package: meshkit/builder
//
// impl_plane.go — implementation of Plane(resolution).
//
// Contract:
//   • resolution ≥ MinPlaneResolution, else ErrBadSize.
//   • Vertices cover the unit square in row-major order, (resolution+1)²
//     of them; faces are resolution² quads.
//   • Deterministic vertex and face emission order.
//
// Complexity: O(resolution²) time and space.

package builder

import (
	"github.com/katalvlaran/meshkit/mesh"
)

// Plane returns a Constructor that builds a resolution×resolution quad
// grid on the unit square in the z=0 plane.
func Plane(resolution int) Constructor {
	return func(m *mesh.Mesh, cfg *builderConfig) error {
		if resolution < MinPlaneResolution {
			return wrapf(MethodPlane, "resolution below minimum", ErrBadSize)
		}

		n := resolution + 1
		step := 1.0 / float64(resolution)

		vs := make([]mesh.Vertex, 0, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				vs = append(vs, cfg.addPoint(m, mesh.Vec3{
					X: float64(i) * step,
					Y: float64(j) * step,
				}))
			}
		}

		for i := 0; i < resolution; i++ {
			for j := 0; j < resolution; j++ {
				v0 := vs[j+i*n]
				v1 := vs[j+(i+1)*n]
				v2 := vs[j+1+(i+1)*n]
				v3 := vs[j+1+i*n]
				if _, err := m.AddQuad(v0, v1, v2, v3); err != nil {
					return wrapf(MethodPlane, "AddQuad", ErrConstructFailed)
				}
			}
		}

		return nil
	}
}
