package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshkit/mesh"
)

// singleTriangle builds the minimal mesh: one face on three fresh
// vertices.
func singleTriangle(t *testing.T) (*mesh.Mesh, [3]mesh.Vertex) {
	t.Helper()
	m := mesh.NewMesh()
	v0 := m.AddVertex(mesh.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(mesh.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(mesh.Vec3{X: 0, Y: 1, Z: 0})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)
	return m, [3]mesh.Vertex{v0, v1, v2}
}

// quadTriangulated builds the unit square split along the v0-v2 diagonal.
func quadTriangulated(t *testing.T) (*mesh.Mesh, [4]mesh.Vertex) {
	t.Helper()
	m := mesh.NewMesh()
	v0 := m.AddVertex(mesh.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(mesh.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(mesh.Vec3{X: 1, Y: 1, Z: 0})
	v3 := m.AddVertex(mesh.Vec3{X: 0, Y: 1, Z: 0})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)
	_, err = m.AddTriangle(v0, v2, v3)
	require.NoError(t, err)
	return m, [4]mesh.Vertex{v0, v1, v2, v3}
}

// unitQuad builds one quad face on the unit square.
func unitQuad(t *testing.T) (*mesh.Mesh, mesh.Face) {
	t.Helper()
	m := mesh.NewMesh()
	v0 := m.AddVertex(mesh.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(mesh.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(mesh.Vec3{X: 1, Y: 1, Z: 0})
	v3 := m.AddVertex(mesh.Vec3{X: 0, Y: 1, Z: 0})
	f, err := m.AddQuad(v0, v1, v2, v3)
	require.NoError(t, err)
	return m, f
}

// vertexOneRing builds the 6-triangle fan with vertex 3 in the center,
// the same fixture the fan-collapse and center-deletion scenarios use.
func vertexOneRing(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	v := make([]mesh.Vertex, 7)
	v[0] = m.AddVertex(mesh.Vec3{X: 0.4499998093, Y: 0.5196152329})
	v[1] = m.AddVertex(mesh.Vec3{X: 0.2999998033, Y: 0.5196152329})
	v[2] = m.AddVertex(mesh.Vec3{X: 0.5249998569, Y: 0.3897114396})
	v[3] = m.AddVertex(mesh.Vec3{X: 0.3749998510, Y: 0.3897114396})
	v[4] = m.AddVertex(mesh.Vec3{X: 0.2249998450, Y: 0.3897114396})
	v[5] = m.AddVertex(mesh.Vec3{X: 0.4499999285, Y: 0.2598076165})
	v[6] = m.AddVertex(mesh.Vec3{X: 0.2999999225, Y: 0.2598076165})

	for _, tri := range [][3]int{
		{3, 0, 1}, {3, 2, 0}, {4, 3, 1}, {5, 2, 3}, {6, 5, 3}, {6, 3, 4},
	} {
		_, err := m.AddTriangle(v[tri[0]], v[tri[1]], v[tri[2]])
		require.NoError(t, err)
	}

	return m
}

// checkInvariants walks the whole mesh verifying the structural
// invariants every operator must preserve: opposite pairing, face-cycle
// closure, boundary discipline at vertices, and distinct faces across
// interior edges.
func checkInvariants(t *testing.T, m *mesh.Mesh) {
	t.Helper()

	for it := m.Edges(); it.HasNext(); {
		e := it.Next()
		h0 := mesh.HalfedgeOfEdge(e, 0)
		h1 := mesh.HalfedgeOfEdge(e, 1)
		require.Equal(t, h0, mesh.Opposite(h1))
		require.Equal(t, h1, mesh.Opposite(h0))
		require.Equal(t, e, mesh.EdgeOf(h0))
		require.Equal(t, e, mesh.EdgeOf(h1))

		f0 := m.FaceOf(h0)
		f1 := m.FaceOf(h1)
		if f0.IsValid() && f1.IsValid() {
			require.NotEqual(t, f0, f1, "interior edge %d bounded twice by one face", e)
		}
	}

	for it := m.Faces(); it.HasNext(); {
		f := it.Next()
		n := m.FaceValence(f)
		h := m.HalfedgeOfFace(f)
		for i := 0; i < n; i++ {
			require.Equal(t, f, m.FaceOf(h))
			h = m.Next(h)
		}
		require.Equal(t, m.HalfedgeOfFace(f), h, "face %d cycle does not close in valence steps", f)
	}

	for it := m.Vertices(); it.HasNext(); {
		v := it.Next()
		h := m.HalfedgeOfVertex(v)
		if !h.IsValid() {
			continue
		}
		require.Equal(t, v, m.FromVertex(h))
		// the stored outgoing halfedge must be boundary whenever any is
		boundary := false
		for hit := m.HalfedgeAroundVertexBegin(v); hit.HasNext(); {
			if m.IsBoundaryHalfedge(hit.Next()) {
				boundary = true
			}
		}
		if boundary {
			require.True(t, m.IsBoundaryHalfedge(h), "vertex %d stores interior halfedge at a boundary", v)
		}
	}
}
