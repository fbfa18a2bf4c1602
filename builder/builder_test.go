package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshkit/builder"
	"github.com/katalvlaran/meshkit/mesh"
)

func build(t *testing.T, cons ...builder.Constructor) *mesh.Mesh {
	t.Helper()
	m, err := builder.BuildMesh(nil, nil, cons...)
	require.NoError(t, err)
	return m
}

// counts asserts the element counts of m in (V, E, F) order.
func counts(t *testing.T, m *mesh.Mesh, v, e, f int) {
	t.Helper()
	assert.Equal(t, v, m.NVertices(), "vertices")
	assert.Equal(t, e, m.NEdges(), "edges")
	assert.Equal(t, f, m.NFaces(), "faces")
}

func TestFixtures_Counts(t *testing.T) {
	tests := []struct {
		name    string
		con     builder.Constructor
		v, e, f int
	}{
		{"triangle", builder.Triangle(), 3, 3, 1},
		{"quad", builder.Quad(), 4, 4, 1},
		{"vertex one-ring", builder.VertexOneRing(), 7, 12, 6},
		{"edge one-ring", builder.EdgeOneRing(), 10, 19, 10},
		{"l-shape", builder.LShape(), 12, 12, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			counts(t, build(t, tc.con), tc.v, tc.e, tc.f)
		})
	}
}

func TestVertexOneRing_CenterIsInterior(t *testing.T) {
	m := build(t, builder.VertexOneRing())

	center := mesh.Vertex(3)
	assert.False(t, m.IsBoundaryVertex(center))
	assert.Equal(t, 6, m.VertexValence(center))
	assert.True(t, m.IsTriangleMesh())
}

func TestEdgeOneRing_CenterEdgeIsInterior(t *testing.T) {
	m := build(t, builder.EdgeOneRing())

	e := m.FindEdge(mesh.Vertex(4), mesh.Vertex(5))
	require.True(t, e.IsValid())
	assert.False(t, m.IsBoundaryEdge(e))
	assert.True(t, m.IsFlipOk(e))
}

func TestPlatonicSolids_Counts(t *testing.T) {
	tests := []struct {
		name    string
		con     builder.Constructor
		v, e, f int
		tri     bool
		quad    bool
	}{
		{"tetrahedron", builder.Tetrahedron(), 4, 6, 4, true, false},
		{"hexahedron", builder.Hexahedron(), 8, 12, 6, false, true},
		{"octahedron", builder.Octahedron(), 6, 12, 8, true, false},
		{"dodecahedron", builder.Dodecahedron(), 20, 30, 12, false, false},
		{"icosahedron", builder.Icosahedron(), 12, 30, 20, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := build(t, tc.con)
			counts(t, m, tc.v, tc.e, tc.f)
			assert.Equal(t, tc.tri, m.IsTriangleMesh())
			assert.Equal(t, tc.quad, m.IsQuadMesh())

			// closed surfaces: no boundary anywhere, Euler characteristic 2
			for it := m.Halfedges(); it.HasNext(); {
				assert.False(t, m.IsBoundaryHalfedge(it.Next()))
			}
			assert.Equal(t, 2, m.NVertices()-m.NEdges()+m.NFaces())
		})
	}
}

func TestPlane_Counts(t *testing.T) {
	const res = 4
	m := build(t, builder.Plane(res))

	counts(t, m, (res+1)*(res+1), 2*res*(res+1), res*res)
	assert.True(t, m.IsQuadMesh())
}

func TestPlane_BadResolution(t *testing.T) {
	_, err := builder.BuildMesh(nil, nil, builder.Plane(0))
	require.ErrorIs(t, err, builder.ErrBadSize)
}

func TestCone_Counts(t *testing.T) {
	const n = 8
	m := build(t, builder.Cone(n, 1, 1.5))

	counts(t, m, n+1, 2*n, n+1)
	assert.Equal(t, 2, m.NVertices()-m.NEdges()+m.NFaces())
}

func TestCylinder_Counts(t *testing.T) {
	const n = 6
	m := build(t, builder.Cylinder(n, 1, 2))

	counts(t, m, 2*n, 3*n, n+2)
	assert.Equal(t, 2, m.NVertices()-m.NEdges()+m.NFaces())
}

func TestTorus_ClosedGenusOne(t *testing.T) {
	const radial, tubular = 5, 7
	m := build(t, builder.Torus(radial, tubular, 2, 0.5))

	counts(t, m, radial*tubular, 2*radial*tubular, radial*tubular)
	assert.True(t, m.IsQuadMesh())

	// genus 1: Euler characteristic 0, no boundary
	assert.Equal(t, 0, m.NVertices()-m.NEdges()+m.NFaces())
	for it := m.Halfedges(); it.HasNext(); {
		assert.False(t, m.IsBoundaryHalfedge(it.Next()))
	}
}

func TestRevolved_Validation(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"cone too few sides", builder.Cone(2, 1, 1), builder.ErrBadSize},
		{"cone bad radius", builder.Cone(8, 0, 1), builder.ErrOptionViolation},
		{"cylinder too few sides", builder.Cylinder(1, 1, 1), builder.ErrBadSize},
		{"torus low resolution", builder.Torus(2, 8, 2, 0.5), builder.ErrBadSize},
		{"torus fat tube", builder.Torus(8, 8, 1, 1), builder.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildMesh(nil, nil, tc.con)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWithScaleAndOrigin(t *testing.T) {
	m, err := builder.BuildMesh(nil,
		[]builder.BuilderOption{
			builder.WithScale(2),
			builder.WithOrigin(mesh.Vec3{X: 10, Y: 20, Z: 30}),
		},
		builder.Triangle())
	require.NoError(t, err)

	// canonical (1,0,0) lands at scale*p + origin
	assert.Equal(t, mesh.Vec3{X: 12, Y: 20, Z: 30}, m.Position(mesh.Vertex(1)))
	assert.Equal(t, mesh.Vec3{X: 10, Y: 20, Z: 30}, m.Position(mesh.Vertex(0)))
}

func TestWithScale_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { builder.WithScale(0) })
	assert.Panics(t, func() { builder.WithScale(-1) })
}

func TestWithUniqueVertices_FusesSharedCorners(t *testing.T) {
	// two unit quads side by side share the x=1 edge; with dedup the two
	// shared corners fuse and the quads join into a strip
	m, err := builder.BuildMesh(nil,
		[]builder.BuilderOption{builder.WithUniqueVertices()},
		builder.Quad())
	require.NoError(t, err)

	err = builder.Apply(m,
		[]builder.BuilderOption{
			builder.WithUniqueVertices(),
			builder.WithOrigin(mesh.Vec3{X: 1}),
		},
		builder.Quad())
	require.NoError(t, err)

	counts(t, m, 6, 7, 2)
	assert.False(t, m.IsBoundaryEdge(m.FindEdge(mesh.Vertex(1), mesh.Vertex(2))))
}

func TestApply_NilMesh(t *testing.T) {
	err := builder.Apply(nil, nil, builder.Triangle())
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildMesh_NilConstructor(t *testing.T) {
	_, err := builder.BuildMesh(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildMesh_ComposesConstructors(t *testing.T) {
	m, err := builder.BuildMesh(nil, nil,
		builder.Triangle(),
		builder.Tetrahedron(),
	)
	require.NoError(t, err)
	counts(t, m, 3+4, 3+6, 1+4)
}
