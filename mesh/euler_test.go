package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshkit/mesh"
)

// Quad triangulation + flip: the diagonal (v0,v2) becomes (v1,v3).
func TestFlip_Diagonal(t *testing.T) {
	m, vs := quadTriangulated(t)

	e := m.FindEdge(vs[0], vs[2])
	require.True(t, e.IsValid())
	require.True(t, m.IsFlipOk(e))

	m.Flip(e)

	assert.Equal(t, 2, m.NFaces())
	assert.False(t, m.FindEdge(vs[0], vs[2]).IsValid())
	assert.True(t, m.FindEdge(vs[1], vs[3]).IsValid())
	assert.True(t, m.IsTriangleMesh())
	checkInvariants(t, m)
}

func TestFlip_Involution(t *testing.T) {
	m, vs := quadTriangulated(t)

	e := m.FindEdge(vs[0], vs[2])
	m.Flip(e)
	require.True(t, m.IsFlipOk(e))
	m.Flip(e)

	// two flips restore the connectivity up to handle identity
	assert.True(t, m.FindEdge(vs[0], vs[2]).IsValid())
	assert.False(t, m.FindEdge(vs[1], vs[3]).IsValid())
	assert.Equal(t, 2, m.NFaces())
	checkInvariants(t, m)
}

func TestIsFlipOk_Rejections(t *testing.T) {
	m, vs := quadTriangulated(t)

	// boundary edges cannot flip
	rim := m.FindEdge(vs[0], vs[1])
	require.True(t, rim.IsValid())
	assert.False(t, m.IsFlipOk(rim))

	// a lone triangle has only boundary edges, nothing flips
	m2, _ := singleTriangle(t)
	for it := m2.Edges(); it.HasNext(); {
		assert.False(t, m2.IsFlipOk(it.Next()))
	}
}

// Vertex one-ring collapse: center-to-rim is non-manifold, rim-to-rim
// along a boundary edge is legal, and collapsing a rim vertex into the
// center removes exactly two faces.
func TestCollapse_OneRing(t *testing.T) {
	m := vertexOneRing(t)
	require.Equal(t, 7, m.NVertices())
	require.Equal(t, 6, m.NFaces())

	center := mesh.Vertex(3)

	// collapsing the center into any rim vertex must be rejected
	for it := m.HalfedgeAroundVertexBegin(center); it.HasNext(); {
		out := it.Next()
		assert.False(t, m.IsCollapseOk(out), "center-out collapse must fail")
	}

	// rim-to-rim along the boundary ring is legal
	ring := m.FindHalfedge(mesh.Vertex(0), mesh.Vertex(1))
	require.True(t, ring.IsValid())
	assert.True(t, m.IsCollapseOk(ring))

	// collapse a rim vertex into the center: two wedges degenerate
	h := m.FindHalfedge(mesh.Vertex(0), center)
	require.True(t, h.IsValid())
	require.True(t, m.IsCollapseOk(h))

	m.Collapse(h)
	require.True(t, m.HasGarbage())
	m.GarbageCollection()

	assert.Equal(t, 6, m.NVertices())
	assert.Equal(t, 4, m.NFaces())
	assert.False(t, m.HasGarbage())
	checkInvariants(t, m)
}

func TestIsCollapseOk_BoundaryToBoundaryInteriorEdge(t *testing.T) {
	m, vs := quadTriangulated(t)

	// v0 and v2 are both boundary but the diagonal is interior
	h := m.FindHalfedge(vs[0], vs[2])
	require.True(t, h.IsValid())
	assert.False(t, m.IsCollapseOk(h))
	assert.False(t, m.IsCollapseOk(mesh.Opposite(h)))

	// a boundary edge between boundary vertices collapses fine
	rim := m.FindHalfedge(vs[0], vs[1])
	assert.True(t, m.IsCollapseOk(rim))
}

// split + collapse back restores the triangle-pair topology.
func TestSplitEdgeThenCollapse_RoundTrip(t *testing.T) {
	m, vs := quadTriangulated(t)
	e := m.FindEdge(vs[0], vs[2])

	v, hBack := m.SplitEdge(e, mesh.Vec3{X: 0.5, Y: 0.5, Z: 0})
	assert.Equal(t, v, m.ToVertex(hBack))
	assert.Equal(t, 5, m.NVertices())
	assert.Equal(t, 8, m.NEdges())
	assert.Equal(t, 4, m.NFaces())
	assert.True(t, m.IsTriangleMesh())
	assert.Equal(t, 4, m.VertexValence(v))
	checkInvariants(t, m)

	// merge the old far endpoint into the split vertex
	require.True(t, m.IsCollapseOk(hBack))
	m.Collapse(hBack)
	m.GarbageCollection()

	assert.Equal(t, 4, m.NVertices())
	assert.Equal(t, 5, m.NEdges())
	assert.Equal(t, 2, m.NFaces())
	checkInvariants(t, m)
}

func TestSplitEdge_Boundary(t *testing.T) {
	m, vs := singleTriangle(t)
	e := m.FindEdge(vs[0], vs[1])

	v, _ := m.SplitEdge(e, mesh.Vec3{X: 0.5, Y: 0, Z: 0})

	// one side is boundary, so only the triangle side is split
	assert.Equal(t, 4, m.NVertices())
	assert.Equal(t, 2, m.NFaces())
	assert.Equal(t, 5, m.NEdges())
	assert.True(t, m.IsBoundaryVertex(v))
	assert.True(t, m.IsTriangleMesh())
	checkInvariants(t, m)
}

// Face split: a quad fans into four triangles around the new vertex.
func TestSplitFace_Quad(t *testing.T) {
	m, f := unitQuad(t)

	v := m.SplitFace(f, mesh.Vec3{X: 0.5, Y: 0.5, Z: 0})

	assert.Equal(t, 4, m.NFaces())
	assert.True(t, m.IsTriangleMesh())
	assert.Equal(t, 4, m.VertexValence(v))
	assert.False(t, m.IsBoundaryVertex(v))
	checkInvariants(t, m)
}

func TestInsertVertex_LengthensBothCycles(t *testing.T) {
	m, f := unitQuad(t)
	h := m.HalfedgeOfFace(f)
	from := m.FromVertex(h)
	to := m.ToVertex(h)

	v := m.AddVertex(mesh.Vec3{X: 0.5, Y: 0, Z: 0})
	got := m.InsertVertex(h, v)

	assert.Equal(t, v, m.ToVertex(got))
	assert.Equal(t, to, m.FromVertex(got))
	assert.Equal(t, v, m.ToVertex(h))
	assert.Equal(t, from, m.FromVertex(h))
	assert.Equal(t, 5, m.FaceValence(f))
	assert.Equal(t, 1, m.NFaces())
	checkInvariants(t, m)
}

func TestInsertEdge_SplitsFace(t *testing.T) {
	m, f := unitQuad(t)
	h0 := m.HalfedgeOfFace(f)
	h1 := m.Next(m.Next(h0))

	hNew := m.InsertEdge(h0, h1)

	assert.Equal(t, 2, m.NFaces())
	assert.True(t, m.IsTriangleMesh())
	assert.Equal(t, m.ToVertex(h0), m.FromVertex(hNew))
	assert.Equal(t, m.ToVertex(h1), m.ToVertex(hNew))
	checkInvariants(t, m)
}

// Remove interior edge: two triangles merge into one quad.
func TestRemoveEdge_MergesFaces(t *testing.T) {
	m, vs := quadTriangulated(t)

	e := m.FindEdge(vs[0], vs[2])
	require.True(t, m.IsRemovalOk(e))

	m.RemoveEdge(e)
	m.GarbageCollection()

	assert.Equal(t, 1, m.NFaces())
	assert.True(t, m.IsQuadMesh())
	assert.Equal(t, 4, m.NEdges())
	checkInvariants(t, m)
}

func TestIsRemovalOk_Rejections(t *testing.T) {
	m, vs := quadTriangulated(t)

	// boundary edge: only one incident face
	assert.False(t, m.IsRemovalOk(m.FindEdge(vs[0], vs[1])))

	// faces already joined through a vertex beyond the candidate edge:
	// triangle with an interior vertex, one spoke already removed
	m2 := mesh.NewMesh()
	a := m2.AddVertex(mesh.Vec3{X: 0, Y: 0})
	b := m2.AddVertex(mesh.Vec3{X: 1, Y: 0})
	c := m2.AddVertex(mesh.Vec3{X: 0.5, Y: 1})
	d := m2.AddVertex(mesh.Vec3{X: 0.5, Y: 0.4})
	for _, tri := range [][3]mesh.Vertex{{a, b, d}, {b, c, d}, {c, a, d}} {
		_, err := m2.AddTriangle(tri[0], tri[1], tri[2])
		require.NoError(t, err)
	}

	spoke := m2.FindEdge(a, d)
	require.True(t, m2.IsRemovalOk(spoke))
	m2.RemoveEdge(spoke)
	checkInvariants(t, m2)

	// the quad and the remaining triangle now share both b-d and c-d;
	// removing either would leave a face touching itself
	assert.False(t, m2.IsRemovalOk(m2.FindEdge(b, d)))
	assert.False(t, m2.IsRemovalOk(m2.FindEdge(c, d)))
}

func TestDeleteFace_LeavesBoundaryClean(t *testing.T) {
	m, vs := quadTriangulated(t)

	f := m.FaceOf(m.FindHalfedge(vs[0], vs[1]))
	require.True(t, f.IsValid())

	m.DeleteFace(f)
	require.True(t, m.HasGarbage())
	m.GarbageCollection()

	// v1 lost both of its edges and was swept along with them
	assert.Equal(t, 1, m.NFaces())
	assert.Equal(t, 3, m.NVertices())
	assert.Equal(t, 3, m.NEdges())
	checkInvariants(t, m)
}

func TestDeleteEdge_DeletesBothFaces(t *testing.T) {
	m, vs := quadTriangulated(t)

	m.DeleteEdge(m.FindEdge(vs[0], vs[2]))
	m.GarbageCollection()

	assert.Equal(t, 0, m.NFaces())
	checkInvariants(t, m)
}

// Delete center vertex: the whole fan goes away, rim vertices included.
func TestDeleteVertex_Center(t *testing.T) {
	m := vertexOneRing(t)

	m.DeleteVertex(mesh.Vertex(3))
	m.GarbageCollection()

	assert.Equal(t, 0, m.NVertices())
	assert.Equal(t, 0, m.NEdges())
	assert.Equal(t, 0, m.NFaces())
}

func TestDeleteVertex_IsolatedRoundTrip(t *testing.T) {
	m, _ := singleTriangle(t)
	before := m.NVertices()

	v := m.AddVertex(mesh.Vec3{X: 9, Y: 9, Z: 9})
	m.DeleteVertex(v)
	m.GarbageCollection()

	assert.Equal(t, before, m.NVertices())
	checkInvariants(t, m)
}

func TestAddFaceDeleteFace_RoundTrip(t *testing.T) {
	m, vs := singleTriangle(t)
	nV, nE, nF := m.NVertices(), m.NEdges(), m.NFaces()

	v := m.AddVertex(mesh.Vec3{X: 1, Y: 1, Z: 0})
	f, err := m.AddTriangle(vs[1], v, vs[2])
	require.NoError(t, err)

	m.DeleteFace(f)
	m.DeleteVertex(v)
	m.GarbageCollection()

	assert.Equal(t, nV, m.NVertices())
	assert.Equal(t, nE, m.NEdges())
	assert.Equal(t, nF, m.NFaces())
	checkInvariants(t, m)
}
