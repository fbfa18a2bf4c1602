package mesh

import (
	"github.com/katalvlaran/meshkit/property"
)

// IsEdgeDeleted reports whether e has been marked deleted but not yet
// swept by GarbageCollection.
func (m *Mesh) IsEdgeDeleted(e Edge) bool {
	return property.At(m.eprops, m.edeleted, int(e))
}

func (m *Mesh) setEdgeDeleted(e Edge, deleted bool) {
	property.Set(m.eprops, m.edeleted, int(e), deleted)
}

// IsBoundaryEdge reports whether either of e's two halfedges is a
// boundary halfedge.
func (m *Mesh) IsBoundaryEdge(e Edge) bool {
	return m.IsBoundaryHalfedge(HalfedgeOfEdge(e, 0)) || m.IsBoundaryHalfedge(HalfedgeOfEdge(e, 1))
}

// edgeIterator is the finite lazy sequence Edges() hands out.
type edgeIterator struct {
	m    *Mesh
	cur  int
	size int
}

// Edges returns an iterator over every live edge in slot order.
func (m *Mesh) Edges() *edgeIterator {
	return &edgeIterator{m: m, cur: -1, size: m.EdgesSize()}
}

// HasNext reports whether a further call to Next will yield an edge.
func (it *edgeIterator) HasNext() bool {
	i := it.cur + 1
	for i < it.size && it.m.IsEdgeDeleted(Edge(i)) {
		i++
	}
	return i < it.size
}

// Next advances and returns the next live edge.
func (it *edgeIterator) Next() Edge {
	it.cur++
	for it.cur < it.size && it.m.IsEdgeDeleted(Edge(it.cur)) {
		it.cur++
	}
	return Edge(it.cur)
}

// IsHalfedgeDeleted reports whether h's edge has been marked deleted but
// not yet swept; halfedges have no deleted flag of their own, they share
// their edge's fate.
func (m *Mesh) IsHalfedgeDeleted(h Halfedge) bool {
	return m.IsEdgeDeleted(EdgeOf(h))
}

// halfedgeIterator is the finite lazy sequence Halfedges() hands out.
type halfedgeIterator struct {
	m    *Mesh
	cur  int
	size int
}

// Halfedges returns an iterator over every live halfedge in slot order.
func (m *Mesh) Halfedges() *halfedgeIterator {
	return &halfedgeIterator{m: m, cur: -1, size: m.HalfedgesSize()}
}

// HasNext reports whether a further call to Next will yield a halfedge.
func (it *halfedgeIterator) HasNext() bool {
	i := it.cur + 1
	for i < it.size && it.m.IsHalfedgeDeleted(Halfedge(i)) {
		i++
	}
	return i < it.size
}

// Next advances and returns the next live halfedge.
func (it *halfedgeIterator) Next() Halfedge {
	it.cur++
	for it.cur < it.size && it.m.IsHalfedgeDeleted(Halfedge(it.cur)) {
		it.cur++
	}
	return Halfedge(it.cur)
}

// IsFlipOk reports whether Flip(e) is legal: e must be an interior edge
// (both sides have a face), the two faces must both be triangles (so the
// wing vertices exist), and the flipped diagonal must not already be
// present as an edge.
func (m *Mesh) IsFlipOk(e Edge) bool {
	if m.IsBoundaryEdge(e) {
		return false
	}

	h0 := HalfedgeOfEdge(e, 0)
	h1 := HalfedgeOfEdge(e, 1)

	if m.Next(m.Next(m.Next(h0))) != h0 || m.Next(m.Next(m.Next(h1))) != h1 {
		return false
	}

	v0 := m.ToVertex(m.Next(h0))
	v1 := m.ToVertex(m.Next(h1))
	if v0 == v1 {
		return false
	}

	return !m.FindHalfedge(v0, v1).IsValid()
}

// Flip replaces e's two incident triangles' shared edge with the diagonal
// connecting their two opposite ("wing") vertices. Both incident faces
// must be triangles; call IsFlipOk first.
func (m *Mesh) Flip(e Edge) {
	a0 := HalfedgeOfEdge(e, 0)
	b0 := HalfedgeOfEdge(e, 1)

	a1 := m.Next(a0)
	a2 := m.Next(a1)

	b1 := m.Next(b0)
	b2 := m.Next(b1)

	va1 := m.ToVertex(a1)
	vb1 := m.ToVertex(b1)

	va0 := m.ToVertex(a0)
	vb0 := m.ToVertex(b0)

	fa := m.FaceOf(a0)
	fb := m.FaceOf(b0)

	m.setToVertex(a0, va1)
	m.setToVertex(b0, vb1)

	m.setNextLink(a0, a2)
	m.setNextLink(a2, b1)
	m.setNextLink(b1, a0)

	m.setNextLink(b0, b2)
	m.setNextLink(b2, a1)
	m.setNextLink(a1, b0)

	m.setFace(a1, fb)
	m.setFace(b1, fa)

	m.setHalfedgeOfFace(fa, a0)
	m.setHalfedgeOfFace(fb, b0)

	if m.HalfedgeOfVertex(va0) == b0 {
		m.setHalfedgeOfVertex(va0, a1)
	}
	if m.HalfedgeOfVertex(vb0) == a0 {
		m.setHalfedgeOfVertex(vb0, b1)
	}
}

// IsCollapseOk reports whether Collapse(h) is legal. h's from_vertex is
// the one that would be merged into its to_vertex; the check applies the
// standard link condition (the one-ring neighborhoods of the two endpoints
// may intersect only in the edge's wing vertices), rejects collapsing
// between two boundary vertices across an interior edge (which would pull
// the boundary through the interior), and rejects the tetrahedron-like
// degenerate case where both wings coincide.
func (m *Mesh) IsCollapseOk(h Halfedge) bool {
	v0v1 := h
	v1v0 := Opposite(h)
	v0 := m.ToVertex(v1v0)
	v1 := m.ToVertex(v0v1)

	var vl, vr Vertex = InvalidVertex, InvalidVertex

	// the edges v1-vl and vl-v0 must not both be boundary edges
	if !m.IsBoundaryHalfedge(v0v1) {
		h1 := m.Next(v0v1)
		h2 := m.Next(h1)
		vl = m.ToVertex(h1)
		if m.IsBoundaryHalfedge(Opposite(h1)) && m.IsBoundaryHalfedge(Opposite(h2)) {
			return false
		}
	}

	// the edges v0-vr and vr-v1 must not both be boundary edges
	if !m.IsBoundaryHalfedge(v1v0) {
		h1 := m.Next(v1v0)
		h2 := m.Next(h1)
		vr = m.ToVertex(h1)
		if m.IsBoundaryHalfedge(Opposite(h1)) && m.IsBoundaryHalfedge(Opposite(h2)) {
			return false
		}
	}

	// equal wings (tetrahedron) or both invalid (isolated edge)
	if vl == vr {
		return false
	}

	// an edge between two boundary vertices must itself be boundary
	if m.IsBoundaryVertex(v0) && m.IsBoundaryVertex(v1) &&
		!m.IsBoundaryHalfedge(v0v1) && !m.IsBoundaryHalfedge(v1v0) {
		return false
	}

	// an interior vertex may not be collapsed onto the boundary: the
	// boundary loop would be re-routed through what used to be interior
	if !m.IsBoundaryVertex(v0) && m.IsBoundaryVertex(v1) {
		return false
	}

	// link condition: no common neighbor of v0 and v1 besides the wings
	for it := m.VertexAroundVertexBegin(v0); it.HasNext(); {
		vv := it.Next()
		if vv != v1 && vv != vl && vv != vr {
			if m.FindHalfedge(vv, v1).IsValid() {
				return false
			}
		}
	}

	return true
}

// Collapse merges h's from_vertex into its to_vertex, removing h's edge
// and, for each of the (up to two) triangles that bordered it, removing
// the resulting degenerate 2-gon loop if the triangle collapses to one.
// Call IsCollapseOk(h) first.
func (m *Mesh) Collapse(h Halfedge) {
	h0 := h
	h1 := m.Prev(h0)
	o0 := Opposite(h0)
	o1 := m.Next(o0)

	m.removeEdgeHelper(h0)

	if m.Next(m.Next(h1)) == h1 {
		m.removeLoopHelper(h1)
	}
	if m.Next(m.Next(o1)) == o1 {
		m.removeLoopHelper(o1)
	}
}

// removeEdgeHelper detaches h's edge: every halfedge that pointed at
// from_vertex(h) is redirected to to_vertex(h), the two face cycles on
// either side of h are spliced shut around it, and from_vertex(h) is
// marked deleted along with h's edge.
func (m *Mesh) removeEdgeHelper(h Halfedge) {
	hn := m.Next(h)
	hp := m.Prev(h)

	oh := Opposite(h)
	on := m.Next(oh)
	op := m.Prev(oh)

	fh := m.FaceOf(h)
	fo := m.FaceOf(oh)

	vh := m.ToVertex(h)
	vo := m.ToVertex(oh)

	h0 := m.HalfedgeOfVertex(vo)
	if h0.IsValid() {
		hc := h0
		for {
			m.setToVertex(Opposite(hc), vh)
			hc = m.CwRotated(hc)
			if hc == h0 {
				break
			}
		}
	}

	m.setNextLink(hp, hn)
	m.setNextLink(op, on)

	if fh.IsValid() {
		m.setHalfedgeOfFace(fh, hn)
	}
	if fo.IsValid() {
		m.setHalfedgeOfFace(fo, on)
	}

	if m.HalfedgeOfVertex(vh) == oh {
		m.setHalfedgeOfVertex(vh, hn)
	}
	m.adjustOutgoingHalfedge(vh)
	m.setHalfedgeOfVertex(vo, InvalidHalfedge)

	m.setVertexDeleted(vo, true)
	m.deletedVertices++
	m.setEdgeDeleted(EdgeOf(h), true)
	m.deletedEdges++
	m.hasGarbage = true
}

// removeLoopHelper removes the degenerate 2-gon left behind when
// collapsing an edge reduces one of its incident triangles to a loop:
// h0's successor h1 is the loop's other side, and this splices h1 directly
// into the face beyond h0's opposite, deleting h0's edge (and its face,
// if it had one).
func (m *Mesh) removeLoopHelper(h0 Halfedge) {
	h1 := m.Next(h0)
	o1 := Opposite(h1)

	v1 := m.ToVertex(h1)

	fh := m.FaceOf(h0)
	o0 := Opposite(h0)
	fo := m.FaceOf(o0)

	m.setNextLink(h1, m.Next(o0))
	m.setNextLink(m.Prev(o0), h1)

	m.setFace(h1, fo)

	m.setHalfedgeOfVertex(m.ToVertex(h0), h1)
	m.adjustOutgoingHalfedge(m.ToVertex(h0))
	m.setHalfedgeOfVertex(v1, o1)
	m.adjustOutgoingHalfedge(v1)

	if fo.IsValid() && m.HalfedgeOfFace(fo) == o0 {
		m.setHalfedgeOfFace(fo, h1)
	}

	if fh.IsValid() {
		m.setFaceDeleted(fh, true)
		m.deletedFaces++
	}
	m.setEdgeDeleted(EdgeOf(h0), true)
	m.deletedEdges++
	m.hasGarbage = true
}

// IsRemovalOk reports whether RemoveEdge(e) is legal: e must be interior
// with two distinct incident faces (removing a boundary edge or the shared
// edge of a bigon is not a valid Euler operator), and those faces must not
// already touch through any vertex other than e's endpoints — merging them
// then would pinch the result at that vertex.
func (m *Mesh) IsRemovalOk(e Edge) bool {
	h0 := HalfedgeOfEdge(e, 0)
	h1 := HalfedgeOfEdge(e, 1)

	v0 := m.ToVertex(h0)
	v1 := m.ToVertex(h1)

	f0 := m.FaceOf(h0)
	f1 := m.FaceOf(h1)

	if !f0.IsValid() || !f1.IsValid() || f0 == f1 {
		return false
	}

	for it := m.VertexAroundFaceBegin(f0); it.HasNext(); {
		v := it.Next()
		if v == v0 || v == v1 {
			continue
		}
		for fit := m.FaceAroundVertexBegin(v); fit.HasNext(); {
			if fit.Next() == f1 {
				return false
			}
		}
	}

	return true
}

// RemoveEdge merges the two faces bordering e into one (keeping the face
// on e's second halfedge's side) and deletes e. Call IsRemovalOk first.
func (m *Mesh) RemoveEdge(e Edge) {
	h0 := HalfedgeOfEdge(e, 0)
	h1 := HalfedgeOfEdge(e, 1)

	v0 := m.ToVertex(h0)
	v1 := m.ToVertex(h1)

	f0 := m.FaceOf(h0)
	f1 := m.FaceOf(h1)

	h0p := m.Prev(h0)
	h0n := m.Next(h0)
	h1p := m.Prev(h1)
	h1n := m.Next(h1)

	var f0Halfedges []Halfedge
	for hh := h0n; hh != h0; hh = m.Next(hh) {
		f0Halfedges = append(f0Halfedges, hh)
	}

	m.setNextLink(h0p, h1n)
	m.setNextLink(h1p, h0n)

	for _, hh := range f0Halfedges {
		m.setFace(hh, f1)
	}

	m.setHalfedgeOfFace(f1, h1n)
	if m.HalfedgeOfVertex(v0) == h1 {
		m.setHalfedgeOfVertex(v0, h0n)
	}
	if m.HalfedgeOfVertex(v1) == h0 {
		m.setHalfedgeOfVertex(v1, h1n)
	}

	m.setFaceDeleted(f0, true)
	m.deletedFaces++
	m.setEdgeDeleted(e, true)
	m.deletedEdges++
	m.hasGarbage = true
}

// DeleteEdge deletes e's (up to two) incident faces; DeleteFace marks e
// itself deleted once it loses its last face. A floating edge with no face
// on either side is spliced out of its boundary loop directly.
func (m *Mesh) DeleteEdge(e Edge) {
	if m.IsEdgeDeleted(e) {
		return
	}

	h0 := HalfedgeOfEdge(e, 0)
	h1 := HalfedgeOfEdge(e, 1)

	f0 := m.FaceOf(h0)
	f1 := m.FaceOf(h1)

	if f0.IsValid() {
		m.DeleteFace(f0)
	}
	if f1.IsValid() {
		m.DeleteFace(f1)
	}

	if !f0.IsValid() && !f1.IsValid() {
		v0 := m.ToVertex(h0)
		next0 := m.Next(h0)
		prev0 := m.Prev(h0)
		v1 := m.ToVertex(h1)
		next1 := m.Next(h1)
		prev1 := m.Prev(h1)

		m.setNextLink(prev0, next1)
		m.setNextLink(prev1, next0)

		if m.HalfedgeOfVertex(v0) == h1 {
			if next0 == h1 {
				m.setHalfedgeOfVertex(v0, InvalidHalfedge)
			} else {
				m.setHalfedgeOfVertex(v0, next0)
			}
		}
		if m.HalfedgeOfVertex(v1) == h0 {
			if next1 == h0 {
				m.setHalfedgeOfVertex(v1, InvalidHalfedge)
			} else {
				m.setHalfedgeOfVertex(v1, next1)
			}
		}

		m.setEdgeDeleted(e, true)
		m.deletedEdges++
		m.hasGarbage = true
	}
}

// InsertVertex splits h0 (and its opposite) in two by inserting v between
// them, lengthening both incident face cycles by one corner without
// triangulating anything. h0 keeps its from_vertex and now targets v; the
// returned halfedge runs from h0's old target back to v.
func (m *Mesh) InsertVertex(h0 Halfedge, v Vertex) Halfedge {
	h2 := m.Next(h0)
	o0 := Opposite(h0)
	o2 := m.Prev(o0)
	v2 := m.ToVertex(h0)
	fh := m.FaceOf(h0)
	fo := m.FaceOf(o0)

	h1 := m.newEdge(v, v2)
	o1 := Opposite(h1)

	// halfedge connectivity
	m.setNextLink(h1, h2)
	m.setNextLink(h0, h1)
	m.setToVertex(h0, v)
	m.setFace(h1, fh)

	m.setNextLink(o1, o0)
	m.setNextLink(o2, o1)
	m.setToVertex(o1, v)
	m.setFace(o1, fo)

	// vertex connectivity
	m.setHalfedgeOfVertex(v2, o1)
	m.adjustOutgoingHalfedge(v2)
	m.setHalfedgeOfVertex(v, h1)
	m.adjustOutgoingHalfedge(v)

	// face connectivity
	if fh.IsValid() {
		m.setHalfedgeOfFace(fh, h0)
	}
	if fo.IsValid() {
		m.setHalfedgeOfFace(fo, o1)
	}

	return o1
}

// InsertEdge adds a new edge between to_vertex(h0) and to_vertex(h1),
// where h0 and h1 lie on the same face cycle, splitting that face into
// two: h0's face keeps h0 and the arc from h1's old successor back round
// to h0, and a new face gets h1 and the arc from h0's old successor up to
// h1.
func (m *Mesh) InsertEdge(h0, h1 Halfedge) Halfedge {
	f0 := m.FaceOf(h0)

	h2 := m.Next(h0)
	h3 := m.Next(h1)

	v0 := m.ToVertex(h0)
	v1 := m.ToVertex(h1)

	hNew := m.newEdge(v0, v1)
	hNewOpp := Opposite(hNew)

	f1 := m.newFace()

	m.setNextLink(h0, hNew)
	m.setNextLink(hNew, h3)
	m.setHalfedgeOfFace(f0, h0)
	m.setFace(hNew, f0)
	for hh := h3; hh != h0; hh = m.Next(hh) {
		m.setFace(hh, f0)
	}

	m.setFace(h1, f1)
	m.setNextLink(h1, hNewOpp)
	m.setNextLink(hNewOpp, h2)
	m.setHalfedgeOfFace(f1, h1)
	m.setFace(hNewOpp, f1)
	for hh := h2; hh != h1; hh = m.Next(hh) {
		m.setFace(hh, f1)
	}

	return hNew
}

// SplitEdge inserts a new vertex at p into e. Each side of e that carries
// a triangle is split into two triangles by connecting the new vertex to
// that triangle's apex, so triangle meshes stay triangle meshes; a
// boundary side just gets the extra vertex in its loop. It returns the
// new vertex and the halfedge running from e's old far endpoint back to
// the new vertex.
func (m *Mesh) SplitEdge(e Edge, p Vec3) (Vertex, Halfedge) {
	v := m.AddVertex(p)
	return v, m.splitEdgeAtVertex(e, v)
}

func (m *Mesh) splitEdgeAtVertex(e Edge, v Vertex) Halfedge {
	h0 := HalfedgeOfEdge(e, 0)
	o0 := HalfedgeOfEdge(e, 1)

	v2 := m.ToVertex(o0)

	e1 := m.newEdge(v, v2)
	t1 := Opposite(e1)

	f0 := m.FaceOf(h0)
	f3 := m.FaceOf(o0)

	m.setHalfedgeOfVertex(v, h0)
	m.setToVertex(o0, v)

	if !m.IsBoundaryHalfedge(h0) {
		h1 := m.Next(h0)
		h2 := m.Next(h1)

		v1 := m.ToVertex(h1)

		e0 := m.newEdge(v, v1)
		t0 := Opposite(e0)

		f1 := m.newFace()
		m.setHalfedgeOfFace(f0, h0)
		m.setHalfedgeOfFace(f1, h2)

		m.setFace(h1, f0)
		m.setFace(t0, f0)
		m.setFace(h0, f0)

		m.setFace(h2, f1)
		m.setFace(t1, f1)
		m.setFace(e0, f1)

		m.setNextLink(h0, h1)
		m.setNextLink(h1, t0)
		m.setNextLink(t0, h0)

		m.setNextLink(e0, h2)
		m.setNextLink(h2, t1)
		m.setNextLink(t1, e0)
	} else {
		m.setNextLink(m.Prev(h0), t1)
		m.setNextLink(t1, h0)
		// v's outgoing halfedge already is h0
	}

	if !m.IsBoundaryHalfedge(o0) {
		o1 := m.Next(o0)
		o2 := m.Next(o1)

		v3 := m.ToVertex(o1)

		e2 := m.newEdge(v, v3)
		t2 := Opposite(e2)

		f2 := m.newFace()
		m.setHalfedgeOfFace(f2, o1)
		m.setHalfedgeOfFace(f3, o0)

		m.setFace(o1, f2)
		m.setFace(t2, f2)
		m.setFace(e1, f2)

		m.setFace(o2, f3)
		m.setFace(o0, f3)
		m.setFace(e2, f3)

		m.setNextLink(e1, o1)
		m.setNextLink(o1, t2)
		m.setNextLink(t2, e1)

		m.setNextLink(o0, e2)
		m.setNextLink(e2, o2)
		m.setNextLink(o2, o0)
	} else {
		m.setNextLink(e1, m.Next(o0))
		m.setNextLink(o0, e1)
		m.setHalfedgeOfVertex(v, e1)
	}

	if m.HalfedgeOfVertex(v2) == h0 {
		m.setHalfedgeOfVertex(v2, t1)
	}

	return t1
}
