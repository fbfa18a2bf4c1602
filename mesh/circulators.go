package mesh

// Circulators are finite lazy sequences over one element's neighborhood:
// each walks exactly once around a one-ring or a face cycle and then
// reports HasNext() == false. A circulator stops only when its chain
// returns to the starting halfedge; on a malformed mesh whose
// next/opposite chain never does, it does not terminate.

// vertexAroundVertexIter circulates the vertices adjacent to a vertex via
// CwRotated, in clockwise order starting from the vertex's stored
// outgoing halfedge.
type vertexAroundVertexIter struct {
	m       *Mesh
	h0, cur Halfedge
	done    bool
}

// VertexAroundVertexBegin starts a circulator over v's neighboring
// vertices. An isolated vertex yields an immediately-exhausted iterator.
func (m *Mesh) VertexAroundVertexBegin(v Vertex) *vertexAroundVertexIter {
	h0 := m.HalfedgeOfVertex(v)
	return &vertexAroundVertexIter{m: m, h0: h0, cur: h0, done: !h0.IsValid()}
}

func (it *vertexAroundVertexIter) HasNext() bool { return !it.done }

func (it *vertexAroundVertexIter) Next() Vertex {
	v := it.m.ToVertex(it.cur)
	it.cur = it.m.CwRotated(it.cur)
	if it.cur == it.h0 {
		it.done = true
	}
	return v
}

// halfedgeAroundVertexIter circulates the outgoing halfedges of a vertex.
type halfedgeAroundVertexIter struct {
	m       *Mesh
	h0, cur Halfedge
	done    bool
}

// HalfedgeAroundVertexBegin starts a circulator over v's outgoing
// halfedges.
func (m *Mesh) HalfedgeAroundVertexBegin(v Vertex) *halfedgeAroundVertexIter {
	h0 := m.HalfedgeOfVertex(v)
	return &halfedgeAroundVertexIter{m: m, h0: h0, cur: h0, done: !h0.IsValid()}
}

func (it *halfedgeAroundVertexIter) HasNext() bool { return !it.done }

func (it *halfedgeAroundVertexIter) Next() Halfedge {
	h := it.cur
	it.cur = it.m.CwRotated(it.cur)
	if it.cur == it.h0 {
		it.done = true
	}
	return h
}

// edgeAroundVertexIter circulates the edges incident to a vertex.
type edgeAroundVertexIter struct {
	inner *halfedgeAroundVertexIter
}

// EdgeAroundVertexBegin starts a circulator over v's incident edges.
func (m *Mesh) EdgeAroundVertexBegin(v Vertex) *edgeAroundVertexIter {
	return &edgeAroundVertexIter{inner: m.HalfedgeAroundVertexBegin(v)}
}

func (it *edgeAroundVertexIter) HasNext() bool { return it.inner.HasNext() }

func (it *edgeAroundVertexIter) Next() Edge { return EdgeOf(it.inner.Next()) }

// faceAroundVertexIter circulates the distinct faces incident to a
// vertex, skipping the (at most one) boundary gap in its one-ring.
type faceAroundVertexIter struct {
	inner *halfedgeAroundVertexIter
	next  Face
	has   bool
}

// FaceAroundVertexBegin starts a circulator over v's incident faces.
func (m *Mesh) FaceAroundVertexBegin(v Vertex) *faceAroundVertexIter {
	it := &faceAroundVertexIter{inner: m.HalfedgeAroundVertexBegin(v)}
	it.advance()
	return it
}

func (it *faceAroundVertexIter) advance() {
	for it.inner.HasNext() {
		h := it.inner.Next()
		if f := it.inner.m.FaceOf(h); f.IsValid() {
			it.next = f
			it.has = true
			return
		}
	}
	it.has = false
}

func (it *faceAroundVertexIter) HasNext() bool { return it.has }

func (it *faceAroundVertexIter) Next() Face {
	f := it.next
	it.advance()
	return f
}

// halfedgeAroundFaceIter circulates the halfedges bounding a face.
type halfedgeAroundFaceIter struct {
	m       *Mesh
	h0, cur Halfedge
	done    bool
}

// HalfedgeAroundFaceBegin starts a circulator over f's boundary
// halfedges.
func (m *Mesh) HalfedgeAroundFaceBegin(f Face) *halfedgeAroundFaceIter {
	h0 := m.HalfedgeOfFace(f)
	return &halfedgeAroundFaceIter{m: m, h0: h0, cur: h0, done: !h0.IsValid()}
}

func (it *halfedgeAroundFaceIter) HasNext() bool { return !it.done }

func (it *halfedgeAroundFaceIter) Next() Halfedge {
	h := it.cur
	it.cur = it.m.Next(it.cur)
	if it.cur == it.h0 {
		it.done = true
	}
	return h
}

// vertexAroundFaceIter circulates the vertices bounding a face.
type vertexAroundFaceIter struct {
	inner *halfedgeAroundFaceIter
}

// VertexAroundFaceBegin starts a circulator over f's boundary vertices.
func (m *Mesh) VertexAroundFaceBegin(f Face) *vertexAroundFaceIter {
	return &vertexAroundFaceIter{inner: m.HalfedgeAroundFaceBegin(f)}
}

func (it *vertexAroundFaceIter) HasNext() bool { return it.inner.HasNext() }

func (it *vertexAroundFaceIter) Next() Vertex { return it.inner.m.ToVertex(it.inner.Next()) }
