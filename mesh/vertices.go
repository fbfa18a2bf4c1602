package mesh

import "github.com/katalvlaran/meshkit/property"

// AddVertex allocates a new isolated vertex at position p and returns its
// handle. The vertex has no outgoing halfedge until an incident edge or
// face is added.
func (m *Mesh) AddVertex(p Vec3) Vertex {
	idx := m.vprops.PushDefault()
	v := Vertex(idx)
	property.Set(m.vprops, m.vpoint, idx, p)
	return v
}

// AddVertexUnique returns the existing vertex at position p if one was
// already created through AddVertexUnique, or allocates a new one
// otherwise. Matching is bit-exact equality on Vec3, never epsilon-based
// (see DESIGN.md's Open Question decision) — callers wanting tolerance
// must quantize p themselves before calling this.
func (m *Mesh) AddVertexUnique(p Vec3) Vertex {
	if v, ok := m.uniqueVertices[p]; ok && !m.IsVertexDeleted(v) {
		return v
	}
	v := m.AddVertex(p)
	m.uniqueVertices[p] = v
	return v
}

// Position returns v's stored position.
func (m *Mesh) Position(v Vertex) Vec3 {
	return property.At(m.vprops, m.vpoint, int(v))
}

// SetPosition overwrites v's stored position.
func (m *Mesh) SetPosition(v Vertex, p Vec3) {
	property.Set(m.vprops, m.vpoint, int(v), p)
}

// IsVertexDeleted reports whether v has been marked deleted but not yet
// swept by GarbageCollection.
func (m *Mesh) IsVertexDeleted(v Vertex) bool {
	return property.At(m.vprops, m.vdeleted, int(v))
}

func (m *Mesh) setVertexDeleted(v Vertex, deleted bool) {
	property.Set(m.vprops, m.vdeleted, int(v), deleted)
}

// IsIsolatedVertex reports whether v has no incident halfedge.
func (m *Mesh) IsIsolatedVertex(v Vertex) bool {
	return !m.HalfedgeOfVertex(v).IsValid()
}

// IsBoundaryVertex reports whether v has a boundary halfedge among its
// outgoing halfedges — equivalently, whether its stored outgoing halfedge
// (kept as a boundary halfedge by adjustOutgoingHalfedge) is a boundary
// halfedge.
func (m *Mesh) IsBoundaryVertex(v Vertex) bool {
	h := m.HalfedgeOfVertex(v)
	return h.IsValid() && !m.FaceOf(h).IsValid()
}

// VertexValence returns the number of edges incident to v, counted by
// circulating its one-ring.
func (m *Mesh) VertexValence(v Vertex) int {
	n := 0
	it := m.VertexAroundVertexBegin(v)
	for it.HasNext() {
		it.Next()
		n++
	}
	return n
}

// IsManifoldVertex reports whether v has at most one boundary loop in its
// star, i.e. it is not a "complex" (bowtie) vertex. An isolated vertex is
// trivially manifold.
func (m *Mesh) IsManifoldVertex(v Vertex) bool {
	h0 := m.HalfedgeOfVertex(v)
	if !h0.IsValid() {
		return true
	}
	boundaryCount := 0
	h := h0
	for {
		if !m.FaceOf(h).IsValid() {
			boundaryCount++
			if boundaryCount > 1 {
				return false
			}
		}
		h = m.CwRotated(h)
		if h == h0 {
			break
		}
	}
	return true
}

// DeleteVertex marks v and every face incident to it deleted. It does not
// physically remove anything; call GarbageCollection to compact.
func (m *Mesh) DeleteVertex(v Vertex) {
	if m.IsVertexDeleted(v) {
		return
	}

	var incidentFaces []Face
	for it := m.FaceAroundVertexBegin(v); it.HasNext(); {
		incidentFaces = append(incidentFaces, it.Next())
	}

	for _, f := range incidentFaces {
		m.DeleteFace(f)
	}

	// DeleteFace may already have marked v when its last edge went away
	if !m.IsVertexDeleted(v) {
		m.setVertexDeleted(v, true)
		m.deletedVertices++
		m.hasGarbage = true
	}
}

// vertexIterator is the finite lazy sequence Vertices() hands out: it
// skips deleted slots and stops at VerticesSize.
type vertexIterator struct {
	m    *Mesh
	cur  int
	size int
}

// Vertices returns an iterator over every live vertex in slot order.
func (m *Mesh) Vertices() *vertexIterator {
	it := &vertexIterator{m: m, cur: -1, size: m.VerticesSize()}
	return it
}

// HasNext reports whether a further call to Next will yield a vertex.
func (it *vertexIterator) HasNext() bool {
	i := it.cur + 1
	for i < it.size && it.m.IsVertexDeleted(Vertex(i)) {
		i++
	}
	return i < it.size
}

// Next advances and returns the next live vertex.
func (it *vertexIterator) Next() Vertex {
	it.cur++
	for it.cur < it.size && it.m.IsVertexDeleted(Vertex(it.cur)) {
		it.cur++
	}
	return Vertex(it.cur)
}
