package mesh

import (
	"fmt"

	"github.com/katalvlaran/meshkit/property"
)

// newEdge allocates one new edge and its two halfedges, wiring only their
// target vertices. Callers (AddFace, SplitFace, InsertEdge, ...) are
// responsible for linking next/face afterward. Mirrors new_edge.
func (m *Mesh) newEdge(start, end Vertex) Halfedge {
	m.eprops.PushDefault()
	h0 := Halfedge(m.hprops.PushDefault())
	h1 := Halfedge(m.hprops.PushDefault())
	m.setToVertex(h0, end)
	m.setToVertex(h1, start)
	return h0
}

func (m *Mesh) newFace() Face {
	return Face(m.fprops.PushDefault())
}

// hasCapacityFor reports whether allocating the given number of extra
// edges and faces keeps every index strictly below the invalid sentinel.
// The edge space is half the halfedge space, since edge e owns halfedges
// 2e and 2e+1.
func (m *Mesh) hasCapacityFor(newEdges, newFaces int) bool {
	if uint64(m.EdgesSize())+uint64(newEdges) > uint64(invalidIndex)/2 {
		return false
	}
	if uint64(m.FacesSize())+uint64(newFaces) > uint64(invalidIndex) {
		return false
	}
	return true
}

// IsBoundaryHalfedge reports whether h has no incident face.
func (m *Mesh) IsBoundaryHalfedge(h Halfedge) bool {
	return !m.FaceOf(h).IsValid()
}

// AddTriangle is sugar for AddFace(a, b, c).
func (m *Mesh) AddTriangle(a, b, c Vertex) (Face, error) {
	return m.AddFace([]Vertex{a, b, c})
}

// AddQuad is sugar for AddFace(a, b, c, d).
func (m *Mesh) AddQuad(a, b, c, d Vertex) (Face, error) {
	return m.AddFace([]Vertex{a, b, c, d})
}

// AddFace closes a cycle of n >= 3 vertices into a new face, reusing any
// existing boundary edges between consecutive vertices and allocating the
// rest. This is the hardest Euler operator in the package: when two
// existing halfedges meet at a shared vertex without already being
// next-linked, it must relocate ("re-link") a whole patch of the
// boundary loop to make room.
//
// It validates every precondition before mutating anything and returns
// ErrTopology, leaving the mesh untouched, if any fails: fewer than three
// vertices (no cycle to close), a vertex in the cycle that is not a
// boundary vertex (a "complex vertex"), an edge between consecutive
// vertices that already has two incident faces (a "complex edge"), or a
// patch re-link for which no free boundary gap exists. Exhausting the
// element index space fails with ErrAllocation instead.
func (m *Mesh) AddFace(vertices []Vertex) (Face, error) {
	n := len(vertices)
	if n < 3 {
		return InvalidFace, fmt.Errorf("mesh: add face needs at least 3 vertices, got %d: %w", n, ErrTopology)
	}

	halfedges := m.addFaceHalfedges[:0]
	isNew := m.addFaceIsNew[:0]
	needsAdjust := m.addFaceNeedsAdjust[:0]
	nextCache := m.addFaceNextCache[:0]
	for i := 0; i < n; i++ {
		halfedges = append(halfedges, InvalidHalfedge)
		isNew = append(isNew, false)
		needsAdjust = append(needsAdjust, false)
	}

	// Step 1: locate existing halfedges, reject complex vertices/edges.
	// An isolated vertex is fine; a vertex already fully surrounded by
	// faces is not, since there is no boundary gap to attach to.
	newEdges := 0
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		if !m.IsIsolatedVertex(vertices[i]) && !m.IsBoundaryVertex(vertices[i]) {
			return InvalidFace, fmt.Errorf("mesh: add face: vertex %d is not a boundary vertex: %w", vertices[i], ErrTopology)
		}
		halfedges[i] = m.FindHalfedge(vertices[i], vertices[ii])
		isNew[i] = !halfedges[i].IsValid()
		if isNew[i] {
			newEdges++
		}
		if !isNew[i] && !m.IsBoundaryHalfedge(halfedges[i]) {
			return InvalidFace, fmt.Errorf("mesh: add face: edge (%d,%d) already has two faces: %w", vertices[i], vertices[ii], ErrTopology)
		}
	}

	// refuse to exhaust the index space, before anything is scheduled
	if !m.hasCapacityFor(newEdges, 1) {
		return InvalidFace, fmt.Errorf("mesh: add face: %w", ErrAllocation)
	}

	// Step 2: re-link patches where two existing halfedges meet at a
	// shared vertex but are not already consecutive in the boundary loop.
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		if isNew[i] || isNew[ii] {
			continue
		}

		innerPrev := halfedges[i]
		innerNext := halfedges[ii]
		if m.Next(innerPrev) == innerNext {
			continue
		}

		outerPrev := Opposite(innerNext)

		boundaryPrev := outerPrev
		for {
			boundaryPrev = Opposite(m.Next(boundaryPrev))
			if m.IsBoundaryHalfedge(boundaryPrev) && boundaryPrev != innerPrev {
				break
			}
		}
		boundaryNext := m.Next(boundaryPrev)
		if boundaryNext == innerNext {
			return InvalidFace, fmt.Errorf("mesh: add face: patch re-linking failed at vertex %d: %w", vertices[ii], ErrTopology)
		}

		patchStart := m.Next(innerPrev)
		patchEnd := m.Prev(innerNext)

		nextCache = append(nextCache,
			nextRewrite{boundaryPrev, patchStart},
			nextRewrite{patchEnd, boundaryNext},
			nextRewrite{innerPrev, innerNext},
		)
	}

	// Step 3: allocate edges that don't exist yet.
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		if isNew[i] {
			halfedges[i] = m.newEdge(vertices[i], vertices[ii])
		}
	}

	// Step 4: allocate the face.
	f := m.newFace()
	m.setHalfedgeOfFace(f, halfedges[n-1])

	// Step 5: classify each corner and schedule outer-boundary rewrites.
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		v := vertices[ii]
		innerPrev := halfedges[i]
		innerNext := halfedges[ii]

		id := 0
		if isNew[i] {
			id |= 1
		}
		if isNew[ii] {
			id |= 2
		}

		if id != 0 {
			outerPrev := Opposite(innerNext)
			outerNext := Opposite(innerPrev)

			switch id {
			case 1: // prev is new, next is old
				boundaryPrev := m.Prev(innerNext)
				nextCache = append(nextCache, nextRewrite{boundaryPrev, outerNext})
				m.setHalfedgeOfVertex(v, outerNext)

			case 2: // next is new, prev is old
				boundaryNext := m.Next(innerPrev)
				nextCache = append(nextCache, nextRewrite{outerPrev, boundaryNext})
				m.setHalfedgeOfVertex(v, boundaryNext)

			case 3: // both new
				if !m.HalfedgeOfVertex(v).IsValid() {
					m.setHalfedgeOfVertex(v, outerNext)
					nextCache = append(nextCache, nextRewrite{outerPrev, outerNext})
				} else {
					boundaryNext := m.HalfedgeOfVertex(v)
					boundaryPrev := m.Prev(boundaryNext)
					nextCache = append(nextCache,
						nextRewrite{boundaryPrev, outerNext},
						nextRewrite{outerPrev, boundaryNext},
					)
				}
			}

			nextCache = append(nextCache, nextRewrite{innerPrev, innerNext})
		} else {
			needsAdjust[ii] = m.HalfedgeOfVertex(v) == innerNext
		}

		m.setFace(halfedges[i], f)
	}

	// Step 6: apply every scheduled rewrite in one batch so no
	// intermediate, inconsistent state is ever observable mid-operator.
	for _, rw := range nextCache {
		m.setNextLink(rw.from, rw.to)
	}

	// Step 7: fix up vertices whose outgoing choice became invalid.
	for i := 0; i < n; i++ {
		if needsAdjust[i] {
			m.adjustOutgoingHalfedge(vertices[i])
		}
	}

	m.addFaceHalfedges = halfedges
	m.addFaceIsNew = isNew
	m.addFaceNeedsAdjust = needsAdjust
	m.addFaceNextCache = nextCache

	return f, nil
}

// IsFaceDeleted reports whether f has been marked deleted but not yet
// swept by GarbageCollection.
func (m *Mesh) IsFaceDeleted(f Face) bool {
	return property.At(m.fprops, m.fdeleted, int(f))
}

func (m *Mesh) setFaceDeleted(f Face, deleted bool) {
	property.Set(m.fprops, m.fdeleted, int(f), deleted)
}

// DeleteFace detaches f from its halfedges and marks it deleted. Any edge
// of f whose other side was already boundary has no face left at all and
// is deleted too, splicing the surrounding boundary loops back together;
// a vertex that loses its last edge this way is marked deleted as well.
func (m *Mesh) DeleteFace(f Face) {
	if m.IsFaceDeleted(f) {
		return
	}

	m.setFaceDeleted(f, true)
	m.deletedFaces++

	// 1) detach the face, collecting the edges that lost their last face
	// and the vertices whose outgoing choice needs re-checking afterward.
	var deadEdges []Edge
	var corners []Vertex
	h0 := m.HalfedgeOfFace(f)
	h := h0
	for {
		m.setFace(h, InvalidFace)
		if m.IsBoundaryHalfedge(Opposite(h)) {
			deadEdges = append(deadEdges, EdgeOf(h))
		}
		corners = append(corners, m.ToVertex(h))
		h = m.Next(h)
		if h == h0 {
			break
		}
	}

	// 2) splice each dead edge out of the boundary loop it sits in, then
	// fix (or retire) its endpoints' outgoing halfedges.
	for _, e := range deadEdges {
		eh0 := HalfedgeOfEdge(e, 0)
		v0 := m.ToVertex(eh0)
		next0 := m.Next(eh0)
		prev0 := m.Prev(eh0)

		eh1 := HalfedgeOfEdge(e, 1)
		v1 := m.ToVertex(eh1)
		next1 := m.Next(eh1)
		prev1 := m.Prev(eh1)

		m.setNextLink(prev0, next1)
		m.setNextLink(prev1, next0)

		if !m.IsEdgeDeleted(e) {
			m.setEdgeDeleted(e, true)
			m.deletedEdges++
		}

		if m.HalfedgeOfVertex(v0) == eh1 {
			if next0 == eh1 {
				// v0 just lost its last edge
				m.setHalfedgeOfVertex(v0, InvalidHalfedge)
				if !m.IsVertexDeleted(v0) {
					m.setVertexDeleted(v0, true)
					m.deletedVertices++
				}
			} else {
				m.setHalfedgeOfVertex(v0, next0)
			}
		}
		if m.HalfedgeOfVertex(v1) == eh0 {
			if next1 == eh0 {
				m.setHalfedgeOfVertex(v1, InvalidHalfedge)
				if !m.IsVertexDeleted(v1) {
					m.setVertexDeleted(v1, true)
					m.deletedVertices++
				}
			} else {
				m.setHalfedgeOfVertex(v1, next1)
			}
		}
	}

	// 3) restore the boundary-halfedge discipline at surviving corners.
	for _, v := range corners {
		m.adjustOutgoingHalfedge(v)
	}

	m.hasGarbage = true
}

// FaceValence returns the number of halfedges (equivalently, edges or
// vertices) bounding f.
func (m *Mesh) FaceValence(f Face) int {
	n := 0
	h0 := m.HalfedgeOfFace(f)
	h := h0
	for {
		n++
		h = m.Next(h)
		if h == h0 {
			break
		}
	}
	return n
}

// IsBoundaryFace reports whether any edge of f lies on the mesh boundary.
func (m *Mesh) IsBoundaryFace(f Face) bool {
	h0 := m.HalfedgeOfFace(f)
	h := h0
	for {
		if m.IsBoundaryHalfedge(Opposite(h)) {
			return true
		}
		h = m.Next(h)
		if h == h0 {
			break
		}
	}
	return false
}

// IsTriangleMesh reports whether every live face has valence 3.
func (m *Mesh) IsTriangleMesh() bool {
	for it := m.Faces(); it.HasNext(); {
		if m.FaceValence(it.Next()) != 3 {
			return false
		}
	}
	return true
}

// IsQuadMesh reports whether every live face has valence 4.
func (m *Mesh) IsQuadMesh() bool {
	for it := m.Faces(); it.HasNext(); {
		if m.FaceValence(it.Next()) != 4 {
			return false
		}
	}
	return true
}

// SplitFace adds a new vertex at p and retriangulates f into a fan of
// triangles around it, one per boundary edge f had before the call,
// reusing f itself for the wedge opposite the first boundary halfedge, so
// f's halfedge handles still point at their pre-split corners.
func (m *Mesh) SplitFace(f Face, p Vec3) Vertex {
	v := m.AddVertex(p)
	m.splitFaceAtVertex(f, v)
	return v
}

func (m *Mesh) splitFaceAtVertex(f Face, v Vertex) {
	hend := m.HalfedgeOfFace(f)

	var boundary []Halfedge
	h := hend
	for {
		boundary = append(boundary, h)
		h = m.Next(h)
		if h == hend {
			break
		}
	}
	k := len(boundary)

	spokes := make([]Halfedge, k) // spokes[i]: vertex i of the ring -> v
	for i := 0; i < k; i++ {
		spokes[i] = m.newEdge(m.ToVertex(boundary[i]), v)
	}

	for i := 0; i < k; i++ {
		bi := boundary[i]
		si := spokes[i]
		inSpoke := Opposite(spokes[(i-1+k)%k]) // v -> vertex (i-1)

		var tf Face
		if i == 0 {
			tf = f
		} else {
			tf = m.newFace()
			m.setHalfedgeOfFace(tf, bi)
		}

		m.setNextLink(bi, si)
		m.setNextLink(si, inSpoke)
		m.setNextLink(inSpoke, bi)

		m.setFace(bi, tf)
		m.setFace(si, tf)
		m.setFace(inSpoke, tf)
	}

	m.setHalfedgeOfVertex(v, Opposite(spokes[0]))
}

// faceIterator is the finite lazy sequence Faces() hands out.
type faceIterator struct {
	m    *Mesh
	cur  int
	size int
}

// Faces returns an iterator over every live face in slot order.
func (m *Mesh) Faces() *faceIterator {
	return &faceIterator{m: m, cur: -1, size: m.FacesSize()}
}

// HasNext reports whether a further call to Next will yield a face.
func (it *faceIterator) HasNext() bool {
	i := it.cur + 1
	for i < it.size && it.m.IsFaceDeleted(Face(i)) {
		i++
	}
	return i < it.size
}

// Next advances and returns the next live face.
func (it *faceIterator) Next() Face {
	it.cur++
	for it.cur < it.size && it.m.IsFaceDeleted(Face(it.cur)) {
		it.cur++
	}
	return Face(it.cur)
}
