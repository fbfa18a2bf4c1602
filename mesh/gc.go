package mesh

// Remap records how GarbageCollection renumbered the surviving elements.
// Callers holding handles from before the pass must refresh every one of
// them through it; a handle whose element was deleted maps to the invalid
// sentinel. A Remap from a pass that found no garbage maps every handle to
// itself.
type Remap struct {
	vertices  []Vertex
	halfedges []Halfedge
	faces     []Face
}

// Vertex returns the post-compaction handle for old, or InvalidVertex if
// old was deleted (or was never a valid slot).
func (r *Remap) Vertex(old Vertex) Vertex {
	if r.vertices == nil {
		return old
	}
	if int(old) >= len(r.vertices) {
		return InvalidVertex
	}
	return r.vertices[old]
}

// Halfedge returns the post-compaction handle for old, or InvalidHalfedge
// if old's edge was deleted.
func (r *Remap) Halfedge(old Halfedge) Halfedge {
	if r.halfedges == nil {
		return old
	}
	if int(old) >= len(r.halfedges) {
		return InvalidHalfedge
	}
	return r.halfedges[old]
}

// Edge returns the post-compaction handle for old, or InvalidEdge if old
// was deleted. Edges follow their halfedge pair: edge k maps wherever
// halfedge 2k went.
func (r *Remap) Edge(old Edge) Edge {
	return EdgeOf(r.Halfedge(HalfedgeOfEdge(old, 0)))
}

// Face returns the post-compaction handle for old, or InvalidFace if old
// was deleted.
func (r *Remap) Face(old Face) Face {
	if r.faces == nil {
		return old
	}
	if int(old) >= len(r.faces) {
		return InvalidFace
	}
	return r.faces[old]
}

// GarbageCollection compacts the mesh: every element marked deleted is
// swapped out past the live range, all connectivity fields are rewritten
// to the new numbering, the property containers shrink to the live
// lengths, and the unique-vertex set is purged of dead entries. It is the
// only operation that invalidates handles; the returned Remap is the only
// way to carry one across it.
//
// The pass is a two-finger compaction per element kind: one cursor scans
// for deleted slots from the front, one for live slots from the back, and
// Container.Swap exchanges them until the cursors meet. Halfedges are
// never swapped on their own — they ride along with their edge in pairs
// (2e, 2e+1) so the opposite-by-XOR pairing survives untouched.
func (m *Mesh) GarbageCollection() *Remap {
	if !m.hasGarbage {
		return &Remap{}
	}

	nV := m.VerticesSize()
	nE := m.EdgesSize()
	nH := m.HalfedgesSize()
	nF := m.FacesSize()

	// handle maps start as the identity and get permuted by the same
	// swaps as the element data; afterwards, indexing one with an OLD
	// handle of a live element yields that element's NEW position.
	vmap := make([]uint32, nV)
	for i := range vmap {
		vmap[i] = uint32(i)
	}
	hmap := make([]uint32, nH)
	for i := range hmap {
		hmap[i] = uint32(i)
	}
	fmap := make([]uint32, nF)
	for i := range fmap {
		fmap[i] = uint32(i)
	}

	// compact vertices
	if nV > 0 {
		i0, i1 := 0, nV-1
		for {
			for !m.IsVertexDeleted(Vertex(i0)) && i0 < i1 {
				i0++
			}
			for m.IsVertexDeleted(Vertex(i1)) && i0 < i1 {
				i1--
			}
			if i0 >= i1 {
				break
			}
			m.vprops.Swap(i0, i1)
			vmap[i0], vmap[i1] = vmap[i1], vmap[i0]
		}
		if m.IsVertexDeleted(Vertex(i0)) {
			nV = i0
		} else {
			nV = i0 + 1
		}
	}

	// compact edges, dragging each halfedge pair along
	if nE > 0 {
		i0, i1 := 0, nE-1
		for {
			for !m.IsEdgeDeleted(Edge(i0)) && i0 < i1 {
				i0++
			}
			for m.IsEdgeDeleted(Edge(i1)) && i0 < i1 {
				i1--
			}
			if i0 >= i1 {
				break
			}
			m.eprops.Swap(i0, i1)
			m.hprops.Swap(2*i0, 2*i1)
			m.hprops.Swap(2*i0+1, 2*i1+1)
			hmap[2*i0], hmap[2*i1] = hmap[2*i1], hmap[2*i0]
			hmap[2*i0+1], hmap[2*i1+1] = hmap[2*i1+1], hmap[2*i0+1]
		}
		if m.IsEdgeDeleted(Edge(i0)) {
			nE = i0
		} else {
			nE = i0 + 1
		}
		nH = 2 * nE
	}

	// compact faces
	if nF > 0 {
		i0, i1 := 0, nF-1
		for {
			for !m.IsFaceDeleted(Face(i0)) && i0 < i1 {
				i0++
			}
			for m.IsFaceDeleted(Face(i1)) && i0 < i1 {
				i1--
			}
			if i0 >= i1 {
				break
			}
			m.fprops.Swap(i0, i1)
			fmap[i0], fmap[i1] = fmap[i1], fmap[i0]
		}
		if m.IsFaceDeleted(Face(i0)) {
			nF = i0
		} else {
			nF = i0 + 1
		}
	}

	// rewrite vertex connectivity through the maps
	for i := 0; i < nV; i++ {
		v := Vertex(i)
		if !m.IsIsolatedVertex(v) {
			m.setHalfedgeOfVertex(v, Halfedge(hmap[m.HalfedgeOfVertex(v)]))
		}
	}

	// rewrite halfedge connectivity
	for i := 0; i < nH; i++ {
		h := Halfedge(i)
		m.setToVertex(h, Vertex(vmap[m.ToVertex(h)]))
		m.setNext(h, Halfedge(hmap[m.Next(h)]))
		if f := m.FaceOf(h); f.IsValid() {
			m.setFace(h, Face(fmap[f]))
		}
	}

	// rewrite face connectivity
	for i := 0; i < nF; i++ {
		f := Face(i)
		m.setHalfedgeOfFace(f, Halfedge(hmap[m.HalfedgeOfFace(f)]))
	}

	// shrink all property slots to the live lengths
	m.vprops.Resize(nV)
	m.hprops.Resize(nH)
	m.eprops.Resize(nE)
	m.fprops.Resize(nF)

	m.deletedVertices = 0
	m.deletedEdges = 0
	m.deletedFaces = 0
	m.hasGarbage = false

	remap := &Remap{
		vertices:  resolveMap[Vertex](vmap, nV),
		halfedges: resolveMap[Halfedge](hmap, nH),
		faces:     resolveMap[Face](fmap, nF),
	}

	// purge the unique-vertex set of dead entries and renumber the rest
	for p, v := range m.uniqueVertices {
		if nv := remap.Vertex(v); nv.IsValid() {
			m.uniqueVertices[p] = nv
		} else {
			delete(m.uniqueVertices, p)
		}
	}

	return remap
}

// resolveMap turns a swap-permuted identity map into an explicit old→new
// table: entries landing inside the live range [0, live) are new handles,
// everything else was deleted.
func resolveMap[H ~uint32](raw []uint32, live int) []H {
	out := make([]H, len(raw))
	for old, nw := range raw {
		if int(nw) < live {
			out[old] = H(nw)
		} else {
			out[old] = H(invalidIndex)
		}
	}
	return out
}
