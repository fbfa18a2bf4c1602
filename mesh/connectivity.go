package mesh

import "github.com/katalvlaran/meshkit/property"

// This file holds the low-level navigation primitives: direct property
// reads/writes plus the handful of derived operations (opposite, prev,
// cw/ccw rotation, find_halfedge) that the rest of the package is built on.
// None of these mutate more than a single connectivity slot; Euler
// operators compose them.

// HalfedgeOfEdge returns halfedge i (0 or 1) of e. Per the pairing
// invariant, halfedge_of_edge(e,0) = 2e and halfedge_of_edge(e,1) = 2e+1.
func HalfedgeOfEdge(e Edge, i int) Halfedge {
	return Halfedge(2*uint32(e) + uint32(i))
}

// EdgeOf returns the edge h belongs to: edge(h) = h >> 1.
func EdgeOf(h Halfedge) Edge {
	if !h.IsValid() {
		return InvalidEdge
	}
	return Edge(uint32(h) >> 1)
}

// Opposite returns the other halfedge of h's edge: opposite(h) = h XOR 1.
// This is the representation invariant the whole package is built around —
// it is never stored.
func Opposite(h Halfedge) Halfedge {
	if !h.IsValid() {
		return InvalidHalfedge
	}
	return Halfedge(uint32(h) ^ 1)
}

func (m *Mesh) halfedgeConn(h Halfedge) halfedgeConnectivity {
	return property.At(m.hprops, m.hconn, int(h))
}

func (m *Mesh) setHalfedgeConn(h Halfedge, hc halfedgeConnectivity) {
	property.Set(m.hprops, m.hconn, int(h), hc)
}

// ToVertex returns the vertex h points at.
func (m *Mesh) ToVertex(h Halfedge) Vertex {
	return m.halfedgeConn(h).vertex
}

func (m *Mesh) setToVertex(h Halfedge, v Vertex) {
	hc := m.halfedgeConn(h)
	hc.vertex = v
	m.setHalfedgeConn(h, hc)
}

// FromVertex returns the vertex h originates at: to_vertex(opposite(h)).
func (m *Mesh) FromVertex(h Halfedge) Vertex {
	return m.ToVertex(Opposite(h))
}

// Next returns the next halfedge around h's face (or boundary loop).
func (m *Mesh) Next(h Halfedge) Halfedge {
	return m.halfedgeConn(h).next
}

func (m *Mesh) setNext(h, next Halfedge) {
	hc := m.halfedgeConn(h)
	hc.next = next
	m.setHalfedgeConn(h, hc)
}

// setNextLink sets h.next = n and is the batch-rewrite primitive add_face
// uses: it writes only h's own connectivity slot.
func (m *Mesh) setNextLink(h, n Halfedge) { m.setNext(h, n) }

// Prev returns the previous halfedge around h's face by walking Next until
// it returns to h; previous is derived, never stored.
func (m *Mesh) Prev(h Halfedge) Halfedge {
	cur := h
	for {
		n := m.Next(cur)
		if n == h {
			return cur
		}
		cur = n
	}
}

// FaceOf returns h's incident face, or InvalidFace if h is a boundary
// halfedge.
func (m *Mesh) FaceOf(h Halfedge) Face {
	return m.halfedgeConn(h).face
}

func (m *Mesh) setFace(h Halfedge, f Face) {
	hc := m.halfedgeConn(h)
	hc.face = f
	m.setHalfedgeConn(h, hc)
}

// CwRotated returns the next halfedge clockwise around from_vertex(h):
// cw_rotated(h) = next(opposite(h)).
func (m *Mesh) CwRotated(h Halfedge) Halfedge {
	return m.Next(Opposite(h))
}

// CcwRotated returns the next halfedge counter-clockwise around
// from_vertex(h): ccw_rotated(h) = opposite(prev(h)).
func (m *Mesh) CcwRotated(h Halfedge) Halfedge {
	return Opposite(m.Prev(h))
}

func (m *Mesh) vertexConn(v Vertex) vertexConnectivity {
	return property.At(m.vprops, m.vconn, int(v))
}

func (m *Mesh) setVertexConn(v Vertex, vc vertexConnectivity) {
	property.Set(m.vprops, m.vconn, int(v), vc)
}

// HalfedgeOfVertex returns v's stored outgoing halfedge, or InvalidHalfedge
// if v is isolated.
func (m *Mesh) HalfedgeOfVertex(v Vertex) Halfedge {
	return m.vertexConn(v).halfedge
}

func (m *Mesh) setHalfedgeOfVertex(v Vertex, h Halfedge) {
	vc := m.vertexConn(v)
	vc.halfedge = h
	m.setVertexConn(v, vc)
}

func (m *Mesh) faceConn(f Face) faceConnectivity {
	return property.At(m.fprops, m.fconn, int(f))
}

func (m *Mesh) setFaceConn(f Face, fc faceConnectivity) {
	property.Set(m.fprops, m.fconn, int(f), fc)
}

// HalfedgeOfFace returns f's stored representative halfedge.
func (m *Mesh) HalfedgeOfFace(f Face) Halfedge {
	return m.faceConn(f).halfedge
}

func (m *Mesh) setHalfedgeOfFace(f Face, h Halfedge) {
	fc := m.faceConn(f)
	fc.halfedge = h
	m.setFaceConn(f, fc)
}

// FindHalfedge returns the halfedge from start to end, or InvalidHalfedge
// if none exists. It rotates around start via CwRotated, so the search is
// bounded by start's valence.
func (m *Mesh) FindHalfedge(start, end Vertex) Halfedge {
	h0 := m.HalfedgeOfVertex(start)
	if !h0.IsValid() {
		return InvalidHalfedge
	}
	h := h0
	for {
		if m.ToVertex(h) == end {
			return h
		}
		h = m.CwRotated(h)
		if h == h0 {
			return InvalidHalfedge
		}
	}
}

// FindEdge returns the edge between a and b, or InvalidEdge if none exists.
func (m *Mesh) FindEdge(a, b Vertex) Edge {
	h := m.FindHalfedge(a, b)
	if !h.IsValid() {
		return InvalidEdge
	}
	return EdgeOf(h)
}

// adjustOutgoingHalfedge makes sure v's stored outgoing halfedge is a
// boundary halfedge whenever v has one, searching the one-ring via
// CwRotated starting from the current choice. It is a no-op if v is
// interior or isolated. Ported from adjust_outgoing_halfedge.
func (m *Mesh) adjustOutgoingHalfedge(v Vertex) {
	h0 := m.HalfedgeOfVertex(v)
	if !h0.IsValid() {
		return
	}
	h := h0
	for {
		if !m.FaceOf(h).IsValid() {
			m.setHalfedgeOfVertex(v, h)
			return
		}
		h = m.CwRotated(h)
		if h == h0 {
			return
		}
	}
}
