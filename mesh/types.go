package mesh

import "github.com/katalvlaran/meshkit/property"

// invalidIndex is the reserved sentinel denoting "no such element": the
// maximum representable uint32 rather than a negative value, so handles
// stay unsigned and index property slots directly.
const invalidIndex = ^uint32(0)

// Vertex identifies a 0-cell: a position plus any user properties.
type Vertex uint32

// Halfedge identifies a directed corner of a face, or of a boundary loop.
// It is the atomic navigation unit: opposite(h) = h XOR 1, so halfedge 2k
// and 2k+1 always belong to Edge k.
type Halfedge uint32

// Edge identifies the unordered pair of opposite halfedges {2k, 2k+1}.
type Edge uint32

// Face identifies a 2-cell bounded by a cycle of halfedges. Boundary loops
// have no Face.
type Face uint32

// InvalidVertex, InvalidHalfedge, InvalidEdge, InvalidFace are the sentinel
// values returned wherever a handle "does not exist" — an isolated vertex's
// halfedge, a boundary halfedge's face, and so on.
const (
	InvalidVertex   = Vertex(invalidIndex)
	InvalidHalfedge = Halfedge(invalidIndex)
	InvalidEdge     = Edge(invalidIndex)
	InvalidFace     = Face(invalidIndex)
)

// IsValid reports whether v is not the invalid sentinel.
func (v Vertex) IsValid() bool { return v != InvalidVertex }

// IsValid reports whether h is not the invalid sentinel.
func (h Halfedge) IsValid() bool { return h != InvalidHalfedge }

// IsValid reports whether e is not the invalid sentinel.
func (e Edge) IsValid() bool { return e != InvalidEdge }

// IsValid reports whether f is not the invalid sentinel.
func (f Face) IsValid() bool { return f != InvalidFace }

// Vec3 is a 3-vector position. The scalar type is fixed to float64 at
// compile time (see DESIGN.md's Open Question decision); algorithms needing
// single precision can still store it as a user property.
type Vec3 struct {
	X, Y, Z float64
}

// vertexConnectivity stores one outgoing halfedge per vertex. For a
// boundary vertex this MUST be a boundary halfedge (enforced by
// adjustOutgoingHalfedge after every topology change that could violate it).
type vertexConnectivity struct {
	halfedge Halfedge
}

// halfedgeConnectivity stores the target vertex, the next halfedge in the
// face cycle, and the incident face (invalid when h is a boundary
// halfedge). Previous is deliberately not stored; prev(h) walks next until
// it returns to h.
type halfedgeConnectivity struct {
	vertex Vertex
	next   Halfedge
	face   Face
}

// faceConnectivity stores one halfedge of the face's cycle.
type faceConnectivity struct {
	halfedge Halfedge
}

// Option configures a Mesh at construction time.
type Option func(*Mesh)

// WithCapacityHint pre-reserves property storage for the given element
// counts; halfedges are reserved at 2*nEdges since every edge owns
// exactly two.
func WithCapacityHint(nVertices, nEdges, nFaces int) Option {
	return func(m *Mesh) { m.Reserve(nVertices, nEdges, nFaces) }
}

// Mesh is the halfedge surface mesh core: four property.Container values
// (one per element kind) plus the built-in connectivity/position/deleted
// slots every mesh carries, and the bookkeeping Euler operators need
// (deleted counts, the has-garbage flag, the optional unique-vertex set).
//
// Mesh is not safe for concurrent mutation; see the package doc.
type Mesh struct {
	vprops *property.Container
	hprops *property.Container
	eprops *property.Container
	fprops *property.Container

	vpoint   property.Handle[Vec3]
	vconn    property.Handle[vertexConnectivity]
	hconn    property.Handle[halfedgeConnectivity]
	fconn    property.Handle[faceConnectivity]
	vdeleted property.Handle[bool]
	edeleted property.Handle[bool]
	fdeleted property.Handle[bool]

	deletedVertices int
	deletedEdges    int
	deletedFaces    int
	hasGarbage      bool

	// uniqueVertices backs AddVertexUnique: bit-exact position -> Vertex.
	// Entries referring to deleted vertices are purged during
	// GarbageCollection.
	uniqueVertices map[Vec3]Vertex

	// addFaceHalfedges, addFaceIsNew, addFaceNeedsAdjust, and
	// addFaceNextCache are scratch buffers reused across AddFace calls to
	// avoid an allocation per call.
	addFaceHalfedges   []Halfedge
	addFaceIsNew       []bool
	addFaceNeedsAdjust []bool
	addFaceNextCache   []nextRewrite
}

type nextRewrite struct {
	from, to Halfedge
}

// NewMesh returns an empty Mesh with its built-in properties allocated:
// v:point, v:connectivity, h:connectivity, f:connectivity, v:deleted,
// e:deleted, f:deleted. Clear restores exactly this state.
func NewMesh(opts ...Option) *Mesh {
	m := &Mesh{
		vprops:         property.NewContainer(),
		hprops:         property.NewContainer(),
		eprops:         property.NewContainer(),
		fprops:         property.NewContainer(),
		uniqueVertices: make(map[Vec3]Vertex),
	}

	m.vpoint, _ = property.Add(m.vprops, "v:point", Vec3{})
	m.vconn, _ = property.Add(m.vprops, "v:connectivity", vertexConnectivity{halfedge: InvalidHalfedge})
	m.hconn, _ = property.Add(m.hprops, "h:connectivity", halfedgeConnectivity{vertex: InvalidVertex, next: InvalidHalfedge, face: InvalidFace})
	m.fconn, _ = property.Add(m.fprops, "f:connectivity", faceConnectivity{halfedge: InvalidHalfedge})
	m.vdeleted, _ = property.Add(m.vprops, "v:deleted", false)
	m.edeleted, _ = property.Add(m.eprops, "e:deleted", false)
	m.fdeleted, _ = property.Add(m.fprops, "f:deleted", false)

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Reserve pre-sizes the four property containers without changing their
// current length; halfedges are reserved at 2*nEdges.
func (m *Mesh) Reserve(nVertices, nEdges, nFaces int) {
	m.vprops.Reserve(nVertices)
	m.hprops.Reserve(2 * nEdges)
	m.eprops.Reserve(nEdges)
	m.fprops.Reserve(nFaces)
}

// VerticesSize returns the number of vertex slots, including any not yet
// removed by GarbageCollection.
func (m *Mesh) VerticesSize() int { return m.vprops.Size() }

// HalfedgesSize returns the number of halfedge slots.
func (m *Mesh) HalfedgesSize() int { return m.hprops.Size() }

// EdgesSize returns the number of edge slots.
func (m *Mesh) EdgesSize() int { return m.eprops.Size() }

// FacesSize returns the number of face slots.
func (m *Mesh) FacesSize() int { return m.fprops.Size() }

// NVertices returns the number of live (non-deleted) vertices.
func (m *Mesh) NVertices() int { return m.vprops.Size() - m.deletedVertices }

// NEdges returns the number of live edges.
func (m *Mesh) NEdges() int { return m.eprops.Size() - m.deletedEdges }

// NHalfedges returns the number of live halfedges (2 * NEdges).
func (m *Mesh) NHalfedges() int { return 2 * m.NEdges() }

// NFaces returns the number of live faces.
func (m *Mesh) NFaces() int { return m.fprops.Size() - m.deletedFaces }

// HasGarbage reports whether any element is marked deleted but not yet
// compacted by GarbageCollection.
func (m *Mesh) HasGarbage() bool { return m.hasGarbage }
