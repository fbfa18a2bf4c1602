package mesh

import (
	"fmt"

	"github.com/katalvlaran/meshkit/property"
)

// User-defined properties attach to the same four containers the built-in
// connectivity lives in, so they grow, swap, and shrink in lock-step with
// their element kind — through every AddVertex/AddFace and through
// GarbageCollection's compaction. Index a vertex slot with int(v), a
// halfedge slot with int(h), and so on.
//
// Names are free-form; the "v:", "h:", "e:", "f:" prefixes used by the
// built-ins ("v:point", "h:connectivity", ...) are a convention only and
// nothing interprets them. The built-in names themselves are reserved in
// the sense that allocating one of them with a mismatched type fails like
// for any other taken name.
//
// The containers are shared with the mesh's own bookkeeping: callers add,
// read, write, and remove their slots, but must leave Resize and Swap to
// the mesh.

// VertexProperties returns the container holding one slot per vertex.
func (m *Mesh) VertexProperties() *property.Container { return m.vprops }

// HalfedgeProperties returns the container holding one slot per halfedge.
func (m *Mesh) HalfedgeProperties() *property.Container { return m.hprops }

// EdgeProperties returns the container holding one slot per edge.
func (m *Mesh) EdgeProperties() *property.Container { return m.eprops }

// FaceProperties returns the container holding one slot per face.
func (m *Mesh) FaceProperties() *property.Container { return m.fprops }

// AddVertexProperty allocates a named per-vertex slot of type T with the
// given default, or returns the existing handle when name and type match.
// A name already bound to a different type fails with
// ErrPropertyTypeMismatch.
func AddVertexProperty[T any](m *Mesh, name string, def T) (property.Handle[T], error) {
	return addProperty(m.vprops, "vertex", name, def)
}

// AddHalfedgeProperty allocates a named per-halfedge slot of type T.
func AddHalfedgeProperty[T any](m *Mesh, name string, def T) (property.Handle[T], error) {
	return addProperty(m.hprops, "halfedge", name, def)
}

// AddEdgeProperty allocates a named per-edge slot of type T.
func AddEdgeProperty[T any](m *Mesh, name string, def T) (property.Handle[T], error) {
	return addProperty(m.eprops, "edge", name, def)
}

// AddFaceProperty allocates a named per-face slot of type T.
func AddFaceProperty[T any](m *Mesh, name string, def T) (property.Handle[T], error) {
	return addProperty(m.fprops, "face", name, def)
}

func addProperty[T any](c *property.Container, kind, name string, def T) (property.Handle[T], error) {
	h, err := property.Add(c, name, def)
	if err != nil {
		return h, fmt.Errorf("mesh: %s property %q: %w", kind, name, ErrPropertyTypeMismatch)
	}
	return h, nil
}
