package mesh

import "github.com/katalvlaran/meshkit/property"

// Clone returns a deep copy of m: all four property containers (built-in
// and user-added slots alike), the deletion bookkeeping, and the
// unique-vertex set. Handles valid on m are valid on the clone and
// address the same elements; mutating either mesh never touches the
// other.
func (m *Mesh) Clone() *Mesh {
	cp := &Mesh{
		vprops: m.vprops.Clone(),
		hprops: m.hprops.Clone(),
		eprops: m.eprops.Clone(),
		fprops: m.fprops.Clone(),

		deletedVertices: m.deletedVertices,
		deletedEdges:    m.deletedEdges,
		deletedFaces:    m.deletedFaces,
		hasGarbage:      m.hasGarbage,

		uniqueVertices: make(map[Vec3]Vertex, len(m.uniqueVertices)),
	}

	// Container.Clone keeps slot order, so the built-in handles can be
	// re-resolved by name and land on the same indices.
	cp.vpoint, _ = property.Add(cp.vprops, "v:point", Vec3{})
	cp.vconn, _ = property.Add(cp.vprops, "v:connectivity", vertexConnectivity{halfedge: InvalidHalfedge})
	cp.hconn, _ = property.Add(cp.hprops, "h:connectivity", halfedgeConnectivity{vertex: InvalidVertex, next: InvalidHalfedge, face: InvalidFace})
	cp.fconn, _ = property.Add(cp.fprops, "f:connectivity", faceConnectivity{halfedge: InvalidHalfedge})
	cp.vdeleted, _ = property.Add(cp.vprops, "v:deleted", false)
	cp.edeleted, _ = property.Add(cp.eprops, "e:deleted", false)
	cp.fdeleted, _ = property.Add(cp.fprops, "f:deleted", false)

	for p, v := range m.uniqueVertices {
		cp.uniqueVertices[p] = v
	}

	return cp
}

// Clear removes every element and every user-added property, restoring m
// to the state NewMesh returns. Built-in properties survive (empty);
// handles into the old contents do not.
func (m *Mesh) Clear() {
	fresh := NewMesh()
	*m = *fresh
}

// IsEmpty reports whether the mesh has no vertex slots at all.
func (m *Mesh) IsEmpty() bool { return m.VerticesSize() == 0 }
