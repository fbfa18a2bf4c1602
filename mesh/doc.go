// Package mesh implements a halfedge-based surface mesh: the core data
// structure and Euler operators every higher-level polygon-processing
// algorithm in this kind of library is built on.
//
// Elements (Vertex, Halfedge, Edge, Face) are dense integer handles into
// four parallel property.Container instances — one per kind — not owning
// pointers. opposite(h) is derived by flipping h's low bit (h XOR 1)
// instead of being stored: halfedge 2k and 2k+1 always belong to edge k.
// This representation invariant is load-bearing; do not add a stored
// "opposite" field.
//
// Mesh is a single-writer data structure: the package performs no locking
// and none of its methods are safe to call concurrently with a mutation on
// the same Mesh. Read-only algorithms may share a *Mesh across goroutines
// only if the caller guarantees no concurrent Euler operator runs.
//
// Deletion is deferred. delete_vertex/delete_edge/delete_face mark a
// "deleted" property flag; handles remain syntactically valid
// (IsVertexDeleted, IsEdgeDeleted, IsFaceDeleted report true) until GarbageCollection runs its two-finger compaction and
// renumbers every live element. Cached handles do not survive
// GarbageCollection — refresh them through the returned Remap.
package mesh
