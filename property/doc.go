// Package property implements the name-keyed, type-checked, densely indexed
// per-element array storage shared by every mesh element kind (vertex,
// halfedge, edge, face).
//
// A Container owns zero or more named "slots", each a dense []T for some
// type T. All slots in one Container always share the same length: Resize
// grows (or shrinks) every slot in lock-step, and Swap exchanges index i and
// j across every slot at once. This is what lets mesh.Mesh grow its four
// element kinds independently while keeping every attached property (both
// the built-in connectivity/position/deleted slots and anything a caller
// adds) in sync without per-property bookkeeping.
//
// Properties are looked up by name and verified by type: Add returns the
// existing handle if name and type both match, and ErrTypeMismatch if the
// name is taken by a different type. Get returns ok=false on either a
// missing name or a type mismatch — callers are never handed a handle into
// the wrong slot.
package property
