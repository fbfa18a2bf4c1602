// Package builder defines shared constants used by mesh constructors,
// ensuring consistent defaults and validation across all shape builders.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodTriangle is the canonical name for the Triangle constructor.
	MethodTriangle = "Triangle"
	// MethodQuad is the canonical name for the Quad constructor.
	MethodQuad = "Quad"
	// MethodVertexOneRing is the canonical name for the VertexOneRing constructor.
	MethodVertexOneRing = "VertexOneRing"
	// MethodEdgeOneRing is the canonical name for the EdgeOneRing constructor.
	MethodEdgeOneRing = "EdgeOneRing"
	// MethodLShape is the canonical name for the LShape constructor.
	MethodLShape = "LShape"
	// MethodPlane is the canonical name for the Plane constructor.
	MethodPlane = "Plane"
	// MethodCone is the canonical name for the Cone constructor.
	MethodCone = "Cone"
	// MethodCylinder is the canonical name for the Cylinder constructor.
	MethodCylinder = "Cylinder"
	// MethodTorus is the canonical name for the Torus constructor.
	MethodTorus = "Torus"
	// MethodPlatonicSolid is the canonical name shared by the five solid
	// constructors.
	MethodPlatonicSolid = "PlatonicSolid"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinRevolutionSides is the smallest circle subdivision for Cone and
// Cylinder; fewer than 3 sides cannot close a ring of faces.
const MinRevolutionSides = 3

// MinPlaneResolution is the smallest allowed Plane resolution: a 1×1 grid
// with a single quad.
const MinPlaneResolution = 1

// MinTorusResolution is the smallest radial or tubular resolution for
// Torus; each circle needs at least 3 samples.
const MinTorusResolution = 3

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultScale is the uniform scale applied when no WithScale option is
// given.
const DefaultScale = 1.0
