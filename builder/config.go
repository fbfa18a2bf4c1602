// Package builder provides internal configuration types and functional
// options for mesh constructors. It centralizes common settings — uniform
// scale, origin translation, and vertex deduplication — to keep the shape
// implementations DRY and consistent.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) space.
package builder

import "github.com/katalvlaran/meshkit/mesh"

// BuilderOption customizes the behavior of a mesh constructor by mutating
// a builderConfig instance before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig holds the configurable parameters shared by all shape
// builders:
//   - scale:  uniform factor applied to every canonical position.
//   - origin: translation applied after scaling.
//   - unique: route vertex creation through AddVertexUnique so shapes
//     sharing exact positions fuse instead of duplicating.
//
// builderConfig is not safe for concurrent mutation; each builder
// invocation creates its own via newBuilderConfig.
type builderConfig struct {
	scale  float64
	origin mesh.Vec3
	unique bool
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		scale: DefaultScale,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithScale sets the uniform scale factor applied to every generated
// position. Panics if s <= 0: a degenerate or mirrored shape is a
// programmer error, not a runtime condition.
func WithScale(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOrigin translates every generated position by o (applied after
// scaling).
func WithOrigin(o mesh.Vec3) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithUniqueVertices makes constructors allocate vertices through
// AddVertexUnique, so composing several shapes at shared exact positions
// fuses their touching vertices.
func WithUniqueVertices() BuilderOption {
	return func(c *builderConfig) {
		c.unique = true
	}
}

// addPoint allocates the vertex for canonical position p under cfg's
// transform and dedup policy.
func (c *builderConfig) addPoint(m *mesh.Mesh, p mesh.Vec3) mesh.Vertex {
	q := mesh.Vec3{
		X: p.X*c.scale + c.origin.X,
		Y: p.Y*c.scale + c.origin.Y,
		Z: p.Z*c.scale + c.origin.Z,
	}
	if c.unique {
		return m.AddVertexUnique(q)
	}
	return m.AddVertex(q)
}
