package shapeplay

import "time"

// ShaderBinding activates a GPU program for drawing one shape.
// Bindings are shared by many renderables and never change after setup.
type ShaderBinding interface {
	// Activate selects the program and vertex buffer for shape and loads
	// the color and view-projection uniforms.
	Activate(c RGBA, viewProjection Matrix, shape Shape)

	// LoadTransform loads the model matrix uniform.
	LoadTransform(m Matrix)
}

// Drawable is the read-only face of a Renderable used by the draw phase.
type Drawable interface {
	Draw(d Drawer, viewProjection Matrix)
}

// Renderable pairs a shape with a transform, a color and a shader binding.
// The shader binding is borrowed; the transform is owned.
type Renderable struct {
	shader  ShaderBinding
	shape   Shape
	xform   Transform
	color   RGBA
	created time.Duration
}

// NewRenderable creates a white renderable of unit size at the origin.
// created is the creation timestamp relative to its spawn batch start.
// It panics with ErrUnknownShape for tags outside the catalog.
func NewRenderable(shader ShaderBinding, shape Shape, created time.Duration) *Renderable {
	shape.entry()
	r := &Renderable{
		shader:  shader,
		shape:   shape,
		color:   White,
		created: created,
	}
	r.xform.SetSize(1, 1)
	return r
}

// Draw activates the shader, loads the model matrix and issues the shape's
// draw calls. It does not modify the renderable.
func (r *Renderable) Draw(d Drawer, viewProjection Matrix) {
	r.shader.Activate(r.color, viewProjection, r.shape)
	r.shader.LoadTransform(r.xform.Matrix())

	recipe := &catalog[r.shape].recipe
	for _, rg := range recipe.Ranges {
		d.DrawArrays(recipe.Topology, rg.First, rg.Count)
	}
}

// Transform returns the renderable's transform for mutation.
func (r *Renderable) Transform() *Transform {
	return &r.xform
}

// SetColor sets the fill color.
func (r *Renderable) SetColor(c RGBA) {
	r.color = c
}

// Color returns the fill color.
func (r *Renderable) Color() RGBA {
	return r.color
}

// Shape returns the shape tag.
func (r *Renderable) Shape() Shape {
	return r.shape
}

// Created returns the creation timestamp relative to the batch start.
func (r *Renderable) Created() time.Duration {
	return r.created
}

// HasExpired reports whether elapsed is strictly greater than the
// creation timestamp.
func (r *Renderable) HasExpired(elapsed time.Duration) bool {
	return elapsed > r.created
}
