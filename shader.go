package shapeplay

// SimpleShader is the stock ShaderBinding: a flat-color program whose
// vertex buffer is looked up in a VertexBufferStore by shape tag.
type SimpleShader struct {
	name  string
	dev   Device
	store *VertexBufferStore
}

// NewSimpleShader returns a binding drawing through dev with buffers from
// store. The store must outlive the shader.
func NewSimpleShader(name string, dev Device, store *VertexBufferStore) *SimpleShader {
	return &SimpleShader{name: name, dev: dev, store: store}
}

// Name returns the program name.
func (s *SimpleShader) Name() string {
	return s.name
}

// Activate binds the shape's vertex buffer and loads color and
// view-projection. Panics like VertexBufferStore.Handle on misuse.
func (s *SimpleShader) Activate(c RGBA, viewProjection Matrix, shape Shape) {
	s.dev.BindVertexBuffer(s.store.Handle(shape))
	s.dev.SetColor(c)
	s.dev.SetViewProjection(viewProjection)
}

// LoadTransform loads the model matrix.
func (s *SimpleShader) LoadTransform(m Matrix) {
	s.dev.SetModel(m)
}

// ShaderRegistry holds one shader binding per catalog shape. Renderables
// borrow bindings from the registry, which must outlive them.
type ShaderRegistry struct {
	shaders [shapeCount]*SimpleShader
}

// NewShaderRegistry creates a SimpleShader for every shape.
func NewShaderRegistry(dev Device, store *VertexBufferStore) *ShaderRegistry {
	reg := &ShaderRegistry{}
	for _, shape := range Shapes() {
		reg.shaders[shape] = NewSimpleShader(shape.String()+"-simple", dev, store)
	}
	return reg
}

// For returns the binding of a shape. Panics with ErrUnknownShape for tags
// outside the catalog.
func (r *ShaderRegistry) For(shape Shape) *SimpleShader {
	shape.entry()
	return r.shaders[shape]
}
