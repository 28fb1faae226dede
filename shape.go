package shapeplay

import (
	"fmt"
	"strings"
)

// Shape tags one entry of the fixed shape catalog.
type Shape int

// The shape catalog.
const (
	Square Shape = iota
	Triangle
	Polygon
	Star

	shapeCount
)

// Topology is the primitive topology of a draw call.
type Topology int

const (
	// TriangleList draws independent triangles from each vertex triple.
	TriangleList Topology = iota
	// TriangleStrip draws a triangle for every vertex after the second.
	TriangleStrip
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case TriangleList:
		return "triangle-list"
	case TriangleStrip:
		return "triangle-strip"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// VertexRange is a contiguous run of vertices in a shape's buffer.
type VertexRange struct {
	First int
	Count int
}

// Recipe is the draw-call recipe of a shape: one topology and the vertex
// ranges issued as separate draws.
type Recipe struct {
	Topology Topology
	Ranges   []VertexRange
}

type shapeEntry struct {
	name     string
	vertices []float32 // x, y, z triples inside the unit square
	recipe   Recipe
}

// catalog is the dispatch table consulted by Renderable.Draw and the
// vertex buffer store. Indexed by Shape.
var catalog = [shapeCount]shapeEntry{
	Square: {
		name: "square",
		vertices: []float32{
			0.5, 0.5, 0,
			-0.5, 0.5, 0,
			0.5, -0.5, 0,
			-0.5, -0.5, 0,
		},
		recipe: Recipe{Topology: TriangleStrip, Ranges: []VertexRange{{0, 4}}},
	},
	Triangle: {
		name: "triangle",
		vertices: []float32{
			0, 0.5, 0,
			-0.5, -0.5, 0,
			0.5, -0.5, 0,
		},
		recipe: Recipe{Topology: TriangleList, Ranges: []VertexRange{{0, 3}}},
	},
	// Pentagon fanned from its top vertex. Vertices 2 and 4 are shared by
	// consecutive triangles, so the draws start at 0, 2 and 4.
	Polygon: {
		name: "polygon",
		vertices: []float32{
			0, 0.5, 0,
			-0.4755283, 0.1545085, 0,
			-0.2938926, -0.4045085, 0,
			0.2938926, -0.4045085, 0,
			0, 0.5, 0,
			0.2938926, -0.4045085, 0,
			0.4755283, 0.1545085, 0,
		},
		recipe: Recipe{Topology: TriangleList, Ranges: []VertexRange{{0, 3}, {2, 3}, {4, 3}}},
	},
	// Two overlapping triangles, pointing up and down.
	Star: {
		name: "star",
		vertices: []float32{
			0, 0.5, 0,
			-0.4330127, -0.25, 0,
			0.4330127, -0.25, 0,
			0, -0.5, 0,
			0.4330127, 0.25, 0,
			-0.4330127, 0.25, 0,
		},
		recipe: Recipe{Topology: TriangleList, Ranges: []VertexRange{{0, 3}, {3, 3}}},
	},
}

// Shapes returns every shape of the catalog in tag order.
func Shapes() []Shape {
	out := make([]Shape, shapeCount)
	for i := range out {
		out[i] = Shape(i)
	}
	return out
}

// Valid reports whether s is a catalog entry.
func (s Shape) Valid() bool {
	return s >= 0 && s < shapeCount
}

// String returns the lower-case shape name.
func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return catalog[s].name
}

// ParseShape returns the shape with the given name (case-insensitive).
func ParseShape(name string) (Shape, error) {
	for i := range catalog {
		if strings.EqualFold(catalog[i].name, name) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Vertices returns a copy of the shape's vertex array (x, y, z triples).
// Panics with ErrUnknownShape for tags outside the catalog.
func (s Shape) Vertices() []float32 {
	e := s.entry()
	out := make([]float32, len(e.vertices))
	copy(out, e.vertices)
	return out
}

// VertexCount returns the number of vertices in the shape's buffer.
func (s Shape) VertexCount() int {
	return len(s.entry().vertices) / 3
}

// Recipe returns a copy of the shape's draw recipe.
// Panics with ErrUnknownShape for tags outside the catalog.
func (s Shape) Recipe() Recipe {
	r := s.entry().recipe
	r.Ranges = append([]VertexRange(nil), r.Ranges...)
	return r
}

func (s Shape) entry() *shapeEntry {
	if !s.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownShape, int(s)))
	}
	return &catalog[s]
}
