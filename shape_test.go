package shapeplay

import (
	"errors"
	"testing"
)

func TestShapeCatalogRecipesFitBuffers(t *testing.T) {
	for _, s := range Shapes() {
		t.Run(s.String(), func(t *testing.T) {
			n := s.VertexCount()
			if len(s.Vertices()) != n*3 {
				t.Fatalf("vertex array length %d is not 3*%d", len(s.Vertices()), n)
			}
			rec := s.Recipe()
			if len(rec.Ranges) == 0 {
				t.Fatal("recipe has no ranges")
			}
			for _, rg := range rec.Ranges {
				if rg.First < 0 || rg.Count <= 0 || rg.First+rg.Count > n {
					t.Errorf("range %+v outside %d vertices", rg, n)
				}
				if rec.Topology == TriangleList && rg.Count%3 != 0 {
					t.Errorf("triangle-list range %+v not a multiple of 3", rg)
				}
			}
			for i, v := range s.Vertices() {
				if v < -0.5 || v > 0.5 {
					t.Errorf("vertex component %d = %v outside unit square", i, v)
				}
			}
		})
	}
}

func TestShapeRecipes(t *testing.T) {
	tests := []struct {
		shape Shape
		topo  Topology
		want  []VertexRange
	}{
		{Square, TriangleStrip, []VertexRange{{0, 4}}},
		{Triangle, TriangleList, []VertexRange{{0, 3}}},
		{Polygon, TriangleList, []VertexRange{{0, 3}, {2, 3}, {4, 3}}},
		{Star, TriangleList, []VertexRange{{0, 3}, {3, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			rec := tt.shape.Recipe()
			if rec.Topology != tt.topo {
				t.Errorf("Topology = %v, want %v", rec.Topology, tt.topo)
			}
			if len(rec.Ranges) != len(tt.want) {
				t.Fatalf("Ranges = %v, want %v", rec.Ranges, tt.want)
			}
			for i := range tt.want {
				if rec.Ranges[i] != tt.want[i] {
					t.Errorf("Ranges[%d] = %v, want %v", i, rec.Ranges[i], tt.want[i])
				}
			}
		})
	}
}

func TestShapeRecipeIsCopy(t *testing.T) {
	rec := Polygon.Recipe()
	rec.Ranges[0].First = 99
	if Polygon.Recipe().Ranges[0].First != 0 {
		t.Error("mutating a returned recipe changed the catalog")
	}
}

func TestParseShape(t *testing.T) {
	for _, s := range Shapes() {
		got, err := ParseShape(s.String())
		if err != nil || got != s {
			t.Errorf("ParseShape(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, err := ParseShape("STAR"); err != nil || got != Star {
		t.Errorf("ParseShape(STAR) = %v, %v; want star", got, err)
	}
	if _, err := ParseShape("hexagon"); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("ParseShape(hexagon) error = %v, want ErrUnknownShape", err)
	}
}

func TestShapeTextRoundTrip(t *testing.T) {
	var s Shape
	if err := s.UnmarshalText([]byte("polygon")); err != nil || s != Polygon {
		t.Fatalf("UnmarshalText(polygon) = %v, %v", s, err)
	}
	b, err := Triangle.MarshalText()
	if err != nil || string(b) != "triangle" {
		t.Errorf("MarshalText() = %q, %v", b, err)
	}
	if _, err := Shape(42).MarshalText(); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("MarshalText(42) error = %v, want ErrUnknownShape", err)
	}
}

func TestUnknownShapePanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownShape) {
			t.Errorf("recover() = %v, want ErrUnknownShape", r)
		}
	}()
	Shape(-1).Recipe()
}
