package shapeplay

// Transform is the position, size and rotation of one entity.
// The zero value sits at the origin with zero size.
type Transform struct {
	pos      Point
	size     Point
	rotation float64 // degrees
}

// SetPosition moves the transform to (x, y).
func (t *Transform) SetPosition(x, y float64) {
	t.pos = Point{X: x, Y: y}
}

// IncPositionBy offsets the position by (dx, dy).
func (t *Transform) IncPositionBy(dx, dy float64) {
	t.pos.X += dx
	t.pos.Y += dy
}

// Position returns the current position.
func (t *Transform) Position() Point {
	return t.pos
}

// SetSize sets the horizontal and vertical scale.
func (t *Transform) SetSize(sx, sy float64) {
	t.size = Point{X: sx, Y: sy}
}

// Size returns the current scale.
func (t *Transform) Size() Point {
	return t.size
}

// SetRotationDegrees sets the counter-clockwise rotation in degrees.
func (t *Transform) SetRotationDegrees(deg float64) {
	t.rotation = deg
}

// RotationDegrees returns the rotation in degrees.
func (t *Transform) RotationDegrees() float64 {
	return t.rotation
}

// Matrix composes translate * rotate * scale. It is recomputed on every
// call.
func (t *Transform) Matrix() Matrix {
	return Translate(t.pos.X, t.pos.Y).
		Multiply(RotateDegrees(t.rotation)).
		Multiply(Scale(t.size.X, t.size.Y))
}
