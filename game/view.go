package game

import "github.com/gogpu/shapeplay"

// drawOnly exposes only Draw of a renderable to the draw phase.
type drawOnly struct {
	r *shapeplay.Renderable
}

func (d drawOnly) Draw(dr shapeplay.Drawer, vp shapeplay.Matrix) {
	d.r.Draw(dr, vp)
}

// View is an immutable snapshot of the scene for one draw pass. Nothing
// reachable from a View can modify the game.
type View struct {
	camera   shapeplay.Camera
	clear    shapeplay.RGBA
	objects  []shapeplay.Drawable
	fixtures []shapeplay.Drawable
	cursor   shapeplay.Drawable
	deleting bool
}

// Render draws the frame: the canvas clear, the camera viewport, every
// spawned object in spawn order, the fixtures, and the cursor last.
// Call it between Surface.BeginFrame and Surface.EndFrame.
func (v View) Render(dev shapeplay.Device) {
	dev.Clear(v.clear)
	vp := v.camera.SetupViewProjection(dev)
	for _, d := range v.objects {
		d.Draw(dev, vp)
	}
	for _, d := range v.fixtures {
		d.Draw(dev, vp)
	}
	v.cursor.Draw(dev, vp)
}

// Len returns the number of spawned objects in the snapshot.
func (v View) Len() int { return len(v.objects) }

// Deleting reports whether a deletion episode was in progress.
func (v View) Deleting() bool { return v.deleting }

// Camera returns a fresh copy of the camera on every call. Changing it
// does not affect the snapshot.
func (v View) Camera() *shapeplay.Camera {
	c := v.camera
	return &c
}
