// Package canvas presents shapeplay frames in a gogpu window.
//
// A Canvas holds the frame pixmap a Surface renders into and uploads it to
// a window texture through the gpucontext interfaces, so this package does
// not depend on gogpu itself:
//
//	cv := canvas.MustNew(w, h)
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = surface.BeginFrame()
//	    g.Draw(surface)
//	    _ = surface.EndFrame(cv.Pixmap())
//	    cv.MarkDirty()
//	    _ = cv.RenderTo(dc.AsTextureDrawer())
//	})
//
// Bind connects window key events to a game.Keyboard:
//
//	canvas.Bind(app.EventSource(), kb, nil)
package canvas
