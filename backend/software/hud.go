package software

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/shapeplay"
)

// HUD draws status lines over a finished frame.
type HUD struct {
	face    font.Face
	printer *message.Printer
	color   shapeplay.RGBA
	margin  int
}

// NewHUD creates a HUD using the Go Regular font at size points (72 DPI).
// Numbers are formatted for lang.
func NewHUD(size float64, lang language.Tag) (*HUD, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("software: parse hud font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("software: hud face: %w", err)
	}
	return &HUD{
		face:    face,
		printer: message.NewPrinter(lang),
		color:   shapeplay.Black,
		margin:  4,
	}, nil
}

// SetColor sets the text color.
func (h *HUD) SetColor(c shapeplay.RGBA) { h.color = c }

// Status formats the object count and deletion state.
func (h *HUD) Status(objects int, deleting bool) string {
	if deleting {
		return h.printer.Sprintf("objects: %d (deleting)", objects)
	}
	return h.printer.Sprintf("objects: %d", objects)
}

// LineHeight returns the distance between baselines in pixels.
func (h *HUD) LineHeight() int {
	return h.face.Metrics().Height.Ceil()
}

// Draw writes lines top-down from the top-left corner of dst.
func (h *HUD) Draw(dst *shapeplay.Pixmap, lines ...string) {
	m := h.face.Metrics()
	d := &font.Drawer{
		Dst:  dst.NRGBA(),
		Src:  image.NewUniform(h.color.Color()),
		Face: h.face,
	}
	y := fixed.I(h.margin) + m.Ascent
	for _, line := range lines {
		d.Dot = fixed.Point26_6{X: fixed.I(h.margin), Y: y}
		d.DrawString(line)
		y += m.Height
	}
}

// Close releases the font face.
func (h *HUD) Close() error {
	return h.face.Close()
}
