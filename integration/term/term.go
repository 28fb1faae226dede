// Package term presents shapeplay frames in a terminal with tcell.
//
// Every cell shows two vertically stacked pixels with the upper half block
// rune: the foreground color is the top pixel and the background color the
// bottom one. Frames are resampled to the cell grid with x/image/draw.
//
// Terminals report key presses but not releases. KeyTracker emulates
// held keys by releasing a key once auto-repeat stops refreshing it.
package term

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/gogpu/shapeplay"
)

const upperHalfBlock = '▀'

// Presenter draws frames and a status line into a tcell screen.
type Presenter struct {
	screen tcell.Screen
	scaler draw.Scaler
	grid   *image.NRGBA
	status tcell.Style
}

// NewPresenter returns a presenter drawing into screen. The screen must
// be initialized.
func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{
		screen: screen,
		scaler: draw.BiLinear,
		grid:   image.NewNRGBA(image.Rect(0, 0, 0, 0)),
		status: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
	}
}

// PixelSize returns the pixel resolution the screen can show: one column
// per pixel and two pixels per row.
func (p *Presenter) PixelSize() (width, height int) {
	cols, rows := p.screen.Size()
	return cols, rows * 2
}

// Present resamples frame onto the screen, writes status over the top row
// if non-empty and shows the result.
func (p *Presenter) Present(frame *shapeplay.Pixmap, status string) {
	w, h := p.PixelSize()
	if w <= 0 || h <= 0 || frame.Width() == 0 || frame.Height() == 0 {
		return
	}
	if b := p.grid.Bounds(); b.Dx() != w || b.Dy() != h {
		p.grid = image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	src := frame.NRGBA()
	if src.Bounds().Size() == p.grid.Bounds().Size() {
		draw.Copy(p.grid, image.Point{}, src, src.Bounds(), draw.Src, nil)
	} else {
		p.scaler.Scale(p.grid, p.grid.Bounds(), src, src.Bounds(), draw.Src, nil)
	}

	for y := 0; y+1 < h; y += 2 {
		for x := range w {
			style := tcell.StyleDefault.
				Foreground(cellColor(p.grid, x, y)).
				Background(cellColor(p.grid, x, y+1))
			p.screen.SetContent(x, y/2, upperHalfBlock, nil, style)
		}
	}
	if status != "" {
		for i, r := range []rune(status) {
			if i >= w {
				break
			}
			p.screen.SetContent(i, 0, r, nil, p.status)
		}
	}
	p.screen.Show()
}

func cellColor(img *image.NRGBA, x, y int) tcell.Color {
	c := img.NRGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
