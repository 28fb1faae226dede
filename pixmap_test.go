package shapeplay

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.SetPixel(2, 1, Red)

	if got := pm.GetPixel(2, 1); got != Red {
		t.Errorf("GetPixel(2,1) = %+v, want Red", got)
	}
	// Out of bounds is ignored on write and transparent on read.
	pm.SetPixel(-1, 0, Red)
	pm.SetPixel(4, 0, Red)
	if got := pm.GetPixel(10, 10); got != Transparent {
		t.Errorf("GetPixel(out of bounds) = %+v, want Transparent", got)
	}
}

func TestPixmapFillRectClips(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Black)
	pm.FillRect(image.Rect(2, 2, 10, 10), White)

	tests := []struct {
		x, y int
		want RGBA
	}{
		{0, 0, Black},
		{1, 3, Black},
		{2, 2, White},
		{3, 3, White},
	}
	for _, tt := range tests {
		if got := pm.GetPixel(tt.x, tt.y); got != tt.want {
			t.Errorf("GetPixel(%d,%d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPixmapBlendPixel(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.Clear(White)
	pm.BlendPixel(0, 0, RGBA{R: 0, G: 0, B: 0, A: 0.5})

	got := pm.GetPixel(0, 0)
	if got.A != 1 || got.R < 0.49 || got.R > 0.51 {
		t.Errorf("50%% black over white = %+v, want mid gray", got)
	}
}

func TestPixmapResize(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Resize(3, 5)
	if pm.Width() != 3 || pm.Height() != 5 || len(pm.Data()) != 3*5*4 {
		t.Errorf("Resize(3,5) = %dx%d len %d", pm.Width(), pm.Height(), len(pm.Data()))
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(Blue)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded bounds = %v, want 8x8", img.Bounds())
	}
	r, g, b, a := img.At(3, 3).RGBA()
	if r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("decoded pixel = (%d,%d,%d,%d), want opaque blue", r, g, b, a)
	}
}

func TestPixmapNRGBASharesMemory(t *testing.T) {
	p := NewPixmap(3, 2)
	img := p.NRGBA()
	img.Set(2, 1, color.NRGBA{R: 255, A: 255})
	if got := p.GetPixel(2, 1); got != Red {
		t.Errorf("GetPixel(2, 1) = %v after NRGBA().Set, want red", got)
	}
	if img.Bounds() != p.Bounds() {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), p.Bounds())
	}
}
