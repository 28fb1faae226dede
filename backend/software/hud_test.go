package software

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/shapeplay"
)

func TestHUDStatus(t *testing.T) {
	h, err := NewHUD(12, language.English)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	tests := []struct {
		n        int
		deleting bool
		want     string
	}{
		{0, false, "objects: 0"},
		{12, true, "objects: 12 (deleting)"},
		{1234, false, "objects: 1,234"},
	}
	for _, tt := range tests {
		if got := h.Status(tt.n, tt.deleting); got != tt.want {
			t.Errorf("Status(%d, %v) = %q, want %q", tt.n, tt.deleting, got, tt.want)
		}
	}
}

func TestHUDDraw(t *testing.T) {
	h, err := NewHUD(12, language.English)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()
	if h.LineHeight() <= 0 {
		t.Fatalf("LineHeight() = %d", h.LineHeight())
	}

	p := shapeplay.NewPixmap(120, 40)
	p.Clear(shapeplay.White)
	h.Draw(p, "objects: 3", "deleting")

	if countColor(p, shapeplay.White) == 120*40 {
		t.Fatal("Draw left the pixmap untouched")
	}
	// Nothing is drawn below the second line.
	for x := range 120 {
		if got := p.GetPixel(x, 39); got != shapeplay.White {
			t.Fatalf("pixel (%d, 39) = %v, want white", x, got)
		}
	}
}
