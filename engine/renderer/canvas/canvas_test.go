package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"tinygo.org/x/drivers"

	"github.com/spaghettifunk/wireframe/engine/math"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestCanvasDrawPixelBounds(t *testing.T) {
	c := New(8, 4)
	c.Clear(black)
	c.DrawPixel(-1, 0, red)
	c.DrawPixel(8, 0, red)
	c.DrawPixel(0, 4, red)
	c.DrawPixel(7, 3, red)

	if got := c.Image().RGBAAt(7, 3); got != red {
		t.Fatalf("pixel (7,3) = %v, want red", got)
	}
	count := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if c.Image().RGBAAt(x, y) == red {
				count++
			}
		}
	}
	if count != 1 {
		t.Fatalf("%d red pixels, want 1", count)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := New(16, 16)
	c.Clear(black)
	c.DrawLine(0, 0, 15, 15, red)
	for i := 0; i < 16; i++ {
		if got := c.Image().RGBAAt(i, i); got != red {
			t.Fatalf("pixel (%d,%d) = %v", i, i, got)
		}
	}
	if got := c.Image().RGBAAt(15, 0); got != black {
		t.Fatalf("off-line pixel = %v", got)
	}
}

func TestCanvasFillTriangle(t *testing.T) {
	c := New(64, 64)
	c.Clear(black)
	c.FillTriangle([3]math.Vec2{{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 10, Y: 50}}, red)

	if got := c.Image().RGBAAt(15, 15); got != red {
		t.Fatalf("inside pixel = %v, want red", got)
	}
	if got := c.Image().RGBAAt(60, 60); got != black {
		t.Fatalf("outside pixel = %v, want black", got)
	}
}

func TestCanvasFillRectangleClips(t *testing.T) {
	c := New(10, 10)
	c.Clear(black)
	if err := c.FillRectangle(-5, -5, 8, 8, red); err != nil {
		t.Fatal(err)
	}
	if c.Image().RGBAAt(2, 2) != red || c.Image().RGBAAt(3, 3) != black {
		t.Fatal("FillRectangle did not clip to the canvas")
	}
}

func TestCanvasSetRotationKeepsPixels(t *testing.T) {
	c := New(4, 4)
	c.Clear(black)
	c.DrawPixel(1, 2, red)
	if err := c.SetRotation(drivers.Rotation(1)); err != nil {
		t.Fatal(err)
	}
	if x, y := c.Size(); x != 4 || y != 4 {
		t.Errorf("Size = %d,%d", x, y)
	}
	if c.Image().RGBAAt(1, 2) != red {
		t.Error("SetRotation changed the framebuffer")
	}
}

func TestHUDDrawsText(t *testing.T) {
	c := New(320, 80)
	c.Clear(black)
	hud := NewHUD()
	hud.Draw(c, Status{FPS: 60, FrameTime: 16.6, Extra: []string{"cull backface"}}.Lines())

	lit := 0
	for _, b := range c.Image().Pix {
		if b != 0 && b != 255 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("HUD drew nothing")
	}

	hud.Enabled = false
	c.Clear(black)
	hud.Draw(c, []string{"hidden"})
	if c.Image().RGBAAt(int(hudMargin)+2, int(hudMargin)+8) != black {
		t.Fatal("disabled HUD drew text")
	}
}

func TestStatusLines(t *testing.T) {
	if n := len((Status{}).Lines()); n != 2 {
		t.Fatalf("lines = %d, want 2", n)
	}
	if n := len((Status{Extra: []string{"PAUSED"}}).Lines()); n != 3 {
		t.Fatalf("lines with extra = %d, want 3", n)
	}
}

func TestCanvasPNG(t *testing.T) {
	c := New(4, 3)
	c.Clear(black)
	c.DrawPixel(1, 2, red)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("decoded size %v", b)
	}
	if r, _, _, _ := img.At(1, 2).RGBA(); r != 0xffff {
		t.Fatalf("decoded pixel red = %x", r)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	if err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Fatal("SavePNG into a missing directory should fail")
	}
}

func TestRecorderOrder(t *testing.T) {
	r := NewRecorder()
	r.FillTriangle([3]math.Vec2{}, red)
	r.DrawLine(0, 0, 1, 1, red)
	r.DrawPixel(3, 4, red)
	if len(r.Ops) != 3 || r.Ops[0].Kind != OpFill || r.Ops[2].Kind != OpPixel {
		t.Fatalf("ops = %+v", r.Ops)
	}
	if len(r.Lines()) != 1 || len(r.Fills()) != 1 || len(r.Pixels()) != 1 {
		t.Fatal("filters miscounted")
	}
	r.Reset()
	if len(r.Ops) != 0 {
		t.Fatal("Reset kept ops")
	}
}
