package renderer_test

import (
	"image/color"
	"testing"

	"github.com/spaghettifunk/wireframe/engine/renderer"
	"github.com/spaghettifunk/wireframe/engine/renderer/canvas"
)

func TestLinePointsSinglePoint(t *testing.T) {
	pts := renderer.LinePoints(0, 0, 0, 0, true)
	if len(pts) != 1 || pts[0] != [2]int{0, 0} {
		t.Fatalf("LinePoints(0,0,0,0) = %v, want [[0 0]]", pts)
	}
}

func TestDottedLineDashes(t *testing.T) {
	rec := canvas.NewRecorder()
	renderer.DrawDottedLine(rec, 0, 0, 19, 0, color.RGBA{R: 255, A: 255})

	if len(rec.Pixels()) != 10 {
		t.Fatalf("drew %d pixels, want 10", len(rec.Pixels()))
	}
	for i, px := range rec.Pixels() {
		if px.X != i || px.Y != 0 {
			t.Errorf("pixel %d = (%d,%d), want (%d,0)", i, px.X, px.Y, i)
		}
	}
}

func TestDottedLineCounterSpansWalk(t *testing.T) {
	pts := renderer.LinePoints(0, 0, 44, 0, true)
	// 45 visited: 0-9 on, 10-19 off, 20-29 on, 30-39 off, 40-44 on.
	if len(pts) != 25 {
		t.Fatalf("got %d points, want 25", len(pts))
	}
	if pts[10][0] != 20 || pts[20][0] != 40 {
		t.Fatalf("unexpected dash starts: %v", pts)
	}
}

func TestLinePointsEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		visited        int
	}{
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical up", 3, 7, 3, 2, 6},
		{"diagonal", 0, 0, 4, 4, 5},
		{"steep", 0, 0, 2, 9, 10},
		{"reverse", 9, 1, 0, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := renderer.LinePoints(tt.x0, tt.y0, tt.x1, tt.y1, false)
			if len(pts) != tt.visited {
				t.Fatalf("visited %d pixels, want %d", len(pts), tt.visited)
			}
			if pts[0] != [2]int{tt.x0, tt.y0} {
				t.Errorf("first = %v", pts[0])
			}
			if last := pts[len(pts)-1]; last != [2]int{tt.x1, tt.y1} {
				t.Errorf("last = %v", last)
			}
		})
	}
}

func TestDrawSolidLineMatchesUndotted(t *testing.T) {
	var got [][2]int
	renderer.DrawSolidLine(renderer.PlotterFunc(func(x, y int) {
		got = append(got, [2]int{x, y})
	}), -3, 4, 30, -8)
	want := renderer.LinePoints(-3, 4, 30, -8, false)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}
