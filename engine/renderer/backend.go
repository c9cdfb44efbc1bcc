package renderer

import (
	"image/color"

	"github.com/spaghettifunk/wireframe/engine/math"
)

// PixelDrawer is the one primitive the line rasterizer needs.
type PixelDrawer interface {
	DrawPixel(x, y int, c color.RGBA)
}

// Surface is the drawing backend DrawMesh renders into. The software canvas
// is the production implementation; Recorder captures calls for inspection.
type Surface interface {
	PixelDrawer
	DrawLine(x0, y0, x1, y1 int, c color.RGBA)
	FillTriangle(p [3]math.Vec2, c color.RGBA)
}

// colorDrawer plots every pixel of a walk in one color.
type colorDrawer struct {
	dst PixelDrawer
	c   color.RGBA
}

func (d colorDrawer) Plot(x, y int) {
	d.dst.DrawPixel(x, y, d.c)
}
