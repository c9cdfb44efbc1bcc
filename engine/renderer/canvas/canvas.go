package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
	"tinygo.org/x/drivers"

	"github.com/spaghettifunk/wireframe/engine/math"
	"github.com/spaghettifunk/wireframe/engine/renderer"
)

/**
 * @brief A CPU framebuffer the renderer draws into. It is presented by the
 * window platform and exported as PNG by the headless one.
 */
type Canvas struct {
	img  *image.RGBA
	rast *vector.Rasterizer
}

func New(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		rast: vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image. Its pixels change with every draw call.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Resize reallocates the framebuffer; the previous contents are dropped.
func (c *Canvas) Resize(width, height int) {
	if width == c.Width() && height == c.Height() {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.rast.Reset(width, height)
}

func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawPixel sets one pixel; positions outside the canvas are ignored.
func (c *Canvas) DrawPixel(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	renderer.DrawSolidLine(renderer.PlotterFunc(func(x, y int) {
		c.DrawPixel(x, y, col)
	}), x0, y0, x1, y1)
}

// FillTriangle composites an anti-aliased triangle over the canvas.
func (c *Canvas) FillTriangle(p [3]math.Vec2, col color.RGBA) {
	c.rast.Reset(c.Width(), c.Height())
	c.rast.DrawOp = draw.Over
	c.rast.MoveTo(p[0].X, p[0].Y)
	c.rast.LineTo(p[1].X, p[1].Y)
	c.rast.LineTo(p[2].X, p[2].Y)
	c.rast.ClosePath()
	c.rast.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{})
}

// The methods below make the canvas a drivers.Displayer for tinyfont.

func (c *Canvas) Size() (x, y int16) {
	return int16(c.Width()), int16(c.Height())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.DrawPixel(int(x), int(y), col)
}

func (c *Canvas) Display() error {
	return nil
}

func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(c.img.Rect)
	if r.Empty() {
		return nil
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
	return nil
}

func (c *Canvas) SetRotation(drivers.Rotation) error {
	return nil
}
