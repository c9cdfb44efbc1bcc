package renderer

import "image/color"

/** @brief Length of one dash cycle of a dotted line, in visited pixels. */
const DotPeriod = 20

/** @brief Number of visited pixels drawn at the start of every dash cycle. */
const DotOn = 10

// Plotter receives the pixels of a line walk.
type Plotter interface {
	Plot(x, y int)
}

// PlotterFunc adapts an ordinary function to the Plotter interface.
type PlotterFunc func(x, y int)

func (f PlotterFunc) Plot(x, y int) {
	f(x, y)
}

/**
 * @brief Walks the integer line from (x0,y0) to (x1,y1) with an error term,
 * visiting both endpoints. When dotted is set only the first DotOn pixels of
 * every DotPeriod are handed to p; the counter runs over the whole walk.
 */
func walkLine(p Plotter, x0, y0, x1, y1 int, dotted bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	count := 0

	for {
		if !dotted || count%DotPeriod < DotOn {
			p.Plot(x0, y0)
		}
		count++
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > dy {
			err += dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawDottedLine draws a dashed line with the given color: ten pixels on,
// ten pixels off.
func DrawDottedLine(dst PixelDrawer, x0, y0, x1, y1 int, c color.RGBA) {
	walkLine(colorDrawer{dst: dst, c: c}, x0, y0, x1, y1, true)
}

// DrawSolidLine plots every pixel of the walk.
func DrawSolidLine(p Plotter, x0, y0, x1, y1 int) {
	walkLine(p, x0, y0, x1, y1, false)
}

// LinePoints returns the pixels a line walk visits, in order. With dotted set
// the skipped dash pixels are left out.
func LinePoints(x0, y0, x1, y1 int, dotted bool) [][2]int {
	var pts [][2]int
	walkLine(PlotterFunc(func(x, y int) {
		pts = append(pts, [2]int{x, y})
	}), x0, y0, x1, y1, dotted)
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
