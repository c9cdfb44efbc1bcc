package canvas

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/spaghettifunk/wireframe/engine/renderer"
)

var _ drivers.Displayer = (*Canvas)(nil)

const hudMargin int16 = 6

/** @brief What the overlay reports about the current frame. */
type Status struct {
	FPS float64
	/** @brief Average frame time in milliseconds. */
	FrameTime float64
	Stats     renderer.Stats
	/** @brief Extra lines supplied by the game. */
	Extra []string
}

func (s Status) Lines() []string {
	lines := []string{
		fmt.Sprintf("FPS %.0f  %.2f ms", s.FPS, s.FrameTime),
		fmt.Sprintf("triangles %d  drawn %d  culled %d  dotted %d", s.Stats.Triangles, s.Stats.Drawn, s.Stats.Culled, s.Stats.Dotted),
	}
	return append(lines, s.Extra...)
}

/** @brief Draws status text in the top left corner of a display. */
type HUD struct {
	Font    tinyfont.Fonter
	Color   color.RGBA
	Enabled bool
}

func NewHUD() *HUD {
	return &HUD{
		Font:    &proggy.TinySZ8pt7b,
		Color:   color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff},
		Enabled: true,
	}
}

// Draw writes one line per entry; y is the baseline, so each line is
// offset by the font's advance.
func (h *HUD) Draw(d drivers.Displayer, lines []string) {
	if !h.Enabled {
		return
	}
	advance := int16(h.Font.GetYAdvance())
	y := hudMargin
	for _, line := range lines {
		y += advance
		tinyfont.WriteLine(d, h.Font, hudMargin, y, line, h.Color)
	}
}
