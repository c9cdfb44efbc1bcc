package window

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/platform"
)

/**
 * @brief Presents the application's canvas in a desktop window and feeds
 * keyboard input back into it. Run blocks until the window closes.
 */
type Window struct {
	cfg   platform.WindowConfig
	clock *core.Clock
}

func New(cfg platform.WindowConfig) *Window {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	return &Window{
		cfg:   cfg,
		clock: core.NewClock(),
	}
}

func (w *Window) Clock() *core.Clock {
	return w.clock
}

func (w *Window) Run(ctx context.Context, app platform.Application) error {
	ebiten.SetWindowTitle(w.cfg.Title)
	width, height := w.cfg.Width, w.cfg.Height
	if width <= 0 || height <= 0 {
		width, height = app.Canvas().Width(), app.Canvas().Height()
	}
	ebiten.SetWindowSize(width, height)
	if w.cfg.X != 0 || w.cfg.Y != 0 {
		ebiten.SetWindowPosition(w.cfg.X, w.cfg.Y)
	}
	if w.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(w.cfg.TPS)

	g := &hostGame{app: app}
	stop := context.AfterFunc(ctx, func() { g.cancelled.Store(true) })
	defer stop()

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	app       platform.Application
	fbImg     *ebiten.Image
	cancelled atomic.Bool
}

func (g *hostGame) Update() error {
	if g.cancelled.Load() {
		return ebiten.Termination
	}
	pollKeys(g.app)

	running, err := g.app.Frame()
	if err != nil {
		return err
	}
	if !running {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	img := g.app.Canvas().Image()
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}
	g.fbImg.WritePixels(img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout keeps one canvas pixel per window pixel; a resized window resizes
// the canvas. A minimized window reports a zero size and keeps the old one.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	c := g.app.Canvas()
	if outsideWidth != c.Width() || outsideHeight != c.Height() {
		g.app.Resize(outsideWidth, outsideHeight)
	}
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return max(c.Width(), 1), max(c.Height(), 1)
	}
	return outsideWidth, outsideHeight
}
