package platform

import (
	"context"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/renderer/canvas"
)

// Application is the side of the engine a platform drives.
type Application interface {
	// Frame advances and draws one frame. It returns false once the
	// application asked to quit.
	Frame() (bool, error)
	// Canvas is the framebuffer the last frame was drawn into.
	Canvas() *canvas.Canvas
	// PushKey queues a key transition for the next frame.
	PushKey(key core.KeyCode, pressed bool)
	// Resize changes the framebuffer size.
	Resize(width, height int)
}

// Runner owns the main loop: it calls Frame until the application quits,
// the context is cancelled or an error occurs.
type Runner interface {
	// Clock returns the time source frames are measured with.
	Clock() *core.Clock
	Run(ctx context.Context, app Application) error
}

/** @brief Window creation parameters. */
type WindowConfig struct {
	Title string
	X, Y  int
	// A zero size opens the window at the canvas size.
	Width     int
	Height    int
	TPS       int
	Resizable bool
}
