package platform

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/renderer/canvas"
	"github.com/spaghettifunk/wireframe/engine/renderer/metadata"
	"github.com/spaghettifunk/wireframe/engine/systems"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	// Frames to render; 0 runs until the application quits or the context
	// is cancelled.
	Frames int
	// Simulated ticks per second. Every frame advances the clock by 1/TPS.
	TPS int
	// When set, every frame is written there as a numbered PNG.
	OutputDir string
	// Show a progress bar on stderr. Only used when Frames > 0.
	Progress bool
	// PNG encoders running next to the frame loop. Defaults to the number
	// of CPUs.
	Workers int
}

/**
 * @brief Runs the application without a window on a simulated clock, so
 * the same frames come out on every run.
 */
type Headless struct {
	cfg   HeadlessConfig
	now   time.Time
	clock *core.Clock
}

func NewHeadless(cfg HeadlessConfig) *Headless {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	h := &Headless{
		cfg: cfg,
		now: time.Unix(0, 0),
	}
	h.clock = core.NewManualClock(func() time.Time { return h.now })
	return h
}

func (h *Headless) Clock() *core.Clock {
	return h.clock
}

// FrameFileName is the PNG name of frame i in a sequence.
func FrameFileName(i int) string {
	return fmt.Sprintf("frame_%05d.png", i)
}

func (h *Headless) Run(ctx context.Context, app Application) error {
	var bar *progressbar.ProgressBar
	if h.cfg.Progress && h.cfg.Frames > 0 {
		bar = progressbar.Default(int64(h.cfg.Frames), "rendering")
	}

	var writer *frameWriter
	if h.cfg.OutputDir != "" {
		if err := os.MkdirAll(h.cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		w, err := newFrameWriter(h.cfg.OutputDir, h.cfg.Workers, bar)
		if err != nil {
			return err
		}
		writer = w
	}

	err := h.loop(ctx, app, writer, bar)
	if writer != nil {
		if werr := writer.close(); err == nil {
			err = werr
		}
	}
	if err == nil && bar != nil {
		_ = bar.Finish()
	}
	return err
}

func (h *Headless) loop(ctx context.Context, app Application, writer *frameWriter, bar *progressbar.ProgressBar) error {
	step := time.Second / time.Duration(h.cfg.TPS)
	for i := 0; h.cfg.Frames == 0 || i < h.cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		h.now = h.now.Add(step)
		running, err := app.Frame()
		if err != nil {
			return err
		}

		if writer != nil {
			if err := writer.submit(i, app.Canvas().Snapshot()); err != nil {
				return err
			}
		} else if bar != nil {
			_ = bar.Add(1)
		}
		if !running {
			return nil
		}
	}
	return nil
}

// frameWriter encodes frames on a job system. The first failure is kept and
// reported by the next submit or by close.
type frameWriter struct {
	dir  string
	jobs *systems.JobSystem
	bar  *progressbar.ProgressBar

	mu  sync.Mutex
	err error
}

func newFrameWriter(dir string, workers int, bar *progressbar.ProgressBar) (*frameWriter, error) {
	jobs, err := systems.NewJobSystem(workers, workers*2)
	if err != nil {
		return nil, err
	}
	return &frameWriter{dir: dir, jobs: jobs, bar: bar}, nil
}

func (w *frameWriter) submit(i int, img *image.RGBA) error {
	if err := w.failure(); err != nil {
		return err
	}
	path := filepath.Join(w.dir, FrameFileName(i))
	return w.jobs.Submit(metadata.JobTask{
		Name: path,
		OnStart: func() error {
			return canvas.SaveImagePNG(path, img)
		},
		OnComplete: func() {
			if w.bar != nil {
				_ = w.bar.Add(1)
			}
		},
		OnFailure: func(err error) {
			w.mu.Lock()
			if w.err == nil {
				w.err = err
			}
			w.mu.Unlock()
		},
	})
}

func (w *frameWriter) failure() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// close waits for the queued frames.
func (w *frameWriter) close() error {
	if err := w.jobs.Shutdown(); err != nil {
		return err
	}
	return w.failure()
}
