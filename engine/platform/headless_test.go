package platform

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/renderer/canvas"
)

type countingApp struct {
	clock  *core.Clock
	canvas *canvas.Canvas
	frames int
	quitAt int
	err    error
	times  []float64
}

func (a *countingApp) Frame() (bool, error) {
	a.frames++
	a.clock.Update()
	a.times = append(a.times, a.clock.Elapsed())
	a.canvas.Clear(color.RGBA{R: uint8(a.frames), A: 0xff})
	if a.err != nil {
		return false, a.err
	}
	return a.quitAt == 0 || a.frames < a.quitAt, nil
}

func (a *countingApp) Canvas() *canvas.Canvas     { return a.canvas }
func (a *countingApp) PushKey(core.KeyCode, bool) {}
func (a *countingApp) Resize(width, height int)   { a.canvas.Resize(width, height) }

func newCountingApp(h *Headless) *countingApp {
	h.Clock().Start()
	return &countingApp{clock: h.Clock(), canvas: canvas.New(8, 8)}
}

func TestHeadlessFixedStep(t *testing.T) {
	h := NewHeadless(HeadlessConfig{Frames: 4, TPS: 50})
	app := newCountingApp(h)

	if err := h.Run(context.Background(), app); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if app.frames != 4 {
		t.Fatalf("frames = %d", app.frames)
	}
	for i, got := range app.times {
		want := float64(i+1) * 0.02
		if d := got - want; d > 1e-9 || d < -1e-9 {
			t.Errorf("frame %d at %v, want %v", i, got, want)
		}
	}
}

func TestHeadlessStopsOnQuit(t *testing.T) {
	h := NewHeadless(HeadlessConfig{})
	app := newCountingApp(h)
	app.quitAt = 3

	if err := h.Run(context.Background(), app); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if app.frames != 3 {
		t.Errorf("frames = %d, want 3", app.frames)
	}
}

func TestHeadlessFrameError(t *testing.T) {
	h := NewHeadless(HeadlessConfig{Frames: 10})
	app := newCountingApp(h)
	app.err = core.ErrQuit

	if err := h.Run(context.Background(), app); !errors.Is(err, core.ErrQuit) {
		t.Fatalf("Run = %v", err)
	}
}

func TestHeadlessCancelled(t *testing.T) {
	h := NewHeadless(HeadlessConfig{})
	app := newCountingApp(h)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := h.Run(ctx, app); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v", err)
	}
	if app.frames != 0 {
		t.Errorf("frames = %d", app.frames)
	}
}

func TestHeadlessWritesPNGSequence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	h := NewHeadless(HeadlessConfig{Frames: 5, OutputDir: dir, Workers: 2})
	app := newCountingApp(h)

	if err := h.Run(context.Background(), app); err != nil {
		t.Fatalf("Run: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 {
		t.Fatalf("wrote %d files", len(entries))
	}
	for i := 0; i < 5; i++ {
		if entries[i].Name() != FrameFileName(i) {
			t.Errorf("file %d = %s", i, entries[i].Name())
		}
	}
}

func TestHeadlessOutputDirIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taken")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	h := NewHeadless(HeadlessConfig{Frames: 1, OutputDir: path})
	if err := h.Run(context.Background(), newCountingApp(h)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestFrameFileName(t *testing.T) {
	if got := FrameFileName(42); got != "frame_00042.png" {
		t.Errorf("FrameFileName = %s", got)
	}
}
