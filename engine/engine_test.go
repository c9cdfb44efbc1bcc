package engine

import (
	"context"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/math"
	"github.com/spaghettifunk/wireframe/engine/platform"
	"github.com/spaghettifunk/wireframe/engine/renderer"
	"github.com/spaghettifunk/wireframe/engine/renderer/components"
	"github.com/spaghettifunk/wireframe/engine/renderer/metadata"
)

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeGame struct {
	*Game
	updates  int
	renders  int
	resizes  [][2]uint32
	pressed  []core.KeyCode
	quitAt   int
	shutdown bool
}

func newFakeGame() *fakeGame {
	cfg := DefaultApplicationConfig()
	cfg.StartWidth = 320
	cfg.StartHeight = 200
	cfg.LogLevel = "error"

	f := &fakeGame{Game: &Game{ApplicationConfig: cfg}}
	cube := metadata.NewCubeMesh()
	cam := components.NewCamera(320, 200, components.DEFAULT_CAMERA_FOV)
	transform := math.TransformFromPosition(math.NewVec3(0, 0, 3))

	f.FnBoot = func() error { return nil }
	f.FnInitialize = func() error {
		core.EventRegister(core.EVENT_CODE_KEY_PRESSED, func(ctx core.EventContext) {
			f.pressed = append(f.pressed, ctx.Data.(*core.KeyEvent).KeyCode)
		})
		return nil
	}
	f.FnUpdate = func(dt float64) error {
		f.updates++
		if f.quitAt > 0 && f.updates == f.quitAt {
			core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
		}
		return nil
	}
	f.FnRender = func(packet *renderer.RenderPacket, dt float64) error {
		f.renders++
		packet.Camera = cam
		packet.Push(cube, transform, renderer.DrawOptions{Cull: renderer.CullBackface, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}})
		return nil
	}
	f.FnOnResize = func(w, h uint32) error {
		f.resizes = append(f.resizes, [2]uint32{w, h})
		return nil
	}
	f.FnShutdown = func() error {
		f.shutdown = true
		return nil
	}
	return f
}

func newTestEngine(t *testing.T, g *fakeGame, cfg platform.HeadlessConfig) *Engine {
	t.Helper()
	e, err := New(g.Game, platform.NewHeadless(cfg))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(func() { _ = e.Shutdown() })
	return e
}

func TestEngineRunsFrames(t *testing.T) {
	g := newFakeGame()
	e := newTestEngine(t, g, platform.HeadlessConfig{Frames: 5})

	if len(g.resizes) != 1 || g.resizes[0] != [2]uint32{320, 200} {
		t.Fatalf("initial resize = %v", g.resizes)
	}
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.updates != 5 || g.renders != 5 {
		t.Errorf("updates=%d renders=%d, want 5", g.updates, g.renders)
	}
	if e.FrameCount() != 5 {
		t.Errorf("FrameCount = %d", e.FrameCount())
	}
	if s := e.Stats(); s.Triangles != 12 || s.Drawn != 2 || s.Culled != 10 {
		t.Errorf("stats = %+v", s)
	}
}

func TestEngineQuitEvent(t *testing.T) {
	g := newFakeGame()
	g.quitAt = 3
	e := newTestEngine(t, g, platform.HeadlessConfig{})

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.updates != 3 {
		t.Errorf("updates = %d, want 3", g.updates)
	}
	if err := e.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if !g.shutdown {
		t.Error("game shutdown hook not called")
	}
}

func TestEngineKeysReachGame(t *testing.T) {
	g := newFakeGame()
	e := newTestEngine(t, g, platform.HeadlessConfig{})

	e.PushKey(core.KEY_A, true)
	e.PushKey(core.KEY_A, false)
	e.PushKey(core.KEY_ESCAPE, true)

	running, err := e.Frame()
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if running {
		t.Error("escape should stop the engine")
	}
	if len(g.pressed) != 2 || g.pressed[0] != core.KEY_A || g.pressed[1] != core.KEY_ESCAPE {
		t.Errorf("pressed = %v", g.pressed)
	}
}

func TestEngineResize(t *testing.T) {
	g := newFakeGame()
	e := newTestEngine(t, g, platform.HeadlessConfig{})

	e.Resize(640, 480)
	if w, h := e.GetFramebufferSize(); w != 640 || h != 480 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if e.Canvas().Width() != 640 || e.Canvas().Height() != 480 {
		t.Errorf("canvas = %dx%d", e.Canvas().Width(), e.Canvas().Height())
	}

	e.Resize(0, 0)
	if _, err := e.Frame(); err != nil {
		t.Fatal(err)
	}
	if g.updates != 0 {
		t.Errorf("suspended engine updated %d times", g.updates)
	}

	e.Resize(640, 480)
	if _, err := e.Frame(); err != nil {
		t.Fatal(err)
	}
	if g.updates != 1 {
		t.Errorf("updates after restore = %d", g.updates)
	}
	if len(g.resizes) != 3 {
		t.Errorf("resizes = %v", g.resizes)
	}
}

func TestEngineWritesFrames(t *testing.T) {
	dir := t.TempDir()
	g := newFakeGame()
	e := newTestEngine(t, g, platform.HeadlessConfig{Frames: 2, OutputDir: dir})

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := os.Stat(filepath.Join(dir, platform.FrameFileName(i))); err != nil {
			t.Errorf("frame %d: %v", i, err)
		}
	}
}

func TestEngineRunCancelled(t *testing.T) {
	g := newFakeGame()
	e := newTestEngine(t, g, platform.HeadlessConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := e.Run(ctx); err != context.Canceled {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}

func TestEngineInitializeTwice(t *testing.T) {
	g := newFakeGame()
	e := newTestEngine(t, g, platform.HeadlessConfig{})
	if err := e.Initialize(); err == nil {
		t.Fatal("second Initialize should fail")
	}
}

func TestLoadApplicationConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	cfg, err := LoadApplicationConfig(write("ok.toml", "name = \"demo\"\nstart_width = 640\nshow_hud = false\n"))
	if err != nil {
		t.Fatalf("LoadApplicationConfig: %v", err)
	}
	if cfg.Name != "demo" || cfg.StartWidth != 640 || cfg.StartHeight != 720 || cfg.ShowHUD {
		t.Errorf("cfg = %+v", cfg)
	}

	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "colour = 1\n"},
		{"zero width", "start_width = 0\n"},
		{"bad tps", "target_tps = -1\n"},
		{"bad level", "log_level = \"loud\"\n"},
		{"syntax", "name = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadApplicationConfig(write(tt.name+".toml", tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadApplicationConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}
