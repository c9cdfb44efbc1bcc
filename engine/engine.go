package engine

import (
	"context"
	"fmt"

	"github.com/spaghettifunk/wireframe/engine/assets"
	"github.com/spaghettifunk/wireframe/engine/containers"
	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/platform"
	"github.com/spaghettifunk/wireframe/engine/renderer"
	"github.com/spaghettifunk/wireframe/engine/renderer/canvas"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageBooting:
		return "booting"
	case EngineStageBootComplete:
		return "boot complete"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// Key transitions queued between two frames.
const keyQueueSize = 64

type keyEvent struct {
	key     core.KeyCode
	pressed bool
}

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	isSuspended  bool
	runner       platform.Runner
	assetManager *assets.AssetManager
	canvas       *canvas.Canvas
	hud          *canvas.HUD
	packet       renderer.RenderPacket
	keys         *containers.RingQueue[keyEvent]
	width        uint32
	height       uint32
	clock        *core.Clock
	metrics      *core.Metrics
	lastTime     float64
	frame        uint64
	stats        renderer.Stats
}

func New(g *Game, runner platform.Runner) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}

	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		runner:       runner,
		assetManager: am,
		hud:          canvas.NewHUD(),
		keys:         containers.NewRingQueue[keyEvent](keyQueueSize),
		clock:        runner.Clock(),
		metrics:      core.NewMetrics(),
		isRunning:    true,
		isSuspended:  false,
		lastTime:     0,
	}, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("engine cannot be initialized while %s", e.currentStage)
	}

	e.currentStage = EngineStageBooting
	// The game may load assets during boot.
	if err := e.assetManager.Initialize(); err != nil {
		return err
	}
	e.gameInstance.AssetManager = e.assetManager
	if e.gameInstance.FnBoot != nil {
		if err := e.gameInstance.FnBoot(); err != nil {
			return err
		}
	}
	e.currentStage = EngineStageBootComplete

	config := e.gameInstance.ApplicationConfig
	if err := config.Validate(); err != nil {
		return err
	}
	core.SetLogLevel(config.Level())
	e.width = config.StartWidth
	e.height = config.StartHeight
	e.hud.Enabled = config.ShowHUD

	e.currentStage = EngineStageInitializing

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)

	// initialize subsystems
	e.canvas = canvas.New(int(e.width), int(e.height))

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// Run hands the main loop to the platform runner and blocks until it
// returns.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine cannot run while %s", e.currentStage)
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	return e.runner.Run(ctx, e)
}

/**
 * @brief Advances the application by one frame: queued keys are fed to the
 * input system, the game updates and fills the render packet, and the
 * packet is drawn into the canvas with the status overlay on top.
 * @return false once a quit was requested, including during this frame.
 */
func (e *Engine) Frame() (bool, error) {
	if !e.isRunning {
		return false, nil
	}

	e.keys.Drain(func(k keyEvent) {
		if err := core.InputProcessKey(k.key, k.pressed); err != nil {
			core.LogWarn("dropping key %s: %s", k.key, err)
		}
	})

	// Update clock and get delta time.
	e.clock.Update()
	var currentTime float64 = e.clock.Elapsed()
	var delta float64 = currentTime - e.lastTime
	e.lastTime = currentTime

	if e.isSuspended || !e.isRunning {
		core.InputUpdate(delta)
		return e.isRunning, nil
	}

	if err := e.gameInstance.FnUpdate(delta); err != nil {
		core.LogError("Game update failed, shutting down.")
		e.isRunning = false
		return false, err
	}

	e.packet.Reset(delta)
	if err := e.gameInstance.FnRender(&e.packet, delta); err != nil {
		core.LogError("Game render failed, shutting down.")
		e.isRunning = false
		return false, err
	}

	e.canvas.Clear(e.packet.Background)
	e.stats = renderer.DrawFrame(e.canvas, &e.packet)

	fps, frameTime := e.metrics.Frame()
	e.hud.Draw(e.canvas, canvas.Status{
		FPS:       fps,
		FrameTime: frameTime,
		Stats:     e.stats,
		Extra:     e.packet.Overlay,
	}.Lines())

	// NOTE: Input update/state copying should always be handled
	// after any input should be recorded; I.E. before this line.
	// As a safety, input is the last thing to be updated before
	// this frame ends.
	core.InputUpdate(delta)
	e.metrics.Update(delta)
	e.frame++

	return e.isRunning, nil
}

func (e *Engine) Canvas() *canvas.Canvas {
	return e.canvas
}

// PushKey queues a key transition; it reaches the input system at the start
// of the next frame. Transitions beyond the queue size are dropped.
func (e *Engine) PushKey(key core.KeyCode, pressed bool) {
	if err := e.keys.Enqueue(keyEvent{key: key, pressed: pressed}); err != nil {
		core.LogWarn("key queue: %s", err)
	}
}

func (e *Engine) Resize(width, height int) {
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: &core.SystemEvent{
			WindowWidth:  uint32(max(width, 0)),
			WindowHeight: uint32(max(height, 0)),
		},
	})
}

// Stats returns the renderer counters of the last drawn frame.
func (e *Engine) Stats() renderer.Stats {
	return e.stats
}

// FrameCount returns the number of frames drawn so far.
func (e *Engine) FrameCount() uint64 {
	return e.frame
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown || e.currentStage == EngineStageUninitialized {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError("game shutdown failed: %s", err)
		}
	}
	if err := e.assetManager.Shutdown(); err != nil {
		core.LogWarn(err.Error())
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	return nil
}

// GetFramebufferSize returns the width and height (in this order)
// of the application framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext) {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		{
			core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
			e.isRunning = false
		}
	}
}

func (e *Engine) onKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	if context.Type == core.EVENT_CODE_KEY_PRESSED {
		if ke.KeyCode == core.KEY_ESCAPE {
			// NOTE: Technically firing an event to itself, but there may be other listeners.
			core.EventFire(core.EventContext{
				Type: core.EVENT_CODE_APPLICATION_QUIT,
			})
			return
		}
		core.LogDebug("'%s' key pressed in window.", ke.KeyCode)
	} else if context.Type == core.EVENT_CODE_KEY_RELEASED {
		core.LogDebug("'%s' key released in window.", ke.KeyCode)
	}
}

func (e *Engine) onResized(context core.EventContext) {
	if context.Type != core.EVENT_CODE_RESIZED {
		return
	}
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	width := se.WindowWidth
	height := se.WindowHeight

	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return
	}
	e.width = width
	e.height = height

	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	e.canvas.Resize(int(width), int(height))
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
}
