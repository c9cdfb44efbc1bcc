package testbed

import (
	"fmt"

	"github.com/spaghettifunk/wireframe/engine"
	"github.com/spaghettifunk/wireframe/engine/assets"
	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/renderer"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	scene *assets.Scene

	width  uint32
	height uint32

	paused bool
	// Flip the per entity back edge and fill settings.
	backEdges bool
	fill      bool
	// When set, cull replaces every entity's cull mode.
	cullOverride bool
	cull         renderer.CullMode

	reloadPending bool
	reloads       int
}

func NewTestGame(config *engine.ApplicationConfig) (*TestGame, error) {
	if config == nil {
		config = engine.DefaultApplicationConfig()
	}
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &gameState{},
		},
	}

	tg.FnBoot = tg.Boot
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) Boot() error {
	core.LogInfo("booting testbed...")

	state := g.State.(*gameState)
	config := g.ApplicationConfig

	if config.ScenePath == "" {
		state.scene = assets.DefaultScene()
		return nil
	}

	scene, err := g.AssetManager.LoadScene(config.ScenePath)
	if err != nil {
		core.LogError("failed to load scene %s", config.ScenePath)
		return err
	}
	state.scene = scene

	// The scene camera decides the window size.
	config.StartWidth = uint32(scene.Camera.Width)
	config.StartHeight = uint32(scene.Camera.Height)
	core.LogInfo("loaded scene '%s' with %d entities", scene.Name, len(scene.Entities))
	return nil
}

func (g *TestGame) Initialize() error {
	core.LogDebug("initializing testbed...")

	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, g.gameOnKey)
	core.EventRegister(core.EVENT_CODE_ASSET_CHANGED, g.gameOnEvent)

	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)

	// Changed files fire EVENT_CODE_ASSET_CHANGED from here.
	g.AssetManager.Poll()
	if state.reloadPending {
		state.reloadPending = false
		g.reloadScene()
	}

	if state.paused {
		return nil
	}
	state.scene.Update(deltaTime)
	return nil
}

func (g *TestGame) Render(packet *renderer.RenderPacket, deltaTime float64) error {
	state := g.State.(*gameState)

	packet.Camera = state.scene.Camera
	packet.Background = state.scene.Background
	for _, e := range state.scene.Entities {
		packet.Push(e.Mesh, e.Transform, g.drawOptions(e.Options))
	}

	cull := "per entity"
	if state.cullOverride {
		cull = state.cull.String()
	}
	packet.Overlay = append(packet.Overlay,
		fmt.Sprintf("Cull: %s  Back edges: %s  Fill: %s", cull, onOff(state.backEdges), onOff(state.fill)),
	)
	if state.paused {
		packet.Overlay = append(packet.Overlay, "Paused")
	}
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)

	state.width = width
	state.height = height
	state.scene.Camera.SetSize(int(width), int(height))

	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("shutting down testbed...")
	return nil
}

// drawOptions applies the keyboard toggles to an entity's settings.
func (g *TestGame) drawOptions(opts renderer.DrawOptions) renderer.DrawOptions {
	state := g.State.(*gameState)
	if state.backEdges {
		opts.BackEdges = !opts.BackEdges
	}
	if state.fill {
		opts.Fill = !opts.Fill
	}
	if state.cullOverride {
		opts.Cull = state.cull
	}
	return opts
}

// reloadScene swaps in the scene from disk. On failure the current scene
// stays in place.
func (g *TestGame) reloadScene() {
	state := g.State.(*gameState)
	if state.scene.Path == "" {
		return
	}

	scene, err := g.AssetManager.LoadScene(state.scene.Path)
	if err != nil {
		core.LogError("scene reload failed, keeping the previous one: %s", err)
		return
	}
	if state.width > 0 && state.height > 0 {
		scene.Camera.SetSize(int(state.width), int(state.height))
	}
	state.scene = scene
	state.reloads++
	core.LogInfo("reloaded scene '%s'", scene.Name)
}

func (g *TestGame) gameOnEvent(context core.EventContext) {
	state := g.State.(*gameState)
	switch context.Type {
	case core.EVENT_CODE_ASSET_CHANGED:
		{
			core.LogDebug("asset changed: %v", context.Data)
			state.reloadPending = true
		}
	}
}

func (g *TestGame) gameOnKey(context core.EventContext) {
	state := g.State.(*gameState)
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return
	}

	switch ke.KeyCode {
	case core.KEY_Q:
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
	case core.KEY_K:
		state.backEdges = !state.backEdges
		core.LogDebug("back edges toggled: %s", onOff(state.backEdges))
	case core.KEY_P:
		state.paused = !state.paused
	case core.KEY_F:
		state.fill = !state.fill
		core.LogDebug("fill toggled: %s", onOff(state.fill))
	case core.KEY_C:
		if !state.cullOverride {
			state.cullOverride = true
			state.cull = g.firstCullMode()
		}
		state.cull = state.cull.Next()
		core.LogDebug("cull mode: %s", state.cull)
	}
}

func (g *TestGame) firstCullMode() renderer.CullMode {
	state := g.State.(*gameState)
	if len(state.scene.Entities) == 0 {
		return renderer.CullBackface
	}
	return state.scene.Entities[0].Options.Cull
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
