package engine

import (
	"github.com/spaghettifunk/wireframe/engine/assets"
	"github.com/spaghettifunk/wireframe/engine/renderer"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	// Set by the engine before FnBoot runs.
	AssetManager *assets.AssetManager
	State        interface{}
	FnBoot       Boot
	FnInitialize Initialize
	FnUpdate     Update
	FnRender     Render
	FnOnResize   OnResize
	FnShutdown   Shutdown
}

// Boot runs before any subsystem starts and may still change the
// application config.
type Boot func() error
type Initialize func() error
type Update func(deltaTime float64) error
type Render func(packet *renderer.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
