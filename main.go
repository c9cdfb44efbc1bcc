/*
Wireframe draws spinning meshes with a software rasterizer, either in a
window or headless into a PNG sequence.
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/wireframe/engine"
	"github.com/spaghettifunk/wireframe/engine/assets"
	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/platform"
	"github.com/spaghettifunk/wireframe/engine/platform/window"
	"github.com/spaghettifunk/wireframe/testbed"
)

func main() {
	var (
		configPath = flag.String("config", "", "application config file (TOML)")
		scenePath  = flag.String("scene", "", "scene file (TOML or YAML); empty draws the built-in cube")
		headless   = flag.Bool("headless", false, "render without a window")
		frames     = flag.Int("frames", 120, "frames to render in headless mode, 0 runs until quit")
		outDir     = flag.String("out", "", "write headless frames as PNG files into this directory")
		dryRun     = flag.Bool("dry-run", false, "print per entity draw counters for the first frame and exit")
	)
	flag.Parse()

	config := engine.DefaultApplicationConfig()
	if *configPath != "" {
		c, err := engine.LoadApplicationConfig(*configPath)
		if err != nil {
			core.LogFatal("failed to load config: %s", err)
		}
		config = c
	}
	if *scenePath != "" {
		config.ScenePath = *scenePath
	}
	core.SetLogLevel(config.Level())

	if *dryRun {
		if err := runDry(config); err != nil {
			core.LogFatal("dry run failed: %s", err)
		}
		return
	}

	tb, err := testbed.NewTestGame(config)
	if err != nil {
		core.LogFatal(err.Error())
	}

	var runner platform.Runner
	if *headless {
		runner = platform.NewHeadless(platform.HeadlessConfig{
			Frames:    *frames,
			TPS:       config.TargetTPS,
			OutputDir: *outDir,
			Progress:  *outDir != "",
		})
	} else {
		// Boot may still resize the window, so the size is read in Run.
		runner = window.New(platform.WindowConfig{
			Title:     config.Name,
			X:         int(config.StartPosX),
			Y:         int(config.StartPosY),
			TPS:       config.TargetTPS,
			Resizable: config.Resizable,
		})
	}

	engine, err := engine.New(tb.Game, runner)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := engine.Initialize(); err != nil {
		core.LogFatal("failed to initialize: %s", err)
	}

	// capture sigterm and other system calls here
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	// run engine
	runErr := engine.Run(ctx)
	if err := engine.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil && runErr != context.Canceled {
		core.LogFatal(runErr.Error())
	}
}

func runDry(config *engine.ApplicationConfig) error {
	scene := assets.DefaultScene()
	if config.ScenePath != "" {
		am, err := assets.NewAssetManager()
		if err != nil {
			return err
		}
		if err := am.Initialize(); err != nil {
			return err
		}
		defer am.Shutdown()

		scene, err = am.LoadScene(config.ScenePath)
		if err != nil {
			return err
		}
	}
	_, err := testbed.DryRun(scene, os.Stdout)
	return err
}
