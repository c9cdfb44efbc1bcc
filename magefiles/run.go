//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens the demo window. SCENE selects a scene file.
func (Run) Demo() error {
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs(runArgs()...), withStream()); err != nil {
		return err
	}
	return nil
}

// Renders 120 frames without a window into out/. SCENE selects a scene file.
func (Run) Headless() error {
	if err := os.MkdirAll("out", 0o755); err != nil {
		return err
	}
	fmt.Println("Run headless...")
	args := append(runArgs(), "-headless", "-frames", "120", "-out", "out")
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}

func runArgs() []string {
	args := []string{"run", "."}
	if scene := os.Getenv("SCENE"); scene != "" {
		args = append(args, "-scene", scene)
	}
	return args
}
