//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Downloads the modules and builds the wireframe binary into bin/.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("mod", "download"), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/wireframe", "."), withStream()); err != nil {
		return err
	}
	return nil
}

type Test mg.Namespace

// Runs every package test with the race detector.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
