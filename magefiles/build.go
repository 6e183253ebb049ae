//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles the testbed binary into bin/kiln.
func (Build) Engine() error {
	// glfw and go-gl need cgo.
	_, err := executeCmd("go", withArgs("build", "-o", "bin/kiln", "."), withEnv("CGO_ENABLED=1"), withStream())
	return err
}

type Test mg.Namespace

// Runs every package test.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the tests with the race detector, mostly for the schedule executor.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withDir("engine"), withEnv("CGO_ENABLED=1"), withStream())
	return err
}

type Lint mg.Namespace

func (Lint) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
