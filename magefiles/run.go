//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the testbed with the sample configuration.
func (Run) Engine() error {
	mg.Deps(Build.Engine)
	fmt.Println("Run engine...")
	if _, err := executeCmd("bin/kiln", withArgs("-config", "kiln.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the testbed with CPU profiling enabled.
func (Run) Profile() error {
	mg.Deps(Build.Engine)
	_, err := executeCmd("bin/kiln", withArgs("-config", "kiln.toml", "-profile", "cpu"), withStream())
	return err
}
