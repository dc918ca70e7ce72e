//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds and runs the sandbox with cmd/sandbox/sandbox.toml.
func (Run) Sandbox() error {
	mg.Deps(Build.Shaders, Build.Sandbox)
	fmt.Println("Run sandbox...")
	_, err := executeCmd(sandboxBin, withArgs("-config", "cmd/sandbox/sandbox.toml"), withStream())
	return err
}

// Runs the sandbox with debug logging and the profiler enabled.
func (Run) Profile() error {
	mg.Deps(Build.Profile)
	_, err := executeCmd(sandboxBin,
		withArgs("-config", "cmd/sandbox/sandbox.toml"),
		withEnv("STRATA_LOG_LEVEL=debug"),
		withStream())
	return err
}
