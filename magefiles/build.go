//go:build mage

package main

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

const sandboxBin = "bin/sandbox"

// Builds the sandbox binary into bin/.
func (Build) Sandbox() error {
	_, err := executeCmd("go", withArgs("build", "-o", sandboxBin, "./cmd/sandbox"), withStream())
	return err
}

// Builds the sandbox with the profiler compiled in.
func (Build) Profile() error {
	_, err := executeCmd("go", withArgs("build", "-tags", "profile", "-o", sandboxBin, "./cmd/sandbox"), withStream())
	return err
}

// Validates the GLSL sources under assets/shaders with glslangValidator, if installed.
func (Build) Shaders() error {
	if _, err := exec.LookPath("glslangValidator"); err != nil {
		fmt.Println("glslangValidator not found, skipping shader validation")
		return nil
	}
	files, err := filepath.Glob("assets/shaders/*/*.glsl")
	if err != nil {
		return err
	}
	for _, f := range files {
		stage := "vert"
		if filepath.Base(f) == "fragment.glsl" {
			stage = "frag"
		}
		if _, err := executeCmd("glslangValidator", withArgs("-S", stage, f)); err != nil {
			return err
		}
	}
	return nil
}
