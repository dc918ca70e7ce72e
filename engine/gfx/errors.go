package gfx

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyLayout  = errors.New("mesh layout has no elements")
	ErrEmptyMesh    = errors.New("mesh has no vertices or indices")
	ErrVertexLayout = errors.New("vertex data does not match layout")
)

// ShaderError reports a failure to build a shader program. Stage is
// "source", "vertex", "fragment" or "link"; Err carries the loader error
// or the compiler/linker output.
type ShaderError struct {
	Locator string
	Stage   string
	Err     error
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s shader %q failed: %v", e.Stage, e.Locator, e.Err)
}

func (e *ShaderError) Unwrap() error { return e.Err }

// LookupError is the panic value raised when a handle does not name a live
// resource. It usually means a double delete or use after delete.
type LookupError struct {
	Kind   string // "shader" or "mesh"
	Op     string
	Handle uint32
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("strata: %s %s: unknown handle %d", e.Op, e.Kind, e.Handle)
}
