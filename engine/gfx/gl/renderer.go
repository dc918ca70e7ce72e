package glbackend

import (
	"errors"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/strata/engine/core"
	"github.com/hubastard/strata/engine/gfx"
)

// NewRenderer builds the OpenGL renderer. The window must already have made
// its context current and loaded the GL function pointers.
func NewRenderer(win core.Window) (core.RendererBackend, error) {
	if win == nil {
		return nil, errors.New("glbackend: nil window")
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	return gfx.New(Device{}, gfx.WithLogger(core.Logger().WithPrefix("gl"))), nil
}
