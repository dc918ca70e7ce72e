package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/strata/engine/colors"
	"github.com/hubastard/strata/engine/core"
)

type ShaderStage uint8

const (
	StageVertex ShaderStage = iota + 1
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the wire-level graphics API the Renderer drives. Object ids are
// the backend's native names; the Renderer never hands them out.
type Device interface {
	SetClearColor(c colors.Color)
	Clear()
	Viewport(width, height int)

	// CompileShader returns the compiler log as the error on failure.
	CompileShader(stage ShaderStage, src string) (uint32, error)
	DeleteShader(id uint32)
	// LinkProgram links both stages and releases the stage objects whether
	// or not linking succeeds. The linker log is returned as the error.
	LinkProgram(vertex, fragment uint32) (uint32, error)
	DeleteProgram(id uint32)
	UseProgram(id uint32)

	UniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, v mgl32.Vec3)
	Uniform4f(location int32, v mgl32.Vec4)
	Uniform1i(location int32, v int32)
	Uniform1ui(location int32, v uint32)

	CreateVertexArray() uint32
	BindVertexArray(id uint32)
	DeleteVertexArray(id uint32)
	// CreateVertexBuffer uploads data into a new buffer bound to the current vertex array.
	CreateVertexBuffer(data []float32) uint32
	// VertexAttrib enables attribute index as components float32s at offset bytes.
	VertexAttrib(index uint32, components, stride, offset int)
	CreateIndexBuffer(indices core.Indices) uint32
	DeleteBuffer(id uint32)

	DrawTriangles(count int, typ core.IndexType)
}
