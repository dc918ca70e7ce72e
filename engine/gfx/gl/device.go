package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/strata/engine/colors"
	"github.com/hubastard/strata/engine/core"
	"github.com/hubastard/strata/engine/gfx"
)

// Device issues gfx.Device calls against the current OpenGL 3.3 context.
type Device struct{}

var _ gfx.Device = Device{}

func (Device) SetClearColor(c colors.Color) { gl.ClearColor(c[0], c[1], c[2], c[3]) }
func (Device) Clear()                       { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }
func (Device) Viewport(w, h int)            { gl.Viewport(0, 0, int32(w), int32(h)) }

func (Device) CompileShader(stage gfx.ShaderStage, src string) (uint32, error) {
	switch stage {
	case gfx.StageVertex:
		return makeShader(src, gl.VERTEX_SHADER)
	case gfx.StageFragment:
		return makeShader(src, gl.FRAGMENT_SHADER)
	default:
		return 0, fmt.Errorf("unsupported shader stage %s", stage)
	}
}

func (Device) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (Device) LinkProgram(vs, fs uint32) (uint32, error) { return makeProgram(vs, fs) }

func (Device) DeleteProgram(id uint32) { gl.DeleteProgram(id) }
func (Device) UseProgram(id uint32)    { gl.UseProgram(id) }

func (Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Device) Uniform1f(loc int32, v float32)    { gl.Uniform1f(loc, v) }
func (Device) Uniform3f(loc int32, v mgl32.Vec3) { gl.Uniform3f(loc, v[0], v[1], v[2]) }
func (Device) Uniform4f(loc int32, v mgl32.Vec4) { gl.Uniform4f(loc, v[0], v[1], v[2], v[3]) }
func (Device) Uniform1i(loc int32, v int32)      { gl.Uniform1i(loc, v) }
func (Device) Uniform1ui(loc int32, v uint32)    { gl.Uniform1ui(loc, v) }

func (Device) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Device) BindVertexArray(id uint32) { gl.BindVertexArray(id) }

func (Device) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }

func (Device) CreateVertexBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return vbo
}

func (Device) VertexAttrib(index uint32, components, stride, offset int) {
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointerWithOffset(index, int32(components), gl.FLOAT, false, int32(stride), uintptr(offset))
}

func (Device) CreateIndexBuffer(idx core.Indices) uint32 {
	var ibo uint32
	gl.GenBuffers(1, &ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, idx.Len()*idx.Type().Size(), gl.Ptr(idx.Data()), gl.STATIC_DRAW)
	return ibo
}

func (Device) DeleteBuffer(id uint32) { gl.DeleteBuffers(1, &id) }

func (Device) DrawTriangles(count int, typ core.IndexType) {
	gl.DrawElements(gl.TRIANGLES, int32(count), glIndexType(typ), nil)
}

func glIndexType(t core.IndexType) uint32 {
	switch t {
	case core.IndexU8:
		return gl.UNSIGNED_BYTE
	case core.IndexU16:
		return gl.UNSIGNED_SHORT
	default:
		return gl.UNSIGNED_INT
	}
}
