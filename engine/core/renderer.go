package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/strata/engine/colors"
)

// Renderer is the handle-addressed resource and draw surface handed to
// overlays. Handles are re-resolved on every call; no renderer-owned object
// ever crosses this boundary.
//
// Methods taking a handle panic when the handle is not live: binding,
// drawing with or deleting an unknown resource is a programming error.
type Renderer interface {
	Clear()
	SetClearColor(c colors.Color)

	// CreateShader compiles the program found at locator: either a directory
	// holding vertex.glsl and fragment.glsl, or a single file split by
	// "#type vertex" / "#type fragment" marker lines.
	CreateShader(locator string) (ShaderHandle, error)
	BindShader(h ShaderHandle)
	DeleteShader(h ShaderHandle)
	SetUniform(h ShaderHandle, name string, v Uniform)

	CreateMesh(vertices Vertices, layout BufferLayout, indices Indices) (MeshHandle, error)
	BindMesh(h MeshHandle)
	DeleteMesh(h MeshHandle)

	// Render draws mesh as a triangle list using shader.
	Render(mesh MeshHandle, shader ShaderHandle)
}

// RendererBackend is the renderer as owned by the Engine: the overlay-facing
// surface plus viewport and teardown control.
type RendererBackend interface {
	Renderer
	Resize(width, height int)
	// Shutdown releases every remaining GPU resource.
	Shutdown()
}

// Uniform is a value uploadable to a shader uniform. The set of variants is
// closed: UniformFloat, UniformVec3, UniformVec4, UniformInt, UniformUint.
type Uniform interface{ isUniform() }

type (
	UniformFloat float32
	UniformVec3  mgl32.Vec3
	UniformVec4  mgl32.Vec4
	UniformInt   int32
	UniformUint  uint32
)

func (UniformFloat) isUniform() {}
func (UniformVec3) isUniform()  {}
func (UniformVec4) isUniform()  {}
func (UniformInt) isUniform()   {}
func (UniformUint) isUniform()  {}

// Vertices is interleaved vertex data, laid out as described by a BufferLayout.
type Vertices []float32

// BufferElement is one vertex attribute of a BufferLayout. Every element is
// made of 32-bit floats.
type BufferElement uint8

const (
	ElementFloat BufferElement = iota + 1
	ElementVec2
	ElementVec3
	ElementVec4
)

// Count is the number of float components of the element.
func (e BufferElement) Count() int {
	switch e {
	case ElementFloat:
		return 1
	case ElementVec2:
		return 2
	case ElementVec3:
		return 3
	case ElementVec4:
		return 4
	default:
		return 0
	}
}

// Size is the element's size in bytes.
func (e BufferElement) Size() int { return e.Count() * 4 }

// BufferLayout describes interleaved vertex attributes: one attribute per
// element, offsets accumulated in order.
type BufferLayout struct {
	Elements []BufferElement
	Offsets  []int // bytes
	Stride   int   // bytes
}

func NewBufferLayout(elements ...BufferElement) BufferLayout {
	l := BufferLayout{
		Elements: append([]BufferElement(nil), elements...),
		Offsets:  make([]int, len(elements)),
	}
	for i, e := range elements {
		l.Offsets[i] = l.Stride
		l.Stride += e.Size()
	}
	return l
}

// Components is the number of floats per vertex.
func (l BufferLayout) Components() int { return l.Stride / 4 }

// IndexType is the width of one index element.
type IndexType uint8

const (
	IndexU8 IndexType = iota + 1
	IndexU16
	IndexU32
)

// Size in bytes of one index.
func (t IndexType) Size() int {
	switch t {
	case IndexU8:
		return 1
	case IndexU16:
		return 2
	case IndexU32:
		return 4
	default:
		return 0
	}
}

// Indices is an index buffer: IndicesU8, IndicesU16 or IndicesU32.
type Indices interface {
	Len() int
	Type() IndexType
	// Data returns the backing slice for upload.
	Data() any
}

type (
	IndicesU8  []uint8
	IndicesU16 []uint16
	IndicesU32 []uint32
)

func (s IndicesU8) Len() int       { return len(s) }
func (IndicesU8) Type() IndexType  { return IndexU8 }
func (s IndicesU8) Data() any      { return []uint8(s) }
func (s IndicesU16) Len() int      { return len(s) }
func (IndicesU16) Type() IndexType { return IndexU16 }
func (s IndicesU16) Data() any     { return []uint16(s) }
func (s IndicesU32) Len() int      { return len(s) }
func (IndicesU32) Type() IndexType { return IndexU32 }
func (s IndicesU32) Data() any     { return []uint32(s) }
