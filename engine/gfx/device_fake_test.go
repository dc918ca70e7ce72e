package gfx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/strata/engine/colors"
	"github.com/hubastard/strata/engine/core"
)

// fakeDevice hands out ids and counts calls. Sources containing "BAD"
// fail to compile; a fragment source containing "NOLINK" fails to link.
type fakeDevice struct {
	next uint32

	shaders  map[uint32]string // live stage objects -> source
	programs map[uint32]bool
	vaos     map[uint32]bool
	buffers  map[uint32]bool

	clearColors  []colors.Color
	clears       int
	viewport     [2]int
	useProgram   []uint32
	bindVAO      []uint32
	lookups      map[string]int
	uniforms     []string
	attribs      []string
	draws        []string
	uniformLocID int32

	deletedVAOs    int
	deletedBuffers int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		next:     100,
		shaders:  map[uint32]string{},
		programs: map[uint32]bool{},
		vaos:     map[uint32]bool{},
		buffers:  map[uint32]bool{},
		lookups:  map[string]int{},
	}
}

func (d *fakeDevice) id() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) SetClearColor(c colors.Color) { d.clearColors = append(d.clearColors, c) }
func (d *fakeDevice) Clear()                       { d.clears++ }
func (d *fakeDevice) Viewport(w, h int)            { d.viewport = [2]int{w, h} }

func (d *fakeDevice) CompileShader(stage ShaderStage, src string) (uint32, error) {
	if strings.Contains(src, "BAD") {
		return 0, errors.New("0:1: syntax error")
	}
	id := d.id()
	d.shaders[id] = src
	return id, nil
}

func (d *fakeDevice) DeleteShader(id uint32) { delete(d.shaders, id) }

func (d *fakeDevice) LinkProgram(vs, fs uint32) (uint32, error) {
	fsrc := d.shaders[fs]
	delete(d.shaders, vs)
	delete(d.shaders, fs)
	if strings.Contains(fsrc, "NOLINK") {
		return 0, errors.New("link failed")
	}
	id := d.id()
	d.programs[id] = true
	return id, nil
}

func (d *fakeDevice) DeleteProgram(id uint32) { delete(d.programs, id) }
func (d *fakeDevice) UseProgram(id uint32)    { d.useProgram = append(d.useProgram, id) }

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	d.lookups[name]++
	if name == "u_missing" {
		return -1
	}
	d.uniformLocID++
	return d.uniformLocID
}

func (d *fakeDevice) Uniform1f(loc int32, v float32)    { d.uniforms = append(d.uniforms, "1f") }
func (d *fakeDevice) Uniform3f(loc int32, v mgl32.Vec3) { d.uniforms = append(d.uniforms, "3f") }
func (d *fakeDevice) Uniform4f(loc int32, v mgl32.Vec4) { d.uniforms = append(d.uniforms, "4f") }
func (d *fakeDevice) Uniform1i(loc int32, v int32)      { d.uniforms = append(d.uniforms, "1i") }
func (d *fakeDevice) Uniform1ui(loc int32, v uint32)    { d.uniforms = append(d.uniforms, "1ui") }

func (d *fakeDevice) CreateVertexArray() uint32 {
	id := d.id()
	d.vaos[id] = true
	return id
}

func (d *fakeDevice) BindVertexArray(id uint32) { d.bindVAO = append(d.bindVAO, id) }
func (d *fakeDevice) DeleteVertexArray(id uint32) {
	d.deletedVAOs++
	delete(d.vaos, id)
}

func (d *fakeDevice) CreateVertexBuffer([]float32) uint32 {
	id := d.id()
	d.buffers[id] = true
	return id
}

func (d *fakeDevice) VertexAttrib(index uint32, components, stride, offset int) {
	d.attribs = append(d.attribs, fmt.Sprintf("%d/%d/%d/%d", index, components, stride, offset))
}

func (d *fakeDevice) CreateIndexBuffer(core.Indices) uint32 {
	id := d.id()
	d.buffers[id] = true
	return id
}

func (d *fakeDevice) DeleteBuffer(id uint32) {
	d.deletedBuffers++
	delete(d.buffers, id)
}

func (d *fakeDevice) DrawTriangles(count int, typ core.IndexType) {
	d.draws = append(d.draws, fmt.Sprintf("%d:%d", count, typ))
}

func (d *fakeDevice) live() int {
	return len(d.shaders) + len(d.programs) + len(d.vaos) + len(d.buffers)
}
