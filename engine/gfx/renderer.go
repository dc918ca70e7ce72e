package gfx

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/strata/engine/assets"
	"github.com/hubastard/strata/engine/colors"
	"github.com/hubastard/strata/engine/core"
)

type shader struct {
	program  uint32
	locator  string
	uniforms map[string]int32
}

type mesh struct {
	vao, vbo, ibo uint32
	count         int
	indexType     core.IndexType
}

// FrameStats counts the device work issued during one frame.
type FrameStats struct {
	DrawCalls   int
	ShaderBinds int
	MeshBinds   int
}

type Stats struct {
	Shaders   int
	Meshes    int
	LastFrame FrameStats // the frame before the latest Clear
}

// Renderer owns every shader and mesh created through it, keyed by handle.
// It caches the bound shader, the bound mesh and the clear color so that
// redundant state changes never reach the Device.
type Renderer struct {
	dev  Device
	log  *log.Logger
	load func(locator string) (assets.ShaderSource, error)

	next    uint32
	shaders map[core.ShaderHandle]*shader
	meshes  map[core.MeshHandle]*mesh

	boundShader core.ShaderHandle
	boundMesh   core.MeshHandle
	clearColor  colors.Color

	frame     FrameStats
	lastFrame FrameStats
}

var _ core.RendererBackend = (*Renderer)(nil)

type Option func(*Renderer)

func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.log = l }
}

// WithSourceLoader replaces assets.LoadShaderSource for resolving locators.
func WithSourceLoader(load func(string) (assets.ShaderSource, error)) Option {
	return func(r *Renderer) { r.load = load }
}

func New(dev Device, opts ...Option) *Renderer {
	r := &Renderer{
		dev:     dev,
		log:     core.Logger(),
		load:    assets.LoadShaderSource,
		next:    1,
		shaders: make(map[core.ShaderHandle]*shader),
		meshes:  make(map[core.MeshHandle]*mesh),
		// Matches the device's initial clear color.
		clearColor: colors.Color{0, 0, 0, 0},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Renderer) nextHandle() uint32 {
	id := r.next
	r.next++
	if r.next == 0 {
		panic("strata: renderer handle space exhausted")
	}
	return id
}

func (r *Renderer) Resize(width, height int) { r.dev.Viewport(width, height) }

func (r *Renderer) SetClearColor(c colors.Color) {
	if c == r.clearColor {
		return
	}
	r.dev.SetClearColor(c)
	r.clearColor = c
}

// Clear clears the framebuffer and starts a new frame of statistics.
func (r *Renderer) Clear() {
	r.dev.Clear()
	r.lastFrame = r.frame
	r.frame = FrameStats{}
}

func (r *Renderer) Stats() Stats {
	return Stats{Shaders: len(r.shaders), Meshes: len(r.meshes), LastFrame: r.lastFrame}
}

// --- shaders ---

func (r *Renderer) CreateShader(locator string) (core.ShaderHandle, error) {
	locator = filepath.Clean(locator)
	program, err := r.buildProgram(locator)
	if err != nil {
		return core.NoShader, err
	}
	h := core.ShaderHandle(r.nextHandle())
	r.shaders[h] = &shader{
		program:  program,
		locator:  locator,
		uniforms: make(map[string]int32),
	}
	r.log.Debug("shader created", "handle", h, "locator", locator)
	return h, nil
}

func (r *Renderer) buildProgram(locator string) (uint32, error) {
	src, err := r.load(locator)
	if err != nil {
		return 0, &ShaderError{Locator: locator, Stage: "source", Err: err}
	}
	vs, err := r.dev.CompileShader(StageVertex, src.Vertex)
	if err != nil {
		return 0, &ShaderError{Locator: locator, Stage: StageVertex.String(), Err: err}
	}
	fs, err := r.dev.CompileShader(StageFragment, src.Fragment)
	if err != nil {
		r.dev.DeleteShader(vs)
		return 0, &ShaderError{Locator: locator, Stage: StageFragment.String(), Err: err}
	}
	program, err := r.dev.LinkProgram(vs, fs)
	if err != nil {
		return 0, &ShaderError{Locator: locator, Stage: "link", Err: err}
	}
	return program, nil
}

func (r *Renderer) shader(h core.ShaderHandle, op string) *shader {
	s, ok := r.shaders[h]
	if !ok {
		panic(&LookupError{Kind: "shader", Op: op, Handle: uint32(h)})
	}
	return s
}

func (r *Renderer) BindShader(h core.ShaderHandle) {
	if h == r.boundShader && !h.IsNone() {
		return
	}
	s := r.shader(h, "bind")
	r.dev.UseProgram(s.program)
	r.boundShader = h
	r.frame.ShaderBinds++
}

// SetUniform uploads v to the named uniform of shader h, binding h first.
// Uniform locations are resolved once per shader and name.
func (r *Renderer) SetUniform(h core.ShaderHandle, name string, v core.Uniform) {
	s := r.shader(h, "set uniform on")
	loc, ok := s.uniforms[name]
	if !ok {
		loc = r.dev.UniformLocation(s.program, name)
		s.uniforms[name] = loc
		if loc < 0 {
			r.log.Debug("uniform not active", "shader", h, "name", name)
		}
	}

	r.BindShader(h)

	switch v := v.(type) {
	case core.UniformFloat:
		r.dev.Uniform1f(loc, float32(v))
	case core.UniformVec3:
		r.dev.Uniform3f(loc, mgl32.Vec3(v))
	case core.UniformVec4:
		r.dev.Uniform4f(loc, mgl32.Vec4(v))
	case core.UniformInt:
		r.dev.Uniform1i(loc, int32(v))
	case core.UniformUint:
		r.dev.Uniform1ui(loc, uint32(v))
	default:
		panic(fmt.Sprintf("strata: unsupported uniform value %T", v))
	}
}

func (r *Renderer) DeleteShader(h core.ShaderHandle) {
	s := r.shader(h, "delete")
	delete(r.shaders, h)
	r.dev.DeleteProgram(s.program)
	if r.boundShader == h {
		r.boundShader = core.NoShader
	}
	r.log.Debug("shader deleted", "handle", h)
}

// --- meshes ---

func (r *Renderer) CreateMesh(vertices core.Vertices, layout core.BufferLayout, indices core.Indices) (core.MeshHandle, error) {
	switch {
	case len(layout.Elements) == 0:
		return core.NoMesh, ErrEmptyLayout
	case len(vertices) == 0, indices == nil || indices.Len() == 0:
		return core.NoMesh, ErrEmptyMesh
	case len(layout.Offsets) != len(layout.Elements):
		return core.NoMesh, fmt.Errorf("%w: %d offsets for %d elements", ErrVertexLayout, len(layout.Offsets), len(layout.Elements))
	case layout.Components() == 0 || len(vertices)%layout.Components() != 0:
		return core.NoMesh, fmt.Errorf("%w: %d floats, %d per vertex", ErrVertexLayout, len(vertices), layout.Components())
	}

	m := &mesh{count: indices.Len(), indexType: indices.Type()}
	m.vao = r.dev.CreateVertexArray()
	r.dev.BindVertexArray(m.vao)
	m.vbo = r.dev.CreateVertexBuffer(vertices)
	for i, el := range layout.Elements {
		r.dev.VertexAttrib(uint32(i), el.Count(), layout.Stride, layout.Offsets[i])
	}
	m.ibo = r.dev.CreateIndexBuffer(indices)

	h := core.MeshHandle(r.nextHandle())
	r.meshes[h] = m
	// Creation left the new vertex array bound.
	r.boundMesh = h
	r.log.Debug("mesh created", "handle", h, "vertices", len(vertices)/layout.Components(), "indices", m.count)
	return h, nil
}

func (r *Renderer) mesh(h core.MeshHandle, op string) *mesh {
	m, ok := r.meshes[h]
	if !ok {
		panic(&LookupError{Kind: "mesh", Op: op, Handle: uint32(h)})
	}
	return m
}

func (r *Renderer) BindMesh(h core.MeshHandle) {
	if h == r.boundMesh && !h.IsNone() {
		return
	}
	m := r.mesh(h, "bind")
	r.dev.BindVertexArray(m.vao)
	r.boundMesh = h
	r.frame.MeshBinds++
}

func (r *Renderer) DeleteMesh(h core.MeshHandle) {
	m := r.mesh(h, "delete")
	delete(r.meshes, h)
	r.releaseMesh(m)
	if r.boundMesh == h {
		r.boundMesh = core.NoMesh
	}
	r.log.Debug("mesh deleted", "handle", h)
}

func (r *Renderer) releaseMesh(m *mesh) {
	r.dev.DeleteVertexArray(m.vao)
	r.dev.DeleteBuffer(m.vbo)
	r.dev.DeleteBuffer(m.ibo)
}

// Render binds mesh and shader and draws the mesh as a triangle list.
func (r *Renderer) Render(mh core.MeshHandle, sh core.ShaderHandle) {
	r.BindMesh(mh)
	r.BindShader(sh)
	m := r.meshes[mh]
	r.dev.DrawTriangles(m.count, m.indexType)
	r.frame.DrawCalls++
}

// Shutdown releases every remaining shader and mesh. Calling it again is a no-op.
func (r *Renderer) Shutdown() {
	for _, h := range slices.Sorted(maps.Keys(r.shaders)) {
		r.dev.DeleteProgram(r.shaders[h].program)
		delete(r.shaders, h)
	}
	for _, h := range slices.Sorted(maps.Keys(r.meshes)) {
		r.releaseMesh(r.meshes[h])
		delete(r.meshes, h)
	}
	r.boundShader, r.boundMesh = core.NoShader, core.NoMesh
}

// --- hot reload ---

// ShaderLocators lists the distinct source locators of live shaders.
func (r *Renderer) ShaderLocators() []string {
	set := make(map[string]struct{}, len(r.shaders))
	for _, s := range r.shaders {
		set[s.locator] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// ReloadSource rebuilds every shader whose locator is path or the directory
// containing path. Handles stay valid. A shader that fails to rebuild keeps
// its previous program; the failures are joined into the returned error.
func (r *Renderer) ReloadSource(path string) (int, error) {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	var (
		n    int
		errs []error
	)
	for _, h := range slices.Sorted(maps.Keys(r.shaders)) {
		s := r.shaders[h]
		if s.locator != path && s.locator != dir {
			continue
		}
		program, err := r.buildProgram(s.locator)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		old := s.program
		s.program = program
		clear(s.uniforms)
		r.dev.DeleteProgram(old)
		if r.boundShader == h {
			r.dev.UseProgram(program)
		}
		n++
	}
	return n, errors.Join(errs...)
}
