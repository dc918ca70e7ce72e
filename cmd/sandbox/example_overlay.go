package main

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hubastard/strata/engine/colors"
	"github.com/hubastard/strata/engine/core"
)

const coolShader = "assets/shaders/cool"

// ExampleOverlay draws two diamonds with a shared layout and index list.
// Q and E rotate them; a left click swaps the order they are drawn in.
type ExampleOverlay struct {
	core.BaseOverlay

	log      *log.Logger
	shader   core.ShaderHandle
	meshes   [2]core.MeshHandle
	start    time.Time
	rotation float32
	reversed bool
}

func NewExampleOverlay() *ExampleOverlay {
	return &ExampleOverlay{log: core.Logger().WithPrefix("example")}
}

func (o *ExampleOverlay) OnAttach(r core.Renderer, _ core.Input) error {
	layout := core.NewBufferLayout(core.ElementVec3, core.ElementVec4)
	indices := core.IndicesU8{
		0, 1, 2,
		0, 2, 3,
	}

	diamonds := [2]core.Vertices{
		{
			//  x     y    z    r    g    b    a
			0.5, 0.0, 0.0, 0.0, 0.0, 1.0, 1.0,
			0.0, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
			-0.5, 0.0, 0.0, 1.0, 0.0, 0.0, 1.0,
			0.0, -0.5, 0.0, 1.0, 1.0, 1.0, 0.0,
		},
		{
			0.25, 0.0, 0.0, 1.0, 1.0, 1.0, 1.0,
			0.0, 0.25, 0.0, 1.0, 1.0, 1.0, 1.0,
			-0.25, 0.0, 0.0, 1.0, 1.0, 1.0, 1.0,
			0.0, -0.25, 0.0, 1.0, 1.0, 1.0, 1.0,
		},
	}
	for i, verts := range diamonds {
		m, err := r.CreateMesh(verts, layout, indices)
		if err != nil {
			o.release(r)
			return err
		}
		o.meshes[i] = m
	}

	sh, err := r.CreateShader(coolShader)
	if err != nil {
		o.release(r)
		return err
	}
	o.shader = sh
	r.BindShader(sh)
	o.start = time.Now()
	return nil
}

func (o *ExampleOverlay) release(r core.Renderer) {
	for i, m := range o.meshes {
		if !m.IsNone() {
			r.DeleteMesh(m)
			o.meshes[i] = core.NoMesh
		}
	}
	if !o.shader.IsNone() {
		r.DeleteShader(o.shader)
		o.shader = core.NoShader
	}
}

func (o *ExampleOverlay) OnDetach(r core.Renderer) { o.release(r) }

func (o *ExampleOverlay) OnUpdate(dt time.Duration, in core.Input) {
	speed := float32(2 * math.Pi * dt.Seconds())
	if in.IsPressed(core.KeyE) {
		o.rotation += speed
	}
	if in.IsPressed(core.KeyQ) {
		o.rotation -= speed
	}
}

func (o *ExampleOverlay) OnRender(r core.Renderer) {
	t := time.Since(o.start).Seconds()
	r.SetClearColor(colors.RGB(
		float32(math.Tan(t)),
		float32(math.Sin(t)),
		float32(math.Cos(t)),
	).Clamp())

	r.SetUniform(o.shader, "u_rotation", core.UniformFloat(o.rotation))

	if o.reversed {
		for i := len(o.meshes) - 1; i >= 0; i-- {
			r.Render(o.meshes[i], o.shader)
		}
		return
	}
	for _, m := range o.meshes {
		r.Render(m, o.shader)
	}
}

func (o *ExampleOverlay) OnWindowResize(w, h int) {
	o.log.Info("window resized", "width", w, "height", h)
}

func (o *ExampleOverlay) OnTextWritten(c rune) bool {
	o.log.Info("text", "char", string(c))
	return false
}

func (o *ExampleOverlay) OnKeyPress(b core.Button, repeat bool) bool {
	o.log.Info("key pressed", "button", b, "repeat", repeat)
	return false
}

func (o *ExampleOverlay) OnKeyRelease(b core.Button) bool {
	o.log.Info("key released", "button", b)
	return false
}

func (o *ExampleOverlay) OnMouseMove(x, y, dx, dy int) bool {
	o.log.Debug("mouse moved", "x", x, "y", y, "dx", dx, "dy", dy)
	return false
}

func (o *ExampleOverlay) OnMouseDown(b core.Button) bool {
	if b == core.MouseLeft {
		o.reversed = !o.reversed
	}
	o.log.Info("mouse down", "button", b)
	return false
}

func (o *ExampleOverlay) OnMouseUp(b core.Button) bool {
	o.log.Info("mouse up", "button", b)
	return false
}

func (o *ExampleOverlay) OnMouseScroll(dx, dy float32) bool {
	o.log.Info("scroll", "dx", dx, "dy", dy)
	return false
}
