package core

// Input is the read-only view of the current input state handed to
// overlays. It reflects every event submitted so far this frame.
type Input interface {
	IsPressed(b Button) bool
	MousePosition() (x, y int)
}

// InputState records live button and cursor state. It is owned by the
// Engine and written only by the input overlay pinned at the front of the
// overlay stack.
type InputState struct {
	pressed        [buttonCount]bool
	mouseX, mouseY int
}

func NewInputState() *InputState { return &InputState{} }

func (in *InputState) IsPressed(b Button) bool {
	if b >= buttonCount {
		return false
	}
	return in.pressed[b]
}

func (in *InputState) MousePosition() (int, int) { return in.mouseX, in.mouseY }

func (in *InputState) set(b Button, down bool) {
	if b < buttonCount {
		in.pressed[b] = down
	}
}

// inputOverlay mirrors events into an InputState. It never consumes an
// event, so ordinary overlays still see everything it records.
type inputOverlay struct {
	BaseOverlay
	state *InputState
}

func (o *inputOverlay) OnKeyPress(b Button, _ bool) bool {
	o.state.set(b, true)
	return false
}

func (o *inputOverlay) OnKeyRelease(b Button) bool {
	o.state.set(b, false)
	return false
}

func (o *inputOverlay) OnMouseDown(b Button) bool {
	o.state.set(b, true)
	return false
}

func (o *inputOverlay) OnMouseUp(b Button) bool {
	o.state.set(b, false)
	return false
}

func (o *inputOverlay) OnMouseMove(x, y, _, _ int) bool {
	o.state.mouseX, o.state.mouseY = x, y
	return false
}

// CursorTracker builds MouseMoveEvents from absolute cursor positions for
// window adapters. Sync reloads the previous position from the shared
// input state; moves reported before the next Sync chain from each other,
// since the input state only changes when the events are submitted.
type CursorTracker struct {
	in   Input
	x, y int
}

func NewCursorTracker(in Input) *CursorTracker {
	c := &CursorTracker{in: in}
	c.Sync()
	return c
}

func (c *CursorTracker) Sync() {
	if c.in != nil {
		c.x, c.y = c.in.MousePosition()
	}
}

func (c *CursorTracker) Move(x, y int) *MouseMoveEvent {
	ev := &MouseMoveEvent{X: x, Y: y, DX: x - c.x, DY: y - c.y}
	c.x, c.y = x, y
	return ev
}
