package core

import "testing"

func TestInputOverlayTracksState(t *testing.T) {
	rec := &recorder{}
	in := NewInputState()
	s := NewOverlayStack(&fakeRenderer{rec: rec}, in)
	mustPush(t, s.pinFront, &inputOverlay{state: in})

	// A consuming overlay behind the input tracker must not hide events from it.
	sink := newTrace("sink", rec)
	sink.consume[KindKeyPressed] = true
	sink.consume[KindMouseDown] = true
	mustPush(t, s.PushFront, sink)
	rec.reset()

	s.Submit(&KeyPressedEvent{Button: KeyQ})
	s.Submit(&MouseDownEvent{Button: MouseLeft})
	s.Submit(&MouseMoveEvent{X: 40, Y: 30, DX: 40, DY: 30})

	if !in.IsPressed(KeyQ) || !in.IsPressed(MouseLeft) {
		t.Fatal("pressed buttons not recorded")
	}
	if x, y := in.MousePosition(); x != 40 || y != 30 {
		t.Fatalf("MousePosition() = %d,%d", x, y)
	}
	if len(rec.calls) != 3 {
		t.Fatalf("sink saw %q", rec.calls)
	}

	s.Submit(&KeyReleasedEvent{Button: KeyQ})
	s.Submit(&MouseUpEvent{Button: MouseLeft})
	if in.IsPressed(KeyQ) || in.IsPressed(MouseLeft) {
		t.Fatal("released buttons still pressed")
	}
}

func TestInputStateOutOfRange(t *testing.T) {
	in := NewInputState()
	in.set(buttonCount, true)
	if in.IsPressed(buttonCount) || in.IsPressed(Button(255)) {
		t.Fatal("out of range button reported pressed")
	}
}

func TestCursorTracker(t *testing.T) {
	in := NewInputState()
	in.mouseX, in.mouseY = 10, 20
	c := NewCursorTracker(in)

	// Moves within one poll chain from each other.
	first := c.Move(15, 20)
	second := c.Move(15, 30)
	if first.DX != 5 || first.DY != 0 || second.DX != 0 || second.DY != 10 {
		t.Fatalf("deltas %+v %+v", first, second)
	}

	// Sync picks up whatever the input state recorded since.
	in.mouseX, in.mouseY = 100, 100
	c.Sync()
	if ev := c.Move(90, 105); ev.DX != -10 || ev.DY != 5 || ev.X != 90 || ev.Y != 105 {
		t.Fatalf("after Sync: %+v", ev)
	}

	if ev := NewCursorTracker(nil).Move(3, 4); ev.DX != 3 || ev.DY != 4 {
		t.Fatalf("nil input: %+v", ev)
	}
}
