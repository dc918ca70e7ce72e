package core

import "testing"

func TestEventDispatch(t *testing.T) {
	tests := []struct {
		ev   Event
		kind EventKind
		call string
	}{
		{&WindowCloseRequestedEvent{}, KindWindowCloseRequested, "o.close"},
		{&WindowResizedEvent{Width: 800, Height: 600}, KindWindowResized, "o.resize(800,600)"},
		{&KeyPressedEvent{Button: KeyW, Repeat: true}, KindKeyPressed, "o.key(W,true)"},
		{&KeyReleasedEvent{Button: KeyEscape}, KindKeyReleased, "o.keyup(Escape)"},
		{&TextWrittenEvent{Char: 'é'}, KindTextWritten, "o.text(é)"},
		{&MouseDownEvent{Button: MouseLeft}, KindMouseDown, "o.down(MouseLeft)"},
		{&MouseUpEvent{Button: Mouse5}, KindMouseUp, "o.up(Mouse5)"},
		{&MouseMoveEvent{X: 3, Y: 4, DX: -1, DY: 2}, KindMouseMove, "o.move(3,4,-1,2)"},
		{&MouseScrolledEvent{DX: 0.5, DY: -1}, KindMouseScrolled, "o.scroll(0.5,-1)"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			rec := &recorder{}
			o := newTrace("o", rec)
			tt.ev.Dispatch(o)
			if len(rec.calls) != 1 || rec.calls[0] != tt.call {
				t.Fatalf("calls = %q, want %q", rec.calls, tt.call)
			}
			if tt.ev.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.ev.Kind(), tt.kind)
			}
			if tt.ev.Handled() {
				t.Error("Handled() = true for a non-consuming overlay")
			}
			if tt.ev.String() == "" {
				t.Error("empty String()")
			}
		})
	}
}

func TestConsumingOverlayMarksInputEventsHandled(t *testing.T) {
	o := newTrace("o", &recorder{})
	for _, k := range []EventKind{KindKeyPressed, KindKeyReleased, KindTextWritten,
		KindMouseDown, KindMouseUp, KindMouseMove, KindMouseScrolled, KindWindowResized} {
		o.consume[k] = true
	}

	input := []Event{
		&KeyPressedEvent{Button: KeyA},
		&KeyReleasedEvent{Button: KeyA},
		&TextWrittenEvent{Char: 'a'},
		&MouseDownEvent{Button: MouseRight},
		&MouseUpEvent{Button: MouseRight},
		&MouseMoveEvent{X: 1, Y: 1},
		&MouseScrolledEvent{DY: 1},
	}
	for _, ev := range input {
		ev.Dispatch(o)
		if !ev.Handled() {
			t.Errorf("%s not handled", ev)
		}
	}

	// Window events ignore consumption.
	ev := &WindowResizedEvent{Width: 1, Height: 1}
	ev.Dispatch(o)
	if ev.Handled() {
		t.Error("WindowResized reported handled")
	}
}

func TestButtonString(t *testing.T) {
	tests := map[Button]string{
		ButtonUnknown:   "Unknown",
		MouseLeft:       "MouseLeft",
		Key0:            "0",
		KeyZ:            "Z",
		KeyNumPadEquals: "NumPadEquals",
		KeyMenu:         "Menu",
		buttonCount:     "Button(?)",
	}
	for b, want := range tests {
		if got := b.String(); got != want {
			t.Errorf("Button(%d).String() = %q, want %q", b, got, want)
		}
	}
	for b := ButtonUnknown; b < buttonCount; b++ {
		if buttonNames[b] == "" {
			t.Errorf("Button(%d) has no name", b)
		}
	}
}

func TestButtonIsMouse(t *testing.T) {
	for _, b := range []Button{MouseLeft, MouseRight, MouseMiddle, Mouse8} {
		if !b.IsMouse() {
			t.Errorf("%s.IsMouse() = false", b)
		}
	}
	for _, b := range []Button{ButtonUnknown, KeySpace, KeyMenu} {
		if b.IsMouse() {
			t.Errorf("%s.IsMouse() = true", b)
		}
	}
}

func TestHandleString(t *testing.T) {
	if got := ShaderHandle(3).String(); got != "shader#3" {
		t.Errorf("got %q", got)
	}
	if got := NoMesh.String(); got != "mesh(none)" {
		t.Errorf("got %q", got)
	}
	if !NoOverlay.IsNone() || OverlayHandle(1).IsNone() {
		t.Error("IsNone mismatch")
	}
}
