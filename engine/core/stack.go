package core

import (
	"fmt"
	"slices"
	"time"
)

type placement uint8

const (
	placeFront placement = iota
	placeBack
	placePinned
)

type stackEntry struct {
	overlay Overlay
	handle  OverlayHandle
	// dead entries were removed while a pass was running; they get no more
	// callbacks and leave the sequence when the pass ends.
	dead bool
}

type pendingOp struct {
	entry  *stackEntry
	insert bool
	at     placement
}

// OverlayStack owns an ordered sequence of overlays. Events are delivered
// front to back until one overlay consumes them; update and render visit
// every overlay in the same order.
//
// Pushes and removals issued from inside a callback are applied once the
// outermost Submit, CallUpdate or CallRender returns. Attach still runs
// immediately, so the caller gets its handle (or error) right away.
type OverlayStack struct {
	renderer Renderer
	input    Input

	entries []*stackEntry
	pinned  int // leading entries PushFront never goes ahead of
	next    OverlayHandle

	passes  int
	pending []pendingOp
}

func NewOverlayStack(r Renderer, in Input) *OverlayStack {
	return &OverlayStack{renderer: r, input: in, next: 1}
}

// PushFront attaches o and makes it the first overlay to receive events.
func (s *OverlayStack) PushFront(o Overlay) (OverlayHandle, error) { return s.push(o, placeFront) }

// PushBack attaches o and makes it the last overlay to receive events.
func (s *OverlayStack) PushBack(o Overlay) (OverlayHandle, error) { return s.push(o, placeBack) }

// pinFront installs o ahead of everything PushFront will ever add.
func (s *OverlayStack) pinFront(o Overlay) (OverlayHandle, error) { return s.push(o, placePinned) }

func (s *OverlayStack) push(o Overlay, at placement) (OverlayHandle, error) {
	if err := o.OnAttach(s.renderer, s.input); err != nil {
		return NoOverlay, fmt.Errorf("%w: %T: %w", ErrAttach, o, err)
	}

	h := s.next
	s.next++
	if s.next == NoOverlay {
		panic("strata: overlay handle space exhausted")
	}

	e := &stackEntry{overlay: o, handle: h}
	if s.passes > 0 {
		s.pending = append(s.pending, pendingOp{entry: e, insert: true, at: at})
	} else {
		s.insert(e, at)
	}
	Logger().Debug("overlay attached", "handle", h, "overlay", fmt.Sprintf("%T", o))
	return h, nil
}

func (s *OverlayStack) insert(e *stackEntry, at placement) {
	switch at {
	case placeBack:
		s.entries = append(s.entries, e)
	case placeFront:
		s.entries = slices.Insert(s.entries, s.pinned, e)
	case placePinned:
		s.entries = slices.Insert(s.entries, s.pinned, e)
		s.pinned++
	}
}

// Remove detaches and drops the overlay with handle h. It reports false,
// and changes nothing, when no live overlay has that handle.
func (s *OverlayStack) Remove(h OverlayHandle) bool {
	if h.IsNone() {
		return false
	}
	for i, e := range s.entries {
		if e.handle != h || e.dead {
			continue
		}
		if s.passes > 0 {
			e.dead = true
			s.pending = append(s.pending, pendingOp{entry: e})
			return true
		}
		s.removeAt(i)
		return true
	}
	// Pushed during the current pass and not inserted yet.
	for _, op := range s.pending {
		if op.insert && op.entry.handle == h && !op.entry.dead {
			op.entry.dead = true
			return true
		}
	}
	return false
}

func (s *OverlayStack) removeAt(i int) {
	e := s.entries[i]
	s.entries = slices.Delete(s.entries, i, i+1)
	if i < s.pinned {
		s.pinned--
	}
	s.detach(e)
}

func (s *OverlayStack) detach(e *stackEntry) {
	e.dead = true
	e.overlay.OnDetach(s.renderer)
	Logger().Debug("overlay detached", "handle", e.handle, "overlay", fmt.Sprintf("%T", e.overlay))
	e.overlay = nil
}

// Submit delivers ev front to back and stops at the first overlay that
// consumes it.
func (s *OverlayStack) Submit(ev Event) {
	s.beginPass()
	defer s.endPass()
	for _, e := range s.entries {
		if e.dead {
			continue
		}
		ev.Dispatch(e.overlay)
		if ev.Handled() {
			return
		}
	}
}

// CallUpdate updates every overlay in stack order.
func (s *OverlayStack) CallUpdate(dt time.Duration) {
	s.beginPass()
	defer s.endPass()
	for _, e := range s.entries {
		if !e.dead {
			e.overlay.OnUpdate(dt, s.input)
		}
	}
}

// CallRender renders every overlay in stack order; later overlays paint
// over earlier ones and inherit whatever renderer state they left bound.
func (s *OverlayStack) CallRender() {
	s.beginPass()
	defer s.endPass()
	for _, e := range s.entries {
		if !e.dead {
			e.overlay.OnRender(s.renderer)
		}
	}
}

func (s *OverlayStack) beginPass() { s.passes++ }

func (s *OverlayStack) endPass() {
	s.passes--
	if s.passes > 0 {
		return
	}
	// Applying an op may run OnDetach, which may queue more ops.
	for len(s.pending) > 0 {
		op := s.pending[0]
		s.pending = s.pending[1:]
		s.apply(op)
	}
	s.pending = nil
}

func (s *OverlayStack) apply(op pendingOp) {
	if op.insert {
		if op.entry.dead {
			// Removed before it was ever inserted.
			s.detach(op.entry)
			return
		}
		s.insert(op.entry, op.at)
		return
	}
	if i := slices.Index(s.entries, op.entry); i >= 0 {
		s.removeAt(i)
	}
}

// Len is the number of live overlays.
func (s *OverlayStack) Len() int {
	n := 0
	for _, e := range s.entries {
		if !e.dead {
			n++
		}
	}
	return n
}

// Handles lists live overlay handles in dispatch order.
func (s *OverlayStack) Handles() []OverlayHandle {
	hs := make([]OverlayHandle, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.dead {
			hs = append(hs, e.handle)
		}
	}
	return hs
}

func (s *OverlayStack) Contains(h OverlayHandle) bool {
	return slices.Contains(s.Handles(), h)
}

// Close detaches every remaining overlay, back to front. Overlays pushed
// or removed from OnDetach are handled too. It must not be called from
// inside an overlay callback.
func (s *OverlayStack) Close() {
	if s.passes > 0 {
		panic("strata: OverlayStack.Close called during a dispatch pass")
	}
	for len(s.entries) > 0 {
		s.removeAt(len(s.entries) - 1)
	}
	s.pinned = 0
}
