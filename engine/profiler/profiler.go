//go:build profile

package profiler

import (
	"sync"
	"sync/atomic"
	"time"
)

func Enabled() bool { return true }

// Init must be called once before any scope is recorded. capacity is the
// number of open/close events kept; older events are overwritten.
//
//	profiler.Init(1 << 20)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a named scope and returns the func that closes it.
//
//	defer profiler.Start("Engine.frame")()
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	open := time.Now().UnixNano()
	ring.push(event{at: open, scope: id, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < open {
			end = open
		}
		ring.push(event{at: end, scope: id})
	}
}

type event struct {
	at    int64
	scope int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []event
}

var ring eventRing

func (r *eventRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]event, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot returns the retained events in write order.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

var (
	scopesMu sync.Mutex
	scopes   []string
	scopeIDs = map[string]int{}
)

func intern(name string) int {
	scopesMu.Lock()
	defer scopesMu.Unlock()
	if id, ok := scopeIDs[name]; ok {
		return id
	}
	id := len(scopes)
	scopeIDs[name] = id
	scopes = append(scopes, name)
	return id
}

func scopeNames() []string {
	scopesMu.Lock()
	defer scopesMu.Unlock()
	return append([]string(nil), scopes...)
}
