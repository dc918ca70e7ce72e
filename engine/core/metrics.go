package core

import "time"

const metricsWindow = 30

// FrameMetrics keeps a rolling frame-time average and a frames-per-second
// counter refreshed once per second.
type FrameMetrics struct {
	samples [metricsWindow]time.Duration
	next    int
	filled  bool

	frames      int
	accumulated time.Duration
	fps         float64
	total       uint64
}

func (m *FrameMetrics) Update(frame time.Duration) {
	m.samples[m.next] = frame
	m.next++
	if m.next == metricsWindow {
		m.next = 0
		m.filled = true
	}

	m.frames++
	m.total++
	m.accumulated += frame
	if m.accumulated >= time.Second {
		m.fps = float64(m.frames) / m.accumulated.Seconds()
		m.accumulated = 0
		m.frames = 0
	}
}

// FrameTime is the average over the last 30 frames (fewer before the window fills).
func (m *FrameMetrics) FrameTime() time.Duration {
	n := m.next
	if m.filled {
		n = metricsWindow
	}
	if n == 0 {
		return 0
	}
	var sum time.Duration
	for _, s := range m.samples[:n] {
		sum += s
	}
	return sum / time.Duration(n)
}

func (m *FrameMetrics) FPS() float64 { return m.fps }

// Frames is the number of frames completed since the engine started.
func (m *FrameMetrics) Frames() uint64 { return m.total }
