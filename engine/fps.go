package engine

import "time"

// FPSMeter counts frames over a rolling window and reports the last completed window's rate
type FPSMeter struct {
	time   TimeProvider
	window time.Duration

	start   time.Time
	frames  int
	fps     float64
	started bool
}

func NewFPSMeter(tp TimeProvider, window time.Duration) *FPSMeter {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	if window <= 0 {
		window = time.Second
	}
	return &FPSMeter{time: tp, window: window}
}

// Frame records one frame; the first call only opens the window
func (m *FPSMeter) Frame() {
	now := m.time.Now()
	if !m.started {
		m.start = now
		m.started = true
		return
	}

	m.frames++
	elapsed := now.Sub(m.start)
	if elapsed >= m.window {
		m.fps = float64(m.frames) / elapsed.Seconds()
		m.frames = 0
		m.start = now
	}
}

// FPS is 0 until the first window completes
func (m *FPSMeter) FPS() float64 {
	return m.fps
}
