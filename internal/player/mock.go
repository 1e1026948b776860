package player

import "time"

// Mock is a test double for the audio output.
type Mock struct {
	state      State
	playErr    error
	playCalls  []string
	stopCalls  int
	seekCalls  []time.Duration
	volume     float64
	muted      bool
	onFinished func()
}

// NewMock creates a new mock output for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped, volume: 1.0}
}

func (m *Mock) Play(path string) error {
	// A new source always releases the previous one first.
	if m.state != Stopped {
		m.stopCalls++
	}
	m.playCalls = append(m.playCalls, path)
	if m.playErr != nil {
		m.state = Stopped
		return m.playErr
	}
	m.state = Playing
	return nil
}

func (m *Mock) Stop() {
	if m.state != Stopped {
		m.stopCalls++
	}
	m.state = Stopped
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
}

func (m *Mock) SetVolume(level float64) { m.volume = level }

func (m *Mock) SetMuted(muted bool) { m.muted = muted }

func (m *Mock) State() State { return m.state }

func (m *Mock) OnFinished(fn func()) { m.onFinished = fn }

// Test helpers

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) StopCalls() int { return m.stopCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) Muted() bool { return m.muted }

// SimulateFinished simulates the current source playing to the end.
func (m *Mock) SimulateFinished() {
	m.state = Stopped
	if m.onFinished != nil {
		m.onFinished()
	}
}
