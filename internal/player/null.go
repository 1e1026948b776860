package player

import "time"

// Null is an output that renders nothing. It is the default for the web
// deployment where audio plays in the browser and the server only tracks
// session state.
type Null struct {
	state State
}

func NewNull() *Null {
	return &Null{state: Stopped}
}

func (n *Null) Play(string) error {
	n.state = Playing
	return nil
}

func (n *Null) Stop() { n.state = Stopped }

func (n *Null) Pause() {
	if n.state == Playing {
		n.state = Paused
	}
}

func (n *Null) Resume() {
	if n.state == Paused {
		n.state = Playing
	}
}

func (n *Null) SeekTo(time.Duration) {}

func (n *Null) SetVolume(float64) {}

func (n *Null) SetMuted(bool) {}

func (n *Null) State() State { return n.state }

func (n *Null) OnFinished(func()) {}
