// Package player provides the audio output owned by the playback session.
package player

import "time"

// State represents the output state.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Interface defines the output contract for dependency injection and testing.
// Exactly one source is active at a time; Play releases the previous source
// before attaching the new one.
type Interface interface {
	Play(path string) error
	Stop()
	Pause()
	Resume()
	SeekTo(pos time.Duration)
	SetVolume(level float64)
	SetMuted(muted bool)
	State() State
	OnFinished(fn func())
}

// Compile-time interface checks.
var (
	_ Interface = (*Player)(nil)
	_ Interface = (*Null)(nil)
	_ Interface = (*Mock)(nil)
)
