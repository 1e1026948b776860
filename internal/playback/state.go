package playback

// State represents the session state.
type State int

const (
	// StateEmpty means no song is loaded.
	StateEmpty State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsLoaded returns true if a song is loaded (playing or paused).
func (s State) IsLoaded() bool {
	return s == StatePlaying || s == StatePaused
}
