package playback

// StateChange is emitted when the session state changes.
type StateChange struct {
	Previous State
	Current  State
}

// SongChange is emitted when a different song is loaded, including the
// transition to Empty (Current is nil after a reset).
type SongChange struct {
	Previous *Song
	Current  *Song
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position float64 // seconds
}

// VolumeChange is emitted when volume or mute changes.
type VolumeChange struct {
	Volume float64
	Muted  bool
}

// ErrorEvent is emitted when the audio output fails.
type ErrorEvent struct {
	Operation string // e.g. "select"
	Path      string // song source if applicable
	Err       error
}
