// Package playback implements the transport state machine: which song is
// loaded, whether it is playing, at what position and volume, and the ordered
// sequence skip operations walk through.
package playback

import (
	"sync"
	"time"

	"github.com/jmvillar/strum/internal/player"
)

// Session owns the ephemeral playback state. It starts Empty and transitions
// to a loaded state when a song is selected. All mutation goes through its
// methods; the audio output is owned exclusively by the session.
type Session struct {
	mu sync.Mutex

	out      player.Interface
	current  *Song
	sequence []Song
	state    State
	position float64 // seconds
	duration float64 // seconds, 0 when unknown

	volume  float64
	preMute float64
	muted   bool

	closed bool

	subs   []*Subscription
	subsMu sync.RWMutex
}

// NewSession creates an empty session driving the given output.
func NewSession(out player.Interface, volume float64) *Session {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	s := &Session{
		out:    out,
		state:  StateEmpty,
		volume: volume,
	}
	out.SetVolume(volume)
	// The output calls back from its own goroutine when a source plays to
	// the end; auto-advance re-enters the session there.
	out.OnFinished(s.OnPlaybackEnded)
	return s
}

// SelectSong loads song and makes seq the active sequence for skips.
// The previous source is released before the new one is attached.
func (s *Session) SelectSong(song Song, seq []Song) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.sequence = make([]Song, len(seq))
	copy(s.sequence, seq)
	s.loadLocked(song)
}

// loadLocked transitions to Loaded on song, keeping the active sequence.
func (s *Session) loadLocked(song Song) {
	prevSong := s.current
	prevState := s.state

	s.out.Stop()

	s.current = &song
	s.position = 0
	s.duration = parseClock(song.Duration)
	s.state = StatePlaying

	if err := s.out.Play(song.URL); err != nil {
		s.state = StatePaused
		s.emitError(ErrorEvent{Operation: "select", Path: song.URL, Err: err})
	}

	s.emitSong(SongChange{Previous: prevSong, Current: s.current})
	if prevState != s.state {
		s.emitState(StateChange{Previous: prevState, Current: s.state})
	}
}

// TogglePlayPause flips the playing flag. No-op when Empty.
func (s *Session) TogglePlayPause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StatePlaying:
		s.out.Pause()
		s.state = StatePaused
		s.emitState(StateChange{Previous: StatePlaying, Current: StatePaused})
	case StatePaused:
		s.out.Resume()
		s.state = StatePlaying
		s.emitState(StateChange{Previous: StatePaused, Current: StatePlaying})
	case StateEmpty:
	}
}

// SkipForward advances to the next song in the active sequence, wrapping at
// the end.
func (s *Session) SkipForward() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipLocked(1)
}

// SkipBackward moves to the previous song in the active sequence, wrapping
// at the start.
func (s *Session) SkipBackward() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipLocked(-1)
}

// OnPlaybackEnded auto-advances when the audio output reports the current
// source finished. Uses the live sequence, not one captured at select time.
func (s *Session) OnPlaybackEnded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.skipLocked(1)
}

func (s *Session) skipLocked(delta int) {
	if s.current == nil || len(s.sequence) == 0 {
		return
	}

	// First matching index; stays on the current song if its id has
	// vanished from the sequence.
	idx := -1
	for i := range s.sequence {
		if s.sequence[i].ID == s.current.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	n := len(s.sequence)
	next := s.sequence[(idx+delta+n)%n]
	s.loadLocked(next)
}

// Seek clamps the target position to [0, duration] without touching the
// playing flag. No-op when Empty.
func (s *Session) Seek(seconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	if seconds > s.duration {
		seconds = s.duration
	}
	s.position = seconds
	s.out.SeekTo(time.Duration(seconds * float64(time.Second)))
	s.emitPosition(seconds)
}

// SetVolume clamps v to [0,1]. A non-zero volume clears the muted flag.
func (s *Session) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if v > 0 && s.muted {
		s.muted = false
		s.out.SetMuted(false)
	}
	s.volume = v
	s.out.SetVolume(v)
	s.emitVolume(VolumeChange{Volume: s.volume, Muted: s.muted})
}

// ToggleMute mutes with a remembered pre-mute volume, or restores it.
func (s *Session) ToggleMute() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted {
		s.muted = false
		s.volume = s.preMute
		s.out.SetMuted(false)
		s.out.SetVolume(s.volume)
	} else {
		s.preMute = s.volume
		s.volume = 0
		s.muted = true
		s.out.SetMuted(true)
	}
	s.emitVolume(VolumeChange{Volume: s.volume, Muted: s.muted})
}

// Reset forces the session back to Empty and releases the audio source.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	if s.current == nil && s.state == StateEmpty {
		return
	}
	prevSong := s.current
	prevState := s.state

	s.out.Stop()
	s.current = nil
	s.sequence = nil
	s.position = 0
	s.duration = 0
	s.state = StateEmpty

	s.emitSong(SongChange{Previous: prevSong, Current: nil})
	if prevState != StateEmpty {
		s.emitState(StateChange{Previous: prevState, Current: StateEmpty})
	}
}

// LeaveContext resets the session only if the current song was launched from
// the given playlist.
func (s *Session) LeaveContext(playlistID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.PlaylistID == playlistID {
		s.resetLocked()
	}
}

// InvalidateContext clears the active sequence when its owning playlist is
// deleted. The current song keeps playing; skips become no-ops.
func (s *Session) InvalidateContext(playlistID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.PlaylistID == playlistID {
		s.sequence = nil
	}
}

// HandleSongDeleted purges id from the active sequence and resets the
// session if id is the current song.
func (s *Session) HandleSongDeleted(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sequence) > 0 {
		kept := s.sequence[:0]
		for _, song := range s.sequence {
			if song.ID != id {
				kept = append(kept, song)
			}
		}
		s.sequence = kept
	}
	if s.current != nil && s.current.ID == id {
		s.resetLocked()
	}
}

// HandleSongEdited propagates a title/artist edit into the session's copies.
func (s *Session) HandleSongEdited(id int64, title, artist string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sequence {
		if s.sequence[i].ID == id {
			s.sequence[i].Title = title
			s.sequence[i].Artist = artist
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current.Title = title
		s.current.Artist = artist
	}
}

// Snapshot is a copy of the session state for rendering.
type Snapshot struct {
	Song     *Song   `json:"song"`
	Playing  bool    `json:"playing"`
	Position float64 `json:"position"`
	Duration float64 `json:"duration"`
	Volume   float64 `json:"volume"`
	Muted    bool    `json:"muted"`
	Sequence []Song  `json:"sequence"`
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Playing:  s.state == StatePlaying,
		Position: s.position,
		Duration: s.duration,
		Volume:   s.volume,
		Muted:    s.muted,
	}
	if s.current != nil {
		song := *s.current
		snap.Song = &song
	}
	if len(s.sequence) > 0 {
		snap.Sequence = make([]Song, len(s.sequence))
		copy(snap.Sequence, s.sequence)
	}
	return snap
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentSong returns a copy of the current song, or nil if Empty.
func (s *Session) CurrentSong() *Song {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	song := *s.current
	return &song
}

// ActiveSequence returns a copy of the active sequence.
func (s *Session) ActiveSequence() []Song {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq := make([]Song, len(s.sequence))
	copy(seq, s.sequence)
	return seq
}

// Position returns the current position in seconds.
func (s *Session) Position() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Volume returns the current volume level.
func (s *Session) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Muted returns true if the session is muted.
func (s *Session) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Subscribe creates a new event subscription.
func (s *Session) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

// Close shuts down the session. Further mutations are ignored.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.out.Stop()
	s.current = nil
	s.sequence = nil
	s.state = StateEmpty
	s.mu.Unlock()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return nil
}

func (s *Session) emitState(e StateChange) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendState(e)
	}
}

func (s *Session) emitSong(e SongChange) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendSong(e)
	}
}

func (s *Session) emitPosition(pos float64) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendPosition(pos)
	}
}

func (s *Session) emitVolume(e VolumeChange) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendVolume(e)
	}
}

func (s *Session) emitError(e ErrorEvent) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.sendError(e)
	}
}
