package playback

// Song is the session's view of a song.
// This is a copy of the data, not a reference into the library tables.
type Song struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"` // "m:ss", empty when unknown
	URL      string `json:"url"`

	// PlaylistID tags the song with the playlist context it was selected
	// from. 0 means the song was selected from the full library.
	PlaylistID int64 `json:"playlistId,omitempty"`
}
