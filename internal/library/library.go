// Package library holds the canonical song and playlist collections and
// applies every mutation through a persistence store, so the in-memory
// view and the stored one never diverge.
package library

import (
	"sync"
)

// Song is a single entry in the song collection.
type Song struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
	URL      string `json:"url"`
}

// Playlist is a named, ordered collection of song snapshots. Songs holds
// copies taken at add time; edits to a library song are propagated into
// every playlist that contains it.
type Playlist struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Year   int    `json:"year"`
	Songs  []Song `json:"songs"`
}

// Store persists library mutations. Every write goes through the store
// before the in-memory collections are updated.
type Store interface {
	LoadSongs() ([]Song, error)
	LoadPlaylists() ([]Playlist, error)
	InsertSong(s *Song) error
	UpdateSong(s Song) error
	DeleteSong(id int64) error
	InsertPlaylist(p *Playlist) error
	UpdatePlaylist(p Playlist) error
	DeletePlaylist(id int64) error
	ReplacePlaylistSongs(id int64, songs []Song) error
}

// Session receives cascade notifications when library mutations affect
// what the playback engine may be holding.
type Session interface {
	HandleSongDeleted(id int64)
	HandleSongEdited(id int64, title, artist string)
	InvalidateContext(playlistID int64)
}

// Library is the mutable library state. All operations are safe for
// concurrent use.
type Library struct {
	mu      sync.Mutex
	store   Store
	session Session

	songs     []Song
	playlists []Playlist
}

// New loads the existing collections from the store.
func New(store Store) (*Library, error) {
	songs, err := store.LoadSongs()
	if err != nil {
		return nil, err
	}
	playlists, err := store.LoadPlaylists()
	if err != nil {
		return nil, err
	}
	return &Library{
		store:     store,
		songs:     songs,
		playlists: playlists,
	}, nil
}

// AttachSession wires the playback engine so that song deletions, edits
// and playlist removals reach it.
func (l *Library) AttachSession(s Session) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session = s
}

// Songs returns a copy of the song collection in insertion order.
func (l *Library) Songs() []Song {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Song, len(l.songs))
	copy(out, l.songs)
	return out
}

// Song returns the song with the given id.
func (l *Library) Song(id int64) (Song, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.songs {
		if s.ID == id {
			return s, true
		}
	}
	return Song{}, false
}

// Playlists returns a deep copy of the playlist collection.
func (l *Library) Playlists() []Playlist {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Playlist, 0, len(l.playlists))
	for _, p := range l.playlists {
		out = append(out, copyPlaylist(p))
	}
	return out
}

// Playlist returns a deep copy of the playlist with the given id.
func (l *Library) Playlist(id int64) (Playlist, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.playlists {
		if p.ID == id {
			return copyPlaylist(p), true
		}
	}
	return Playlist{}, false
}

func copyPlaylist(p Playlist) Playlist {
	out := p
	out.Songs = make([]Song, len(p.Songs))
	copy(out.Songs, p.Songs)
	return out
}

func (l *Library) songIndex(id int64) int {
	for i, s := range l.songs {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (l *Library) playlistIndex(id int64) int {
	for i, p := range l.playlists {
		if p.ID == id {
			return i
		}
	}
	return -1
}
