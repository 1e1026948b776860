package library

import "sync"

// MemStore is an in-memory Store. IDs are assigned from counters that
// only ever move forward, so an id is never reused after a delete.
type MemStore struct {
	mu             sync.Mutex
	nextSongID     int64
	nextPlaylistID int64
	songs          []Song
	playlists      []Playlist
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{nextSongID: 1, nextPlaylistID: 1}
}

func (m *MemStore) LoadSongs() ([]Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Song, len(m.songs))
	copy(out, m.songs)
	return out, nil
}

func (m *MemStore) LoadPlaylists() ([]Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Playlist, 0, len(m.playlists))
	for _, p := range m.playlists {
		out = append(out, copyPlaylist(p))
	}
	return out, nil
}

func (m *MemStore) InsertSong(s *Song) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.nextSongID
	m.nextSongID++
	m.songs = append(m.songs, *s)
	return nil
}

func (m *MemStore) UpdateSong(s Song) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.songs {
		if m.songs[i].ID == s.ID {
			m.songs[i] = s
			return nil
		}
	}
	return nil
}

func (m *MemStore) DeleteSong(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.songs {
		if m.songs[i].ID == id {
			m.songs = append(m.songs[:i], m.songs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemStore) InsertPlaylist(p *Playlist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextPlaylistID
	m.nextPlaylistID++
	m.playlists = append(m.playlists, copyPlaylist(*p))
	return nil
}

func (m *MemStore) UpdatePlaylist(p Playlist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.playlists {
		if m.playlists[i].ID == p.ID {
			m.playlists[i].Name = p.Name
			m.playlists[i].Artist = p.Artist
			m.playlists[i].Year = p.Year
			return nil
		}
	}
	return nil
}

func (m *MemStore) DeletePlaylist(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.playlists {
		if m.playlists[i].ID == id {
			m.playlists = append(m.playlists[:i], m.playlists[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemStore) ReplacePlaylistSongs(id int64, songs []Song) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.playlists {
		if m.playlists[i].ID == id {
			copied := make([]Song, len(songs))
			copy(copied, songs)
			m.playlists[i].Songs = copied
			return nil
		}
	}
	return nil
}
