package library

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/jmvillar/strum/internal/errmsg"
)

// DefaultPlaylistArtist is used when a playlist is created without one.
const DefaultPlaylistArtist = "Your Playlist"

// CreatePlaylist adds an empty playlist. The name is required; an empty
// artist falls back to DefaultPlaylistArtist and the year is the current
// one.
func (l *Library) CreatePlaylist(name, artist string) (Playlist, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	name = strings.TrimSpace(name)
	artist = strings.TrimSpace(artist)
	if name == "" {
		return Playlist{}, errmsg.Validation(errmsg.OpPlaylistCreate, "name is required")
	}
	if artist == "" {
		artist = DefaultPlaylistArtist
	}

	playlist := Playlist{
		Name:   name,
		Artist: artist,
		Year:   time.Now().Year(),
		Songs:  []Song{},
	}
	if err := l.store.InsertPlaylist(&playlist); err != nil {
		return Playlist{}, errmsg.Storage(errmsg.OpPlaylistCreate, err)
	}
	l.playlists = append(l.playlists, playlist)
	return copyPlaylist(playlist), nil
}

// EditPlaylist updates a playlist's name and artist.
func (l *Library) EditPlaylist(id int64, name, artist string) (Playlist, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.playlistIndex(id)
	if idx < 0 {
		return Playlist{}, errmsg.NotFound(errmsg.OpPlaylistEdit, "playlist not found")
	}
	name = strings.TrimSpace(name)
	artist = strings.TrimSpace(artist)
	if name == "" {
		return Playlist{}, errmsg.Validation(errmsg.OpPlaylistEdit, "name is required")
	}
	if artist == "" {
		return Playlist{}, errmsg.Validation(errmsg.OpPlaylistEdit, "artist is required")
	}

	updated := l.playlists[idx]
	updated.Name = name
	updated.Artist = artist
	if err := l.store.UpdatePlaylist(updated); err != nil {
		return Playlist{}, errmsg.Storage(errmsg.OpPlaylistEdit, err)
	}
	l.playlists[idx] = updated
	return copyPlaylist(updated), nil
}

// DeletePlaylist removes a playlist. The songs it referenced stay in the
// library, and the playback session drops the playlist as its active
// context. Deleting an absent playlist is not an error.
func (l *Library) DeletePlaylist(id int64) (Playlist, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.playlistIndex(id)
	if idx < 0 {
		return Playlist{}, false, nil
	}
	removed := l.playlists[idx]
	if err := l.store.DeletePlaylist(id); err != nil {
		return Playlist{}, false, errmsg.Storage(errmsg.OpPlaylistDelete, err)
	}
	l.playlists = append(l.playlists[:idx], l.playlists[idx+1:]...)
	if l.session != nil {
		l.session.InvalidateContext(id)
	}
	return copyPlaylist(removed), true, nil
}

// AddSongToPlaylist appends a snapshot of the song to the playlist. A
// song can appear in a playlist at most once.
func (l *Library) AddSongToPlaylist(playlistID, songID int64) (Playlist, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.playlistIndex(playlistID)
	if idx < 0 {
		return Playlist{}, errmsg.NotFound(errmsg.OpPlaylistAddSong, "playlist not found")
	}
	si := l.songIndex(songID)
	if si < 0 {
		return Playlist{}, errmsg.NotFound(errmsg.OpPlaylistAddSong, "song not found")
	}
	playlist := l.playlists[idx]
	if lo.SomeBy(playlist.Songs, func(s Song) bool { return s.ID == songID }) {
		return Playlist{}, errmsg.Duplicate(errmsg.OpPlaylistAddSong, "song already in playlist")
	}

	songs := make([]Song, len(playlist.Songs), len(playlist.Songs)+1)
	copy(songs, playlist.Songs)
	songs = append(songs, l.songs[si])
	if err := l.store.ReplacePlaylistSongs(playlistID, songs); err != nil {
		return Playlist{}, errmsg.Storage(errmsg.OpPlaylistAddSong, err)
	}
	l.playlists[idx].Songs = songs
	return copyPlaylist(l.playlists[idx]), nil
}

// RemoveSongFromPlaylist drops the song from the playlist. Removing a
// song that is not in the playlist is not an error.
func (l *Library) RemoveSongFromPlaylist(playlistID, songID int64) (Playlist, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.playlistIndex(playlistID)
	if idx < 0 {
		return Playlist{}, errmsg.NotFound(errmsg.OpPlaylistRemoveSong, "playlist not found")
	}
	playlist := l.playlists[idx]
	songs := lo.Filter(playlist.Songs, func(s Song, _ int) bool { return s.ID != songID })
	if len(songs) != len(playlist.Songs) {
		if err := l.store.ReplacePlaylistSongs(playlistID, songs); err != nil {
			return Playlist{}, errmsg.Storage(errmsg.OpPlaylistRemoveSong, err)
		}
		l.playlists[idx].Songs = songs
	}
	return copyPlaylist(l.playlists[idx]), nil
}
