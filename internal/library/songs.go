package library

import (
	"strings"

	"github.com/samber/lo"

	"github.com/jmvillar/strum/internal/errmsg"
)

// AddSong appends a new song to the collection. Title and artist are
// trimmed and must be non-empty, and the (title, artist) pair must not
// already exist, compared case-insensitively.
func (l *Library) AddSong(title, artist, duration, url string) (Song, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	title = strings.TrimSpace(title)
	artist = strings.TrimSpace(artist)
	if title == "" {
		return Song{}, errmsg.Validation(errmsg.OpSongAdd, "title is required")
	}
	if artist == "" {
		return Song{}, errmsg.Validation(errmsg.OpSongAdd, "artist is required")
	}
	exists := lo.SomeBy(l.songs, func(s Song) bool {
		return strings.EqualFold(s.Title, title) && strings.EqualFold(s.Artist, artist)
	})
	if exists {
		return Song{}, errmsg.Duplicate(errmsg.OpSongAdd, "song already exists")
	}

	song := Song{
		Title:    title,
		Artist:   artist,
		Duration: duration,
		URL:      url,
	}
	if err := l.store.InsertSong(&song); err != nil {
		return Song{}, errmsg.Storage(errmsg.OpSongAdd, err)
	}
	l.songs = append(l.songs, song)
	return song, nil
}

// EditSong updates a song's title and artist. The change is propagated
// into every playlist snapshot holding the song and into the playback
// session.
func (l *Library) EditSong(id int64, title, artist string) (Song, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.songIndex(id)
	if idx < 0 {
		return Song{}, errmsg.NotFound(errmsg.OpSongEdit, "song not found")
	}
	title = strings.TrimSpace(title)
	artist = strings.TrimSpace(artist)
	if title == "" {
		return Song{}, errmsg.Validation(errmsg.OpSongEdit, "title is required")
	}
	if artist == "" {
		return Song{}, errmsg.Validation(errmsg.OpSongEdit, "artist is required")
	}

	updated := l.songs[idx]
	updated.Title = title
	updated.Artist = artist
	if err := l.store.UpdateSong(updated); err != nil {
		return Song{}, errmsg.Storage(errmsg.OpSongEdit, err)
	}

	// Rewrite the snapshots before touching memory so a storage failure
	// leaves the in-memory view matching what was persisted so far.
	type patched struct {
		idx   int
		songs []Song
	}
	var changes []patched
	for pi, p := range l.playlists {
		hit := false
		songs := make([]Song, len(p.Songs))
		copy(songs, p.Songs)
		for si := range songs {
			if songs[si].ID == id {
				songs[si].Title = title
				songs[si].Artist = artist
				hit = true
			}
		}
		if hit {
			if err := l.store.ReplacePlaylistSongs(p.ID, songs); err != nil {
				return Song{}, errmsg.Storage(errmsg.OpSongEdit, err)
			}
			changes = append(changes, patched{idx: pi, songs: songs})
		}
	}

	l.songs[idx] = updated
	for _, c := range changes {
		l.playlists[c.idx].Songs = c.songs
	}
	if l.session != nil {
		l.session.HandleSongEdited(id, title, artist)
	}
	return updated, nil
}

// DeleteSong removes a song from the collection and from every playlist
// holding it. Deleting an absent song is not an error; the second return
// reports whether anything was removed.
func (l *Library) DeleteSong(id int64) (Song, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.songIndex(id)
	if idx < 0 {
		return Song{}, false, nil
	}
	removed := l.songs[idx]
	if err := l.store.DeleteSong(id); err != nil {
		return Song{}, false, errmsg.Storage(errmsg.OpSongDelete, err)
	}

	type patched struct {
		idx   int
		songs []Song
	}
	var changes []patched
	for pi, p := range l.playlists {
		if !lo.SomeBy(p.Songs, func(s Song) bool { return s.ID == id }) {
			continue
		}
		songs := lo.Filter(p.Songs, func(s Song, _ int) bool { return s.ID != id })
		if err := l.store.ReplacePlaylistSongs(p.ID, songs); err != nil {
			return Song{}, false, errmsg.Storage(errmsg.OpSongDelete, err)
		}
		changes = append(changes, patched{idx: pi, songs: songs})
	}

	l.songs = append(l.songs[:idx], l.songs[idx+1:]...)
	for _, c := range changes {
		l.playlists[c.idx].Songs = c.songs
	}
	if l.session != nil {
		l.session.HandleSongDeleted(id)
	}
	return removed, true, nil
}
