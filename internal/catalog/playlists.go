package catalog

import (
	"database/sql"

	"github.com/jmvillar/strum/internal/db"
	"github.com/jmvillar/strum/internal/library"
)

func (s *Store) LoadPlaylists() ([]library.Playlist, error) {
	rows, err := s.db.Query(`
		SELECT id, name, artist, year
		FROM playlists
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []library.Playlist
	for rows.Next() {
		var p library.Playlist
		if err := rows.Scan(&p.ID, &p.Name, &p.Artist, &p.Year); err != nil {
			return nil, err
		}
		p.Songs = []library.Song{}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range playlists {
		songs, err := s.loadPlaylistSongs(playlists[i].ID)
		if err != nil {
			return nil, err
		}
		playlists[i].Songs = songs
	}
	return playlists, nil
}

func (s *Store) loadPlaylistSongs(playlistID int64) ([]library.Song, error) {
	rows, err := s.db.Query(`
		SELECT song_id, title, artist, duration, url
		FROM playlist_songs
		WHERE playlist_id = ?
		ORDER BY position
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := []library.Song{}
	for rows.Next() {
		var song library.Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.Duration, &song.URL); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

func (s *Store) InsertPlaylist(p *library.Playlist) error {
	res, err := s.db.Exec(`
		INSERT INTO playlists (name, artist, year)
		VALUES (?, ?, ?)
	`, p.Name, p.Artist, p.Year)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (s *Store) UpdatePlaylist(p library.Playlist) error {
	_, err := s.db.Exec(`
		UPDATE playlists
		SET name = ?, artist = ?, year = ?
		WHERE id = ?
	`, p.Name, p.Artist, p.Year, p.ID)
	return err
}

func (s *Store) DeletePlaylist(id int64) error {
	return db.WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM playlist_songs WHERE playlist_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM playlists WHERE id = ?`, id)
		return err
	})
}

// ReplacePlaylistSongs rewrites the playlist's rows in one transaction,
// keeping positions dense.
func (s *Store) ReplacePlaylistSongs(playlistID int64, songs []library.Song) error {
	return db.WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM playlist_songs WHERE playlist_id = ?`, playlistID); err != nil {
			return err
		}
		for i, song := range songs {
			_, err := tx.Exec(`
				INSERT INTO playlist_songs (playlist_id, position, song_id, title, artist, duration, url)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, playlistID, i, song.ID, song.Title, song.Artist, song.Duration, song.URL)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
