package catalog

import (
	"github.com/jmvillar/strum/internal/library"
)

func (s *Store) LoadSongs() ([]library.Song, error) {
	rows, err := s.db.Query(`
		SELECT id, title, artist, duration, url
		FROM songs
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []library.Song
	for rows.Next() {
		var song library.Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.Duration, &song.URL); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

func (s *Store) InsertSong(song *library.Song) error {
	res, err := s.db.Exec(`
		INSERT INTO songs (title, artist, duration, url)
		VALUES (?, ?, ?, ?)
	`, song.Title, song.Artist, song.Duration, song.URL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	song.ID = id
	return nil
}

func (s *Store) UpdateSong(song library.Song) error {
	_, err := s.db.Exec(`
		UPDATE songs
		SET title = ?, artist = ?, duration = ?, url = ?
		WHERE id = ?
	`, song.Title, song.Artist, song.Duration, song.URL, song.ID)
	return err
}

func (s *Store) DeleteSong(id int64) error {
	_, err := s.db.Exec(`DELETE FROM songs WHERE id = ?`, id)
	return err
}
