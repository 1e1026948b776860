package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemStore_SongIDsAdvanceForever(t *testing.T) {
	store := NewMemStore()

	a := Song{Title: "A", Artist: "X"}
	assert.NoError(t, store.InsertSong(&a))
	assert.Equal(t, int64(1), a.ID)

	assert.NoError(t, store.DeleteSong(a.ID))

	b := Song{Title: "B", Artist: "Y"}
	assert.NoError(t, store.InsertSong(&b))
	assert.Equal(t, int64(2), b.ID, "ids must not be reused after a delete")
}

func TestMemStore_LoadReturnsCopies(t *testing.T) {
	store := NewMemStore()

	s := Song{Title: "A", Artist: "X"}
	assert.NoError(t, store.InsertSong(&s))

	loaded, err := store.LoadSongs()
	assert.NoError(t, err)
	loaded[0].Title = "mutated"

	fresh, err := store.LoadSongs()
	assert.NoError(t, err)
	assert.Equal(t, "A", fresh[0].Title)
}

func TestMemStore_ReplacePlaylistSongsCopiesInput(t *testing.T) {
	store := NewMemStore()

	s := Song{Title: "A", Artist: "X"}
	assert.NoError(t, store.InsertSong(&s))
	p := Playlist{Name: "Mix", Artist: "X", Year: 2026}
	assert.NoError(t, store.InsertPlaylist(&p))

	songs := []Song{s}
	assert.NoError(t, store.ReplacePlaylistSongs(p.ID, songs))
	songs[0].Title = "mutated"

	playlists, err := store.LoadPlaylists()
	assert.NoError(t, err)
	assert.Equal(t, "A", playlists[0].Songs[0].Title)
}

func TestMemStore_UpdateMissingRowsIsHarmless(t *testing.T) {
	store := NewMemStore()

	assert.NoError(t, store.UpdateSong(Song{ID: 9, Title: "ghost"}))
	assert.NoError(t, store.UpdatePlaylist(Playlist{ID: 9, Name: "ghost"}))
	assert.NoError(t, store.ReplacePlaylistSongs(9, nil))

	songs, err := store.LoadSongs()
	assert.NoError(t, err)
	assert.Empty(t, songs)
}
