package library

import (
	"testing"
	"time"

	"github.com/jmvillar/strum/internal/errmsg"
)

func TestCreatePlaylist_Defaults(t *testing.T) {
	lib, _ := newTestLibrary(t)

	p, err := lib.CreatePlaylist("Road Trip", "")
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	if p.Artist != DefaultPlaylistArtist {
		t.Errorf("Artist = %q, want %q", p.Artist, DefaultPlaylistArtist)
	}
	if p.Year != time.Now().Year() {
		t.Errorf("Year = %d, want %d", p.Year, time.Now().Year())
	}
	if len(p.Songs) != 0 {
		t.Errorf("new playlist has %d songs", len(p.Songs))
	}
}

func TestCreatePlaylist_RequiresName(t *testing.T) {
	lib, _ := newTestLibrary(t)

	_, err := lib.CreatePlaylist("  ", "Someone")
	if errmsg.KindOf(err) != errmsg.KindValidation {
		t.Errorf("CreatePlaylist kind = %v, want validation", errmsg.KindOf(err))
	}
}

func TestEditPlaylist(t *testing.T) {
	lib, _ := newTestLibrary(t)

	p, _ := lib.CreatePlaylist("Old", "Old Artist")
	updated, err := lib.EditPlaylist(p.ID, "New", "New Artist")
	if err != nil {
		t.Fatalf("EditPlaylist() error = %v", err)
	}
	if updated.Name != "New" || updated.Artist != "New Artist" {
		t.Errorf("updated = %q by %q", updated.Name, updated.Artist)
	}

	if _, err := lib.EditPlaylist(99, "X", "Y"); errmsg.KindOf(err) != errmsg.KindNotFound {
		t.Errorf("EditPlaylist(99) kind = %v, want not found", errmsg.KindOf(err))
	}
}

func TestDeletePlaylist_KeepsSongsAndInvalidatesContext(t *testing.T) {
	lib, rec := newTestLibrary(t)

	s := mustAddSong(t, lib, "Survivor", "Alpha")
	p, _ := lib.CreatePlaylist("Doomed", "")
	lib.AddSongToPlaylist(p.ID, s.ID)

	_, ok, err := lib.DeletePlaylist(p.ID)
	if err != nil || !ok {
		t.Fatalf("DeletePlaylist() = %v, %v", ok, err)
	}
	if _, found := lib.Playlist(p.ID); found {
		t.Error("deleted playlist still present")
	}
	if _, found := lib.Song(s.ID); !found {
		t.Error("library song was removed with the playlist")
	}
	if len(rec.invalidated) != 1 || rec.invalidated[0] != p.ID {
		t.Errorf("invalidated contexts = %v, want [%d]", rec.invalidated, p.ID)
	}
}

func TestDeletePlaylist_AbsentIsNoOp(t *testing.T) {
	lib, rec := newTestLibrary(t)

	_, ok, err := lib.DeletePlaylist(7)
	if err != nil || ok {
		t.Fatalf("DeletePlaylist(7) = %v, %v", ok, err)
	}
	if len(rec.invalidated) != 0 {
		t.Errorf("invalidated contexts = %v, want none", rec.invalidated)
	}
}

func TestAddSongToPlaylist(t *testing.T) {
	lib, _ := newTestLibrary(t)

	s := mustAddSong(t, lib, "Track", "Alpha")
	p, _ := lib.CreatePlaylist("Mix", "")

	got, err := lib.AddSongToPlaylist(p.ID, s.ID)
	if err != nil {
		t.Fatalf("AddSongToPlaylist() error = %v", err)
	}
	if len(got.Songs) != 1 || got.Songs[0].ID != s.ID {
		t.Errorf("playlist songs = %+v, want the added song", got.Songs)
	}
}

func TestAddSongToPlaylist_Errors(t *testing.T) {
	lib, _ := newTestLibrary(t)

	s := mustAddSong(t, lib, "Track", "Alpha")
	p, _ := lib.CreatePlaylist("Mix", "")
	lib.AddSongToPlaylist(p.ID, s.ID)

	if _, err := lib.AddSongToPlaylist(99, s.ID); errmsg.KindOf(err) != errmsg.KindNotFound {
		t.Errorf("unknown playlist kind = %v, want not found", errmsg.KindOf(err))
	}
	if _, err := lib.AddSongToPlaylist(p.ID, 99); errmsg.KindOf(err) != errmsg.KindNotFound {
		t.Errorf("unknown song kind = %v, want not found", errmsg.KindOf(err))
	}
	if _, err := lib.AddSongToPlaylist(p.ID, s.ID); errmsg.KindOf(err) != errmsg.KindDuplicate {
		t.Errorf("repeat add kind = %v, want duplicate", errmsg.KindOf(err))
	}
	got, _ := lib.Playlist(p.ID)
	if len(got.Songs) != 1 {
		t.Errorf("playlist has %d songs after rejected add, want 1", len(got.Songs))
	}
}

func TestRemoveSongFromPlaylist(t *testing.T) {
	lib, _ := newTestLibrary(t)

	s := mustAddSong(t, lib, "Track", "Alpha")
	p, _ := lib.CreatePlaylist("Mix", "")
	lib.AddSongToPlaylist(p.ID, s.ID)

	got, err := lib.RemoveSongFromPlaylist(p.ID, s.ID)
	if err != nil {
		t.Fatalf("RemoveSongFromPlaylist() error = %v", err)
	}
	if len(got.Songs) != 0 {
		t.Errorf("playlist songs = %+v, want empty", got.Songs)
	}
	if _, found := lib.Song(s.ID); !found {
		t.Error("song removed from library, want playlist-only removal")
	}

	// Removing again is idempotent.
	if _, err := lib.RemoveSongFromPlaylist(p.ID, s.ID); err != nil {
		t.Errorf("second removal error = %v", err)
	}
	if _, err := lib.RemoveSongFromPlaylist(99, s.ID); errmsg.KindOf(err) != errmsg.KindNotFound {
		t.Errorf("unknown playlist kind = %v, want not found", errmsg.KindOf(err))
	}
}

// A playlist lifecycle end to end: build a mix, rename a song and watch
// it propagate, drop a song everywhere, then drop the playlist without
// losing the library.
func TestPlaylistLifecycle(t *testing.T) {
	lib, _ := newTestLibrary(t)

	a := mustAddSong(t, lib, "Highway Song", "The Drivers")
	b := mustAddSong(t, lib, "Open Road", "The Drivers")
	c := mustAddSong(t, lib, "Detour", "Side Street")

	trip, err := lib.CreatePlaylist("Road Trip", "")
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	for _, s := range []Song{a, b, c} {
		if _, err := lib.AddSongToPlaylist(trip.ID, s.ID); err != nil {
			t.Fatalf("AddSongToPlaylist(%d) error = %v", s.ID, err)
		}
	}

	if _, err := lib.EditSong(b.ID, "The Open Road", "The Drivers"); err != nil {
		t.Fatalf("EditSong() error = %v", err)
	}
	got, _ := lib.Playlist(trip.ID)
	if got.Songs[1].Title != "The Open Road" {
		t.Errorf("playlist snapshot title = %q, want the edited one", got.Songs[1].Title)
	}

	if _, _, err := lib.DeleteSong(c.ID); err != nil {
		t.Fatalf("DeleteSong() error = %v", err)
	}
	got, _ = lib.Playlist(trip.ID)
	if len(got.Songs) != 2 {
		t.Fatalf("playlist has %d songs after delete, want 2", len(got.Songs))
	}

	if _, _, err := lib.DeletePlaylist(trip.ID); err != nil {
		t.Fatalf("DeletePlaylist() error = %v", err)
	}
	if n := len(lib.Songs()); n != 2 {
		t.Errorf("library has %d songs after playlist delete, want 2", n)
	}
}
