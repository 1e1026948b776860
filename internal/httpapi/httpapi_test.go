package httpapi

import (
	"testing"

	"github.com/jmvillar/strum/internal/library"
)

func TestMediaName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"/media/abc123.mp3", "abc123.mp3"},
		{"/media/", ""},
		{"/media/a/b.mp3", ""},
		{"https://example.com/song.mp3", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := mediaName(tt.url); got != tt.want {
			t.Errorf("mediaName(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestToPlaybackSong(t *testing.T) {
	ls := library.Song{ID: 7, Title: "Track", Artist: "Alpha", Duration: "3:25", URL: "/media/x.mp3"}

	got := toPlaybackSong(ls, 3)
	if got.ID != 7 || got.Title != "Track" || got.Artist != "Alpha" {
		t.Errorf("toPlaybackSong() = %+v", got)
	}
	if got.Duration != "3:25" || got.URL != "/media/x.mp3" {
		t.Errorf("toPlaybackSong() dropped fields: %+v", got)
	}
	if got.PlaylistID != 3 {
		t.Errorf("PlaylistID = %d, want 3", got.PlaylistID)
	}

	if got := toPlaybackSong(ls, 0); got.PlaylistID != 0 {
		t.Errorf("library context PlaylistID = %d, want 0", got.PlaylistID)
	}
}
