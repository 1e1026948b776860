package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmvillar/strum/internal/errmsg"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{7 * time.Second, "0:07"},
		{59 * time.Second, "0:59"},
		{60 * time.Second, "1:00"},
		{3*time.Minute + 25*time.Second, "3:25"},
		{61 * time.Minute, "61:00"},
		{-time.Second, "0:00"},
		{2*time.Minute + 500*time.Millisecond, "2:01"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"song.mp3", "audio/mpeg"},
		{"SONG.MP3", "audio/mpeg"},
		{"song.wav", "audio/wav"},
		{"song.flac", "audio/flac"},
		{"song.txt", "application/octet-stream"},
		{"song", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := ContentType(tt.name); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStore_SaveAndRemove(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "media"))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	name, err := store.Save("My Song.mp3", strings.NewReader("not really audio"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasSuffix(name, ".mp3") {
		t.Errorf("stored name = %q, want .mp3 suffix", name)
	}
	if name == "My Song.mp3" {
		t.Error("stored name kept the original name")
	}

	data, err := os.ReadFile(store.Path(name))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "not really audio" {
		t.Errorf("stored content = %q", data)
	}

	if err := store.Remove(name); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(store.Path(name)); !os.IsNotExist(err) {
		t.Error("file still present after Remove")
	}
	// A second removal is fine.
	if err := store.Remove(name); err != nil {
		t.Errorf("Remove() of missing file error = %v", err)
	}
}

func TestStore_SaveRejectsUnknownExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	for _, name := range []string{"notes.txt", "song.ogg", "noext"} {
		_, err := store.Save(name, strings.NewReader("x"))
		if errmsg.KindOf(err) != errmsg.KindValidation {
			t.Errorf("Save(%q) kind = %v, want validation", name, errmsg.KindOf(err))
		}
	}
}

func TestStore_PathIgnoresDirectoryComponents(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	got := store.Path("../../etc/passwd")
	want := filepath.Join(store.Dir(), "passwd")
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestProbe_RejectsUndecodableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.mp3")
	if err := os.WriteFile(path, []byte("this is not an mp3"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Probe(path)
	if errmsg.KindOf(err) != errmsg.KindDecode {
		t.Errorf("Probe() kind = %v, want decode", errmsg.KindOf(err))
	}
}

func TestProbe_MissingFile(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "gone.mp3"))
	if errmsg.KindOf(err) != errmsg.KindDecode {
		t.Errorf("Probe() kind = %v, want decode", errmsg.KindOf(err))
	}
}
