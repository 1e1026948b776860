package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"

	"github.com/jmvillar/strum/internal/errmsg"
)

// Info is what a stored audio file can tell us about itself.
type Info struct {
	Title    string
	Artist   string
	Duration string
}

// Probe inspects a stored file by name.
func (s *Store) Probe(name string) (Info, error) {
	return Probe(s.Path(name))
}

// Probe decodes the file to measure its duration and reads embedded
// tags for title and artist. Tags are optional; a file that cannot be
// decoded at all is rejected.
func Probe(path string) (Info, error) {
	duration, err := probeDuration(path)
	if err != nil {
		return Info{}, err
	}

	info := Info{Duration: FormatClock(duration)}
	if f, err := os.Open(path); err == nil {
		if m, err := tag.ReadFrom(f); err == nil {
			info.Title = strings.TrimSpace(m.Title())
			info.Artist = strings.TrimSpace(m.Artist())
		}
		f.Close()
	}
	return info, nil
}

func probeDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errmsg.Decode(errmsg.OpUploadProbe, err)
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		return 0, errmsg.Decode(errmsg.OpUploadProbe, fmt.Errorf("unsupported audio format: %s", filepath.Ext(path)))
	}
	if err != nil {
		return 0, errmsg.Decode(errmsg.OpUploadProbe, err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// FormatClock renders a duration as "m:ss".
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
