// Package media manages the uploaded audio files backing the library
// and reads their metadata.
package media

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jmvillar/strum/internal/errmsg"
)

// Store keeps uploaded audio files in a single flat directory. Stored
// names are generated, so uploads can never collide or escape the
// directory.
type Store struct {
	dir string
}

// NewStore creates the media directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errmsg.Storage(errmsg.OpUploadSave, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes the upload to the store under a fresh name, keeping only
// the original extension. It returns the stored file name.
func (s *Store) Save(origName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(origName))
	switch ext {
	case ".mp3", ".wav", ".flac":
	default:
		return "", errmsg.Validation(errmsg.OpUploadSave, "unsupported audio format")
	}

	name := uuid.NewString() + ext
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errmsg.Storage(errmsg.OpUploadSave, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", errmsg.Storage(errmsg.OpUploadSave, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", errmsg.Storage(errmsg.OpUploadSave, err)
	}
	return name, nil
}

// Path returns the on-disk location of a stored file. The name is
// reduced to its base so callers cannot reach outside the directory.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// Remove deletes a stored file. A missing file is not an error.
func (s *Store) Remove(name string) error {
	err := os.Remove(s.Path(name))
	if err != nil && !os.IsNotExist(err) {
		return errmsg.Storage(errmsg.OpMediaDelete, err)
	}
	return nil
}

// ContentType maps a stored file name to its MIME type.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".flac":
		return "audio/flac"
	default:
		return "application/octet-stream"
	}
}
