package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore simulates an object store with plain files under a directory.
// Stored names are prefixed with a UUID so client filenames can never
// collide or overwrite each other.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Store(_ context.Context, r io.Reader, _ int64, suggestedName, _ string) (string, error) {
	name := uuid.NewString() + "_" + sanitizeName(suggestedName)
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func (s *LocalStore) Retrieve(_ context.Context, name string) (io.ReadCloser, error) {
	// filepath.Base strips any traversal the client may have smuggled in.
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(name)))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// sanitizeName strips path separators, quotes, and control characters from a
// client-supplied filename.
func sanitizeName(name string) string {
	cleaned := strings.NewReplacer("\"", "", "\\", "", "/", "", "..", "").Replace(name)
	b := make([]rune, 0, len(cleaned))
	for _, r := range cleaned {
		if r < 32 || r == 127 {
			continue
		}
		b = append(b, r)
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		s = "file"
	}
	return s
}
