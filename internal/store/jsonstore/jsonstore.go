package jsonstore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Makepad-fr/resumeform/internal/store"
)

// JSON-backed storage. Every key lives in one object file, values are
// strings (the same contract browser local storage gives the form).
// Writes go through a temp file + rename so a crash never leaves half a file.

const (
	DataFileName = "storage.json"
	// BackupSuffix names the copy of a corrupt data file kept before the
	// first write replaces it.
	BackupSuffix = ".bak"
)

type Store struct {
	mu   sync.Mutex
	path string
}

var _ store.Storage = (*Store)(nil)

// New returns a store rooted at dir; the directory is created on first write.
func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, DataFileName)}
}

func (s *Store) Path() string { return s.path }

func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, _, err := s.load()
	if err != nil {
		return "", err
	}
	res := gjson.GetBytes(b, escapeKey(key))
	if !res.Exists() {
		return "", store.ErrNotFound
	}
	return res.String(), nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, corrupt, err := s.load()
	if err != nil {
		return err
	}
	if corrupt != nil {
		if err := os.WriteFile(s.path+BackupSuffix, corrupt, 0o600); err != nil {
			return fmt.Errorf("backup corrupt file: %w", err)
		}
	}
	out, err := sjson.SetBytes(b, escapeKey(key), value)
	if err != nil {
		return fmt.Errorf("json set %q: %w", key, err)
	}
	return s.write(out)
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write([]byte("{}"))
}

// load returns the raw object; a missing or non-object file reads as {}.
// For a non-object file the original bytes come back as corrupt.
func (s *Store) load() (data, corrupt []byte, err error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []byte("{}"), nil, nil
		}
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	if !gjson.ValidBytes(b) || !gjson.ParseBytes(b).IsObject() {
		return []byte("{}"), b, nil
	}
	return b, nil, nil
}

func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, DataFileName+".tmp.*")
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	committed = true
	return nil
}

// escapeKey turns a literal key into a gjson/sjson path of one component.
func escapeKey(key string) string {
	var sb strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
