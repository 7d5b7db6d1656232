package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/velmora/health-assistant/backend/internal/model/chat"
)

// FileStore persists the session collection as a single JSON document keyed
// by StorageKey. Writes go through a temp file and rename so a crash never
// leaves a half-written document behind.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path. The parent directory is
// created if missing.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Load() ([]chat.Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session store: %w", err)
	}

	var doc map[string][]chat.Session
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode session store: %w", err)
	}
	return doc[StorageKey], nil
}

func (s *FileStore) Save(sessions []chat.Session) error {
	if sessions == nil {
		sessions = []chat.Session{}
	}
	raw, err := json.MarshalIndent(map[string][]chat.Session{StorageKey: sessions}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write session store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session store: %w", err)
	}
	return nil
}
