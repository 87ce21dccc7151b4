package ledger

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage is the durable key-value port behind the store. It is read once at
// startup and written after every mutation.
type Storage interface {
	// Read returns the payload stored under key, or ok=false when the key
	// holds nothing. An error means the storage itself is unusable.
	Read(key string) (data []byte, ok bool, err error)
	// Write durably replaces the payload stored under key.
	Write(key string, data []byte) error
}

// DirStorage stores each key as a json file inside a directory.
type DirStorage struct {
	dir string
}

// NewDirStorage returns a DirStorage rooted at dir. The directory is created
// lazily on first write.
func NewDirStorage(dir string) *DirStorage { return &DirStorage{dir: dir} }

func (s *DirStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *DirStorage) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read storage key %q: %w", key, err)
	}
	return data, true, nil
}

func (s *DirStorage) Write(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create storage folder %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("cannot write storage key %q: %w", key, err)
	}
	return nil
}

// MemStorage is an in-memory Storage, mostly useful in tests.
type MemStorage struct {
	values map[string][]byte
	// WriteErr, when set, makes every Write fail with it.
	WriteErr error
	// Writes counts successful writes.
	Writes int
}

func NewMemStorage() *MemStorage {
	return &MemStorage{values: make(map[string][]byte)}
}

func (s *MemStorage) Read(key string) ([]byte, bool, error) {
	data, ok := s.values[key]
	return data, ok, nil
}

func (s *MemStorage) Write(key string, data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.values[key] = data
	s.Writes++
	return nil
}

// Set stores a payload directly, bypassing the write failure switch.
func (s *MemStorage) Set(key string, data []byte) { s.values[key] = data }
