// Package settings persists keyed configuration records as a single YAML
// file under the user's config directory. Callers decode their record into
// their own struct and write it back through the same key; the file format
// is otherwise opaque to them.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store holds the settings records for one file on disk.
type Store struct {
	path    string
	mu      sync.Mutex
	records map[string]*yaml.Node
}

// DefaultPath returns the settings file location. VERDANT_DATA_DIR overrides
// the base directory (useful with a .env file during development).
func DefaultPath() (string, error) {
	if dir := os.Getenv("VERDANT_DATA_DIR"); dir != "" {
		return filepath.Join(dir, "settings.yml"), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, "verdant", "settings.yml"), nil
}

// Open reads the settings file at path, or starts with an empty record set
// if the file doesn't exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, records: make(map[string]*yaml.Node)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s.records); err != nil {
		return nil, fmt.Errorf("parse settings file: %w", err)
	}
	return s, nil
}

// Get decodes the record stored under key into out. It reports whether a
// record existed; when it didn't, out is left untouched so callers keep
// their defaults.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.records[key]
	if !ok || node == nil {
		return false, nil
	}
	if err := node.Decode(out); err != nil {
		return false, fmt.Errorf("decode settings record %q: %w", key, err)
	}
	return true, nil
}

// Put replaces the record under key. The change is in-memory only until
// ForceSave is called.
func (s *Store) Put(key string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal settings record %q: %w", key, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("re-parse settings record %q: %w", key, err)
	}
	if len(doc.Content) == 0 {
		return fmt.Errorf("settings record %q marshaled to an empty document", key)
	}
	s.records[key] = doc.Content[0]
	return nil
}

// ForceSave writes all records to disk immediately.
func (s *Store) ForceSave() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// Path returns the file this store reads and writes.
func (s *Store) Path() string {
	return s.path
}
