package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SaveExtension is the on-disk extension for saved sessions.
const SaveExtension = ".vsav"

// SavePayload is the serialized form of a saved session.
type SavePayload struct {
	EngineVersion string    `yaml:"engine_version"`
	Scenario      string    `yaml:"scenario"`
	MapSize       int       `yaml:"map_size"`
	Tick          int64     `yaml:"tick"`
	SavedAt       time.Time `yaml:"saved_at"`
}

// SaveFileInfo describes one save file. Name is the base name without
// extension.
type SaveFileInfo struct {
	Name    string
	ModTime time.Time
}

// SaveRegistry lists and resolves save files in a single directory.
type SaveRegistry struct {
	dir string
}

// NewSaveRegistry creates a registry over dir. The directory is created
// lazily on first write.
func NewSaveRegistry(dir string) *SaveRegistry {
	return &SaveRegistry{dir: dir}
}

// Dir returns the saves directory.
func (r *SaveRegistry) Dir() string {
	return r.dir
}

// List returns all save files, most recently modified first.
func (r *SaveRegistry) List() ([]SaveFileInfo, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read saves directory: %w", err)
	}

	var saves []SaveFileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), SaveExtension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		saves = append(saves, SaveFileInfo{
			Name:    strings.TrimSuffix(entry.Name(), SaveExtension),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(saves, func(i, j int) bool {
		return saves[i].ModTime.After(saves[j].ModTime)
	})
	return saves, nil
}

// FilePath returns the full path a save with the given base name would have.
func (r *SaveRegistry) FilePath(name string) string {
	return filepath.Join(r.dir, name+SaveExtension)
}

// Exists reports whether the file at path is present.
func (r *SaveRegistry) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Write persists a save payload under the given base name.
func (r *SaveRegistry) Write(name string, payload SavePayload) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("create saves directory: %w", err)
	}
	data, err := yaml.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal save %q: %w", name, err)
	}
	if err := os.WriteFile(r.FilePath(name), data, 0644); err != nil {
		return fmt.Errorf("write save %q: %w", name, err)
	}
	return nil
}

// NextAutosaveName returns the first unused Autosave-N name.
func (r *SaveRegistry) NextAutosaveName() string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("Autosave-%d", n)
		if !r.Exists(r.FilePath(name)) {
			return name
		}
	}
}

// Read parses the save payload at path.
func (r *SaveRegistry) Read(path string) (SavePayload, error) {
	var payload SavePayload
	data, err := os.ReadFile(path)
	if err != nil {
		return payload, fmt.Errorf("read save file: %w", err)
	}
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("parse save file %s: %w", path, err)
	}
	return payload, nil
}
