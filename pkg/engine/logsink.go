package engine

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// LogEntry is one buffered startup log line.
type LogEntry struct {
	Level   logrus.Level
	Message string
}

// BufferHook is a logrus hook that retains every entry logged during startup
// so later phases can ask whether errors or warnings already occurred.
type BufferHook struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewBufferHook creates an empty hook. Register it on the engine logger with
// AddHook.
func NewBufferHook() *BufferHook {
	return &BufferHook{}
}

// Levels implements logrus.Hook.
func (h *BufferHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (h *BufferHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, LogEntry{Level: entry.Level, Message: entry.Message})
	return nil
}

// Entries returns a copy of everything buffered so far.
func (h *BufferHook) Entries() []LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]LogEntry(nil), h.entries...)
}

// HasErrors reports whether any entry at error severity or worse was logged.
func (h *BufferHook) HasErrors() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, e := range h.entries {
		if e.Level <= logrus.ErrorLevel {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any entry at warning severity was logged.
func (h *BufferHook) HasWarnings() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, e := range h.entries {
		if e.Level == logrus.WarnLevel {
			return true
		}
	}
	return false
}
