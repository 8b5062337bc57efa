// Package potatolog keeps the log of a session in memory, so that it can be
// inspected after the terminal is restored.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{
	mtx: sync.Mutex{},
	log: []LogEntry{},
}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It expects to be written JSON log entries, as zerolog writes them.
type MemoryLogReaderWriter struct {
	mtx sync.Mutex
	log []LogEntry
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// AtLeast returns the entries of the log at the given level or above.
// Entries without a known level are left out.
func (w *MemoryLogReaderWriter) AtLeast(level zerolog.Level) []LogEntry {
	result := []LogEntry{}
	for _, entry := range w.Get() {
		entryLevel, err := zerolog.ParseLevel(LevelOf(entry))
		if err != nil || entryLevel == zerolog.NoLevel {
			continue
		}
		if entryLevel >= level {
			result = append(result, entry)
		}
	}
	return result
}

// LevelOf returns the level of the entry as a string, e.g. "warn".
func LevelOf(entry LogEntry) string {
	return stringField(entry, zerolog.LevelFieldName)
}

// MessageOf returns the message of the entry.
func MessageOf(entry LogEntry) string {
	return stringField(entry, zerolog.MessageFieldName)
}

func stringField(entry LogEntry, name string) string {
	s, _ := entry[name].(string)
	return s
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}
