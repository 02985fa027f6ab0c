package store

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/BrianKYildirim/key-value-storage/pkg/kv"
)

// FileStore is a kv.Store backed by an in-memory map mirrored to a flat
// text file, one "key<TAB>value" line per entry. Every public operation
// runs under a single exclusive mutex, including the full-file rewrite
// nested inside mutations, so all store access is serialized across
// connections. No read lock exists; GETs queue behind mutations too.
type FileStore struct {
	mu     sync.Mutex
	data   map[string]string
	path   string
	logger hclog.Logger
}

// Compile-time check to ensure FileStore implements kv.Store.
var _ kv.Store = (*FileStore)(nil)

// NewFileStore creates a FileStore persisting to path and populates it
// from the file if one exists. A missing file means an empty store, not
// an error.
func NewFileStore(path string, logger hclog.Logger) *FileStore {
	s := &FileStore{
		data:   make(map[string]string),
		path:   path,
		logger: logger,
	}
	s.load()
	return s
}

// load reads the persistence file into the map. Lines without a tab
// separator are skipped. A read failure is logged and the store keeps
// whatever was loaded up to that point.
func (s *FileStore) load() {
	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("failed to open store file", "path", s.path, "error", err)
		}
		return
	}
	defer f.Close()

	s.mu.Lock()
	defer s.mu.Unlock()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Split only on the first tab character.
		key, value, ok := strings.Cut(line, "\t")
		if !ok {
			s.logger.Warn("skipping malformed store line", "path", s.path, "line", line)
			continue
		}
		s.data[key] = value
	}
	if err := scanner.Err(); err != nil {
		s.logger.Error("failed to read store file", "path", s.path, "error", err)
	}
}

// save rewrites the whole persistence file from the current map, sorted
// by key so the file is deterministic for a given mapping. Callers must
// hold s.mu.
func (s *FileStore) save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open store file for rewrite: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, key := range s.sortedKeys() {
		fmt.Fprintf(w, "%s\t%s\n", key, s.data[key])
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write store file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close store file: %w", err)
	}
	return nil
}

// sortedKeys returns the map's keys in lexicographic order. Callers must
// hold s.mu.
func (s *FileStore) sortedKeys() []string {
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get retrieves a value by key from the store.
// Returns the value and true if found, empty string and false otherwise.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.data[key]
	return val, ok
}

// Set stores a key-value pair and rewrites the persistence file before
// returning. A failed rewrite is logged but the mutation still succeeds
// from the caller's point of view, so the map and the file can diverge
// in that logged case.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	if err := s.save(); err != nil {
		s.logger.Error("failed to persist store", "op", "set", "key", key, "error", err)
	}
	return nil
}

// Delete removes a key from the store and rewrites the persistence file.
// Deleting an absent key is a no-op that touches neither map nor file.
func (s *FileStore) Delete(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return false, nil
	}
	delete(s.data, key)
	if err := s.save(); err != nil {
		s.logger.Error("failed to persist store", "op", "delete", "key", key, "error", err)
	}
	return true, nil
}

// Entries returns a detached snapshot of all entries sorted by key.
func (s *FileStore) Entries() []kv.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]kv.Entry, 0, len(s.data))
	for _, key := range s.sortedKeys() {
		entries = append(entries, kv.Entry{Key: key, Value: s.data[key]})
	}
	return entries
}

// Len reports the number of entries currently held.
func (s *FileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.data)
}
