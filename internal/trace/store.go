package trace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFile is the trace file written next to the working directory.
const DefaultFile = "traces.json"

// ErrCorrupt indicates a trace file that exists but cannot be decoded.
var ErrCorrupt = errors.New("trace: corrupt trace file")

type Store struct {
	path string
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Save writes snap to the store's path, replacing any previous file.
func (s *Store) Save(snap Snapshot) error {
	if snap == nil {
		snap = Snapshot{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling traces: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating trace directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing trace temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming trace file: %w", err)
	}
	return nil
}

// Load reads the snapshot at the store's path. A missing file yields an
// empty snapshot and no error. Unreadable or undecodable files yield an
// empty snapshot and an error so callers can report it and carry on.
func (s *Store) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("reading trace file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if snap == nil {
		snap = Snapshot{}
	}
	return snap, nil
}
