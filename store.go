package watchlist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store persists the application state as independent entries in a plain
// directory, one file per entry, so the whole state remains human readable
// and git friendly. The tracker list lives in a JSONL file; the free-text
// title, subtitle and the API credential are single-line files.
type Store struct {
	dir string
}

// Store entry names.
const (
	keyTitle    = "title"
	keySubtitle = "subtitle"
	keyAPIKey   = "api_key"

	trackersFile = "trackers.jsonl"
)

// OpenStore opens (creating if needed) a store directory.
func OpenStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create store directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store directory.
func (s *Store) Dir() string { return s.dir }

// get reads a single entry, returning "" when the entry does not exist.
func (s *Store) get(key string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cannot read store entry %q: %w", key, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// put writes a single entry.
func (s *Store) put(key, value string) error {
	if err := os.WriteFile(filepath.Join(s.dir, key), []byte(value+"\n"), 0o644); err != nil {
		return fmt.Errorf("cannot write store entry %q: %w", key, err)
	}
	return nil
}

func (s *Store) Title() (string, error)     { return s.get(keyTitle) }
func (s *Store) SetTitle(v string) error    { return s.put(keyTitle, v) }
func (s *Store) Subtitle() (string, error)  { return s.get(keySubtitle) }
func (s *Store) SetSubtitle(v string) error { return s.put(keySubtitle, v) }
func (s *Store) APIKey() (string, error)    { return s.get(keyAPIKey) }
func (s *Store) SetAPIKey(v string) error   { return s.put(keyAPIKey, v) }

// LoadTrackers reads the persisted watchlist. A store that has never saved
// one yields an empty watchlist.
func (s *Store) LoadTrackers() (*Watchlist, error) {
	f, err := os.Open(filepath.Join(s.dir, trackersFile))
	if errors.Is(err, fs.ErrNotExist) {
		return NewWatchlist(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open trackers file: %w", err)
	}
	defer f.Close()

	list, err := DecodeTrackers(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode trackers file: %w", err)
	}
	return list, nil
}

// SaveTrackers writes the watchlist back to the store.
func (s *Store) SaveTrackers(list *Watchlist) error {
	f, err := os.Create(filepath.Join(s.dir, trackersFile))
	if err != nil {
		return fmt.Errorf("cannot create trackers file: %w", err)
	}
	defer f.Close()

	if err := EncodeTrackers(f, list); err != nil {
		return fmt.Errorf("cannot encode trackers file: %w", err)
	}
	return nil
}
