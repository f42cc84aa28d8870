// ABOUTME: Flat JSON file store for research, outline, and content drafts.
// ABOUTME: Files are named {type}_{id}.json; last write wins, no versioning.

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Record types persisted by the draft tools.
const (
	TypeResearch = "research"
	TypeOutline  = "outline"
	TypeContent  = "content"
)

var whitespace = regexp.MustCompile(`\s+`)

// TopicID derives the storage id for a topic: transliterated to ASCII,
// lower-cased, whitespace collapsed to underscores.
func TopicID(topic string) string {
	id := unidecode.Unidecode(strings.TrimSpace(topic))
	id = strings.ToLower(id)
	return whitespace.ReplaceAllString(id, "_")
}

// Store persists JSON blobs under a single directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created lazily on
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(recordType, id string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", recordType, id))
}

// Save writes a record, replacing any previous value.
func (s *Store) Save(recordType, id string, data any) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("creating storage dir: %w", err)
	}
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", recordType, err)
	}
	if err := os.WriteFile(s.path(recordType, id), payload, 0o640); err != nil {
		return fmt.Errorf("writing %s record: %w", recordType, err)
	}
	return nil
}

// Load reads a record into out. It returns os.ErrNotExist when the record
// was never saved.
func (s *Store) Load(recordType, id string, out any) error {
	data, err := os.ReadFile(s.path(recordType, id))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// LoadRaw returns the stored JSON bytes unmodified.
func (s *Store) LoadRaw(recordType, id string) ([]byte, error) {
	return os.ReadFile(s.path(recordType, id))
}

// List returns the ids of all records of the given type, sorted.
func (s *Store) List(recordType string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	prefix := recordType + "_"
	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}
