package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MikeSquared-Agency/mitra/internal/catalog"
)

// Entry is a catalog item whose transcript has been acquired.
type Entry struct {
	Item       catalog.Item
	Transcript string
}

// Store is the in-memory knowledge base. Entries are keyed by video ID and
// kept in insertion order; an ID is never overwritten once present.
type Store struct {
	mu          sync.RWMutex
	byID        map[string]int
	entries     []Entry
	lastUpdated time.Time
}

func New() *Store {
	return &Store{byID: make(map[string]int)}
}

func (s *Store) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byID[id]
	return ok
}

// Merge inserts a new entry and reports whether it was added. Merging an ID
// that is already present leaves the existing entry untouched.
func (s *Store) Merge(item catalog.Item, transcript string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[item.ID]; ok {
		return false
	}
	s.byID[item.ID] = len(s.entries)
	s.entries = append(s.entries, Entry{Item: item, Transcript: transcript})
	return true
}

// Entries returns a snapshot in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// MarkUpdated records the completion time of a refresh pass.
func (s *Store) MarkUpdated(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUpdated = t
}

// LastUpdated is the zero time until the first pass completes.
func (s *Store) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

var separator = strings.Repeat("=", 50)

// Render concatenates every entry, in insertion order, into the knowledge
// base text handed to the model. Transcripts are included in full.
func (s *Store) Render() string {
	entries := s.Entries()

	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "\n%s\n", separator)
		fmt.Fprintf(&sb, "Video: %s\n", e.Item.Title)
		fmt.Fprintf(&sb, "Link: %s\n", e.Item.URL)
		fmt.Fprintf(&sb, "Duration: %.0f minutes\n", e.Item.DurationMinutes)
		fmt.Fprintf(&sb, "%s\n", separator)
		fmt.Fprintf(&sb, "%s\n", e.Transcript)
	}
	return sb.String()
}
