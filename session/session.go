// Package session keeps the ordered list of images submitted during one UI
// session. The store is an explicit value owned by the host server; nothing
// here outlives the process.
package session

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/wudi/headline/headline"
)

// DefaultLimit caps how many entries a session retains before the oldest are
// evicted.
const DefaultLimit = 32

// Entry records one submitted image together with its extraction outcome.
type Entry struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Digest   string    `json:"digest"`
	Size     int       `json:"size"`
	FullText string    `json:"full_text"`
	Title    string    `json:"title"`
	AddedAt  time.Time `json:"added_at"`
}

// Store is a bounded, ordered, mutex-guarded collection of entries.
// De-duplication is by content digest, not by name: the same screenshot
// pasted twice under different generated names stays a single entry.
type Store struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
}

// NewStore creates a store retaining at most limit entries; limit <= 0 uses
// DefaultLimit.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{limit: limit}
}

// Digest returns the hex content hash used for de-duplication.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Add records an image and its extraction result. When the content was seen
// before, the existing entry is returned and added is false; the stored
// result is kept since extraction is deterministic for identical bytes.
func (s *Store) Add(name string, data []byte, res headline.Result) (entry Entry, added bool) {
	digest := Digest(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Digest == digest {
			return e, false
		}
	}

	entry = Entry{
		ID:       uuid.NewString(),
		Name:     name,
		Digest:   digest,
		Size:     len(data),
		FullText: res.FullText,
		Title:    res.Title,
		AddedAt:  time.Now().UTC(),
	}
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}
	return entry, true
}

// Entries returns a copy of the session contents in submission order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

// Len reports the current number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
