// Package diagnostics keeps a bounded, in-memory record of contact delivery
// failures for the admin console. Nothing here outlives the process.
package diagnostics

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/logging"
)

type Entry struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	RequestID string    `json:"request_id,omitempty"`
	Operation string    `json:"operation"`
	Error     string    `json:"error"`
	Client    string    `json:"client,omitempty"`
}

type Stats struct {
	Total     int64      `json:"total"`
	Retained  int        `json:"retained"`
	LastError *time.Time `json:"last_error,omitempty"`
}

// Store is a fixed-capacity ring of entries, newest last.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	cap     int
	total   int64
	now     func() time.Time
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = 1
	}
	return &Store{cap: capacity, now: time.Now}
}

func (s *Store) Record(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Time.IsZero() {
		e.Time = s.now()
	}

	s.total++
	if len(s.entries) == s.cap {
		copy(s.entries, s.entries[1:])
		s.entries[len(s.entries)-1] = e
		return
	}
	s.entries = append(s.entries, e)
}

// ReportFailure satisfies contact.FailureReporter.
func (s *Store) ReportFailure(ctx context.Context, operation string, err error) {
	s.Record(Entry{
		RequestID: logging.RequestID(ctx),
		Operation: operation,
		Error:     err.Error(),
		Client:    logging.Client(ctx),
	})
}

// Recent returns up to n entries, newest first. n <= 0 returns all.
func (s *Store) Recent(n int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.entries[i])
	}
	return out
}

// Prune drops entries older than maxAge and returns how many were removed.
func (s *Store) Prune(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxAge)
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Time.After(cutoff) {
			kept = append(kept, e)
		}
	}
	removed := len(s.entries) - len(kept)
	s.entries = kept
	return removed
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Total: s.total, Retained: len(s.entries)}
	if len(s.entries) > 0 {
		last := s.entries[len(s.entries)-1].Time
		st.LastError = &last
	}
	return st
}

// Hasher hashes client addresses with a per-process salt so entries can be
// correlated without keeping raw IPs.
type Hasher struct {
	salt string
}

func NewHasher(salt string) *Hasher {
	return &Hasher{salt: salt}
}

func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}
