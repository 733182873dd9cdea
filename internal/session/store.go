// Package session holds extraction results awaiting an explicit user
// decision. Everything here is in-memory only: a process restart discards
// all pending state, which is an accepted loss boundary.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/AlexanderModestov/thoughtreader/internal/extract"
)

// Batch is a group of drafts held under a short opaque identifier until the
// user confirms or cancels. Exactly one of Tasks/Meeting is populated.
type Batch struct {
	UserID  uint
	Tasks   []extract.TaskDraft
	Meeting *extract.MeetingDraft

	// Provenance, copied onto the records on save.
	RawText       string
	VoiceFileID   string
	VoiceDuration int
}

// BatchStore is the holding area for pending batches. Take is an atomic
// consume: for a given id exactly one Take returns the batch, every later
// call reports not-found. This is what makes confirm/cancel at-most-once.
type BatchStore interface {
	// Put stores the batch and returns its generated identifier
	Put(batch *Batch) string

	// Take removes and returns the batch, or reports that the identifier
	// is unknown or already consumed
	Take(id string) (*Batch, bool)
}

type memoryBatchStore struct {
	mu      sync.Mutex
	batches map[string]*Batch
}

// NewMemoryBatchStore creates an in-process BatchStore
func NewMemoryBatchStore() BatchStore {
	return &memoryBatchStore{batches: make(map[string]*Batch)}
}

func (s *memoryBatchStore) Put(batch *Batch) string {
	id := uuid.NewString()[:8]
	s.mu.Lock()
	s.batches[id] = batch
	s.mu.Unlock()
	return id
}

func (s *memoryBatchStore) Take(id string) (*Batch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch, ok := s.batches[id]
	if !ok {
		return nil, false
	}
	delete(s.batches, id)
	return batch, true
}
