package resolver

import "sync"

// State is the per-user directive slot. A directive command moves the slot
// out of Idle; the next content message consumes it unconditionally.
type State int

const (
	Idle State = iota
	AwaitingTasks
	AwaitingMeeting
	AwaitingNote
	AwaitingProject
)

// Sessions holds one state slot per user. A new directive overwrites any
// prior pending state; there is no queue.
type Sessions struct {
	mu     sync.Mutex
	states map[int64]State
}

// NewSessions creates an empty session table
func NewSessions() *Sessions {
	return &Sessions{states: make(map[int64]State)}
}

// Set stores the user's state, discarding whatever was there
func (s *Sessions) Set(telegramID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == Idle {
		delete(s.states, telegramID)
		return
	}
	s.states[telegramID] = state
}

// Take returns the user's current state and resets the slot to Idle.
// Consuming on read is what makes every content message terminal for the
// directive that preceded it, success or failure.
func (s *Sessions) Take(telegramID int64) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.states[telegramID]
	delete(s.states, telegramID)
	return state
}
