package callstate

import (
	"sync"
	"time"
)

type trackedCall struct {
	status  Status
	updated time.Time
}

// Tracker holds the current status of every call it has seen until Prune
// drops it.
type Tracker struct {
	mu     sync.RWMutex
	states map[string]*trackedCall
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[string]*trackedCall)}
}

// Apply feeds ev to the call identified by sessionID and returns the new
// status. Unknown calls start out idle.
func (t *Tracker) Apply(sessionID string, ev Event) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.states[sessionID]
	if !ok {
		entry = &trackedCall{status: StatusIdle}
		t.states[sessionID] = entry
	}
	entry.status = Reduce(entry.status, ev)
	entry.updated = time.Now()
	return entry.status
}

// Status returns the current status of sessionID and whether it is known.
func (t *Tracker) Status(sessionID string) (Status, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	entry, ok := t.states[sessionID]
	if !ok {
		return StatusIdle, false
	}
	return entry.status, true
}

// ActiveCount returns the number of calls currently in progress.
func (t *Tracker) ActiveCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, entry := range t.states {
		if entry.status.InCall() || entry.status == StatusConnecting {
			n++
		}
	}
	return n
}

// Len returns the number of calls being tracked.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.states)
}

// Prune drops ended or idle calls last updated before doneBefore, and any
// call last updated before staleBefore. It returns how many were dropped.
func (t *Tracker) Prune(doneBefore, staleBefore time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for id, entry := range t.states {
		done := entry.status == StatusEnded || entry.status == StatusIdle
		if (done && entry.updated.Before(doneBefore)) || entry.updated.Before(staleBefore) {
			delete(t.states, id)
			removed++
		}
	}
	return removed
}
