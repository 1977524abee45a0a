// File: control/journal.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded FIFO journal of run lifecycle events.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// Event is one journal entry.
type Event struct {
	At     time.Time
	Kind   string
	Detail string
}

// Journal keeps the most recent run events (started, joined, snapshot
// written, ...) in arrival order. When the limit is reached the oldest
// events are dropped. All methods are safe for concurrent use.
type Journal struct {
	mu    sync.Mutex
	queue *queue.Queue
	limit int
}

// DefaultJournalLimit bounds a journal when no limit is configured.
const DefaultJournalLimit = 256

// NewJournal creates a journal keeping up to limit events.
func NewJournal(limit int) *Journal {
	if limit <= 0 {
		limit = DefaultJournalLimit
	}
	return &Journal{queue: queue.New(), limit: limit}
}

// Record appends an event, evicting the oldest one when full.
func (j *Journal) Record(kind, detail string) {
	j.mu.Lock()
	if j.queue.Length() == j.limit {
		j.queue.Remove()
	}
	j.queue.Add(Event{At: time.Now(), Kind: kind, Detail: detail})
	j.mu.Unlock()
}

// Len returns the number of retained events.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.queue.Length()
}

// Events returns the retained events oldest first, without draining.
func (j *Journal) Events() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Event, j.queue.Length())
	for i := range out {
		out[i] = j.queue.Get(i).(Event)
	}
	return out
}

// Drain removes and returns all retained events oldest first.
func (j *Journal) Drain() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Event, 0, j.queue.Length())
	for j.queue.Length() > 0 {
		out = append(out, j.queue.Remove().(Event))
	}
	return out
}
