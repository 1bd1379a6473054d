// Package errlog provides a bounded error log backed by a small key/value
// store. The engine itself never fails attachments or lifecycle calls;
// conditions worth surfacing — orphaned attachments, skipped definitions —
// land here for later inspection.
//
// Example:
//
//	log := errlog.New(errlog.NewMemStore(), 100)
//	tree := component.Materialize(def, owner,
//		component.WithObserver(errlog.TreeObserver(log)))
package errlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned by a Store when a key has no value.
var ErrNotFound = errors.New("errlog: key not found")

// DefaultCapacity bounds the log when no capacity is given.
const DefaultCapacity = 256

// Entry is one recorded condition.
type Entry struct {
	Time    time.Time `json:"time"`
	Source  string    `json:"source"`
	Message string    `json:"message"`
}

// Store is the persistence surface the log writes through. Implementations
// need not be ordered; the log keys entries by sequence number itself.
type Store interface {
	Put(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}

// Log is a bounded, oldest-evicted sequence of entries. Safe for concurrent
// use: one log is typically shared between request handlers and readers.
type Log struct {
	store    Store
	capacity int

	mu   sync.Mutex
	head uint64 // next sequence number to write
	tail uint64 // oldest live sequence number
}

// New creates a log over the given store. Capacity values below one fall
// back to DefaultCapacity.
func New(store Store, capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{store: store, capacity: capacity}
}

// Record appends an entry, evicting the oldest when the log is full.
func (l *Log) Record(source, message string) error {
	entry := Entry{Time: time.Now(), Source: source, Message: message}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("errlog: encode entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.store.Put(seqKey(l.head), data); err != nil {
		return fmt.Errorf("errlog: store entry: %w", err)
	}
	l.head++

	for l.head-l.tail > uint64(l.capacity) {
		if err := l.store.Delete(seqKey(l.tail)); err != nil {
			return fmt.Errorf("errlog: evict entry: %w", err)
		}
		l.tail++
	}
	return nil
}

// Recordf is Record with formatting.
func (l *Log) Recordf(source, format string, args ...any) error {
	return l.Record(source, fmt.Sprintf(format, args...))
}

// Len returns the number of live entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(l.head - l.tail)
}

// Entries returns the live entries, oldest first.
func (l *Log) Entries() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := make([]Entry, 0, l.head-l.tail)
	for seq := l.tail; seq < l.head; seq++ {
		data, err := l.store.Get(seqKey(seq))
		if err != nil {
			return nil, fmt.Errorf("errlog: read entry %d: %w", seq, err)
		}
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("errlog: decode entry %d: %w", seq, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Clear removes all live entries.
func (l *Log) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for seq := l.tail; seq < l.head; seq++ {
		if err := l.store.Delete(seqKey(seq)); err != nil {
			return fmt.Errorf("errlog: clear entry %d: %w", seq, err)
		}
	}
	l.tail = l.head
	return nil
}

func seqKey(seq uint64) string {
	return fmt.Sprintf("entry/%016x", seq)
}
