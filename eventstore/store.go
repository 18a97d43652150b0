package eventstore

import (
	"context"
	"sync"
)

// Store is the append-only event journal interface.
type Store interface {
	// Append adds events to a stream. expectedVersion is the version of
	// the last event already in the stream, or -1 for a new stream; a
	// mismatch returns ErrConcurrencyConflict. Returns the stream's new
	// latest version.
	Append(ctx context.Context, stream string, expectedVersion int, events []*Event) (int, error)

	// Read returns events in a stream with version >= fromVersion, in
	// order.
	Read(ctx context.Context, stream string, fromVersion int) ([]*Event, error)

	// Version returns the latest version in a stream, or -1 if the stream
	// has no events.
	Version(ctx context.Context, stream string) (int, error)

	// Close releases store resources.
	Close() error
}

// MemoryStore is an in-memory Store, the default journal for a
// single-process ledger.
type MemoryStore struct {
	mu      sync.RWMutex
	streams map[string][]*Event
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{streams: make(map[string][]*Event)}
}

// Append adds events to a stream with an optimistic version check.
func (s *MemoryStore) Append(_ context.Context, stream string, expectedVersion int, events []*Event) (int, error) {
	if len(events) == 0 {
		return s.version(stream), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := len(s.streams[stream]) - 1
	if current != expectedVersion {
		return current, ErrConcurrencyConflict
	}

	// Store copies: callers keep their own event values, which the
	// ledger's in-memory log may still be handing out to readers.
	for i, e := range events {
		stored := *e
		stored.Stream = stream
		stored.Version = expectedVersion + 1 + i
		s.streams[stream] = append(s.streams[stream], &stored)
	}
	return len(s.streams[stream]) - 1, nil
}

// Read returns events with version >= fromVersion.
func (s *MemoryStore) Read(_ context.Context, stream string, fromVersion int) ([]*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all, ok := s.streams[stream]
	if !ok {
		return nil, ErrStreamNotFound
	}

	out := make([]*Event, 0, len(all))
	for _, e := range all {
		if e.Version >= fromVersion {
			out = append(out, e)
		}
	}
	return out, nil
}

// Version returns the latest stream version, -1 for an empty stream.
func (s *MemoryStore) Version(_ context.Context, stream string) (int, error) {
	return s.version(stream), nil
}

func (s *MemoryStore) version(stream string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.streams[stream]) - 1
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
