// Package eventstore provides the append-only journal for collection
// domain events (mints, reveals, allowlist changes, phase advances).
// Streams are versioned and appends carry an optimistic concurrency check,
// so two writers cannot silently interleave history. The ledger's state is
// never rebuilt from this journal — it is an audit trail for external
// reporting, not a persistence layer for the state machine.
package eventstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store errors.
var (
	// ErrConcurrencyConflict is returned when an append's expected version
	// does not match the stream's current version.
	ErrConcurrencyConflict = errors.New("eventstore: stream version conflict")

	// ErrStreamNotFound is returned when reading a stream with no events.
	ErrStreamNotFound = errors.New("eventstore: stream not found")
)

// Event is one immutable entry in a stream.
type Event struct {
	// ID is a unique event identifier.
	ID string `json:"id"`

	// Stream groups events for one collection.
	Stream string `json:"stream"`

	// Type is the domain event name, e.g. "MintRequested".
	Type string `json:"type"`

	// Version is the event's position in its stream, starting at 0.
	// Assigned by the store on append.
	Version int `json:"version"`

	// Data is the JSON-encoded payload.
	Data json.RawMessage `json:"data"`

	// Timestamp records when the event was created.
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent creates an event with a fresh id and a JSON-encoded payload.
// A nil payload produces an event with no data.
func NewEvent(stream, eventType string, payload any) (*Event, error) {
	var data json.RawMessage
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("eventstore: encode %s payload: %w", eventType, err)
		}
		data = encoded
	}

	return &Event{
		ID:        uuid.New().String(),
		Stream:    stream,
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Decode unmarshals the event payload into out.
func (e *Event) Decode(out any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("eventstore: event %s has no payload", e.ID)
	}
	return json.Unmarshal(e.Data, out)
}
