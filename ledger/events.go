package ledger

import (
	"github.com/mangotango-xyz/go-mint/eventstore"
)

// Domain event type names.
const (
	EventMintRequested    = "MintRequested"
	EventTokenRevealed    = "TokenRevealed"
	EventAllowlistUpdated = "AllowlistUpdated"
	EventPhaseAdvanced    = "PhaseAdvanced"
)

// MintRequestedEvent is appended once per token allocated.
type MintRequestedEvent struct {
	TokenID  uint64 `json:"token_id"`
	To       string `json:"to"`
	PriceWei string `json:"price_wei"`
}

// TokenRevealedEvent is appended when a token's metadata is revealed.
type TokenRevealedEvent struct {
	TokenID uint64 `json:"token_id"`
	Image   string `json:"image"`
}

// AllowlistUpdatedEvent is appended per effective registry mutation,
// carrying the batch add count or the removed address.
type AllowlistUpdatedEvent struct {
	Added   int    `json:"added,omitempty"`
	Removed string `json:"removed,omitempty"`
}

// PhaseAdvancedEvent is appended on every phase transition, explicit or
// automatic.
type PhaseAdvancedEvent struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// append records a domain event on the in-memory log. Must be called with
// the write lock held.
func (l *Ledger) append(eventType string, payload any) {
	ev, err := eventstore.NewEvent(l.cfg.Symbol, eventType, payload)
	if err != nil {
		// Payloads are plain structs defined in this package; encoding
		// cannot fail for them.
		return
	}
	ev.Version = len(l.log)
	l.log = append(l.log, ev)
}

// Events returns a copy of the append-only event log.
func (l *Ledger) Events() []*eventstore.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]*eventstore.Event(nil), l.log...)
}

// EventsSince returns the events at positions >= from, for callers that
// mirror the log incrementally (e.g. into a durable journal).
func (l *Ledger) EventsSince(from int) []*eventstore.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if from >= len(l.log) {
		return nil
	}
	return append([]*eventstore.Event(nil), l.log[from:]...)
}
