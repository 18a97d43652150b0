// Package metadata composes trait assignments into the metadata record
// served for each token. Records are rebuilt whole on every state change
// rather than patched: the trait generator is deterministic, so a rebuild
// with the same reveal flag reproduces the same record (reveal timestamp
// aside).
package metadata

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mangotango-xyz/go-mint/collection"
	"github.com/mangotango-xyz/go-mint/traits"
)

// Metadata is the serialized form of a token's current state. Before
// reveal, Image points at the shared placeholder and RevealedAt is absent.
type Metadata struct {
	TokenID     uint64             `json:"token_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Attributes  []traits.Attribute `json:"attributes"`
	Revealed    bool               `json:"revealed"`
	RevealedAt  *time.Time         `json:"revealed_at,omitempty"`
}

// JSON returns the marketplace-facing JSON encoding.
func (m Metadata) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// Builder constructs metadata records for one collection.
type Builder struct {
	cfg collection.Config
	now func() time.Time
}

// NewBuilder creates a builder over the collection config. A nil clock
// defaults to time.Now; tests inject a fixed clock for stable RevealedAt
// values.
func NewBuilder(cfg collection.Config, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{cfg: cfg, now: now}
}

// Build regenerates the full metadata record for a token. The attribute
// list is always derived fresh from the collection seed, so repeated calls
// with the same revealed flag are identical except for RevealedAt.
func (b *Builder) Build(tokenID uint64, revealed bool) Metadata {
	m := Metadata{
		TokenID:     tokenID,
		Name:        fmt.Sprintf("%s #%d", b.cfg.Name, tokenID),
		Description: b.cfg.Description,
		Attributes:  traits.Generate(b.cfg.Seed, tokenID),
		Revealed:    revealed,
	}

	if revealed {
		m.Image = fmt.Sprintf("%s%d.%s", b.cfg.BaseURI, tokenID, b.cfg.ImageExt)
		at := b.now()
		m.RevealedAt = &at
	} else {
		m.Image = b.cfg.PlaceholderImage
	}

	return m
}
