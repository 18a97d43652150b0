// Package contract exposes the collection's call-style surface, analogous
// to the contract ABI an execution environment would invoke: mint, token
// queries, royalty reporting, and the admin operations. Addresses cross
// this boundary as strings and are normalized here; the ledger below works
// in parsed form only.
package contract

import (
	"context"
	"sync"

	"github.com/holiman/uint256"

	"github.com/mangotango-xyz/go-mint/address"
	"github.com/mangotango-xyz/go-mint/eventstore"
	"github.com/mangotango-xyz/go-mint/ledger"
	"github.com/mangotango-xyz/go-mint/metadata"
	"github.com/mangotango-xyz/go-mint/royalty"
)

// Minter is the external call surface over one collection ledger. When a
// journal store is attached, every successful mutation mirrors the
// ledger's new events into it, stream-keyed by the collection symbol.
type Minter struct {
	ledger  *ledger.Ledger
	journal eventstore.Store
	stream  string

	// journal mirror position; guarded separately from the ledger.
	jmu       sync.Mutex
	journaled int
	jerr      error
}

// Option configures a Minter.
type Option func(*Minter)

// WithJournal mirrors the ledger's event log into a durable store. The
// mirror is best-effort: a store failure never rolls back ledger state and
// is surfaced via JournalError.
func WithJournal(store eventstore.Store) Option {
	return func(m *Minter) {
		m.journal = store
	}
}

// NewMinter wraps a ledger in the external call surface.
func NewMinter(l *ledger.Ledger, opts ...Option) *Minter {
	m := &Minter{
		ledger: l,
		stream: l.Config().Symbol,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MintResult is the outcome of a mint call. On failure, Err carries one of
// the ledger's typed error kinds; callers branch with errors.Is rather
// than on message text.
type MintResult struct {
	Success  bool
	TokenIDs []uint64
	Err      error
}

// Mint validates and executes a mint for the given wallet.
func (m *Minter) Mint(ctx context.Context, to string, quantity uint64, valueOffered *uint256.Int) MintResult {
	addr, err := address.Parse(to)
	if err != nil {
		return MintResult{Err: err}
	}

	ids, err := m.ledger.Mint(addr, quantity, valueOffered)
	if err != nil {
		return MintResult{Err: err}
	}

	m.sync(ctx)
	return MintResult{Success: true, TokenIDs: ids}
}

// OwnerOf returns the owner's canonical hex address.
func (m *Minter) OwnerOf(tokenID uint64) (string, error) {
	owner, err := m.ledger.OwnerOf(tokenID)
	if err != nil {
		return "", err
	}
	return address.Hex(owner), nil
}

// TokenURI returns the token's metadata as a JSON document.
func (m *Minter) TokenURI(tokenID uint64) (string, error) {
	meta, err := m.ledger.GetMetadata(tokenID)
	if err != nil {
		return "", err
	}
	data, err := meta.JSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BalanceOf returns how many tokens the wallet owns.
func (m *Minter) BalanceOf(owner string) (uint64, error) {
	addr, err := address.Parse(owner)
	if err != nil {
		return 0, err
	}
	return m.ledger.BalanceOf(addr), nil
}

// TotalSupply returns the number of tokens minted so far.
func (m *Minter) TotalSupply() uint64 {
	return m.ledger.TotalSupply()
}

// MaxSupply returns the collection's fixed maximum supply.
func (m *Minter) MaxSupply() uint64 {
	return m.ledger.MaxSupply()
}

// RoyaltyInfo reports the collection's royalty terms.
func (m *Minter) RoyaltyInfo() royalty.Info {
	cfg := m.ledger.Config()
	return royalty.Info{
		Recipient: cfg.RoyaltyRecipient,
		Bps:       cfg.RoyaltyBps,
	}
}

// RoyaltyAmount returns the royalty due on a sale at the collection's
// configured rate.
func (m *Minter) RoyaltyAmount(salePrice *uint256.Int) (*uint256.Int, error) {
	return royalty.Amount(salePrice, m.ledger.Config().RoyaltyBps)
}

// BatchMetadata returns metadata for the given ids, silently skipping
// unknown ones.
func (m *Minter) BatchMetadata(tokenIDs []uint64) []metadata.Metadata {
	out := make([]metadata.Metadata, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		meta, err := m.ledger.GetMetadata(id)
		if err != nil {
			continue
		}
		out = append(out, meta)
	}
	return out
}

// AddToAllowlist admits the given wallets, returning how many were newly
// added. The whole batch is rejected if any address is malformed.
func (m *Minter) AddToAllowlist(ctx context.Context, addrs []string) (int, error) {
	parsed, err := address.ParseAll(addrs)
	if err != nil {
		return 0, err
	}

	added := m.ledger.AddToAllowlist(parsed)
	m.sync(ctx)
	return added, nil
}

// RemoveFromAllowlist revokes a wallet's membership.
func (m *Minter) RemoveFromAllowlist(ctx context.Context, addr string) (bool, error) {
	a, err := address.Parse(addr)
	if err != nil {
		return false, err
	}

	removed := m.ledger.RemoveFromAllowlist(a)
	m.sync(ctx)
	return removed, nil
}

// AdvanceToPublic opens the public phase.
func (m *Minter) AdvanceToPublic(ctx context.Context) error {
	if err := m.ledger.AdvanceToPublic(); err != nil {
		return err
	}
	m.sync(ctx)
	return nil
}

// JournalError returns the most recent journal mirror failure, if any.
func (m *Minter) JournalError() error {
	m.jmu.Lock()
	defer m.jmu.Unlock()
	return m.jerr
}

// sync mirrors any events the journal has not seen yet.
func (m *Minter) sync(ctx context.Context) {
	if m.journal == nil {
		return
	}

	m.jmu.Lock()
	defer m.jmu.Unlock()

	events := m.ledger.EventsSince(m.journaled)
	if len(events) == 0 {
		return
	}

	if _, err := m.journal.Append(ctx, m.stream, m.journaled-1, events); err != nil {
		m.jerr = err
		return
	}
	m.journaled += len(events)
	m.jerr = nil
}
