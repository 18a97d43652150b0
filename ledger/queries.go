package ledger

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mangotango-xyz/go-mint/collection"
	"github.com/mangotango-xyz/go-mint/metadata"
)

// OwnerOf returns the owner of a token, or ErrInvalidToken if the id was
// never minted.
func (l *Ledger) OwnerOf(tokenID uint64) (common.Address, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	owner, ok := l.owners[tokenID]
	if !ok {
		return common.Address{}, &TokenError{TokenID: tokenID}
	}
	return owner, nil
}

// GetMetadata returns the stored metadata record for a token.
func (l *Ledger) GetMetadata(tokenID uint64) (metadata.Metadata, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	m, ok := l.meta[tokenID]
	if !ok {
		return metadata.Metadata{}, &TokenError{TokenID: tokenID}
	}
	return m, nil
}

// BalanceOf returns how many tokens the wallet owns. Backed by the owner
// index maintained at mint time, not a scan.
func (l *Ledger) BalanceOf(a common.Address) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return uint64(len(l.ownerIndex[a]))
}

// TokensOfOwner returns the wallet's token ids in mint order.
func (l *Ledger) TokensOfOwner(a common.Address) []uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]uint64(nil), l.ownerIndex[a]...)
}

// TokenIDs returns all minted token ids in mint order (1..totalMinted).
func (l *Ledger) TokenIDs() []uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]uint64, 0, l.totalMinted)
	for id := uint64(1); id < l.nextTokenID; id++ {
		ids = append(ids, id)
	}
	return ids
}

// TotalSupply returns the number of tokens minted so far.
func (l *Ledger) TotalSupply() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalMinted
}

// MaxSupply returns the collection's fixed maximum supply.
func (l *Ledger) MaxSupply() uint64 {
	return l.cfg.MaxSupply
}

// CurrentPhase returns the phase in force.
func (l *Ledger) CurrentPhase() Phase {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.phase
}

// MintedBy returns the wallet's cumulative mint count across all phases.
func (l *Ledger) MintedBy(a common.Address) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.walletMints[a]
}

// RevealReadyAt returns when a token's reveal delay elapses.
func (l *Ledger) RevealReadyAt(tokenID uint64) (time.Time, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	at, ok := l.revealAt[tokenID]
	if !ok {
		return time.Time{}, &TokenError{TokenID: tokenID}
	}
	return at, nil
}

// IsAllowlisted reports allowlist membership for a wallet.
func (l *Ledger) IsAllowlisted(a common.Address) bool {
	return l.registry.Contains(a)
}

// AllowlistSize returns the registry's member count.
func (l *Ledger) AllowlistSize() int {
	return l.registry.Size()
}

// Config returns the collection's deployment constants.
func (l *Ledger) Config() collection.Config {
	return l.cfg
}

// Now returns the ledger's clock reading; the reveal scheduler shares this
// clock so readiness decisions agree with Reveal itself.
func (l *Ledger) Now() time.Time {
	return l.now()
}
