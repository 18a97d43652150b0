// Package ledger is the core mint state machine for a fixed-supply
// collectible collection: phase-gated minting, per-wallet limits,
// sequential token allocation, delayed reveal, and the append-only domain
// event log.
//
// A Ledger is a single explicitly-owned aggregate. All state lives behind
// one RWMutex: mutating operations (Mint, Reveal, allowlist changes, phase
// advance) serialize against each other, and read-only queries never
// observe a partially applied batch.
package ledger

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/mangotango-xyz/go-mint/address"
	"github.com/mangotango-xyz/go-mint/allowlist"
	"github.com/mangotango-xyz/go-mint/collection"
	"github.com/mangotango-xyz/go-mint/eventstore"
	"github.com/mangotango-xyz/go-mint/metadata"
)

// Ledger holds all mutable collection state for the process lifetime.
// Tokens are created exactly once and never destroyed; ids start at 1 and
// are strictly increasing with no reuse.
type Ledger struct {
	mu  sync.RWMutex
	cfg collection.Config
	now func() time.Time

	builder  *metadata.Builder
	registry *allowlist.Registry

	phase       Phase
	nextTokenID uint64
	totalMinted uint64

	// walletMints is cumulative across phases: a wallet that exhausted its
	// allowlist allowance enters the public phase with that count already
	// against the public cap.
	walletMints map[common.Address]uint64

	owners     map[uint64]common.Address
	ownerIndex map[common.Address][]uint64
	meta       map[uint64]metadata.Metadata
	revealAt   map[uint64]time.Time

	log []*eventstore.Event
}

// Option configures a Ledger at construction.
type Option func(*Ledger)

// WithClock overrides the wall clock, for deterministic reveal timing in
// tests and simulations.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New creates a ledger in the Allowlist phase with zeroed counters.
func New(cfg collection.Config, opts ...Option) (*Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Ledger{
		cfg:         cfg,
		now:         time.Now,
		registry:    allowlist.New(),
		phase:       Allowlist,
		nextTokenID: 1,
		walletMints: make(map[common.Address]uint64),
		owners:      make(map[uint64]common.Address),
		ownerIndex:  make(map[common.Address][]uint64),
		meta:        make(map[uint64]metadata.Metadata),
		revealAt:    make(map[uint64]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.builder = metadata.NewBuilder(cfg, l.now)
	return l, nil
}

// CanMint is the read-only dry run of Mint's validation, evaluated in the
// same order Mint enforces: phase, supply, payment, allowlist, wallet cap.
// The first failing check wins. A nil return means a mint with identical
// arguments would currently be accepted.
func (l *Ledger) CanMint(to common.Address, quantity uint64, valueOffered *uint256.Int) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.canMintLocked(to, quantity, valueOffered)
}

func (l *Ledger) canMintLocked(to common.Address, quantity uint64, valueOffered *uint256.Int) error {
	rule := l.RuleFor(l.phase)

	if !rule.Open {
		return &PhaseError{Phase: l.phase}
	}

	// Subtraction form: totalMinted never exceeds MaxSupply, and the sum
	// on the other side could wrap for quantities near MaxUint64.
	if remaining := l.cfg.MaxSupply - l.totalMinted; quantity > remaining {
		return &SupplyError{
			Requested: quantity,
			Remaining: remaining,
		}
	}

	if valueOffered == nil {
		valueOffered = uint256.NewInt(0)
	}
	required, overflow := new(uint256.Int).MulOverflow(rule.PriceWei, uint256.NewInt(quantity))
	if overflow || valueOffered.Lt(required) {
		return &PaymentError{Required: required, Offered: valueOffered}
	}

	if rule.RequiresAllowlist && !l.registry.Contains(to) {
		return &AllowlistError{Address: to}
	}

	// Same wrap hazard as the supply check; minted can exceed the current
	// cap after a phase change, so guard the subtraction too.
	if minted := l.walletMints[to]; minted > rule.MaxPerWallet || quantity > rule.MaxPerWallet-minted {
		return &WalletLimitError{
			Address:   to,
			Minted:    minted,
			Requested: quantity,
			Limit:     rule.MaxPerWallet,
		}
	}

	return nil
}

// Mint validates and allocates quantity sequential tokens to the given
// wallet, recording ownership, unrevealed metadata, and each token's
// reveal-ready timestamp. Validation failures reject the whole request
// before any allocation; once allocation starts it only stops early if
// supply runs out mid-batch. Reaching max supply flips the phase to
// SoldOut.
func (l *Ledger) Mint(to common.Address, quantity uint64, valueOffered *uint256.Int) ([]uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Re-validate under the write lock; a prior CanMint result may be
	// stale.
	if err := l.canMintLocked(to, quantity, valueOffered); err != nil {
		return nil, err
	}

	rule := l.RuleFor(l.phase)
	now := l.now()
	readyAt := now.Add(l.cfg.RevealDelay)

	capHint := quantity
	if remaining := l.cfg.MaxSupply - l.totalMinted; capHint > remaining {
		capHint = remaining
	}
	ids := make([]uint64, 0, capHint)
	for i := uint64(0); i < quantity; i++ {
		if l.totalMinted >= l.cfg.MaxSupply {
			break
		}

		id := l.nextTokenID
		l.nextTokenID++
		l.totalMinted++

		l.owners[id] = to
		l.ownerIndex[to] = append(l.ownerIndex[to], id)
		l.revealAt[id] = readyAt
		l.meta[id] = l.builder.Build(id, false)

		l.append(EventMintRequested, MintRequestedEvent{
			TokenID:  id,
			To:       address.Hex(to),
			PriceWei: rule.PriceWei.Dec(),
		})
		ids = append(ids, id)
	}

	l.walletMints[to] += uint64(len(ids))

	if l.totalMinted == l.cfg.MaxSupply && l.phase != SoldOut {
		l.advanceLocked(SoldOut)
	}

	return ids, nil
}

// Reveal rebuilds a token's metadata with its final trait-derived image.
// It fails for unknown ids and for tokens whose reveal delay has not
// elapsed. Revealing an already-revealed token rebuilds the same record
// (the reveal timestamp updates); callers wanting strict idempotence
// should check GetMetadata().Revealed first.
func (l *Ledger) Reveal(tokenID uint64) (metadata.Metadata, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	readyAt, ok := l.revealAt[tokenID]
	if !ok {
		return metadata.Metadata{}, &TokenError{TokenID: tokenID}
	}
	if l.now().Before(readyAt) {
		return metadata.Metadata{}, &RevealNotReadyError{TokenID: tokenID, ReadyAt: readyAt}
	}

	m := l.builder.Build(tokenID, true)
	l.meta[tokenID] = m

	l.append(EventTokenRevealed, TokenRevealedEvent{
		TokenID: tokenID,
		Image:   m.Image,
	})

	return m, nil
}

// AddToAllowlist admits the given wallets to the restricted phase,
// returning how many were newly added. Effective changes append an
// AllowlistUpdated event.
func (l *Ledger) AddToAllowlist(addrs []common.Address) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	added := l.registry.Add(addrs)
	if added > 0 {
		l.append(EventAllowlistUpdated, AllowlistUpdatedEvent{Added: added})
	}
	return added
}

// RemoveFromAllowlist revokes a wallet's membership, reporting whether it
// was a member.
func (l *Ledger) RemoveFromAllowlist(a common.Address) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := l.registry.Remove(a)
	if removed {
		l.append(EventAllowlistUpdated, AllowlistUpdatedEvent{Removed: address.Hex(a)})
	}
	return removed
}

// AdvanceToPublic moves the collection into the public phase. It is
// rejected once sold out and is a no-op if already public.
func (l *Ledger) AdvanceToPublic() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.phase {
	case SoldOut:
		return &PhaseError{Phase: l.phase}
	case Public:
		return nil
	default:
		l.advanceLocked(Public)
		return nil
	}
}

// advanceLocked transitions the phase and records the event. Must be
// called with the write lock held.
func (l *Ledger) advanceLocked(to Phase) {
	from := l.phase
	l.phase = to
	l.append(EventPhaseAdvanced, PhaseAdvancedEvent{
		From: from.String(),
		To:   to.String(),
	})
}
