package ledger

import "github.com/holiman/uint256"

// Rule is the mint policy in force for one phase, derived from the
// collection's fixed constants. Closed and SoldOut report a zero wallet
// cap, which blocks all minting on its own.
type Rule struct {
	Phase             Phase
	PriceWei          *uint256.Int
	MaxPerWallet      uint64
	RequiresAllowlist bool
	Open              bool
}

// RuleFor returns the mint rule for the given phase.
func (l *Ledger) RuleFor(p Phase) Rule {
	switch p {
	case Allowlist:
		return Rule{
			Phase:             Allowlist,
			PriceWei:          l.cfg.AllowlistPriceWei,
			MaxPerWallet:      l.cfg.AllowlistMaxPerWallet,
			RequiresAllowlist: true,
			Open:              true,
		}
	case Public:
		return Rule{
			Phase:        Public,
			PriceWei:     l.cfg.PublicPriceWei,
			MaxPerWallet: l.cfg.PublicMaxPerWallet,
			Open:         true,
		}
	default:
		return Rule{
			Phase:    p,
			PriceWei: uint256.NewInt(0),
		}
	}
}

// CurrentRule returns the rule for the ledger's current phase.
func (l *Ledger) CurrentRule() Rule {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.RuleFor(l.phase)
}
