// Package collection holds the fixed deployment parameters of the
// MangoTango drop. These are configuration constants, not runtime inputs:
// the seed, supply, prices, and payout addresses are baked in at
// initialization and never change for the life of the collection.
package collection

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/mangotango-xyz/go-mint/address"
)

// Validation errors.
var (
	ErrMissingSeed   = errors.New("collection: seed must not be empty")
	ErrZeroSupply    = errors.New("collection: max supply must be positive")
	ErrRoyaltyTooBig = errors.New("collection: royalty exceeds 10000 bps")
	ErrNilPrice      = errors.New("collection: phase price must be set")
)

// BpsDenom is the basis-point denominator: 10000 bps = 100%.
const BpsDenom = 10000

// Config are the deployment constants for a collection.
type Config struct {
	Name        string
	Symbol      string
	Description string

	// Seed drives all trait derivation. Changing it after any reveal
	// breaks reproducibility for the whole collection.
	Seed string

	MaxSupply uint64

	// Per-phase mint rules. Closed and SoldOut always price at zero with a
	// zero wallet cap and are not configured here.
	AllowlistPriceWei     *uint256.Int
	PublicPriceWei        *uint256.Int
	AllowlistMaxPerWallet uint64
	PublicMaxPerWallet    uint64

	// RevealDelay is how long after mint a token's metadata stays behind
	// the placeholder image.
	RevealDelay time.Duration

	BaseURI          string // per-token image prefix, e.g. "ipfs://…/"
	ImageExt         string // per-token image extension, without dot
	PlaceholderImage string // shared pre-reveal image path

	RoyaltyBps       uint16
	RoyaltyRecipient common.Address
	TreasuryAddress  common.Address
	OwnerAddress     common.Address
}

// Default returns the MangoTango mainnet deployment parameters:
// 9999 tokens at 0.05 ether, allowlist cap 2 and public cap 5 per wallet,
// 7.5% royalty, 5 minute reveal delay.
func Default() Config {
	return Config{
		Name:        "MangoTango",
		Symbol:      "MTNG",
		Description: "MangoTango is a fixed-supply collection of 9999 tropical troublemakers.",

		Seed: "0x2e4f6a8c0e2b4d6f8a0c2e4b6d8f0a2c4e6b8d0e2f4a6c8b0d2e4f6a8c0e2b4d6f8",

		MaxSupply: 9999,

		AllowlistPriceWei:     uint256.NewInt(50_000_000_000_000_000), // 0.05 ether
		PublicPriceWei:        uint256.NewInt(50_000_000_000_000_000),
		AllowlistMaxPerWallet: 2,
		PublicMaxPerWallet:    5,

		RevealDelay: 300 * time.Second,

		BaseURI:          "ipfs://QmMangoTangoCollectionBaseUriPlaceholder/",
		ImageExt:         "png",
		PlaceholderImage: "ipfs://QmMangoTangoCollectionBaseUriPlaceholder/unrevealed.png",

		RoyaltyBps:       750,
		RoyaltyRecipient: address.MustParse("0x7d2F4a6C8e0B2d4F6a8C0e2B4d6F8a0C2e4B6d81"),
		TreasuryAddress:  address.MustParse("0x5c1E3a7B9d0F2b4D6e8A0c2E4b6D8f0A2c4E6b82"),
		OwnerAddress:     address.MustParse("0x9e3A5c7F1b9D2e4F6a8b0C2d4E6f8A0b2C4d6E83"),
	}
}

// Validate checks the config for internally inconsistent values.
func (c Config) Validate() error {
	if c.Seed == "" {
		return ErrMissingSeed
	}
	if c.MaxSupply == 0 {
		return ErrZeroSupply
	}
	if c.RoyaltyBps > BpsDenom {
		return fmt.Errorf("%w: %d", ErrRoyaltyTooBig, c.RoyaltyBps)
	}
	if c.AllowlistPriceWei == nil || c.PublicPriceWei == nil {
		return ErrNilPrice
	}
	return nil
}
