package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/mangotango-xyz/go-mint/address"
)

// Sentinel errors, one per rejection category. Callers branch with
// errors.Is; the concrete error types below carry the structured context.
var (
	// ErrInvalidAddress is returned for malformed address strings.
	ErrInvalidAddress = address.ErrInvalid

	// ErrPhaseClosed is returned when minting while the phase is Closed or
	// SoldOut.
	ErrPhaseClosed = errors.New("ledger: minting not open in current phase")

	// ErrSupplyExceeded is returned when a mint would push total supply
	// past the maximum.
	ErrSupplyExceeded = errors.New("ledger: requested quantity exceeds remaining supply")

	// ErrInsufficientPayment is returned when the offered value is below
	// price times quantity.
	ErrInsufficientPayment = errors.New("ledger: insufficient payment")

	// ErrNotAllowlisted is returned for allowlist-phase mints from
	// non-members.
	ErrNotAllowlisted = errors.New("ledger: address not on allowlist")

	// ErrWalletLimitExceeded is returned when a mint would exceed the
	// active phase's per-wallet cap.
	ErrWalletLimitExceeded = errors.New("ledger: wallet mint limit exceeded")

	// ErrInvalidToken is returned for references to token ids never minted.
	ErrInvalidToken = errors.New("ledger: unknown token id")

	// ErrRevealNotReady is returned when revealing before the delay has
	// elapsed.
	ErrRevealNotReady = errors.New("ledger: reveal delay has not elapsed")
)

// PhaseError rejects a mint because the phase is not open.
type PhaseError struct {
	Phase Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%v: phase %s", ErrPhaseClosed, e.Phase)
}

func (e *PhaseError) Unwrap() error { return ErrPhaseClosed }

// SupplyError rejects a mint that would exceed max supply.
type SupplyError struct {
	Requested uint64
	Remaining uint64
}

func (e *SupplyError) Error() string {
	return fmt.Sprintf("%v: requested %d, remaining %d", ErrSupplyExceeded, e.Requested, e.Remaining)
}

func (e *SupplyError) Unwrap() error { return ErrSupplyExceeded }

// PaymentError rejects an underpaid mint.
type PaymentError struct {
	Required *uint256.Int
	Offered  *uint256.Int
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%v: required %s wei, offered %s wei", ErrInsufficientPayment, e.Required.Dec(), e.Offered.Dec())
}

func (e *PaymentError) Unwrap() error { return ErrInsufficientPayment }

// AllowlistError rejects an allowlist-phase mint from a non-member.
type AllowlistError struct {
	Address common.Address
}

func (e *AllowlistError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotAllowlisted, address.Hex(e.Address))
}

func (e *AllowlistError) Unwrap() error { return ErrNotAllowlisted }

// WalletLimitError rejects a mint that would exceed the per-wallet cap.
// Minted is the wallet's cumulative count across all phases.
type WalletLimitError struct {
	Address   common.Address
	Minted    uint64
	Requested uint64
	Limit     uint64
}

func (e *WalletLimitError) Error() string {
	return fmt.Sprintf("%v: %s has %d, requested %d, limit %d",
		ErrWalletLimitExceeded, address.Hex(e.Address), e.Minted, e.Requested, e.Limit)
}

func (e *WalletLimitError) Unwrap() error { return ErrWalletLimitExceeded }

// TokenError reports a reference to a token id that was never minted.
type TokenError struct {
	TokenID uint64
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v: %d", ErrInvalidToken, e.TokenID)
}

func (e *TokenError) Unwrap() error { return ErrInvalidToken }

// RevealNotReadyError reports a reveal attempted before the token's delay
// elapsed.
type RevealNotReadyError struct {
	TokenID uint64
	ReadyAt time.Time
}

func (e *RevealNotReadyError) Error() string {
	return fmt.Sprintf("%v: token %d ready at %s", ErrRevealNotReady, e.TokenID, e.ReadyAt.UTC().Format(time.RFC3339))
}

func (e *RevealNotReadyError) Unwrap() error { return ErrRevealNotReady }
