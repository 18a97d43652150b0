// Package address normalizes wallet addresses used as keys throughout the
// collection: allowlist membership, per-wallet mint counts, and ownership.
// Addresses are stored as 20-byte values, so equality is inherently
// case-insensitive; the canonical text form is lowercase hex with an 0x
// prefix.
package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalid is returned when a string is not a well-formed address
// (missing 0x prefix, wrong length, or non-hex body).
var ErrInvalid = errors.New("address: invalid address")

// Parse converts a hex string into an address. Surrounding whitespace and
// letter case are ignored. The input must be an 0x-prefixed 40-digit hex
// string.
func Parse(s string) (common.Address, error) {
	trimmed := strings.TrimSpace(s)
	if !common.IsHexAddress(trimmed) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return common.HexToAddress(trimmed), nil
}

// ParseAll parses a batch of hex strings, failing on the first malformed
// entry.
func ParseAll(ss []string) ([]common.Address, error) {
	out := make([]common.Address, 0, len(ss))
	for _, s := range ss {
		a, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// MustParse is Parse for known-good literals. It panics on malformed input
// and is intended for package-level constants and tests.
func MustParse(s string) common.Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Hex returns the canonical lowercase 0x-prefixed form used in JSON
// payloads and event data. common.Address.Hex() is EIP-55 checksummed,
// which is not stable under the case-insensitive equality this package
// promises, so callers should prefer this form for serialized output.
func Hex(a common.Address) string {
	return "0x" + strings.ToLower(strings.TrimPrefix(a.Hex(), "0x"))
}
