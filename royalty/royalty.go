// Package royalty implements basis-point royalty arithmetic over sale
// prices denominated in the currency's smallest unit.
package royalty

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// BpsDenom is the basis-point denominator; 10000 bps = 100%.
const BpsDenom = 10000

// ErrBpsTooHigh is returned when a rate exceeds 100%.
var ErrBpsTooHigh = errors.New("royalty: basis points exceed 10000")

// Info reports a collection's royalty terms for external marketplaces.
type Info struct {
	Recipient common.Address
	Bps       uint16
}

// Amount returns floor(salePrice * bps / 10000). The product is computed
// through a 512-bit intermediate, so any representable sale price is safe
// from overflow.
func Amount(salePrice *uint256.Int, bps uint16) (*uint256.Int, error) {
	if bps > BpsDenom {
		return nil, ErrBpsTooHigh
	}
	// bps <= denominator, so x*y/d <= x and the result always fits.
	out, _ := new(uint256.Int).MulDivOverflow(
		salePrice,
		uint256.NewInt(uint64(bps)),
		uint256.NewInt(BpsDenom),
	)
	return out, nil
}
