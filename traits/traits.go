// Package traits derives collectible trait assignments from a collection
// seed. The derivation is a pure function of (seed, token id): the same
// inputs always produce the same digest and therefore the same traits, so
// any two implementations sharing the seed agree on every token. That
// reproducibility is the point — this is deterministic pseudo-randomness,
// not entropy.
package traits

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// Attribute is a single (trait type, value) pair in a token's trait list.
// Field names follow the common marketplace metadata convention.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Digest returns the hex SHA-256 of "{seed}-{tokenID}-{nonce}". Each token
// gets one digest; trait dimensions read slices of it at fixed offsets.
func Digest(seed string, tokenID, nonce uint64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s-%d-%d", seed, tokenID, nonce)))
	return hex.EncodeToString(sum[:])
}

// Pick selects a table entry from a digest slice: the first 8 hex digits of
// the slice, interpreted as an integer, modulo the table length. Distinct
// offsets per dimension keep dimensions decorrelated even though they share
// one digest.
func Pick(hexSlice string, table []string) string {
	n, err := strconv.ParseUint(hexSlice[:8], 16, 64)
	if err != nil {
		// Slices of a hex digest always parse; reachable only with a
		// caller-supplied non-hex slice.
		n = 0
	}
	return table[n%uint64(len(table))]
}

// Digest slice offsets per trait dimension. These are part of the
// collection's reveal contract and must not change after deployment.
const (
	offBackground = 0
	offSkin       = 8
	offEyes       = 16
	offHeadwear   = 24
	offAccessory  = 32
	offSpecial    = 40
	offSpecialVal = 48

	sliceLen = 8
)

// Generate returns the ordered attribute list for a token. A modulo-5 test
// on the digest slice at offSpecial decides whether the bonus Special trait
// is appended.
func Generate(seed string, tokenID uint64) []Attribute {
	d := Digest(seed, tokenID, 0)

	attrs := []Attribute{
		{TraitType: "Background", Value: Pick(d[offBackground:offBackground+sliceLen], Backgrounds)},
		{TraitType: "Skin", Value: Pick(d[offSkin:offSkin+sliceLen], Skins)},
		{TraitType: "Eyes", Value: Pick(d[offEyes:offEyes+sliceLen], Eyes)},
		{TraitType: "Headwear", Value: Pick(d[offHeadwear:offHeadwear+sliceLen], Headwear)},
		{TraitType: "Accessory", Value: Pick(d[offAccessory:offAccessory+sliceLen], Accessories)},
	}

	if hasSpecial(d) {
		attrs = append(attrs, Attribute{
			TraitType: "Special",
			Value:     Pick(d[offSpecialVal:offSpecialVal+sliceLen], Specials),
		})
	}

	return attrs
}

// hasSpecial reports whether the bonus trait fires for this digest:
// roughly one token in five.
func hasSpecial(digest string) bool {
	n, err := strconv.ParseUint(digest[offSpecial:offSpecial+sliceLen], 16, 64)
	if err != nil {
		return false
	}
	return n%5 == 0
}
