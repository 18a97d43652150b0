package ledger

// Phase is the collection's mint-availability state. Transitions only move
// forward: Allowlist advances to Public by an explicit admin call, and any
// phase becomes SoldOut the instant total supply is reached. Nothing
// leaves SoldOut. Closed is reserved for administrative use; no transition
// enters it.
type Phase uint8

const (
	Closed Phase = iota
	Allowlist
	Public
	SoldOut
)

// String returns the phase name used in event payloads and errors.
func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Allowlist:
		return "allowlist"
	case Public:
		return "public"
	case SoldOut:
		return "sold_out"
	default:
		return "unknown"
	}
}

// Open reports whether minting is possible in this phase.
func (p Phase) Open() bool {
	return p == Allowlist || p == Public
}
