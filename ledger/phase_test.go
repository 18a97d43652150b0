package ledger_test

import (
	"testing"

	"github.com/mangotango-xyz/go-mint/ledger"
)

func TestPhaseString(t *testing.T) {
	cases := []struct {
		phase ledger.Phase
		want  string
		open  bool
	}{
		{ledger.Closed, "closed", false},
		{ledger.Allowlist, "allowlist", true},
		{ledger.Public, "public", true},
		{ledger.SoldOut, "sold_out", false},
		{ledger.Phase(42), "unknown", false},
	}
	for _, c := range cases {
		if got := c.phase.String(); got != c.want {
			t.Errorf("String(%d): got %s, want %s", c.phase, got, c.want)
		}
		if got := c.phase.Open(); got != c.open {
			t.Errorf("Open(%s): got %v, want %v", c.want, got, c.open)
		}
	}
}

func TestRuleFor(t *testing.T) {
	l, _ := newTestLedger(t, nil)

	al := l.RuleFor(ledger.Allowlist)
	if !al.Open || !al.RequiresAllowlist || al.MaxPerWallet != 2 {
		t.Errorf("allowlist rule: %+v", al)
	}

	pub := l.RuleFor(ledger.Public)
	if !pub.Open || pub.RequiresAllowlist || pub.MaxPerWallet != 5 {
		t.Errorf("public rule: %+v", pub)
	}

	for _, p := range []ledger.Phase{ledger.Closed, ledger.SoldOut} {
		r := l.RuleFor(p)
		if r.Open || r.MaxPerWallet != 0 || !r.PriceWei.IsZero() {
			t.Errorf("%s rule should block all minting: %+v", p, r)
		}
	}
}
