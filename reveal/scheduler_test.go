package reveal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/holiman/uint256"

	"github.com/mangotango-xyz/go-mint/address"
	"github.com/mangotango-xyz/go-mint/collection"
	"github.com/mangotango-xyz/go-mint/ledger"
	"github.com/mangotango-xyz/go-mint/reveal"
)

var minter = address.MustParse("0xa11ce00000000000000000000000000000000001")

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func setup(t *testing.T) (*ledger.Ledger, *reveal.Scheduler, *clock) {
	t.Helper()

	cfg := collection.Default()
	cfg.PublicMaxPerWallet = 50

	clk := &clock{t: time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)}
	l, err := ledger.New(cfg, ledger.WithClock(clk.now))
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	if err := l.AdvanceToPublic(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	return l, reveal.NewScheduler(l), clk
}

func mint(t *testing.T, l *ledger.Ledger, qty uint64) []uint64 {
	t.Helper()
	value := new(uint256.Int).Mul(l.CurrentRule().PriceWei, uint256.NewInt(qty))
	ids, err := l.Mint(minter, qty, value)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	return ids
}

func TestIsReady(t *testing.T) {
	l, s, clk := setup(t)
	ids := mint(t, l, 1)

	if s.IsReady(ids[0]) {
		t.Error("token should not be ready immediately after mint")
	}
	if s.IsReady(999) {
		t.Error("unknown ids are never ready")
	}

	clk.advance(l.Config().RevealDelay)
	if !s.IsReady(ids[0]) {
		t.Error("token should be ready once the delay elapses")
	}

	// Readiness is monotonic.
	clk.advance(time.Hour)
	if !s.IsReady(ids[0]) {
		t.Error("once ready, always ready")
	}
}

func TestSecondsUntilReady(t *testing.T) {
	l, s, clk := setup(t)
	ids := mint(t, l, 1)

	if got, err := s.SecondsUntilReady(ids[0]); err != nil || got != l.Config().RevealDelay.Seconds() {
		t.Errorf("just after mint: got %.1f, %v; want %.1f", got, err, l.Config().RevealDelay.Seconds())
	}

	clk.advance(l.Config().RevealDelay / 2)
	if got, err := s.SecondsUntilReady(ids[0]); err != nil || got != (l.Config().RevealDelay / 2).Seconds() {
		t.Errorf("halfway: got %.1f, %v", got, err)
	}

	clk.advance(l.Config().RevealDelay)
	if got, err := s.SecondsUntilReady(ids[0]); err != nil || got != 0 {
		t.Errorf("past ready: got %.1f, %v; want 0", got, err)
	}

	// Unknown ids error instead of reporting a zero wait, matching
	// IsReady's never-ready answer.
	if _, err := s.SecondsUntilReady(999); !errors.Is(err, ledger.ErrInvalidToken) {
		t.Errorf("unknown id: expected ErrInvalidToken, got %v", err)
	}
}

func TestRevealAllReady(t *testing.T) {
	l, s, clk := setup(t)

	first := mint(t, l, 3)
	clk.advance(l.Config().RevealDelay / 2)
	second := mint(t, l, 2)

	// Nothing ready yet.
	if got := s.RevealAllReady(); len(got) != 0 {
		t.Fatalf("nothing should be ready, got %v", got)
	}

	// First batch crosses its delay, second is still halfway.
	clk.advance(l.Config().RevealDelay / 2)
	got := s.RevealAllReady()
	if len(got) != len(first) {
		t.Fatalf("expected %d revealed, got %v", len(first), got)
	}
	for i, id := range first {
		if got[i] != id {
			t.Errorf("revealed ids should be the first batch, got %v", got)
			break
		}
	}

	// Already-revealed tokens are skipped on the next sweep.
	clk.advance(l.Config().RevealDelay)
	got = s.RevealAllReady()
	if len(got) != len(second) {
		t.Fatalf("expected only the second batch (%d), got %v", len(second), got)
	}

	for _, id := range append(first, second...) {
		m, err := l.GetMetadata(id)
		if err != nil {
			t.Fatalf("metadata %d: %v", id, err)
		}
		if !m.Revealed {
			t.Errorf("token %d should be revealed", id)
		}
	}

	// Quiet sweep when everything is done.
	if got := s.RevealAllReady(); len(got) != 0 {
		t.Errorf("no tokens left to reveal, got %v", got)
	}
}
