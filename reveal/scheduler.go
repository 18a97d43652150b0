// Package reveal drives time-gated batch reveals. An external poller (or
// cron) owns the cadence; the scheduler only answers readiness questions
// and sweeps everything whose delay has elapsed.
package reveal

import (
	"github.com/mangotango-xyz/go-mint/ledger"
)

// Scheduler batch-reveals tokens once their delay elapses. It shares the
// ledger's clock, so its readiness answers agree with Reveal itself.
type Scheduler struct {
	ledger *ledger.Ledger
}

// NewScheduler creates a scheduler over the given ledger.
func NewScheduler(l *ledger.Ledger) *Scheduler {
	return &Scheduler{ledger: l}
}

// IsReady reports whether a token's reveal delay has elapsed. Unknown ids
// are never ready.
func (s *Scheduler) IsReady(tokenID uint64) bool {
	readyAt, err := s.ledger.RevealReadyAt(tokenID)
	if err != nil {
		return false
	}
	return !s.ledger.Now().Before(readyAt)
}

// SecondsUntilReady returns how long until a token becomes revealable,
// floored at zero. Unknown ids return ErrInvalidToken rather than a zero
// wait, so the answer can't contradict IsReady.
func (s *Scheduler) SecondsUntilReady(tokenID uint64) (float64, error) {
	readyAt, err := s.ledger.RevealReadyAt(tokenID)
	if err != nil {
		return 0, err
	}
	remaining := readyAt.Sub(s.ledger.Now()).Seconds()
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

// RevealAllReady sweeps every known token, revealing those that are ready
// and not yet revealed, and returns the ids it revealed. A token that
// stops being ready between check and act is skipped, not fatal: the
// sweep is best-effort and the next run picks up anything missed.
func (s *Scheduler) RevealAllReady() []uint64 {
	var revealed []uint64

	for _, id := range s.ledger.TokenIDs() {
		m, err := s.ledger.GetMetadata(id)
		if err != nil || m.Revealed {
			continue
		}
		if !s.IsReady(id) {
			continue
		}
		if _, err := s.ledger.Reveal(id); err != nil {
			// RevealNotReady here means readiness changed between check
			// and act; either way the token waits for the next sweep.
			continue
		}
		revealed = append(revealed, id)
	}

	return revealed
}
