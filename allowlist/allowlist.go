// Package allowlist maintains the set of wallets approved for the
// restricted mint phase. Membership uses the same normalized address form
// as mint-time checks, so a wallet admitted here is the same wallet the
// ledger counts against.
package allowlist

import (
	"bytes"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Registry is a mutable set of addresses with set semantics: adding a
// member twice is a no-op and insertion order is not significant.
type Registry struct {
	mu      sync.RWMutex
	members map[common.Address]struct{}
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{members: make(map[common.Address]struct{})}
}

// Add inserts the given addresses and returns how many were newly added
// (already-present entries do not count).
func (r *Registry) Add(addrs []common.Address) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for _, a := range addrs {
		if _, ok := r.members[a]; ok {
			continue
		}
		r.members[a] = struct{}{}
		added++
	}
	return added
}

// Remove deletes an address, reporting whether it was a member.
func (r *Registry) Remove(a common.Address) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[a]; !ok {
		return false
	}
	delete(r.members, a)
	return true
}

// Contains reports membership.
func (r *Registry) Contains(a common.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[a]
	return ok
}

// Size returns the member count.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

// Addresses returns the members sorted by byte value, for deterministic
// iteration and reporting.
func (r *Registry) Addresses() []common.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]common.Address, 0, len(r.members))
	for a := range r.members {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}
