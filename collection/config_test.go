package collection_test

import (
	"errors"
	"testing"

	"github.com/mangotango-xyz/go-mint/collection"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := collection.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.MaxSupply != 9999 {
		t.Errorf("max supply: got %d, want 9999", cfg.MaxSupply)
	}
	if cfg.AllowlistMaxPerWallet != 2 || cfg.PublicMaxPerWallet != 5 {
		t.Errorf("wallet caps: got %d/%d, want 2/5",
			cfg.AllowlistMaxPerWallet, cfg.PublicMaxPerWallet)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*collection.Config)
		want   error
	}{
		{"EmptySeed", func(c *collection.Config) { c.Seed = "" }, collection.ErrMissingSeed},
		{"ZeroSupply", func(c *collection.Config) { c.MaxSupply = 0 }, collection.ErrZeroSupply},
		{"RoyaltyOverflow", func(c *collection.Config) { c.RoyaltyBps = 10001 }, collection.ErrRoyaltyTooBig},
		{"NilPrice", func(c *collection.Config) { c.PublicPriceWei = nil }, collection.ErrNilPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := collection.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
