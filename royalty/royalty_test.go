package royalty_test

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"

	"github.com/mangotango-xyz/go-mint/royalty"
)

func TestAmount(t *testing.T) {
	cases := []struct {
		name  string
		price uint64
		bps   uint16
		want  uint64
	}{
		{"ZeroPrice", 0, 750, 0},
		{"ZeroBps", 1_000_000, 0, 0},
		{"FullRate", 1_000_000, 10000, 1_000_000},
		{"SevenPointFive", 1_000_000_000_000_000_000, 750, 75_000_000_000_000_000},
		{"FloorsDown", 99, 750, 7},     // 99*750/10000 = 7.425
		{"OneWeiUnderBps", 13, 1, 0},   // 13*1/10000 floors to 0
		{"RoundTripBoundary", 10001, 9999, 10000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := royalty.Amount(uint256.NewInt(tc.price), tc.bps)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Uint64() != tc.want {
				t.Errorf("Amount(%d, %d) = %s, want %d", tc.price, tc.bps, got, tc.want)
			}
		})
	}

	t.Run("BpsTooHigh", func(t *testing.T) {
		if _, err := royalty.Amount(uint256.NewInt(1), 10001); !errors.Is(err, royalty.ErrBpsTooHigh) {
			t.Errorf("expected ErrBpsTooHigh, got %v", err)
		}
	})

	// No overflow even when price*bps exceeds 256 bits.
	t.Run("HugePrice", func(t *testing.T) {
		max := new(uint256.Int).SetAllOne()
		got, err := royalty.Amount(max, 10000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Eq(max) {
			t.Errorf("10000 bps of max should be max, got %s", got)
		}
		half, err := royalty.Amount(max, 5000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := new(uint256.Int).Rsh(max, 1) // floor(max/2)
		if !half.Eq(want) {
			t.Errorf("5000 bps of max: got %s, want %s", half, want)
		}
	})

	// Floor-division correctness: amount*10000 <= price*bps < (amount+1)*10000.
	t.Run("FloorProperty", func(t *testing.T) {
		denom := uint256.NewInt(10000)
		for _, price := range []uint64{0, 1, 99, 10007, 50_000_000_000_000_000} {
			for _, bps := range []uint16{0, 1, 33, 750, 9999, 10000} {
				p := uint256.NewInt(price)
				amount, err := royalty.Amount(p, bps)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				exact := new(uint256.Int).Mul(p, uint256.NewInt(uint64(bps)))
				lower := new(uint256.Int).Mul(amount, denom)
				upper := new(uint256.Int).Mul(new(uint256.Int).AddUint64(amount, 1), denom)
				if lower.Gt(exact) || !exact.Lt(upper) {
					t.Errorf("floor violated for price=%d bps=%d: amount=%s", price, bps, amount)
				}
			}
		}
	})
}
