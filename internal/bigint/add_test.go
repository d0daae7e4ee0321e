package bigint

import (
	"testing"

	"github.com/copyl-sys/ternary/internal/kernel"
)

func TestAddSub(t *testing.T) {
	cfg := kernel.DefaultConfig()
	tests := []struct {
		a, b     int64
		wantAdd  int64
		wantSub  int64
	}{
		{3, 4, 7, -1},
		{0, 5, 5, -5},
		{5, 0, 5, 5},
		{-3, -4, -7, 1},
		{5, -5, 0, 10},
		{-5, 5, 0, -10},
		{100, -30, 70, 130},
	}
	for _, tc := range tests {
		a, _ := FromI64(cfg, tc.a)
		b, _ := FromI64(cfg, tc.b)

		sum, err := Add(cfg, a, b)
		if err != nil {
			t.Fatal(err)
		}
		got, _ := ToI64(sum)
		if got != tc.wantAdd {
			t.Errorf("Add(%d,%d) = %d, want %d", tc.a, tc.b, got, tc.wantAdd)
		}

		diff, err := Sub(cfg, a, b)
		if err != nil {
			t.Fatal(err)
		}
		got, _ = ToI64(diff)
		if got != tc.wantSub {
			t.Errorf("Sub(%d,%d) = %d, want %d", tc.a, tc.b, got, tc.wantSub)
		}
	}
}

func TestAddCancellationToZero(t *testing.T) {
	cfg := kernel.DefaultConfig()
	a, _ := FromI64(cfg, 42)
	b, _ := FromI64(cfg, -42)
	sum, err := Add(cfg, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Sign() != SignZero {
		t.Fatalf("42 + (-42) sign = %v, want SignZero", sum.Sign())
	}
}
