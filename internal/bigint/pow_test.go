package bigint

import (
	"context"
	"testing"
)

func TestPowSigned(t *testing.T) {
	kc := New()
	ctx := context.Background()
	tests := []struct{ base, exp int; want int64 }{
		{3, 0, 1},
		{3, 4, 81},
		{-3, 3, -27},
		{-3, 2, 9},
		{2, 10, 1024},
	}
	for _, tc := range tests {
		b, _ := FromI64(kc.Config, int64(tc.base))
		got, err := PowSigned(ctx, kc, b, tc.exp)
		if err != nil {
			t.Fatalf("PowSigned(%d,%d): %v", tc.base, tc.exp, err)
		}
		v, _ := ToI64(got)
		if v != tc.want {
			t.Errorf("PowSigned(%d,%d) = %d, want %d", tc.base, tc.exp, v, tc.want)
		}
	}
}

func TestPowSignedNegativeExponent(t *testing.T) {
	kc := New()
	ctx := context.Background()
	b, _ := FromI64(kc.Config, 3)
	if _, err := PowSigned(ctx, kc, b, -1); err == nil {
		t.Fatal("expected NegativeExponent error")
	}
}

func TestPowOverflow(t *testing.T) {
	kc := New()
	kc.Config.EMax = 5
	ctx := context.Background()
	b, _ := FromI64(kc.Config, 3)
	if _, err := PowSigned(ctx, kc, b, 6); err == nil {
		t.Fatal("expected Overflow error exceeding EMax")
	}
}

func TestFact(t *testing.T) {
	kc := New()
	tests := []struct {
		n    int64
		want int64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, tc := range tests {
		n, _ := FromI64(kc.Config, tc.n)
		got, err := Fact(kc, n)
		if err != nil {
			t.Fatalf("Fact(%d): %v", tc.n, err)
		}
		v, _ := ToI64(got)
		if v != tc.want {
			t.Errorf("Fact(%d) = %d, want %d", tc.n, v, tc.want)
		}
	}
}

func TestFactOutOfRange(t *testing.T) {
	kc := New()
	neg, _ := FromI64(kc.Config, -1)
	if _, err := Fact(kc, neg); err == nil {
		t.Fatal("expected Negative error for Fact(-1)")
	}
	tooBig, _ := FromI64(kc.Config, int64(kc.Config.NMax+1))
	if _, err := Fact(kc, tooBig); err == nil {
		t.Fatal("expected Overflow error for Fact(NMax+1)")
	}
}
