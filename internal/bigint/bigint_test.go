package bigint

import (
	"testing"

	"github.com/copyl-sys/ternary/internal/kernel"
)

func mustParse(t *testing.T, cfg kernel.Config, text string, radix Radix) *BigInt {
	t.Helper()
	b, err := Parse(cfg, text, radix)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return b
}

func TestZeroCanonical(t *testing.T) {
	z := Zero()
	if !z.IsZero() {
		t.Fatal("Zero() is not IsZero()")
	}
	if z.Sign() != SignZero {
		t.Fatalf("Zero() sign = %v, want SignZero", z.Sign())
	}
	if z.Len() != 1 {
		t.Fatalf("Zero() len = %d, want 1", z.Len())
	}
}

func TestFromLimbsSignedNormalizesZero(t *testing.T) {
	cfg := kernel.DefaultConfig()
	b, err := fromLimbsSigned(cfg, []byte{0, 0, 0}, SignPositive)
	if err != nil {
		t.Fatal(err)
	}
	if b.Sign() != SignZero {
		t.Fatalf("sign = %v, want SignZero for all-zero magnitude", b.Sign())
	}
	if b.Len() != 1 {
		t.Fatalf("len = %d, want 1", b.Len())
	}
}

func TestCloneIndependence(t *testing.T) {
	cfg := kernel.DefaultConfig()
	a := mustParse(t, cfg, "1210", Ternary)
	clone, err := a.Clone(cfg)
	if err != nil {
		t.Fatal(err)
	}
	clone.store.ViewMut()[0] = 77
	if Equal(a, clone) {
		t.Fatal("mutating clone's store affected the original")
	}
}

func TestNeg(t *testing.T) {
	cfg := kernel.DefaultConfig()
	a := mustParse(t, cfg, "120", Ternary)
	neg, err := a.Neg(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if neg.Sign() != SignNegative {
		t.Fatalf("Neg sign = %v, want SignNegative", neg.Sign())
	}
	back, err := neg.Neg(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, back) {
		t.Fatal("double negation did not round-trip")
	}
	z := Zero()
	negZero, err := z.Neg(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if negZero.Sign() != SignZero {
		t.Fatal("Neg(0) must remain SignZero")
	}
}
