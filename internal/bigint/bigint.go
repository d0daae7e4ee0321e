// Package bigint implements arbitrary-precision ternary integers packed
// four trits to a base-81 limb, plus the additive, multiplicative,
// divisive, base-conversion, and trit-logic kernels that operate on them.
package bigint

import (
	"github.com/copyl-sys/ternary/internal/kernel"
	"github.com/copyl-sys/ternary/internal/limb"
)

// Sign is the sign of a BigInt. Zero always carries SignZero; no other
// value may.
type Sign int8

const (
	SignNegative Sign = -1
	SignZero     Sign = 0
	SignPositive Sign = 1
)

// BigInt is a sign plus a base-81 limb store, in canonical form: no
// high-order zero limbs except the single-limb zero, and sign == SignZero
// iff the magnitude is zero.
type BigInt struct {
	sign  Sign
	store *limb.Store
}

// limbs returns the canonical ascending-weight limb vector (limb i has
// weight 81^i).
func (b *BigInt) limbs() []byte {
	if b.store == nil {
		return []byte{0}
	}
	return b.store.View()
}

// Sign reports the BigInt's sign.
func (b *BigInt) Sign() Sign { return b.sign }

// IsZero reports whether the value is zero.
func (b *BigInt) IsZero() bool { return b.sign == SignZero }

// Len reports the canonical limb count (≥ 1).
func (b *BigInt) Len() int { return len(b.limbs()) }

// Release returns the BigInt's backing store. BigInts produced by this
// package's operations may be released once the caller is done with them;
// releasing is optional for inline-backed values (the GC reclaims them)
// but required to promptly free a mapped backing's address space.
func (b *BigInt) Release() error {
	if b.store == nil {
		return nil
	}
	return b.store.Release()
}

// fromLimbsSigned builds a canonical BigInt from a little-weight-ascending
// digit slice and an intended sign, normalizing (stripping high-order
// zeros, forcing sign to SignZero when the magnitude is zero) and copying
// the digits into a freshly allocated Store sized per cfg.MapThreshold.
func fromLimbsSigned(cfg kernel.Config, digits []byte, sign Sign) (*BigInt, error) {
	n := normalizeLen(digits)
	if allZero(digits[:n]) {
		sign = SignZero
		n = 1
	}
	var st *limb.Store
	var err error
	if n >= cfg.MapThreshold && cfg.MapDir != "" {
		st, err = limb.AllocateFileBacked(n, cfg.MapDir)
	} else {
		st, err = limb.Allocate(n, cfg.MapThreshold)
	}
	if err != nil {
		return nil, err
	}
	copy(st.ViewMut(), digits[:n])
	return &BigInt{sign: sign, store: st}, nil
}

// normalizeLen returns the shortest prefix length of digits (≥ 1) after
// stripping high-order (highest-index) zero limbs.
func normalizeLen(digits []byte) int {
	n := len(digits)
	for n > 1 && digits[n-1] == 0 {
		n--
	}
	return n
}

func allZero(digits []byte) bool {
	for _, d := range digits {
		if d != 0 {
			return false
		}
	}
	return true
}

// Zero returns the canonical zero BigInt.
func Zero() *BigInt {
	return &BigInt{sign: SignZero, store: mustZeroStore()}
}

func mustZeroStore() *limb.Store {
	st, err := limb.Allocate(1, 1<<30) // always inline; a single limb never maps
	if err != nil {
		panic(err)
	}
	return st
}

// Clone deep-copies a BigInt, including its limb store.
func (b *BigInt) Clone(cfg kernel.Config) (*BigInt, error) {
	digits := append([]byte(nil), b.limbs()...)
	return fromLimbsSigned(cfg, digits, b.sign)
}

// Neg returns -A. Negating zero returns zero.
func (b *BigInt) Neg(cfg kernel.Config) (*BigInt, error) {
	if b.IsZero() {
		return Zero(), nil
	}
	digits := append([]byte(nil), b.limbs()...)
	return fromLimbsSigned(cfg, digits, negSign(b.sign))
}

func negSign(s Sign) Sign {
	switch s {
	case SignPositive:
		return SignNegative
	case SignNegative:
		return SignPositive
	default:
		return SignZero
	}
}
