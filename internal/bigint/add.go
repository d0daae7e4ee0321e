package bigint

import "github.com/copyl-sys/ternary/internal/kernel"

const base = 81

// addMagnitudeLimbs adds two unsigned magnitudes in base 81, producing a
// result of length max(len(a),len(b))+1 (the carry-out limb, normalized
// away by the caller if zero).
func addMagnitudeLimbs(a, b []byte) []byte {
	la, lb := effectiveLen(a), effectiveLen(b)
	n := la
	if lb > n {
		n = lb
	}
	out := make([]byte, n+1)
	carry := 0
	for i := 0; i < n; i++ {
		x, y := 0, 0
		if i < la {
			x = int(a[i])
		}
		if i < lb {
			y = int(b[i])
		}
		s := x + y + carry
		carry = s / base
		out[i] = byte(s % base)
	}
	out[n] = byte(carry)
	return out
}

// subMagnitudeLimbs subtracts |b| from |a|, assuming |a| ≥ |b|. Proceeds
// right-to-left (by weight) with borrow; never underflows past the most
// significant limb under the precondition.
func subMagnitudeLimbs(a, b []byte) []byte {
	la, lb := effectiveLen(a), effectiveLen(b)
	out := make([]byte, la)
	borrow := 0
	for i := 0; i < la; i++ {
		x := int(a[i])
		y := 0
		if i < lb {
			y = int(b[i])
		}
		d := x - y - borrow
		if d < 0 {
			d += base
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(d)
	}
	return out
}

// Add computes A + B. If the signs agree (or either operand is zero) it
// is a magnitude add inheriting the nonzero sign; otherwise magnitudes are
// compared and the smaller is subtracted from the larger, taking the
// larger's sign (or SignZero on exact cancellation).
func Add(cfg kernel.Config, a, b *BigInt) (*BigInt, error) {
	if a.IsZero() {
		return b.Clone(cfg)
	}
	if b.IsZero() {
		return a.Clone(cfg)
	}
	if a.sign == b.sign {
		sum := addMagnitudeLimbs(a.limbs(), b.limbs())
		return fromLimbsSigned(cfg, sum, a.sign)
	}
	switch CmpMagnitude(a, b) {
	case 0:
		return Zero(), nil
	case 1:
		diff := subMagnitudeLimbs(a.limbs(), b.limbs())
		return fromLimbsSigned(cfg, diff, a.sign)
	default:
		diff := subMagnitudeLimbs(b.limbs(), a.limbs())
		return fromLimbsSigned(cfg, diff, b.sign)
	}
}

// Sub computes A - B as A + (-B).
func Sub(cfg kernel.Config, a, b *BigInt) (*BigInt, error) {
	negB, err := b.Neg(cfg)
	if err != nil {
		return nil, err
	}
	return Add(cfg, a, negB)
}
