package bigint

import (
	"context"

	kerr "github.com/copyl-sys/ternary/internal/errors"
)

// divmodMagnitudeLimbs performs base-81 long division of |a| by |b| (both
// ascending-weight magnitudes, b nonzero), producing quotient and
// remainder magnitudes. Each position brings down one limb of a into the
// running remainder and binary-searches the largest trial digit d in
// [0, 80] with d·B ≤ R.
func divmodMagnitudeLimbs(goCtx context.Context, b []byte, a []byte) (q, r []byte, err error) {
	n := effectiveLen(a)
	qDigits := make([]byte, n)
	rem := []byte{0}
	for i := n - 1; i >= 0; i-- {
		select {
		case <-goCtx.Done():
			return nil, nil, kerr.Wrap(goCtx.Err(), kerr.Cancelled, "bigint.DivMod", "cancelled during long division")
		default:
		}
		rem = shiftLimbs(rem, 1)
		rem = addMagnitudeLimbs(rem, []byte{a[i]})

		lo, hi := 0, 80
		for lo < hi {
			mid := (lo + hi + 1) / 2
			trial := mulSmallMagnitudeLimbs(b, mid)
			if cmpMagnitudeLimbs(trial, rem) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		qDigits[i] = byte(lo)
		rem = subMagnitudeLimbs(rem, mulSmallMagnitudeLimbs(b, lo))
	}
	return qDigits, rem, nil
}

// DivMod computes (Q, R) with A = Q·B + R and 0 ≤ |R| < |B|: sign(Q) is
// the XOR of operand signs, sign(R) is sign(A) (or zero when R is zero).
// B = 0 is DivByZero.
func DivMod(goCtx context.Context, kc *Context, a, b *BigInt) (*BigInt, *BigInt, error) {
	if b.IsZero() {
		return nil, nil, kerr.New(kerr.DivByZero, "bigint.DivMod", "divisor is zero")
	}
	q, r, err := divmodMagnitudeLimbs(goCtx, b.limbs(), a.limbs())
	if err != nil {
		return nil, nil, err
	}
	qSign := xorSign(a.sign, b.sign)
	quotient, err := fromLimbsSigned(kc.Config, q, qSign)
	if err != nil {
		return nil, nil, err
	}
	remainder, err := fromLimbsSigned(kc.Config, r, a.sign)
	if err != nil {
		return nil, nil, err
	}
	return quotient, remainder, nil
}

// Mod computes A mod B, the remainder half of DivMod.
func Mod(goCtx context.Context, kc *Context, a, b *BigInt) (*BigInt, error) {
	_, r, err := DivMod(goCtx, kc, a, b)
	return r, err
}

// powOfThree computes 3^k via Pow, used by Shl/Shr.
func powOfThree(goCtx context.Context, kc *Context, k uint32) (*BigInt, error) {
	three, err := FromI64(kc.Config, 3)
	if err != nil {
		return nil, err
	}
	return Pow(goCtx, kc, three, k)
}

// Shl computes A · 3^k. The shift amount is unsigned, so a negative shift
// cannot be expressed here and Shl itself never returns InvalidInput.
func Shl(goCtx context.Context, kc *Context, a *BigInt, k uint32) (*BigInt, error) {
	p, err := powOfThree(goCtx, kc, k)
	if err != nil {
		return nil, err
	}
	return Mul(goCtx, kc, a, p)
}

// Shr computes floor_div(A, 3^k).
func Shr(goCtx context.Context, kc *Context, a *BigInt, k uint32) (*BigInt, error) {
	p, err := powOfThree(goCtx, kc, k)
	if err != nil {
		return nil, err
	}
	q, _, err := DivMod(goCtx, kc, a, p)
	return q, err
}
