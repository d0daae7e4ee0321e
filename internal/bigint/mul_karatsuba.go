package bigint

import (
	"context"

	kerr "github.com/copyl-sys/ternary/internal/errors"
)

// mulKaratsubaLimbs multiplies two magnitudes via recursive Karatsuba,
// falling back to schoolbook below the configured crossover. Cancellation
// is polled at each recursive step boundary, per the spec's cooperative
// cancellation contract.
func mulKaratsubaLimbs(goCtx context.Context, kc *Context, a, b []byte) ([]byte, error) {
	select {
	case <-goCtx.Done():
		return nil, kerr.Wrap(goCtx.Err(), kerr.Cancelled, "bigint.Mul", "cancelled during Karatsuba recursion")
	default:
	}

	n, m := effectiveLen(a), effectiveLen(b)
	maxLen := n
	if m > maxLen {
		maxLen = m
	}
	if maxLen <= kc.Config.KaratsubaCrossover {
		return mulNaiveLimbs(a, b), nil
	}

	half := maxLen / 2
	aLo, aHi := splitAt(a, half, maxLen)
	bLo, bHi := splitAt(b, half, maxLen)

	z0, err := mulKaratsubaLimbs(goCtx, kc, aLo, bLo)
	if err != nil {
		return nil, err
	}
	z2, err := mulKaratsubaLimbs(goCtx, kc, aHi, bHi)
	if err != nil {
		return nil, err
	}
	sumA := addMagnitudeLimbs(aLo, aHi)
	sumB := addMagnitudeLimbs(bLo, bHi)
	z1full, err := mulKaratsubaLimbs(goCtx, kc, sumA, sumB)
	if err != nil {
		return nil, err
	}
	// z1 = (aLo+aHi)(bLo+bHi) - z0 - z2; both subtractions are safe since
	// z1full >= z0+z2 always holds for nonnegative operands.
	z1 := subMagnitudeLimbs(subMagnitudeLimbs(z1full, z0), z2)

	result := addMagnitudeLimbs(z0, shiftLimbs(z1, half))
	result = addMagnitudeLimbs(result, shiftLimbs(z2, 2*half))
	return result, nil
}

// splitAt splits a zero-padded-to-total digit vector at position half into
// its low and high halves.
func splitAt(digits []byte, half, total int) (lo, hi []byte) {
	padded := padTo(digits, total)
	lo = append([]byte(nil), padded[:half]...)
	hi = append([]byte(nil), padded[half:]...)
	return lo, hi
}

func padTo(digits []byte, length int) []byte {
	if len(digits) >= length {
		return digits
	}
	out := make([]byte, length)
	copy(out, digits)
	return out
}

// shiftLimbs multiplies a magnitude by base^k by prepending k zero limbs.
func shiftLimbs(digits []byte, k int) []byte {
	if k == 0 {
		return digits
	}
	out := make([]byte, k+len(digits))
	copy(out[k:], digits)
	return out
}
