package bigint

import (
	"context"
	"math"

	kerr "github.com/copyl-sys/ternary/internal/errors"
)

// Pow computes base^e for e ≤ Config.EMax via repeated multiplication
// through the shared cached multiplier. The odd-exponent sign rule falls
// out naturally from Mul's own sign XOR at each step.
func Pow(goCtx context.Context, kc *Context, b *BigInt, e uint32) (*BigInt, error) {
	if int(e) > kc.Config.EMax {
		return nil, kerr.New(kerr.Overflow, "bigint.Pow", "exponent exceeds configured limit")
	}
	if e == 0 {
		return FromI64(kc.Config, 1)
	}
	result, err := b.Clone(kc.Config)
	if err != nil {
		return nil, err
	}
	for i := uint32(1); i < e; i++ {
		select {
		case <-goCtx.Done():
			return nil, kerr.Wrap(goCtx.Err(), kerr.Cancelled, "bigint.Pow", "cancelled during exponentiation")
		default:
		}
		result, err = Mul(goCtx, kc, result, b)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// PowSigned is the public-interface boundary for pow: it accepts a
// possibly-negative exponent and rejects it with NegativeExponent before
// delegating to Pow, matching the external kernel API's (BigInt, u32)
// signature plus its NegativeExponent error case.
func PowSigned(goCtx context.Context, kc *Context, b *BigInt, e int) (*BigInt, error) {
	if e < 0 {
		return nil, kerr.New(kerr.NegativeExponent, "bigint.Pow", "exponent must be non-negative")
	}
	return Pow(goCtx, kc, b, uint32(e))
}

// Fact computes n! for 0 ≤ n ≤ Config.NMax, forming the product in a
// 64-bit accumulator (matching the source's accumulator-based limit)
// before writing it back out as a BigInt. Negative n is Negative; n
// exceeding NMax is Overflow. Full-precision factorial beyond this limit
// is explicitly out of scope.
func Fact(kc *Context, n *BigInt) (*BigInt, error) {
	nv, err := ToI64(n)
	if err != nil {
		return nil, err
	}
	if nv < 0 {
		return nil, kerr.New(kerr.Negative, "bigint.Fact", "argument must be non-negative")
	}
	if nv > int64(kc.Config.NMax) {
		return nil, kerr.New(kerr.Overflow, "bigint.Fact", "argument exceeds configured limit")
	}
	var acc int64 = 1
	for i := int64(2); i <= nv; i++ {
		if acc > math.MaxInt64/i {
			return nil, kerr.New(kerr.Overflow, "bigint.Fact", "64-bit accumulator overflow")
		}
		acc *= i
	}
	return FromI64(kc.Config, acc)
}
