package bigint

import (
	"context"

	"github.com/copyl-sys/ternary/internal/kernel"
)

// Gcd computes the non-negative greatest common divisor of a and b via
// the Euclidean algorithm, each step folded through DivMod.
// Gcd(0, 0) is zero.
func Gcd(goCtx context.Context, kc *Context, a, b *BigInt) (*BigInt, error) {
	x, err := absValue(kc.Config, a)
	if err != nil {
		return nil, err
	}
	y, err := absValue(kc.Config, b)
	if err != nil {
		return nil, err
	}
	for !y.IsZero() {
		_, r, err := DivMod(goCtx, kc, x, y)
		if err != nil {
			return nil, err
		}
		x, y = y, r
	}
	return x, nil
}

func absValue(cfg kernel.Config, a *BigInt) (*BigInt, error) {
	if a.sign == SignNegative {
		return a.Neg(cfg)
	}
	return a.Clone(cfg)
}
