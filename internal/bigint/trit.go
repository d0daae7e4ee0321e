package bigint

import "github.com/copyl-sys/ternary/internal/kernel"

// trits returns b's magnitude as a most-significant-first sequence of
// unsigned trits (values in {0,1,2}); trit logic operates in the unsigned
// domain regardless of b's sign, per spec.
func trits(b *BigInt) []byte {
	return limbsToTernaryDigits(b.limbs())
}

func padLeft(t []byte, n int) []byte {
	if len(t) >= n {
		return t
	}
	out := make([]byte, n)
	copy(out[n-len(t):], t)
	return out
}

// combineTrits zero-pads the shorter operand on the most-significant side
// and applies f elementwise, producing a new non-negative BigInt (sign
// SignZero only when every resulting trit is zero).
func combineTrits(cfg kernel.Config, a, b *BigInt, f func(x, y byte) byte) (*BigInt, error) {
	ta, tb := trits(a), trits(b)
	n := len(ta)
	if len(tb) > n {
		n = len(tb)
	}
	ta, tb = padLeft(ta, n), padLeft(tb, n)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = f(ta[i], tb[i])
	}
	return fromTritsUnsigned(cfg, out)
}

func fromTritsUnsigned(cfg kernel.Config, tr []byte) (*BigInt, error) {
	limbs := ternaryDigitsToLimbs(tr)
	sign := SignPositive
	if allZero(limbs) {
		sign = SignZero
	}
	return fromLimbsSigned(cfg, limbs, sign)
}

// And computes the Kleene min (trit-AND) of a and b.
func And(cfg kernel.Config, a, b *BigInt) (*BigInt, error) {
	return combineTrits(cfg, a, b, func(x, y byte) byte {
		if x < y {
			return x
		}
		return y
	})
}

// Or computes the Kleene max (trit-OR) of a and b.
func Or(cfg kernel.Config, a, b *BigInt) (*BigInt, error) {
	return combineTrits(cfg, a, b, func(x, y byte) byte {
		if x > y {
			return x
		}
		return y
	})
}

// Xor computes (x+y) mod 3 elementwise.
func Xor(cfg kernel.Config, a, b *BigInt) (*BigInt, error) {
	return combineTrits(cfg, a, b, func(x, y byte) byte {
		return (x + y) % 3
	})
}

// Not computes the unsigned-domain complement 2 - x elementwise.
func Not(cfg kernel.Config, a *BigInt) (*BigInt, error) {
	ta := trits(a)
	out := make([]byte, len(ta))
	for i, t := range ta {
		out[i] = 2 - t
	}
	return fromTritsUnsigned(cfg, out)
}
