package bigint

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"

	kerr "github.com/copyl-sys/ternary/internal/errors"
)

var bigBase = big.NewInt(base)

// limbsToBigIntValue reassembles a base-81 magnitude into a math/big.Int
// so it can be handed to bigfft's FFT-based convolution.
func limbsToBigIntValue(digits []byte) *big.Int {
	v := new(big.Int)
	n := effectiveLen(digits)
	for i := n - 1; i >= 0; i-- {
		v.Mul(v, bigBase)
		v.Add(v, big.NewInt(int64(digits[i])))
	}
	return v
}

// bigIntValueToLimbs decomposes a nonnegative math/big.Int back into
// ascending-weight base-81 limbs.
func bigIntValueToLimbs(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0}
	}
	cur := new(big.Int).Set(v)
	mod := new(big.Int)
	var digits []byte
	for cur.Sign() > 0 {
		cur.DivMod(cur, bigBase, mod)
		digits = append(digits, byte(mod.Int64()))
	}
	return digits
}

// mulFFTLimbs multiplies two magnitudes via bigfft's real-valued FFT
// convolution over the reassembled math/big representation, then
// re-expands the product into base-81 limbs. It verifies every limb lands
// in [0, 80] and that the result isn't implausibly longer than the
// operands before accepting it, returning Overflow otherwise so the
// caller can fall back to Karatsuba rather than trust a corrupted
// convolution.
func mulFFTLimbs(a, b []byte) ([]byte, error) {
	x := limbsToBigIntValue(a)
	y := limbsToBigIntValue(b)
	prod := bigfft.Mul(x, y)
	digits := bigIntValueToLimbs(prod)

	maxPlausible := effectiveLen(a) + effectiveLen(b) + 2
	if len(digits) > maxPlausible {
		return nil, kerr.New(kerr.Overflow, "bigint.mulFFTLimbs", "fft convolution produced an implausibly long result")
	}
	for _, d := range digits {
		if d > 80 {
			return nil, kerr.New(kerr.Overflow, "bigint.mulFFTLimbs", "fft convolution left a residual carry outside [0,80]")
		}
	}
	return digits, nil
}
