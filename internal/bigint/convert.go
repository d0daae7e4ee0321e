package bigint

import (
	"math"
	"strings"

	"github.com/copyl-sys/ternary/internal/kernel"

	kerr "github.com/copyl-sys/ternary/internal/errors"
)

// Radix selects the external text representation used by Parse/ToText.
type Radix int

const (
	Ternary Radix = iota
	BalancedTernary
)

// mulSmallMagnitudeLimbs multiplies an unsigned magnitude by a small
// non-negative factor k (k < base*base is plenty for this kernel's uses),
// carry-normalizing in base 81.
func mulSmallMagnitudeLimbs(digits []byte, k int) []byte {
	n := effectiveLen(digits)
	out := make([]byte, n+2)
	carry := 0
	for i := 0; i < n; i++ {
		v := int(digits[i])*k + carry
		out[i] = byte(v % base)
		carry = v / base
	}
	i := n
	for carry > 0 {
		out[i] = byte(carry % base)
		carry /= base
		i++
	}
	return out
}

// divmodSmallMagnitudeLimbs divides an unsigned magnitude by a small
// positive divisor k (k < base), returning the quotient limb vector and
// the remainder.
func divmodSmallMagnitudeLimbs(digits []byte, k int) ([]byte, int) {
	n := effectiveLen(digits)
	out := make([]byte, n)
	rem := 0
	for i := n - 1; i >= 0; i-- {
		cur := rem*base + int(digits[i])
		out[i] = byte(cur / k)
		rem = cur % k
	}
	return out, rem
}

// FromI64 converts a machine integer to a BigInt.
func FromI64(cfg kernel.Config, n int64) (*BigInt, error) {
	if n == 0 {
		return Zero(), nil
	}
	sign := SignPositive
	var mag uint64
	if n < 0 {
		sign = SignNegative
		if n == math.MinInt64 {
			mag = uint64(math.MaxInt64) + 1
		} else {
			mag = uint64(-n)
		}
	} else {
		mag = uint64(n)
	}
	var digits []byte
	for mag > 0 {
		digits = append(digits, byte(mag%base))
		mag /= base
	}
	if len(digits) == 0 {
		digits = []byte{0}
	}
	return fromLimbsSigned(cfg, digits, sign)
}

// ToI64 converts a BigInt to a machine integer, returning Overflow if the
// value is out of [math.MinInt64, math.MaxInt64].
func ToI64(b *BigInt) (int64, error) {
	limbs := b.limbs()
	n := effectiveLen(limbs)
	var mag uint64
	for i := n - 1; i >= 0; i-- {
		if mag > (math.MaxUint64-uint64(limbs[i]))/base {
			return 0, kerr.New(kerr.Overflow, "bigint.ToI64", "magnitude exceeds 64 bits")
		}
		mag = mag*base + uint64(limbs[i])
	}
	if b.sign == SignNegative {
		if mag > uint64(math.MaxInt64)+1 {
			return 0, kerr.New(kerr.Overflow, "bigint.ToI64", "negative magnitude exceeds int64 range")
		}
		if mag == uint64(math.MaxInt64)+1 {
			return math.MinInt64, nil
		}
		return -int64(mag), nil
	}
	if mag > math.MaxInt64 {
		return 0, kerr.New(kerr.Overflow, "bigint.ToI64", "magnitude exceeds int64 range")
	}
	return int64(mag), nil
}

// limbsToTernaryDigits converts an ascending-weight base-81 limb vector
// into its most-significant-first unsigned ternary trit sequence (each
// byte in {0,1,2}), via repeated division by 3 per spec.
func limbsToTernaryDigits(limbs []byte) []byte {
	cur := append([]byte(nil), limbs...)
	if allZero(cur) {
		return []byte{0}
	}
	var trits []byte
	for !allZero(cur) {
		q, r := divmodSmallMagnitudeLimbs(cur, 3)
		trits = append(trits, byte(r))
		cur = q
	}
	// trits is least-significant-first; reverse for standard order.
	for i, j := 0, len(trits)-1; i < j; i, j = i+1, j-1 {
		trits[i], trits[j] = trits[j], trits[i]
	}
	return trits
}

// ternaryDigitsToLimbs packs a most-significant-first unsigned trit
// sequence into ascending-weight base-81 limbs, four trits per limb, per
// spec §4.6: any leading 1–3 trits fold into a scalar residual, then each
// subsequent group of four folds in as a new low limb.
func ternaryDigitsToLimbs(trits []byte) []byte {
	lead := len(trits) % 4
	if lead == 0 && len(trits) > 0 {
		lead = 4
	}
	acc := 0
	i := 0
	for ; i < lead; i++ {
		acc = acc*3 + int(trits[i])
	}
	limbs := []byte{byte(acc)}
	for ; i < len(trits); i += 4 {
		g := 0
		for j := 0; j < 4; j++ {
			g = g*3 + int(trits[i+j])
		}
		limbs = append([]byte{byte(g)}, limbs...)
	}
	return limbs
}

// Parse converts external text into a canonical BigInt per radix.
func Parse(cfg kernel.Config, text string, radix Radix) (*BigInt, error) {
	if text == "" {
		return nil, kerr.New(kerr.InvalidInput, "bigint.Parse", "empty input")
	}
	neg := false
	body := text
	if body[0] == '-' {
		neg = true
		body = body[1:]
	}
	if body == "" {
		return nil, kerr.New(kerr.InvalidInput, "bigint.Parse", "missing digits after sign")
	}
	switch radix {
	case Ternary:
		trits := make([]byte, len(body))
		for i := 0; i < len(body); i++ {
			c := body[i]
			if c < '0' || c > '2' {
				return nil, kerr.New(kerr.InvalidInput, "bigint.Parse", "out-of-alphabet ternary digit")
			}
			trits[i] = c - '0'
		}
		limbs := ternaryDigitsToLimbs(trits)
		sign := SignPositive
		if neg {
			sign = SignNegative
		}
		return fromLimbsSigned(cfg, limbs, sign)
	case BalancedTernary:
		acc := Zero()
		for i := 0; i < len(body); i++ {
			var d int
			switch body[i] {
			case 'T':
				d = -1
			case '0':
				d = 0
			case '1':
				d = 1
			default:
				return nil, kerr.New(kerr.InvalidInput, "bigint.Parse", "out-of-alphabet balanced-ternary digit")
			}
			next, err := hornerStep(cfg, acc, d)
			if err != nil {
				return nil, err
			}
			acc = next
		}
		if neg {
			return acc.Neg(cfg)
		}
		return acc, nil
	default:
		return nil, kerr.New(kerr.InvalidInput, "bigint.Parse", "unknown radix")
	}
}

// hornerStep computes acc*3 + d for a signed small digit d ∈ {-1,0,1},
// used by the balanced-ternary parser's Horner accumulation.
func hornerStep(cfg kernel.Config, acc *BigInt, d int) (*BigInt, error) {
	scaled := mulSmallMagnitudeLimbs(acc.limbs(), 3)
	scaledSign := acc.sign
	scaledBI, err := fromLimbsSigned(cfg, scaled, scaledSign)
	if err != nil {
		return nil, err
	}
	if d == 0 {
		return scaledBI, nil
	}
	delta, err := FromI64(cfg, int64(d))
	if err != nil {
		return nil, err
	}
	return Add(cfg, scaledBI, delta)
}

// ToText renders a canonical BigInt as external text per radix.
func ToText(b *BigInt, radix Radix) (string, error) {
	switch radix {
	case Ternary:
		trits := limbsToTernaryDigits(b.limbs())
		var sb strings.Builder
		if b.sign == SignNegative {
			sb.WriteByte('-')
		}
		for _, t := range trits {
			sb.WriteByte('0' + t)
		}
		return sb.String(), nil
	case BalancedTernary:
		digits, err := balancedDigits(b)
		if err != nil {
			return "", err
		}
		var sb strings.Builder
		if b.sign == SignNegative {
			sb.WriteByte('-')
		}
		for _, d := range digits {
			switch d {
			case -1:
				sb.WriteByte('T')
			case 0:
				sb.WriteByte('0')
			case 1:
				sb.WriteByte('1')
			}
		}
		return sb.String(), nil
	default:
		return "", kerr.New(kerr.InvalidInput, "bigint.ToText", "unknown radix")
	}
}

// balancedDigits derives the standard balanced-ternary digit sequence
// (most-significant-first, values in {-1,0,1}) for |b|, via the classic
// repeated-division-with-correction algorithm.
func balancedDigits(b *BigInt) ([]int, error) {
	cur := append([]byte(nil), b.limbs()...)
	if allZero(cur) {
		return []int{0}, nil
	}
	var digits []int
	for !allZero(cur) {
		q, r := divmodSmallMagnitudeLimbs(cur, 3)
		switch r {
		case 0:
			digits = append(digits, 0)
		case 1:
			digits = append(digits, 1)
		case 2:
			digits = append(digits, -1)
			q = addMagnitudeLimbs(q, []byte{1})
		}
		cur = q
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits, nil
}
