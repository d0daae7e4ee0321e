package bigint

import (
	"context"

	kerr "github.com/copyl-sys/ternary/internal/errors"
)

// mulNaiveLimbs is the schoolbook O(n·m) limb convolution with a single
// carry-normalization pass at the end.
func mulNaiveLimbs(a, b []byte) []byte {
	la, lb := effectiveLen(a), effectiveLen(b)
	acc := make([]int64, la+lb)
	for i := 0; i < la; i++ {
		ai := int64(a[i])
		if ai == 0 {
			continue
		}
		for j := 0; j < lb; j++ {
			acc[i+j] += ai * int64(b[j])
		}
	}
	out := make([]byte, la+lb+1)
	var carry int64
	for i := 0; i < len(acc); i++ {
		v := acc[i] + carry
		out[i] = byte(v % base)
		carry = v / base
	}
	out[len(acc)] = byte(carry)
	return out
}

func xorSign(a, b Sign) Sign {
	if a == SignZero || b == SignZero {
		return SignZero
	}
	if a == b {
		return SignPositive
	}
	return SignNegative
}

// Mul computes A × B, dispatching to schoolbook, Karatsuba, or (above a
// second crossover) the bigfft-backed convolution, consulting and
// populating the shared multiplication cache. goCtx is polled for
// cancellation between Karatsuba's recursive steps; it may be
// context.Background() when cancellation is not needed.
func Mul(goCtx context.Context, kc *Context, a, b *BigInt) (*BigInt, error) {
	if a.IsZero() || b.IsZero() {
		return Zero(), nil
	}
	sign := xorSign(a.sign, b.sign)

	key := cacheKey(a, b)
	if entry, ok := kc.Cache.lookup(key); ok {
		return fromLimbsSigned(kc.Config, entry.digits, sign)
	}

	v, err, _ := kc.Cache.group.Do(key, func() (interface{}, error) {
		digits, computeErr := mulDispatch(goCtx, kc, a.limbs(), b.limbs())
		if computeErr != nil {
			return nil, computeErr
		}
		kc.Cache.store(key, digits)
		return digits, nil
	})
	if err != nil {
		return nil, err
	}
	return fromLimbsSigned(kc.Config, v.([]byte), sign)
}

func mulDispatch(goCtx context.Context, kc *Context, a, b []byte) ([]byte, error) {
	n := effectiveLen(a)
	m := effectiveLen(b)
	maxLen := n
	if m > maxLen {
		maxLen = m
	}
	if maxLen <= kc.Config.KaratsubaCrossover {
		return mulNaiveLimbs(a, b), nil
	}
	if kc.Config.FFTCrossover > 0 && maxLen >= kc.Config.FFTCrossover {
		digits, err := mulFFTLimbs(a, b)
		if err == nil {
			return digits, nil
		}
		if !kerr.Is(err, kerr.Overflow) {
			return nil, err
		}
		kc.Logger.Warn("fft multiply overflow check failed, falling back to Karatsuba",
			"limbs", maxLen)
	}
	return mulKaratsubaLimbs(goCtx, kc, a, b)
}
