package bigint

// effectiveLen returns the length of digits after conceptually stripping
// high-order (trailing, in ascending-weight order) zero limbs, without
// mutating digits. Always ≥ 1.
func effectiveLen(digits []byte) int {
	n := len(digits)
	for n > 1 && digits[n-1] == 0 {
		n--
	}
	return n
}

// cmpMagnitudeLimbs compares two ascending-weight limb vectors as
// unsigned magnitudes, ignoring any high-order zero padding. Returns -1,
// 0, or 1.
func cmpMagnitudeLimbs(a, b []byte) int {
	la, lb := effectiveLen(a), effectiveLen(b)
	if la != lb {
		if la < lb {
			return -1
		}
		return 1
	}
	for i := la - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CmpMagnitude compares |a| and |b|, assuming both are canonical.
func CmpMagnitude(a, b *BigInt) int {
	return cmpMagnitudeLimbs(a.limbs(), b.limbs())
}

// Cmp performs a signed comparison of a and b.
func Cmp(a, b *BigInt) int {
	if a.sign != b.sign {
		if a.sign < b.sign {
			return -1
		}
		return 1
	}
	mag := CmpMagnitude(a, b)
	if a.sign == SignNegative {
		return -mag
	}
	return mag
}

// Equal reports whether a and b denote the same value.
func Equal(a, b *BigInt) bool {
	return Cmp(a, b) == 0
}
