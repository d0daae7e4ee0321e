package bigint

import (
	"bytes"
	"encoding/binary"

	"github.com/copyl-sys/ternary/internal/kernel"

	kerr "github.com/copyl-sys/ternary/internal/errors"
)

// Dump serializes b into a fixed binary layout: an 8-byte little-endian
// limb count, a signed sign byte (-1, 0, 1), then the raw limb bytes in
// ascending-weight order. This is a pinned wire format, not a tunable
// domain concern, so it is built on encoding/binary rather than a
// third-party codec.
func Dump(b *BigInt) []byte {
	limbs := b.limbs()
	buf := new(bytes.Buffer)
	buf.Grow(9 + len(limbs))
	binary.Write(buf, binary.LittleEndian, uint64(len(limbs)))
	buf.WriteByte(byte(b.sign))
	buf.Write(limbs)
	return buf.Bytes()
}

// Load reverses Dump, validating the declared limb count against the
// remaining payload and each limb's [0,80] range before accepting it.
func Load(cfg kernel.Config, data []byte) (*BigInt, error) {
	if len(data) < 9 {
		return nil, kerr.New(kerr.ParseError, "bigint.Load", "truncated header")
	}
	n := binary.LittleEndian.Uint64(data[:8])
	signByte := int8(data[8])
	rest := data[9:]
	if uint64(len(rest)) != n {
		return nil, kerr.New(kerr.ParseError, "bigint.Load", "limb count does not match payload length")
	}
	var sign Sign
	switch signByte {
	case -1:
		sign = SignNegative
	case 0:
		sign = SignZero
	case 1:
		sign = SignPositive
	default:
		return nil, kerr.New(kerr.ParseError, "bigint.Load", "invalid sign byte")
	}
	digits := make([]byte, n)
	copy(digits, rest)
	for _, d := range digits {
		if d > 80 {
			return nil, kerr.New(kerr.ParseError, "bigint.Load", "limb value out of range")
		}
	}
	return fromLimbsSigned(cfg, digits, sign)
}
