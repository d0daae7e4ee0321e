package eval

import (
	"context"

	"github.com/copyl-sys/ternary/internal/bigint"
	kerr "github.com/copyl-sys/ternary/internal/errors"
)

// Opcode names one of the eight operations the discrete opcode surface
// can select.
type Opcode int

const (
	OpAdd Opcode = iota
	OpSub
	OpMul
	OpMod
	OpAnd
	OpOr
	OpExp
	OpGcd
)

var opcodeNames = [...]string{"ADD", "SUB", "MUL", "MOD", "AND", "OR", "EXP", "GCD"}

func (op Opcode) String() string {
	if int(op) < 0 || int(op) >= len(opcodeNames) {
		return "UNKNOWN"
	}
	return opcodeNames[op]
}

// DecodeOpcode parses a fixed discrete opcode word: three leading
// ternary digits encoding the opcode's value (0-7), followed by two
// trailing ternary digits encoding the trit-sum of the leading digits
// modulo 9. A checksum mismatch or an opcode value outside [0,7] is
// InvalidInput.
func DecodeOpcode(word string) (Opcode, error) {
	if len(word) != 5 {
		return 0, kerr.New(kerr.InvalidInput, "eval.DecodeOpcode", "opcode word must be exactly 5 ternary digits")
	}
	body, check := word[:3], word[3:]

	val, sum, err := ternaryValueAndSum(body)
	if err != nil {
		return 0, err
	}
	checkVal, _, err := ternaryValueAndSum(check)
	if err != nil {
		return 0, err
	}
	if checkVal != sum%9 {
		return 0, kerr.New(kerr.InvalidInput, "eval.DecodeOpcode", "checksum mismatch")
	}
	if val < 0 || val > int(OpGcd) {
		return 0, kerr.New(kerr.InvalidInput, "eval.DecodeOpcode", "opcode value out of range")
	}
	return Opcode(val), nil
}

func ternaryValueAndSum(digits string) (value, sum int, err error) {
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '2' {
			return 0, 0, kerr.New(kerr.InvalidInput, "eval.ternaryValueAndSum", "out-of-alphabet ternary digit")
		}
		d := int(c - '0')
		value = value*3 + d
		sum += d
	}
	return value, sum, nil
}

// Execute decodes word and applies it to the two 64-bit operands,
// folding through the bigint kernel and returning a 64-bit result.
// Overflow of either operand or the result is Overflow.
func Execute(goCtx context.Context, kc *bigint.Context, word string, a, b int64) (int64, error) {
	op, err := DecodeOpcode(word)
	if err != nil {
		return 0, err
	}
	av, err := bigint.FromI64(kc.Config, a)
	if err != nil {
		return 0, err
	}
	bv, err := bigint.FromI64(kc.Config, b)
	if err != nil {
		return 0, err
	}

	var result *bigint.BigInt
	switch op {
	case OpAdd:
		result, err = bigint.Add(kc.Config, av, bv)
	case OpSub:
		result, err = bigint.Sub(kc.Config, av, bv)
	case OpMul:
		result, err = bigint.Mul(goCtx, kc, av, bv)
	case OpMod:
		result, err = bigint.Mod(goCtx, kc, av, bv)
	case OpAnd:
		result, err = bigint.And(kc.Config, av, bv)
	case OpOr:
		result, err = bigint.Or(kc.Config, av, bv)
	case OpExp:
		result, err = bigint.PowSigned(goCtx, kc, av, int(b))
	case OpGcd:
		result, err = bigint.Gcd(goCtx, kc, av, bv)
	default:
		return 0, kerr.New(kerr.InvalidInput, "eval.Execute", "unhandled opcode")
	}
	if err != nil {
		return 0, err
	}
	return bigint.ToI64(result)
}
