// Package matrix implements a dense matrix of BigInt values over the
// additive and multiplicative kernels in internal/bigint.
package matrix

import (
	"context"

	"github.com/copyl-sys/ternary/internal/bigint"
	kerr "github.com/copyl-sys/ternary/internal/errors"
	"github.com/copyl-sys/ternary/internal/kernel"
)

// Matrix is a rows×cols grid of BigInt values stored in row-major order.
type Matrix struct {
	rows, cols int
	data       []*bigint.BigInt
}

// New builds a rows×cols matrix, every cell initialized to zero.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, kerr.New(kerr.InvalidInput, "matrix.New", "dimensions must be positive")
	}
	data := make([]*bigint.BigInt, rows*cols)
	for i := range data {
		data[i] = bigint.Zero()
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Rows reports the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols reports the column count.
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) index(r, c int) (int, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, kerr.New(kerr.InvalidInput, "matrix.index", "cell out of bounds")
	}
	return r*m.cols + c, nil
}

// At returns the value at (r, c).
func (m *Matrix) At(r, c int) (*bigint.BigInt, error) {
	i, err := m.index(r, c)
	if err != nil {
		return nil, err
	}
	return m.data[i], nil
}

// Set writes v into cell (r, c).
func (m *Matrix) Set(r, c int, v *bigint.BigInt) error {
	i, err := m.index(r, c)
	if err != nil {
		return err
	}
	m.data[i] = v
	return nil
}

func sameShape(a, b *Matrix) bool {
	return a.rows == b.rows && a.cols == b.cols
}

// Add returns a+b elementwise. Mismatched shapes are ShapeMismatch.
func Add(cfg kernel.Config, a, b *Matrix) (*Matrix, error) {
	if !sameShape(a, b) {
		return nil, kerr.New(kerr.ShapeMismatch, "matrix.Add", "operand shapes differ")
	}
	out, err := New(a.rows, a.cols)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		sum, err := bigint.Add(cfg, a.data[i], b.data[i])
		if err != nil {
			return nil, err
		}
		out.data[i] = sum
	}
	return out, nil
}

// Transpose returns the transpose of m.
func Transpose(m *Matrix) (*Matrix, error) {
	out, err := New(m.cols, m.rows)
	if err != nil {
		return nil, err
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			v, _ := m.At(r, c)
			if err := out.Set(c, r, v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Mul computes the matrix product a·b via the dot product of a's rows and
// b's columns, each dot product folded through the cached multiplier and
// the additive kernel. a.cols must equal b.rows.
func Mul(goCtx context.Context, kc *bigint.Context, a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, kerr.New(kerr.ShapeMismatch, "matrix.Mul", "a.cols must equal b.rows")
	}
	out, err := New(a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < a.rows; r++ {
		for c := 0; c < b.cols; c++ {
			sum := bigint.Zero()
			for k := 0; k < a.cols; k++ {
				av, _ := a.At(r, k)
				bv, _ := b.At(k, c)
				prod, err := bigint.Mul(goCtx, kc, av, bv)
				if err != nil {
					return nil, err
				}
				sum, err = bigint.Add(kc.Config, sum, prod)
				if err != nil {
					return nil, err
				}
			}
			if err := out.Set(r, c, sum); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// ScalarMul returns m with every cell multiplied by k.
func ScalarMul(goCtx context.Context, kc *bigint.Context, m *Matrix, k *bigint.BigInt) (*Matrix, error) {
	out, err := New(m.rows, m.cols)
	if err != nil {
		return nil, err
	}
	for i, v := range m.data {
		prod, err := bigint.Mul(goCtx, kc, v, k)
		if err != nil {
			return nil, err
		}
		out.data[i] = prod
	}
	return out, nil
}

// Equal reports whether a and b have the same shape and equal cells.
func Equal(a, b *Matrix) bool {
	if !sameShape(a, b) {
		return false
	}
	for i := range a.data {
		if !bigint.Equal(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}
