package matrix

import (
	"context"
	"testing"

	"github.com/copyl-sys/ternary/internal/bigint"
	"github.com/kr/pretty"
)

func fromI64(t *testing.T, kc *bigint.Context, n int64) *bigint.BigInt {
	t.Helper()
	b, err := bigint.FromI64(kc.Config, n)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func build(t *testing.T, kc *bigint.Context, rows, cols int, vals [][]int64) *Matrix {
	t.Helper()
	m, err := New(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := m.Set(r, c, fromI64(t, kc, vals[r][c])); err != nil {
				t.Fatal(err)
			}
		}
	}
	return m
}

func toI64Grid(t *testing.T, m *Matrix) [][]int64 {
	t.Helper()
	out := make([][]int64, m.Rows())
	for r := 0; r < m.Rows(); r++ {
		out[r] = make([]int64, m.Cols())
		for c := 0; c < m.Cols(); c++ {
			v, err := m.At(r, c)
			if err != nil {
				t.Fatal(err)
			}
			n, err := bigint.ToI64(v)
			if err != nil {
				t.Fatal(err)
			}
			out[r][c] = n
		}
	}
	return out
}

func TestAdd(t *testing.T) {
	kc := bigint.New()
	a := build(t, kc, 2, 2, [][]int64{{1, 2}, {3, 4}})
	b := build(t, kc, 2, 2, [][]int64{{5, 6}, {7, 8}})
	sum, err := Add(kc.Config, a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int64{{6, 8}, {10, 12}}
	got := toI64Grid(t, sum)
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Errorf("sum[%d][%d] = %d, want %d", r, c, got[r][c], want[r][c])
			}
		}
	}
}

func TestAddShapeMismatch(t *testing.T) {
	kc := bigint.New()
	a, _ := New(2, 2)
	b, _ := New(3, 3)
	if _, err := Add(kc.Config, a, b); err == nil {
		t.Fatal("expected ShapeMismatch error")
	}
}

func TestTranspose(t *testing.T) {
	kc := bigint.New()
	a := build(t, kc, 2, 3, [][]int64{{1, 2, 3}, {4, 5, 6}})
	tr, err := Transpose(a)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Rows() != 3 || tr.Cols() != 2 {
		t.Fatalf("transpose shape = %dx%d, want 3x2", tr.Rows(), tr.Cols())
	}
	want := [][]int64{{1, 4}, {2, 5}, {3, 6}}
	got := toI64Grid(t, tr)
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Errorf("transpose[%d][%d] = %d, want %d", r, c, got[r][c], want[r][c])
			}
		}
	}
}

func TestMul(t *testing.T) {
	kc := bigint.New()
	ctx := context.Background()
	a := build(t, kc, 2, 3, [][]int64{{1, 2, 3}, {4, 5, 6}})
	b := build(t, kc, 3, 2, [][]int64{{7, 8}, {9, 10}, {11, 12}})
	prod, err := Mul(ctx, kc, a, b)
	if err != nil {
		t.Fatal(err)
	}
	// [[1*7+2*9+3*11, 1*8+2*10+3*12], [4*7+5*9+6*11, 4*8+5*10+6*12]]
	want := [][]int64{{58, 64}, {139, 154}}
	got := toI64Grid(t, prod)
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("product grid mismatch:\n%s", pretty.Sprint(diff))
	}
}

func TestMulShapeMismatch(t *testing.T) {
	kc := bigint.New()
	ctx := context.Background()
	a, _ := New(2, 3)
	b, _ := New(2, 2)
	if _, err := Mul(ctx, kc, a, b); err == nil {
		t.Fatal("expected ShapeMismatch error for incompatible dot-product dims")
	}
}

func TestScalarMulAndEqual(t *testing.T) {
	kc := bigint.New()
	ctx := context.Background()
	a := build(t, kc, 2, 2, [][]int64{{1, 2}, {3, 4}})
	k := fromI64(t, kc, 3)
	scaled, err := ScalarMul(ctx, kc, a, k)
	if err != nil {
		t.Fatal(err)
	}
	want := build(t, kc, 2, 2, [][]int64{{3, 6}, {9, 12}})
	if !Equal(scaled, want) {
		t.Fatal("ScalarMul(a, 3) did not match expected matrix")
	}
	if Equal(a, scaled) {
		t.Fatal("original and scaled matrices should differ")
	}
}
