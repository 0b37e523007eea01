// SPDX-License-Identifier: MIT

package randsys

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pargauss/matrix"
)

// Default value range for Uniform, matching the classic benchmark input.
const (
	DefaultMin = 1
	DefaultMax = 2500
)

// ErrBadRange is returned when lo > hi.
var ErrBadRange = errors.New("randsys: lo must be <= hi")

const (
	opUniform      = "Uniform"
	opDominant     = "DiagonallyDominant"
	opFromSolution = "FromSolution"
)

// Uniform returns an n×(n+1) matrix whose entries are integers drawn uniformly
// from [lo, hi]. Rows are filled in order, columns left to right.
//
// Errors: matrix.ErrInvalidDimensions (n<1), ErrBadRange (lo>hi).
// Complexity: O(n²).
func Uniform(n int, seed int64, lo, hi int) (*matrix.Dense, error) {
	if lo > hi {
		return nil, fmt.Errorf("%s: [%d,%d]: %w", opUniform, lo, hi, ErrBadRange)
	}
	m, err := matrix.NewDense(n, n+1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opUniform, err)
	}
	rng := rngFromSeed(seed)
	span := int64(hi) - int64(lo) + 1

	var (
		i   int
		row []float64
	)
	for i = 0; i < n; i++ {
		row, _ = m.Row(i)
		for j := range row {
			row[j] = float64(int64(lo) + rng.Int63n(span))
		}
	}

	return m, nil
}

// DiagonallyDominant returns an n×(n+1) system whose coefficient block is
// strictly diagonally dominant by rows: off-diagonal entries lie in [-1, 1],
// |A[i][i]| = Σ_{j≠i} |A[i][j]| + 1 with a random sign, and b lies in [-10, 10].
// Gaussian elimination without pivoting is stable on such matrices.
//
// Complexity: O(n²).
func DiagonallyDominant(n int, seed int64) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n+1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDominant, err)
	}
	rng := rngFromSeed(seed)

	var (
		i, j int
		off  float64
		row  []float64
	)
	for i = 0; i < n; i++ {
		row, _ = m.Row(i)
		off = 0
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			row[j] = 2*rng.Float64() - 1
			off += math.Abs(row[j])
		}
		row[i] = off + 1
		if rng.Intn(2) == 0 {
			row[i] = -row[i]
		}
		row[n] = 20*rng.Float64() - 10
	}

	return m, nil
}

// FromSolution builds [A | A·x] from an n×n (or n×(n+1), last column ignored)
// coefficient matrix and a chosen solution x.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n²).
func FromSolution(coef matrix.Matrix, x []float64) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(coef); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromSolution, err)
	}
	n := coef.Rows()
	if coef.Cols() != n && coef.Cols() != n+1 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFromSolution, n, coef.Cols(), matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateVecLen(x, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromSolution, err)
	}

	g, err := matrix.ToGonum(coef, 0, 0, n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromSolution, err)
	}
	var b mat.VecDense
	b.MulVec(g, mat.NewVecDense(n, append([]float64(nil), x...)))

	aug := mat.NewDense(n, n+1, nil)
	aug.Slice(0, n, 0, n).(*mat.Dense).Copy(g)
	aug.Slice(0, n, n, n+1).(*mat.Dense).Copy(&b)

	out, err := matrix.FromGonum(aug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromSolution, err)
	}

	return out, nil
}
