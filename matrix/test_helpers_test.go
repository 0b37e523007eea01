// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/pargauss/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds a *Dense from literal rows or fails the test.
func NewFilledDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts m equals want element-wise with exact float equality.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows: got %d, want %d", m.Rows(), len(want))
	}
	var i, j int
	for i = range want {
		if m.Cols() != len(want[i]) {
			t.Fatalf("cols: got %d, want %d", m.Cols(), len(want[i]))
		}
		for j = range want[i] {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("[%d,%d]: got %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}
