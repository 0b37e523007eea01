// Package matrix offers the dense row-major storage used by the solver.
//
// The matrix package provides:
//
//   - Dense: a flat []float64 row-major matrix with bounds-checked At/Set,
//     no-copy Row views for hot loops, SwapRows and deep Clone.
//   - A sentinel error set (ErrDimensionMismatch, ErrSingular, ErrNaNInf, ...)
//     shared with the gauss package.
//   - Central validators (ValidateNotNil, ValidateAugmented, ValidateFinite).
//   - Converters to and from [][]float64 rows and gonum's mat.Dense.
//
// See the examples in this package and gauss for usage patterns.
package matrix
