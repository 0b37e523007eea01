// Package pargauss solves dense linear systems A·x = b by Gaussian
// elimination, with the forward phase split across rows and the back
// substitution done as a parallel sum reduction.
//
// What is inside:
//
//	matrix/    row-major Dense storage, sentinel errors, validators, gonum bridges
//	parallel/  fork-join For and SumReduce over a fixed chunk partition (errgroup)
//	gauss/     the solver: options, typed errors, serial and parallel modes, verification
//	randsys/   deterministic random systems (uniform, diagonally dominant, known solution)
//	cmd/gauss  console program: solve, generate, version
//
// A system with N unknowns is stored as an N×(N+1) augmented matrix; the
// last column holds b. Solve never mutates its input:
//
//	res, err := gauss.SolveRows(ctx, 2, [][]float64{
//		{2, 1, 5},
//		{1, -1, 1},
//	})
//	// res.X == [2 1]
//
// Elimination runs without row exchanges by default, so a zero pivot fails
// with *gauss.SingularMatrixError. Pass gauss.WithPivoting(gauss.PivotPartial)
// for inputs that are not diagonally dominant.
//
//	go install github.com/katalvlaran/pargauss/cmd/gauss@latest
package pargauss
