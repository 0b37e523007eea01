// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pargauss/matrix"
)

// ExampleNewFromRows builds an augmented 2×3 system and reads it back.
func ExampleNewFromRows() {
	m, err := matrix.NewFromRows([][]float64{
		{2, 1, 5},
		{1, -1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	fmt.Println(matrix.ValidateAugmented(m, 2) == nil)
	// Output:
	// [2, 1, 5]
	// [1, -1, 1]
	// true
}

// ExampleDense_Row shows that Row aliases storage while Clone does not.
func ExampleDense_Row() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	c := m.CloneDense()

	row, _ := m.Row(1)
	row[0] = 30
	_ = m.SwapRows(0, 1)

	fmt.Print(m)
	fmt.Print(c)
	// Output:
	// [30, 4]
	// [1, 2]
	// [1, 2]
	// [3, 4]
}

// ExampleDense_Set shows the finite-value policy.
func ExampleDense_Set() {
	m, _ := matrix.NewDense(1, 1)
	err := m.Set(0, 0, 1.0/zero())
	fmt.Println(errors.Is(err, matrix.ErrNaNInf))
	// Output:
	// true
}

func zero() float64 { return 0 }
