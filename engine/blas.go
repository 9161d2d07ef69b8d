// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/chainmul/matrix"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// blasEngine calls Gemm directly on row-major blas64.General values.
type blasEngine struct{}

// BLAS returns the engine backed by gonum's blas64.Gemm.
func BLAS() Engine { return blasEngine{} }

// Name implements Engine.
func (blasEngine) Name() string { return NameBLAS }

// Mul implements Engine: C = 1*A*B + 0*C.
func (blasEngine) Mul(a, b matrix.Matrix) (matrix.Matrix, error) {
	ad, bd, err := operands(a, b)
	if err != nil {
		return nil, engineErrorf(NameBLAS, err)
	}
	ar, ac, bc := a.Rows(), a.Cols(), b.Cols()

	ga := blas64.General{Rows: ar, Cols: ac, Data: ad, Stride: ac}
	gb := blas64.General{Rows: ac, Cols: bc, Data: bd, Stride: bc}
	gc := blas64.General{Rows: ar, Cols: bc, Data: make([]float64, ar*bc), Stride: bc}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, ga, gb, 0, gc)

	p, err := result(ar, bc, gc.Data)
	if err != nil {
		return nil, engineErrorf(NameBLAS, err)
	}

	return p, nil
}
