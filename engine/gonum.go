// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/chainmul/matrix"
	"gonum.org/v1/gonum/mat"
)

// gonumEngine multiplies through gonum's mat.Dense.
type gonumEngine struct{}

// Gonum returns the engine backed by gonum.org/v1/gonum/mat.
func Gonum() Engine { return gonumEngine{} }

// Name implements Engine.
func (gonumEngine) Name() string { return NameGonum }

// Mul implements Engine. Shapes are validated first because mat.Dense.Mul
// panics with mat.ErrShape on mismatched operands.
func (gonumEngine) Mul(a, b matrix.Matrix) (matrix.Matrix, error) {
	ad, bd, err := operands(a, b)
	if err != nil {
		return nil, engineErrorf(NameGonum, err)
	}
	ga := mat.NewDense(a.Rows(), a.Cols(), ad)
	gb := mat.NewDense(b.Rows(), b.Cols(), bd)

	var gc mat.Dense
	gc.Mul(ga, gb)

	// gc was allocated by Mul, but copy through the stride anyway.
	raw := gc.RawMatrix()
	out := make([]float64, raw.Rows*raw.Cols)
	for i := 0; i < raw.Rows; i++ {
		copy(out[i*raw.Cols:(i+1)*raw.Cols], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
	}

	p, err := result(raw.Rows, raw.Cols, out)
	if err != nil {
		return nil, engineErrorf(NameGonum, err)
	}

	return p, nil
}
