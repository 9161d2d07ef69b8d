// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/chainmul/matrix"
	"gorgonia.org/tensor"
)

// tensorEngine multiplies with gorgonia's standard tensor engine.
// The StdEng is embedded by value, so the engine holds no device state.
type tensorEngine struct {
	eng tensor.StdEng
}

// Tensor returns the engine backed by gorgonia.org/tensor.
func Tensor() Engine { return &tensorEngine{eng: tensor.StdEng{}} }

// Name implements Engine.
func (*tensorEngine) Name() string { return NameTensor }

// Mul implements Engine. The product is written into a preallocated float64
// tensor of shape (a.Rows, b.Cols).
func (e *tensorEngine) Mul(a, b matrix.Matrix) (matrix.Matrix, error) {
	ad, bd, err := operands(a, b)
	if err != nil {
		return nil, engineErrorf(NameTensor, err)
	}
	ar, ac, bc := a.Rows(), a.Cols(), b.Cols()

	ta := tensor.New(tensor.WithShape(ar, ac), tensor.WithBacking(ad))
	tb := tensor.New(tensor.WithShape(ac, bc), tensor.WithBacking(bd))
	tc := tensor.New(tensor.WithShape(ar, bc), tensor.WithBacking(make([]float64, ar*bc)))
	if err = e.eng.MatMul(ta, tb, tc); err != nil {
		return nil, engineErrorf(NameTensor, err)
	}

	data, ok := tc.Data().([]float64)
	if !ok {
		return nil, engineErrorf(NameTensor, fmt.Errorf("unexpected backing %T", tc.Data()))
	}
	p, err := result(ar, bc, data)
	if err != nil {
		return nil, engineErrorf(NameTensor, err)
	}

	return p, nil
}
