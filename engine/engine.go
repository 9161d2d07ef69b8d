// SPDX-License-Identifier: MIT

// Package engine - pluggable pairwise multiplication.
//
// Purpose:
//   - Give the chain folds one stable seam (Engine.Mul) behind which the
//     product kernel can be swapped: the native matrix.Mul kernel, gonum's
//     mat and BLAS routines, or gorgonia's tensor engine.
//   - Validate shapes with the matrix validators BEFORE any third-party call
//     (gonum panics on shape errors; engines must not).
//
// Contract for every Engine:
//   - Inputs are never mutated or aliased by the result.
//   - The result is a fresh *matrix.Dense with products stored as computed.
//   - Errors wrap matrix sentinels (ErrNilMatrix, ErrDimensionMismatch).
package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/chainmul/matrix"
)

// Engine multiplies two matrices.
type Engine interface {
	// Name returns the registry name of the engine (see ByName).
	Name() string

	// Mul returns a × b as a new matrix.
	Mul(a, b matrix.Matrix) (matrix.Matrix, error)
}

// Registry names.
const (
	NameNative = "native"
	NameGonum  = "gonum"
	NameBLAS   = "blas"
	NameTensor = "tensor"
)

// ErrUnknownEngine is returned by ByName for unregistered names.
var ErrUnknownEngine = errors.New("engine: unknown engine")

var registry = map[string]func() Engine{
	NameNative: Native,
	NameGonum:  Gonum,
	NameBLAS:   BLAS,
	NameTensor: Tensor,
}

// ByName resolves an engine by its registry name (case-insensitive).
func ByName(name string) (Engine, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownEngine, name, strings.Join(Names(), ", "))
	}

	return ctor(), nil
}

// Names lists registered engine names in lexicographic order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// engineErrorf tags err with the engine name and operation.
func engineErrorf(name string, err error) error {
	return fmt.Errorf("engine %s: Mul: %w", name, err)
}

// operands validates a × b and returns both sides as row-major copies
// ready to hand to a third-party kernel.
func operands(a, b matrix.Matrix) (ad, bd []float64, err error) {
	if err = matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, nil, err
	}
	da, err := matrix.ToDense(a)
	if err != nil {
		return nil, nil, err
	}
	db, err := matrix.ToDense(b)
	if err != nil {
		return nil, nil, err
	}

	return da.RawData(), db.RawData(), nil
}

// result wraps a flat row-major product buffer.
func result(rows, cols int, data []float64) (matrix.Matrix, error) {
	return matrix.NewDenseData(rows, cols, data, matrix.WithNoValidateNaNInf())
}
