// SPDX-License-Identifier: MIT

package engine

import "github.com/katalvlaran/chainmul/matrix"

// nativeEngine delegates to matrix.Mul (Dense fast path, interface fallback).
type nativeEngine struct{}

// Native returns the engine backed by matrix.Mul. It is the default for chain folds.
func Native() Engine { return nativeEngine{} }

// Name implements Engine.
func (nativeEngine) Name() string { return NameNative }

// Mul implements Engine.
func (nativeEngine) Mul(a, b matrix.Matrix) (matrix.Matrix, error) {
	p, err := matrix.Mul(a, b)
	if err != nil {
		return nil, engineErrorf(NameNative, err)
	}

	return p, nil
}
