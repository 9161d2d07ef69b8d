// Package chainmul folds sequences of dense matrices into a single product.
//
// What is chainmul?
//
//	A small library around one idea: a chain of conformable matrices and an
//	optional order vector that says in which sequence they join an
//	accumulator. It brings together:
//		• matrix/ – row-major Dense, validators, the native product kernel
//		• engine/ – pluggable pairwise products: native, gonum mat, gonum BLAS, gorgonia tensor
//		• chain/  – MultiplyAll, MultiplyFive, MultiplyOrdered, optimal planning, batches
//
// Order vectors:
//
//	order [2 3 1] over (A, B, C):
//	  acc = B
//	  3 > 2  ->  acc = acc·C     (right)
//	  1 < 3  ->  acc = A·acc     (left)
//	  result   A·(B·C)
//
// Orders are 1-based by default, matching numeric host vectors; use
// chain.ZeroBasedOrder or chain.WithZeroBased for 0-based positions.
//
//	go get github.com/katalvlaran/chainmul/chain
package chainmul
