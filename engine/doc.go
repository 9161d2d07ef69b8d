// Package engine provides the pairwise product kernels used by the chain
// folds: Native (matrix.Mul), Gonum (gonum mat), BLAS (gonum blas64.Gemm)
// and Tensor (gorgonia tensor.StdEng). Every engine validates shapes with
// the matrix validators before calling into third-party code and returns a
// fresh *matrix.Dense, so engines are interchangeable up to rounding.
package engine
