// Package matrix provides the dense float64 matrix used by chainmul.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) that every
//     multiplication engine and chain fold accepts.
//   - Dense, a row-major implementation backed by one flat slice.
//   - Mul, the native product kernel with a *Dense fast path and a generic
//     At/Set fallback.
//   - Central validators and sentinel errors shared by the chain and engine
//     packages.
//   - NewDenseFrom / ToRows for converting nested slices at the caller
//     boundary.
//
// Public surfaces never panic on bad input; they return sentinels that
// callers match with errors.Is.
package matrix
