// Package chain multiplies chains of matrices.
//
// Three folds are provided:
//
//   - MultiplyAll folds a sequence left to right: ((M1·M2)·M3)·…
//   - MultiplyFive is the fixed-arity form of MultiplyAll for five operands.
//   - MultiplyOrdered visits matrices in the sequence given by an Order and
//     decides the side of every step locally: when the order value at step i
//     is strictly greater than the value at step i-1 the visited matrix is
//     multiplied on the right of the accumulator, otherwise on the left.
//
// The rule in MultiplyOrdered compares neighbouring order values only. It
// does not require the order to be a permutation; duplicates take the left
// branch. Order values are 1-based by default (the convention of numeric
// host vectors); ZeroBasedOrder and WithZeroBased select 0-based input. The
// base adjustment happens once, in Order.Indices.
//
// PlanOptimal and MultiplyOptimal compute the parenthesization with the
// fewest scalar multiplications, and MultiplyBatch runs independent chains
// concurrently. Pairwise products are delegated to an engine.Engine
// (native by default).
//
// Every fold validates all shapes before the first product, so an error
// never leaves partial work behind.
package chain
