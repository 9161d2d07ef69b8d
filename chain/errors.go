// SPDX-License-Identifier: MIT
// Package chain: sentinel error set. Callers match with errors.Is; every
// error returned by the folds wraps exactly one of these.

package chain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chainmul/matrix"
)

var (
	// ErrEmptyInput is returned for an empty matrix sequence or an empty order.
	ErrEmptyInput = errors.New("chain: empty input")

	// ErrOrderLength is returned when len(order) != len(sequence).
	ErrOrderLength = errors.New("chain: order length does not match sequence length")

	// ErrPlanMismatch is returned when a Plan was built for a different shape vector.
	ErrPlanMismatch = errors.New("chain: plan does not match sequence")

	// ErrIndexOutOfRange is returned when an order value does not address a matrix.
	ErrIndexOutOfRange = matrix.ErrOutOfRange

	// ErrDimensionMismatch is returned when two matrices at a step are not conformable.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNilMatrix is returned when the sequence holds a nil matrix.
	ErrNilMatrix = matrix.ErrNilMatrix
)

// Operation tags for chainErrorf.
const (
	opMultiplyAll     = "MultiplyAll"
	opMultiplyOrdered = "MultiplyOrdered"
	opMultiplyPlanned = "MultiplyPlanned"
	opPlanOptimal     = "PlanOptimal"
	opIndices         = "Order.Indices"
)

// chainErrorf wraps err as "chain.<op>: <err>".
func chainErrorf(op string, err error) error {
	return fmt.Errorf("chain.%s: %w", op, err)
}
