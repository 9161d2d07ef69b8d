// SPDX-License-Identifier: MIT

// Package chain - the ChainMultiplier folds.
//
// Implementation (shared by MultiplyAll and MultiplyOrdered):
//   - Stage 1: turn the call into a list of moves (matrix index + side).
//   - Stage 2: dry-run the shapes of every move; the first incompatible step
//     fails with ErrDimensionMismatch before any product is computed.
//   - Stage 3: fold with the configured engine, reporting each step to the trace hook.
//
// Complexity:
//   - Time: sum of the pairwise product costs; Space: one accumulator per step.
package chain

import (
	"fmt"

	"github.com/katalvlaran/chainmul/engine"
	"github.com/katalvlaran/chainmul/matrix"
)

// Multiplier folds matrix chains with a fixed configuration.
// It is immutable after New and safe for concurrent use.
type Multiplier struct {
	opts Options
}

// New returns a Multiplier configured by opts.
func New(opts ...Option) *Multiplier {
	return &Multiplier{opts: gatherOptions(opts...)}
}

// Engine returns the configured pairwise product engine.
func (m *Multiplier) Engine() engine.Engine { return m.opts.engine }

// Order builds an order from integer positions using the configured index base.
func (m *Multiplier) Order(values ...int) Order {
	return NewOrder(values...).WithBase(m.opts.base)
}

// move is one planned fold step.
type move struct {
	index int
	side  Side
}

// MultiplyAll returns ms[0]·ms[1]·…·ms[n-1], folded left to right.
// A single-matrix sequence yields a clone of that matrix.
//
// Errors:
//   - ErrEmptyInput, ErrNilMatrix, ErrDimensionMismatch.
func (m *Multiplier) MultiplyAll(ms []matrix.Matrix) (matrix.Matrix, error) {
	if len(ms) == 0 {
		return nil, chainErrorf(opMultiplyAll, ErrEmptyInput)
	}
	moves := make([]move, len(ms))
	for i := range ms {
		moves[i] = move{index: i, side: SideRight}
	}
	moves[0].side = SideSeed

	return m.fold(opMultiplyAll, ms, moves)
}

// MultiplyFive is MultiplyAll for exactly five operands: a·b·c·d·e.
func (m *Multiplier) MultiplyFive(a, b, c, d, e matrix.Matrix) (matrix.Matrix, error) {
	return m.MultiplyAll([]matrix.Matrix{a, b, c, d, e})
}

// MultiplyOrdered folds ms in the sequence given by order.
//
// Implementation:
//   - Stage 1: acc = ms[idx(order[0])].
//   - Stage 2: for i ≥ 1, cur = ms[idx(order[i])]; acc = acc·cur when
//     order[i] > order[i-1] (raw values), else acc = cur·acc.
//
// Behavior highlights:
//   - The side rule is local to each neighbouring pair; a non-permutation or
//     repeated value is folded like any other (equal values go left).
//   - With order = Ascending(len(ms)) the result equals MultiplyAll(ms).
//
// Errors:
//   - ErrEmptyInput (empty ms or order), ErrOrderLength, ErrIndexOutOfRange,
//     ErrNilMatrix, ErrDimensionMismatch.
func (m *Multiplier) MultiplyOrdered(ms []matrix.Matrix, order Order) (matrix.Matrix, error) {
	if len(ms) == 0 || order.Len() == 0 {
		return nil, chainErrorf(opMultiplyOrdered, ErrEmptyInput)
	}
	if order.Len() != len(ms) {
		return nil, chainErrorf(opMultiplyOrdered,
			fmt.Errorf("len(order)=%d, len(matrices)=%d: %w", order.Len(), len(ms), ErrOrderLength))
	}
	idx, err := order.Indices(len(ms))
	if err != nil {
		return nil, chainErrorf(opMultiplyOrdered, err)
	}
	sides := order.sides()
	moves := make([]move, len(idx))
	for i := range idx {
		moves[i] = move{index: idx[i], side: sides[i]}
	}

	return m.fold(opMultiplyOrdered, ms, moves)
}

// fold validates and executes moves over ms.
func (m *Multiplier) fold(op string, ms []matrix.Matrix, moves []move) (matrix.Matrix, error) {
	if err := checkMoves(ms, moves); err != nil {
		return nil, chainErrorf(op, err)
	}

	seed := ms[moves[0].index]
	if len(moves) == 1 {
		acc := seed.Clone()
		m.trace(Step{Position: 0, Index: moves[0].index, Side: SideSeed, Rows: acc.Rows(), Cols: acc.Cols()})
		return acc, nil
	}

	// acc starts as the caller's matrix; engines never mutate operands and
	// the first product replaces it with a fresh matrix.
	acc := seed
	m.trace(Step{Position: 0, Index: moves[0].index, Side: SideSeed, Rows: acc.Rows(), Cols: acc.Cols()})

	var err error
	for pos := 1; pos < len(moves); pos++ {
		cur := ms[moves[pos].index]
		if moves[pos].side == SideRight {
			acc, err = m.opts.engine.Mul(acc, cur)
		} else {
			acc, err = m.opts.engine.Mul(cur, acc)
		}
		if err != nil {
			return nil, chainErrorf(op, fmt.Errorf("step %d: %w", pos, err))
		}
		m.trace(Step{Position: pos, Index: moves[pos].index, Side: moves[pos].side, Rows: acc.Rows(), Cols: acc.Cols()})
	}

	return acc, nil
}

// checkMoves dry-runs the accumulator shape through every move.
func checkMoves(ms []matrix.Matrix, moves []move) error {
	for _, mv := range moves {
		if err := matrix.ValidateNotNil(ms[mv.index]); err != nil {
			return fmt.Errorf("matrix %d: %w", mv.index, err)
		}
	}

	r, c := ms[moves[0].index].Rows(), ms[moves[0].index].Cols()
	for pos := 1; pos < len(moves); pos++ {
		cur := ms[moves[pos].index]
		cr, cc := cur.Rows(), cur.Cols()
		switch moves[pos].side {
		case SideRight:
			if c != cr {
				return fmt.Errorf("step %d (matrix %d on the right): %dx%d * %dx%d: %w",
					pos, moves[pos].index, r, c, cr, cc, ErrDimensionMismatch)
			}
			c = cc
		default:
			if cc != r {
				return fmt.Errorf("step %d (matrix %d on the left): %dx%d * %dx%d: %w",
					pos, moves[pos].index, cr, cc, r, c, ErrDimensionMismatch)
			}
			r = cr
		}
	}

	return nil
}

// trace reports s to the configured hook, if any.
func (m *Multiplier) trace(s Step) {
	if m.opts.trace != nil {
		m.opts.trace(s)
	}
}

// defaultMultiplier backs the package-level functions: native engine, 1-based orders.
var defaultMultiplier = New()

// MultiplyAll folds ms left to right with the default Multiplier.
func MultiplyAll(ms []matrix.Matrix) (matrix.Matrix, error) {
	return defaultMultiplier.MultiplyAll(ms)
}

// MultiplyFive multiplies a·b·c·d·e with the default Multiplier.
func MultiplyFive(a, b, c, d, e matrix.Matrix) (matrix.Matrix, error) {
	return defaultMultiplier.MultiplyFive(a, b, c, d, e)
}

// MultiplyOrdered folds ms in order with the default Multiplier.
func MultiplyOrdered(ms []matrix.Matrix, order Order) (matrix.Matrix, error) {
	return defaultMultiplier.MultiplyOrdered(ms, order)
}
