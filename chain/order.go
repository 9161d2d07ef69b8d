// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// IndexBase is the index convention of an Order: the value that addresses
// the first matrix of the sequence.
type IndexBase int

const (
	// ZeroBased orders address the first matrix with 0.
	ZeroBased IndexBase = 0
	// OneBased orders address the first matrix with 1 (numeric host vectors).
	OneBased IndexBase = 1
)

// String implements fmt.Stringer.
func (b IndexBase) String() string {
	switch b {
	case ZeroBased:
		return "zero-based"
	case OneBased:
		return "one-based"
	default:
		return "IndexBase(" + strconv.Itoa(int(b)) + ")"
	}
}

// Order is an order vector: the sequence in which matrices are folded into
// the accumulator. Values are kept as float64 because the left/right rule
// compares raw values, exactly as supplied by a numeric host vector.
//
// The zero Order is empty and rejected by MultiplyOrdered with ErrEmptyInput.
type Order struct {
	values []float64
	base   IndexBase
}

func intToFloat(v int, _ int) float64 { return float64(v) }

// NewOrder builds a 1-based order from integer positions.
func NewOrder(values ...int) Order {
	return Order{values: lo.Map(values, intToFloat), base: OneBased}
}

// ZeroBasedOrder builds a 0-based order from integer positions.
func ZeroBasedOrder(values ...int) Order {
	return Order{values: lo.Map(values, intToFloat), base: ZeroBased}
}

// OrderFromNumeric builds a 1-based order from a numeric host vector.
// The slice is copied. Values are checked by Indices, not here.
func OrderFromNumeric(values []float64) Order {
	cp := make([]float64, len(values))
	copy(cp, values)

	return Order{values: cp, base: OneBased}
}

// Ascending returns the 1-based order 1..n, under which MultiplyOrdered
// equals MultiplyAll.
func Ascending(n int) Order {
	return NewOrder(lo.RangeFrom(1, n)...)
}

// WithBase returns a copy of o that interprets its values with base b.
func (o Order) WithBase(b IndexBase) Order {
	return Order{values: o.Values(), base: b}
}

// Len returns the number of steps.
func (o Order) Len() int { return len(o.values) }

// Base returns the index convention.
func (o Order) Base() IndexBase { return o.base }

// Values returns a copy of the raw order values.
func (o Order) Values() []float64 {
	cp := make([]float64, len(o.values))
	copy(cp, o.values)

	return cp
}

// String renders the values, e.g. "[2 3 1] (one-based)".
func (o Order) String() string {
	parts := lo.Map(o.values, func(v float64, _ int) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	})

	return "[" + strings.Join(parts, " ") + "] (" + o.base.String() + ")"
}

// Indices resolves the order against a sequence of n matrices and returns
// 0-based positions. This is the only place the base adjustment happens.
// A fractional value addresses the matrix at trunc(v - base), so 2.5 in a
// 1-based order picks the second matrix; sides still compare raw values.
//
// Errors:
//   - ErrIndexOutOfRange when a value is NaN, ±Inf, or truncates to a
//     position outside [0, n).
func (o Order) Indices(n int) ([]int, error) {
	out := make([]int, len(o.values))
	var idx float64
	for i, v := range o.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, chainErrorf(opIndices, fmt.Errorf("order[%d]=%v is not a position: %w", i, v, ErrIndexOutOfRange))
		}
		idx = math.Trunc(v - float64(o.base))
		if idx < 0 || idx >= float64(n) {
			return nil, chainErrorf(opIndices, fmt.Errorf("order[%d]=%v outside %d matrices (%s): %w", i, v, n, o.base, ErrIndexOutOfRange))
		}
		out[i] = int(idx)
	}

	return out, nil
}

// sides derives the per-step side from raw neighbouring values:
// step 0 seeds, step i goes Right when values[i] > values[i-1], else Left.
func (o Order) sides() []Side {
	out := make([]Side, len(o.values))
	for i := range o.values {
		switch {
		case i == 0:
			out[i] = SideSeed
		case o.values[i] > o.values[i-1]:
			out[i] = SideRight
		default:
			out[i] = SideLeft
		}
	}

	return out
}
