// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/chainmul/matrix"
)

// Plan is an optimal parenthesization of a chain with shape vector
// dims = [p0, p1, …, pn], where matrix i is p[i]×p[i+1].
//
// split[i][j] = k means the product of matrices i..j is computed as
// (i..k)·(k+1..j). Ties keep the smallest k, which prefers left-leaning trees.
type Plan struct {
	dims  []int
	split [][]int
	cost  int
}

// PlanOptimal computes the parenthesization of ms with the fewest scalar
// multiplications.
//
// Implementation:
//   - Stage 1: validate the chain (non-empty, non-nil, consecutive shapes
//     compatible) and extract the shape vector.
//   - Stage 2: classic O(n³) dynamic programming over chain lengths 2..n:
//     cost[i][j] = min_k cost[i][k] + cost[k+1][j] + p[i]·p[k+1]·p[j+1].
//
// Complexity:
//   - Time O(n³), Space O(n²).
func PlanOptimal(ms []matrix.Matrix) (*Plan, error) {
	dims, err := shapeVector(ms)
	if err != nil {
		return nil, chainErrorf(opPlanOptimal, err)
	}
	if err = checkCostBound(dims); err != nil {
		return nil, chainErrorf(opPlanOptimal, err)
	}

	return planDims(dims), nil
}

// PlanDims computes the optimal plan directly from a shape vector of length
// n+1 (n ≥ 1 matrices, all dimensions > 0). Costs are exact ints: the
// vector is rejected with matrix.ErrInvalidDimensions when
// (n-1)·max(dims)³ exceeds math.MaxInt.
func PlanDims(dims []int) (*Plan, error) {
	if len(dims) < 2 {
		return nil, chainErrorf(opPlanOptimal, ErrEmptyInput)
	}
	for i, d := range dims {
		if d <= 0 {
			return nil, chainErrorf(opPlanOptimal, fmt.Errorf("dims[%d]=%d: %w", i, d, matrix.ErrInvalidDimensions))
		}
	}
	if err := checkCostBound(dims); err != nil {
		return nil, chainErrorf(opPlanOptimal, err)
	}
	cp := make([]int, len(dims))
	copy(cp, dims)

	return planDims(cp), nil
}

// shapeVector validates ms as a left-to-right chain and returns its dims.
func shapeVector(ms []matrix.Matrix) ([]int, error) {
	if len(ms) == 0 {
		return nil, ErrEmptyInput
	}
	dims := make([]int, len(ms)+1)
	for i, m := range ms {
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, fmt.Errorf("matrix %d: %w", i, err)
		}
		if i > 0 && dims[i] != m.Rows() {
			return nil, fmt.Errorf("step %d: %dx%d * %dx%d: %w",
				i, ms[i-1].Rows(), ms[i-1].Cols(), m.Rows(), m.Cols(), ErrDimensionMismatch)
		}
		dims[i] = m.Rows()
		dims[i+1] = m.Cols()
	}

	return dims, nil
}

// checkCostBound ensures no DP candidate can overflow int. Every candidate
// sums at most n-1 triple products, each at most max(dims)³.
func checkCostBound(dims []int) error {
	maxD := 1
	for _, d := range dims {
		if d > maxD {
			maxD = d
		}
	}
	steps := len(dims) - 2
	if steps > math.MaxInt/maxD/maxD/maxD {
		return fmt.Errorf("max dimension %d over %d steps overflows the cost: %w", maxD, steps, matrix.ErrInvalidDimensions)
	}

	return nil
}

// planDims runs the DP; dims must already be valid.
func planDims(dims []int) *Plan {
	n := len(dims) - 1
	cost := make([][]int, n)
	split := make([][]int, n)
	for i := 0; i < n; i++ {
		cost[i] = make([]int, n)
		split[i] = make([]int, n)
		split[i][i] = i
	}

	var length, i, j, k, q int
	for length = 2; length <= n; length++ {
		for i = 0; i+length-1 < n; i++ {
			j = i + length - 1
			cost[i][j] = -1
			for k = i; k < j; k++ {
				q = cost[i][k] + cost[k+1][j] + dims[i]*dims[k+1]*dims[j+1]
				if cost[i][j] < 0 || q < cost[i][j] {
					cost[i][j] = q
					split[i][j] = k
				}
			}
		}
	}

	return &Plan{dims: dims, split: split, cost: cost[0][n-1]}
}

// Len returns the number of matrices the plan covers.
func (p *Plan) Len() int { return len(p.dims) - 1 }

// Cost returns the number of scalar multiplications the plan performs.
func (p *Plan) Cost() int { return p.cost }

// Dims returns a copy of the shape vector.
func (p *Plan) Dims() []int {
	cp := make([]int, len(p.dims))
	copy(cp, p.dims)

	return cp
}

// String renders the parenthesization with 1-based names, e.g. "((A1 A2) A3)".
func (p *Plan) String() string {
	var b strings.Builder
	p.render(&b, 0, p.Len()-1)

	return b.String()
}

func (p *Plan) render(b *strings.Builder, i, j int) {
	if i == j {
		b.WriteString("A")
		b.WriteString(strconv.Itoa(i + 1))
		return
	}
	k := p.split[i][j]
	b.WriteString("(")
	p.render(b, i, k)
	b.WriteString(" ")
	p.render(b, k+1, j)
	b.WriteString(")")
}

// MultiplyPlanned evaluates ms along plan. The plan must have been built for
// the same shape vector. The trace hook is not called: a planned evaluation
// has no single accumulator.
//
// Errors:
//   - ErrEmptyInput, ErrNilMatrix, ErrDimensionMismatch, ErrPlanMismatch.
func (m *Multiplier) MultiplyPlanned(ms []matrix.Matrix, plan *Plan) (matrix.Matrix, error) {
	dims, err := shapeVector(ms)
	if err != nil {
		return nil, chainErrorf(opMultiplyPlanned, err)
	}
	if plan == nil || len(plan.dims) != len(dims) {
		return nil, chainErrorf(opMultiplyPlanned, ErrPlanMismatch)
	}
	for i := range dims {
		if dims[i] != plan.dims[i] {
			return nil, chainErrorf(opMultiplyPlanned,
				fmt.Errorf("dims[%d]=%d, plan has %d: %w", i, dims[i], plan.dims[i], ErrPlanMismatch))
		}
	}

	if len(ms) == 1 {
		return ms[0].Clone(), nil
	}

	out, err := m.evalPlan(ms, plan, 0, len(ms)-1)
	if err != nil {
		return nil, chainErrorf(opMultiplyPlanned, err)
	}

	return out, nil
}

// evalPlan multiplies ms[i..j] recursively along plan.split.
func (m *Multiplier) evalPlan(ms []matrix.Matrix, plan *Plan, i, j int) (matrix.Matrix, error) {
	if i == j {
		return ms[i], nil
	}
	k := plan.split[i][j]
	left, err := m.evalPlan(ms, plan, i, k)
	if err != nil {
		return nil, err
	}
	right, err := m.evalPlan(ms, plan, k+1, j)
	if err != nil {
		return nil, err
	}

	return m.opts.engine.Mul(left, right)
}

// MultiplyOptimal plans ms with PlanOptimal and evaluates the plan.
// The result equals MultiplyAll(ms) up to floating-point rounding.
func (m *Multiplier) MultiplyOptimal(ms []matrix.Matrix) (matrix.Matrix, error) {
	plan, err := PlanOptimal(ms)
	if err != nil {
		return nil, err
	}

	return m.MultiplyPlanned(ms, plan)
}

// MultiplyOptimal plans and evaluates ms with the default Multiplier.
func MultiplyOptimal(ms []matrix.Matrix) (matrix.Matrix, error) {
	return defaultMultiplier.MultiplyOptimal(ms)
}
