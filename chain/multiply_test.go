// SPDX-License-Identifier: MIT
package chain_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/chainmul/chain"
	"github.com/katalvlaran/chainmul/engine"
	"github.com/katalvlaran/chainmul/matrix"
	"github.com/stretchr/testify/require"
)

func TestMultiplyAll_IdentityScaleSwap(t *testing.T) {
	a, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	b := dense(t, [][]float64{{2, 0}, {0, 2}})
	c := dense(t, [][]float64{{0, 1}, {1, 0}})

	p, err := chain.MultiplyAll([]matrix.Matrix{a, b, c})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 2}, {2, 0}}, rowsOf(t, p))
}

func TestMultiplyAll_RectangularChain(t *testing.T) {
	// 2x3 · 3x1 · 1x2
	x := dense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	y := dense(t, [][]float64{{1}, {0}, {-1}})
	z := dense(t, [][]float64{{1, 2}})

	p, err := chain.MultiplyAll([]matrix.Matrix{x, y, z})
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())
	require.Equal(t, [][]float64{{-2, -4}, {-2, -4}}, rowsOf(t, p))
}

func TestMultiplyAll_SingleReturnsCopy(t *testing.T) {
	a, _, _ := abc(t)
	p, err := chain.MultiplyAll([]matrix.Matrix{a})
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), rowsOf(t, p))

	require.NoError(t, p.Set(0, 0, 99))
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestMultiplyAll_Errors(t *testing.T) {
	_, err := chain.MultiplyAll(nil)
	require.ErrorIs(t, err, chain.ErrEmptyInput)

	_, err = chain.MultiplyAll([]matrix.Matrix{zeros(t, 2, 3), zeros(t, 4, 2)})
	require.ErrorIs(t, err, chain.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "2x3 * 4x2")
	require.Contains(t, err.Error(), "MultiplyAll")

	_, err = chain.MultiplyAll([]matrix.Matrix{zeros(t, 2, 2), nil})
	require.ErrorIs(t, err, chain.ErrNilMatrix)
}

func TestMultiplyAll_MismatchBeforeAnyProduct(t *testing.T) {
	var steps []chain.Step
	m := chain.New(chain.WithTrace(func(s chain.Step) { steps = append(steps, s) }))

	ms := []matrix.Matrix{zeros(t, 2, 2), zeros(t, 2, 2), zeros(t, 3, 2)}
	_, err := m.MultiplyAll(ms)
	require.ErrorIs(t, err, chain.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "step 2")
	require.Empty(t, steps)
}

func TestMultiplyFive_MatchesNestedProducts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	shapes := [][2]int{{2, 3}, {3, 4}, {4, 2}, {2, 5}, {5, 3}}
	ms := make([]matrix.Matrix, len(shapes))
	for i, s := range shapes {
		rows := make([][]float64, s[0])
		for r := range rows {
			rows[r] = make([]float64, s[1])
			for c := range rows[r] {
				rows[r][c] = float64(rng.Intn(7) - 3)
			}
		}
		ms[i] = dense(t, rows)
	}

	want := ms[0]
	var err error
	for _, m := range ms[1:] {
		want, err = matrix.Mul(want, m)
		require.NoError(t, err)
	}

	five, err := chain.MultiplyFive(ms[0], ms[1], ms[2], ms[3], ms[4])
	require.NoError(t, err)
	all, err := chain.MultiplyAll(ms)
	require.NoError(t, err)

	require.Equal(t, rowsOf(t, want), rowsOf(t, five))
	require.Equal(t, rowsOf(t, all), rowsOf(t, five))
	require.Equal(t, 2, five.Rows())
	require.Equal(t, 3, five.Cols())
}

func TestMultiplyFive_Mismatch(t *testing.T) {
	a := zeros(t, 2, 2)
	_, err := chain.MultiplyFive(a, a, a, zeros(t, 3, 3), a)
	require.ErrorIs(t, err, chain.ErrDimensionMismatch)
}

func TestMultiplyOrdered_TableDriven(t *testing.T) {
	a, b, c := abc(t)
	ms := []matrix.Matrix{a, b, c}

	tests := []struct {
		name  string
		order chain.Order
		want  [][]float64
	}{
		{"ascending", chain.NewOrder(1, 2, 3), [][]float64{{4, 3}, {8, 9}}},
		{"A(BC)", chain.NewOrder(2, 3, 1), [][]float64{{4, 3}, {8, 9}}},
		{"(AB)C", chain.NewOrder(2, 1, 3), [][]float64{{4, 3}, {8, 9}}},
		{"B(AC)", chain.NewOrder(1, 3, 2), [][]float64{{6, 12}, {2, 6}}},
		{"(AC)B", chain.NewOrder(3, 1, 2), [][]float64{{6, 2}, {12, 6}}},
		{"repeated values go left", chain.NewOrder(2, 2, 1), [][]float64{{1, 2}, {3, 4}}},
		{"non-permutation", chain.NewOrder(1, 1, 3), [][]float64{{14, 30}, {30, 66}}},
		{"zero-based", chain.ZeroBasedOrder(0, 2, 1), [][]float64{{6, 12}, {2, 6}}},
		{"numeric host vector", chain.OrderFromNumeric([]float64{3, 1, 2}), [][]float64{{6, 2}, {12, 6}}},
		{"fractional value truncates", chain.OrderFromNumeric([]float64{1, 2.5, 3}), [][]float64{{4, 3}, {8, 9}}},
		{"fractional sides compare raw values", chain.OrderFromNumeric([]float64{1.7, 1.2, 3}), [][]float64{{14, 30}, {30, 66}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := chain.MultiplyOrdered(ms, tc.order)
			require.NoError(t, err)
			require.Equal(t, tc.want, rowsOf(t, p))
		})
	}
}

func TestMultiplyOrdered_SidesFollowNeighbours(t *testing.T) {
	a, b, c := abc(t)
	var steps []chain.Step
	m := chain.New(chain.WithTrace(func(s chain.Step) { steps = append(steps, s) }))

	_, err := m.MultiplyOrdered([]matrix.Matrix{a, b, c}, chain.NewOrder(2, 1, 3))
	require.NoError(t, err)
	require.Equal(t, []chain.Step{
		{Position: 0, Index: 1, Side: chain.SideSeed, Rows: 2, Cols: 2},
		{Position: 1, Index: 0, Side: chain.SideLeft, Rows: 2, Cols: 2},
		{Position: 2, Index: 2, Side: chain.SideRight, Rows: 2, Cols: 2},
	}, steps)
	require.Equal(t, "#1 M0 left -> 2x2", steps[1].String())
}

func TestMultiplyOrdered_AscendingEqualsMultiplyAll(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 1; n <= 6; n++ {
		ms := make([]matrix.Matrix, n)
		for i := range ms {
			rows := [][]float64{
				{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()},
				{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()},
				{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()},
			}
			ms[i] = dense(t, rows)
		}
		all, err := chain.MultiplyAll(ms)
		require.NoError(t, err)
		ord, err := chain.MultiplyOrdered(ms, chain.Ascending(n))
		require.NoError(t, err)
		require.Equal(t, rowsOf(t, all), rowsOf(t, ord), "n=%d", n)
	}
}

func TestMultiplyOrdered_RectangularLeftSteps(t *testing.T) {
	x := zeros(t, 2, 3)
	y := zeros(t, 3, 4)

	// acc = Y, then X joins on the left: 2x3 · 3x4.
	p, err := chain.MultiplyOrdered([]matrix.Matrix{x, y}, chain.NewOrder(2, 1))
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 4, p.Cols())

	// acc = X (2x3), then Y (3x4) joins on the left: 3x4 · 2x3.
	_, err = chain.MultiplyOrdered([]matrix.Matrix{y, x}, chain.NewOrder(2, 1))
	require.ErrorIs(t, err, chain.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "on the left")
}

func TestMultiplyOrdered_Errors(t *testing.T) {
	a, b, c := abc(t)
	ms := []matrix.Matrix{a, b, c}

	tests := []struct {
		name  string
		ms    []matrix.Matrix
		order chain.Order
		err   error
	}{
		{"empty sequence", nil, chain.NewOrder(1), chain.ErrEmptyInput},
		{"empty order", ms, chain.Order{}, chain.ErrEmptyInput},
		{"short order", ms, chain.NewOrder(1, 2), chain.ErrOrderLength},
		{"long order", ms, chain.NewOrder(1, 2, 3, 1), chain.ErrOrderLength},
		{"zero in one-based", ms, chain.NewOrder(0, 1, 2), chain.ErrIndexOutOfRange},
		{"past the end", ms, chain.NewOrder(1, 2, 4), chain.ErrIndexOutOfRange},
		{"past the end zero-based", ms, chain.ZeroBasedOrder(0, 1, 3), chain.ErrIndexOutOfRange},
		{"negative", ms, chain.NewOrder(-1, 1, 2), chain.ErrIndexOutOfRange},
		{"fractional below base", ms, chain.OrderFromNumeric([]float64{1, 2, -0.5}), chain.ErrIndexOutOfRange},
		{"fractional past the end", ms, chain.OrderFromNumeric([]float64{1, 2, 4.2}), chain.ErrIndexOutOfRange},
		{"infinite", ms, chain.OrderFromNumeric([]float64{1, math.Inf(-1), 3}), chain.ErrIndexOutOfRange},
		{"NaN", ms, chain.OrderFromNumeric([]float64{1, math.NaN(), 3}), chain.ErrIndexOutOfRange},
		{"nil matrix", []matrix.Matrix{a, nil, c}, chain.NewOrder(1, 2, 3), chain.ErrNilMatrix},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chain.MultiplyOrdered(tc.ms, tc.order)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMultiplyOrdered_OutOfRangeIsNotAMismatch(t *testing.T) {
	a, b, c := abc(t)
	_, err := chain.MultiplyOrdered([]matrix.Matrix{a, b, c}, chain.NewOrder(1, 2, 4))
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.NotErrorIs(t, err, chain.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "order[2]=4")
}

func TestMultiplier_ZeroBasedOption(t *testing.T) {
	a, b, c := abc(t)
	ms := []matrix.Matrix{a, b, c}

	zb := chain.New(chain.WithZeroBased())
	ord := zb.Order(0, 2, 1)
	require.Equal(t, chain.ZeroBased, ord.Base())

	got, err := zb.MultiplyOrdered(ms, ord)
	require.NoError(t, err)
	want, err := chain.MultiplyOrdered(ms, chain.NewOrder(1, 3, 2))
	require.NoError(t, err)
	require.Equal(t, rowsOf(t, want), rowsOf(t, got))

	ob := chain.New(chain.WithZeroBased(), chain.WithOneBased())
	require.Equal(t, chain.OneBased, ob.Order(1).Base())
}

func TestMultiplier_EnginesAgree(t *testing.T) {
	a, b, c := abc(t)
	ms := []matrix.Matrix{a, hide{b}, c}
	want := [][]float64{{6, 12}, {2, 6}}

	for _, name := range engine.Names() {
		t.Run(name, func(t *testing.T) {
			e, err := engine.ByName(name)
			require.NoError(t, err)
			m := chain.New(chain.WithEngine(e))
			require.Equal(t, name, m.Engine().Name())

			p, err := m.MultiplyOrdered(ms, chain.NewOrder(1, 3, 2))
			require.NoError(t, err)
			ok, err := matrix.AllClose(p, dense(t, want), 0, 1e-12)
			require.NoError(t, err)
			require.True(t, ok, "%v", rowsOf(t, p))
		})
	}
}

func TestMultiplier_InputsUntouched(t *testing.T) {
	a, b, c := abc(t)
	before := [][][]float64{a.ToRows(), b.ToRows(), c.ToRows()}

	_, err := chain.MultiplyOrdered([]matrix.Matrix{a, b, c}, chain.NewOrder(3, 1, 2))
	require.NoError(t, err)
	_, err = chain.MultiplyAll([]matrix.Matrix{a, b, c})
	require.NoError(t, err)

	require.Equal(t, before, [][][]float64{a.ToRows(), b.ToRows(), c.ToRows()})
}
