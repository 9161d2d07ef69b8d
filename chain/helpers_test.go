// SPDX-License-Identifier: MIT
package chain_test

import (
	"testing"

	"github.com/katalvlaran/chainmul/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks *matrix.Dense so engines take their interface path.
type hide struct{ matrix.Matrix }

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func zeros(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	d, err := matrix.ToDense(m)
	require.NoError(t, err)

	return d.ToRows()
}

// abc returns three non-commuting 2x2 matrices:
// A = [[1 2] [3 4]], B = swap, C = diag(2, 3).
func abc(t *testing.T) (a, b, c *matrix.Dense) {
	t.Helper()
	a = dense(t, [][]float64{{1, 2}, {3, 4}})
	b = dense(t, [][]float64{{0, 1}, {1, 0}})
	c = dense(t, [][]float64{{2, 0}, {0, 3}})

	return a, b, c
}
