package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anteqkois/inteligencja-obliczeniowa/matrix"
)

// TestNewDense_ShapeValidation: non-positive dimensions are rejected,
// valid shapes start zeroed.
func TestNewDense_ShapeValidation(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Zero(t, v)
}

// TestNewDenseFromRows_CopiesAndValidates: ragged and empty inputs fail;
// the built matrix does not alias the caller's rows.
func TestNewDenseFromRows_CopiesAndValidates(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "matrix aliases caller-owned rows")
}

// TestDense_AtSetBounds: every out-of-range access returns ErrOutOfRange
// and leaves the matrix untouched.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange)
	}
}

// TestDense_CloneIsDeep: mutating the clone never touches the original.
func TestDense_CloneIsDeep(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 42))

	orig, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, orig)

	cloned, err := c.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 42.0, cloned)
}

// TestDense_String formats rows on separate bracketed lines.
func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1.5}, {2, 0}})
	require.NoError(t, err)

	require.Equal(t, "[0, 1.5]\n[2, 0]\n", m.String())
}
