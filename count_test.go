// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelCountConstants(t *testing.T) {
	m, err := New(7)
	require.NoError(t, err)

	mc, err := m.ModelCount(m.True(), 7)
	require.NoError(t, err)
	assert.Equal(t, "128", mc.String())

	mc, err = m.ModelCount(m.False(), 7)
	require.NoError(t, err)
	assert.Equal(t, "0", mc.String())

	// unconstrained extra variables double the count
	mc, err = m.ModelCount(m.True(), 9)
	require.NoError(t, err)
	assert.Equal(t, "512", mc.String())

	_, err = m.ModelCount(m.True(), 3)
	assert.Error(t, err)
}

func TestModelCountLiteral(t *testing.T) {
	m, err := New(7)
	require.NoError(t, err)
	for _, l := range []int{1, -1, 4, 7, -7} {
		n := lit(t, m, l)
		mc, err := m.ModelCount(n, 7)
		require.NoError(t, err)
		assert.Equalf(t, "64", mc.String(), "literal %d", l)
		assert.Equalf(t, 0, m.SatProb(n).Cmp(big.NewRat(1, 2)), "literal %d", l)
	}
}

func TestSatProb(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	v1 := lit(t, m, 1)
	v3 := lit(t, m, 3)

	assert.Equal(t, 0, m.SatProb(m.True()).Cmp(big.NewRat(1, 1)))
	assert.Equal(t, 0, m.SatProb(m.False()).Cmp(new(big.Rat)))
	assert.Equal(t, 0, m.SatProb(m.Conjoin(v1, v3)).Cmp(big.NewRat(1, 4)))
	assert.Equal(t, 0, m.SatProb(m.Disjoin(v1, v3)).Cmp(big.NewRat(3, 4)))
}

func TestEval(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	v1 := lit(t, m, 1)
	v2 := lit(t, m, 2)
	v3 := lit(t, m, 3)
	f := m.Disjoin(m.Conjoin(v1, v2), m.Negate(v3))

	var evalTests = []struct {
		assignment []bool
		expected   bool
	}{
		{[]bool{true, true, true}, true},
		{[]bool{true, true, false}, true},
		{[]bool{true, false, true}, false},
		{[]bool{false, false, false}, true},
		{[]bool{false, true, true}, false},
	}
	for _, tt := range evalTests {
		actual, err := m.Eval(f, tt.assignment)
		require.NoError(t, err)
		assert.Equalf(t, tt.expected, actual, "assignment %v", tt.assignment)
	}

	_, err = m.Eval(f, []bool{true})
	assert.Error(t, err)
}

// TestCountAgainstEval cross-checks ModelCount with a brute-force
// enumeration of the assignments.
func TestCountAgainstEval(t *testing.T) {
	m, err := New(5)
	require.NoError(t, err)
	v1 := lit(t, m, 1)
	v2 := lit(t, m, 2)
	v4 := lit(t, m, 4)
	v5 := lit(t, m, 5)
	f := m.Or(
		m.Conjoin(v1, m.Negate(v4)),
		m.Conjoin(v2, v5),
		m.And(m.Negate(v1), m.Negate(v2), v4),
	)
	require.NoError(t, m.Validate(f))

	count := 0
	for bits := 0; bits < 1<<5; bits++ {
		assignment := make([]bool, 5)
		for i := range assignment {
			assignment[i] = bits&(1<<i) != 0
		}
		sat, err := m.Eval(f, assignment)
		require.NoError(t, err)
		if sat {
			count++
		}
	}
	mc, err := m.ModelCount(f, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(count), mc.Int64())
}
