// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildXor(t *testing.T, m *Mgr) *Node {
	t.Helper()
	v1 := lit(t, m, 1)
	v2 := lit(t, m, 2)
	return m.Disjoin(m.Conjoin(v1, m.Negate(v2)), m.Conjoin(m.Negate(v1), v2))
}

func TestSizeAndNumNodes(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	xor := buildXor(t, m)

	assert.Equal(t, 2, m.Size(xor))
	assert.Equal(t, 1, m.NumNodes(xor))
	assert.Equal(t, 0, m.Size(m.True()))
	assert.Equal(t, 0, m.NumNodes(lit(t, m, 3)))
}

func TestLinearize(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	xor := buildXor(t, m)

	nodes := m.Linearize(xor)
	require.Len(t, nodes, 5)
	assert.Same(t, xor, nodes[len(nodes)-1])
	seen := make(map[*Node]int)
	for i, n := range nodes {
		seen[n] = i
	}
	for _, n := range nodes {
		for _, e := range n.Elements() {
			assert.Less(t, seen[e.prime], seen[n])
			assert.Less(t, seen[e.sub], seen[n])
		}
	}
	// a second traversal returns the same order
	assert.Equal(t, nodes, m.Linearize(xor))
}

// TestReplay rebuilds every decision of a linearized SDD through the
// canonicalizer and checks that the manager hands back the same pointers.
func TestReplay(t *testing.T) {
	m, err := New(7)
	require.NoError(t, err)
	cnf := And(
		Or(Lit(1), Lit(4)),
		Or(Lit(-2), Lit(5), Lit(7)),
		Or(Lit(3), Lit(-6)),
	)
	f, err := m.CompileCNF(cnf, Tree)
	require.NoError(t, err)
	for _, x := range m.Linearize(f) {
		if !x.IsDecision() {
			continue
		}
		elems := make([]Element, len(x.Elements()))
		copy(elems, x.Elements())
		assert.Same(t, x, m.canonicalize(elems, x.Vtree()))
	}
}

// TestDeterministicConstruction compiles the same formula in two fresh
// managers and compares the linearized forms.
func TestDeterministicConstruction(t *testing.T) {
	shape := func() (*Mgr, *Node) {
		m, err := New(5)
		require.NoError(t, err)
		f, err := m.CompileCNF(And(
			Or(Lit(1), Lit(-3), Lit(5)),
			Or(Lit(2), Lit(4)),
			Or(Lit(-1), Lit(-5)),
		), Linear)
		require.NoError(t, err)
		return m, f
	}
	m1, f1 := shape()
	m2, f2 := shape()
	n1 := m1.Linearize(f1)
	n2 := m2.Linearize(f2)
	require.Equal(t, len(n1), len(n2))
	for i := range n1 {
		assert.Equal(t, n1[i].kind, n2[i].kind)
		assert.Equal(t, n1[i].literal, n2[i].literal)
		assert.Equal(t, len(n1[i].elements), len(n2[i].elements))
	}
}

func TestString(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, "⊤", m.True().String())
	assert.Equal(t, "⊥", m.False().String())
	assert.Equal(t, "x3", lit(t, m, 3).String())
	assert.Equal(t, "-x3", lit(t, m, -3).String())
	xor := buildXor(t, m)
	assert.Contains(t, xor.String(), "x1")
	assert.Contains(t, xor.String(), "(")
}

func TestDot(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	xor := buildXor(t, m)
	var sb strings.Builder
	require.NoError(t, m.Dot(&sb, xor))
	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "digraph S {"))
	assert.Contains(t, out, "shape=record")
	assert.Contains(t, out, "->")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
}
