// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"math/big"

	"github.com/pkg/errors"
)

type countKey struct {
	n  *Node
	at *Vtree
}

// ModelCount computes the number of assignments over the variables 1..nvars
// satisfying the function denoted by n. We return a result using
// arbitrary-precision arithmetic to avoid possible overflows. The count is
// taken over at least the variables of the manager, so nvars must be at
// least Varnum; variables above Varnum are unconstrained and double the
// count each.
func (m *Mgr) ModelCount(n *Node, nvars int) (*big.Int, error) {
	if nvars < m.Varnum() {
		return nil, errors.Wrapf(ErrUnknownVariable, "counting over %d variables on a manager with %d", nvars, m.Varnum())
	}
	memo := make(map[countKey]*big.Int)
	res := new(big.Int).Set(m.count(n, m.root, memo))
	return res.Mul(res, pow2(nvars-m.Varnum())), nil
}

// SatProb returns the probability that a uniformly random assignment of the
// manager's variables satisfies the function denoted by n.
func (m *Mgr) SatProb(n *Node) *big.Rat {
	memo := make(map[countKey]*big.Int)
	return new(big.Rat).SetFrac(m.count(n, m.root, memo), pow2(m.Varnum()))
}

// count returns the number of models of n over the variables below the
// vtree vertex at, which must cover the vtree vertex of n. Results are
// memoized per (node, vertex) pair; the same node can be counted under
// different vertices because of the gap variables between its vtree vertex
// and at.
func (m *Mgr) count(n *Node, at *Vtree, memo map[countKey]*big.Int) *big.Int {
	switch n.kind {
	case kindFalse:
		return big.NewInt(0)
	case kindTrue:
		return pow2(at.width())
	}
	if n.vtree == at {
		if at.isLeaf() {
			// a literal constrains exactly its own variable
			return big.NewInt(1)
		}
		key := countKey{n: n, at: at}
		if res, ok := memo[key]; ok {
			return res
		}
		res := new(big.Int)
		tmp := new(big.Int)
		for _, e := range n.elements {
			tmp.Mul(m.count(e.prime, at.left, memo), m.count(e.sub, at.right, memo))
			res.Add(res, tmp)
		}
		memo[key] = res
		return res
	}
	key := countKey{n: n, at: at}
	if res, ok := memo[key]; ok {
		return res
	}
	var res *big.Int
	if varsubset(n.vtree, at.left) {
		res = new(big.Int).Mul(m.count(n, at.left, memo), pow2(at.right.width()))
	} else {
		res = new(big.Int).Mul(m.count(n, at.right, memo), pow2(at.left.width()))
	}
	memo[key] = res
	return res
}

// pow2 returns 2^k, computed with a bit shift.
func pow2(k int) *big.Int {
	res := big.NewInt(0)
	return res.SetBit(res, k, 1)
}

// Eval returns the value of the function denoted by n under a total
// assignment of the manager's variables, where assignment[i] is the value
// of variable i+1.
func (m *Mgr) Eval(n *Node, assignment []bool) (bool, error) {
	if len(assignment) != m.Varnum() {
		return false, errors.Errorf("assignment has %d values for %d variables", len(assignment), m.Varnum())
	}
	return m.eval(n, assignment), nil
}

func (m *Mgr) eval(n *Node, assignment []bool) bool {
	switch n.kind {
	case kindTrue:
		return true
	case kindFalse:
		return false
	case kindLiteral:
		return assignment[n.Variable()-1] == n.Polarity()
	}
	// exactly one prime of a decision holds under any assignment
	for _, e := range n.elements {
		if m.eval(e.prime, assignment) {
			return m.eval(e.sub, assignment)
		}
	}
	return false
}
