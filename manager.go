// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Mgr is a manager for Sentential Decision Diagrams. It owns the vtree, the
// two constants, the pre-allocated literals, and every decision vertex ever
// produced, together with the unicity tables and the operation caches that
// keep the diagrams canonical. A manager must not be used from several
// goroutines at the same time.
type Mgr struct {
	root   *Vtree
	leaves []*Vtree // variable -> leaf; entry 0 is unused
	tru    *Node
	fls    *Node
	nextid uint64
	epoch  uint64
	log    logrus.FieldLogger
	cacheStat
}

// New returns a manager over the variables 1..varnum, together with its
// vtree built according to the shape options (see Balanced, RightLinear,
// LeftLinear, Custom). The default is a balanced vtree over the natural
// variable order.
func New(varnum int, options ...Option) (*Mgr, error) {
	if varnum < 1 {
		return nil, errors.Wrapf(ErrBadVtree, "bad number of variables (%d)", varnum)
	}
	c := makeconfigs()
	for _, o := range options {
		o(c)
	}
	order := c.order
	if order == nil {
		order = make([]int, varnum)
		for i := range order {
			order[i] = i + 1
		}
	}
	if err := checkorder(order, varnum); err != nil {
		return nil, err
	}
	var root *Vtree
	var err error
	switch c.shape {
	case shapeBalanced:
		root = balanced(order)
	case shapeRightLinear:
		root = rightLinear(order)
	case shapeLeftLinear:
		root = leftLinear(order)
	case shapeCustom:
		root, err = fromTree(c.custom)
		if err != nil {
			return nil, err
		}
	}
	leaves := root.number(nil, 0, nil)
	m := &Mgr{root: root, log: c.log}
	m.tru = m.newnode(kindTrue, nil)
	m.fls = m.newnode(kindFalse, nil)
	m.tru.neg = m.fls
	m.fls.neg = m.tru
	m.leaves = make([]*Vtree, varnum+1)
	for _, leaf := range leaves {
		if leaf.v > varnum || m.leaves[leaf.v] != nil {
			return nil, errors.Wrapf(ErrBadVtree, "variable %d is not a permutation point of 1..%d", leaf.v, varnum)
		}
		m.leaves[leaf.v] = leaf
		neg := m.newnode(kindLiteral, leaf)
		neg.literal = -leaf.v
		pos := m.newnode(kindLiteral, leaf)
		pos.literal = leaf.v
		neg.neg, pos.neg = pos, neg
		leaf.lits = [2]*Node{neg, pos}
	}
	for v := 1; v <= varnum; v++ {
		if m.leaves[v] == nil {
			return nil, errors.Wrapf(ErrBadVtree, "variable %d has no leaf", v)
		}
	}
	m.inittables(root)
	return m, nil
}

func checkorder(order []int, varnum int) error {
	if len(order) != varnum {
		return errors.Wrapf(ErrBadVtree, "order has %d entries for %d variables", len(order), varnum)
	}
	seen := make([]bool, varnum+1)
	for _, v := range order {
		if v < 1 || v > varnum || seen[v] {
			return errors.Wrapf(ErrBadVtree, "order is not a permutation of 1..%d", varnum)
		}
		seen[v] = true
	}
	return nil
}

// inittables allocates the unicity table and the conjunction cache of every
// inner vtree vertex.
func (m *Mgr) inittables(v *Vtree) {
	if v.isLeaf() {
		return
	}
	v.unique = make(map[uint64][]*Node)
	v.conj = make(map[applyKey]*Node)
	m.inittables(v.left)
	m.inittables(v.right)
}

func (m *Mgr) newnode(k kind, at *Vtree) *Node {
	n := &Node{kind: k, vtree: at, id: m.nextid}
	m.nextid++
	return n
}

// Varnum returns the number of variables of the manager.
func (m *Mgr) Varnum() int {
	return len(m.leaves) - 1
}

// Root returns the root of the manager's vtree.
func (m *Mgr) Root() *Vtree {
	return m.root
}

// True returns the constant True node.
func (m *Mgr) True() *Node {
	return m.tru
}

// False returns the constant False node.
func (m *Mgr) False() *Node {
	return m.fls
}

// Constant returns the node compiling a Boolean constant.
func (m *Mgr) Constant(v bool) *Node {
	if v {
		return m.tru
	}
	return m.fls
}

// Literal returns the node compiling a literal given as a signed variable:
// Literal(3) is the third variable, Literal(-3) its negation. The variable
// must be in the range 1..Varnum.
func (m *Mgr) Literal(lit int) (*Node, error) {
	v := lit
	if v < 0 {
		v = -v
	}
	if v < 1 || v >= len(m.leaves) {
		return nil, errors.Wrapf(ErrUnknownVariable, "literal %d on a manager with %d variables", lit, m.Varnum())
	}
	leaf := m.leaves[v]
	if lit < 0 {
		return leaf.lits[0], nil
	}
	return leaf.lits[1], nil
}

// Leaf returns the vtree leaf carrying variable v.
func (m *Mgr) Leaf(v int) (*Vtree, error) {
	if v < 1 || v >= len(m.leaves) {
		return nil, errors.Wrapf(ErrUnknownVariable, "variable %d on a manager with %d variables", v, m.Varnum())
	}
	return m.leaves[v], nil
}
