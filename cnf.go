// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GateKind enumerates the kinds of vertices in a logic-circuit tree.
type GateKind uint8

const (
	GateConst GateKind = iota // Boolean constant
	GateLit                   // signed literal
	GateAnd                   // conjunction of the children
	GateOr                    // disjunction of the children
)

// Gate is a vertex in a generic logic-circuit tree, the input format of the
// CNF compiler. A CNF is a GateAnd whose children are clauses; a clause is
// a GateOr of literals, a single literal, or a constant.
type Gate struct {
	kind     GateKind
	children []*Gate
	literal  int
	value    bool
}

func (k GateKind) String() string {
	switch k {
	case GateConst:
		return "constant"
	case GateLit:
		return "literal"
	case GateAnd:
		return "and"
	case GateOr:
		return "or"
	}
	return "unknown"
}

// And returns the conjunction of the given subcircuits.
func And(gs ...*Gate) *Gate {
	return &Gate{kind: GateAnd, children: gs}
}

// Or returns the disjunction of the given subcircuits.
func Or(gs ...*Gate) *Gate {
	return &Gate{kind: GateOr, children: gs}
}

// Lit returns the circuit for a literal given as a signed variable.
func Lit(lit int) *Gate {
	return &Gate{kind: GateLit, literal: lit}
}

// Const returns the circuit for a Boolean constant.
func Const(v bool) *Gate {
	return &Gate{kind: GateConst, value: v}
}

// Kind returns the kind of the gate.
func (g *Gate) Kind() GateKind {
	return g.kind
}

// Children returns the subcircuits of the gate, in order.
func (g *Gate) Children() []*Gate {
	return g.children
}

// Literal returns the signed variable of a GateLit vertex, 0 otherwise.
func (g *Gate) Literal() int {
	return g.literal
}

// Value returns the constant of a GateConst vertex.
func (g *Gate) Value() bool {
	return g.value
}

// Strategy selects how CompileCNF orders the conjunctions of the clauses.
type Strategy uint8

const (
	// Linear compiles clauses one after the other, in input order.
	Linear Strategy = iota
	// Tree recurses along the vtree, compiling the clauses of each subtree
	// below the vtree vertex they fit under.
	Tree
)

func (s Strategy) String() string {
	switch s {
	case Linear:
		return "linear"
	case Tree:
		return "tree"
	}
	return "unknown"
}

// CompileClause compiles a clause: a disjunction of literals, a single
// literal, or a constant.
func (m *Mgr) CompileClause(g *Gate) (*Node, error) {
	switch g.kind {
	case GateConst:
		return m.Constant(g.value), nil
	case GateLit:
		return m.Literal(g.literal)
	case GateOr:
		res := m.fls
		for _, child := range g.children {
			if child.kind != GateLit {
				return nil, errors.Wrapf(ErrNotCNF, "clause with a %v child", child.kind)
			}
			l, err := m.Literal(child.literal)
			if err != nil {
				return nil, err
			}
			res = m.Disjoin(res, l)
		}
		return res, nil
	}
	return nil, errors.Wrap(ErrNotCNF, "clause is a conjunction")
}

// CompileCNF compiles a conjunction of clauses into an SDD, using the given
// strategy. The result is independent of the strategy: the manager being
// canonical, both return the same pointer.
func (m *Mgr) CompileCNF(g *Gate, strategy Strategy) (*Node, error) {
	if g.kind != GateAnd {
		return nil, errors.Wrapf(ErrNotCNF, "root of the input is a %v", g.kind)
	}
	switch strategy {
	case Linear:
		return m.compileLinear(g.children)
	case Tree:
		return m.compileTree(g.children, m.root)
	}
	return nil, errors.Wrapf(ErrBadStrategy, "strategy %d", strategy)
}

func (m *Mgr) compileLinear(clauses []*Gate) (*Node, error) {
	res := m.tru
	for i, c := range clauses {
		cl, err := m.CompileClause(c)
		if err != nil {
			return nil, errors.Wrapf(err, "clause %d", i)
		}
		res = m.conjoin(res, cl)
		m.log.WithFields(logrus.Fields{"clause": i, "size": m.Size(res)}).Debug("conjoined clause")
	}
	return res, nil
}

// compileTree compiles clauses below the vtree vertex at. Clauses that fit
// entirely under one side of at are handled recursively on that side;
// clauses spanning both sides are conjoined last, in input order.
func (m *Mgr) compileTree(clauses []*Gate, at *Vtree) (*Node, error) {
	if len(clauses) == 0 {
		return m.tru, nil
	}
	if at.isLeaf() {
		return m.compileLinear(clauses)
	}
	var lefts, rights, mixed []*Gate
	for _, c := range clauses {
		scope, err := m.clauseScope(c)
		if err != nil {
			return nil, err
		}
		switch {
		case scope == nil:
			mixed = append(mixed, c)
		case varsubset(scope, at.left):
			lefts = append(lefts, c)
		case varsubset(scope, at.right):
			rights = append(rights, c)
		default:
			mixed = append(mixed, c)
		}
	}
	m.log.WithFields(logrus.Fields{
		"left":  len(lefts),
		"right": len(rights),
		"mixed": len(mixed),
	}).Debug("partitioned clauses")
	l, err := m.compileTree(lefts, at.left)
	if err != nil {
		return nil, err
	}
	r, err := m.compileTree(rights, at.right)
	if err != nil {
		return nil, err
	}
	res := m.conjoin(l, r)
	for _, c := range mixed {
		cl, err := m.CompileClause(c)
		if err != nil {
			return nil, err
		}
		res = m.conjoin(res, cl)
	}
	return res, nil
}

// clauseScope returns the lowest vtree vertex covering all the variables of
// a clause, or nil for constant clauses.
func (m *Mgr) clauseScope(g *Gate) (*Vtree, error) {
	var scope *Vtree
	add := func(lit int) error {
		v := lit
		if v < 0 {
			v = -v
		}
		leaf, err := m.Leaf(v)
		if err != nil {
			return err
		}
		if scope == nil {
			scope = leaf
			return nil
		}
		scope = scope.Lca(leaf)
		return nil
	}
	switch g.kind {
	case GateConst:
		return nil, nil
	case GateLit:
		if err := add(g.literal); err != nil {
			return nil, err
		}
		return scope, nil
	case GateOr:
		for _, child := range g.children {
			if child.kind != GateLit {
				return nil, errors.Wrapf(ErrNotCNF, "clause with a %v child", child.kind)
			}
			if err := add(child.literal); err != nil {
				return nil, err
			}
		}
		return scope, nil
	}
	return nil, errors.Wrap(ErrNotCNF, "clause is a conjunction")
}
