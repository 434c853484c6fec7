// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"fmt"
	"io"
	"strings"
)

// Linearize enumerates the nodes reachable from n in a deterministic
// topological order: the primes and subs of a decision, taken in the
// canonical element order, always appear before the decision itself.
// Running the same sequence of operations on a fresh manager yields the
// same linearization.
func (m *Mgr) Linearize(n *Node) []*Node {
	m.epoch++
	var res []*Node
	var walk func(*Node)
	walk = func(x *Node) {
		if x.epoch == m.epoch {
			return
		}
		x.epoch = m.epoch
		for _, e := range x.elements {
			walk(e.prime)
			walk(e.sub)
		}
		res = append(res, x)
	}
	walk(n)
	return res
}

// Size returns the number of elements of the decision vertices reachable
// from n, the usual size measure for an SDD.
func (m *Mgr) Size(n *Node) int {
	res := 0
	for _, x := range m.Linearize(n) {
		res += len(x.elements)
	}
	return res
}

// NumNodes returns the number of decision vertices reachable from n.
func (m *Mgr) NumNodes(n *Node) int {
	res := 0
	for _, x := range m.Linearize(n) {
		if x.kind == kindDecision {
			res++
		}
	}
	return res
}

// String returns a one-line description of a node: constants print as ⊤ and
// ⊥, literals as a possibly negated variable, and decisions as their list
// of (prime, sub) elements.
func (n *Node) String() string {
	switch n.kind {
	case kindTrue:
		return "⊤"
	case kindFalse:
		return "⊥"
	case kindLiteral:
		if n.literal < 0 {
			return fmt.Sprintf("-x%d", -n.literal)
		}
		return fmt.Sprintf("x%d", n.literal)
	}
	var b strings.Builder
	b.WriteString("[")
	for i, e := range n.elements {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "(%s,%s)", e.prime, e.sub)
	}
	b.WriteString("]")
	return b.String()
}

// Dot writes a graph-like description of the SDD with root n on w, using
// the GraphViz DOT format. Decisions are drawn as records with one port per
// element; arcs to the constants are kept so that the drawing stays an
// accurate picture of the structure.
func (m *Mgr) Dot(w io.Writer, n *Node) error {
	nodes := m.Linearize(n)
	if _, err := fmt.Fprintln(w, "digraph S {"); err != nil {
		return err
	}
	for _, x := range nodes {
		switch x.kind {
		case kindDecision:
			ports := make([]string, len(x.elements))
			for i := range x.elements {
				ports[i] = fmt.Sprintf("<e%d> •", i)
			}
			fmt.Fprintf(w, "n%d [shape=record, label=\"%s\"];\n", x.id, strings.Join(ports, "|"))
		default:
			fmt.Fprintf(w, "n%d [shape=box, label=\"%s\", height=0.3, width=0.3];\n", x.id, x)
		}
	}
	for _, x := range nodes {
		for i, e := range x.elements {
			fmt.Fprintf(w, "n%d:e%d -> n%d [style=dotted];\n", x.id, i, e.prime.id)
			fmt.Fprintf(w, "n%d:e%d -> n%d;\n", x.id, i, e.sub.id)
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// Stats returns information about the manager: number of variables, nodes
// produced, and usage counters for the unicity tables and the conjunction
// caches.
func (m *Mgr) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", m.Varnum())
	res += fmt.Sprintf("Produced:   %d\n", m.nextid)
	res += "==============\n"
	res += fmt.Sprintf("Unique Access:  %d\n", m.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", m.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", m.uniqueMiss)
	res += fmt.Sprintf("Operator Hits:  %d\n", m.opHit)
	res += fmt.Sprintf("Operator Miss:  %d", m.opMiss)
	return res
}
