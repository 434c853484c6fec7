// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

// Negate returns the negation of n. Every node is created together with its
// negation, so this is a pointer dereference.
func (m *Mgr) Negate(n *Node) *Node {
	return n.neg
}

// Conjoin returns the conjunction of a and b. The two operands must belong
// to the manager. Conjunctions are memoized, so conjoining the same
// operands twice, in either order, returns the same pointer without
// recomputing.
func (m *Mgr) Conjoin(a, b *Node) *Node {
	return m.conjoin(a, b)
}

// Disjoin returns the disjunction of a and b, computed by De Morgan's law
// over Conjoin; negations being free, this costs a single conjunction.
func (m *Mgr) Disjoin(a, b *Node) *Node {
	return m.conjoin(a.neg, b.neg).neg
}

// And returns the conjunction of a sequence of nodes.
func (m *Mgr) And(n ...*Node) *Node {
	res := m.tru
	for _, x := range n {
		res = m.conjoin(res, x)
	}
	return res
}

// Or returns the disjunction of a sequence of nodes.
func (m *Mgr) Or(n ...*Node) *Node {
	res := m.fls
	for _, x := range n {
		res = m.Disjoin(res, x)
	}
	return res
}

func (m *Mgr) conjoin(a, b *Node) *Node {
	// Short circuits on constants, equal and opposed operands.
	switch {
	case a.kind == kindFalse || b.kind == kindFalse:
		return m.fls
	case a.kind == kindTrue:
		return b
	case b.kind == kindTrue:
		return a
	case a == b:
		return a
	case a == b.neg:
		return m.fls
	}
	// Both operands are now literals or decisions. The result lives at the
	// least common ancestor of their vtree vertices, which also hosts the
	// cache entry. The key is normalized so that conjoin(a, b) and
	// conjoin(b, a) share it.
	at := a.vtree.Lca(b.vtree)
	key := mkapplykey(a, b)
	if res, ok := at.conj[key]; ok {
		m.opHit++
		return res
	}
	m.opMiss++
	// Decompose both operands into partitions at the target vertex and
	// take their product. Primes of a deterministic partition conjoined
	// with primes of another stay pairwise exclusive, so the product is a
	// valid XY-partition.
	pa := m.decompose(a, at)
	pb := m.decompose(b, at)
	part := make([]Element, 0, len(pa)*len(pb))
	for _, ea := range pa {
		for _, eb := range pb {
			p := m.conjoin(ea.prime, eb.prime)
			if p.kind == kindFalse {
				continue
			}
			part = append(part, Element{prime: p, sub: m.conjoin(ea.sub, eb.sub)})
		}
	}
	res := m.canonicalize(part, at)
	at.conj[key] = res
	return res
}

// decompose views a non-constant node as an XY-partition at the inner
// vertex at, which must be an ancestor of the node's vtree vertex. A
// decision at the target is its own partition; a node on the left side
// becomes {(n, True), (¬n, False)}; a node on the right becomes {(True, n)}.
func (m *Mgr) decompose(n *Node, at *Vtree) []Element {
	if n.vtree == at {
		return n.elements
	}
	if varsubset(n.vtree, at.left) {
		return []Element{
			{prime: n, sub: m.tru},
			{prime: n.neg, sub: m.fls},
		}
	}
	return []Element{{prime: m.tru, sub: n}}
}
