// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"github.com/pkg/errors"
)

// Validate traverses the SDD rooted at n exactly once and checks the
// structural properties that every diagram of the manager must satisfy:
// structured decomposability, strong determinism, compression,
// exhaustiveness, trimming, minimum size, and the pairing of every node
// with its negation. It returns nil on a well-formed diagram. Validate is
// the oracle used by the tests of this package; checking determinism and
// exhaustiveness conjoins primes, so it can grow the caches.
func (m *Mgr) Validate(n *Node) error {
	for _, x := range m.Linearize(n) {
		if err := m.validate(x); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mgr) validate(n *Node) error {
	if n.neg == nil || n.neg.neg != n {
		return errors.Errorf("node %s is not paired with its negation", n)
	}
	switch n.kind {
	case kindTrue, kindFalse:
		if n.vtree != nil {
			return errors.Errorf("constant %s attached to a vtree vertex", n)
		}
		return nil
	case kindLiteral:
		leaf := n.vtree
		if leaf == nil || !leaf.isLeaf() {
			return errors.Errorf("literal %s not attached to a leaf", n)
		}
		if n.Variable() != leaf.v {
			return errors.Errorf("literal %s attached to the leaf of variable %d", n, leaf.v)
		}
		return nil
	}
	return m.validateDecision(n)
}

func (m *Mgr) validateDecision(n *Node) error {
	at := n.vtree
	if at == nil || at.isLeaf() {
		return errors.Errorf("decision %s not attached to an inner vertex", n)
	}
	if len(n.elements) < 2 {
		return errors.Errorf("decision %s has %d elements", n, len(n.elements))
	}
	for _, e := range n.elements {
		if e.prime.kind == kindFalse {
			return errors.Errorf("decision %s has a False prime", n)
		}
		if e.prime.kind == kindDecision || e.prime.kind == kindLiteral {
			if !varsubsetLeft(e.prime.vtree, at) {
				return errors.Errorf("prime %s of %s escapes the left side of its vertex", e.prime, n)
			}
		}
		if e.sub.kind == kindDecision || e.sub.kind == kindLiteral {
			if !varsubsetRight(e.sub.vtree, at) {
				return errors.Errorf("sub %s of %s escapes the right side of its vertex", e.sub, n)
			}
		}
	}
	// strong determinism: pairwise conjunctions of primes are the False
	// node, not merely unsatisfiable
	for i := range n.elements {
		for j := i + 1; j < len(n.elements); j++ {
			if m.conjoin(n.elements[i].prime, n.elements[j].prime) != m.fls {
				return errors.Errorf("primes %d and %d of %s overlap", i, j, n)
			}
			if n.elements[i].sub == n.elements[j].sub {
				return errors.Errorf("decision %s is not compressed on elements %d and %d", n, i, j)
			}
		}
	}
	// exhaustiveness: the primes disjoin to True
	all := m.fls
	for _, e := range n.elements {
		all = m.Disjoin(all, e.prime)
	}
	if all != m.tru {
		return errors.Errorf("primes of %s do not cover the Boolean space", n)
	}
	// trimming: the {(a, True), (¬a, False)} shape must have been replaced
	// by its prime
	if len(n.elements) == 2 {
		s0, s1 := n.elements[0].sub, n.elements[1].sub
		if (s0.kind == kindTrue && s1.kind == kindFalse) || (s0.kind == kindFalse && s1.kind == kindTrue) {
			return errors.Errorf("decision %s is not trimmed", n)
		}
	}
	return nil
}
