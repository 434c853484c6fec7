// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"github.com/pkg/errors"
)

// Vtree is a vertex in the variable tree of a manager: a full binary tree
// whose leaves each carry one of the variables 1..Varnum. The vtree directs
// the decompositions performed by the apply engine; it is built when the
// manager is created and never mutated afterwards.
type Vtree struct {
	parent *Vtree
	left   *Vtree
	right  *Vtree
	v      int // variable carried by a leaf, 0 on inner vertices
	first  int // in-order index of the leftmost leaf below this vertex
	last   int // in-order index of the rightmost leaf below this vertex
	depth  int // distance to the root

	lits   [2]*Node // leaves only: the negative and positive literal
	unique map[uint64][]*Node
	conj   map[applyKey]*Node
}

// Tree describes the shape of a custom vtree passed to option Custom. A
// leaf is a Tree with Var set and no children; an inner vertex has both
// children and Var left to zero.
type Tree struct {
	Var   int
	Left  *Tree
	Right *Tree
}

// balanced builds a vtree over vars by splitting the slice in two halves at
// each level; on odd slices the extra leaf goes to the right.
func balanced(vars []int) *Vtree {
	if len(vars) == 1 {
		return &Vtree{v: vars[0]}
	}
	mid := len(vars) / 2
	return &Vtree{left: balanced(vars[:mid]), right: balanced(vars[mid:])}
}

// rightLinear builds the comb vtree ((v1, (v2, (...)))).
func rightLinear(vars []int) *Vtree {
	if len(vars) == 1 {
		return &Vtree{v: vars[0]}
	}
	return &Vtree{left: &Vtree{v: vars[0]}, right: rightLinear(vars[1:])}
}

// leftLinear builds the mirror comb (((...), vN-1), vN).
func leftLinear(vars []int) *Vtree {
	if len(vars) == 1 {
		return &Vtree{v: vars[0]}
	}
	n := len(vars)
	return &Vtree{left: leftLinear(vars[:n-1]), right: &Vtree{v: vars[n-1]}}
}

// fromTree converts a user-provided shape, checking that it is a full
// binary tree with variables only at the leaves.
func fromTree(t *Tree) (*Vtree, error) {
	if t == nil {
		return nil, errors.Wrap(ErrBadVtree, "nil subtree")
	}
	if t.Left == nil && t.Right == nil {
		if t.Var < 1 {
			return nil, errors.Wrapf(ErrBadVtree, "bad variable (%d) on leaf", t.Var)
		}
		return &Vtree{v: t.Var}, nil
	}
	if t.Left == nil || t.Right == nil {
		return nil, errors.Wrap(ErrBadVtree, "inner vertex with a single child")
	}
	if t.Var != 0 {
		return nil, errors.Wrapf(ErrBadVtree, "variable (%d) on inner vertex", t.Var)
	}
	left, err := fromTree(t.Left)
	if err != nil {
		return nil, err
	}
	right, err := fromTree(t.Right)
	if err != nil {
		return nil, err
	}
	return &Vtree{left: left, right: right}, nil
}

// number walks the finished tree setting parent and depth pointers and
// numbering the leaves in order, so that descendant tests reduce to an
// interval inclusion. It returns the leaves in order.
func (v *Vtree) number(parent *Vtree, depth int, leaves []*Vtree) []*Vtree {
	v.parent = parent
	v.depth = depth
	if v.isLeaf() {
		v.first = len(leaves)
		v.last = v.first
		return append(leaves, v)
	}
	leaves = v.left.number(v, depth+1, leaves)
	leaves = v.right.number(v, depth+1, leaves)
	v.first = v.left.first
	v.last = v.right.last
	return leaves
}

func (v *Vtree) isLeaf() bool {
	return v.left == nil
}

// IsLeaf reports whether v is a leaf of the vtree.
func (v *Vtree) IsLeaf() bool {
	return v.isLeaf()
}

// IsInner reports whether v is an inner vertex of the vtree.
func (v *Vtree) IsInner() bool {
	return !v.isLeaf()
}

// Left returns the left child of v, or nil on leaves.
func (v *Vtree) Left() *Vtree {
	return v.left
}

// Right returns the right child of v, or nil on leaves.
func (v *Vtree) Right() *Vtree {
	return v.right
}

// Parent returns the parent of v; it is nil only at the root.
func (v *Vtree) Parent() *Vtree {
	return v.parent
}

// Variable returns the variable carried by a leaf, and 0 on inner vertices.
func (v *Vtree) Variable() int {
	return v.v
}

// Variables returns the variables below v, in leaf order.
func (v *Vtree) Variables() []int {
	res := make([]int, 0, v.last-v.first+1)
	var walk func(*Vtree)
	walk = func(t *Vtree) {
		if t.isLeaf() {
			res = append(res, t.v)
			return
		}
		walk(t.left)
		walk(t.right)
	}
	walk(v)
	return res
}

// Lca returns the lowest common ancestor of v and w, which must belong to
// the same vtree.
func (v *Vtree) Lca(w *Vtree) *Vtree {
	for v.depth > w.depth {
		v = v.parent
	}
	for w.depth > v.depth {
		w = w.parent
	}
	for v != w {
		v = v.parent
		w = w.parent
	}
	return v
}

// varsubset reports whether the variables below p are included in the
// variables below q. Since variable sets are exactly subtrees, this is a
// descendant test on leaf intervals.
func varsubset(p, q *Vtree) bool {
	return q.first <= p.first && p.last <= q.last
}

// varsubsetLeft reports whether the variables below p are included in those
// below the left child of q.
func varsubsetLeft(p, q *Vtree) bool {
	return !q.isLeaf() && varsubset(p, q.left)
}

// varsubsetRight reports whether the variables below p are included in
// those below the right child of q.
func varsubsetRight(p, q *Vtree) bool {
	return !q.isLeaf() && varsubset(p, q.right)
}

// width returns the number of variables below v.
func (v *Vtree) width() int {
	return v.last - v.first + 1
}
