// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package rsdd provides a compiler for Sentential Decision Diagrams (SDD), a
data structure used to represent Boolean functions in a trimmed, compressed
and canonical form. Like its cousin the BDD, an SDD supports the logical
operations (conjunction, disjunction, negation) and queries such as model
counting directly on the compiled form; unlike a BDD, an SDD is normalized
with respect to a full binary tree over the variables, called a vtree,
instead of a total variable order.

# Basics

Each manager is initialized (using New) with a fixed number of variables,
numbered from 1 to Varnum, and a vtree shape. The vtree is built once and
never changes afterwards. Most operations return a *Node, a pointer into the
DAG of SDD vertices owned by the manager. The manager maintains a unicity
table for every inner vtree node, so two equivalent SDD built by the
operations of this package are always represented by the same pointer; in
particular, testing the equivalence of two compiled functions is a pointer
comparison.

Every decision vertex is allocated together with its negation and the two
vertices reference each other, which makes negation a constant-time
operation. Conjunction is computed by a recursion directed by the vtree and
memoized in a per-vtree cache; disjunction is derived from conjunction and
negation by De Morgan's law.

The package also provides a small representation for CNF formulas (see Gate)
together with two compilation strategies, and read-only queries over
compiled diagrams: model counting with arbitrary-precision integers,
satisfaction probability, evaluation, and linearization.

# Memory management

The manager owns every node it ever created and keeps them for its whole
lifetime; there is no garbage collection of diagram vertices. This keeps the
unicity invariant trivially sound and fits the intended use of the library,
where a manager is created, formulas are compiled and queried, and the whole
structure is released at once to the Go runtime.

The manager is not safe for concurrent use.
*/
package rsdd
