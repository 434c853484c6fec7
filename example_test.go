// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd_test

import (
	"fmt"

	"github.com/dalzilio/rsdd"
)

// This example shows the basic usage of the package: create a manager,
// compile a formula and count its models.
func Example_basic() {
	// Create a manager over 4 variables with a balanced vtree.
	m, _ := rsdd.New(4)
	a, _ := m.Literal(1)
	b, _ := m.Literal(2)
	// xor == (x1 & !x2) | (!x1 & x2)
	xor := m.Disjoin(m.Conjoin(a, m.Negate(b)), m.Conjoin(m.Negate(a), b))
	mc, _ := m.ModelCount(xor, 4)
	fmt.Printf("Number of sat. assignments: %s\n", mc)
	// Output:
	// Number of sat. assignments: 8
}

// This example compiles a CNF formula with the vtree-recursive strategy.
func Example_cnf() {
	m, _ := rsdd.New(3)
	f, _ := m.CompileCNF(rsdd.And(
		rsdd.Or(rsdd.Lit(1), rsdd.Lit(2)),
		rsdd.Or(rsdd.Lit(-2), rsdd.Lit(3)),
	), rsdd.Tree)
	mc, _ := m.ModelCount(f, 3)
	fmt.Printf("Number of sat. assignments: %s\n", mc)
	// Output:
	// Number of sat. assignments: 4
}
