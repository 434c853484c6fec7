// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"github.com/pkg/errors"
)

// Errors reported by the package. They are returned wrapped with contextual
// information and should be tested with errors.Is.
var (
	// ErrUnknownVariable is reported when a literal references a variable
	// that is not part of the manager's vtree.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrBadStrategy is reported when a CNF compilation strategy is not one
	// of the declared Strategy values.
	ErrBadStrategy = errors.New("invalid compilation strategy")

	// ErrNotCNF is reported when the input of CompileCNF is not a
	// conjunction of disjunctions of literals.
	ErrNotCNF = errors.New("input is not in conjunctive normal form")

	// ErrBadVtree is reported when a custom vtree does not cover the
	// variables 1..Varnum exactly once, or mixes leaf and inner fields.
	ErrBadVtree = errors.New("malformed vtree")

	// ErrUntrimmed reports a degenerate XY-partition handed to the
	// canonicalizer. This is a programming error inside the library and is
	// used as a panic value, never returned.
	ErrUntrimmed = errors.New("degenerate XY-partition")
)
