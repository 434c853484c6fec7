// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rsdd

import (
	"io"

	"github.com/sirupsen/logrus"
)

type shapekind uint8

const (
	shapeBalanced shapekind = iota
	shapeRightLinear
	shapeLeftLinear
	shapeCustom
)

// configs stores the values of the different parameters of a manager before
// it is built.
type configs struct {
	shape  shapekind
	order  []int
	custom *Tree
	log    logrus.FieldLogger
}

func makeconfigs() *configs {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &configs{shape: shapeBalanced, log: l}
}

// Option is a configuration option for New.
type Option func(*configs)

// Balanced is a configuration option (function). Used as a parameter in New
// it selects a balanced vtree, where each inner vertex splits its variables
// in two halves. This is the default shape.
func Balanced() Option {
	return func(c *configs) {
		c.shape = shapeBalanced
	}
}

// RightLinear is a configuration option (function). Used as a parameter in
// New it selects the right-linear comb vtree (v1, (v2, (v3, ...))), which
// makes the SDD behave like an OBDD with the same variable order.
func RightLinear() Option {
	return func(c *configs) {
		c.shape = shapeRightLinear
	}
}

// LeftLinear is a configuration option (function). Used as a parameter in
// New it selects the left-linear comb vtree (((v1, v2), v3), ...).
func LeftLinear() Option {
	return func(c *configs) {
		c.shape = shapeLeftLinear
	}
}

// Order is a configuration option (function). Used as a parameter in New it
// sets the left-to-right order of the variables at the leaves of the vtree
// built by Balanced, RightLinear or LeftLinear. The slice must be a
// permutation of 1..Varnum. The default is the natural order.
func Order(vars ...int) Option {
	return func(c *configs) {
		c.order = vars
	}
}

// Custom is a configuration option (function). Used as a parameter in New
// it provides the full shape of the vtree; the tree must have the variables
// 1..Varnum at its leaves, each exactly once. Custom overrides the other
// shape options.
func Custom(t *Tree) Option {
	return func(c *configs) {
		c.shape = shapeCustom
		c.custom = t
	}
}

// Logger is a configuration option (function). Used as a parameter in New
// it installs a logger on the manager; compilation functions report their
// progress on it at Debug level. By default logs are discarded.
func Logger(l logrus.FieldLogger) Option {
	return func(c *configs) {
		c.log = l
	}
}
