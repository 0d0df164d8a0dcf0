// SPDX-License-Identifier: MIT

// Package group: dense IDs and the abstract group table.
// An AbstractGroup is fully described by its successor table (element *
// generator), from which predecessors, factorizations and inverses are
// derived. IDs are deliberately small: 8-bit generators, 16-bit elements.
// The 16-bit element space is a hard capacity contract, not an
// implementation detail.

package group

// GeneratorID indexes a generator within one group. At most 255
// generators are supported.
type GeneratorID uint8

// ElementID indexes an element within one group. ElementID(0) is the
// identity; elements 1..N are the generators, in order.
type ElementID uint16

// Identity is the identity element of every group.
const Identity ElementID = 0

// MaxElements is the hard capacity of a group.
const MaxElements = 1 << 16

// Element returns the group element corresponding to a generator.
func (g GeneratorID) Element() ElementID { return ElementID(g) + 1 }

// AbstractGroup is a finite group presented by complete successor and
// predecessor tables. Values are immutable after construction.
type AbstractGroup struct {
	generatorCount int
	elementCount   int

	// factorizations[e] is the shortest generator word producing e,
	// composed left to right. The identity's word is empty.
	factorizations [][]GeneratorID
	inverses       []ElementID
	// successors[e*generatorCount+g] = e*g; predecessors likewise with g^-1.
	successors   []ElementID
	predecessors []ElementID
}

// Trivial returns the group with no generators and only the identity.
func Trivial() *AbstractGroup {
	return &AbstractGroup{
		elementCount:   1,
		factorizations: [][]GeneratorID{{}},
		inverses:       []ElementID{Identity},
	}
}

// ElementCount reports the number of elements.
func (ag *AbstractGroup) ElementCount() int { return ag.elementCount }

// GeneratorCount reports the number of generators.
func (ag *AbstractGroup) GeneratorCount() int { return ag.generatorCount }

// Successor returns e*g.
func (ag *AbstractGroup) Successor(e ElementID, g GeneratorID) ElementID {
	return ag.successors[int(e)*ag.generatorCount+int(g)]
}

// Predecessor returns e*g^-1.
func (ag *AbstractGroup) Predecessor(e ElementID, g GeneratorID) ElementID {
	return ag.predecessors[int(e)*ag.generatorCount+int(g)]
}

// Inverse returns e^-1.
func (ag *AbstractGroup) Inverse(e ElementID) ElementID { return ag.inverses[e] }

// Factorization returns the shortest generator word producing e. The
// returned slice must not be modified.
func (ag *AbstractGroup) Factorization(e ElementID) []GeneratorID {
	return ag.factorizations[e]
}

// Compose returns a*b by folding b's factorization through the successor
// table.
func (ag *AbstractGroup) Compose(a, b ElementID) ElementID {
	ret := a
	for _, g := range ag.factorizations[b] {
		ret = ag.Successor(ret, g)
	}
	return ret
}
