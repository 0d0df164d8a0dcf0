// SPDX-License-Identifier: MIT

// Package group: incremental group construction.
// The Builder grows successor/predecessor tables one relation at a time;
// Build derives inverses and runs the structural sanity checks. Unknown
// relations are tracked with a -1 sentinel internally so the full 16-bit
// element space stays usable.

package group

const unset int32 = -1

// Builder constructs an AbstractGroup incrementally. The zero value is
// not usable; use NewBuilder.
type Builder struct {
	generatorCount int
	elementCount   int

	factorizations [][]GeneratorID
	successors     []int32
	predecessors   []int32
}

// NewBuilder returns a builder containing just the identity element.
func NewBuilder(generatorCount int) (*Builder, error) {
	if generatorCount > 255 {
		return nil, ErrTooManyGenerators
	}
	return &Builder{
		generatorCount: generatorCount,
		elementCount:   1,
		factorizations: [][]GeneratorID{{}},
		successors:     unsetRow(generatorCount),
		predecessors:   unsetRow(generatorCount),
	}, nil
}

func unsetRow(n int) []int32 {
	row := make([]int32, n)
	for i := range row {
		row[i] = unset
	}
	return row
}

// ElementCount reports the number of elements discovered so far.
func (b *Builder) ElementCount() int { return b.elementCount }

// Successor returns e*g if that relation is known.
func (b *Builder) Successor(e ElementID, g GeneratorID) (ElementID, bool) {
	v := b.successors[int(e)*b.generatorCount+int(g)]
	return ElementID(v), v != unset
}

// GetOrAddSuccessor returns e*g, minting a new element when the relation
// is unknown. Returns ErrGroupOverflow at the element capacity.
func (b *Builder) GetOrAddSuccessor(e ElementID, g GeneratorID) (ElementID, error) {
	if existing, ok := b.Successor(e, g); ok {
		return existing, nil
	}
	return b.AddSuccessor(e, g)
}

// AddSuccessor mints a new element as e*g and records the relation. The
// new element's factorization extends e's by g.
func (b *Builder) AddSuccessor(e ElementID, g GeneratorID) (ElementID, error) {
	if b.elementCount >= MaxElements {
		return 0, ErrGroupOverflow
	}
	newElem := ElementID(b.elementCount)
	b.elementCount++

	word := make([]GeneratorID, 0, len(b.factorizations[e])+1)
	word = append(word, b.factorizations[e]...)
	word = append(word, g)
	b.factorizations = append(b.factorizations, word)

	b.successors = append(b.successors, unsetRow(b.generatorCount)...)
	b.predecessors = append(b.predecessors, unsetRow(b.generatorCount)...)

	b.SetSuccessor(e, g, newElem)
	return newElem, nil
}

// SetSuccessor records e*g = result and the matching predecessor
// relation result*g^-1 = e. Reports whether the relation was previously
// unknown.
func (b *Builder) SetSuccessor(e ElementID, g GeneratorID, result ElementID) bool {
	i := int(e)*b.generatorCount + int(g)
	isNew := b.successors[i] == unset
	b.successors[i] = int32(result)
	b.predecessors[int(result)*b.generatorCount+int(g)] = int32(e)
	return isNew
}

// Build finalizes the tables, derives inverses, and verifies the group
// structure. Errors: ErrIncompleteGroup for missing relations,
// ErrBadGroupStructure for axiom violations, ErrBadInverse when the
// inverse property fails.
func (b *Builder) Build() (*AbstractGroup, error) {
	// 1. Every relation must be known.
	successors := make([]ElementID, len(b.successors))
	predecessors := make([]ElementID, len(b.predecessors))
	for i, v := range b.successors {
		if v == unset || b.predecessors[i] == unset {
			return nil, ErrIncompleteGroup
		}
		successors[i] = ElementID(v)
		predecessors[i] = ElementID(b.predecessors[i])
	}

	ag := &AbstractGroup{
		generatorCount: b.generatorCount,
		elementCount:   b.elementCount,
		factorizations: b.factorizations,
		successors:     successors,
		predecessors:   predecessors,
	}

	// 2. Structural sanity: applying a generator moves every element, only
	// the identity steps onto the generator itself, and every element
	// occurs uniformly often in the successor table.
	counts := make([]int, b.elementCount)
	for e := 0; e < b.elementCount; e++ {
		for g := 0; g < b.generatorCount; g++ {
			succ := ag.Successor(ElementID(e), GeneratorID(g))
			if succ == ElementID(e) {
				return nil, ErrBadGroupStructure
			}
			isIdentity := ElementID(e) == Identity
			if isIdentity != (succ == GeneratorID(g).Element()) {
				return nil, ErrBadGroupStructure
			}
			counts[succ]++
		}
	}
	for _, c := range counts {
		if c != b.generatorCount {
			return nil, ErrBadGroupStructure
		}
	}

	// 3. Derive inverses by folding each reversed factorization through the
	// predecessor table, then verify the involution.
	ag.inverses = make([]ElementID, b.elementCount)
	for e := 0; e < b.elementCount; e++ {
		inv := Identity
		word := ag.factorizations[e]
		for i := len(word) - 1; i >= 0; i-- {
			inv = ag.Predecessor(inv, word[i])
		}
		ag.inverses[e] = inv
	}
	for e := 0; e < b.elementCount; e++ {
		if ag.inverses[ag.inverses[e]] != ElementID(e) {
			return nil, ErrBadInverse
		}
	}

	return ag, nil
}
