// SPDX-License-Identifier: MIT

// Package group: concrete isometry groups.
// FromGenerators closes a finite generator set under composition with
// approximate deduplication. The worklist is the element list itself:
// elements are popped by advancing an index while successors are pushed
// onto the end.

package group

import (
	"go.uber.org/zap"

	"github.com/polytopal/hedra/approx"
	"github.com/polytopal/hedra/geom"
)

// closureLogInterval is how often (in elements) closure progress is logged.
const closureLogInterval = 4096

// IsometryGroup is a finite group of isometries with its abstract
// structure. Immutable after construction.
type IsometryGroup struct {
	*AbstractGroup
	elements []geom.Isometry
}

// FromGenerators computes the closure of the generators. Approximately
// equal isometries collapse to one element. Errors: ErrTooManyGenerators,
// ErrInvalidGenerator for an identity generator, ErrGroupOverflow past
// 65,536 elements.
func FromGenerators(generators []geom.Isometry, opts ...Option) (*IsometryGroup, error) {
	o := gatherOptions(opts)

	// 1. Validate generators and harmonize dimensions.
	ndim := 0
	for _, gen := range generators {
		if gen.IsIdentity() {
			return nil, ErrInvalidGenerator
		}
		ndim = max(ndim, gen.Ndim())
	}
	builder, err := NewBuilder(len(generators))
	if err != nil {
		return nil, err
	}

	// 2. Worklist closure. elements doubles as the queue.
	elements := []geom.Isometry{geom.Identity(ndim)}
	ids := approx.NewMap[geom.Isometry, ElementID]()
	ids.Set(geom.Identity(ndim), Identity)

	for next := 0; next < len(elements); next++ {
		for g, gen := range generators {
			composed := elements[next].Compose(gen)
			if id, ok := ids.Get(composed); ok {
				builder.SetSuccessor(ElementID(next), GeneratorID(g), id)
				continue
			}
			id, err := builder.AddSuccessor(ElementID(next), GeneratorID(g))
			if err != nil {
				return nil, err
			}
			ids.Set(composed, id)
			elements = append(elements, composed)
			if len(elements)%closureLogInterval == 0 {
				o.logger.Debug("group closure growing",
					zap.Int("elements", len(elements)))
			}
		}
	}

	// 3. Finalize and sanity-check the abstract structure.
	ag, err := builder.Build()
	if err != nil {
		return nil, err
	}
	o.logger.Debug("group closure complete",
		zap.Int("elements", ag.ElementCount()),
		zap.Int("generators", ag.GeneratorCount()))
	return &IsometryGroup{AbstractGroup: ag, elements: elements}, nil
}

// Element returns the isometry of an element.
func (ig *IsometryGroup) Element(e ElementID) geom.Isometry {
	return ig.elements[e]
}

// Generator returns the isometry of a generator.
func (ig *IsometryGroup) Generator(g GeneratorID) geom.Isometry {
	return ig.elements[g.Element()]
}

// Generators returns the generator isometries in order.
func (ig *IsometryGroup) Generators() []geom.Isometry {
	gens := make([]geom.Isometry, ig.GeneratorCount())
	for i := range gens {
		gens[i] = ig.elements[i+1]
	}
	return gens
}
