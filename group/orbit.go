// SPDX-License-Identifier: MIT

// Package group: generic orbit expansion.
// Orbit applies generators to an object until no new results appear,
// deduplicating approximately. The result order is deterministic:
// breadth-first in discovery order, seed first.

package group

import (
	"github.com/polytopal/hedra/approx"
	"github.com/polytopal/hedra/geom"
)

// OrbitEntry is one object in an orbit, together with the generator word
// and the accumulated isometry that produced it from the seed.
type OrbitEntry[T approx.Hashable] struct {
	// Word lists the generator indices applied to the seed, outermost last.
	Word []GeneratorID
	// Transform is the composed isometry with Apply(Transform, seed) ==
	// Object.
	Transform geom.Isometry
	// Object is the orbit member.
	Object T
}

// Orbit expands seed under the generators using apply. Two approximately
// equal results are never both emitted. The generator set must produce a
// finite orbit.
func Orbit[T approx.Hashable](
	generators []geom.Isometry,
	seed T,
	apply func(geom.Isometry, T) T,
) []OrbitEntry[T] {
	ndim := 0
	for _, gen := range generators {
		ndim = max(ndim, gen.Ndim())
	}

	seen := approx.NewSet[T]()
	seen.Add(seed)

	// ret doubles as the worklist.
	ret := []OrbitEntry[T]{{Transform: geom.Identity(ndim), Object: seed}}
	for next := 0; next < len(ret); next++ {
		for g, gen := range generators {
			obj := apply(gen, ret[next].Object)
			if !seen.Add(obj) {
				continue
			}
			word := make([]GeneratorID, 0, len(ret[next].Word)+1)
			word = append(word, ret[next].Word...)
			word = append(word, GeneratorID(g))
			ret = append(ret, OrbitEntry[T]{
				Word:      word,
				Transform: gen.Compose(ret[next].Transform),
				Object:    obj,
			})
		}
	}
	return ret
}

// OrbitVectors expands a point under the generators.
func OrbitVectors(generators []geom.Isometry, seed geom.Vector) []OrbitEntry[geom.Vector] {
	return Orbit(generators, seed, func(iso geom.Isometry, v geom.Vector) geom.Vector {
		return iso.Transform(v)
	})
}

// OrbitManifolds expands a cutting surface under the generators.
func OrbitManifolds(generators []geom.Isometry, seed geom.Manifold) []OrbitEntry[geom.Manifold] {
	return Orbit(generators, seed, func(iso geom.Isometry, m geom.Manifold) geom.Manifold {
		return iso.TransformManifold(m)
	})
}
