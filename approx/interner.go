// SPDX-License-Identifier: MIT

// Package approx: float interner and composite key construction.
// The Interner assigns a stable 16-bit token to every float bucket it has
// seen; KeyBuilder strings tokens together into a hashable Key for
// composite values.

package approx

import (
	"encoding/binary"
	"sort"
)

// Token identifies a float bucket inside one Interner. Tokens are only
// comparable within the Interner that minted them.
type Token uint16

// maxTokens bounds the distinct buckets one Interner can mint. Exhaustion
// means the caller is hashing unbounded geometry through a single table,
// which is a programmer error.
const maxTokens = 1 << 16

// Interner buckets floats with tolerance. Token(x) first searches
// [x-Epsilon, x+Epsilon] for an existing bucket and reuses the lowest one
// found; only when the range is empty is a fresh token minted. Lookups
// therefore mutate the table, which is what makes bucketing
// order-dependent (see package doc).
type Interner struct {
	values []float64 // sorted ascending
	tokens []Token   // tokens[i] belongs to values[i]
	next   Token
}

// Token returns the bucket token for x, minting a new bucket if no
// existing one is within Epsilon. Panics when the 16-bit token space is
// exhausted.
func (in *Interner) Token(x float64) Token {
	// 1. Range-search [x-Epsilon, x+Epsilon] in the sorted table.
	lo := x - Epsilon
	i := sort.SearchFloat64s(in.values, lo)
	if i < len(in.values) && in.values[i] <= x+Epsilon {
		return in.tokens[i]
	}

	// 2. Mint a fresh bucket at x, keeping the table sorted.
	if len(in.values) >= maxTokens {
		panic("approx: interner token space exhausted")
	}
	tok := in.next
	in.next++
	in.values = append(in.values, 0)
	in.tokens = append(in.tokens, 0)
	copy(in.values[i+1:], in.values[i:])
	copy(in.tokens[i+1:], in.tokens[i:])
	in.values[i] = x
	in.tokens[i] = tok
	return tok
}

// Len reports the number of distinct buckets minted so far.
func (in *Interner) Len() int { return len(in.values) }

// Key is the encoded approximate hash of a composite value. Two values
// whose components bucket identically produce equal Keys.
type Key string

// Hashable is implemented by composite values (vectors, planes,
// transforms) that can be used as approximate map keys.
type Hashable interface {
	// AppendHash writes the value's components into the builder. The
	// encoding must be self-delimiting for the concrete type: equal Keys
	// must imply component-wise approximate equality.
	AppendHash(b *KeyBuilder)
}

// KeyBuilder accumulates (index, token) pairs into a Key using a shared
// Interner. One builder is used per key computation; the Interner persists
// across computations so buckets stay stable.
type KeyBuilder struct {
	in  *Interner
	buf []byte
}

// WriteFloat appends the bucket token of x.
func (b *KeyBuilder) WriteFloat(x float64) {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, uint16(b.in.Token(x)))
}

// WriteSparse appends (index, token) only when x is nonzero within
// Epsilon. Sparse encoding keeps padded and unpadded forms of the same
// vector hashing identically.
func (b *KeyBuilder) WriteSparse(index int, x float64) {
	if Zero(x) {
		return
	}
	b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(index))
	b.buf = binary.LittleEndian.AppendUint16(b.buf, uint16(b.in.Token(x)))
}

// WriteInt appends a discrete component (kind tags, dimensions).
func (b *KeyBuilder) WriteInt(v int) {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, uint64(int64(v)))
}

// key finalizes the accumulated encoding.
func (b *KeyBuilder) key() Key { return Key(b.buf) }

// KeyOf computes the Key of h against interner in.
func KeyOf(in *Interner, h Hashable) Key {
	b := KeyBuilder{in: in}
	h.AppendHash(&b)
	return b.key()
}
