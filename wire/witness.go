// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"iter"
)

// Witness is a view over the witness stack of a single transaction input: a
// count of items followed by that many length prefixed byte strings.
type Witness struct {
	slice []byte
	n     int
}

// ParseWitness decodes a witness stack from the start of b.
func ParseWitness(b []byte) (ParseResult[Witness], error) {
	count, err := readCount(b)
	if err != nil {
		return ParseResult[Witness]{}, err
	}
	n := count.Parsed()

	rest := count.Remaining()
	for i := 0; i < n; i++ {
		item, err := ParseScript(rest)
		if err != nil {
			return ParseResult[Witness]{}, err
		}
		rest = item.Remaining()
	}

	consumed := len(b) - len(rest)
	return newParseResult(b, consumed, Witness{slice: b[:consumed], n: n}), nil
}

// Len returns the number of items on the stack.
func (w Witness) Len() int {
	return w.n
}

// IsEmpty returns whether the stack has no items.  A stack holding a single
// zero length item is not empty.
func (w Witness) IsEmpty() bool {
	return w.n == 0
}

// Bytes returns the serialized stack including its item count.
func (w Witness) Bytes() []byte {
	return w.slice
}

// Items iterates over the stack items, without their length prefixes.
func (w Witness) Items() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if w.n == 0 {
			return
		}
		// The witness was validated when it was decoded, so the count
		// and every item can be read back without error checks.
		rest := w.slice[VarIntSerializeSize(uint64(w.n)):]
		for i := 0; i < w.n; i++ {
			item, _ := ParseScript(rest)
			if !yield(item.Parsed().Bytes()) {
				return
			}
			rest = item.Remaining()
		}
	}
}

// Witnesses is a view over the witness stacks of all inputs of a transaction.
// There is no count on the wire, the number of stacks equals the number of
// inputs.
type Witnesses struct {
	slice    []byte
	n        int
	allEmpty bool
}

// DecodeWitnesses decodes exactly n witness stacks from the start of b,
// passing every stack to v as it is decoded.
func DecodeWitnesses(b []byte, n int, v Visitor) (ParseResult[Witnesses], error) {
	v.VisitWitnesses(n)

	allEmpty := true
	rest := b
	for i := 0; i < n; i++ {
		witness, err := ParseWitness(rest)
		if err != nil {
			return ParseResult[Witnesses]{}, err
		}
		if !witness.Parsed().IsEmpty() {
			allEmpty = false
		}
		v.VisitWitness(i, witness.Parsed())
		rest = witness.Remaining()
	}

	consumed := len(b) - len(rest)
	witnesses := Witnesses{
		slice:    b[:consumed],
		n:        n,
		allEmpty: allEmpty,
	}
	return newParseResult(b, consumed, witnesses), nil
}

// Len returns the number of witness stacks.
func (w Witnesses) Len() int {
	return w.n
}

// AllEmpty returns whether every witness stack is empty.  It is true for a
// list of zero stacks.
func (w Witnesses) AllEmpty() bool {
	return w.allEmpty
}

// Bytes returns the serialized witness stacks.
func (w Witnesses) Bytes() []byte {
	return w.slice
}
