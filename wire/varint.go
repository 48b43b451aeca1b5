// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"math"
)

// MaxVarIntPayload is the maximum payload size for a variable length integer.
const MaxVarIntPayload = 9

// ReadVarInt decodes a variable length integer from the start of b.  Values
// that are not encoded in the shortest possible form are rejected with
// ErrNonCanonicalVarInt.
func ReadVarInt(b []byte) (ParseResult[uint64], error) {
	discriminant, err := parseUint8(b)
	if err != nil {
		return ParseResult[uint64]{}, err
	}
	rest := discriminant.Remaining()

	var rv uint64
	var size int
	switch discriminant.Parsed() {
	case 0xff:
		sv, err := parseUint64(rest)
		if err != nil {
			return ParseResult[uint64]{}, err
		}
		rv, size = sv.Parsed(), 9

		// The encoding is not canonical if the value could have been
		// encoded using fewer bytes.
		if rv < 0x100000000 {
			return ParseResult[uint64]{}, decodeError(ErrNonCanonicalVarInt)
		}

	case 0xfe:
		sv, err := parseUint32(rest)
		if err != nil {
			return ParseResult[uint64]{}, err
		}
		rv, size = uint64(sv.Parsed()), 5

		if rv < 0x10000 {
			return ParseResult[uint64]{}, decodeError(ErrNonCanonicalVarInt)
		}

	case 0xfd:
		sv, err := parseUint16(rest)
		if err != nil {
			return ParseResult[uint64]{}, err
		}
		rv, size = uint64(sv.Parsed()), 3

		if rv < 0xfd {
			return ParseResult[uint64]{}, decodeError(ErrNonCanonicalVarInt)
		}

	default:
		rv, size = uint64(discriminant.Parsed()), 1
	}

	return newParseResult(b, size, rv), nil
}

// readCount decodes a variable length integer that is used as an element count
// or a byte length and converts it to an int.
func readCount(b []byte) (ParseResult[int], error) {
	v, err := ReadVarInt(b)
	if err != nil {
		return ParseResult[int]{}, err
	}
	if v.Parsed() > math.MaxInt32 {
		return ParseResult[int]{}, decodeError(ErrLengthOverflow)
	}
	return newParseResult(b, v.Consumed(), int(v.Parsed())), nil
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	// The value is small enough to be represented by itself, so it's
	// just 1 byte.
	if val < 0xfd {
		return 1
	}

	// Discriminant 1 byte plus 2 bytes for the uint16.
	if val <= math.MaxUint16 {
		return 3
	}

	// Discriminant 1 byte plus 4 bytes for the uint32.
	if val <= math.MaxUint32 {
		return 5
	}

	// Discriminant 1 byte plus 8 bytes for the uint64.
	return 9
}
