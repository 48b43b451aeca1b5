// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// Script is a variable length byte string prefixed with its length encoded as
// a variable length integer.  It is used for signature scripts, public key
// scripts and witness stack items.
type Script struct {
	slice  []byte
	prefix uint8
}

// ParseScript decodes a length prefixed byte string from the start of b.
func ParseScript(b []byte) (ParseResult[Script], error) {
	length, err := readCount(b)
	if err != nil {
		return ParseResult[Script]{}, err
	}
	if err := need(length.Remaining(), length.Parsed()); err != nil {
		return ParseResult[Script]{}, err
	}
	consumed := length.Consumed() + length.Parsed()
	script := Script{
		slice:  b[:consumed],
		prefix: uint8(length.Consumed()),
	}
	return newParseResult(b, consumed, script), nil
}

// Bytes returns the script without its length prefix.
func (s Script) Bytes() []byte {
	return s.slice[s.prefix:]
}

// Serialized returns the script including its length prefix.
func (s Script) Serialized() []byte {
	return s.slice
}

// Len returns the length of the script, excluding the prefix.
func (s Script) Len() int {
	return len(s.slice) - int(s.prefix)
}

// IsEmpty returns whether the script has no bytes.
func (s Script) IsEmpty() bool {
	return s.Len() == 0
}
