// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
)

// littleEndian is a convenience variable since binary.LittleEndian is quite
// long.
var littleEndian = binary.LittleEndian

// need returns an ErrShortBuffer error when b holds fewer than n bytes.
func need(b []byte, n int) error {
	if len(b) < n {
		return shortBuffer(n - len(b))
	}
	return nil
}

func parseUint8(b []byte) (ParseResult[uint8], error) {
	if err := need(b, 1); err != nil {
		return ParseResult[uint8]{}, err
	}
	return newParseResult(b, 1, b[0]), nil
}

func parseUint16(b []byte) (ParseResult[uint16], error) {
	if err := need(b, 2); err != nil {
		return ParseResult[uint16]{}, err
	}
	return newParseResult(b, 2, littleEndian.Uint16(b)), nil
}

func parseUint32(b []byte) (ParseResult[uint32], error) {
	if err := need(b, 4); err != nil {
		return ParseResult[uint32]{}, err
	}
	return newParseResult(b, 4, littleEndian.Uint32(b)), nil
}

func parseInt32(b []byte) (ParseResult[int32], error) {
	if err := need(b, 4); err != nil {
		return ParseResult[int32]{}, err
	}
	return newParseResult(b, 4, int32(littleEndian.Uint32(b))), nil
}

func parseUint64(b []byte) (ParseResult[uint64], error) {
	if err := need(b, 8); err != nil {
		return ParseResult[uint64]{}, err
	}
	return newParseResult(b, 8, littleEndian.Uint64(b)), nil
}

func parseInt64(b []byte) (ParseResult[int64], error) {
	if err := need(b, 8); err != nil {
		return ParseResult[int64]{}, err
	}
	return newParseResult(b, 8, int64(littleEndian.Uint64(b))), nil
}
