// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of decoding failure.
type ErrorCode int

// These constants are used to identify a specific DecodeError.
const (
	// ErrShortBuffer indicates the input ended before the entity being
	// decoded was complete.
	ErrShortBuffer ErrorCode = iota

	// ErrNonCanonicalVarInt indicates a variable length integer that could
	// have been encoded with fewer bytes.
	ErrNonCanonicalVarInt

	// ErrUnknownTrailerFlag indicates the byte that follows the zero
	// marker of a witness encoded transaction is not the witness flag.
	ErrUnknownTrailerFlag

	// ErrTrailerFlagWithoutWitness indicates a transaction was encoded
	// with the witness marker and flag, has inputs, but none of its inputs
	// carry witness data.
	ErrTrailerFlagWithoutWitness

	// ErrLengthOverflow indicates a count or length that does not fit the
	// integer type used to address it.
	ErrLengthOverflow

	// ErrNetworkMismatch indicates a block storage record belongs to a
	// different network than the one expected.
	ErrNetworkMismatch

	// ErrBlockLengthMismatch indicates the length declared by a block
	// storage record does not match the size of the block it holds.
	ErrBlockLengthMismatch

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrShortBuffer:               "ErrShortBuffer",
	ErrNonCanonicalVarInt:        "ErrNonCanonicalVarInt",
	ErrUnknownTrailerFlag:        "ErrUnknownTrailerFlag",
	ErrTrailerFlagWithoutWitness: "ErrTrailerFlagWithoutWitness",
	ErrLengthOverflow:            "ErrLengthOverflow",
	ErrNetworkMismatch:           "ErrNetworkMismatch",
	ErrBlockLengthMismatch:       "ErrBlockLengthMismatch",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// DecodeError describes why a buffer could not be decoded.  Needed is only
// meaningful for ErrShortBuffer and Flag only for ErrUnknownTrailerFlag.
type DecodeError struct {
	ErrorCode ErrorCode // Describes the kind of error
	Needed    int       // Number of missing bytes, 0 when unknown
	Flag      uint8     // Offending witness flag byte
}

// Error satisfies the error interface and prints human-readable errors.
func (e DecodeError) Error() string {
	switch e.ErrorCode {
	case ErrShortBuffer:
		if e.Needed > 0 {
			return fmt.Sprintf("unexpected end of buffer: %d more "+
				"bytes needed", e.Needed)
		}
		return "unexpected end of buffer"
	case ErrNonCanonicalVarInt:
		return "non-canonical varint encoding"
	case ErrUnknownTrailerFlag:
		return fmt.Sprintf("witness tx but flag byte is %x", e.Flag)
	case ErrTrailerFlagWithoutWitness:
		return "witness flag set but no input carries witness data"
	case ErrLengthOverflow:
		return "length exceeds addressable size"
	case ErrNetworkMismatch:
		return "block record is for another network"
	case ErrBlockLengthMismatch:
		return "block record length does not match block size"
	}
	return e.ErrorCode.String()
}

// shortBuffer returns an ErrShortBuffer error for n missing bytes.
func shortBuffer(n int) error {
	return DecodeError{ErrorCode: ErrShortBuffer, Needed: n}
}

// decodeError creates a DecodeError with just the given code set.
func decodeError(c ErrorCode) error {
	return DecodeError{ErrorCode: c}
}

// IsErrorCode returns whether or not the provided error is a DecodeError with
// the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var e DecodeError
	return errors.As(err, &e) && e.ErrorCode == c
}
