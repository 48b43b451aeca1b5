// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// TxFlagMarker is the first byte of the FLAG field in a bitcoin tx
	// message.  It allows decoders to distinguish a regular serialized
	// transaction from one that would require a different parsing logic.
	//
	// Position of FLAG in a bitcoin tx message:
	//   ┌─────────┬────────────────────┬─────────────┬─────┐
	//   │ VERSION │ FLAG               │ TX-IN-COUNT │ ... │
	//   │ 4 bytes │ 2 bytes (optional) │ varint      │     │
	//   └─────────┴────────────────────┴─────────────┴─────┘
	//
	// Zooming into the FLAG field:
	//   ┌── FLAG ─────────────┬────────┐
	//   │ TxFlagMarker (0x00) │ TxFlag │
	//   │ 1 byte              │ 1 byte │
	//   └─────────────────────┴────────┘
	TxFlagMarker = 0x00

	// WitnessFlag is a flag specific to witness encoding.  If the
	// TxFlagMarker is encountered followed by the WitnessFlag, then it
	// indicates a transaction has witness data.  This allows decoders to
	// distinguish a serialized transaction with witnesses from a legacy
	// one.
	WitnessFlag = 0x01

	// versionSize and lockTimeSize are the sizes of the fixed width fields
	// framing every transaction.
	versionSize  = 4
	lockTimeSize = 4

	// witnessHeaderSize is the size of the marker and flag bytes.
	witnessHeaderSize = 2
)

// Transaction is a view over a serialized bitcoin transaction.  It borrows the
// buffer it was decoded from and must not outlive it, nor may the buffer be
// modified while the view is in use.
//
// The only way to obtain a valid Transaction is to decode one.  The zero value
// is not a transaction and its accessors panic.
type Transaction struct {
	slice []byte

	// ioLen is the serialized length of the input and output lists,
	// including their count prefixes, for transactions using the witness
	// encoding.  It is zero for legacy transactions and otherwise at least
	// two since each list needs one byte for its count.
	ioLen uint32
}

// ParseTransaction decodes a transaction from the start of b.
func ParseTransaction(b []byte) (ParseResult[Transaction], error) {
	return DecodeTransaction(b, EmptyVisitor{})
}

// DecodeTransaction decodes a transaction from the start of b, passing every
// input, output, witness and finally the transaction itself to v.
//
// Both the legacy encoding and the witness encoding are accepted.  An input
// list with zero elements can not be told apart from the witness marker, so
// whenever the input count decodes to zero the following byte must be the
// witness flag.
func DecodeTransaction(b []byte, v Visitor) (ParseResult[Transaction], error) {
	version, err := parseInt32(b)
	if err != nil {
		return ParseResult[Transaction]{}, err
	}
	inputs, err := DecodeTxIns(version.Remaining(), v)
	if err != nil {
		return ParseResult[Transaction]{}, err
	}

	if !inputs.Parsed().IsEmpty() {
		outputs, err := DecodeTxOuts(inputs.Remaining(), v)
		if err != nil {
			return ParseResult[Transaction]{}, err
		}
		if _, err := parseUint32(outputs.Remaining()); err != nil {
			return ParseResult[Transaction]{}, err
		}
		consumed := versionSize + inputs.Consumed() + outputs.Consumed() +
			lockTimeSize

		tx := Transaction{slice: b[:consumed]}
		v.VisitTransaction(tx)
		return newParseResult(b, consumed, tx), nil
	}

	flag, err := parseUint8(inputs.Remaining())
	if err != nil {
		return ParseResult[Transaction]{}, err
	}
	if flag.Parsed() != WitnessFlag {
		return ParseResult[Transaction]{}, DecodeError{
			ErrorCode: ErrUnknownTrailerFlag,
			Flag:      flag.Parsed(),
		}
	}

	inputs, err = DecodeTxIns(flag.Remaining(), v)
	if err != nil {
		return ParseResult[Transaction]{}, err
	}
	outputs, err := DecodeTxOuts(inputs.Remaining(), v)
	if err != nil {
		return ParseResult[Transaction]{}, err
	}
	witnesses, err := DecodeWitnesses(outputs.Remaining(),
		inputs.Parsed().Len(), v)
	if err != nil {
		return ParseResult[Transaction]{}, err
	}
	if !inputs.Parsed().IsEmpty() && witnesses.Parsed().AllEmpty() {
		return ParseResult[Transaction]{},
			decodeError(ErrTrailerFlagWithoutWitness)
	}
	if _, err := parseUint32(witnesses.Remaining()); err != nil {
		return ParseResult[Transaction]{}, err
	}

	ioLen := inputs.Consumed() + outputs.Consumed()
	if uint64(ioLen) > math.MaxUint32 {
		return ParseResult[Transaction]{}, decodeError(ErrLengthOverflow)
	}
	consumed := versionSize + witnessHeaderSize + ioLen +
		witnesses.Consumed() + lockTimeSize

	tx := Transaction{
		slice: b[:consumed],
		ioLen: uint32(ioLen),
	}
	v.VisitTransaction(tx)
	return newParseResult(b, consumed, tx), nil
}

// Version returns the transaction version.
func (t Transaction) Version() int32 {
	return int32(littleEndian.Uint32(t.slice[:versionSize]))
}

// LockTime returns the transaction lock time.
func (t Transaction) LockTime() uint32 {
	return littleEndian.Uint32(t.slice[len(t.slice)-lockTimeSize:])
}

// HasWitness returns whether the transaction was serialized with the witness
// encoding.
func (t Transaction) HasWitness() bool {
	return t.ioLen != 0
}

// Bytes returns the full serialized transaction, witness data included.
func (t Transaction) Bytes() []byte {
	return t.slice
}

// SerializeSize returns the number of bytes of the serialized transaction,
// witness data included.
func (t Transaction) SerializeSize() int {
	return len(t.slice)
}

// SerializeSizeStripped returns the number of bytes the transaction would
// take serialized without any witness data.
func (t Transaction) SerializeSizeStripped() int {
	if t.ioLen == 0 {
		return len(t.slice)
	}
	return versionSize + int(t.ioLen) + lockTimeSize
}

// TxidPreimage returns the data that is double hashed to obtain the
// transaction hash.  A legacy transaction is hashed as a whole, in which case
// the second and third slices are nil.  For a witness transaction the version,
// the input and output lists and the lock time are hashed while the marker,
// flag and witnesses are left out.
//
// The returned slices borrow the decoded buffer.
func (t Transaction) TxidPreimage() ([]byte, []byte, []byte) {
	if t.ioLen == 0 {
		return t.slice, nil, nil
	}
	ioStart := versionSize + witnessHeaderSize
	return t.slice[:versionSize],
		t.slice[ioStart : ioStart+int(t.ioLen)],
		t.slice[len(t.slice)-lockTimeSize:]
}

// TxHash generates the hash for the transaction, excluding any witness data.
func (t Transaction) TxHash() chainhash.Hash {
	version, lists, lockTime := t.TxidPreimage()
	return chainhash.DoubleHashRaw(func(w io.Writer) error {
		for _, part := range [][]byte{version, lists, lockTime} {
			if _, err := w.Write(part); err != nil {
				return err
			}
		}
		return nil
	})
}

// WTxHash generates the hash of the transaction serialized including witness
// data.  For a legacy transaction it is equal to TxHash.
func (t Transaction) WTxHash() chainhash.Hash {
	return chainhash.DoubleHashH(t.slice)
}
