// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// outPointSize is the serialized size of a previous outpoint: 32 bytes
	// of transaction hash and a 4 byte output index.
	outPointSize = chainhash.HashSize + 4

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = 0xffffffff

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff
)

// OutPoint is a view over a serialized reference to a previous transaction
// output.
type OutPoint struct {
	slice []byte
}

// ParseOutPoint decodes an outpoint from the start of b.
func ParseOutPoint(b []byte) (ParseResult[OutPoint], error) {
	if err := need(b, outPointSize); err != nil {
		return ParseResult[OutPoint]{}, err
	}
	return newParseResult(b, outPointSize, OutPoint{slice: b[:outPointSize]}), nil
}

// Hash returns the hash of the referenced transaction.
func (o OutPoint) Hash() chainhash.Hash {
	var h chainhash.Hash
	copy(h[:], o.slice[:chainhash.HashSize])
	return h
}

// Index returns the output index within the referenced transaction.
func (o OutPoint) Index() uint32 {
	return littleEndian.Uint32(o.slice[chainhash.HashSize:])
}

// IsNull returns whether the outpoint is the null previous output used by
// coinbase inputs.
func (o OutPoint) IsNull() bool {
	if o.Index() != MaxPrevOutIndex {
		return false
	}
	for _, b := range o.slice[:chainhash.HashSize] {
		if b != 0 {
			return false
		}
	}
	return true
}

// Bytes returns the serialized outpoint.
func (o OutPoint) Bytes() []byte {
	return o.slice
}

// TxIn is a view over a serialized transaction input.
type TxIn struct {
	slice           []byte
	signatureScript Script
}

// ParseTxIn decodes a transaction input from the start of b.
func ParseTxIn(b []byte) (ParseResult[TxIn], error) {
	prevOut, err := ParseOutPoint(b)
	if err != nil {
		return ParseResult[TxIn]{}, err
	}
	script, err := ParseScript(prevOut.Remaining())
	if err != nil {
		return ParseResult[TxIn]{}, err
	}
	sequence, err := parseUint32(script.Remaining())
	if err != nil {
		return ParseResult[TxIn]{}, err
	}
	consumed := prevOut.Consumed() + script.Consumed() + sequence.Consumed()
	txIn := TxIn{
		slice:           b[:consumed],
		signatureScript: script.Parsed(),
	}
	return newParseResult(b, consumed, txIn), nil
}

// PreviousOutPoint returns the output this input spends.
func (t TxIn) PreviousOutPoint() OutPoint {
	return OutPoint{slice: t.slice[:outPointSize]}
}

// SignatureScript returns the script that satisfies the spent output.
func (t TxIn) SignatureScript() Script {
	return t.signatureScript
}

// Sequence returns the sequence number of the input.
func (t TxIn) Sequence() uint32 {
	return littleEndian.Uint32(t.slice[len(t.slice)-4:])
}

// Bytes returns the serialized input.
func (t TxIn) Bytes() []byte {
	return t.slice
}

// TxIns is a view over a count prefixed list of transaction inputs.
type TxIns struct {
	slice []byte
	n     int
}

// DecodeTxIns decodes a list of transaction inputs from the start of b,
// passing every input to v as it is decoded.
func DecodeTxIns(b []byte, v Visitor) (ParseResult[TxIns], error) {
	count, err := readCount(b)
	if err != nil {
		return ParseResult[TxIns]{}, err
	}
	n := count.Parsed()
	v.VisitTxIns(n)

	rest := count.Remaining()
	for i := 0; i < n; i++ {
		txIn, err := ParseTxIn(rest)
		if err != nil {
			return ParseResult[TxIns]{}, err
		}
		v.VisitTxIn(i, txIn.Parsed())
		rest = txIn.Remaining()
	}

	consumed := len(b) - len(rest)
	return newParseResult(b, consumed, TxIns{slice: b[:consumed], n: n}), nil
}

// Len returns the number of inputs.
func (t TxIns) Len() int {
	return t.n
}

// IsEmpty returns whether the list has no inputs.
func (t TxIns) IsEmpty() bool {
	return t.n == 0
}

// Bytes returns the serialized list including its count prefix.
func (t TxIns) Bytes() []byte {
	return t.slice
}
