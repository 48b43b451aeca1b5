// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// ParseResult is the outcome of a successful decode: the decoded view and the
// part of the input that follows it.
type ParseResult[T any] struct {
	remaining []byte
	parsed    T
	consumed  int
}

// newParseResult returns a result for parsed whose encoding is the first
// consumed bytes of b.  The caller guarantees consumed <= len(b).
func newParseResult[T any](b []byte, consumed int, parsed T) ParseResult[T] {
	return ParseResult[T]{
		remaining: b[consumed:],
		parsed:    parsed,
		consumed:  consumed,
	}
}

// Remaining returns the unconsumed suffix of the decoded buffer.
func (r ParseResult[T]) Remaining() []byte {
	return r.remaining
}

// Parsed returns the decoded value.
func (r ParseResult[T]) Parsed() T {
	return r.parsed
}

// Consumed returns the number of bytes the decoded value spans.
func (r ParseResult[T]) Consumed() int {
	return r.consumed
}

// Visitor receives every entity as soon as it is fully decoded, in buffer
// order.  Values are handed over by value and still borrow the decoded
// buffer, so they remain valid for as long as the buffer is left untouched.
//
// Visitor methods can not alter or abort decoding.  Implementations that only
// care about a few callbacks should embed EmptyVisitor.
type Visitor interface {
	// VisitBlockBegin is called once the transaction count of a block is
	// known and before the first transaction is decoded.
	VisitBlockBegin(totalTransactions int)

	// VisitBlockHeader is called with the decoded header of a block.
	VisitBlockHeader(header BlockHeader)

	// VisitTxIns is called with the input count before the inputs are
	// decoded.
	VisitTxIns(total int)

	// VisitTxIn is called for each decoded input.
	VisitTxIn(vin int, txIn TxIn)

	// VisitTxOuts is called with the output count before the outputs are
	// decoded.
	VisitTxOuts(total int)

	// VisitTxOut is called for each decoded output.
	VisitTxOut(vout int, txOut TxOut)

	// VisitWitnesses is called with the number of witnesses before they are
	// decoded.
	VisitWitnesses(total int)

	// VisitWitness is called with the witness of input vin.
	VisitWitness(vin int, witness Witness)

	// VisitTransaction is called with each fully decoded transaction.
	VisitTransaction(tx Transaction)
}

// EmptyVisitor is a Visitor that ignores every callback.
type EmptyVisitor struct{}

// Ensure EmptyVisitor implements the Visitor interface.
var _ Visitor = EmptyVisitor{}

func (EmptyVisitor) VisitBlockBegin(int) {}
func (EmptyVisitor) VisitBlockHeader(BlockHeader) {}
func (EmptyVisitor) VisitTxIns(int) {}
func (EmptyVisitor) VisitTxIn(int, TxIn) {}
func (EmptyVisitor) VisitTxOuts(int) {}
func (EmptyVisitor) VisitTxOut(int, TxOut) {}
func (EmptyVisitor) VisitWitnesses(int) {}
func (EmptyVisitor) VisitWitness(int, Witness) {}
func (EmptyVisitor) VisitTransaction(Transaction) {}
