// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements zero-copy decoding of serialized bitcoin transactions
and blocks.

Decoding never copies or allocates.  Every decoded type is a small view that
borrows the buffer it was decoded from, so the buffer must outlive the views
and must not be modified while they are in use.  This makes the package
suitable for scanning large amounts of data, for example a memory mapped
block file.

# Decoding

Every entity has a decode function taking the buffer to decode from and
returning a ParseResult holding the decoded view together with the remaining,
unconsumed part of the buffer:

	res, err := wire.ParseTransaction(buf)
	if err != nil {
		// Handle the error.
	}
	tx := res.Parsed()
	fmt.Println(tx.TxHash(), len(res.Remaining()))

Consecutive entities are decoded by feeding the remainder of one call into the
next.

# Visitors

Functions prefixed with Decode also take a Visitor that is called with every
input, output, witness and transaction as soon as it has been decoded.  This
allows consumers to process a block in a single pass without collecting its
contents.  Visitors that only need some of the callbacks embed EmptyVisitor:

	type txCounter struct {
		wire.EmptyVisitor
		n int
	}

	func (c *txCounter) VisitTransaction(wire.Transaction) { c.n++ }

# Witness Encoding

Transactions may be serialized in the legacy layout or with the witness
encoding described by BIP0144, which inserts a zero marker byte and a flag byte
after the version and appends the witness stacks of the inputs before the lock
time.  The marker can not be told apart from an empty input list, so an input
count of zero is always taken as the marker.  The flag must then be 0x01 and at
least one input must carry witness data.

Transaction.TxidPreimage returns the parts of a transaction that make up its
hash, leaving out the marker, flag and witness data, without copying them.

# Block Storage Files

DecodeBlockRecord decodes the records of the block files written by bitcoind
and of bootstrap.dat files.  Each record is the network magic, the length of
the block and the block itself.  The magic must match the expected BitcoinNet.

# Errors

Errors returned by this package are of type DecodeError.  The ErrorCode field
identifies the kind of failure, see IsErrorCode.  Variable length integers that
are not minimally encoded are rejected.
*/
package wire
