// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Block is a view over a serialized block: a header followed by a count
// prefixed list of transactions.
type Block struct {
	slice []byte
	n     int
}

// ParseBlock decodes a block from the start of b.
func ParseBlock(b []byte) (ParseResult[Block], error) {
	return DecodeBlock(b, EmptyVisitor{})
}

// DecodeBlock decodes a block from the start of b.  The header is passed to v
// first, then the transaction count and then every transaction in order, each
// one as soon as it has been decoded.  Decoding stops at the first transaction
// that fails to decode.
func DecodeBlock(b []byte, v Visitor) (ParseResult[Block], error) {
	header, err := ParseBlockHeader(b)
	if err != nil {
		return ParseResult[Block]{}, err
	}
	v.VisitBlockHeader(header.Parsed())

	count, err := readCount(header.Remaining())
	if err != nil {
		return ParseResult[Block]{}, err
	}
	n := count.Parsed()
	v.VisitBlockBegin(n)

	rest := count.Remaining()
	for i := 0; i < n; i++ {
		tx, err := DecodeTransaction(rest, v)
		if err != nil {
			log.Debugf("Unable to decode transaction %d of %d in block "+
				"%v: %v", i, n, header.Parsed().BlockHash(), err)
			return ParseResult[Block]{}, err
		}
		rest = tx.Remaining()
	}

	consumed := len(b) - len(rest)
	return newParseResult(b, consumed, Block{slice: b[:consumed], n: n}), nil
}

// Header returns the block header.
func (b Block) Header() BlockHeader {
	return BlockHeader{slice: b.slice[:MaxBlockHeaderPayload]}
}

// TotalTransactions returns the number of transactions in the block.
func (b Block) TotalTransactions() int {
	return b.n
}

// BlockHash computes the block identifier hash.
func (b Block) BlockHash() chainhash.Hash {
	return b.Header().BlockHash()
}

// Bytes returns the serialized block.
func (b Block) Bytes() []byte {
	return b.slice
}
