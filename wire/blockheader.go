// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// MaxBlockHeaderPayload is the number of bytes a block header can be.
// Version 4 bytes + Timestamp 4 bytes + Bits 4 bytes + Nonce 4 bytes +
// PrevBlock and MerkleRoot hashes.
const MaxBlockHeaderPayload = 16 + (chainhash.HashSize * 2)

// Offsets of the header fields.
const (
	prevBlockOffset  = 4
	merkleRootOffset = prevBlockOffset + chainhash.HashSize
	timestampOffset  = merkleRootOffset + chainhash.HashSize
	bitsOffset       = timestampOffset + 4
	nonceOffset      = bitsOffset + 4
)

// BlockHeader is a view over a serialized block header.
type BlockHeader struct {
	slice []byte
}

// ParseBlockHeader decodes a block header from the start of b.
func ParseBlockHeader(b []byte) (ParseResult[BlockHeader], error) {
	if err := need(b, MaxBlockHeaderPayload); err != nil {
		return ParseResult[BlockHeader]{}, err
	}
	header := BlockHeader{slice: b[:MaxBlockHeaderPayload]}
	return newParseResult(b, MaxBlockHeaderPayload, header), nil
}

// Version returns the block version.
func (h BlockHeader) Version() int32 {
	return int32(littleEndian.Uint32(h.slice))
}

// PrevBlock returns the hash of the previous block in the chain.
func (h BlockHeader) PrevBlock() chainhash.Hash {
	var hash chainhash.Hash
	copy(hash[:], h.slice[prevBlockOffset:merkleRootOffset])
	return hash
}

// MerkleRoot returns the merkle tree root of the transactions of the block.
func (h BlockHeader) MerkleRoot() chainhash.Hash {
	var hash chainhash.Hash
	copy(hash[:], h.slice[merkleRootOffset:timestampOffset])
	return hash
}

// Timestamp returns the time the block was created.
func (h BlockHeader) Timestamp() time.Time {
	return time.Unix(int64(littleEndian.Uint32(h.slice[timestampOffset:])), 0)
}

// Bits returns the difficulty target in compact form.
func (h BlockHeader) Bits() uint32 {
	return littleEndian.Uint32(h.slice[bitsOffset:])
}

// Nonce returns the nonce used to generate the block.
func (h BlockHeader) Nonce() uint32 {
	return littleEndian.Uint32(h.slice[nonceOffset:])
}

// BlockHash computes the block identifier hash for the header.
func (h BlockHeader) BlockHash() chainhash.Hash {
	return chainhash.DoubleHashH(h.slice)
}

// Bytes returns the serialized header.
func (h BlockHeader) Bytes() []byte {
	return h.slice
}
