// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// BitcoinNet represents which bitcoin network a block storage record belongs
// to.
type BitcoinNet uint32

// Constants used to indicate the bitcoin network of a record.  They can also
// be used to seek to the next record when a file's state is unknown, but this
// package does not provide that functionality.
const (
	// MainNet represents the main bitcoin network.
	MainNet BitcoinNet = 0xd9b4bef9

	// TestNet represents the regression test network.
	TestNet BitcoinNet = 0xdab5bffa

	// TestNet3 represents the test network (version 3).
	TestNet3 BitcoinNet = 0x0709110b

	// TestNet4 represents the test network (version 4).
	TestNet4 BitcoinNet = 0x283f161c

	// SigNet represents the public default SigNet.
	SigNet BitcoinNet = 0x40cf030a

	// SimNet represents the simulation test network.
	SimNet BitcoinNet = 0x12141c16
)

// bnStrings is a map of bitcoin networks back to their constant names for
// pretty printing.
var bnStrings = map[BitcoinNet]string{
	MainNet:  "MainNet",
	TestNet:  "TestNet",
	TestNet3: "TestNet3",
	TestNet4: "TestNet4",
	SigNet:   "SigNet",
	SimNet:   "SimNet",
}

// String returns the BitcoinNet in human-readable form.
func (n BitcoinNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown BitcoinNet (%d)", uint32(n))
}

// blockRecordHeaderSize is the size of the network magic and block length
// that precede every block in a block storage file.
const blockRecordHeaderSize = 8

// DecodeBlockRecord decodes one record of a block storage file, such as the
// blk*.dat files of bitcoind or a bootstrap.dat file.  The record format is:
//
//	<network> <block length> <serialized block>
//
// The network must match net and the block must span exactly the declared
// length.  The block is passed to v as DecodeBlock does.
func DecodeBlockRecord(b []byte, net BitcoinNet, v Visitor) (ParseResult[Block], error) {
	magic, err := parseUint32(b)
	if err != nil {
		return ParseResult[Block]{}, err
	}
	if BitcoinNet(magic.Parsed()) != net {
		log.Debugf("Network mismatch -- got %v, want %v",
			BitcoinNet(magic.Parsed()), net)
		return ParseResult[Block]{}, decodeError(ErrNetworkMismatch)
	}

	length, err := parseUint32(magic.Remaining())
	if err != nil {
		return ParseResult[Block]{}, err
	}
	rest := length.Remaining()
	if uint64(length.Parsed()) > uint64(len(rest)) {
		return ParseResult[Block]{}, shortBuffer(
			int(uint64(length.Parsed()) - uint64(len(rest))))
	}
	n := int(length.Parsed())

	block, err := DecodeBlock(rest[:n], v)
	if err != nil {
		return ParseResult[Block]{}, err
	}
	if block.Consumed() != n {
		return ParseResult[Block]{}, decodeError(ErrBlockLengthMismatch)
	}

	return newParseResult(b, blockRecordHeaderSize+n, block.Parsed()), nil
}
