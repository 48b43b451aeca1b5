// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"fmt"

	btcwire "github.com/btcsuite/btcd/wire"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected.  It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// genesisCoinbaseTx is the serialized coinbase transaction of the main network
// genesis block.
var genesisCoinbaseTx = hexToBytes("01000000010000000000000000000000000000" +
	"000000000000000000000000000000000000ffffffff4d04ffff001d010445546865" +
	"2054696d65732030332f4a616e2f32303039204368616e63656c6c6f72206f6e2062" +
	"72696e6b206f66207365636f6e64206261696c6f757420666f722062616e6b73ffff" +
	"ffff0100f2052a01000000434104678afdb0fe5548271967f1a67130b7105cd6a828" +
	"e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b" +
	"8d578a4c702b6bf11d5fac00000000")

// genesisBlockHeader is the serialized header of the main network genesis
// block.
var genesisBlockHeader = hexToBytes("0100000000000000000000000000000000000" +
	"000000000000000000000000000000000003ba3edfd7a7b12b27ac72c3e67768f617f" +
	"c81bc3888a51323a9fb8aa4b1e5e4a29ab5f49ffff001d1dac2b7c")

// genesisBlock is the serialized main network genesis block.
var genesisBlock = concat(genesisBlockHeader, []byte{0x01}, genesisCoinbaseTx)

// segwitCoinbaseTx is a testnet coinbase transaction using the witness
// encoding.  Its single input carries one 32 byte witness item.
var segwitCoinbaseTx = hexToBytes("01000000000101000000000000000000000000000000" +
	"0000000000000000000000000000000000ffffffff3603da1b0e00045503bd5704" +
	"c7dd8a0d0ced13bb5785010800000000000a636b706f6f6c122f4e696e6a61506f" +
	"6f6c2f5345475749542fffffffff02b4e5a212000000001976a914876fbb82ec05" +
	"caa6af7a3b5e5a983aae6c6cc6d688ac0000000000000000266a24aa21a9edf91c" +
	"46b49eb8a29089980f02ee6b57e7d63d33b18b4fddac2bcd7db2a3983704012000" +
	"000000000000000000000000000000000000000000000000000000000000000000" +
	"0000")

// nonMinimalTxHead and nonMinimalTxTail surround the length of the first
// output pk script of a witness transaction.  Joined by the minimal encoding
// 0x16 they form a valid transaction, joined by 0xfd1600 an invalid one.
var (
	nonMinimalTxHead = hexToBytes("02000000000101000000000000000000000000000000" +
		"0000000000000000000000000000000000ffffffff310349ce0b04db6fd2632f46" +
		"6f756e6472792055534120506f6f6c202364726f70676f6c642f1e284d6da44c00" +
		"0000000000ffffffff02311b662500000000")
	nonMinimalTxTail = hexToBytes("001435f6de260c9f3bdee47524c473a6016c0c055cb9" +
		"0000000000000000266a24aa21a9edd86201e9d314d373d739d7e897c2f369d6cd" +
		"89ad37902dc3e2202563159e449c01200000000000000000000000000000000000" +
		"00000000000000000000000000000000000000")
)

// multiTxEncoded is a legacy encoded transaction with one input and two
// outputs.
var multiTxEncoded = []byte{
	0x01, 0x00, 0x00, 0x00, // Version
	0x01, // Varint for number of input transactions
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Previous output hash
	0xff, 0xff, 0xff, 0xff, // Prevous output index
	0x07,                                     // Varint for length of signature script
	0x04, 0x31, 0xdc, 0x00, 0x1b, 0x01, 0x62, // Signature script
	0xff, 0xff, 0xff, 0xff, // Sequence
	0x02,                                           // Varint for number of output transactions
	0x00, 0xf2, 0x05, 0x2a, 0x01, 0x00, 0x00, 0x00, // Transaction amount
	0x43, // Varint for length of pk script
	0x41, // OP_DATA_65
	0x04, 0xd6, 0x4b, 0xdf, 0xd0, 0x9e, 0xb1, 0xc5,
	0xfe, 0x29, 0x5a, 0xbd, 0xeb, 0x1d, 0xca, 0x42,
	0x81, 0xbe, 0x98, 0x8e, 0x2d, 0xa0, 0xb6, 0xc1,
	0xc6, 0xa5, 0x9d, 0xc2, 0x26, 0xc2, 0x86, 0x24,
	0xe1, 0x81, 0x75, 0xe8, 0x51, 0xc9, 0x6b, 0x97,
	0x3d, 0x81, 0xb0, 0x1c, 0xc3, 0x1f, 0x04, 0x78,
	0x34, 0xbc, 0x06, 0xd6, 0xd6, 0xed, 0xf6, 0x20,
	0xd1, 0x84, 0x24, 0x1a, 0x6a, 0xed, 0x8b, 0x63,
	0xa6,                                           // 65-byte signature
	0xac,                                           // OP_CHECKSIG
	0x00, 0xe1, 0xf5, 0x05, 0x00, 0x00, 0x00, 0x00, // Transaction amount
	0x43, // Varint for length of pk script
	0x41, // OP_DATA_65
	0x04, 0xd6, 0x4b, 0xdf, 0xd0, 0x9e, 0xb1, 0xc5,
	0xfe, 0x29, 0x5a, 0xbd, 0xeb, 0x1d, 0xca, 0x42,
	0x81, 0xbe, 0x98, 0x8e, 0x2d, 0xa0, 0xb6, 0xc1,
	0xc6, 0xa5, 0x9d, 0xc2, 0x26, 0xc2, 0x86, 0x24,
	0xe1, 0x81, 0x75, 0xe8, 0x51, 0xc9, 0x6b, 0x97,
	0x3d, 0x81, 0xb0, 0x1c, 0xc3, 0x1f, 0x04, 0x78,
	0x34, 0xbc, 0x06, 0xd6, 0xd6, 0xed, 0xf6, 0x20,
	0xd1, 0x84, 0x24, 0x1a, 0x6a, 0xed, 0x8b, 0x63,
	0xa6,                   // 65-byte signature
	0xac,                   // OP_CHECKSIG
	0x00, 0x00, 0x00, 0x00, // Lock time
}

// multiWitnessTxEncoded is a witness encoded transaction with one input
// carrying a two item witness stack, from block 23157 in a past version of
// segnet.
var multiWitnessTxEncoded = []byte{
	0x1, 0x0, 0x0, 0x0, // Version
	TxFlagMarker, // Marker byte indicating 0 inputs, or a segwit encoded tx
	WitnessFlag,  // Flag byte
	0x1,          // Varint for number of inputs
	0xa5, 0x33, 0x52, 0xd5, 0x13, 0x57, 0x66, 0xf0,
	0x30, 0x76, 0x59, 0x74, 0x18, 0x26, 0x3d, 0xa2,
	0xd9, 0xc9, 0x58, 0x31, 0x59, 0x68, 0xfe, 0xa8,
	0x23, 0x52, 0x94, 0x67, 0x48, 0x1f, 0xf9, 0xcd, // Previous output hash
	0x13, 0x0, 0x0, 0x0, // Little endian previous output index
	0x0,                    // No sig script (this is a witness input)
	0xff, 0xff, 0xff, 0xff, // Sequence
	0x1,                                    // Varint for number of outputs
	0xb, 0x7, 0x6, 0x0, 0x0, 0x0, 0x0, 0x0, // Output amount
	0x16, // Varint for length of pk script
	0x0,  // Version 0 witness program
	0x14, // OP_DATA_20
	0x9d, 0xda, 0xc6, 0xf3, 0x9d, 0x51, 0xe0, 0x39,
	0x8e, 0x53, 0x2a, 0x22, 0xc4, 0x1b, 0xa1, 0x89,
	0x40, 0x6a, 0x85, 0x23, // 20-byte pub key hash
	0x2,  // Two items on the witness stack
	0x46, // 70 byte stack item
	0x30, 0x43, 0x2, 0x1f, 0x4d, 0x23, 0x81, 0xdc,
	0x97, 0xf1, 0x82, 0xab, 0xd8, 0x18, 0x5f, 0x51,
	0x75, 0x30, 0x18, 0x52, 0x32, 0x12, 0xf5, 0xdd,
	0xc0, 0x7c, 0xc4, 0xe6, 0x3a, 0x8d, 0xc0, 0x36,
	0x58, 0xda, 0x19, 0x2, 0x20, 0x60, 0x8b, 0x5c,
	0x4d, 0x92, 0xb8, 0x6b, 0x6d, 0xe7, 0xd7, 0x8e,
	0xf2, 0x3a, 0x2f, 0xa7, 0x35, 0xbc, 0xb5, 0x9b,
	0x91, 0x4a, 0x48, 0xb0, 0xe1, 0x87, 0xc5, 0xe7,
	0x56, 0x9a, 0x18, 0x19, 0x70, 0x1,
	0x21, // 33 byte stack item
	0x3, 0x7, 0xea, 0xd0, 0x84, 0x80, 0x7e, 0xb7,
	0x63, 0x46, 0xdf, 0x69, 0x77, 0x0, 0xc, 0x89,
	0x39, 0x2f, 0x45, 0xc7, 0x64, 0x25, 0xb2, 0x61,
	0x81, 0xf5, 0x21, 0xd7, 0xf3, 0x70, 0x6, 0x6a,
	0x8f,
	0x0, 0x0, 0x0, 0x0, // Lock time
}

// Offsets into multiWitnessTxEncoded.
const (
	multiWitnessFlagOffset    = 5
	multiWitnessStackOffset   = 80
	multiWitnessLockTimeStart = 186
)

// deserializeMsgTx decodes buf with the allocating btcd decoder.  Bytes left
// over after the transaction are reported as an error.
func deserializeMsgTx(buf []byte) (*btcwire.MsgTx, error) {
	var msgTx btcwire.MsgTx
	r := bytes.NewReader(buf)
	if err := msgTx.Deserialize(r); err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%d bytes left after transaction", r.Len())
	}
	return &msgTx, nil
}

// concat joins byte slices into a newly allocated one.
func concat(parts ...[]byte) []byte {
	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}

// recordingVisitor records every callback it receives as a short string.
type recordingVisitor struct {
	EmptyVisitor
	events       []string
	witnessBytes int
}

func (v *recordingVisitor) VisitBlockBegin(n int) {
	v.events = append(v.events, fmt.Sprintf("block %d", n))
}

func (v *recordingVisitor) VisitBlockHeader(h BlockHeader) {
	v.events = append(v.events, fmt.Sprintf("header %v", h.BlockHash()))
}

func (v *recordingVisitor) VisitTxIns(n int) {
	v.events = append(v.events, fmt.Sprintf("txins %d", n))
}

func (v *recordingVisitor) VisitTxIn(vin int, _ TxIn) {
	v.events = append(v.events, fmt.Sprintf("txin %d", vin))
}

func (v *recordingVisitor) VisitTxOuts(n int) {
	v.events = append(v.events, fmt.Sprintf("txouts %d", n))
}

func (v *recordingVisitor) VisitTxOut(vout int, _ TxOut) {
	v.events = append(v.events, fmt.Sprintf("txout %d", vout))
}

func (v *recordingVisitor) VisitWitnesses(n int) {
	v.events = append(v.events, fmt.Sprintf("witnesses %d", n))
}

func (v *recordingVisitor) VisitWitness(vin int, w Witness) {
	v.witnessBytes += len(w.Bytes())
	v.events = append(v.events, fmt.Sprintf("witness %d", vin))
}

func (v *recordingVisitor) VisitTransaction(tx Transaction) {
	v.events = append(v.events, fmt.Sprintf("tx %v", tx.TxHash()))
}
