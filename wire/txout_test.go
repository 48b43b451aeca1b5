// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"testing"
)

// outputCollector is a visitor that keeps every decoded output.
type outputCollector struct {
	EmptyVisitor
	outs []TxOut
}

func (c *outputCollector) VisitTxOut(vout int, txOut TxOut) {
	if vout != len(c.outs) {
		panic("outputs visited out of order")
	}
	c.outs = append(c.outs, txOut)
}

// TestTxOuts tests decoding the outputs of multiTxEncoded.
func TestTxOuts(t *testing.T) {
	// Outputs start after version, one input and the input count.
	buf := multiTxEncoded[53:]

	v := &outputCollector{}
	res, err := DecodeTxOuts(buf, v)
	if err != nil {
		t.Fatalf("DecodeTxOuts: %v", err)
	}
	if res.Parsed().Len() != 2 {
		t.Fatalf("wrong output count %d", res.Parsed().Len())
	}
	if res.Consumed() != 153 {
		t.Errorf("wrong consumed - got %d, want 153", res.Consumed())
	}
	if len(res.Remaining()) != 4 {
		t.Errorf("wrong remaining - got %d, want 4", len(res.Remaining()))
	}

	tests := []struct {
		value     int64
		scriptLen int
	}{
		{5000000000, 67},
		{100000000, 67},
	}
	for i, test := range tests {
		txOut := v.outs[i]
		if txOut.Value() != test.value {
			t.Errorf("output #%d value got: %d want: %d", i,
				txOut.Value(), test.value)
		}
		if txOut.PkScript().Len() != test.scriptLen {
			t.Errorf("output #%d script length got: %d want: %d", i,
				txOut.PkScript().Len(), test.scriptLen)
		}
		script := txOut.PkScript().Bytes()
		if script[0] != 0x41 || script[len(script)-1] != 0xac {
			t.Errorf("output #%d unexpected script %x", i, script)
		}
		if len(txOut.Bytes()) != 8+1+test.scriptLen {
			t.Errorf("output #%d wrong serialized length %d", i,
				len(txOut.Bytes()))
		}
	}
}

// TestTxOutErrors ensures truncated outputs are rejected.
func TestTxOutErrors(t *testing.T) {
	out := multiTxEncoded[54:130]
	for _, max := range []int{0, 7, 8, 9, 75} {
		_, err := ParseTxOut(out[:max])
		if !IsErrorCode(err, ErrShortBuffer) {
			t.Errorf("ParseTxOut(%d) wrong error got: %v, want: %v",
				max, err, ErrShortBuffer)
		}
	}
	if _, err := ParseTxOut(out); err != nil {
		t.Errorf("ParseTxOut: unexpected error %v", err)
	}
}
