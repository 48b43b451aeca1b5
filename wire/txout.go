// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// TxOut is a view over a serialized transaction output.
type TxOut struct {
	slice    []byte
	pkScript Script
}

// ParseTxOut decodes a transaction output from the start of b.
func ParseTxOut(b []byte) (ParseResult[TxOut], error) {
	value, err := parseInt64(b)
	if err != nil {
		return ParseResult[TxOut]{}, err
	}
	script, err := ParseScript(value.Remaining())
	if err != nil {
		return ParseResult[TxOut]{}, err
	}
	consumed := value.Consumed() + script.Consumed()
	txOut := TxOut{
		slice:    b[:consumed],
		pkScript: script.Parsed(),
	}
	return newParseResult(b, consumed, txOut), nil
}

// Value returns the amount of the output in satoshi.
func (t TxOut) Value() int64 {
	return int64(littleEndian.Uint64(t.slice))
}

// PkScript returns the script that locks the output.
func (t TxOut) PkScript() Script {
	return t.pkScript
}

// Bytes returns the serialized output.
func (t TxOut) Bytes() []byte {
	return t.slice
}

// TxOuts is a view over a count prefixed list of transaction outputs.
type TxOuts struct {
	slice []byte
	n     int
}

// DecodeTxOuts decodes a list of transaction outputs from the start of b,
// passing every output to v as it is decoded.
func DecodeTxOuts(b []byte, v Visitor) (ParseResult[TxOuts], error) {
	count, err := readCount(b)
	if err != nil {
		return ParseResult[TxOuts]{}, err
	}
	n := count.Parsed()
	v.VisitTxOuts(n)

	rest := count.Remaining()
	for i := 0; i < n; i++ {
		txOut, err := ParseTxOut(rest)
		if err != nil {
			return ParseResult[TxOuts]{}, err
		}
		v.VisitTxOut(i, txOut.Parsed())
		rest = txOut.Remaining()
	}

	consumed := len(b) - len(rest)
	return newParseResult(b, consumed, TxOuts{slice: b[:consumed], n: n}), nil
}

// Len returns the number of outputs.
func (t TxOuts) Len() int {
	return t.n
}

// IsEmpty returns whether the list has no outputs.
func (t TxOuts) IsEmpty() bool {
	return t.n == 0
}

// Bytes returns the serialized list including its count prefix.
func (t TxOuts) Bytes() []byte {
	return t.slice
}
