// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/bslices/internal/mmap"
	"github.com/btcsuite/bslices/internal/version"
	"github.com/btcsuite/bslices/wire"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/lru"
)

const appName = "txscan"

// scanner decodes input files and reports every transaction it visits.
type scanner struct {
	wire.EmptyVisitor

	cfg  *config
	out  io.Writer
	seen *lru.Cache

	blocks     int
	txns       int
	segwitTxns int
	dupTxns    int

	// writeErr is the first error hit writing to out.  Visitor callbacks
	// can't return errors so it is checked after each decode.
	writeErr error
}

// newScanner returns a scanner writing its report to out.
func newScanner(cfg *config, out io.Writer) *scanner {
	s := &scanner{cfg: cfg, out: out}
	if cfg.DupCache > 0 {
		cache := lru.NewCache(cfg.DupCache)
		s.seen = &cache
	}
	return s
}

// VisitBlockHeader logs each block as it is entered.
func (s *scanner) VisitBlockHeader(h wire.BlockHeader) {
	s.blocks++
	log.Debugf("Block %v (timestamp %v)", h.BlockHash(), h.Timestamp())
}

// VisitTransaction writes a report line for the transaction.
func (s *scanner) VisitTransaction(tx wire.Transaction) {
	s.txns++
	if tx.HasWitness() {
		s.segwitTxns++
	}

	txid := tx.TxHash()
	if s.seen != nil {
		if s.seen.Contains(txid) {
			s.dupTxns++
			log.Warnf("Duplicate transaction %v", txid)
		} else {
			s.seen.Add(txid)
		}
	}

	s.printf("%v %v segwit=%v size=%d\n", txid, tx.WTxHash(),
		tx.HasWitness(), tx.SerializeSize())
	if s.cfg.Dump {
		s.dump(txid, tx)
	}
}

// dump writes the decoded view of tx.
func (s *scanner) dump(txid chainhash.Hash, tx wire.Transaction) {
	pre1, pre2, pre3 := tx.TxidPreimage()
	s.printf("%s", spew.Sdump(struct {
		Txid        chainhash.Hash
		Version     int32
		LockTime    uint32
		Size        int
		StrippedLen int
		Preimage    [][]byte
	}{
		Txid:        txid,
		Version:     tx.Version(),
		LockTime:    tx.LockTime(),
		Size:        tx.SerializeSize(),
		StrippedLen: tx.SerializeSizeStripped(),
		Preimage:    [][]byte{pre1, pre2, pre3},
	}))
}

func (s *scanner) printf(format string, a ...interface{}) {
	if s.writeErr != nil {
		return
	}
	_, s.writeErr = fmt.Fprintf(s.out, format, a...)
}

// scan decodes b until it is exhausted.  Decoding stops at the first error
// and the offset of the failing entity is reported.
func (s *scanner) scan(b []byte) error {
	total := len(b)
	for len(b) > 0 {
		offset := total - len(b)
		var err error
		switch {
		case s.cfg.BlkFile:
			// Preallocated block files are padded with zeros.
			if isZeroPadding(b) {
				log.Debugf("Skipping %d bytes of padding", len(b))
				return nil
			}
			var res wire.ParseResult[wire.Block]
			res, err = wire.DecodeBlockRecord(b, s.cfg.net, s)
			b = res.Remaining()
		case s.cfg.Block:
			var res wire.ParseResult[wire.Block]
			res, err = wire.DecodeBlock(b, s)
			b = res.Remaining()
		default:
			var res wire.ParseResult[wire.Transaction]
			res, err = wire.DecodeTransaction(b, s)
			b = res.Remaining()
		}
		if err != nil {
			return fmt.Errorf("offset %d: %w", offset, err)
		}
		if s.writeErr != nil {
			return s.writeErr
		}
	}
	return nil
}

// isZeroPadding reports whether b starts with a zero network magic, which
// marks the unused tail of a preallocated block file.  A tail shorter than a
// magic is padding when it is all zeros.
func isZeroPadding(b []byte) bool {
	if len(b) > 4 {
		b = b[:4]
	}
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// loadFile returns the contents of the named input file along with a function
// that releases them.
func (s *scanner) loadFile(name string) ([]byte, func(), error) {
	if s.cfg.Hex {
		text, err := os.ReadFile(name)
		if err != nil {
			return nil, nil, err
		}
		b, err := hex.DecodeString(strings.Join(strings.Fields(string(text)), ""))
		if err != nil {
			return nil, nil, err
		}
		return b, func() {}, nil
	}

	m, err := mmap.Open(name)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if err := m.Close(); err != nil {
			log.Warnf("Unable to unmap %s: %v", name, err)
		}
	}
	return m.Bytes(), release, nil
}

// scanFile decodes every entity in the named file.
func (s *scanner) scanFile(name string) error {
	b, release, err := s.loadFile(name)
	if err != nil {
		return err
	}
	defer release()

	log.Debugf("Scanning %s (%d bytes)", name, len(b))
	if err := s.scan(b); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// writeSummary writes the totals line.
func (s *scanner) writeSummary() error {
	s.printf("%d transactions (%d segwit, %d duplicate) in %d blocks\n",
		s.txns, s.segwitTxns, s.dupTxns, s.blocks)
	return s.writeErr
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain(args []string, out io.Writer) error {
	cfg, files, err := loadConfig(args)
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		_, err := fmt.Fprintln(out, appName, "version", version.String())
		return err
	}

	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create file rotator: %v\n",
				err)
			return err
		}
		defer func() {
			logRotator.Close()
			logRotator = nil
		}()
	}
	setLogLevels(cfg.DebugLevel)

	s := newScanner(cfg, out)
	for _, name := range files {
		if err := s.scanFile(name); err != nil {
			log.Errorf("Unable to decode %v", err)
			return err
		}
	}
	return s.writeSummary()
}

func main() {
	if err := realMain(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}
