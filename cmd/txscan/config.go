// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/btcsuite/bslices/wire"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultDupCache    = 1000
	defaultNet         = "mainnet"
	defaultDebugLevel  = "info"
	defaultLogFilename = "txscan.log"
)

// config defines the configuration options for txscan.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Hex         bool   `long:"hex" description:"Input files contain hex encoded data instead of raw bytes"`
	Block       bool   `long:"block" description:"Input files contain serialized blocks instead of a stream of transactions"`
	BlkFile     bool   `long:"blkfile" description:"Input files are block storage files (blk*.dat or bootstrap.dat)"`
	Net         string `long:"net" description:"Network of block storage files {mainnet, regtest, testnet3, testnet4, signet, simnet}"`
	DupCache    uint   `long:"dupcache" description:"Number of recent transaction ids remembered to detect duplicates -- Use 0 to disable"`
	Dump        bool   `long:"dump" description:"Dump every decoded transaction"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	LogDir      string `long:"logdir" description:"Directory to write a log file to -- Logs only go to stderr when empty"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	net wire.BitcoinNet
}

// knownNets maps the accepted --net values to their network magic.
var knownNets = map[string]wire.BitcoinNet{
	"mainnet":  wire.MainNet,
	"regtest":  wire.TestNet,
	"testnet3": wire.TestNet3,
	"testnet4": wire.TestNet4,
	"signet":   wire.SigNet,
	"simnet":   wire.SimNet,
}

// loadConfig initializes and parses the config using the passed command line
// arguments.  The remaining arguments are the input files.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		DupCache:   defaultDupCache,
		Net:        defaultNet,
		DebugLevel: defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] <file>..."
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		return &cfg, nil, nil
	}

	// Validate the debug level.
	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		str := "%s: The specified debug level [%v] is invalid"
		err := fmt.Errorf(str, "loadConfig", cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Blocks and block storage files can't be selected simultaneously.
	if cfg.Block && cfg.BlkFile {
		str := "%s: The block and blkfile options can't be used together"
		err := fmt.Errorf(str, "loadConfig")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	net, ok := knownNets[cfg.Net]
	if !ok {
		str := "%s: The specified network [%v] is invalid"
		err := fmt.Errorf(str, "loadConfig", cfg.Net)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}
	cfg.net = net

	if len(remainingArgs) == 0 {
		err := fmt.Errorf("%s: no input files specified", "loadConfig")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
