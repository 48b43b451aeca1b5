// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !unix

package mmap

import (
	"io"
	"os"
)

// mapFile reads the whole file since there is no portable mapping here.
func mapFile(f *os.File, size int) (*File, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return &File{data: data}, nil
}

func unmap([]byte) error {
	return nil
}
