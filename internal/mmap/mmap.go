// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mmap provides read-only access to file contents as a byte slice
// without copying them onto the Go heap where the platform allows it.
package mmap

import (
	"fmt"
	"os"
)

// File is a read-only view of a file's contents.  The slice returned by Bytes
// is only valid until Close is called.
type File struct {
	data   []byte
	mapped bool
}

// Open maps the named file into memory.  Empty files produce an empty view
// that does not need unmapping.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size == 0 {
		return &File{data: []byte{}}, nil
	}
	if size != int64(int(size)) {
		return nil, fmt.Errorf("%s: file too large to map (%d bytes)",
			name, size)
	}

	return mapFile(f, int(size))
}

// Bytes returns the file contents.
func (m *File) Bytes() []byte {
	return m.data
}

// Len returns the size of the file contents in bytes.
func (m *File) Len() int {
	return len(m.data)
}

// Close releases the mapping.  It is safe to call Close more than once.
func (m *File) Close() error {
	if m.data == nil {
		return nil
	}
	var err error
	if m.mapped {
		err = unmap(m.data)
	}
	m.data = nil
	m.mapped = false
	return err
}
