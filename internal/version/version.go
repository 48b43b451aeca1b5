// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version holds the version information reported by the utilities
// in this repository.
package version

import (
	"fmt"
	"strings"
)

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease can be overridden during the build process with:
	// '-ldflags "-X github.com/btcsuite/bslices/internal/version.PreRelease=foo"'
	// Characters outside [0-9A-Za-z-] are dropped.
	PreRelease = "beta"

	// BuildMetadata can be overridden during the build process with:
	// '-ldflags "-X github.com/btcsuite/bslices/internal/version.BuildMetadata=foo"'
	// Characters outside [0-9A-Za-z-.] are dropped.
	BuildMetadata = ""
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec.
func String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", Major, Minor, Patch)
	if pre := normalize(PreRelease, false); pre != "" {
		b.WriteString("-")
		b.WriteString(pre)
	}
	if build := normalize(BuildMetadata, true); build != "" {
		b.WriteString("+")
		b.WriteString(build)
	}
	return b.String()
}

// normalize strips every character that is not allowed in a pre-release or,
// when build is set, a build metadata identifier.
func normalize(s string, build bool) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z', r == '-':
			return r
		case build && r == '.':
			return r
		}
		return -1
	}, s)
}
