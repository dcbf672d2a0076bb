package libkes

import (
	"fmt"
	"io"
)

// Library version, queried by callers that need to pin numerical
// behavior to a release.
const (
	// VersionMajor is the major version number.
	VersionMajor = 1

	// VersionMinor is the minor version number.
	VersionMinor = 0
)

// MajorVersion returns the major version number of the library.
func MajorVersion() int { return VersionMajor }

// MinorVersion returns the minor version number of the library.
func MinorVersion() int { return VersionMinor }

// ShowVersion writes a short version banner to w.
func ShowVersion(w io.Writer) {
	fmt.Fprintf(w, "Kepler Equation Solver Library v%d.%02d\n", VersionMajor, VersionMinor)
}
