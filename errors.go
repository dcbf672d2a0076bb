// Package libkes: sentinel error set and stable numeric error codes.
//
// This file defines ONLY the module-level sentinel errors and the Code
// enumeration shared across all subpackages. Subpackages return these
// sentinels and tests match them via errors.Is. No function panics on
// user-triggered error conditions.
//
// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "libkes: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap at the outer
// boundary — callers will still use errors.Is to match.

package libkes

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrBadEccentricity is returned when an eccentricity is non-finite,
	// negative, or falls into a regime the solver does not implement.
	ErrBadEccentricity = errors.New("libkes: bad value for eccentricity")

	// ErrBadValue is returned when a real parameter is NaN or Inf, or a
	// scalar setter received an out-of-range value.
	ErrBadValue = errors.New("libkes: bad value for parameter (Inf or NaN)")

	// ErrBadStarter is returned when a starter identifier is out of range.
	// The dispatcher recovers locally: it falls back to x0 = M + e and
	// continues, still surfacing this sentinel to the caller.
	ErrBadStarter = errors.New("libkes: bad starter method")

	// ErrBadSolver is returned when a kernel identifier is out of range.
	ErrBadSolver = errors.New("libkes: bad solver method")

	// ErrBadTolerance is returned by tolerance setters for values outside
	// the open interval (default tolerance, 1).
	ErrBadTolerance = errors.New("libkes: bad value for error tolerance")
)

// Code is the stable numeric error taxonomy. The values are part of the
// library ABI: they never change between releases, and CodeTotal
// terminates iteration over the enumeration.
type Code int

const (
	// NoError signals a successful return.
	NoError Code = iota

	// BadEccentricity maps to ErrBadEccentricity.
	BadEccentricity

	// BadValue maps to ErrBadValue.
	BadValue

	// BadStarter maps to ErrBadStarter.
	BadStarter

	// BadSolver maps to ErrBadSolver.
	BadSolver

	// BadTolerance maps to ErrBadTolerance.
	BadTolerance

	// CodeTotal terminates the enumeration; it is not a valid code.
	CodeTotal
)

// codeText maps codes to the human-readable description emitted by
// ShowError. Read-only after init.
var codeText = [CodeTotal]string{
	NoError:         "no error occurred",
	BadEccentricity: "bad value for eccentricity in kepeq.Classify",
	BadValue:        "bad value for parameter (Inf or NaN)",
	BadStarter:      "bad starter method in starter.Eval",
	BadSolver:       "bad solver method in solver.Solve",
	BadTolerance:    "bad value for error tolerance",
}

// codeErr maps codes to their sentinel errors. NoError maps to nil.
var codeErr = [CodeTotal]error{
	NoError:         nil,
	BadEccentricity: ErrBadEccentricity,
	BadValue:        ErrBadValue,
	BadStarter:      ErrBadStarter,
	BadSolver:       ErrBadSolver,
	BadTolerance:    ErrBadTolerance,
}

// Err returns the sentinel error for c, or nil for NoError and for any
// value outside the enumeration.
func (c Code) Err() error {
	if c <= NoError || c >= CodeTotal {
		return nil
	}

	return codeErr[c]
}

// String implements fmt.Stringer.
func (c Code) String() string {
	if c < NoError || c >= CodeTotal {
		return fmt.Sprintf("Code(%d)", int(c))
	}

	return codeText[c]
}

// CodeOf maps an error returned by any libkes function back to its
// stable numeric code. A nil error maps to NoError; an unrelated error
// maps to CodeTotal.
func CodeOf(err error) Code {
	if err == nil {
		return NoError
	}
	for c := BadEccentricity; c < CodeTotal; c++ {
		if errors.Is(err, codeErr[c]) {
			return c
		}
	}

	return CodeTotal
}

// ShowError writes the description of code c to w, one line per call.
// Unknown codes are reported verbatim rather than dropped.
func ShowError(w io.Writer, c Code) {
	fmt.Fprintf(w, "libkes: error %#x = %s\n", int(c), c.String())
}
