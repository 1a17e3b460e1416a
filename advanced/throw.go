package advanced

import "github.com/pkg/errors"

// Threading errors up through the scanning, stitching and splitting phases
// would add a ton of noise to code that is already dense pointer surgery.
// Instead, the core panics with a typed error and the public API recovers
// it. Anything else that escapes is a genuine bug and is re-panicked.

// Kind classifies a decomposition failure.
type Kind int

const (
	// InvalidInput: the raster is not a usable 2D grid.
	InvalidInput Kind = iota
	// MalformedGeometry: the scanned boundary cannot be stitched. Either the
	// input is something the scanner does not support or the scanner itself
	// misbehaved.
	MalformedGeometry
	// InternalInvariant: a structural invariant broke mid-pipeline. Never
	// recoverable.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case MalformedGeometry:
		return "malformed geometry"
	case InternalInvariant:
		return "internal invariant violation"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Panic with a typed decomposition error.
func throwf(kind Kind, format string, args ...interface{}) {
	panic(&Error{Kind: kind, Err: errors.Errorf(format, args...)})
}

// HandleDecomposePanicRecover converts a recovered panic value back into an
// error if it came from throwf, and re-panics otherwise. Call it from a
// deferred recover at the API boundary.
func HandleDecomposePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(*Error); ok {
			return err
		}
		panic(r)
	}
	return nil
}
