package mesh

import "github.com/pkg/errors"

// ErrMalformed is the cause of every error Build returns.
var ErrMalformed = errors.New("malformed triangulation")

// Validation happens deep inside the registration loops. Rather than thread
// errors through all of them, we panic with a buildError and Build recovers it.
type buildError struct {
	error
}

// Panic with a buildError wrapping ErrMalformed.
func fatalf(format string, args ...interface{}) {
	panic(buildError{errors.Wrapf(ErrMalformed, format, args...)})
}

func handleBuildPanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(buildError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
