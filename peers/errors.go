package peers

import "github.com/pkg/errors"

// ErrValidation is matched by every validation error returned from this
// package.
var ErrValidation = errors.New("peers: validation error")

type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}

func (e *validationError) Is(target error) bool {
	return target == ErrValidation
}

var (
	ErrInvalidURI    error = &validationError{"peers: invalid enode URI"}
	ErrInvalidNodeID error = &validationError{"peers: invalid node ID"}
	ErrInvalidHost   error = &validationError{"peers: invalid host"}
	ErrInvalidPort   error = &validationError{"peers: invalid port"}
)
