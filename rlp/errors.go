package rlp

import "github.com/pkg/errors"

// ErrDecode is matched by every decoding error returned from this package.
var ErrDecode = errors.New("rlp: decode error")

type decodeError struct {
	msg string
}

func (e *decodeError) Error() string {
	return e.msg
}

func (e *decodeError) Is(target error) bool {
	return target == ErrDecode
}

var (
	ErrBufferUnderflow error = &decodeError{"rlp: buffer underflow"}
	ErrMalformedList   error = &decodeError{"rlp: list size does not match its items"}
	ErrNonCanonical    error = &decodeError{"rlp: non-canonical encoding"}
	ErrExpectedString  error = &decodeError{"rlp: expected byte string, found list"}
	ErrExpectedList    error = &decodeError{"rlp: expected list, found byte string"}
	ErrValueTooLarge   error = &decodeError{"rlp: value too large"}
	ErrTrailingData    error = &decodeError{"rlp: trailing data after value"}
)
