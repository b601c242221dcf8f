package bytesval

import "github.com/pkg/errors"

// Mutable is a fixed-size writable buffer owned by the caller.
type Mutable struct {
	b []byte
}

func NewMutable(size int) Mutable {
	return Mutable{b: make([]byte, size)}
}

// WrapMutable writes go directly to b.
func WrapMutable(b []byte) Mutable {
	return Mutable{b: b}
}

func (m Mutable) Size() int {
	return len(m.b)
}

func (m Mutable) Get(i int) (byte, error) {
	if i < 0 || i >= len(m.b) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "get %d of %d", i, len(m.b))
	}
	return m.b[i], nil
}

func (m Mutable) Set(i int, v byte) error {
	if i < 0 || i >= len(m.b) {
		return errors.Wrapf(ErrIndexOutOfRange, "set %d of %d", i, len(m.b))
	}
	m.b[i] = v
	return nil
}

// Window returns the writable region [off, off+n) after checking that it
// lies inside the buffer.
func (m Mutable) Window(off int, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(m.b) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "window [%d:%d] of %d", off, off+n, len(m.b))
	}
	return m.b[off : off+n : off+n], nil
}

// Freeze returns a read-only view sharing the same memory. The buffer must
// not be written to once frozen.
func (m Mutable) Freeze() Bytes {
	return Bytes{b: m.b}
}
