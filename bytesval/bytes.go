// Package bytesval provides bounds-checked byte buffers used by the RLP
// codec and the 256-bit value types. Bytes is a read-only view over a
// byte sequence; Mutable is a caller-owned buffer that encoders write into.
package bytesval

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

var ErrIndexOutOfRange = errors.New("index out of range")

var Empty = Bytes{}

// Bytes is an immutable view. Wrap does not copy, so the caller must not
// mutate the wrapped slice afterwards.
type Bytes struct {
	b []byte
}

func Wrap(b []byte) Bytes {
	return Bytes{b: b}
}

// FromHex decodes a hex string with an optional 0x prefix.
func FromHex(s string) (Bytes, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return Empty, errors.Wrap(err, "invalid hex string")
	}
	return Wrap(b), nil
}

func (b Bytes) Size() int {
	return len(b.b)
}

func (b Bytes) Get(i int) (byte, error) {
	if i < 0 || i >= len(b.b) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "get %d of %d", i, len(b.b))
	}
	return b.b[i], nil
}

// Slice returns a view over n bytes starting at off.
func (b Bytes) Slice(off int, n int) (Bytes, error) {
	if off < 0 || n < 0 || off+n > len(b.b) {
		return Empty, errors.Wrapf(ErrIndexOutOfRange, "slice [%d:%d] of %d", off, off+n, len(b.b))
	}
	return Bytes{b: b.b[off : off+n : off+n]}, nil
}

func (b Bytes) CopyTo(dest Mutable, destOffset int) error {
	w, err := dest.Window(destOffset, len(b.b))
	if err != nil {
		return err
	}
	copy(w, b.b)
	return nil
}

// ToSlice returns a copy of the underlying bytes.
func (b Bytes) ToSlice() []byte {
	out := make([]byte, len(b.b))
	copy(out, b.b)
	return out
}

func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b.b, other.b)
}

func (b Bytes) Hex() string {
	return hex.EncodeToString(b.b)
}

func (b Bytes) String() string {
	return "0x" + b.Hex()
}
