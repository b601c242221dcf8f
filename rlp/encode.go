package rlp

import (
	"xdisc/bytesval"
)

const (
	shortStringOffset = 0x80
	longStringOffset  = 0xb7
	shortListOffset   = 0xc0
	longListOffset    = 0xf7
	maxShortLen       = 55
)

// MinimalLengthBytes returns the smallest k >= 1 such that n < 256^k.
func MinimalLengthBytes(n int) int {
	k := 1
	for n >= 256 {
		n >>= 8
		k++
	}
	return k
}

func isSingleByte(value bytesval.Bytes) bool {
	if value.Size() != 1 {
		return false
	}
	b, _ := value.Get(0)
	return b < shortStringOffset
}

// ElementSize returns the encoded size of a byte string.
func ElementSize(value bytesval.Bytes) int {
	size := value.Size()
	if isSingleByte(value) {
		return 1
	}
	if size <= maxShortLen {
		return 1 + size
	}
	return 1 + MinimalLengthBytes(size) + size
}

// ListSize returns the encoded size of a list given the encoded size of its
// payload.
func ListSize(payloadSize int) int {
	size := 1 + payloadSize
	if payloadSize > maxShortLen {
		size += MinimalLengthBytes(payloadSize)
	}
	return size
}

// WriteElement writes the encoding of value into dest at destOffset and
// returns the offset following it. Nothing is written if dest is too small.
func WriteElement(value bytesval.Bytes, dest bytesval.Mutable, destOffset int) (int, error) {
	w, err := dest.Window(destOffset, ElementSize(value))
	if err != nil {
		return destOffset, err
	}

	size := value.Size()
	if isSingleByte(value) {
		w[0], _ = value.Get(0)
		return destOffset + 1, nil
	}

	var headerLen int
	if size <= maxShortLen {
		w[0] = byte(shortStringOffset + size)
		headerLen = 1
	} else {
		headerLen = putLongHeader(w, longStringOffset, size)
	}
	if err := value.CopyTo(dest, destOffset+headerLen); err != nil {
		return destOffset, err
	}
	return destOffset + headerLen + size, nil
}

// WriteListHeader writes the header of a list whose items encode to
// payloadSize bytes. The items themselves are written by the caller.
func WriteListHeader(payloadSize int, dest bytesval.Mutable, destOffset int) (int, error) {
	headerLen := ListSize(payloadSize) - payloadSize
	w, err := dest.Window(destOffset, headerLen)
	if err != nil {
		return destOffset, err
	}
	if payloadSize <= maxShortLen {
		w[0] = byte(shortListOffset + payloadSize)
	} else {
		putLongHeader(w, longListOffset, payloadSize)
	}
	return destOffset + headerLen, nil
}

func putLongHeader(w []byte, base int, size int) int {
	k := MinimalLengthBytes(size)
	w[0] = byte(base + k)
	for i := k; i > 0; i-- {
		w[i] = byte(size)
		size >>= 8
	}
	return 1 + k
}

// ScalarBytes returns the minimal big-endian representation of v. Zero is
// the empty string.
func ScalarBytes(v uint64) bytesval.Bytes {
	var buf [8]byte
	n := 0
	for x := v; x > 0; x >>= 8 {
		n++
	}
	for i := 0; i < n; i++ {
		buf[8-1-i] = byte(v >> (8 * uint(i)))
	}
	return bytesval.Wrap(buf[8-n:])
}

func ScalarSize(v uint64) int {
	return ElementSize(ScalarBytes(v))
}

func WriteScalar(v uint64, dest bytesval.Mutable, destOffset int) (int, error) {
	return WriteElement(ScalarBytes(v), dest, destOffset)
}
