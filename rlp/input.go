package rlp

import (
	"xdisc/bytesval"

	"github.com/pkg/errors"
)

type Option func(*Input)

// Lenient disables canonical-form checks. Only use it for input produced by
// a trusted encoder.
func Lenient() Option {
	return func(in *Input) {
		in.strict = false
	}
}

// Input is a decoding cursor over an encoded buffer. It is not safe for
// concurrent use.
type Input struct {
	buf    bytesval.Bytes
	pos    int
	frames []frame
	strict bool
}

type frame struct {
	end     int
	payload int
}

type header struct {
	list       bool
	single     bool
	headerLen  int
	payloadLen int
}

func (h header) size() int {
	return h.headerLen + h.payloadLen
}

func NewInput(buf bytesval.Bytes, opts ...Option) *Input {
	in := &Input{
		buf:    buf,
		strict: true,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

func (in *Input) Position() int {
	return in.pos
}

// IsDone reports whether the whole buffer has been consumed and every
// entered list has been left.
func (in *Input) IsDone() bool {
	return in.pos >= in.buf.Size() && len(in.frames) == 0
}

// IsEndOfList reports whether the cursor sits at the end of the innermost
// entered list.
func (in *Input) IsEndOfList() bool {
	if len(in.frames) == 0 {
		return false
	}
	return in.pos >= in.frames[len(in.frames)-1].end
}

// ListPayloadSize returns the declared payload size of the innermost
// entered list, or -1 outside of any list.
func (in *Input) ListPayloadSize() int {
	if len(in.frames) == 0 {
		return -1
	}
	return in.frames[len(in.frames)-1].payload
}

// EnterList reads a list header and returns the number of items the list
// holds. The caller must consume exactly those items before LeaveList.
func (in *Input) EnterList() (int, error) {
	h, err := in.readHeader(in.pos)
	if err != nil {
		return 0, err
	}
	if !h.list {
		return 0, errors.Wrapf(ErrExpectedList, "at offset %d", in.pos)
	}

	start := in.pos + h.headerLen
	end := start + h.payloadLen
	count := 0
	for at := start; at < end; count++ {
		item, err := in.readHeaderWithin(at, end)
		if err != nil {
			return 0, err
		}
		at += item.size()
	}

	in.frames = append(in.frames, frame{
		end:     end,
		payload: h.payloadLen,
	})
	in.pos = start
	return count, nil
}

// LeaveList asserts that the innermost list has been fully consumed.
func (in *Input) LeaveList() error {
	if len(in.frames) == 0 {
		return errors.Wrap(ErrMalformedList, "not inside a list")
	}
	top := in.frames[len(in.frames)-1]
	if in.pos != top.end {
		return errors.Wrapf(ErrMalformedList, "%d unread bytes in list", top.end-in.pos)
	}
	in.frames = in.frames[:len(in.frames)-1]
	return nil
}

// NextIsList reports whether the next item is a list without consuming it.
func (in *Input) NextIsList() (bool, error) {
	h, err := in.readHeader(in.pos)
	if err != nil {
		return false, err
	}
	return h.list, nil
}

// ReadBytes consumes the next item, which must be a byte string, and
// returns its payload.
func (in *Input) ReadBytes() (bytesval.Bytes, error) {
	h, err := in.readHeader(in.pos)
	if err != nil {
		return bytesval.Empty, err
	}
	if h.list {
		return bytesval.Empty, errors.Wrapf(ErrExpectedString, "at offset %d", in.pos)
	}
	payload, err := in.buf.Slice(in.pos+h.headerLen, h.payloadLen)
	if err != nil {
		return bytesval.Empty, errors.Wrap(ErrBufferUnderflow, err.Error())
	}
	in.pos += h.size()
	return payload, nil
}

// ReadScalarBytes consumes a byte string holding an unsigned integer of at
// most maxBytes bytes. In strict mode a leading zero byte is rejected.
func (in *Input) ReadScalarBytes(maxBytes int) (bytesval.Bytes, error) {
	start := in.pos
	b, err := in.ReadBytes()
	if err != nil {
		return bytesval.Empty, err
	}
	if b.Size() > maxBytes {
		in.pos = start
		return bytesval.Empty, errors.Wrapf(ErrValueTooLarge, "scalar of %d bytes, max %d", b.Size(), maxBytes)
	}
	if first, err := b.Get(0); err == nil && first == 0 && in.strict {
		in.pos = start
		return bytesval.Empty, errors.Wrap(ErrNonCanonical, "scalar has leading zero byte")
	}
	return b, nil
}

// ReadUint64 consumes a scalar of at most eight bytes.
func (in *Input) ReadUint64() (uint64, error) {
	b, err := in.ReadScalarBytes(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < b.Size(); i++ {
		c, _ := b.Get(i)
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// Skip consumes the next item, whatever its kind.
func (in *Input) Skip() error {
	h, err := in.readHeader(in.pos)
	if err != nil {
		return err
	}
	in.pos += h.size()
	return nil
}

// ReadItem consumes the next item as a tree.
func (in *Input) ReadItem() (Item, error) {
	isList, err := in.NextIsList()
	if err != nil {
		return Item{}, err
	}
	if !isList {
		b, err := in.ReadBytes()
		if err != nil {
			return Item{}, err
		}
		return NewString(b.ToSlice()), nil
	}

	n, err := in.EnterList()
	if err != nil {
		return Item{}, err
	}
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		item, err := in.ReadItem()
		if err != nil {
			return Item{}, err
		}
		items = append(items, item)
	}
	if err := in.LeaveList(); err != nil {
		return Item{}, err
	}
	return NewList(items...), nil
}

func (in *Input) limit() int {
	if len(in.frames) == 0 {
		return in.buf.Size()
	}
	return in.frames[len(in.frames)-1].end
}

func (in *Input) readHeader(at int) (header, error) {
	return in.readHeaderWithin(at, in.limit())
}

// readHeaderWithin decodes the header at offset at and checks that the whole
// item fits before limit.
func (in *Input) readHeaderWithin(at int, limit int) (header, error) {
	if at >= limit {
		if len(in.frames) > 0 {
			return header{}, errors.Wrapf(ErrMalformedList, "read past end of list at offset %d", at)
		}
		return header{}, errors.Wrapf(ErrBufferUnderflow, "no item at offset %d", at)
	}

	prefix, err := in.byteAt(at)
	if err != nil {
		return header{}, err
	}

	var h header
	switch {
	case prefix < shortStringOffset:
		h = header{single: true, payloadLen: 1}
	case prefix <= longStringOffset:
		h = header{headerLen: 1, payloadLen: int(prefix - shortStringOffset)}
		if h.payloadLen == 1 && in.strict {
			next, err := in.byteAt(at + 1)
			if err != nil {
				return header{}, err
			}
			if next < shortStringOffset {
				return header{}, errors.Wrapf(ErrNonCanonical, "single byte 0x%02x in short form", next)
			}
		}
	case prefix < shortListOffset:
		k := int(prefix - longStringOffset)
		n, err := in.readLength(at+1, k)
		if err != nil {
			return header{}, err
		}
		h = header{headerLen: 1 + k, payloadLen: n}
	case prefix <= longListOffset:
		h = header{list: true, headerLen: 1, payloadLen: int(prefix - shortListOffset)}
	default:
		k := int(prefix - longListOffset)
		n, err := in.readLength(at+1, k)
		if err != nil {
			return header{}, err
		}
		h = header{list: true, headerLen: 1 + k, payloadLen: n}
	}

	end := at + h.size()
	if end > in.buf.Size() {
		return header{}, errors.Wrapf(ErrBufferUnderflow, "item at offset %d needs %d bytes, %d available", at, h.size(), in.buf.Size()-at)
	}
	if end > limit {
		return header{}, errors.Wrapf(ErrMalformedList, "item at offset %d overruns its list by %d bytes", at, end-limit)
	}
	return h, nil
}

// readLength reads the k-byte big-endian length of a long-form item.
func (in *Input) readLength(at int, k int) (int, error) {
	if k > 8 {
		return 0, errors.Wrapf(ErrValueTooLarge, "length of %d bytes", k)
	}
	var n uint64
	for i := 0; i < k; i++ {
		c, err := in.byteAt(at + i)
		if err != nil {
			return 0, err
		}
		if i == 0 && c == 0 && in.strict {
			return 0, errors.Wrap(ErrNonCanonical, "length has leading zero byte")
		}
		n = n<<8 | uint64(c)
	}
	if n <= maxShortLen && in.strict {
		return 0, errors.Wrapf(ErrNonCanonical, "length %d in long form", n)
	}
	if n > uint64(in.buf.Size()) {
		return 0, errors.Wrapf(ErrBufferUnderflow, "declared length %d exceeds buffer", n)
	}
	return int(n), nil
}

func (in *Input) byteAt(i int) (byte, error) {
	b, err := in.buf.Get(i)
	if err != nil {
		return 0, errors.Wrapf(ErrBufferUnderflow, "need byte at offset %d", i)
	}
	return b, nil
}
