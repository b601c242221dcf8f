package rlp

import (
	"strings"

	"xdisc/bytesval"
)

// Item is a decoded RLP value: either a byte string or a list of items.
type Item struct {
	list  bool
	str   bytesval.Bytes
	items []Item
}

func NewString(b []byte) Item {
	return Item{str: bytesval.Wrap(b)}
}

func NewList(items ...Item) Item {
	return Item{list: true, items: items}
}

func (i Item) IsList() bool {
	return i.list
}

// Bytes returns the payload of a byte string item, or an empty value for
// lists.
func (i Item) Bytes() bytesval.Bytes {
	return i.str
}

func (i Item) Items() []Item {
	return i.items
}

func (i Item) Equal(other Item) bool {
	if i.list != other.list {
		return false
	}
	if !i.list {
		return i.str.Equal(other.str)
	}
	if len(i.items) != len(other.items) {
		return false
	}
	for j := range i.items {
		if !i.items[j].Equal(other.items[j]) {
			return false
		}
	}
	return true
}

func (i Item) payloadSize() int {
	var size int
	for _, item := range i.items {
		size += item.EncodedSize()
	}
	return size
}

func (i Item) EncodedSize() int {
	if !i.list {
		return ElementSize(i.str)
	}
	return ListSize(i.payloadSize())
}

func (i Item) String() string {
	if !i.list {
		return i.str.String()
	}
	parts := make([]string, len(i.items))
	for j, item := range i.items {
		parts[j] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// EncodeTo writes the encoding of item into dest at destOffset.
func EncodeTo(item Item, dest bytesval.Mutable, destOffset int) (int, error) {
	if !item.list {
		return WriteElement(item.str, dest, destOffset)
	}
	if _, err := dest.Window(destOffset, item.EncodedSize()); err != nil {
		return destOffset, err
	}
	off, err := WriteListHeader(item.payloadSize(), dest, destOffset)
	if err != nil {
		return destOffset, err
	}
	for _, child := range item.items {
		if off, err = EncodeTo(child, dest, off); err != nil {
			return destOffset, err
		}
	}
	return off, nil
}

func Encode(item Item) []byte {
	buf := make([]byte, item.EncodedSize())
	if _, err := EncodeTo(item, bytesval.WrapMutable(buf), 0); err != nil {
		// the buffer is sized exactly
		panic(err)
	}
	return buf
}

// Decode decodes exactly one item from b. Trailing bytes are an error.
func Decode(b []byte, opts ...Option) (Item, error) {
	in := NewInput(bytesval.Wrap(b), opts...)
	item, err := in.ReadItem()
	if err != nil {
		return Item{}, err
	}
	if !in.IsDone() {
		return Item{}, ErrTrailingData
	}
	return item, nil
}
