package uint256

import (
	"xdisc/bytesval"
	"xdisc/rlp"
)

// scalar returns the value without leading zero bytes.
func (v Value[U]) scalar() bytesval.Bytes {
	i := 0
	for i < Size && v.b[i] == 0 {
		i++
	}
	b := v.b
	return bytesval.Wrap(b[i:])
}

func (v Value[U]) EncodedSize() int {
	return rlp.ElementSize(v.scalar())
}

// WriteTo writes v as an RLP scalar into dest at destOffset.
func (v Value[U]) WriteTo(dest bytesval.Mutable, destOffset int) (int, error) {
	return rlp.WriteElement(v.scalar(), dest, destOffset)
}

func ReadValue[U Unit](in *rlp.Input) (Value[U], error) {
	b, err := in.ReadScalarBytes(Size)
	if err != nil {
		return Value[U]{}, err
	}
	return FromBytes[U](b)
}
