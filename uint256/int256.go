package uint256

import (
	"encoding/hex"
	"math/big"

	"xdisc/bytesval"

	"github.com/ethereum/go-ethereum/common/math"
)

// Int256 is a two's complement signed 256-bit value.
type Int256 struct {
	b [Size]byte
}

func (i Int256) IsNegative() bool {
	return i.b[0]&0x80 != 0
}

func (i Int256) Big() *big.Int {
	return math.S256(new(big.Int).SetBytes(i.b[:]))
}

func (i Int256) Bytes() bytesval.Bytes {
	b := i.b
	return bytesval.Wrap(b[:])
}

// Unsigned reinterprets the bits as an unsigned value.
func (i Int256) Unsigned() UInt256 {
	return UInt256{b: i.b}
}

func (i Int256) String() string {
	return i.Big().String()
}

func (i Int256) Hex() string {
	return "0x" + hex.EncodeToString(i.b[:])
}
