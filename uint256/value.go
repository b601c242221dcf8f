// Package uint256 implements fixed-width 256-bit unsigned quantities stored
// as 32 big-endian bytes. Arithmetic wraps modulo 2^256 unless an explicit
// modulus is supplied.
//
// Values carry a unit tag. Value[Wei] and Value[Gas] are distinct types, so
// quantities of different units can neither be mixed in arithmetic nor
// compared, even when they hold the same number. Convert changes the tag
// explicitly.
package uint256

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"strings"

	"xdisc/bytesval"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"
)

const Size = 32

var (
	ErrDivisionByZero = errors.New("uint256: division by zero")
	ErrOutOfRange     = errors.New("uint256: value out of range")
)

type Unit interface {
	UnitName() string
}

// Plain is the tag for untyped numbers such as moduli and byte indices.
type Plain struct{}

func (Plain) UnitName() string { return "" }

type Wei struct{}

func (Wei) UnitName() string { return "wei" }

type Gas struct{}

func (Gas) UnitName() string { return "gas" }

type Value[U Unit] struct {
	b [Size]byte
}

type UInt256 = Value[Plain]

func Zero[U Unit]() Value[U] {
	return Value[U]{}
}

func One[U Unit]() Value[U] {
	return FromUint64[U](1)
}

func Max[U Unit]() Value[U] {
	var v Value[U]
	for i := range v.b {
		v.b[i] = 0xff
	}
	return v
}

func FromUint64[U Unit](x uint64) Value[U] {
	var v Value[U]
	binary.BigEndian.PutUint64(v.b[Size-8:], x)
	return v
}

// FromBytes left-pads b, which holds at most 32 big-endian bytes.
func FromBytes[U Unit](b bytesval.Bytes) (Value[U], error) {
	var v Value[U]
	if b.Size() > Size {
		return v, errors.Wrapf(ErrOutOfRange, "%d bytes", b.Size())
	}
	if err := b.CopyTo(bytesval.WrapMutable(v.b[:]), Size-b.Size()); err != nil {
		return Value[U]{}, err
	}
	return v, nil
}

func FromBig[U Unit](x *big.Int) (Value[U], error) {
	if x.Sign() < 0 || x.BitLen() > Size*8 {
		return Value[U]{}, errors.Wrapf(ErrOutOfRange, "%s", x)
	}
	return fromBig[U](new(big.Int).Set(x)), nil
}

// Parse accepts decimal or 0x-prefixed hexadecimal digits only.
func Parse[U Unit](s string) (Value[U], error) {
	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}
	x, ok := new(big.Int).SetString(digits, base)
	if !ok || digits == "" || digits[0] == '+' || digits[0] == '-' && base == 16 {
		return Value[U]{}, errors.Errorf("uint256: invalid number %q", s)
	}
	return FromBig[U](x)
}

func Convert[To Unit, From Unit](v Value[From]) Value[To] {
	return Value[To]{b: v.b}
}

// fromBig reduces x modulo 2^256. x is modified.
func fromBig[U Unit](x *big.Int) Value[U] {
	var v Value[U]
	math.ReadBits(math.U256(x), v.b[:])
	return v
}

func (v Value[U]) Big() *big.Int {
	return new(big.Int).SetBytes(v.b[:])
}

func (v Value[U]) Bytes() bytesval.Bytes {
	b := v.b
	return bytesval.Wrap(b[:])
}

func (v Value[U]) Array() [Size]byte {
	return v.b
}

// Uint64 returns the value and whether it fits in 64 bits.
func (v Value[U]) Uint64() (uint64, bool) {
	for _, c := range v.b[:Size-8] {
		if c != 0 {
			return 0, false
		}
	}
	return binary.BigEndian.Uint64(v.b[Size-8:]), true
}

func (v Value[U]) IsZero() bool {
	return v.b == [Size]byte{}
}

func (v Value[U]) Equal(other Value[U]) bool {
	return v.b == other.b
}

func (v Value[U]) String() string {
	var u U
	if name := u.UnitName(); name != "" {
		return v.Big().String() + " " + name
	}
	return v.Big().String()
}

func (v Value[U]) Hex() string {
	return "0x" + hex.EncodeToString(v.b[:])
}
