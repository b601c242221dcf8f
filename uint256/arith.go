package uint256

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
)

func (v Value[U]) Add(other Value[U]) Value[U] {
	return fromBig[U](new(big.Int).Add(v.Big(), other.Big()))
}

func (v Value[U]) Sub(other Value[U]) Value[U] {
	return fromBig[U](new(big.Int).Sub(v.Big(), other.Big()))
}

func (v Value[U]) Mul(other Value[U]) Value[U] {
	return fromBig[U](new(big.Int).Mul(v.Big(), other.Big()))
}

func (v Value[U]) Div(other Value[U]) (Value[U], error) {
	if other.IsZero() {
		return Value[U]{}, ErrDivisionByZero
	}
	return fromBig[U](new(big.Int).Div(v.Big(), other.Big())), nil
}

func (v Value[U]) Mod(other Value[U]) (Value[U], error) {
	if other.IsZero() {
		return Value[U]{}, ErrDivisionByZero
	}
	return fromBig[U](new(big.Int).Mod(v.Big(), other.Big())), nil
}

// Pow raises v to exponent modulo 2^256.
func (v Value[U]) Pow(exponent Value[U]) Value[U] {
	return fromBig[U](math.Exp(v.Big(), exponent.Big()))
}

// AddMod computes (v + other) mod m without intermediate wrapping.
func (v Value[U]) AddMod(other Value[U], m UInt256) (Value[U], error) {
	if m.IsZero() {
		return Value[U]{}, ErrDivisionByZero
	}
	sum := new(big.Int).Add(v.Big(), other.Big())
	return fromBig[U](sum.Mod(sum, m.Big())), nil
}

// MulMod computes (v * other) mod m without intermediate wrapping.
func (v Value[U]) MulMod(other Value[U], m UInt256) (Value[U], error) {
	if m.IsZero() {
		return Value[U]{}, ErrDivisionByZero
	}
	prod := new(big.Int).Mul(v.Big(), other.Big())
	return fromBig[U](prod.Mod(prod, m.Big())), nil
}

func (v Value[U]) AddUint64(x uint64) Value[U] {
	return v.Add(FromUint64[U](x))
}

func (v Value[U]) SubUint64(x uint64) Value[U] {
	return v.Sub(FromUint64[U](x))
}

func (v Value[U]) MulUint64(x uint64) Value[U] {
	return v.Mul(FromUint64[U](x))
}

func (v Value[U]) DivUint64(x uint64) (Value[U], error) {
	return v.Div(FromUint64[U](x))
}

func (v Value[U]) ModUint64(x uint64) (Value[U], error) {
	return v.Mod(FromUint64[U](x))
}

func (v Value[U]) And(other Value[U]) Value[U] {
	var out Value[U]
	for i := range out.b {
		out.b[i] = v.b[i] & other.b[i]
	}
	return out
}

func (v Value[U]) Or(other Value[U]) Value[U] {
	var out Value[U]
	for i := range out.b {
		out.b[i] = v.b[i] | other.b[i]
	}
	return out
}

func (v Value[U]) Xor(other Value[U]) Value[U] {
	var out Value[U]
	for i := range out.b {
		out.b[i] = v.b[i] ^ other.b[i]
	}
	return out
}

func (v Value[U]) Not() Value[U] {
	var out Value[U]
	for i := range out.b {
		out.b[i] = ^v.b[i]
	}
	return out
}

// Cmp compares unsigned values and returns -1, 0 or +1.
func (v Value[U]) Cmp(other Value[U]) int {
	return bytes.Compare(v.b[:], other.b[:])
}

func (v Value[U]) Lt(other Value[U]) bool {
	return v.Cmp(other) < 0
}

func (v Value[U]) Gt(other Value[U]) bool {
	return v.Cmp(other) > 0
}

// SignExtend treats byte byteIndex (counting from the least significant
// byte) as the sign byte of a narrower signed integer and widens it to 256
// bits. An index of 31 or more returns the value unchanged.
func (v Value[U]) SignExtend(byteIndex UInt256) Int256 {
	out := Int256{b: v.b}
	idx, ok := byteIndex.Uint64()
	if !ok || idx >= Size-1 {
		return out
	}
	signPos := Size - 1 - int(idx)
	var fill byte
	if v.b[signPos]&0x80 != 0 {
		fill = 0xff
	}
	for i := 0; i < signPos; i++ {
		out.b[i] = fill
	}
	return out
}
