package box

import "fmt"

// Value is a decoded box field. The set of implementations is closed:
// renderers can switch over every kind below exhaustively.
type Value interface {
	boxValue()
}

type (
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64
	Int8   int8
	Int16  int16
	Int32  int32
	Int64  int64
	Bool   bool
	Utf8   string

	// Flags is the 24-bit flag register of a full box.
	Flags uint32

	// Fixed point numbers keep their integer and fractional parts apart,
	// ISOBMFF defines no floating point.
	FixedPoint8  [2]uint8
	FixedPoint16 [2]uint16
	FixedPoint32 [2]uint32

	// Matrix is a 3x3 transformation matrix in row order.
	Matrix [9]uint32

	Utf8Array   []string
	Uint8Array  []uint8
	Uint16Array []uint16
	Uint32Array []uint32
	Uint64Array []uint64

	// Collection holds one record per repeated sub-structure, e.g. one per sample.
	Collection [][]Field
)

type Field struct {
	Name  string
	Value Value
}

func (Uint8) boxValue()        {}
func (Uint16) boxValue()       {}
func (Uint32) boxValue()       {}
func (Uint64) boxValue()       {}
func (Int8) boxValue()         {}
func (Int16) boxValue()        {}
func (Int32) boxValue()        {}
func (Int64) boxValue()        {}
func (Bool) boxValue()         {}
func (Utf8) boxValue()         {}
func (Flags) boxValue()        {}
func (FixedPoint8) boxValue()  {}
func (FixedPoint16) boxValue() {}
func (FixedPoint32) boxValue() {}
func (Matrix) boxValue()       {}
func (Utf8Array) boxValue()    {}
func (Uint8Array) boxValue()   {}
func (Uint16Array) boxValue()  {}
func (Uint32Array) boxValue()  {}
func (Uint64Array) boxValue()  {}
func (Collection) boxValue()   {}

func NewFlags(b [3]byte) Flags {
	return Flags(uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]))
}

func (flags Flags) Has(flag uint32) bool {
	return uint32(flags)&flag != 0
}

func (flags Flags) Bytes() [3]byte {
	return [3]byte{byte(flags >> 16), byte(flags >> 8), byte(flags)}
}

func (flags Flags) String() string {
	return fmt.Sprintf("0x%06x", uint32(flags))
}

func (m Matrix) Row(i int) [3]uint32 {
	return [3]uint32{m[i*3], m[i*3+1], m[i*3+2]}
}

// fixed16 splits a 16.16 value.
func fixed16(v uint32) FixedPoint16 {
	return FixedPoint16{uint16(v >> 16), uint16(v)}
}

// fixed8 splits an 8.8 value.
func fixed8(v uint16) FixedPoint8 {
	return FixedPoint8{uint8(v >> 8), uint8(v)}
}
