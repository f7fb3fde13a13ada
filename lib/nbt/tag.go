package nbt

import (
	"bytes"
	"fmt"
	"github.com/PIXRA-Network/typeconv/lib/encoding"
	"math"
)

// TagType is the one byte type id of a tag on the wire
type TagType byte

const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

func (t TagType) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	case TagIntArray:
		return "IntArray"
	case TagLongArray:
		return "LongArray"
	default:
		return fmt.Sprintf("TagType(%d)", byte(t))
	}
}

// Tag is implemented by every tag type in this package. The interface is
// sealed: the unexported write method keeps foreign types out of trees, which
// is what allows Marshal to be infallible.
type Tag interface {
	// Type returns the wire type id of the tag
	Type() TagType
	// Clone returns a deep copy of the tag
	Clone() Tag
	// Equal reports whether other has the same type and value
	Equal(other Tag) bool

	write(w *encoding.Writer)
}

// --------------------------------------------------------------------------
// Scalar tags
// --------------------------------------------------------------------------

type (
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string
)

func (Byte) Type() TagType   { return TagByte }
func (Short) Type() TagType  { return TagShort }
func (Int) Type() TagType    { return TagInt }
func (Long) Type() TagType   { return TagLong }
func (Float) Type() TagType  { return TagFloat }
func (Double) Type() TagType { return TagDouble }
func (String) Type() TagType { return TagString }

func (t Byte) Clone() Tag   { return t }
func (t Short) Clone() Tag  { return t }
func (t Int) Clone() Tag    { return t }
func (t Long) Clone() Tag   { return t }
func (t Float) Clone() Tag  { return t }
func (t Double) Clone() Tag { return t }
func (t String) Clone() Tag { return t }

func (t Byte) Equal(o Tag) bool  { v, ok := o.(Byte); return ok && v == t }
func (t Short) Equal(o Tag) bool { v, ok := o.(Short); return ok && v == t }
func (t Int) Equal(o Tag) bool   { v, ok := o.(Int); return ok && v == t }
func (t Long) Equal(o Tag) bool  { v, ok := o.(Long); return ok && v == t }

// Float and Double compare bit patterns so that NaN payloads round-trip equal
func (t Float) Equal(o Tag) bool {
	v, ok := o.(Float)
	return ok && math.Float32bits(float32(v)) == math.Float32bits(float32(t))
}

func (t Double) Equal(o Tag) bool {
	v, ok := o.(Double)
	return ok && math.Float64bits(float64(v)) == math.Float64bits(float64(t))
}

func (t String) Equal(o Tag) bool { v, ok := o.(String); return ok && v == t }

func (t Byte) write(w *encoding.Writer)   { w.WriteInt8(int8(t)) }
func (t Short) write(w *encoding.Writer)  { w.WriteInt16(int16(t)) }
func (t Int) write(w *encoding.Writer)    { w.WriteInt32(int32(t)) }
func (t Long) write(w *encoding.Writer)   { w.WriteInt64(int64(t)) }
func (t Float) write(w *encoding.Writer)  { w.WriteFloat32(float32(t)) }
func (t Double) write(w *encoding.Writer) { w.WriteFloat64(float64(t)) }
func (t String) write(w *encoding.Writer) { w.WriteString16(string(t)) }

// --------------------------------------------------------------------------
// Array tags
// --------------------------------------------------------------------------

type (
	ByteArray []byte
	IntArray  []int32
	LongArray []int64
)

func (ByteArray) Type() TagType { return TagByteArray }
func (IntArray) Type() TagType  { return TagIntArray }
func (LongArray) Type() TagType { return TagLongArray }

func (t ByteArray) Clone() Tag { return append(ByteArray(nil), t...) }
func (t IntArray) Clone() Tag  { return append(IntArray(nil), t...) }
func (t LongArray) Clone() Tag { return append(LongArray(nil), t...) }

func (t ByteArray) Equal(o Tag) bool {
	v, ok := o.(ByteArray)
	return ok && bytes.Equal(v, t)
}

func (t IntArray) Equal(o Tag) bool {
	v, ok := o.(IntArray)
	if !ok || len(v) != len(t) {
		return false
	}
	for i := range t {
		if t[i] != v[i] {
			return false
		}
	}
	return true
}

func (t LongArray) Equal(o Tag) bool {
	v, ok := o.(LongArray)
	if !ok || len(v) != len(t) {
		return false
	}
	for i := range t {
		if t[i] != v[i] {
			return false
		}
	}
	return true
}

func (t ByteArray) write(w *encoding.Writer) {
	w.WriteBytes32(t)
}

func (t IntArray) write(w *encoding.Writer) {
	w.WriteInt32(int32(len(t)))
	for _, v := range t {
		w.WriteInt32(v)
	}
}

func (t LongArray) write(w *encoding.Writer) {
	w.WriteInt32(int32(len(t)))
	for _, v := range t {
		w.WriteInt64(v)
	}
}
