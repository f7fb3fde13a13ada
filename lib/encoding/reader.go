package encoding

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Reader reads little-endian values from a byte slice
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a reader positioned at the start of data
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the current read position
func (r *Reader) Offset() int {
	return r.pos
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// need checks that n more bytes are available
func (r *Reader) need(n int, what string) error {
	if n < 0 || r.pos+n > len(r.data) {
		return fmt.Errorf("data too short for %s: need %d bytes at offset %d, have %d", what, n, r.pos, r.Remaining())
	}
	return nil
}

// --------------------------------------------------------------------------
// Fixed-width values
// --------------------------------------------------------------------------

func (r *Reader) ReadByte() (byte, error) {
	if err := r.need(1, "byte"); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.need(2, "short"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

func (r *Reader) ReadInt32() (int32, error) {
	if err := r.need(4, "int"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return int32(v), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	if err := r.need(8, "long"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return int64(v), nil
}

func (r *Reader) ReadFloat32() (float32, error) {
	if err := r.need(4, "float"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return math.Float32frombits(v), nil
}

func (r *Reader) ReadFloat64() (float64, error) {
	if err := r.need(8, "double"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(v), nil
}

// ReadN returns the next n bytes as a fresh copy
func (r *Reader) ReadN(n int, what string) ([]byte, error) {
	if err := r.need(n, what); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// --------------------------------------------------------------------------
// Length-prefixed values
// --------------------------------------------------------------------------

// ReadString16 reads a string prefixed with its length as uint16
func (r *Reader) ReadString16() (string, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return "", err
	}
	if err := r.need(int(n), "string data"); err != nil {
		return "", err
	}
	s := string(r.data[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}

// ReadBytes32 reads a byte slice prefixed with its length as int32
func (r *Reader) ReadBytes32() ([]byte, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative byte array length %d", n)
	}
	return r.ReadN(int(n), "byte array data")
}

// ExpectEOF fails if unread bytes remain
func (r *Reader) ExpectEOF() error {
	if r.Remaining() != 0 {
		return fmt.Errorf("unexpected trailing data: %d bytes at offset %d", r.Remaining(), r.pos)
	}
	return nil
}
