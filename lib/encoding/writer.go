package encoding

import (
	"encoding/binary"
	"github.com/cockroachdb/errors"
	"math"
)

// MaxString16 is the longest string WriteString16 accepts
const MaxString16 = math.MaxUint16

// Writer is a growable little-endian byte buffer
type Writer struct {
	buf []byte
}

// NewWriter creates a writer with the given initial capacity
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the written data. The slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far
func (w *Writer) Len() int {
	return len(w.buf)
}

// --------------------------------------------------------------------------
// Fixed-width values
// --------------------------------------------------------------------------

func (w *Writer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

func (w *Writer) WriteInt8(v int8) {
	w.buf = append(w.buf, byte(v))
}

func (w *Writer) WriteUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

func (w *Writer) WriteInt32(v int32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
}

func (w *Writer) WriteInt64(v int64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(v))
}

func (w *Writer) WriteFloat32(v float32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, math.Float32bits(v))
}

func (w *Writer) WriteFloat64(v float64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))
}

// Write appends raw bytes (implements io.Writer, never fails)
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// --------------------------------------------------------------------------
// Length-prefixed values
// --------------------------------------------------------------------------

// WriteString16 writes a string prefixed with its length as uint16. Callers
// must reject strings longer than MaxString16 beforehand; WriteString16
// panics on them.
func (w *Writer) WriteString16(s string) {
	if len(s) > MaxString16 {
		panic(errors.AssertionFailedf("string of %d bytes exceeds the %d byte limit", len(s), MaxString16))
	}
	w.WriteUint16(uint16(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteBytes32 writes a byte slice prefixed with its length as int32
func (w *Writer) WriteBytes32(b []byte) {
	w.WriteInt32(int32(len(b)))
	w.buf = append(w.buf, b...)
}
