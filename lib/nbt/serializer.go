package nbt

import (
	"github.com/PIXRA-Network/typeconv/lib/encoding"
)

// MaxDepth bounds the nesting of lists and compounds accepted by the decoder
const MaxDepth = 512

// Marshal encodes root as an unnamed little-endian root compound
func Marshal(root *Compound) []byte {
	w := encoding.NewWriter(64)
	WriteRoot(w, "", root)
	return w.Bytes()
}

// WriteRoot encodes root as a named root compound into w
func WriteRoot(w *encoding.Writer, name string, root *Compound) {
	_ = w.WriteByte(byte(TagCompound))
	w.WriteString16(name)
	root.write(w)
}

// Unmarshal decodes a root compound. The input must hold exactly one root.
func Unmarshal(data []byte) (*Compound, error) {
	r := encoding.NewReader(data)
	root, err := ReadRoot(r)
	if err != nil {
		return nil, err
	}
	if err := r.ExpectEOF(); err != nil {
		return nil, &DecodeError{Offset: r.Offset(), Msg: "root tag", cause: err}
	}
	return root, nil
}

// ReadRoot decodes one root compound from r, leaving r positioned after it.
// The root name is discarded.
func ReadRoot(r *encoding.Reader) (*Compound, error) {
	d := decoder{r: r}
	typ, err := r.ReadByte()
	if err != nil {
		return nil, d.fail("root type", err)
	}
	if TagType(typ) != TagCompound {
		return nil, &DecodeError{Offset: r.Offset() - 1, Msg: "expected root compound, got " + TagType(typ).String()}
	}
	if _, err := r.ReadString16(); err != nil {
		return nil, d.fail("root name", err)
	}
	return d.readCompound(0)
}

// --------------------------------------------------------------------------
// Decoder
// --------------------------------------------------------------------------

type decoder struct {
	r *encoding.Reader
}

func (d *decoder) fail(msg string, cause error) error {
	return &DecodeError{Offset: d.r.Offset(), Msg: msg, cause: cause}
}

func (d *decoder) readCompound(depth int) (*Compound, error) {
	if depth > MaxDepth {
		return nil, d.fail("maximum nesting depth exceeded", nil)
	}
	c := NewCompound()
	for {
		typ, err := d.r.ReadByte()
		if err != nil {
			return nil, d.fail("compound entry type", err)
		}
		if TagType(typ) == TagEnd {
			return c, nil
		}
		name, err := d.r.ReadString16()
		if err != nil {
			return nil, d.fail("compound entry name", err)
		}
		if c.Has(name) {
			return nil, d.fail("duplicate compound entry "+name, nil)
		}
		t, err := d.readPayload(TagType(typ), depth+1)
		if err != nil {
			return nil, err
		}
		c.Set(name, t)
	}
}

func (d *decoder) readPayload(typ TagType, depth int) (Tag, error) {
	r := d.r
	switch typ {
	case TagByte:
		v, err := r.ReadInt8()
		if err != nil {
			return nil, d.fail("byte", err)
		}
		return Byte(v), nil
	case TagShort:
		v, err := r.ReadInt16()
		if err != nil {
			return nil, d.fail("short", err)
		}
		return Short(v), nil
	case TagInt:
		v, err := r.ReadInt32()
		if err != nil {
			return nil, d.fail("int", err)
		}
		return Int(v), nil
	case TagLong:
		v, err := r.ReadInt64()
		if err != nil {
			return nil, d.fail("long", err)
		}
		return Long(v), nil
	case TagFloat:
		v, err := r.ReadFloat32()
		if err != nil {
			return nil, d.fail("float", err)
		}
		return Float(v), nil
	case TagDouble:
		v, err := r.ReadFloat64()
		if err != nil {
			return nil, d.fail("double", err)
		}
		return Double(v), nil
	case TagString:
		v, err := r.ReadString16()
		if err != nil {
			return nil, d.fail("string", err)
		}
		return String(v), nil
	case TagByteArray:
		v, err := r.ReadBytes32()
		if err != nil {
			return nil, d.fail("byte array", err)
		}
		return ByteArray(v), nil
	case TagIntArray:
		n, err := d.readLength(4)
		if err != nil {
			return nil, err
		}
		out := make(IntArray, n)
		for i := range out {
			if out[i], err = r.ReadInt32(); err != nil {
				return nil, d.fail("int array element", err)
			}
		}
		return out, nil
	case TagLongArray:
		n, err := d.readLength(8)
		if err != nil {
			return nil, err
		}
		out := make(LongArray, n)
		for i := range out {
			if out[i], err = r.ReadInt64(); err != nil {
				return nil, d.fail("long array element", err)
			}
		}
		return out, nil
	case TagList:
		return d.readList(depth)
	case TagCompound:
		return d.readCompound(depth)
	default:
		return nil, d.fail("unknown tag type "+typ.String(), nil)
	}
}

// readLength reads an int32 element count and checks that count*minSize
// bytes are still available, so hostile lengths never cause huge allocations
func (d *decoder) readLength(minSize int) (int, error) {
	n, err := d.r.ReadInt32()
	if err != nil {
		return 0, d.fail("length", err)
	}
	if n < 0 {
		return 0, d.fail("negative length", nil)
	}
	if int64(n)*int64(minSize) > int64(d.r.Remaining()) {
		return 0, d.fail("length exceeds remaining data", nil)
	}
	return int(n), nil
}

func (d *decoder) readList(depth int) (*List, error) {
	if depth > MaxDepth {
		return nil, d.fail("maximum nesting depth exceeded", nil)
	}
	typ, err := d.r.ReadByte()
	if err != nil {
		return nil, d.fail("list element type", err)
	}
	elemType := TagType(typ)
	if elemType > TagLongArray {
		return nil, d.fail("unknown list element type "+elemType.String(), nil)
	}
	n, err := d.readLength(1)
	if err != nil {
		return nil, err
	}
	if elemType == TagEnd && n > 0 {
		return nil, d.fail("non-empty list of End tags", nil)
	}
	l := &List{elemType: elemType, values: make([]Tag, 0, n)}
	for i := 0; i < n; i++ {
		t, err := d.readPayload(elemType, depth+1)
		if err != nil {
			return nil, err
		}
		l.values = append(l.values, t)
	}
	return l, nil
}
