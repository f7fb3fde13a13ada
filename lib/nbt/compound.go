package nbt

import (
	"github.com/PIXRA-Network/typeconv/lib/encoding"
)

// Compound is an insertion-ordered collection of named tags
type Compound struct {
	names []string
	tags  map[string]Tag
}

// NewCompound creates an empty compound
func NewCompound() *Compound {
	return &Compound{tags: make(map[string]Tag)}
}

func (c *Compound) Type() TagType { return TagCompound }

// Len returns the number of entries
func (c *Compound) Len() int { return len(c.names) }

// Names returns the entry names in insertion order
func (c *Compound) Names() []string {
	return append([]string(nil), c.names...)
}

// Get returns the tag stored under name, or nil
func (c *Compound) Get(name string) Tag {
	return c.tags[name]
}

// Has reports whether an entry named name exists
func (c *Compound) Has(name string) bool {
	_, ok := c.tags[name]
	return ok
}

// Set stores t under name. Replacing an entry keeps its position.
func (c *Compound) Set(name string, t Tag) *Compound {
	if _, ok := c.tags[name]; !ok {
		c.names = append(c.names, name)
	}
	c.tags[name] = t
	return c
}

// Remove deletes the entry named name and reports whether it existed
func (c *Compound) Remove(name string) bool {
	if _, ok := c.tags[name]; !ok {
		return false
	}
	delete(c.tags, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}
	return true
}

// Copy is Clone with a concrete return type
func (c *Compound) Copy() *Compound {
	out := &Compound{
		names: append([]string(nil), c.names...),
		tags:  make(map[string]Tag, len(c.tags)),
	}
	for name, t := range c.tags {
		out.tags[name] = t.Clone()
	}
	return out
}

func (c *Compound) Clone() Tag { return c.Copy() }

// Equal compares entries regardless of their order
func (c *Compound) Equal(o Tag) bool {
	other, ok := o.(*Compound)
	if !ok {
		return false
	}
	if c == nil || other == nil {
		return c == other
	}
	if len(other.tags) != len(c.tags) {
		return false
	}
	for name, t := range c.tags {
		ot, ok := other.tags[name]
		if !ok || !t.Equal(ot) {
			return false
		}
	}
	return true
}

func (c *Compound) write(w *encoding.Writer) {
	for _, name := range c.names {
		t := c.tags[name]
		_ = w.WriteByte(byte(t.Type()))
		w.WriteString16(name)
		t.write(w)
	}
	_ = w.WriteByte(byte(TagEnd))
}

// --------------------------------------------------------------------------
// Typed accessors (absent entries yield the zero value and no error)
// --------------------------------------------------------------------------

func (c *Compound) GetCompound(name string) (*Compound, error) {
	t, ok := c.tags[name]
	if !ok {
		return nil, nil
	}
	v, ok := t.(*Compound)
	if !ok {
		return nil, &UnexpectedTypeError{Name: name, Want: TagCompound, Got: t.Type()}
	}
	return v, nil
}

// GetList returns the list stored under name. Non-empty lists must hold
// elements of elemType; empty lists are accepted whatever their type.
func (c *Compound) GetList(name string, elemType TagType) (*List, error) {
	t, ok := c.tags[name]
	if !ok {
		return nil, nil
	}
	v, ok := t.(*List)
	if !ok {
		return nil, &UnexpectedTypeError{Name: name, Want: TagList, Got: t.Type()}
	}
	if v.Len() > 0 && v.ElemType() != elemType {
		return nil, &UnexpectedTypeError{Name: name, Want: elemType, Got: v.ElemType()}
	}
	return v, nil
}

func (c *Compound) GetString(name string) (string, error) {
	t, ok := c.tags[name]
	if !ok {
		return "", nil
	}
	v, ok := t.(String)
	if !ok {
		return "", &UnexpectedTypeError{Name: name, Want: TagString, Got: t.Type()}
	}
	return string(v), nil
}

func (c *Compound) GetByte(name string) (int8, error) {
	t, ok := c.tags[name]
	if !ok {
		return 0, nil
	}
	v, ok := t.(Byte)
	if !ok {
		return 0, &UnexpectedTypeError{Name: name, Want: TagByte, Got: t.Type()}
	}
	return int8(v), nil
}

func (c *Compound) GetShort(name string) (int16, error) {
	t, ok := c.tags[name]
	if !ok {
		return 0, nil
	}
	v, ok := t.(Short)
	if !ok {
		return 0, &UnexpectedTypeError{Name: name, Want: TagShort, Got: t.Type()}
	}
	return int16(v), nil
}

func (c *Compound) GetLong(name string) (int64, error) {
	t, ok := c.tags[name]
	if !ok {
		return 0, nil
	}
	v, ok := t.(Long)
	if !ok {
		return 0, &UnexpectedTypeError{Name: name, Want: TagLong, Got: t.Type()}
	}
	return int64(v), nil
}

func (c *Compound) GetByteArray(name string) ([]byte, error) {
	t, ok := c.tags[name]
	if !ok {
		return nil, nil
	}
	v, ok := t.(ByteArray)
	if !ok {
		return nil, &UnexpectedTypeError{Name: name, Want: TagByteArray, Got: t.Type()}
	}
	return v, nil
}

func (c *Compound) SetString(name, v string) *Compound      { return c.Set(name, String(v)) }
func (c *Compound) SetByte(name string, v int8) *Compound   { return c.Set(name, Byte(v)) }
func (c *Compound) SetShort(name string, v int16) *Compound { return c.Set(name, Short(v)) }
func (c *Compound) SetInt(name string, v int32) *Compound   { return c.Set(name, Int(v)) }
func (c *Compound) SetLong(name string, v int64) *Compound  { return c.Set(name, Long(v)) }

func (c *Compound) SetByteArray(name string, v []byte) *Compound {
	return c.Set(name, ByteArray(append([]byte(nil), v...)))
}
