package nbt

import (
	"fmt"
	"github.com/PIXRA-Network/typeconv/lib/encoding"
)

// List is a homogeneous list of tags
type List struct {
	elemType TagType
	values   []Tag
}

// NewList creates an empty list. Its element type is decided by the first Push.
func NewList() *List {
	return &List{elemType: TagEnd}
}

// ListOf builds a list from values, which must all share one type
func ListOf(values ...Tag) (*List, error) {
	l := NewList()
	for _, v := range values {
		if err := l.Push(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *List) Type() TagType { return TagList }

// ElemType returns the element type (TagEnd for an empty untyped list)
func (l *List) ElemType() TagType { return l.elemType }

func (l *List) Len() int { return len(l.values) }

func (l *List) At(i int) Tag { return l.values[i] }

// All returns the elements. The returned slice is a copy; the tags are not.
func (l *List) All() []Tag {
	return append([]Tag(nil), l.values...)
}

// Push appends a tag, rejecting tags whose type differs from the list's
func (l *List) Push(t Tag) error {
	if t == nil {
		return fmt.Errorf("nbt: cannot push nil tag to list")
	}
	if len(l.values) == 0 && l.elemType == TagEnd {
		l.elemType = t.Type()
	} else if t.Type() != l.elemType {
		return fmt.Errorf("nbt: cannot push %s to list of %s", t.Type(), l.elemType)
	}
	l.values = append(l.values, t)
	return nil
}

func (l *List) Clone() Tag {
	out := &List{elemType: l.elemType, values: make([]Tag, len(l.values))}
	for i, v := range l.values {
		out.values[i] = v.Clone()
	}
	return out
}

func (l *List) Equal(o Tag) bool {
	other, ok := o.(*List)
	if !ok {
		return false
	}
	if l == nil || other == nil {
		return l == other
	}
	if len(other.values) != len(l.values) {
		return false
	}
	for i := range l.values {
		if !l.values[i].Equal(other.values[i]) {
			return false
		}
	}
	return true
}

func (l *List) write(w *encoding.Writer) {
	_ = w.WriteByte(byte(l.elemType))
	w.WriteInt32(int32(len(l.values)))
	for _, v := range l.values {
		v.write(w)
	}
}
