package protocol

import (
	"bytes"
	"fmt"
)

// NoBlockRuntimeID marks item stacks that are not blocks
const NoBlockRuntimeID int32 = 0

// ItemStack is one item stack as sent over the network
type ItemStack struct {
	ID             int32
	Meta           int32
	Count          int32
	BlockRuntimeID int32
	// RawExtraData is the encoded ItemStackExtraData (or the shield variant)
	RawExtraData []byte
}

// NullItemStack returns the wire form of an empty slot
func NullItemStack() ItemStack {
	return ItemStack{}
}

// IsNull reports whether the stack is the empty slot
func (s ItemStack) IsNull() bool {
	return s.ID == 0
}

// Equal compares all fields including the raw extra data bytes
func (s ItemStack) Equal(o ItemStack) bool {
	return s.ID == o.ID &&
		s.Meta == o.Meta &&
		s.Count == o.Count &&
		s.BlockRuntimeID == o.BlockRuntimeID &&
		bytes.Equal(s.RawExtraData, o.RawExtraData)
}

func (s ItemStack) String() string {
	if s.IsNull() {
		return "ItemStack(null)"
	}
	return fmt.Sprintf("ItemStack(id=%d meta=%d count=%d block=%d extra=%d bytes)",
		s.ID, s.Meta, s.Count, s.BlockRuntimeID, len(s.RawExtraData))
}
