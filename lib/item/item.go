package item

import (
	"fmt"
	"github.com/PIXRA-Network/typeconv/lib/nbt"
	"github.com/PIXRA-Network/typeconv/lib/util"
	"github.com/cockroachdb/errors"
)

// AirID is the type id of the null item
const AirID = "minecraft:air"

// Well-known tag names
const (
	TagDisplay      = "display"
	TagDisplayName  = "Name"
	TagDisplayLore  = "Lore"
	TagEnchantments = "ench"
	TagBlockEntity  = "BlockEntityTag"
	// TagItems holds the inventory of container block items (list of saved items)
	TagItems = "Items"
)

// Saved item field names (see MarshalTag)
const (
	savedName   = "Name"
	savedDamage = "Damage"
	savedCount  = "Count"
	savedSlot   = "Slot"
	savedTag    = "tag"
)

// Item is a stack of one item type
type Item struct {
	name  string
	meta  int
	count int
	tag   *nbt.Compound
}

// New creates an item stack without auxiliary data
func New(name string, meta, count int) *Item {
	return &Item{name: name, meta: meta, count: count, tag: nbt.NewCompound()}
}

// Air returns a new null item
func Air() *Item {
	return New(AirID, 0, 0)
}

func (i *Item) Name() string { return i.name }
func (i *Item) Meta() int    { return i.meta }
func (i *Item) Count() int   { return i.count }

// SetCount changes the stack size and returns the item
func (i *Item) SetCount(count int) *Item {
	i.count = count
	return i
}

// IsNull reports whether the item is the null item (air or an empty stack)
func (i *Item) IsNull() bool {
	return i == nil || i.name == AirID || i.name == "" || i.count <= 0
}

// StateID returns a numeric identity of the item's type and meta. Two items
// with different type or meta have different state ids (modulo hash collisions
// of the type name).
func (i *Item) StateID() int64 {
	return util.CombineState(util.HashString(i.name, 0), i.meta)
}

// NamedTag returns a copy of the item's auxiliary tag (never nil)
func (i *Item) NamedTag() *nbt.Compound {
	return i.tag.Copy()
}

// HasNamedTag reports whether the auxiliary tag has any entries
func (i *Item) HasNamedTag() bool {
	return i.tag.Len() > 0
}

// SetNamedTag replaces the auxiliary tag. The item takes ownership of tag.
// Well-known fields are checked for their expected types; on error the item
// is left unchanged.
func (i *Item) SetNamedTag(tag *nbt.Compound) error {
	if tag == nil {
		i.tag = nbt.NewCompound()
		return nil
	}
	if err := validateNamedTag(tag); err != nil {
		return err
	}
	i.tag = tag
	return nil
}

// ClearNamedTag removes all auxiliary data
func (i *Item) ClearNamedTag() {
	i.tag = nbt.NewCompound()
}

// CustomName returns the display name set on the item, or ""
func (i *Item) CustomName() string {
	display, err := i.tag.GetCompound(TagDisplay)
	if err != nil || display == nil {
		return ""
	}
	name, err := display.GetString(TagDisplayName)
	if err != nil {
		return ""
	}
	return name
}

// SetCustomName sets the display name. An empty name clears it. Names too
// long to serialize are rejected and leave the item unchanged.
func (i *Item) SetCustomName(name string) error {
	if err := nbt.CheckLengths(nbt.String(name)); err != nil {
		return errors.Wrap(err, "item custom name")
	}
	display, err := i.tag.GetCompound(TagDisplay)
	if err != nil || display == nil {
		if name == "" {
			return nil
		}
		display = nbt.NewCompound()
		i.tag.Set(TagDisplay, display)
	}
	if name == "" {
		display.Remove(TagDisplayName)
		if display.Len() == 0 {
			i.tag.Remove(TagDisplay)
		}
		return nil
	}
	display.SetString(TagDisplayName, name)
	return nil
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	return &Item{name: i.name, meta: i.meta, count: i.count, tag: i.tag.Copy()}
}

// Equal compares type, meta and auxiliary data (not count)
func (i *Item) Equal(o *Item) bool {
	if i == nil || o == nil {
		return i == o
	}
	return i.name == o.name && i.meta == o.meta && i.tag.Equal(o.tag)
}

func (i *Item) String() string {
	if i.IsNull() {
		return "Item(air)"
	}
	return fmt.Sprintf("Item(%s:%d)x%d", i.name, i.meta, i.count)
}

// --------------------------------------------------------------------------
// Tag validation
// --------------------------------------------------------------------------

func validateNamedTag(tag *nbt.Compound) error {
	if err := nbt.CheckLengths(tag); err != nil {
		return err
	}
	display, err := tag.GetCompound(TagDisplay)
	if err != nil {
		return err
	}
	if display != nil {
		if _, err := display.GetString(TagDisplayName); err != nil {
			return err
		}
		if _, err := display.GetList(TagDisplayLore, nbt.TagString); err != nil {
			return err
		}
	}
	if _, err := tag.GetList(TagEnchantments, nbt.TagCompound); err != nil {
		return err
	}
	return nil
}

// --------------------------------------------------------------------------
// Saved form
// --------------------------------------------------------------------------

// ErrSavedDataLoading is matched by every error returned from FromTag
var ErrSavedDataLoading = errors.New("item: invalid saved item data")

// MarshalTag returns the saved form of the item. A slot >= 0 is stored too.
func (i *Item) MarshalTag(slot int) *nbt.Compound {
	out := nbt.NewCompound().
		SetString(savedName, i.name).
		SetShort(savedDamage, int16(i.meta)).
		SetByte(savedCount, int8(i.count))
	if slot >= 0 {
		out.SetByte(savedSlot, int8(slot))
	}
	if i.tag.Len() > 0 {
		out.Set(savedTag, i.tag.Copy())
	}
	return out
}

// FromTag decodes the saved form of an item. It returns the item and the
// stored slot (-1 if none).
func FromTag(c *nbt.Compound) (*Item, int, error) {
	fail := func(err error, msg string) (*Item, int, error) {
		return nil, -1, errors.Mark(errors.Wrap(err, msg), ErrSavedDataLoading)
	}

	name, err := c.GetString(savedName)
	if err != nil {
		return fail(err, "item name")
	}
	if name == "" {
		return nil, -1, errors.Mark(errors.New("item: missing item name"), ErrSavedDataLoading)
	}
	damage, err := c.GetShort(savedDamage)
	if err != nil {
		return fail(err, "item damage")
	}
	count, err := c.GetByte(savedCount)
	if err != nil {
		return fail(err, "item count")
	}
	slot := -1
	if c.Has(savedSlot) {
		s, err := c.GetByte(savedSlot)
		if err != nil {
			return fail(err, "item slot")
		}
		slot = int(s)
	}

	it := New(name, int(damage), int(count))
	tag, err := c.GetCompound(savedTag)
	if err != nil {
		return fail(err, "item tag")
	}
	if tag != nil {
		if err := it.SetNamedTag(tag.Copy()); err != nil {
			return fail(err, "item tag")
		}
	}
	return it, slot, nil
}
