// Package recipe holds the domain forms of crafting recipe ingredients.
package recipe

import (
	"fmt"
	"github.com/PIXRA-Network/typeconv/lib/item"
	"github.com/cockroachdb/errors"
)

// Ingredient is one input slot of a recipe. The set of implementations is
// closed: ExactIngredient, MetaWildcardIngredient and TagWildcardIngredient.
// A nil Ingredient is an empty slot.
type Ingredient interface {
	fmt.Stringer
	// Accepts reports whether it satisfies the ingredient. Tag wildcards
	// need a capability lookup and use hasTag, which may be nil.
	Accepts(it *item.Item, hasTag func(it *item.Item, tag string) bool) bool

	ingredient()
}

// ExactIngredient matches one concrete item (type, meta and auxiliary data)
type ExactIngredient struct {
	item *item.Item
}

// NewExact creates an exact ingredient. The item is copied and its count
// normalized to 1.
func NewExact(it *item.Item) (ExactIngredient, error) {
	if it.IsNull() {
		return ExactIngredient{}, errors.New("recipe: exact ingredient must not be the null item")
	}
	return ExactIngredient{item: it.Clone().SetCount(1)}, nil
}

// Item returns a copy of the matched item, or nil for an ingredient not
// created by NewExact
func (e ExactIngredient) Item() *item.Item {
	if e.item == nil {
		return nil
	}
	return e.item.Clone()
}

func (e ExactIngredient) Accepts(it *item.Item, _ func(*item.Item, string) bool) bool {
	return !it.IsNull() && e.item.Equal(it)
}

func (e ExactIngredient) String() string { return "Exact(" + e.item.String() + ")" }

// MetaWildcardIngredient matches any item of one type, whatever its meta
type MetaWildcardIngredient struct {
	ItemID string
}

func (m MetaWildcardIngredient) Accepts(it *item.Item, _ func(*item.Item, string) bool) bool {
	return !it.IsNull() && it.Name() == m.ItemID
}

func (m MetaWildcardIngredient) String() string { return "MetaWildcard(" + m.ItemID + ")" }

// TagWildcardIngredient matches any item carrying a named capability tag
type TagWildcardIngredient struct {
	TagName string
}

func (t TagWildcardIngredient) Accepts(it *item.Item, hasTag func(*item.Item, string) bool) bool {
	return !it.IsNull() && hasTag != nil && hasTag(it, t.TagName)
}

func (t TagWildcardIngredient) String() string { return "TagWildcard(" + t.TagName + ")" }

func (ExactIngredient) ingredient()        {}
func (MetaWildcardIngredient) ingredient() {}
func (TagWildcardIngredient) ingredient()  {}
