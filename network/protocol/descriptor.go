package protocol

import "fmt"

// RecipeInputWildcardMeta is the meta value that matches any meta of an item id
const RecipeInputWildcardMeta int16 = 0x7fff

// ItemDescriptor describes which items a recipe slot accepts. The set of
// implementations is closed.
type ItemDescriptor interface {
	fmt.Stringer
	descriptor()
}

// IntIDMetaItemDescriptor matches a numeric item id and meta
type IntIDMetaItemDescriptor struct {
	ID   int16
	Meta int16
}

// StringIDMetaItemDescriptor matches a string item id and meta
type StringIDMetaItemDescriptor struct {
	ID   string
	Meta int16
}

// TagItemDescriptor matches every item carrying the named item tag
type TagItemDescriptor struct {
	Tag string
}

// MolangItemDescriptor matches items by a molang expression
type MolangItemDescriptor struct {
	Expression string
	Version    byte
}

// ComplexAliasItemDescriptor matches items by an alias name
type ComplexAliasItemDescriptor struct {
	Name string
}

func (d IntIDMetaItemDescriptor) String() string {
	return fmt.Sprintf("IntIDMeta(%d:%d)", d.ID, d.Meta)
}

func (d StringIDMetaItemDescriptor) String() string {
	return fmt.Sprintf("StringIDMeta(%s:%d)", d.ID, d.Meta)
}

func (d TagItemDescriptor) String() string { return "Tag(" + d.Tag + ")" }

func (d MolangItemDescriptor) String() string {
	return fmt.Sprintf("Molang(%q v%d)", d.Expression, d.Version)
}

func (d ComplexAliasItemDescriptor) String() string { return "ComplexAlias(" + d.Name + ")" }

func (IntIDMetaItemDescriptor) descriptor()    {}
func (StringIDMetaItemDescriptor) descriptor() {}
func (TagItemDescriptor) descriptor()          {}
func (MolangItemDescriptor) descriptor()       {}
func (ComplexAliasItemDescriptor) descriptor() {}

// RecipeIngredient is one recipe slot as sent over the network. A nil
// Descriptor is the empty ingredient.
type RecipeIngredient struct {
	Descriptor ItemDescriptor
	Count      int32
}

// IsEmpty reports whether the ingredient accepts nothing
func (r RecipeIngredient) IsEmpty() bool {
	return r.Descriptor == nil
}

func (r RecipeIngredient) String() string {
	if r.Descriptor == nil {
		return "RecipeIngredient(empty)"
	}
	return fmt.Sprintf("RecipeIngredient(%s x%d)", r.Descriptor, r.Count)
}
