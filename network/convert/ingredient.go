package convert

import (
	"github.com/PIXRA-Network/typeconv/lib/dictionary"
	"github.com/PIXRA-Network/typeconv/lib/recipe"
	"github.com/PIXRA-Network/typeconv/network/protocol"
	"github.com/cockroachdb/errors"
	"math"
)

// CoreRecipeIngredientToNet encodes a recipe ingredient. A nil ingredient is
// the empty slot. Every non-empty wire ingredient has a count of 1.
//
// A meta wildcard whose downgrade leaves (id, 0) unchanged is sent with
// protocol.RecipeInputWildcardMeta. An item that legitimately downgrades to
// the same (id, 0) pair is therefore indistinguishable from a wildcard.
func (c *TypeConverter) CoreRecipeIngredientToNet(ing recipe.Ingredient) (protocol.RecipeIngredient, error) {
	if ing == nil {
		return protocol.RecipeIngredient{}, nil
	}

	var descriptor protocol.ItemDescriptor
	switch in := ing.(type) {
	case recipe.MetaWildcardIngredient:
		name, meta := c.downgrader.Downgrade(in.ItemID, 0)
		id, ok := c.itemTypes.FromStringID(name)
		if !ok {
			return protocol.RecipeIngredient{}, conversionError(nil, "item %s has no network id", name)
		}
		if !fitsInt16(id) {
			return protocol.RecipeIngredient{}, conversionError(nil, "network id %d of %s does not fit a recipe descriptor", id, name)
		}
		wireMeta := int16(meta)
		if name == in.ItemID && meta == 0 {
			wireMeta = protocol.RecipeInputWildcardMeta
		}
		descriptor = protocol.IntIDMetaItemDescriptor{ID: int16(id), Meta: wireMeta}

	case recipe.ExactIngredient:
		it := in.Item()
		if it == nil {
			return protocol.RecipeIngredient{}, conversionError(nil, "exact ingredient without item")
		}
		nid, ok := c.translator.ToNetworkID(it)
		if !ok {
			return protocol.RecipeIngredient{}, conversionError(nil, "item %s has no network id", it)
		}
		meta := int(nid.Meta)
		if nid.IsBlock() {
			meta, ok = c.blockStates.MetaFromStateID(nid.BlockRuntimeID)
			if !ok {
				panic(errors.AssertionFailedf("protocol %d: block state %d has no meta value", c.protocolID, nid.BlockRuntimeID))
			}
		}
		if !fitsInt16(nid.ID) {
			return protocol.RecipeIngredient{}, conversionError(nil, "network id %d of %s does not fit a recipe descriptor", nid.ID, it)
		}
		descriptor = protocol.IntIDMetaItemDescriptor{ID: int16(nid.ID), Meta: int16(meta)}

	case recipe.TagWildcardIngredient:
		descriptor = protocol.TagItemDescriptor{Tag: in.TagName}

	default:
		panic(errors.AssertionFailedf("unsupported recipe ingredient %T", ing))
	}

	c.metrics.ingredientsEncoded.Inc()
	return protocol.RecipeIngredient{Descriptor: descriptor, Count: 1}, nil
}

// NetRecipeIngredientToCore decodes a recipe ingredient. The empty wire
// ingredient decodes to nil.
func (c *TypeConverter) NetRecipeIngredientToCore(ing protocol.RecipeIngredient) (recipe.Ingredient, error) {
	out, err := c.netRecipeIngredientToCore(ing)
	if err != nil {
		c.metrics.decodeFailures.Inc()
		return nil, err
	}
	if out != nil {
		c.metrics.ingredientsDecoded.Inc()
	}
	return out, nil
}

func (c *TypeConverter) netRecipeIngredientToCore(ing protocol.RecipeIngredient) (recipe.Ingredient, error) {
	var (
		name string
		meta int
	)
	switch d := ing.Descriptor.(type) {
	case nil:
		return nil, nil
	case protocol.TagItemDescriptor:
		return recipe.TagWildcardIngredient{TagName: d.Tag}, nil
	case protocol.IntIDMetaItemDescriptor:
		var ok bool
		if name, ok = c.itemTypes.FromIntID(int32(d.ID)); !ok {
			return nil, conversionError(nil, "unknown item network id %d", d.ID)
		}
		meta = int(d.Meta)
	case protocol.StringIDMetaItemDescriptor:
		name, meta = d.ID, int(d.Meta)
	default:
		return nil, conversionError(nil, "unsupported recipe ingredient descriptor %s", d)
	}

	if meta == int(protocol.RecipeInputWildcardMeta) {
		return recipe.MetaWildcardIngredient{ItemID: name}, nil
	}

	runtimeID := dictionary.NoBlockRuntimeID
	if blockID, ok := c.blockItems.LookupBlockID(name); ok {
		if rid, ok := c.blockStates.LookupStateIDFromIDMeta(blockID, meta); ok {
			// the runtime id carries the state
			runtimeID, meta = rid, 0
		}
	}

	id, ok := c.itemTypes.FromStringID(name)
	if !ok {
		return nil, conversionError(nil, "item %s has no network id", name)
	}
	it, err := c.translator.FromNetworkID(id, int32(meta), runtimeID)
	if err != nil {
		return nil, conversionError(err, "recipe ingredient %s", name)
	}
	exact, err := recipe.NewExact(it)
	if err != nil {
		return nil, conversionError(err, "recipe ingredient %s", name)
	}
	return exact, nil
}

func fitsInt16(v int32) bool {
	return v >= math.MinInt16 && v <= math.MaxInt16
}
