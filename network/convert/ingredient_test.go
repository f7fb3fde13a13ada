package convert

import (
	"github.com/PIXRA-Network/typeconv/lib/dictionary"
	"github.com/PIXRA-Network/typeconv/lib/item"
	"github.com/PIXRA-Network/typeconv/lib/recipe"
	"github.com/PIXRA-Network/typeconv/network/protocol"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"testing"
)

func mustExact(t *testing.T, it *item.Item) recipe.ExactIngredient {
	t.Helper()
	e, err := recipe.NewExact(it)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestRecipeIngredientToNet(t *testing.T) {
	c := testConverter(t)

	tests := []struct {
		name string
		in   recipe.Ingredient
		want protocol.RecipeIngredient
	}{
		{"empty slot", nil, protocol.RecipeIngredient{}},
		{"tag wildcard", recipe.TagWildcardIngredient{TagName: "minecraft:planks"},
			protocol.RecipeIngredient{Descriptor: protocol.TagItemDescriptor{Tag: "minecraft:planks"}, Count: 1}},
		{"meta wildcard unchanged by downgrade", recipe.MetaWildcardIngredient{ItemID: "minecraft:stick"},
			protocol.RecipeIngredient{Descriptor: protocol.IntIDMetaItemDescriptor{ID: 320, Meta: protocol.RecipeInputWildcardMeta}, Count: 1}},
		{"meta wildcard changed by downgrade", recipe.MetaWildcardIngredient{ItemID: "minecraft:red_dye"},
			protocol.RecipeIngredient{Descriptor: protocol.IntIDMetaItemDescriptor{ID: 411, Meta: 1}, Count: 1}},
		{"exact item", mustExact(t, item.New("minecraft:stick", 0, 4)),
			protocol.RecipeIngredient{Descriptor: protocol.IntIDMetaItemDescriptor{ID: 320, Meta: 0}, Count: 1}},
		{"exact block uses state meta", mustExact(t, item.New("minecraft:wool", 14, 1)),
			protocol.RecipeIngredient{Descriptor: protocol.IntIDMetaItemDescriptor{ID: 35, Meta: 14}, Count: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.CoreRecipeIngredientToNet(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ingredient mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecipeIngredientFromNet(t *testing.T) {
	c := testConverter(t)

	tests := []struct {
		name string
		in   protocol.RecipeIngredient
		want recipe.Ingredient
	}{
		{"empty slot", protocol.RecipeIngredient{}, nil},
		{"tag", protocol.RecipeIngredient{Descriptor: protocol.TagItemDescriptor{Tag: "minecraft:logs"}, Count: 1},
			recipe.TagWildcardIngredient{TagName: "minecraft:logs"}},
		{"int wildcard", protocol.RecipeIngredient{Descriptor: protocol.IntIDMetaItemDescriptor{ID: 320, Meta: protocol.RecipeInputWildcardMeta}, Count: 1},
			recipe.MetaWildcardIngredient{ItemID: "minecraft:stick"}},
		{"string wildcard", protocol.RecipeIngredient{Descriptor: protocol.StringIDMetaItemDescriptor{ID: "minecraft:dye", Meta: protocol.RecipeInputWildcardMeta}, Count: 1},
			recipe.MetaWildcardIngredient{ItemID: "minecraft:dye"}},
		{"exact item", protocol.RecipeIngredient{Descriptor: protocol.IntIDMetaItemDescriptor{ID: 320, Meta: 0}, Count: 1},
			mustExact(t, item.New("minecraft:stick", 0, 1))},
		{"exact block", protocol.RecipeIngredient{Descriptor: protocol.StringIDMetaItemDescriptor{ID: "minecraft:stone", Meta: 1}, Count: 1},
			mustExact(t, item.New("minecraft:stone", 1, 1))},
		{"upgraded item", protocol.RecipeIngredient{Descriptor: protocol.IntIDMetaItemDescriptor{ID: 411, Meta: 1}, Count: 1},
			mustExact(t, item.New("minecraft:red_dye", 0, 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.NetRecipeIngredientToCore(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil ingredient, got %v", got)
				}
				return
			}
			if got == nil || got.String() != tt.want.String() {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWildcardSentinelRoundTrip(t *testing.T) {
	c := testConverter(t)

	for _, id := range []string{"minecraft:stick", "minecraft:stone", "minecraft:shield"} {
		wire, err := c.CoreRecipeIngredientToNet(recipe.MetaWildcardIngredient{ItemID: id})
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		d, ok := wire.Descriptor.(protocol.IntIDMetaItemDescriptor)
		if !ok || d.Meta != protocol.RecipeInputWildcardMeta {
			t.Errorf("%s: expected wildcard meta, got %v", id, wire)
		}
		back, err := c.NetRecipeIngredientToCore(wire)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if diff := cmp.Diff(recipe.Ingredient(recipe.MetaWildcardIngredient{ItemID: id}), back); diff != "" {
			t.Errorf("%s: round trip mismatch (-want +got):\n%s", id, diff)
		}
	}
}

func TestRecipeIngredientErrors(t *testing.T) {
	c := testConverter(t)

	decode := map[string]protocol.RecipeIngredient{
		"molang":         {Descriptor: protocol.MolangItemDescriptor{Expression: "q.any_tag('x')", Version: 1}, Count: 1},
		"complex alias":  {Descriptor: protocol.ComplexAliasItemDescriptor{Name: "planks"}, Count: 1},
		"unknown int id": {Descriptor: protocol.IntIDMetaItemDescriptor{ID: 9999}, Count: 1},
		"unknown string": {Descriptor: protocol.StringIDMetaItemDescriptor{ID: "minecraft:nope"}, Count: 1},
	}
	for name, in := range decode {
		t.Run(name, func(t *testing.T) {
			_, err := c.NetRecipeIngredientToCore(in)
			var convErr *TypeConversionError
			if !errors.As(err, &convErr) {
				t.Errorf("expected *TypeConversionError, got %v", err)
			}
		})
	}

	encode := map[string]recipe.Ingredient{
		"unmapped exact":    mustExact(t, item.New("minecraft:nope", 0, 1)),
		"unmapped wildcard": recipe.MetaWildcardIngredient{ItemID: "minecraft:soul_torch"},
		"zero exact":        recipe.ExactIngredient{},
	}
	for name, in := range encode {
		t.Run(name, func(t *testing.T) {
			_, err := c.CoreRecipeIngredientToNet(in)
			var convErr *TypeConversionError
			if !errors.As(err, &convErr) {
				t.Errorf("expected *TypeConversionError, got %v", err)
			}
		})
	}
}

// wideItemIDs moves every item above the 16 bit id range
type wideItemIDs struct {
	dictionary.ItemTypeDictionary
}

func (w wideItemIDs) FromStringID(id string) (int32, bool) {
	v, ok := w.ItemTypeDictionary.FromStringID(id)
	return v + 40000, ok
}

type wideTranslator struct {
	dictionary.ItemTranslator
}

func (w wideTranslator) ToNetworkID(it *item.Item) (dictionary.NetworkID, bool) {
	nid, ok := w.ItemTranslator.ToNetworkID(it)
	nid.ID += 40000
	return nid, ok
}

func TestIngredientNetworkIDOutOfRange(t *testing.T) {
	set := testPalette(t, 671).Set()
	set.ItemTypes = wideItemIDs{set.ItemTypes}
	set.Translator = wideTranslator{set.Translator}
	c, err := New(set)
	if err != nil {
		t.Fatal(err)
	}

	for _, in := range []recipe.Ingredient{
		recipe.MetaWildcardIngredient{ItemID: "minecraft:stick"},
		mustExact(t, item.New("minecraft:stick", 0, 1)),
	} {
		_, err := c.CoreRecipeIngredientToNet(in)
		var convErr *TypeConversionError
		if !errors.As(err, &convErr) {
			t.Errorf("%s: expected *TypeConversionError, got %v", in, err)
		}
	}
}

// metaLessStates hides the meta of every block state
type metaLessStates struct {
	dictionary.BlockStateDictionary
}

func (metaLessStates) MetaFromStateID(int32) (int, bool) { return 0, false }

func TestExactBlockWithoutMetaPanics(t *testing.T) {
	set := testPalette(t, 671).Set()
	set.BlockStates = metaLessStates{set.BlockStates}
	c, err := New(set)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.HasAssertionFailure(err) {
			t.Errorf("expected assertion failure panic, got %v", r)
		}
	}()
	_, _ = c.CoreRecipeIngredientToNet(mustExact(t, item.New("minecraft:stone", 0, 1)))
}
