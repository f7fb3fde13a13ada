package convert

import (
	"github.com/PIXRA-Network/typeconv/lib/dictionary"
	"github.com/PIXRA-Network/typeconv/lib/item"
	"testing"
)

func intPtr(v int) *int { return &v }

// testPaletteFile describes a small protocol with block items, a shield, the
// fallback item and two downgrade rules
func testPaletteFile(protocolID int) dictionary.PaletteFile {
	return dictionary.PaletteFile{
		Protocol: protocolID,
		ItemTypes: []dictionary.ItemTypeEntry{
			{Name: "minecraft:stone", ID: 1},
			{Name: "minecraft:wool", ID: 35},
			{Name: "minecraft:chest", ID: 54},
			{Name: "minecraft:info_update", ID: 248},
			{Name: "minecraft:stick", ID: 320},
			{Name: "minecraft:shield", ID: 355},
			{Name: "minecraft:dye", ID: 411},
		},
		BlockStates: []dictionary.BlockStateEntry{
			{Block: "minecraft:stone", Meta: intPtr(0), RuntimeID: 1001},
			{Block: "minecraft:stone", Meta: intPtr(1), RuntimeID: 1002},
			{Block: "minecraft:wool", Meta: intPtr(0), RuntimeID: 2000},
			{Block: "minecraft:wool", Meta: intPtr(14), RuntimeID: 2014},
			{Block: "minecraft:info_update", Meta: intPtr(0), RuntimeID: 3000},
			{Block: "minecraft:chest", Meta: intPtr(0), RuntimeID: 5000},
		},
		BlockItems: map[string]string{
			"minecraft:stone":       "minecraft:stone",
			"minecraft:wool":        "minecraft:wool",
			"minecraft:info_update": "minecraft:info_update",
			"minecraft:chest":       "minecraft:chest",
		},
		Downgrades: []dictionary.DowngradeEntry{
			{From: "minecraft:red_dye", To: "minecraft:dye", ToMeta: intPtr(1)},
			{From: "minecraft:soul_torch", To: "minecraft:torch"},
		},
	}
}

func testPalette(t *testing.T, protocolID int) *dictionary.Palette {
	t.Helper()
	p, err := dictionary.NewPalette(testPaletteFile(protocolID))
	if err != nil {
		t.Fatalf("failed to build test palette: %v", err)
	}
	return p
}

func testConverter(t *testing.T) *TypeConverter {
	t.Helper()
	c, err := New(testPalette(t, 671).Set())
	if err != nil {
		t.Fatalf("failed to create converter: %v", err)
	}
	return c
}

func namedItem(t *testing.T, name string, meta, count int, customName string) *item.Item {
	t.Helper()
	it := item.New(name, meta, count)
	if err := it.SetCustomName(customName); err != nil {
		t.Fatalf("SetCustomName: %v", err)
	}
	return it
}
