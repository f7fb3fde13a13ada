package protocol

import (
	"bytes"
	"github.com/PIXRA-Network/typeconv/lib/encoding"
	"github.com/PIXRA-Network/typeconv/lib/nbt"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"testing"
)

func sampleTag() *nbt.Compound {
	return nbt.NewCompound().
		Set("display", nbt.NewCompound().SetString("Name", "Bob")).
		SetShort("Damage", 3)
}

func TestExtraDataRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data ItemStackExtraData
	}{
		{"empty", ItemStackExtraData{}},
		{"tag only", ItemStackExtraData{Nbt: sampleTag()}},
		{"place and destroy", ItemStackExtraData{
			CanPlaceOn: []string{"minecraft:stone", "minecraft:dirt"},
			CanDestroy: []string{"minecraft:glass"},
		}},
		{"all", ItemStackExtraData{
			Nbt:        sampleTag(),
			CanPlaceOn: []string{"minecraft:stone"},
			CanDestroy: []string{"minecraft:glass"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := EncodeExtraData(tt.data)
			got, err := ReadItemStackExtraData(raw)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if diff := cmp.Diff(tt.data, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShieldExtraDataRoundTrip(t *testing.T) {
	want := ItemStackExtraDataShield{
		ItemStackExtraData: ItemStackExtraData{Nbt: sampleTag()},
		BlockingTick:       42,
	}
	raw := EncodeExtraData(want)
	got, err := ReadItemStackExtraDataShield(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// the generic reader must refuse the trailing blocking tick
	if _, err := ReadItemStackExtraData(raw); !errors.Is(err, ErrPacketDecode) {
		t.Errorf("expected ErrPacketDecode for trailing tick, got %v", err)
	}
}

func TestExtraDataLayout(t *testing.T) {
	raw := EncodeExtraData(ItemStackExtraData{})
	want := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(raw, want) {
		t.Errorf("empty payload = %v, want %v", raw, want)
	}

	raw = EncodeExtraData(ItemStackExtraData{Nbt: nbt.NewCompound()})
	if raw[0] != 0xff || raw[1] != 0xff || raw[2] != 1 {
		t.Errorf("tag marker = %v, want [255 255 1]", raw[:3])
	}
}

func TestExtraDataMalformed(t *testing.T) {
	withVersion := func(v byte) []byte {
		w := encoding.NewWriter(8)
		w.WriteUint16(0xffff)
		_ = w.WriteByte(v)
		nbt.WriteRoot(w, "", nbt.NewCompound())
		w.WriteInt32(0)
		w.WriteInt32(0)
		return w.Bytes()
	}

	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty input", nil},
		{"fake tag length", []byte{5, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"bad tag version", withVersion(2)},
		{"negative count", []byte{0, 0, 0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0}},
		{"count beyond input", []byte{0, 0, 9, 0, 0, 0, 0, 0}},
		{"truncated string", []byte{0, 0, 1, 0, 0, 0, 4, 0, 'a', 'b'}},
		{"trailing byte", []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadItemStackExtraData(tt.raw); !errors.Is(err, ErrPacketDecode) {
				t.Errorf("expected ErrPacketDecode, got %v", err)
			}
		})
	}

	if _, err := ReadItemStackExtraData(withVersion(1)); err != nil {
		t.Errorf("version 1 should decode, got %v", err)
	}
}

func TestShieldMissingTick(t *testing.T) {
	raw := EncodeExtraData(ItemStackExtraData{})
	if _, err := ReadItemStackExtraDataShield(raw); !errors.Is(err, ErrPacketDecode) {
		t.Errorf("expected ErrPacketDecode, got %v", err)
	}
}

func TestItemStackEqual(t *testing.T) {
	a := ItemStack{ID: 1, Meta: 2, Count: 3, RawExtraData: []byte{1}}
	b := a
	b.RawExtraData = []byte{1}
	if !a.Equal(b) {
		t.Error("expected equal stacks")
	}
	b.RawExtraData = []byte{2}
	if a.Equal(b) {
		t.Error("extra data must be compared")
	}
	if !NullItemStack().IsNull() || a.IsNull() {
		t.Error("IsNull mismatch")
	}
}

func TestRecipeIngredientEmpty(t *testing.T) {
	if !(RecipeIngredient{}).IsEmpty() {
		t.Error("zero ingredient should be empty")
	}
	r := RecipeIngredient{Descriptor: TagItemDescriptor{Tag: "minecraft:planks"}, Count: 1}
	if r.IsEmpty() {
		t.Error("tag ingredient should not be empty")
	}
	if r.String() != "RecipeIngredient(Tag(minecraft:planks) x1)" {
		t.Errorf("unexpected string %q", r.String())
	}
}
