package nbt

import (
	"bytes"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"strings"
	"testing"
)

// sampleTree builds a tree that uses every tag type
func sampleTree(t *testing.T) *Compound {
	t.Helper()
	lore, err := ListOf(String("line one"), String("line two"))
	if err != nil {
		t.Fatalf("ListOf: %v", err)
	}
	display := NewCompound().SetString("Name", "Sword of Testing").Set("Lore", lore)
	ench, err := ListOf(
		NewCompound().SetShort("id", 9).SetShort("lvl", 3),
		NewCompound().SetShort("id", 17).SetShort("lvl", 1),
	)
	if err != nil {
		t.Fatalf("ListOf: %v", err)
	}
	return NewCompound().
		Set("display", display).
		Set("ench", ench).
		SetByte("Unbreakable", 1).
		SetInt("RepairCost", 4).
		SetLong("Stamp", -1).
		Set("Speed", Float(0.5)).
		Set("Weight", Double(12.75)).
		SetByteArray("Blob", []byte{0, 1, 2}).
		Set("Ints", IntArray{1, -2, 3}).
		Set("Longs", LongArray{1 << 40}).
		Set("Empty", NewList())
}

func TestMarshalRoundTrip(t *testing.T) {
	tree := sampleTree(t)

	data := Marshal(tree)
	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(tree, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if !bytes.Equal(Marshal(decoded), data) {
		t.Fatalf("re-encoding produced different bytes")
	}
}

// TestMarshalDeterministic checks that insertion order, not map order, drives the encoding
func TestMarshalDeterministic(t *testing.T) {
	first := Marshal(sampleTree(t))
	for i := 0; i < 20; i++ {
		if !bytes.Equal(Marshal(sampleTree(t)), first) {
			t.Fatalf("encoding is not deterministic")
		}
	}
}

func TestMarshalLayout(t *testing.T) {
	got := Marshal(NewCompound().SetShort("a", 0x0102))
	want := []byte{
		byte(TagCompound), 0, 0, // root type + empty name
		byte(TagShort), 1, 0, 'a', 0x02, 0x01, // short "a"
		byte(TagEnd),
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("layout mismatch:\n got %x\nwant %x", got, want)
	}
}

func TestCloneIsDeep(t *testing.T) {
	tree := sampleTree(t)
	clone := tree.Copy()

	display, _ := clone.GetCompound("display")
	display.SetString("Name", "changed")
	clone.Remove("Unbreakable")
	clone.Get("Blob").(ByteArray)[0] = 42

	orig, _ := tree.GetCompound("display")
	if name, _ := orig.GetString("Name"); name != "Sword of Testing" {
		t.Fatalf("clone aliased nested compound, name = %q", name)
	}
	if !tree.Has("Unbreakable") {
		t.Fatalf("clone aliased entry list")
	}
	if tree.Get("Blob").(ByteArray)[0] != 0 {
		t.Fatalf("clone aliased byte array")
	}
}

func TestCompoundOrderAndReplace(t *testing.T) {
	c := NewCompound().SetInt("a", 1).SetInt("b", 2).SetInt("c", 3)
	c.SetInt("a", 10)
	c.Remove("b")
	if diff := cmp.Diff([]string{"a", "c"}, c.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if c.Remove("missing") {
		t.Fatalf("removing a missing entry reported true")
	}
}

func TestEqualIgnoresOrder(t *testing.T) {
	a := NewCompound().SetInt("x", 1).SetString("y", "z")
	b := NewCompound().SetString("y", "z").SetInt("x", 1)
	if !a.Equal(b) {
		t.Fatalf("expected compounds to be equal")
	}
	b.SetInt("x", 2)
	if a.Equal(b) {
		t.Fatalf("expected compounds to differ")
	}
	if Int(1).Equal(Long(1)) {
		t.Fatalf("tags of different types must not be equal")
	}
}

func TestListHomogeneous(t *testing.T) {
	l := NewList()
	if err := l.Push(Int(1)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := l.Push(String("x")); err == nil {
		t.Fatalf("expected mixed list push to fail")
	}
	if _, err := ListOf(Int(1), Long(2)); err == nil {
		t.Fatalf("expected ListOf with mixed types to fail")
	}
}

func TestTypedAccessors(t *testing.T) {
	c := NewCompound().SetString("s", "v").SetInt("i", 1)

	if _, err := c.GetCompound("s"); err == nil {
		t.Fatalf("expected type error")
	} else {
		var typeErr *UnexpectedTypeError
		if !errors.As(err, &typeErr) || typeErr.Want != TagCompound || typeErr.Got != TagString {
			t.Fatalf("unexpected error %v", err)
		}
	}
	if v, err := c.GetCompound("absent"); v != nil || err != nil {
		t.Fatalf("absent entry should give nil, nil; got %v, %v", v, err)
	}
	ints, _ := ListOf(Int(1))
	c.Set("ints", ints)
	if _, err := c.GetList("ints", TagCompound); err == nil {
		t.Fatalf("expected element type error")
	}
	c.Set("empty", NewList())
	if _, err := c.GetList("empty", TagCompound); err != nil {
		t.Fatalf("empty lists match any element type: %v", err)
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	valid := Marshal(sampleTree(t))

	testCases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not a compound root", []byte{byte(TagInt), 0, 0, 1, 0, 0, 0}},
		{"truncated", valid[:len(valid)-3]},
		{"trailing data", append(append([]byte(nil), valid...), 0)},
		{"unknown tag", []byte{byte(TagCompound), 0, 0, 99, 0, 0}},
		{"negative list length", []byte{byte(TagCompound), 0, 0, byte(TagList), 0, 0, byte(TagInt), 0xff, 0xff, 0xff, 0xff, 0}},
		{"huge byte array", []byte{byte(TagCompound), 0, 0, byte(TagByteArray), 0, 0, 0xff, 0xff, 0xff, 0x7f, 0}},
		{"list of end", []byte{byte(TagCompound), 0, 0, byte(TagList), 0, 0, byte(TagEnd), 1, 0, 0, 0, 0}},
		{"duplicate entry", []byte{byte(TagCompound), 0, 0, byte(TagByte), 1, 0, 'a', 1, byte(TagByte), 1, 0, 'a', 2, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unmarshal(tc.data)
			if err == nil {
				t.Fatalf("expected decode error")
			}
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("error %v does not match ErrDecode", err)
			}
		})
	}
}

func TestUnmarshalDepthLimit(t *testing.T) {
	// root -> (MaxDepth+1) nested compounds named "n"
	var data []byte
	data = append(data, byte(TagCompound), 0, 0)
	for i := 0; i <= MaxDepth+1; i++ {
		data = append(data, byte(TagCompound), 1, 0, 'n')
	}
	for i := 0; i <= MaxDepth+2; i++ {
		data = append(data, byte(TagEnd))
	}
	if _, err := Unmarshal(data); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected depth error, got %v", err)
	}
}

func TestCheckLengths(t *testing.T) {
	long := String(strings.Repeat("s", 70001))
	nested, _ := ListOf(NewCompound().Set("deep", long))

	tests := []struct {
		name string
		tag  Tag
		ok   bool
	}{
		{"sample tree", sampleTree(t), true},
		{"limit value", String(strings.Repeat("s", 65535)), true},
		{"long value", long, false},
		{"long name", NewCompound().SetInt(string(long), 1), false},
		{"long value in list", NewCompound().Set("list", nested), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLengths(tt.tag)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrStringTooLong) {
				t.Fatalf("expected ErrStringTooLong, got %v", err)
			}
		})
	}
}
