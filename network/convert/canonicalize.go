package convert

import (
	"crypto/sha256"
	"github.com/PIXRA-Network/typeconv/lib/item"
	"github.com/PIXRA-Network/typeconv/lib/nbt"
)

// Reserved tag names added by the converter
const (
	// IDTag carries the state id of items shown as the fallback item
	IDTag = "___Id___"
	// FullNbtHashTag carries the SHA-256 of the tag before anything was stripped
	FullNbtHashTag = "___FullNbtHash___"
)

// Canonicalize returns a copy of original reduced to the data a client may
// see. Block entity data is removed and contained items are reduced to their
// custom names. When anything was removed the copy carries the SHA-256 of the
// serialized original under FullNbtHashTag so that items differing only in
// stripped data do not stack on the client. original is never modified.
func Canonicalize(original *nbt.Compound) *nbt.Compound {
	out, _ := canonicalize(original)
	return out
}

func canonicalize(original *nbt.Compound) (*nbt.Compound, bool) {
	out := original.Copy()

	// evaluate both, stripping contained items must not be short circuited
	containedStripped := stripContainedItems(out)
	blockEntityStripped := out.Remove(item.TagBlockEntity)

	if containedStripped || blockEntityStripped {
		sum := sha256.Sum256(nbt.Marshal(original))
		out.SetByteArray(FullNbtHashTag, sum[:])
		return out, true
	}
	return out, false
}

// stripContainedItems reduces every entry of the contained items list to its
// custom name. Entries that do not decode as items are dropped. A list that is
// already reduced is left alone so that repeated calls are stable.
func stripContainedItems(tag *nbt.Compound) bool {
	list, err := tag.GetList(item.TagItems, nbt.TagCompound)
	if err != nil || list == nil || list.Len() == 0 {
		return false
	}

	reduced := nbt.NewList()
	for i, entry := range list.All() {
		contained, ok := entry.(*nbt.Compound)
		if !ok {
			continue
		}
		it, slot, err := item.FromTag(contained)
		if err != nil {
			Logger.Debugf("dropping contained item %d: %v", i, err)
			continue
		}
		name := it.CustomName()
		it.ClearNamedTag()
		// name was read from a valid tag, so it fits
		_ = it.SetCustomName(name)
		// every entry is a compound, so the element type always matches
		_ = reduced.Push(it.MarshalTag(slot))
	}

	if reduced.Equal(list) {
		return false
	}
	tag.Set(item.TagItems, reduced)
	return true
}
