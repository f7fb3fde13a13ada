// Package convert translates domain objects (items, recipe ingredients, game
// modes, skins) to the wire types of one protocol version and back.
//
// A TypeConverter bundles the dictionaries of a single protocol version. It is
// immutable once handed out by a Registry and can be used concurrently
// without locking.
//
// Key Components:
//
//   - TypeConverter: item stack, recipe ingredient, game mode and skin
//     conversion for one protocol version.
//
//   - Canonicalize: reduces an item's auxiliary tag to what the client may
//     see, embedding a hash of the original when anything was removed.
//
//   - Registry: creates one TypeConverter per protocol version on first use
//     (single flight), runs creation hooks before publishing it, and groups
//     recipients by converter for broadcasting.
//
// Error Handling:
//
//	Malformed client data and unsupported descriptor variants are reported as
//	*TypeConversionError. Broken dictionaries (for example a fallback item that
//	is not mapped) are internal invariant violations and panic with an
//	assertion failure.
//
// Usage Example:
//
//	reg := convert.NewRegistry(dictionary.DirLoader("data/palettes"))
//	reg.AddCreationHook(func(c *convert.TypeConverter) {
//	    _ = c.SetSkinAdapter(mySkinAdapter{})
//	})
//	conv, err := reg.Get(671)
//	if err != nil {
//	    return err
//	}
//	stack := conv.CoreItemStackToNet(it)
package convert
