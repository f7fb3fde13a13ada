// Package encoding provides the little-endian byte buffers used by the wire
// codecs of the type conversion layer. Both the tag serializer (lib/nbt) and
// the item stack extra data codec (network/protocol) are built on top of it.
//
// Key Components:
//
//   - Writer: append-only buffer with fixed-width little-endian writers and
//     length-prefixed string helpers.
//
//   - Reader: cursor over a byte slice that fails with a descriptive error
//     ("data too short for ...") instead of panicking when the input ends early.
//
// Thread Safety:
//
//	Writers and Readers are not safe for concurrent use. They are cheap to
//	create and are meant to live for a single encode or decode call.
package encoding
