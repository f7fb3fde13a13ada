// Package protocol defines the wire-level types the type converters produce
// and consume: item stacks with their opaque extra data, recipe ingredient
// descriptors, game modes and skin data.
//
// The types here carry no knowledge of the server's domain model; they only
// describe what goes over the network for one protocol version. Translating
// between them and the domain types is the job of network/convert.
//
// Key Components:
//
//   - ItemStack: id, meta, count, block runtime id and the raw extra data
//     bytes of one item stack.
//
//   - ItemStackExtraData / ItemStackExtraDataShield: the two shapes of the
//     extra data payload and their little-endian codec.
//
//   - ItemDescriptor: closed set of recipe ingredient descriptors.
//
//   - GameMode: the protocol's game mode enumeration.
//
// Thread Safety:
//
//	All types are plain values. The codecs are stateless.
package protocol
