// Package item is the minimal domain item model the type conversion layer
// operates on: a string type id, a meta (variant) value, a count and an
// auxiliary tag tree.
//
// Items are mutable and owned by gameplay code. Converters only ever work on
// clones or freshly created items, never on the caller's instance.
//
// Key Components:
//
//   - Item: the item stack itself, with custom name helpers and a structural
//     check of the well-known tag fields (display, Lore, ench) in SetNamedTag.
//
//   - MarshalTag / FromTag: the saved form of an item, used for items nested
//     inside other items (e.g. a shulker box's inventory).
//
//   - StateID: stable numeric identity of (type, meta), used to tell apart
//     items that cannot be represented on the wire.
package item
