// Package nbt implements the tree-structured auxiliary tag format attached to
// items ("named binary tags") and its deterministic little-endian encoding.
//
// The package focuses on:
//   - A closed set of tag types (Byte ... LongArray, List, Compound)
//   - Value semantics: every tag can be deep-copied with Clone, so callers that
//     need to mutate a tree never alias somebody else's data
//   - Deterministic serialization: compounds keep insertion order, so the same
//     tree always produces the same bytes (required for integrity hashing)
//
// Key Components:
//
//   - Tag: sealed interface implemented by all tag types of this package.
//
//   - Compound: insertion-ordered map of named tags with typed accessors that
//     return an *UnexpectedTypeError instead of silently coercing values.
//
//   - List: homogeneous list of tags; the element type is fixed by the first
//     element pushed.
//
//   - Marshal / Unmarshal: little-endian encoding of a root compound, as used
//     by item extra data on the wire and for hashing. Malformed input yields a
//     *DecodeError (matching ErrDecode).
//
// Thread Safety:
//
//	Trees are plain values without internal locking. Concurrent reads are
//	safe; mutation requires exclusive ownership, which Clone provides.
package nbt
