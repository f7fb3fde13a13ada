// Package dictionary provides the per-protocol id dictionaries consumed by
// the type converters: item type ids, block states, the block item map, the
// id/meta downgrader and the item translator built on top of them.
//
// The converters only depend on the interfaces in interface.go. The Palette
// type is a file-backed implementation of all of them, loaded from one YAML
// document per protocol version (optionally zstd compressed):
//
//	protocol: 671
//	item_types:
//	  - {name: "minecraft:shield", id: 355}
//	block_states:
//	  - {block: "minecraft:wool", meta: 14, runtime_id: 5012}
//	block_items:
//	  "minecraft:wool": "minecraft:wool"
//	downgrades:
//	  - {from: "minecraft:red_wool", to: "minecraft:wool", to_meta: 14}
//
// Usage:
//
//	loader := dictionary.DirLoader("data/palettes")
//	set, err := loader(671)
//	// ... hand set to convert.NewTypeConverter or use loader in convert.NewRegistry
package dictionary
