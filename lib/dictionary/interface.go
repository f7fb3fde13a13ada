package dictionary

import (
	"github.com/PIXRA-Network/typeconv/lib/item"
)

// NoBlockRuntimeID is the block runtime id of items that are not blocks
const NoBlockRuntimeID int32 = 0

// ItemTypeDictionary translates item type ids between string and network form
type ItemTypeDictionary interface {
	FromStringID(id string) (int32, bool)
	FromIntID(id int32) (string, bool)
}

// BlockStateDictionary translates block runtime ids to and from (block id, meta)
type BlockStateDictionary interface {
	LookupStateIDFromIDMeta(blockID string, meta int) (int32, bool)
	IDMetaFromStateID(runtimeID int32) (blockID string, meta int, ok bool)
	// MetaFromStateID returns the legacy meta value declared for a state
	MetaFromStateID(runtimeID int32) (int, bool)
}

// BlockItemIDMap maps the id of a block item to the id of its block
type BlockItemIDMap interface {
	LookupBlockID(itemID string) (string, bool)
}

// ItemIDMetaDowngrader maps a current (id, meta) pair to the protocol's
// older equivalent. Unknown pairs are returned unchanged.
type ItemIDMetaDowngrader interface {
	Downgrade(id string, meta int) (string, int)
}

// ItemIDMetaUpgrader is the inverse of ItemIDMetaDowngrader
type ItemIDMetaUpgrader interface {
	Upgrade(id string, meta int) (string, int)
}

// NetworkID is the wire identity of an item
type NetworkID struct {
	ID             int32
	Meta           int32
	BlockRuntimeID int32
}

// IsBlock reports whether the identity carries a block runtime id
func (n NetworkID) IsBlock() bool {
	return n.BlockRuntimeID != NoBlockRuntimeID
}

// ItemTranslator converts domain items to their wire identity and back
type ItemTranslator interface {
	// ToNetworkID returns false if the item has no representation in this protocol
	ToNetworkID(it *item.Item) (NetworkID, bool)
	// FromNetworkID builds an item (count 1) from a wire identity
	FromNetworkID(id, meta, blockRuntimeID int32) (*item.Item, error)
}

// Set bundles the dictionaries of one protocol version
type Set struct {
	ProtocolID  int
	ItemTypes   ItemTypeDictionary
	BlockStates BlockStateDictionary
	BlockItems  BlockItemIDMap
	Downgrader  ItemIDMetaDowngrader
	Translator  ItemTranslator
}

// Loader returns the dictionaries of a protocol version
type Loader func(protocolID int) (Set, error)
