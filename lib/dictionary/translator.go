package dictionary

import (
	"github.com/PIXRA-Network/typeconv/lib/item"
	"github.com/cockroachdb/errors"
)

// itemTranslator implements ItemTranslator on top of the lookup dictionaries
type itemTranslator struct {
	types      ItemTypeDictionary
	blocks     BlockStateDictionary
	blockItems BlockItemIDMap
	downgrader ItemIDMetaDowngrader
	upgrader   ItemIDMetaUpgrader
}

// NewItemTranslator creates an item translator. upgrader may be nil, in which
// case ids received from the network are used as they are.
func NewItemTranslator(
	types ItemTypeDictionary,
	blocks BlockStateDictionary,
	blockItems BlockItemIDMap,
	downgrader ItemIDMetaDowngrader,
	upgrader ItemIDMetaUpgrader,
) ItemTranslator {
	return &itemTranslator{
		types:      types,
		blocks:     blocks,
		blockItems: blockItems,
		downgrader: downgrader,
		upgrader:   upgrader,
	}
}

func (t *itemTranslator) ToNetworkID(it *item.Item) (NetworkID, bool) {
	// Block items: the state lives in the runtime id, the wire meta is 0
	if blockID, ok := t.blockItems.LookupBlockID(it.Name()); ok {
		runtimeID, ok := t.blocks.LookupStateIDFromIDMeta(blockID, it.Meta())
		if !ok {
			return NetworkID{}, false
		}
		id, ok := t.types.FromStringID(it.Name())
		if !ok {
			return NetworkID{}, false
		}
		return NetworkID{ID: id, Meta: 0, BlockRuntimeID: runtimeID}, true
	}

	name, meta := t.downgrader.Downgrade(it.Name(), it.Meta())
	id, ok := t.types.FromStringID(name)
	if !ok {
		return NetworkID{}, false
	}
	return NetworkID{ID: id, Meta: int32(meta), BlockRuntimeID: NoBlockRuntimeID}, true
}

func (t *itemTranslator) FromNetworkID(id, meta, blockRuntimeID int32) (*item.Item, error) {
	name, ok := t.types.FromIntID(id)
	if !ok {
		return nil, errors.Newf("unknown item network id %d", id)
	}

	if blockRuntimeID != NoBlockRuntimeID {
		blockID, stateMeta, ok := t.blocks.IDMetaFromStateID(blockRuntimeID)
		if !ok {
			return nil, errors.Newf("unknown block runtime id %d", blockRuntimeID)
		}
		itemBlockID, ok := t.blockItems.LookupBlockID(name)
		if !ok || itemBlockID != blockID {
			return nil, errors.Newf("block runtime id %d (%s) does not belong to item %s", blockRuntimeID, blockID, name)
		}
		return item.New(name, stateMeta, 1), nil
	}

	m := int(meta)
	if t.upgrader != nil {
		name, m = t.upgrader.Upgrade(name, m)
	}
	return item.New(name, m, 1), nil
}
