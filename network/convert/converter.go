package convert

import (
	"github.com/PIXRA-Network/typeconv/lib/dictionary"
	"github.com/VictoriaMetrics/metrics"
	"github.com/cockroachdb/errors"
	"github.com/lni/dragonboat/v4/logger"
	"sync/atomic"
)

var Logger = logger.GetLogger("convert")

const (
	// ShieldID is the item whose extra data carries a blocking tick
	ShieldID = "minecraft:shield"
	// FallbackItemID is shown in place of items unknown to a protocol version
	FallbackItemID = "minecraft:info_update"
)

// TypeConverter converts between domain and wire types for one protocol version
type TypeConverter struct {
	protocolID int

	itemTypes   dictionary.ItemTypeDictionary
	blockStates dictionary.BlockStateDictionary
	blockItems  dictionary.BlockItemIDMap
	downgrader  dictionary.ItemIDMetaDowngrader
	translator  dictionary.ItemTranslator

	shieldID    int32
	skinAdapter SkinAdapter

	sealed  atomic.Bool
	metrics *converterMetrics
}

// New creates a converter from the dictionaries of one protocol version. The
// returned converter is not sealed; converters handed out by a Registry are.
func New(set dictionary.Set) (*TypeConverter, error) {
	return newTypeConverter(set, metrics.NewSet())
}

func newTypeConverter(set dictionary.Set, ms *metrics.Set) (*TypeConverter, error) {
	switch {
	case set.ItemTypes == nil:
		return nil, errors.Newf("protocol %d: missing item type dictionary", set.ProtocolID)
	case set.BlockStates == nil:
		return nil, errors.Newf("protocol %d: missing block state dictionary", set.ProtocolID)
	case set.BlockItems == nil:
		return nil, errors.Newf("protocol %d: missing block item map", set.ProtocolID)
	case set.Downgrader == nil:
		return nil, errors.Newf("protocol %d: missing item downgrader", set.ProtocolID)
	case set.Translator == nil:
		return nil, errors.Newf("protocol %d: missing item translator", set.ProtocolID)
	}

	shieldID, ok := set.ItemTypes.FromStringID(ShieldID)
	if !ok {
		return nil, errors.Newf("protocol %d: item type dictionary has no %s", set.ProtocolID, ShieldID)
	}

	return &TypeConverter{
		protocolID:  set.ProtocolID,
		itemTypes:   set.ItemTypes,
		blockStates: set.BlockStates,
		blockItems:  set.BlockItems,
		downgrader:  set.Downgrader,
		translator:  set.Translator,
		shieldID:    shieldID,
		skinAdapter: LegacySkinAdapter{},
		metrics:     newConverterMetrics(ms, set.ProtocolID),
	}, nil
}

func (c *TypeConverter) ProtocolID() int { return c.protocolID }

func (c *TypeConverter) ItemTypeDictionary() dictionary.ItemTypeDictionary { return c.itemTypes }

func (c *TypeConverter) BlockStateDictionary() dictionary.BlockStateDictionary { return c.blockStates }

func (c *TypeConverter) ItemTranslator() dictionary.ItemTranslator { return c.translator }

// ShieldNetworkID returns the numeric id of the shield in this protocol
func (c *TypeConverter) ShieldNetworkID() int32 { return c.shieldID }

func (c *TypeConverter) SkinAdapter() SkinAdapter { return c.skinAdapter }

// SetSkinAdapter replaces the skin adapter. It is only allowed before the
// converter is published, i.e. from a creation hook.
func (c *TypeConverter) SetSkinAdapter(a SkinAdapter) error {
	if c.sealed.Load() {
		return errors.Wrapf(ErrConverterSealed, "protocol %d", c.protocolID)
	}
	if a == nil {
		return errors.New("skin adapter must not be nil")
	}
	c.skinAdapter = a
	return nil
}

// seal makes the converter read-only
func (c *TypeConverter) seal() {
	c.sealed.Store(true)
}
