package convert

import (
	"github.com/PIXRA-Network/typeconv/lib/item"
	"github.com/PIXRA-Network/typeconv/lib/nbt"
	"github.com/PIXRA-Network/typeconv/network/protocol"
	"github.com/cockroachdb/errors"
)

// CoreItemStackToNet encodes a domain item for the network. Items unknown to
// the protocol are sent as the fallback item with their state id stashed in
// the tag, so that different unknown items never stack on the client.
func (c *TypeConverter) CoreItemStackToNet(it *item.Item) protocol.ItemStack {
	if it.IsNull() {
		return protocol.NullItemStack()
	}
	c.metrics.itemsEncoded.Inc()

	var tag *nbt.Compound
	if it.HasNamedTag() {
		var stripped bool
		tag, stripped = canonicalize(it.NamedTag())
		if stripped {
			c.metrics.strippedTags.Inc()
		}
	}

	nid, ok := c.translator.ToNetworkID(it)
	if !ok {
		c.metrics.unmappedItems.Inc()
		nid, ok = c.translator.ToNetworkID(item.New(FallbackItemID, 0, 1))
		if !ok {
			panic(errors.AssertionFailedf("protocol %d: fallback item %s is not mapped", c.protocolID, FallbackItemID))
		}
		if tag == nil {
			tag = nbt.NewCompound()
		}
		tag.SetLong(IDTag, it.StateID())
	}

	extra := protocol.ItemStackExtraData{Nbt: tag}
	var raw []byte
	if nid.ID == c.shieldID {
		raw = protocol.EncodeExtraData(protocol.ItemStackExtraDataShield{ItemStackExtraData: extra})
	} else {
		raw = protocol.EncodeExtraData(extra)
	}

	return protocol.ItemStack{
		ID:             nid.ID,
		Meta:           nid.Meta,
		Count:          int32(it.Count()),
		BlockRuntimeID: nid.BlockRuntimeID,
		RawExtraData:   raw,
	}
}

// NetItemStackToCore decodes an item stack received from the network.
//
// This fully decodes the extra data. To compare a client stack with a server
// item, encode the server item and compare the wire stacks instead.
func (c *TypeConverter) NetItemStackToCore(s protocol.ItemStack) (*item.Item, error) {
	if s.ID == 0 {
		return item.Air(), nil
	}
	it, err := c.netItemStackToCore(s)
	if err != nil {
		c.metrics.decodeFailures.Inc()
		return nil, err
	}
	c.metrics.itemsDecoded.Inc()
	return it, nil
}

func (c *TypeConverter) netItemStackToCore(s protocol.ItemStack) (*item.Item, error) {
	extra, err := c.DeserializeItemStackExtraData(s.RawExtraData, s.ID)
	if err != nil {
		return nil, err
	}

	it, err := c.translator.FromNetworkID(s.ID, s.Meta, s.BlockRuntimeID)
	if err != nil {
		return nil, conversionError(err, "item stack identity")
	}
	it.SetCount(int(s.Count))

	if tag := extra.Tag(); tag != nil {
		if err := it.SetNamedTag(tag); err != nil {
			return nil, conversionError(err, "bad item stack tag data")
		}
	}
	return it, nil
}

// DeserializeItemStackExtraData decodes raw extra data in the shape used by
// the item with the given network id
func (c *TypeConverter) DeserializeItemStackExtraData(raw []byte, id int32) (protocol.ExtraData, error) {
	if id == c.shieldID {
		d, err := protocol.ReadItemStackExtraDataShield(raw)
		if err != nil {
			return nil, conversionError(err, "shield extra data")
		}
		return d, nil
	}
	d, err := protocol.ReadItemStackExtraData(raw)
	if err != nil {
		return nil, conversionError(err, "item extra data")
	}
	return d, nil
}
