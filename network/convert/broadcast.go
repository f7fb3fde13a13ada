package convert

import (
	"github.com/samber/lo"
)

// Recipient is anything bound to a converter, typically a network session
type Recipient interface {
	TypeConverter() *TypeConverter
}

// ProtocolRecipient is anything that knows its protocol version
type ProtocolRecipient interface {
	ProtocolID() int
}

// GroupByConverter partitions recipients by the converter they are bound to.
// Recipients are not re-resolved and duplicates are removed.
func GroupByConverter[R interface {
	comparable
	Recipient
}](recipients []R) map[*TypeConverter][]R {
	return lo.GroupBy(lo.Uniq(recipients), func(r R) *TypeConverter {
		return r.TypeConverter()
	})
}

// GroupByProtocol partitions recipients by protocol version. Duplicates are removed.
func GroupByProtocol[R interface {
	comparable
	ProtocolRecipient
}](recipients []R) map[int][]R {
	return lo.GroupBy(lo.Uniq(recipients), func(r R) int {
		return r.ProtocolID()
	})
}

// BroadcastByTypeConverter builds the packets once per converter and hands
// them with the matching recipients to send. Groups without packets are skipped.
func BroadcastByTypeConverter[R interface {
	comparable
	Recipient
}, P any](recipients []R, build func(c *TypeConverter) []P, send func(recipients []R, packets []P)) {
	for conv, group := range GroupByConverter(recipients) {
		packets := build(conv)
		if len(packets) > 0 {
			send(group, packets)
		}
	}
}
