package convert

import (
	"fmt"
	"github.com/VictoriaMetrics/metrics"
)

// converterMetrics are the counters of one protocol version
type converterMetrics struct {
	itemsEncoded       *metrics.Counter
	itemsDecoded       *metrics.Counter
	unmappedItems      *metrics.Counter
	strippedTags       *metrics.Counter
	ingredientsEncoded *metrics.Counter
	ingredientsDecoded *metrics.Counter
	decodeFailures     *metrics.Counter
}

func newConverterMetrics(set *metrics.Set, protocolID int) *converterMetrics {
	counter := func(name string) *metrics.Counter {
		return set.GetOrCreateCounter(fmt.Sprintf(`typeconv_%s_total{protocol="%d"}`, name, protocolID))
	}
	return &converterMetrics{
		itemsEncoded:       counter("items_encoded"),
		itemsDecoded:       counter("items_decoded"),
		unmappedItems:      counter("unmapped_items"),
		strippedTags:       counter("stripped_tags"),
		ingredientsEncoded: counter("ingredients_encoded"),
		ingredientsDecoded: counter("ingredients_decoded"),
		decodeFailures:     counter("decode_failures"),
	}
}
