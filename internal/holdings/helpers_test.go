package holdings

import (
	"github.com/lehigh-university-libraries/itemindexer/internal/callnum"
	"github.com/lehigh-university-libraries/itemindexer/internal/config"
	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

var rules = callnum.Rules{}

func newItem(barcode, library, location, callnumber string, scheme item.Scheme) *item.Item {
	return &item.Item{
		Barcode:          barcode,
		Library:          library,
		HomeLocation:     location,
		CallNumber:       callnumber,
		LoppedCallNumber: callnumber,
		Scheme:           scheme,
	}
}

func lopped(items []*item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.LoppedCallNumber
	}
	return out
}

func lop(items []*item.Item, serial bool) {
	LopItemCallNumbers(items, config.DefaultLookups(), rules, serial, "test-record")
}

// truncatorFunc adapts a function to the Truncator interface.
type truncatorFunc func(string, item.Scheme, bool) string

func (f truncatorFunc) TruncateForBrowsing(c string, s item.Scheme, serial bool) string {
	return f(c, s, serial)
}
