package holdings

import (
	"cmp"
	"slices"

	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

// GroupKey identifies items that are lopped together.
type GroupKey struct {
	Library      string
	Location     string // translated home location
	SchemePrefix string
}

func (k GroupKey) compare(o GroupKey) int {
	return cmp.Or(
		cmp.Compare(k.Library, o.Library),
		cmp.Compare(k.Location, o.Location),
		cmp.Compare(k.SchemePrefix, o.SchemePrefix),
	)
}

// GroupItems partitions items by library, translated home location and scheme.
// Items with an ignored call number are left out. Within a group items keep
// their input order.
func GroupItems(items []*item.Item, translator LocationTranslator) map[GroupKey][]*item.Item {
	groups := make(map[GroupKey][]*item.Item)
	for _, it := range items {
		if it == nil || it.IgnoredCallNumber {
			continue
		}
		key := GroupKey{
			Library:      it.Library,
			Location:     translator.TranslateLocation(it.HomeLocation),
			SchemePrefix: it.Scheme.Prefix(),
		}
		groups[key] = append(groups[key], it)
	}
	return groups
}

// sortedKeys returns the group keys in a stable order so log output is repeatable.
func sortedKeys(groups map[GroupKey][]*item.Item) []GroupKey {
	keys := make([]GroupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, GroupKey.compare)
	return keys
}
