// Package holdings turns the items attached to one bibliographic record into
// browsing call numbers, a preferred item and item display records.
//
// Every function here works on the item set of a single record and keeps no
// state between calls, so records may be processed concurrently.
package holdings

import "github.com/lehigh-university-libraries/itemindexer/internal/item"

// LocationTranslator maps a raw location code to its display code. Unknown
// codes are returned unchanged.
type LocationTranslator interface {
	TranslateLocation(code string) string
}

// Truncator shortens a call number to its browsing form.
type Truncator interface {
	TruncateForBrowsing(callnum string, scheme item.Scheme, serial bool) string
}

// Shelver derives sortable keys from call numbers.
type Shelver interface {
	Shelfkeys(lopped string, scheme item.Scheme, serial bool) (string, string)
	ReverseKey(key string) string
	VolumeSortKey(callnum, lopped string, scheme item.Scheme, serial bool) string
}

// Rules bundles every call number collaborator the indexer needs.
type Rules interface {
	item.Classifier
	Truncator
	Shelver
}
