package holdings

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

// volume is one item under a candidate, keyed by its call number plus volume sort key.
type volume struct {
	sortKey string
	barcode string
}

// candidate aggregates qualifying items sharing library, scheme and lopped call number.
type candidate struct {
	library string
	scheme  item.Scheme
	lopped  string
	volumes []volume
}

func (c candidate) itemCount() int { return len(c.volumes) }

// Selector chooses the item that represents a record in shelf browsing.
type Selector struct {
	// PreferredLibrary wins the library stage whenever it holds a qualifying item.
	PreferredLibrary string
	Shelver          Shelver
}

// PreferredItemBarcode returns the preferred barcode for the record's items.
// When no item qualifies it falls back to the first online or ignored call number
// item that still has a browse call number, in input order. The empty string
// means no item can represent the record.
func (s Selector) PreferredItemBarcode(items []*item.Item, serial bool) string {
	if barcode := s.SelectPreferredBarcode(items, serial); barcode != "" {
		return barcode
	}
	return fallbackBarcode(items)
}

// SelectPreferredBarcode runs the library, scheme, item count and length stages
// over the qualifying items and picks one barcode from the survivors.
func (s Selector) SelectPreferredBarcode(items []*item.Item, serial bool) string {
	cands := s.candidates(items, serial)
	if len(cands) == 0 {
		return ""
	}
	cands = byLibrary(cands, s.PreferredLibrary)
	cands = byScheme(cands)
	cands = byItemCount(cands)
	cands = byLength(cands)
	return pickBarcode(cands)
}

// qualifies reports whether an item can be preferred: it needs a shelfkey and a
// call number that is not known to be bad.
func qualifies(it *item.Item) bool {
	return it != nil && it.HasShelfkey() && !it.BadLCOrLaneCallNumber
}

// candidates builds one candidate per library, scheme and lopped call number,
// in order of first appearance.
func (s Selector) candidates(items []*item.Item, serial bool) []candidate {
	type key struct {
		library string
		scheme  item.Scheme
		lopped  string
	}
	index := make(map[key]int)
	var cands []candidate
	for _, it := range items {
		if !qualifies(it) {
			continue
		}
		k := key{it.Library, it.Scheme, it.LoppedCallNumber}
		i, ok := index[k]
		if !ok {
			i = len(cands)
			index[k] = i
			cands = append(cands, candidate{library: it.Library, scheme: it.Scheme, lopped: it.LoppedCallNumber})
		}
		sortKey := it.VolumeSort
		if sortKey == "" && s.Shelver != nil {
			sortKey = s.Shelver.VolumeSortKey(it.CallNumber, it.LoppedCallNumber, it.Scheme, serial)
		}
		cands[i].volumes = append(cands[i].volumes, volume{sortKey: sortKey, barcode: it.Barcode})
	}
	return cands
}

func filter(cands []candidate, keep func(candidate) bool) []candidate {
	out := make([]candidate, 0, len(cands))
	for _, c := range cands {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// byLibrary keeps the preferred library if present, else the alphabetically
// smallest library.
func byLibrary(cands []candidate, preferred string) []candidate {
	if len(cands) == 0 {
		return cands
	}
	want := cands[0].library
	for _, c := range cands {
		if preferred != "" && c.library == preferred {
			want = preferred
			break
		}
		if c.library < want {
			want = c.library
		}
	}
	return filter(cands, func(c candidate) bool { return c.library == want })
}

// byScheme keeps the highest priority scheme: LC, Dewey, SuDoc, AlphaNum, Other.
func byScheme(cands []candidate) []candidate {
	best := -1
	for _, c := range cands {
		best = max(best, c.scheme.Priority())
	}
	return filter(cands, func(c candidate) bool { return c.scheme.Priority() == best })
}

// byItemCount keeps the lopped call number shared by the most items.
func byItemCount(cands []candidate) []candidate {
	most := 0
	for _, c := range cands {
		most = max(most, c.itemCount())
	}
	return filter(cands, func(c candidate) bool { return c.itemCount() == most })
}

// byLength keeps the shortest lopped call numbers.
func byLength(cands []candidate) []candidate {
	shortest := -1
	for _, c := range cands {
		if n := utf8.RuneCountInString(c.lopped); shortest < 0 || n < shortest {
			shortest = n
		}
	}
	return filter(cands, func(c candidate) bool { return utf8.RuneCountInString(c.lopped) == shortest })
}

// pickBarcode breaks any remaining tie on the smallest lopped call number, then
// returns the barcode with the smallest volume sort key (barcode on equal keys).
func pickBarcode(cands []candidate) string {
	if len(cands) == 0 {
		return ""
	}
	c := slices.MinFunc(cands, func(a, b candidate) int { return cmp.Compare(a.lopped, b.lopped) })
	if len(c.volumes) == 0 {
		return ""
	}
	v := slices.MinFunc(c.volumes, func(a, b volume) int {
		return cmp.Or(cmp.Compare(a.sortKey, b.sortKey), cmp.Compare(a.barcode, b.barcode))
	})
	return v.barcode
}

// fallbackBarcode finds an online or ignored call number item that can still be
// browsed through its separate browse call number.
func fallbackBarcode(items []*item.Item) string {
	for _, it := range items {
		if it == nil {
			continue
		}
		if (it.Online || it.IgnoredCallNumber) && it.HasBrowseCallNumber() {
			return it.Barcode
		}
	}
	return ""
}
