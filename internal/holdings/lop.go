package holdings

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

const (
	// Ellipsis marks a full call number that collides with a sibling's lopped form.
	Ellipsis = " ..."

	minCommonPrefix = 4
)

// LopItemCallNumbers assigns LoppedCallNumber to every item whose call number
// is not ignored. Siblings sharing library, location and scheme are shortened
// so their volume suffixes drop off: LC and Dewey call numbers through the
// truncator, everything else to the group's longest common prefix.
//
// Lopping is a projection: running it again over its own output, with the lopped
// values as raw call numbers, leaves every value unchanged.
func LopItemCallNumbers(items []*item.Item, translator LocationTranslator, truncator Truncator, serial bool, recordID string) {
	qualifying := 0
	for _, it := range items {
		if it != nil && !it.IgnoredCallNumber {
			qualifying++
		}
	}
	if qualifying == 0 {
		return
	}
	if qualifying == 1 {
		for _, it := range items {
			if it != nil && !it.IgnoredCallNumber {
				it.LoppedCallNumber = it.CallNumber
			}
		}
		return
	}

	groups := GroupItems(items, translator)
	for _, key := range sortedKeys(groups) {
		lopGroup(key, groups[key], truncator, serial, recordID)
	}
}

func lopGroup(key GroupKey, group []*item.Item, truncator Truncator, serial bool, recordID string) {
	if len(group) == 1 {
		group[0].LoppedCallNumber = group[0].CallNumber
		return
	}

	bases := make([]string, len(group))
	marked := make([]bool, len(group))
	for i, it := range group {
		bases[i], marked[i] = splitEllipsis(it.CallNumber)
	}

	lopped := make([]string, len(group))
	scheme := group[0].Scheme
	switch scheme {
	case item.LC, item.Dewey:
		for i, base := range bases {
			l := truncator.TruncateForBrowsing(base, scheme, serial)
			if strings.TrimSpace(l) == "" {
				slog.Warn("Truncation produced an empty call number, keeping the full call number",
					"record_id", recordID,
					"barcode", group[i].Barcode,
					"call_number", base,
					"scheme", scheme)
				l = base
			}
			lopped[i] = l
		}
	case item.SuDoc, item.AlphaNum, item.Other:
		prefix := longestCommonPrefix(bases)
		if utf8.RuneCountInString(prefix) >= minCommonPrefix {
			for i := range lopped {
				lopped[i] = prefix
			}
		} else {
			slog.Debug("No usable common prefix for group",
				"record_id", recordID,
				"library", key.Library,
				"location", key.Location,
				"prefix", prefix)
			copy(lopped, bases)
		}
	}

	// A lopped value only counts once it differs from the call number it came
	// from, so an item can never collide with itself.
	truncatedTo := make(map[string]bool)
	for i := range group {
		if lopped[i] != bases[i] {
			truncatedTo[lopped[i]] = true
		}
	}

	for i, it := range group {
		switch {
		case truncatedTo[bases[i]]:
			it.LoppedCallNumber = bases[i] + Ellipsis
		case marked[i] && lopped[i] == bases[i]:
			it.LoppedCallNumber = it.CallNumber
		default:
			it.LoppedCallNumber = lopped[i]
		}
	}
}

// splitEllipsis strips a previously applied ellipsis marker.
func splitEllipsis(callnum string) (string, bool) {
	if base, ok := strings.CutSuffix(callnum, Ellipsis); ok && base != "" {
		return base, true
	}
	return callnum, false
}

// longestCommonPrefix returns the longest rune prefix shared by every value,
// without trailing whitespace.
func longestCommonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := []rune(values[0])
	for _, v := range values[1:] {
		n := 0
		for _, r := range v {
			if n >= len(prefix) || prefix[n] != r {
				break
			}
			n++
		}
		prefix = prefix[:n]
		if n == 0 {
			break
		}
	}
	return strings.TrimRight(string(prefix), " \t")
}
