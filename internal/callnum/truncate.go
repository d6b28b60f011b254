package callnum

import (
	"regexp"
	"strings"

	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

var (
	// Volume, part and copy designations that begin the volume-specific suffix.
	volumeRe = regexp.MustCompile(`(?i)\s+[(\[]?(?:(?:vols?|nos?|pts?|bde?|tome|ser|suppl?|knj?|jahrg|jg|ano|heft|fasc|lief|copy|yr|reel|box|dis[ck]|map|sheet)\.?|[vthc]\.)\s*\d`)
	// Suffixes that carry no number but still mark a particular volume.
	volumeWordRe = regexp.MustCompile(`(?i)\s+[(\[]?(?:index|indexes|suppl\.?|supplement|new ser\.?)(?:[\s)\].,;:]|$)`)
	// Serial holdings are also split off at a trailing year.
	serialYearRe = regexp.MustCompile(`\s+[(\[]?(?:1[5-9]|20)\d{2}(?:[\s)\].,;:/-]|$)`)
)

// TruncateForBrowsing returns the call number with its volume-specific suffix
// removed. Only LC and Dewey call numbers are truncated; other schemes and call
// numbers without a recognisable suffix are returned unchanged.
func (Rules) TruncateForBrowsing(callnum string, scheme item.Scheme, serial bool) string {
	return TruncateForBrowsing(callnum, scheme, serial)
}

// TruncateForBrowsing is the package level form of Rules.TruncateForBrowsing.
func TruncateForBrowsing(callnum string, scheme item.Scheme, serial bool) string {
	switch scheme {
	case item.LC, item.Dewey:
	case item.SuDoc, item.AlphaNum, item.Other:
		return callnum
	}

	cut := suffixStart(callnum, serial)
	if cut <= 0 {
		return callnum
	}
	lopped := strings.TrimRight(callnum[:cut], " .,:;([")
	if lopped == "" {
		return callnum
	}
	return lopped
}

// suffixStart returns the byte offset where the volume suffix begins, or -1.
func suffixStart(callnum string, serial bool) int {
	cut := -1
	consider := func(re *regexp.Regexp) {
		if loc := re.FindStringIndex(callnum); loc != nil && (cut < 0 || loc[0] < cut) {
			cut = loc[0]
		}
	}
	consider(volumeRe)
	consider(volumeWordRe)
	if serial {
		consider(serialYearRe)
	}
	return cut
}
