// Package callnum recognises call number schemes and derives the browsing forms
// of call numbers: lopped (volume-free) call numbers, shelfkeys and volume sort keys.
package callnum

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

var (
	lcRe    = regexp.MustCompile(`^[A-HJ-NP-VZ][A-Z]{0,2} ?\d+(\.\d+)?( |\.|[A-Z]|$)`)
	deweyRe = regexp.MustCompile(`^\d{3}(\.\d+)?( |\.?[A-Z]|$)`)
	sudocRe = regexp.MustCompile(`^[A-Z]{1,4} ?\d+(\.[A-Z0-9]+)*(/[A-Z0-9-]+)?:`)
)

// Rules is the default implementation of the call number collaborators.
// The zero value is ready to use.
type Rules struct{}

// ClassifyScheme guesses the scheme of a raw call number.
func (Rules) ClassifyScheme(callnum string) item.Scheme {
	return ClassifyScheme(callnum)
}

// IsValidLC reports whether callnum starts with a well-formed LC class.
func (Rules) IsValidLC(callnum string) bool {
	return IsValidLC(callnum)
}

// ClassifyScheme guesses the scheme of a raw call number. It is total: anything
// unrecognised with letters or digits is AlphaNum, everything else Other.
func ClassifyScheme(callnum string) item.Scheme {
	c := strings.ToUpper(strings.TrimSpace(callnum))
	switch {
	case c == "":
		return item.Other
	case sudocRe.MatchString(c):
		return item.SuDoc
	case deweyRe.MatchString(c):
		return item.Dewey
	case lcRe.MatchString(c):
		return item.LC
	case strings.IndexFunc(c, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) >= 0:
		return item.AlphaNum
	default:
		return item.Other
	}
}

// IsValidLC reports whether callnum starts with a well-formed LC class.
func IsValidLC(callnum string) bool {
	return lcRe.MatchString(strings.ToUpper(strings.TrimSpace(callnum)))
}
