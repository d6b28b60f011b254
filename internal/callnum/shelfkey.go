package callnum

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

const (
	numberWidth       = 6
	reversePadLength  = 50
	reversePad        = '~'
	keyAlphabet       = "0123456789abcdefghijklmnopqrstuvwxyz"
	reverseSpace      = '}'
	reverseDecimalDot = '|'
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Shelfkeys returns the forward and reverse shelfkeys of a lopped call number.
func (Rules) Shelfkeys(lopped string, scheme item.Scheme, serial bool) (string, string) {
	key := Shelfkey(lopped, scheme)
	if key == "" {
		return "", ""
	}
	return key, ReverseKey(key)
}

// ReverseKey returns the order-reversing form of a forward key.
func (Rules) ReverseKey(key string) string {
	return ReverseKey(key)
}

// VolumeSortKey orders items sharing a lopped call number by their volume suffix.
func (Rules) VolumeSortKey(callnum, lopped string, scheme item.Scheme, serial bool) string {
	return VolumeSortKey(callnum, lopped, scheme, serial)
}

// Shelfkey returns a key that sorts call numbers of one scheme in shelf order.
// Whole numbers are zero padded, decimal fractions are right padded and letters
// are folded to unaccented lower case.
func Shelfkey(callnum string, scheme item.Scheme) string {
	body := normalizeKey(callnum, false)
	if body == "" {
		return ""
	}
	return strings.ToLower(scheme.Prefix()) + " " + body
}

// ReverseKey maps a forward key to one that sorts in the opposite order.
func ReverseKey(key string) string {
	var b strings.Builder
	b.Grow(max(len(key), reversePadLength))
	for _, r := range key {
		switch {
		case r == ' ':
			b.WriteRune(reverseSpace)
		case r == '.':
			b.WriteRune(reverseDecimalDot)
		default:
			if i := strings.IndexRune(keyAlphabet, r); i >= 0 {
				b.WriteByte(keyAlphabet[len(keyAlphabet)-1-i])
			} else {
				b.WriteRune(reversePad)
			}
		}
	}
	for b.Len() < reversePadLength {
		b.WriteRune(reversePad)
	}
	return b.String()
}

// VolumeSortKey is the package level form of Rules.VolumeSortKey. Serial volume
// numbers are complemented so the most recent volume sorts first.
func VolumeSortKey(callnum, lopped string, scheme item.Scheme, serial bool) string {
	if !serial || lopped == "" || !strings.HasPrefix(callnum, lopped) {
		return Shelfkey(callnum, scheme)
	}
	base := Shelfkey(lopped, scheme)
	suffix := normalizeKey(strings.TrimPrefix(callnum, lopped), true)
	if suffix == "" {
		return base
	}
	return base + " " + suffix
}

// normalizeKey renders s as space separated tokens. When complement is set every
// padded whole number n is written as its nines complement.
func normalizeKey(s string, complement bool) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		folded = strings.ToLower(strings.TrimSpace(s))
	}

	var tokens []string
	cutter := false
	rs := []rune(folded)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case isKeyDigit(r):
			j := i
			for j < len(rs) && isKeyDigit(rs[j]) {
				j++
			}
			digits := string(rs[i:j])
			switch {
			case i > 0 && rs[i-1] == '.' && len(tokens) > 0 && isAllDigits(tokens[len(tokens)-1]):
				// decimal fraction of the preceding number
				tokens[len(tokens)-1] += "." + padRight(digits)
			case cutter && i > 0 && isKeyLetter(rs[i-1]):
				// cutter numbers file as decimals: .A12 before .A2
				tokens = append(tokens, padRight(digits))
			default:
				tokens = append(tokens, padLeft(digits, complement))
			}
			cutter = false
			i = j
		case isKeyLetter(r):
			j := i
			for j < len(rs) && isKeyLetter(rs[j]) {
				j++
			}
			cutter = i > 0 && rs[i-1] == '.'
			tokens = append(tokens, string(rs[i:j]))
			i = j
		default:
			cutter = false
			i++
		}
	}
	return strings.Join(tokens, " ")
}

func isKeyDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isKeyLetter(r rune) bool { return r >= 'a' && r <= 'z' }

func isAllDigits(s string) bool {
	for _, r := range s {
		if !isKeyDigit(r) {
			return false
		}
	}
	return s != ""
}

func padLeft(digits string, complement bool) string {
	digits = strings.TrimLeft(digits, "0")
	if len(digits) < numberWidth {
		digits = strings.Repeat("0", numberWidth-len(digits)) + digits
	}
	if !complement {
		return digits
	}
	out := []byte(digits)
	for i, c := range out {
		out[i] = '9' - (c - '0')
	}
	return string(out)
}

func padRight(digits string) string {
	if len(digits) < numberWidth {
		return digits + strings.Repeat("0", numberWidth-len(digits))
	}
	return digits
}
