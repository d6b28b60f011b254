package item

import "strings"

// Scheme is a call number classification scheme.
type Scheme int

const (
	Other Scheme = iota
	AlphaNum
	SuDoc
	Dewey
	LC
)

// ParseScheme maps a scheme tag to a Scheme. Unknown tags are Other.
func ParseScheme(s string) Scheme {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LC", "LCPER":
		return LC
	case "DEWEY", "DEWEYPER":
		return Dewey
	case "SUDOC":
		return SuDoc
	case "ALPHANUM", "ASIS":
		return AlphaNum
	default:
		return Other
	}
}

func (s Scheme) String() string {
	switch s {
	case LC:
		return "LC"
	case Dewey:
		return "DEWEY"
	case SuDoc:
		return "SUDOC"
	case AlphaNum:
		return "ALPHANUM"
	case Other:
		return "OTHER"
	}
	return "OTHER"
}

// Prefix returns the scheme family used when grouping items for lopping.
func (s Scheme) Prefix() string {
	switch s {
	case LC:
		return "LC"
	case Dewey:
		return "DEWEY"
	case SuDoc:
		return "SUDOC"
	case AlphaNum:
		return "ALPHANUM"
	case Other:
		return "OTHER"
	}
	return "OTHER"
}

// Priority ranks schemes for preferred item selection; higher wins.
func (s Scheme) Priority() int {
	switch s {
	case LC:
		return 4
	case Dewey:
		return 3
	case SuDoc:
		return 2
	case AlphaNum:
		return 1
	case Other:
		return 0
	}
	return 0
}

// IsShelfOrdered reports whether the scheme has its own volume truncation rules.
func (s Scheme) IsShelfOrdered() bool {
	switch s {
	case LC, Dewey:
		return true
	case SuDoc, AlphaNum, Other:
		return false
	}
	return false
}

// MarshalText lets schemes round trip through JSON and YAML as their tag.
func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Scheme) UnmarshalText(b []byte) error {
	*s = ParseScheme(string(b))
	return nil
}
