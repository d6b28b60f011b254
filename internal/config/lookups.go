package config

import "strings"

// Lookups answers membership questions against the configured tables.
// It is immutable after construction and safe to share between goroutines.
type Lookups struct {
	PreferredLibrary          string
	ElectronicCallNumber      string
	TemporaryCallNumberPrefix string

	skipDisplay          map[string]struct{}
	ignored              map[string]struct{}
	shelvedByTitle       map[string]struct{}
	shelvedBySeriesTitle map[string]struct{}
	businessShelved      map[string]struct{}
	online               map[string]struct{}
	onOrder              map[string]struct{}
	inProcess            map[string]struct{}
	missing              map[string]struct{}
	skipped              map[string]struct{}
	translations         map[string]string
}

// DefaultLookups is shorthand for DefaultConfig().Lookups().
func DefaultLookups() *Lookups {
	return DefaultConfig().Lookups()
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func (l *Lookups) IsSkipDisplayCallNumber(callnum string) bool { return has(l.skipDisplay, callnum) }
func (l *Lookups) IsIgnoredCallNumber(callnum string) bool     { return has(l.ignored, callnum) }
func (l *Lookups) IsShelvedBySeriesTitle(loc string) bool      { return has(l.shelvedBySeriesTitle, loc) }
func (l *Lookups) IsBusinessShelved(loc string) bool           { return has(l.businessShelved, loc) }
func (l *Lookups) IsOnline(loc string) bool                    { return has(l.online, loc) }
func (l *Lookups) IsOnOrder(loc string) bool                   { return has(l.onOrder, loc) }
func (l *Lookups) IsInProcess(loc string) bool                 { return has(l.inProcess, loc) }
func (l *Lookups) IsMissingOrLost(loc string) bool             { return has(l.missing, loc) }
func (l *Lookups) IsSkippedLocation(loc string) bool           { return has(l.skipped, loc) }

// IsShelvedByTitle reports whether loc shelves items by title or series title
// rather than by call number.
func (l *Lookups) IsShelvedByTitle(loc string) bool {
	return has(l.shelvedByTitle, loc) || has(l.shelvedBySeriesTitle, loc)
}

// ShelvedByLabel is the call number shown for items in a shelved-by-title location.
func (l *Lookups) ShelvedByLabel(loc string) string {
	if l.IsShelvedBySeriesTitle(loc) {
		return "Shelved by Series title"
	}
	return "Shelved by title"
}

// IsTemporaryCallNumber reports whether callnum carries the temporary prefix.
func (l *Lookups) IsTemporaryCallNumber(callnum string) bool {
	return l.TemporaryCallNumberPrefix != "" && strings.HasPrefix(callnum, l.TemporaryCallNumberPrefix)
}

// IsElectronicCallNumber reports whether callnum starts with the electronic marker.
func (l *Lookups) IsElectronicCallNumber(callnum string) bool {
	return l.ElectronicCallNumber != "" && strings.HasPrefix(callnum, l.ElectronicCallNumber)
}

// TranslateLocation returns the display code for a raw location code, or the
// code itself when no translation exists.
func (l *Lookups) TranslateLocation(code string) string {
	if v, ok := l.translations[strings.ToUpper(code)]; ok {
		return v
	}
	return code
}

// WithTranslations returns a copy of l using the given location translations.
func (l *Lookups) WithTranslations(m map[string]string) *Lookups {
	cp := *l
	cp.translations = make(map[string]string, len(m))
	for k, v := range m {
		cp.translations[strings.ToUpper(k)] = v
	}
	return &cp
}
