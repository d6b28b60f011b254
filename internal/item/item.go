package item

import (
	"strings"

	"github.com/lehigh-university-libraries/itemindexer/internal/config"
)

// Holding is one raw holding as it arrives from the catalog export.
type Holding struct {
	Barcode          string `json:"barcode" parquet:"barcode" yaml:"barcode"`
	Library          string `json:"library" parquet:"library" yaml:"library"`
	HomeLocation     string `json:"home_location" parquet:"home_location" yaml:"home_location"`
	CurrentLocation  string `json:"current_location,omitempty" parquet:"current_location" yaml:"current_location,omitempty"`
	ItemType         string `json:"item_type,omitempty" parquet:"item_type" yaml:"item_type,omitempty"`
	CallNumber       string `json:"call_number" parquet:"call_number" yaml:"call_number"`
	Scheme           string `json:"scheme,omitempty" parquet:"scheme" yaml:"scheme,omitempty"` // empty means classify
	BrowseCallNumber string `json:"browse_call_number,omitempty" parquet:"browse_call_number" yaml:"browse_call_number,omitempty"`
	PublicNote       string `json:"public_note,omitempty" parquet:"public_note" yaml:"public_note,omitempty"`

	// Explicit flags; each is OR-ed with what the lookups derive.
	IgnoredCallNumber bool `json:"ignored_call_number,omitempty" parquet:"ignored_call_number" yaml:"ignored_call_number,omitempty"`
	BadCallNumber     bool `json:"bad_call_number,omitempty" parquet:"bad_call_number" yaml:"bad_call_number,omitempty"`
	Online            bool `json:"online,omitempty" parquet:"online" yaml:"online,omitempty"`
}

// Item is one holding of a bibliographic record with its derived call number forms.
// Items live for the processing of a single record.
type Item struct {
	Barcode         string
	Library         string
	HomeLocation    string
	CurrentLocation string
	ItemType        string
	PublicNote      string

	CallNumber       string // raw, never modified after New
	Scheme           Scheme
	LoppedCallNumber string
	BrowseCallNumber string
	Shelfkey         string
	ReverseShelfkey  string
	VolumeSort       string

	IgnoredCallNumber           bool
	BadLCOrLaneCallNumber       bool
	HasSeparateBrowseCallNumber bool
	ShelvedByLocationName       bool
	Online                      bool
	OnOrder                     bool
	InProcess                   bool
	MissingOrLost               bool
	BusinessShelvedByLocation   bool
}

// Classifier recognises call number schemes.
type Classifier interface {
	ClassifyScheme(callnum string) Scheme
	IsValidLC(callnum string) bool
}

// New builds an Item from a raw holding.
func New(h Holding, lookups *config.Lookups, classifier Classifier) *Item {
	callnum := strings.TrimSpace(h.CallNumber)
	browse := strings.TrimSpace(h.BrowseCallNumber)
	homeLoc := strings.TrimSpace(h.HomeLocation)
	currLoc := strings.TrimSpace(h.CurrentLocation)

	it := &Item{
		Barcode:          strings.TrimSpace(h.Barcode),
		Library:          strings.TrimSpace(h.Library),
		HomeLocation:     homeLoc,
		CurrentLocation:  currLoc,
		ItemType:         strings.TrimSpace(h.ItemType),
		PublicNote:       strings.TrimSpace(h.PublicNote),
		CallNumber:       callnum,
		BrowseCallNumber: browse,
	}

	if strings.TrimSpace(h.Scheme) != "" {
		it.Scheme = ParseScheme(h.Scheme)
	} else {
		it.Scheme = classifier.ClassifyScheme(callnum)
	}

	it.Online = h.Online || lookups.IsOnline(homeLoc) || lookups.IsOnline(currLoc)
	it.OnOrder = lookups.IsOnOrder(homeLoc) || lookups.IsOnOrder(currLoc)
	it.InProcess = lookups.IsInProcess(homeLoc) || lookups.IsInProcess(currLoc)
	it.MissingOrLost = lookups.IsMissingOrLost(currLoc)
	it.ShelvedByLocationName = lookups.IsShelvedByTitle(homeLoc)
	it.BusinessShelvedByLocation = lookups.IsBusinessShelved(homeLoc)
	it.HasSeparateBrowseCallNumber = browse != "" && browse != callnum

	it.IgnoredCallNumber = h.IgnoredCallNumber ||
		callnum == "" ||
		lookups.IsIgnoredCallNumber(callnum)

	it.BadLCOrLaneCallNumber = h.BadCallNumber ||
		(it.Scheme == LC && !classifier.IsValidLC(callnum))

	if !it.IgnoredCallNumber {
		it.LoppedCallNumber = callnum
	}
	return it
}

// Skipped reports whether a holding should be left out of the record's item set.
func Skipped(h Holding, lookups *config.Lookups) bool {
	return lookups.IsSkippedLocation(strings.TrimSpace(h.HomeLocation)) ||
		lookups.IsSkippedLocation(strings.TrimSpace(h.CurrentLocation))
}

// HasShelfkey reports whether the item has a usable forward shelfkey.
func (it *Item) HasShelfkey() bool {
	return strings.TrimSpace(it.Shelfkey) != ""
}

// HasBrowseCallNumber reports whether the item carries a non-blank browse call number.
func (it *Item) HasBrowseCallNumber() bool {
	return it.BrowseCallNumber != ""
}
