package holdings

import (
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/itemindexer/internal/config"
	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

const displaySeparator = " -|- "

// DisplayRecord is the item_display value of one item, in index field order.
type DisplayRecord struct {
	Barcode         string `json:"barcode" yaml:"barcode"`
	Library         string `json:"library" yaml:"library"`
	HomeLocation    string `json:"home_location" yaml:"home_location"`
	CurrentLocation string `json:"current_location" yaml:"current_location"`
	ItemType        string `json:"item_type" yaml:"item_type"`
	CallNumber      string `json:"call_number" yaml:"call_number"`
	Shelfkey        string `json:"shelfkey" yaml:"shelfkey"`
	ReverseShelfkey string `json:"reverse_shelfkey" yaml:"reverse_shelfkey"`
	FullCallNumber  string `json:"full_call_number" yaml:"full_call_number"`
	VolumeSort      string `json:"volume_sort" yaml:"volume_sort"`
	PublicNote      string `json:"public_note" yaml:"public_note"`
	Scheme          string `json:"scheme" yaml:"scheme"`
}

// Fields returns the values in their fixed display order.
func (d DisplayRecord) Fields() []string {
	return []string{
		d.Barcode,
		d.Library,
		d.HomeLocation,
		d.CurrentLocation,
		d.ItemType,
		d.CallNumber,
		d.Shelfkey,
		d.ReverseShelfkey,
		d.FullCallNumber,
		d.VolumeSort,
		d.PublicNote,
		d.Scheme,
	}
}

// String renders the record as the search index stores it.
func (d DisplayRecord) String() string {
	return strings.Join(d.Fields(), displaySeparator)
}

// Assembler builds display records from lopped items.
type Assembler struct {
	Lookups *config.Lookups
	Shelver Shelver
}

// ItemDisplayRecords returns one display record per item, in input order.
// Items that render identically are collapsed into the first occurrence.
func (a Assembler) ItemDisplayRecords(items []*item.Item, serial bool, recordID string) []DisplayRecord {
	seen := make(map[DisplayRecord]bool, len(items))
	records := make([]DisplayRecord, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		rec := a.displayRecord(it, serial, recordID)
		if seen[rec] {
			continue
		}
		seen[rec] = true
		records = append(records, rec)
	}
	return records
}

func (a Assembler) displayRecord(it *item.Item, serial bool, recordID string) DisplayRecord {
	lopped := it.LoppedCallNumber
	full := it.CallNumber
	shelfkey := it.Shelfkey
	reverse := it.ReverseShelfkey
	volSort := it.VolumeSort

	if !it.IgnoredCallNumber && lopped == "" {
		slog.Warn("Item has no lopped call number", "record_id", recordID, "barcode", it.Barcode)
	}

	if it.ShelvedByLocationName && !it.InProcess && !it.OnOrder && !it.Online {
		label := a.Lookups.ShelvedByLabel(it.HomeLocation)
		suffix := volumeSuffix(it.CallNumber, lopped)
		lopped = label
		shelfkey = strings.ToLower(label)
		reverse = a.Shelver.ReverseKey(shelfkey)
		full = label + suffix
		volSort = a.Shelver.VolumeSortKey(full, label, it.Scheme, true)
	} else if volSort == "" && lopped != "" {
		volSort = a.Shelver.VolumeSortKey(it.CallNumber, lopped, it.Scheme, serial)
	}

	display := lopped
	if it.HasSeparateBrowseCallNumber ||
		a.Lookups.IsSkipDisplayCallNumber(lopped) ||
		a.Lookups.IsElectronicCallNumber(lopped) ||
		a.Lookups.IsTemporaryCallNumber(lopped) {
		display = ""
	}
	if it.HasSeparateBrowseCallNumber ||
		a.Lookups.IsTemporaryCallNumber(full) ||
		(a.Lookups.ElectronicCallNumber != "" && full == a.Lookups.ElectronicCallNumber) ||
		a.Lookups.IsSkipDisplayCallNumber(full) {
		full = ""
	}
	if it.MissingOrLost {
		shelfkey, reverse = "", ""
	}

	return DisplayRecord{
		Barcode:         it.Barcode,
		Library:         it.Library,
		HomeLocation:    it.HomeLocation,
		CurrentLocation: it.CurrentLocation,
		ItemType:        it.ItemType,
		CallNumber:      display,
		Shelfkey:        shelfkey,
		ReverseShelfkey: reverse,
		FullCallNumber:  full,
		VolumeSort:      volSort,
		PublicNote:      it.PublicNote,
		Scheme:          it.Scheme.String(),
	}
}

// volumeSuffix is what remains of the full call number once its lopped prefix
// (without any ellipsis) is removed.
func volumeSuffix(callnum, lopped string) string {
	base := strings.TrimSuffix(lopped, Ellipsis)
	if base == "" {
		return ""
	}
	if suffix, ok := strings.CutPrefix(callnum, base); ok {
		return suffix
	}
	return ""
}
