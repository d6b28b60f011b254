package holdings

import (
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/itemindexer/internal/config"
	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

// Record is one bibliographic record with the holdings attached to it.
type Record struct {
	ID       string         `json:"id" parquet:"id" yaml:"id"`
	Serial   bool           `json:"serial,omitempty" parquet:"serial" yaml:"serial,omitempty"`
	Holdings []item.Holding `json:"holdings" parquet:"holdings,list" yaml:"holdings"`
}

// Preferred item sources reported on a Document.
const (
	PreferredByCascade  = "cascade"
	PreferredByFallback = "fallback"
)

// Document holds the item derived fields of one record's search index document.
type Document struct {
	ID               string          `json:"id" yaml:"id"`
	PreferredBarcode string          `json:"preferred_barcode,omitempty" yaml:"preferred_barcode,omitempty"`
	PreferredSource  string          `json:"preferred_source,omitempty" yaml:"preferred_source,omitempty"`
	ItemDisplay      []string        `json:"item_display" yaml:"item_display"`
	Shelfkeys        []string        `json:"shelfkey,omitempty" yaml:"shelfkey,omitempty"`
	ReverseShelfkeys []string        `json:"reverse_shelfkey,omitempty" yaml:"reverse_shelfkey,omitempty"`
	Items            []DisplayRecord `json:"items" yaml:"items"`
	SkippedItems     int             `json:"skipped_items,omitempty" yaml:"skipped_items,omitempty"`
	EllipsisItems    int             `json:"ellipsis_items,omitempty" yaml:"ellipsis_items,omitempty"`
}

// Indexer derives the item fields of index documents. It only holds immutable
// lookups and collaborators and is safe for concurrent use.
type Indexer struct {
	lookups *config.Lookups
	rules   Rules
}

// NewIndexer creates an indexer using the given lookups and call number rules.
func NewIndexer(lookups *config.Lookups, rules Rules) *Indexer {
	return &Indexer{
		lookups: lookups,
		rules:   rules,
	}
}

// recordContext owns every structure built while processing one record.
type recordContext struct {
	id      string
	serial  bool
	items   []*item.Item
	skipped int
}

func (ix *Indexer) newRecordContext(rec Record) *recordContext {
	rc := &recordContext{
		id:     rec.ID,
		serial: rec.Serial,
		items:  make([]*item.Item, 0, len(rec.Holdings)),
	}
	for _, h := range rec.Holdings {
		if item.Skipped(h, ix.lookups) {
			rc.skipped++
			continue
		}
		rc.items = append(rc.items, item.New(h, ix.lookups, ix.rules))
	}
	return rc
}

// Items builds the non-skipped item set of a record and lops its call numbers,
// without selecting or assembling anything.
func (ix *Indexer) Items(rec Record) []*item.Item {
	rc := ix.newRecordContext(rec)
	LopItemCallNumbers(rc.items, ix.lookups, ix.rules, rc.serial, rc.id)
	AssignShelfkeys(rc.items, ix.rules, rc.serial)
	return rc.items
}

// Process derives the item fields of the record's index document.
func (ix *Indexer) Process(rec Record) *Document {
	rc := ix.newRecordContext(rec)

	LopItemCallNumbers(rc.items, ix.lookups, ix.rules, rc.serial, rc.id)
	AssignShelfkeys(rc.items, ix.rules, rc.serial)

	selector := Selector{PreferredLibrary: ix.lookups.PreferredLibrary, Shelver: ix.rules}
	doc := &Document{
		ID:           rc.id,
		SkippedItems: rc.skipped,
	}
	if barcode := selector.SelectPreferredBarcode(rc.items, rc.serial); barcode != "" {
		doc.PreferredBarcode = barcode
		doc.PreferredSource = PreferredByCascade
	} else if barcode := fallbackBarcode(rc.items); barcode != "" {
		doc.PreferredBarcode = barcode
		doc.PreferredSource = PreferredByFallback
	}

	assembler := Assembler{Lookups: ix.lookups, Shelver: ix.rules}
	doc.Items = assembler.ItemDisplayRecords(rc.items, rc.serial, rc.id)
	doc.ItemDisplay = make([]string, 0, len(doc.Items))
	seenKey := make(map[string]bool)
	for _, d := range doc.Items {
		doc.ItemDisplay = append(doc.ItemDisplay, d.String())
		if d.Shelfkey != "" && !seenKey[d.Shelfkey] {
			seenKey[d.Shelfkey] = true
			doc.Shelfkeys = append(doc.Shelfkeys, d.Shelfkey)
			doc.ReverseShelfkeys = append(doc.ReverseShelfkeys, d.ReverseShelfkey)
		}
	}
	for _, it := range rc.items {
		if strings.HasSuffix(it.LoppedCallNumber, Ellipsis) {
			doc.EllipsisItems++
		}
	}

	slog.Debug("Processed record",
		"record_id", rc.id,
		"items", len(rc.items),
		"skipped", rc.skipped,
		"preferred_barcode", doc.PreferredBarcode,
		"preferred_source", doc.PreferredSource)
	return doc
}

// AssignShelfkeys derives shelfkeys and volume sort keys from lopped call numbers.
// Items without a lopped call number get empty keys.
func AssignShelfkeys(items []*item.Item, shelver Shelver, serial bool) {
	for _, it := range items {
		if it == nil {
			continue
		}
		if it.IgnoredCallNumber || it.LoppedCallNumber == "" {
			it.Shelfkey, it.ReverseShelfkey, it.VolumeSort = "", "", ""
			continue
		}
		it.Shelfkey, it.ReverseShelfkey = shelver.Shelfkeys(it.LoppedCallNumber, it.Scheme, serial)
		it.VolumeSort = shelver.VolumeSortKey(it.CallNumber, it.LoppedCallNumber, it.Scheme, serial)
	}
}
