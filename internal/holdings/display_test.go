package holdings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/itemindexer/internal/callnum"
	"github.com/lehigh-university-libraries/itemindexer/internal/config"
	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

func assembler() Assembler {
	return Assembler{Lookups: config.DefaultLookups(), Shelver: rules}
}

func TestDisplayRecordString(t *testing.T) {
	it := shelved(newItem("36105", "GREEN", "STACKS", "PQ1234.A1", item.LC))
	it.CurrentLocation = "CHECKEDOUT"
	it.ItemType = "STKS"
	it.PublicNote = "gift"

	records := assembler().ItemDisplayRecords([]*item.Item{it}, false, "rec")
	require.Len(t, records, 1)

	key := callnum.Shelfkey("PQ1234.A1", item.LC)
	expected := strings.Join([]string{
		"36105", "GREEN", "STACKS", "CHECKEDOUT", "STKS",
		"PQ1234.A1", key, callnum.ReverseKey(key), "PQ1234.A1",
		callnum.VolumeSortKey("PQ1234.A1", "PQ1234.A1", item.LC, false),
		"gift", "LC",
	}, " -|- ")
	assert.Equal(t, expected, records[0].String())
	assert.Len(t, records[0].Fields(), 12)
}

func TestItemDisplayRecords(t *testing.T) {
	tests := []struct {
		name  string
		item  func() *item.Item
		check func(t *testing.T, d DisplayRecord)
	}{
		{
			name: "shelved by title",
			item: func() *item.Item {
				it := volumeOf("1", "PQ1234.A1 V.2", "PQ1234.A1")
				it.HomeLocation = "SHELBYTITL"
				it.ShelvedByLocationName = true
				return it
			},
			check: func(t *testing.T, d DisplayRecord) {
				assert.Equal(t, "Shelved by title", d.CallNumber)
				assert.Equal(t, "shelved by title", d.Shelfkey)
				assert.Equal(t, callnum.ReverseKey("shelved by title"), d.ReverseShelfkey)
				assert.Equal(t, "Shelved by title V.2", d.FullCallNumber)
				assert.Equal(t, callnum.VolumeSortKey("Shelved by title V.2", "Shelved by title", item.LC, true), d.VolumeSort)
			},
		},
		{
			name: "shelved by series title",
			item: func() *item.Item {
				it := volumeOf("1", "PQ1234.A1 V.2", "PQ1234.A1")
				it.HomeLocation = "SHELBYSER"
				it.ShelvedByLocationName = true
				return it
			},
			check: func(t *testing.T, d DisplayRecord) {
				assert.Equal(t, "Shelved by Series title", d.CallNumber)
				assert.Equal(t, "shelved by series title", d.Shelfkey)
				assert.Equal(t, "Shelved by Series title V.2", d.FullCallNumber)
			},
		},
		{
			name: "in process items keep their call number",
			item: func() *item.Item {
				it := volumeOf("1", "PQ1234.A1 V.2", "PQ1234.A1")
				it.HomeLocation = "SHELBYTITL"
				it.ShelvedByLocationName = true
				it.InProcess = true
				return it
			},
			check: func(t *testing.T, d DisplayRecord) {
				assert.Equal(t, "PQ1234.A1", d.CallNumber)
				assert.Equal(t, "PQ1234.A1 V.2", d.FullCallNumber)
				assert.Equal(t, callnum.Shelfkey("PQ1234.A1", item.LC), d.Shelfkey)
			},
		},
		{
			name: "separate browse call number blanks both call numbers",
			item: func() *item.Item {
				it := shelved(newItem("1", "GREEN", "STACKS", "PQ1234.A1", item.LC))
				it.HasSeparateBrowseCallNumber = true
				return it
			},
			check: func(t *testing.T, d DisplayRecord) {
				assert.Empty(t, d.CallNumber)
				assert.Empty(t, d.FullCallNumber)
				assert.NotEmpty(t, d.Shelfkey)
			},
		},
		{
			name: "skip display call number",
			item: func() *item.Item {
				return shelved(newItem("1", "GREEN", "STACKS", "X", item.AlphaNum))
			},
			check: func(t *testing.T, d DisplayRecord) {
				assert.Empty(t, d.CallNumber)
				assert.Empty(t, d.FullCallNumber)
			},
		},
		{
			name: "electronic prefix blanks the display call number only",
			item: func() *item.Item {
				return shelved(newItem("1", "GREEN", "INTERNET", "INTERNET RESOURCE KF123", item.AlphaNum))
			},
			check: func(t *testing.T, d DisplayRecord) {
				assert.Empty(t, d.CallNumber)
				assert.Equal(t, "INTERNET RESOURCE KF123", d.FullCallNumber)
			},
		},
		{
			name: "temporary call number",
			item: func() *item.Item {
				return shelved(newItem("1", "GREEN", "STACKS", "XX(3195846.2579)", item.AlphaNum))
			},
			check: func(t *testing.T, d DisplayRecord) {
				assert.Empty(t, d.CallNumber)
				assert.Empty(t, d.FullCallNumber)
			},
		},
		{
			name: "missing items lose their shelfkeys",
			item: func() *item.Item {
				it := shelved(newItem("1", "GREEN", "MISSING", "PQ1234.A1", item.LC))
				it.MissingOrLost = true
				return it
			},
			check: func(t *testing.T, d DisplayRecord) {
				assert.Equal(t, "PQ1234.A1", d.CallNumber)
				assert.Empty(t, d.Shelfkey)
				assert.Empty(t, d.ReverseShelfkey)
				assert.NotEmpty(t, d.VolumeSort)
			},
		},
		{
			name: "ignored call number",
			item: func() *item.Item {
				return &item.Item{Barcode: "1", Library: "GREEN", CallNumber: "INTERNET RESOURCE", IgnoredCallNumber: true, Online: true}
			},
			check: func(t *testing.T, d DisplayRecord) {
				assert.Empty(t, d.CallNumber)
				assert.Empty(t, d.FullCallNumber)
				assert.Empty(t, d.Shelfkey)
				assert.Equal(t, "OTHER", d.Scheme)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := assembler().ItemDisplayRecords([]*item.Item{tt.item()}, false, "rec")
			require.Len(t, records, 1)
			tt.check(t, records[0])
		})
	}
}

func TestItemDisplayRecordsCollapsesDuplicates(t *testing.T) {
	items := []*item.Item{
		shelved(newItem("2", "GREEN", "STACKS", "QA2", item.LC)),
		shelved(newItem("1", "GREEN", "STACKS", "QA1", item.LC)),
		shelved(newItem("2", "GREEN", "STACKS", "QA2", item.LC)),
		nil,
	}

	records := assembler().ItemDisplayRecords(items, false, "rec")
	require.Len(t, records, 2)
	assert.Equal(t, "2", records[0].Barcode)
	assert.Equal(t, "1", records[1].Barcode)
}

func TestVolumeSuffix(t *testing.T) {
	tests := []struct {
		callnum  string
		lopped   string
		expected string
	}{
		{"PQ1234.A1 V.2", "PQ1234.A1", " V.2"},
		{"PQ1234.A1", "PQ1234.A1 ...", ""},
		{"PQ1234.A1 V.2", "QA1", ""},
		{"PQ1234.A1", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.callnum+"|"+tt.lopped, func(t *testing.T) {
			if got := volumeSuffix(tt.callnum, tt.lopped); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
