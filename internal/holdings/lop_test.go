package holdings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lehigh-university-libraries/itemindexer/internal/config"
	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

func TestLopItemCallNumbers(t *testing.T) {
	tests := []struct {
		name     string
		items    []*item.Item
		serial   bool
		expected []string
	}{
		{
			name: "single item is never lopped",
			items: []*item.Item{
				newItem("1", "GREEN", "STACKS", "PQ1234.A1 V.2", item.LC),
			},
			expected: []string{"PQ1234.A1 V.2"},
		},
		{
			name: "single qualifying item beside an ignored one",
			items: []*item.Item{
				{Barcode: "1", Library: "GREEN", HomeLocation: "INTERNET", CallNumber: "INTERNET RESOURCE", IgnoredCallNumber: true},
				newItem("2", "GREEN", "STACKS", "PQ1234.A1 V.2", item.LC),
			},
			expected: []string{"", "PQ1234.A1 V.2"},
		},
		{
			name: "items in different libraries are not lopped",
			items: []*item.Item{
				newItem("1", "GREEN", "STACKS", "PQ1234.A1 V.1", item.LC),
				newItem("2", "ARS", "STACKS", "PQ1234.A1 V.2", item.LC),
			},
			expected: []string{"PQ1234.A1 V.1", "PQ1234.A1 V.2"},
		},
		{
			name: "lc volumes share the lopped call number",
			items: []*item.Item{
				newItem("1", "GREEN", "STACKS", "PQ1234.A1 V.1", item.LC),
				newItem("2", "GREEN", "STACKS", "PQ1234.A1 V.2", item.LC),
			},
			expected: []string{"PQ1234.A1", "PQ1234.A1"},
		},
		{
			name: "full call number colliding with a sibling gets an ellipsis",
			items: []*item.Item{
				newItem("1", "GREEN", "STACKS", "PQ1234.A1", item.LC),
				newItem("2", "GREEN", "STACKS", "PQ1234.A1 V.2", item.LC),
			},
			expected: []string{"PQ1234.A1 ...", "PQ1234.A1"},
		},
		{
			name: "dewey volumes",
			items: []*item.Item{
				newItem("1", "GREEN", "STACKS", "641.3 GRA NO.1", item.Dewey),
				newItem("2", "GREEN", "STACKS", "641.3 GRA NO.2", item.Dewey),
			},
			expected: []string{"641.3 GRA", "641.3 GRA"},
		},
		{
			name: "serial years are lopped",
			items: []*item.Item{
				newItem("1", "GREEN", "STACKS", "QA1 .A5 1995", item.LC),
				newItem("2", "GREEN", "STACKS", "QA1 .A5 1996", item.LC),
			},
			serial:   true,
			expected: []string{"QA1 .A5", "QA1 .A5"},
		},
		{
			name: "alphanumeric common prefix",
			items: []*item.Item{
				newItem("1", "SPEC-COLL", "STACKS", "A123-B", item.AlphaNum),
				newItem("2", "SPEC-COLL", "STACKS", "A123-C", item.AlphaNum),
			},
			expected: []string{"A123-", "A123-"},
		},
		{
			name: "common prefix shorter than four characters is not used",
			items: []*item.Item{
				newItem("1", "SPEC-COLL", "STACKS", "AB1", item.AlphaNum),
				newItem("2", "SPEC-COLL", "STACKS", "AB2", item.AlphaNum),
			},
			expected: []string{"AB1", "AB2"},
		},
		{
			name: "trailing space is dropped from the common prefix",
			items: []*item.Item{
				newItem("1", "SAL3", "STACKS", "MFILM 12 X", item.AlphaNum),
				newItem("2", "SAL3", "STACKS", "MFILM 12 Y", item.AlphaNum),
			},
			expected: []string{"MFILM 12", "MFILM 12"},
		},
		{
			name: "alphanumeric call number equal to the prefix gets an ellipsis",
			items: []*item.Item{
				newItem("1", "SAL3", "STACKS", "M1234", item.AlphaNum),
				newItem("2", "SAL3", "STACKS", "M1234 V.2", item.AlphaNum),
			},
			expected: []string{"M1234 ...", "M1234"},
		},
		{
			name: "identical call numbers are not ambiguous",
			items: []*item.Item{
				newItem("1", "SAL3", "STACKS", "ZDVD 19791", item.AlphaNum),
				newItem("2", "SAL3", "STACKS", "ZDVD 19791", item.AlphaNum),
			},
			expected: []string{"ZDVD 19791", "ZDVD 19791"},
		},
		{
			name: "schemes are lopped separately",
			items: []*item.Item{
				newItem("1", "GREEN", "STACKS", "PQ1234.A1 V.1", item.LC),
				newItem("2", "GREEN", "STACKS", "PQ1234.A1 V.2", item.AlphaNum),
			},
			expected: []string{"PQ1234.A1 V.1", "PQ1234.A1 V.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]string, len(tt.items))
			for i, it := range tt.items {
				raw[i] = it.CallNumber
			}
			// ignored items start without a lopped call number
			for _, it := range tt.items {
				if it.IgnoredCallNumber {
					it.LoppedCallNumber = ""
				}
			}

			lop(tt.items, tt.serial)

			assert.Equal(t, tt.expected, lopped(tt.items))
			for i, it := range tt.items {
				assert.Equal(t, raw[i], it.CallNumber, "raw call number must not change")
			}
		})
	}
}

func TestLopItemCallNumbersEmpty(t *testing.T) {
	LopItemCallNumbers(nil, config.DefaultLookups(), rules, false, "empty")
	LopItemCallNumbers([]*item.Item{}, config.DefaultLookups(), rules, false, "empty")
}

func TestLopItemCallNumbersTranslatesLocations(t *testing.T) {
	lookups := config.DefaultLookups().WithTranslations(map[string]string{"STK": "STACKS"})
	items := []*item.Item{
		newItem("1", "GREEN", "STACKS", "PQ1234.A1 V.1", item.LC),
		newItem("2", "GREEN", "STK", "PQ1234.A1 V.2", item.LC),
	}

	LopItemCallNumbers(items, lookups, rules, false, "translated")

	assert.Equal(t, []string{"PQ1234.A1", "PQ1234.A1"}, lopped(items))
}

func TestLopItemCallNumbersKeepsCallNumberOnEmptyTruncation(t *testing.T) {
	empty := truncatorFunc(func(string, item.Scheme, bool) string { return "" })
	items := []*item.Item{
		newItem("1", "GREEN", "STACKS", "PQ1234.A1 V.1", item.LC),
		newItem("2", "GREEN", "STACKS", "PQ1234.A1 V.2", item.LC),
	}

	LopItemCallNumbers(items, config.DefaultLookups(), empty, false, "degenerate")

	assert.Equal(t, []string{"PQ1234.A1 V.1", "PQ1234.A1 V.2"}, lopped(items))
}

func TestLopItemCallNumbersIsIdempotent(t *testing.T) {
	items := []*item.Item{
		newItem("1", "GREEN", "STACKS", "PQ1234.A1", item.LC),
		newItem("2", "GREEN", "STACKS", "PQ1234.A1 V.2", item.LC),
		newItem("3", "SAL3", "STACKS", "M1234", item.AlphaNum),
		newItem("4", "SAL3", "STACKS", "M1234 V.2", item.AlphaNum),
	}
	lop(items, false)
	first := lopped(items)

	again := make([]*item.Item, len(items))
	for i, it := range items {
		again[i] = newItem(it.Barcode, it.Library, it.HomeLocation, it.LoppedCallNumber, it.Scheme)
	}
	lop(again, false)

	assert.Equal(t, first, lopped(again))
}

func TestGroupItems(t *testing.T) {
	lookups := config.DefaultLookups().WithTranslations(map[string]string{"STK": "STACKS"})
	items := []*item.Item{
		newItem("1", "GREEN", "STACKS", "PQ1234.A1 V.1", item.LC),
		newItem("2", "GREEN", "STK", "PQ1234.A1 V.2", item.LC),
		newItem("3", "GREEN", "STACKS", "641.3 GRA", item.Dewey),
		newItem("4", "ARS", "STACKS", "PQ1234.A1 V.3", item.LC),
		{Barcode: "5", Library: "GREEN", HomeLocation: "STACKS", Scheme: item.LC, IgnoredCallNumber: true},
	}

	groups := GroupItems(items, lookups)

	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(groups))
	}
	lc := groups[GroupKey{Library: "GREEN", Location: "STACKS", SchemePrefix: "LC"}]
	if len(lc) != 2 || lc[0].Barcode != "1" || lc[1].Barcode != "2" {
		t.Errorf("Expected GREEN LC group to hold items 1 and 2 in order, got %v", lc)
	}
	for _, group := range groups {
		for _, it := range group {
			if it.IgnoredCallNumber {
				t.Errorf("Ignored item %s should not be grouped", it.Barcode)
			}
		}
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		values   []string
		expected string
	}{
		{[]string{"A123-B", "A123-C"}, "A123-"},
		{[]string{"ABC", "XYZ"}, ""},
		{[]string{"SAME", "SAME"}, "SAME"},
		{[]string{"ÉTUDE 1", "ÉTUDE 2"}, "ÉTUDE"},
		{nil, ""},
	}
	for _, tt := range tests {
		if result := longestCommonPrefix(tt.values); result != tt.expected {
			t.Errorf("longestCommonPrefix(%q): expected %q, got %q", tt.values, tt.expected, result)
		}
	}
}
