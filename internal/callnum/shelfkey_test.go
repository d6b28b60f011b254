package callnum

import (
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/itemindexer/internal/item"
)

func TestShelfkey(t *testing.T) {
	tests := []struct {
		name     string
		callnum  string
		scheme   item.Scheme
		expected string
	}{
		{name: "lc", callnum: "PQ1234.A1", scheme: item.LC, expected: "lc pq 001234 a 100000"},
		{name: "lc decimal class", callnum: "QA76.73 .J38", scheme: item.LC, expected: "lc qa 000076.730000 j 380000"},
		{name: "dewey", callnum: "641.3 GRA", scheme: item.Dewey, expected: "dewey 000641.300000 gra"},
		{name: "ellipsis ignored", callnum: "PQ1234.A1 ...", scheme: item.LC, expected: "lc pq 001234 a 100000"},
		{name: "empty", callnum: "", scheme: item.LC, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Shelfkey(tt.callnum, tt.scheme); result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestShelfkeyOrdering(t *testing.T) {
	pairs := [][2]string{
		{"QA9", "QA10"},
		{"PQ1234.A12", "PQ1234.A2"},
		{"PQ1234.A1", "PQ1234.A1 V.2"},
		{"641.25", "641.3"},
	}
	for _, p := range pairs {
		lo, hi := Shelfkey(p[0], item.LC), Shelfkey(p[1], item.LC)
		if lo >= hi {
			t.Errorf("Expected %q (%s) to sort before %q (%s)", p[0], lo, p[1], hi)
		}
	}
}

func TestShelfkeyFoldsDiacritics(t *testing.T) {
	if Shelfkey("PQ1234 .É5", item.LC) != Shelfkey("PQ1234 .E5", item.LC) {
		t.Error("Expected accented and unaccented cutters to share a shelfkey")
	}
}

func TestReverseKey(t *testing.T) {
	pairs := [][2]string{
		{"lc pq 001234", "lc pq 001235"},
		{"abc", "abcd"},
		{"a b", "ab"},
		{"dewey 000641.300000", "dewey 0006410"},
		{"a b", "a.b"},
	}
	for _, p := range pairs {
		if p[0] >= p[1] {
			t.Fatalf("bad fixture: %q should sort before %q", p[0], p[1])
		}
		r0, r1 := ReverseKey(p[0]), ReverseKey(p[1])
		if r0 <= r1 {
			t.Errorf("Expected reverse of %q (%s) to sort after reverse of %q (%s)", p[0], r0, p[1], r1)
		}
	}

	if r := ReverseKey("abc"); len(r) != reversePadLength || !strings.HasSuffix(r, "~") {
		t.Errorf("Expected reverse key padded to %d with ~, got %q", reversePadLength, r)
	}
}

func TestVolumeSortKey(t *testing.T) {
	lopped := "QA1 .A5"
	v2 := VolumeSortKey("QA1 .A5 V.2", lopped, item.LC, true)
	v3 := VolumeSortKey("QA1 .A5 V.3", lopped, item.LC, true)
	if v3 >= v2 {
		t.Errorf("Expected newer serial volume to sort first: v3=%q v2=%q", v3, v2)
	}
	if !strings.HasPrefix(v2, Shelfkey(lopped, item.LC)+" ") {
		t.Errorf("Expected serial volume sort to start with the lopped shelfkey, got %q", v2)
	}

	m2 := VolumeSortKey("QA1 .A5 V.2", lopped, item.LC, false)
	m3 := VolumeSortKey("QA1 .A5 V.3", lopped, item.LC, false)
	if m2 >= m3 {
		t.Errorf("Expected monograph volumes in ascending order: v2=%q v3=%q", m2, m3)
	}
}

func TestRulesShelfkeys(t *testing.T) {
	key, reverse := Rules{}.Shelfkeys("PQ1234.A1", item.LC, false)
	if key != Shelfkey("PQ1234.A1", item.LC) {
		t.Errorf("Unexpected shelfkey %q", key)
	}
	if reverse != ReverseKey(key) {
		t.Errorf("Unexpected reverse shelfkey %q", reverse)
	}

	key, reverse = Rules{}.Shelfkeys("", item.LC, false)
	if key != "" || reverse != "" {
		t.Errorf("Expected empty keys for empty call number, got %q %q", key, reverse)
	}
}
