package search

import (
	"testing"
	"time"
)

func fixedNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n := NewNormalizer(nil)
	// Pin "today" so date validation is deterministic.
	n.now = func() time.Time {
		return time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	}
	return n
}

func TestFromQueryValid(t *testing.T) {
	n := fixedNormalizer(t)

	params := n.FromQuery(Query{
		FromDate: "2026-09-10",
		ToDate:   "2026-09-14",
		Adult:    "3",
		Children: []string{"5", "13"},
	})

	if params == nil {
		t.Fatal("expected params, got nil")
	}
	if params.FromDate != "2026-09-10" || params.ToDate != "2026-09-14" {
		t.Errorf("dates not copied verbatim: %s %s", params.FromDate, params.ToDate)
	}
	if params.Adults != 3 {
		t.Errorf("expected 3 adults, got %d", params.Adults)
	}
	if len(params.Children) != 2 || params.Children[0].Age != 5 || params.Children[1].Age != 13 {
		t.Errorf("unexpected children: %+v", params.Children)
	}
}

func TestFromQueryDefaultsAdultsToTwo(t *testing.T) {
	n := fixedNormalizer(t)

	params := n.FromQuery(Query{FromDate: "2026-09-10", ToDate: "2026-09-11"})
	if params == nil {
		t.Fatal("expected params, got nil")
	}
	if params.Adults != 2 {
		t.Errorf("expected default of 2 adults, got %d", params.Adults)
	}
}

func TestFromQueryAcceptsSameDayArrival(t *testing.T) {
	n := fixedNormalizer(t)

	// "Today" at 15:30; a from date of today must still be accepted
	// because the comparison zeroes the time of day.
	params := n.FromQuery(Query{FromDate: "2026-08-31", ToDate: "2026-09-02"})
	if params == nil {
		t.Fatal("expected same-day from date to be accepted")
	}
}

func TestFromQueryRejections(t *testing.T) {
	n := fixedNormalizer(t)

	cases := []struct {
		name string
		q    Query
	}{
		{"missing from date", Query{ToDate: "2026-09-14"}},
		{"missing to date", Query{FromDate: "2026-09-10"}},
		{"bad date format", Query{FromDate: "10.09.2026", ToDate: "2026-09-14"}},
		{"impossible date", Query{FromDate: "2026-13-40", ToDate: "2026-09-14"}},
		{"from date in the past", Query{FromDate: "2026-08-30", ToDate: "2026-09-14"}},
		{"to date equals from date", Query{FromDate: "2026-09-10", ToDate: "2026-09-10"}},
		{"to date before from date", Query{FromDate: "2026-09-10", ToDate: "2026-09-08"}},
		{"zero adults", Query{FromDate: "2026-09-10", ToDate: "2026-09-14", Adult: "0"}},
		{"nine adults", Query{FromDate: "2026-09-10", ToDate: "2026-09-14", Adult: "9"}},
		{"non-numeric adults", Query{FromDate: "2026-09-10", ToDate: "2026-09-14", Adult: "two"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if params := n.FromQuery(tc.q); params != nil {
				t.Errorf("expected nil params, got %+v", params)
			}
		})
	}
}

func TestFromQueryDropsInvalidChildAges(t *testing.T) {
	n := fixedNormalizer(t)

	params := n.FromQuery(Query{
		FromDate: "2026-09-10",
		ToDate:   "2026-09-14",
		Children: []string{"0", "18", "abc", "7", "", "17"},
	})
	if params == nil {
		t.Fatal("expected params, got nil")
	}
	if len(params.Children) != 2 {
		t.Fatalf("expected 2 valid children, got %d", len(params.Children))
	}
	if params.Children[0].Age != 7 || params.Children[1].Age != 17 {
		t.Errorf("unexpected ages kept: %+v", params.Children)
	}
}

func TestNormalizeCurrency(t *testing.T) {
	n := fixedNormalizer(t)

	cases := map[string]string{
		"eur": "EUR",
		"EUR": "EUR",
		"usd": "USD",
		"try": "TRY",
		"tl":  "TRY",
		"TL":  "TRY",
		"xyz": "TRY",
		"E":   "TRY",
		"":    "TRY",
	}
	for in, want := range cases {
		if got := n.NormalizeCurrency(in); got != want {
			t.Errorf("NormalizeCurrency(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseTitle(t *testing.T) {
	for title, want := range map[string]int{"mr": 0, "ms": 1, "child": 2, "baby": 3} {
		got, err := ParseTitle(title)
		if err != nil {
			t.Fatalf("ParseTitle(%q) returned error: %v", title, err)
		}
		if got != want {
			t.Errorf("ParseTitle(%q) = %d, want %d", title, got, want)
		}
	}

	if _, err := ParseTitle("dr"); err == nil {
		t.Error("expected error for unknown title")
	}
}

func TestParseGender(t *testing.T) {
	if got := ParseGender("male"); got != 0 {
		t.Errorf("ParseGender(male) = %d, want 0", got)
	}
	if got := ParseGender("female"); got != 1 {
		t.Errorf("ParseGender(female) = %d, want 1", got)
	}
	if got := ParseGender(""); got != 1 {
		t.Errorf("ParseGender(empty) = %d, want 1", got)
	}
}
