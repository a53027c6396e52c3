package state

import "testing"

func TestMatchers(t *testing.T) {
	cases := []struct {
		mode  MatchMode
		label string
		query string
		want  bool
	}{
		{MatchSubstring, "Firefox", "fire", false},
		{MatchSubstring, "Firefox", "Fire", true},
		{MatchFold, "Firefox", "fire", true},
		{MatchFold, "Straße", "STRASSE", true},
		{MatchFuzzy, "Firefox", "ffx", true},
		{MatchFuzzy, "Firefox", "xff", false},
	}
	for _, tc := range cases {
		if got := tc.mode.Matcher()(tc.label, tc.query); got != tc.want {
			t.Fatalf("%s(%q, %q) = %v, want %v", tc.mode, tc.label, tc.query, got, tc.want)
		}
	}
}

func TestParseMatchMode(t *testing.T) {
	if mode, err := ParseMatchMode(""); err != nil || mode != MatchSubstring {
		t.Fatalf("expected default substring, got %q/%v", mode, err)
	}
	if mode, err := ParseMatchMode(" Fuzzy "); err != nil || mode != MatchFuzzy {
		t.Fatalf("expected fuzzy, got %q/%v", mode, err)
	}
	if _, err := ParseMatchMode("regex"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
