package zakat

import "testing"

func TestObligatory(t *testing.T) {
	cases := []struct {
		name   string
		record Record
		want   bool
	}{
		{"above nisab", Record{NetZakatableAssets: 100000, NisabThreshold: 85000}, true},
		{"exactly at nisab", Record{NetZakatableAssets: 85000, NisabThreshold: 85000}, true},
		{"below nisab", Record{NetZakatableAssets: 50000, NisabThreshold: 85000}, false},
		{"unset nisab never obligates", Record{NetZakatableAssets: 100000}, false},
		{"negative net assets", Record{NetZakatableAssets: -5000, NisabThreshold: 85000}, false},
	}
	for _, tc := range cases {
		if got := tc.record.Obligatory(); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
