package task

import (
	"reflect"
	"testing"
)

func TestCleanTitle(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"dash bullet":          {in: "- Buy milk", want: "Buy milk"},
		"star bullet":          {in: "* Buy milk", want: "Buy milk"},
		"plus bullet":          {in: "+ Buy milk", want: "Buy milk"},
		"open checkbox":        {in: "[ ] Write report", want: "Write report"},
		"checked with date":    {in: "[x] 01/02/2023 Call mom", want: "Call mom"},
		"upper checked":        {in: "[X] Call mom", want: "Call mom"},
		"bullet and checkbox":  {in: "- [ ] 12/31/2024 Pay rent", want: "Pay rent"},
		"numbered":             {in: "2. Clean", want: "Clean"},
		"multi digit number":   {in: "12. Clean", want: "Clean"},
		"surrounding space":    {in: "   Plain task  ", want: "Plain task"},
		"decimal is kept":      {in: "1.5 liters of water", want: "1.5 liters of water"},
		"hyphen word is kept":  {in: "-not a bullet", want: "-not a bullet"},
		"marker only is empty": {in: "- ", want: ""},
		"blank":                {in: "   ", want: ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := CleanTitle(tc.in); got != tc.want {
				t.Fatalf("CleanTitle(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanTitlesDropsEmptyLines(t *testing.T) {
	got := CleanTitles(SplitPasted("- Buy milk\r\n\r\n[x] 01/02/2023 Call mom\n  \n2. Clean\r"))
	want := []string{"Buy milk", "Call mom", "Clean"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CleanTitles = %q, want %q", got, want)
	}
}
