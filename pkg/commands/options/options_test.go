package options

import (
	"testing"

	"tableflip.dev/frog/pkg/task"
)

func TestParsePriority(t *testing.T) {
	tests := map[string]task.Priority{
		"1":      task.PriorityLow,
		"high":   task.PriorityHigh,
		" M ":    task.PriorityMedium,
		"9":      task.PriorityHigh,
		"-2":     task.PriorityLow,
		"LOW":    task.PriorityLow,
		"medium": task.PriorityMedium,
	}
	for in, want := range tests {
		got, err := ParsePriority(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %d, got %d (%v)", in, want, got, err)
		}
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestMoveOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		o    MoveOptions
		ok   bool
	}{
		{"none", MoveOptions{To: -1}, false},
		{"to", MoveOptions{To: 2}, true},
		{"to zero", MoveOptions{To: 0}, false},
		{"up", MoveOptions{To: -1, Up: true}, true},
		{"two", MoveOptions{To: 3, Top: true}, false},
	}
	for _, tt := range tests {
		err := tt.o.Validate()
		if (err == nil) != tt.ok {
			t.Fatalf("%s: unexpected result %v", tt.name, err)
		}
	}
}

func TestOutputValidate(t *testing.T) {
	o := OutputOptions{}
	if err := o.Validate(); err != nil || o.Format != "text" {
		t.Fatalf("empty format should default to text: %v %q", err, o.Format)
	}
	o.Format = "csv"
	if err := o.Validate(); err == nil {
		t.Fatalf("expected error for csv")
	}
}
