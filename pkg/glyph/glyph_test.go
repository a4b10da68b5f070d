package glyph

import (
	"testing"

	"tableflip.dev/frog/pkg/task"
)

func TestBullet(t *testing.T) {
	tests := []struct {
		name string
		task task.Task
		want string
	}{
		{"open", task.Task{}, Open},
		{"frog", task.Task{IsFrog: true}, Frog},
		{"completed frog", task.Task{IsFrog: true, IsCompleted: true}, Completed},
	}
	for _, tt := range tests {
		if got := Bullet(tt.task); got != tt.want {
			t.Fatalf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestPriorityMark(t *testing.T) {
	tests := map[task.Priority]string{
		0: "",
		1: "",
		2: "!",
		3: "!!",
		7: "!!",
	}
	for p, want := range tests {
		if got := PriorityMark(p); got != want {
			t.Fatalf("priority %d: expected %q, got %q", p, want, got)
		}
	}
}
