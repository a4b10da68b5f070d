package reorder

import (
	"reflect"
	"testing"

	"tableflip.dev/frog/pkg/task"
)

func seq(specs ...string) []task.Task {
	out := make([]task.Task, 0, len(specs))
	for _, s := range specs {
		t := task.Task{ID: s, Title: s, Priority: task.DefaultPriority}
		switch s[0] {
		case 'F':
			t.IsFrog = true
		case 'x':
			t.IsCompleted = true
		}
		out = append(out, t)
	}
	return out
}

func TestMove(t *testing.T) {
	tests := map[string]struct {
		tasks   []task.Task
		ids     []string
		to      int
		want    []string
		changed bool
	}{
		"third up to top": {
			tasks: seq("a", "b", "c"), ids: []string{"c"}, to: 0,
			want: []string{"c", "a", "b"}, changed: true,
		},
		"first down to bottom": {
			tasks: seq("a", "b", "c"), ids: []string{"a"}, to: 2,
			want: []string{"b", "c", "a"}, changed: true,
		},
		"completed slots untouched": {
			tasks: seq("a", "x1", "b", "x2", "c"), ids: []string{"c"}, to: 0,
			want: []string{"c", "x1", "a", "x2", "b"}, changed: true,
		},
		"cannot pass the frog": {
			tasks: seq("Fa", "b", "c"), ids: []string{"c"}, to: 0,
			want: []string{"Fa", "c", "b"}, changed: true,
		},
		"frog stored later still pins": {
			tasks: seq("a", "b", "Fc"), ids: []string{"b"}, to: 0,
			want: []string{"b", "a", "Fc"}, changed: true,
		},
		"frog itself never moves": {
			tasks: seq("a", "Fb", "c"), ids: []string{"Fb"}, to: 2,
			want: []string{"a", "Fb", "c"}, changed: false,
		},
		"block keeps relative order": {
			tasks: seq("a", "b", "c", "d", "e"), ids: []string{"d", "b"}, to: 0,
			want: []string{"b", "d", "a", "c", "e"}, changed: true,
		},
		"index clamps high": {
			tasks: seq("a", "b", "c"), ids: []string{"a"}, to: 99,
			want: []string{"b", "c", "a"}, changed: true,
		},
		"same position is a no-op": {
			tasks: seq("a", "b", "c"), ids: []string{"b"}, to: 1,
			want: []string{"a", "b", "c"}, changed: false,
		},
		"unknown and completed ids ignored": {
			tasks: seq("a", "x1", "b"), ids: []string{"nope", "x1"}, to: 0,
			want: []string{"a", "x1", "b"}, changed: false,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, changed := Move(tc.tasks, tc.ids, tc.to)
			if changed != tc.changed {
				t.Fatalf("changed = %v, want %v", changed, tc.changed)
			}
			if ids := task.IDs(got); !reflect.DeepEqual(ids, tc.want) {
				t.Fatalf("order = %v, want %v", ids, tc.want)
			}
		})
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	in := seq("a", "b", "c")
	_, _ = Move(in, []string{"c"}, 0)
	if ids := task.IDs(in); !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Fatalf("input mutated: %v", ids)
	}
}

func TestMovable(t *testing.T) {
	tasks := seq("a", "Fb", "x1", "c")
	got := Movable(tasks, []string{"c", "Fb", "x1", "a"})
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("Movable = %v", got)
	}
}

func TestStepTarget(t *testing.T) {
	view := []string{"a", "b", "c", "d"}
	if got := StepTarget(view, []string{"c", "b"}, -1); got != 0 {
		t.Fatalf("StepTarget up = %d", got)
	}
	if got := StepTarget(view, []string{"b", "c"}, 1); got != 2 {
		t.Fatalf("StepTarget down = %d", got)
	}
	moved, _ := Move(seq(view...), []string{"b", "c"}, StepTarget(view, []string{"b", "c"}, 1))
	if ids := task.IDs(moved); !reflect.DeepEqual(ids, []string{"a", "d", "b", "c"}) {
		t.Fatalf("step down result = %v", ids)
	}
}

func TestPreviewIndex(t *testing.T) {
	tests := map[string]struct {
		delta, row     float64
		origin, count  int
		frog, dragFrog bool
		want           int
	}{
		"up two rows":          {delta: -60, row: 30, origin: 2, count: 5, want: 0},
		"rounds to nearest":    {delta: 44, row: 30, origin: 0, count: 5, want: 1},
		"clamps bottom":        {delta: 900, row: 30, origin: 1, count: 5, want: 4},
		"clamps top":           {delta: -900, row: 30, origin: 3, count: 5, want: 0},
		"stays below frog":     {delta: -900, row: 30, origin: 3, count: 5, frog: true, want: 1},
		"frog stays first":     {delta: 90, row: 30, origin: 0, count: 5, frog: true, dragFrog: true, want: 0},
		"zero row height":      {delta: 90, row: 0, origin: 2, count: 5, want: 2},
		"empty view":           {delta: 90, row: 30, origin: 0, count: 0, want: 0},
		"small move same slot": {delta: 10, row: 30, origin: 2, count: 5, want: 2},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := PreviewIndex(tc.delta, tc.row, tc.origin, tc.count, tc.frog, tc.dragFrog)
			if got != tc.want {
				t.Fatalf("PreviewIndex = %d, want %d", got, tc.want)
			}
		})
	}
}
