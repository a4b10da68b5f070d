package selection

import (
	"reflect"
	"testing"
)

var active = []string{"a", "b", "c", "d", "e"}

func mustSelected(t *testing.T, s State) Selected {
	t.Helper()
	sel, ok := s.(Selected)
	if !ok {
		t.Fatalf("expected Selected, got %#v", s)
	}
	return sel
}

func TestClickTransitions(t *testing.T) {
	s := Click(Normal{}, "b", Replace, active)
	if got := mustSelected(t, s); !reflect.DeepEqual(got.IDs, []string{"b"}) || got.Anchor != "b" {
		t.Fatalf("click from normal = %#v", got)
	}

	s = Click(s, "d", Replace, active)
	if got := mustSelected(t, s); !reflect.DeepEqual(got.IDs, []string{"d"}) {
		t.Fatalf("plain click should replace, got %#v", got)
	}

	s = Click(s, "a", Toggle, active)
	if got := mustSelected(t, s); !reflect.DeepEqual(got.IDs, []string{"d", "a"}) || got.Anchor != "a" {
		t.Fatalf("toggle add = %#v", got)
	}

	s = Click(s, "a", Toggle, active)
	if got := mustSelected(t, s); !reflect.DeepEqual(got.IDs, []string{"d"}) || got.Anchor != "d" {
		t.Fatalf("toggle remove = %#v", got)
	}

	s = Click(s, "d", Toggle, active)
	if _, ok := s.(Normal); !ok {
		t.Fatalf("toggling the last id off should return Normal, got %#v", s)
	}
}

func TestRangeClick(t *testing.T) {
	s := Click(Normal{}, "d", Replace, active)
	s = Click(s, "b", Range, active)
	got := mustSelected(t, s)
	if !reflect.DeepEqual(got.IDs, []string{"b", "c", "d"}) || got.Anchor != "d" {
		t.Fatalf("range select = %#v", got)
	}

	s = Click(s, "e", Range, active)
	got = mustSelected(t, s)
	if !reflect.DeepEqual(got.IDs, []string{"d", "e"}) {
		t.Fatalf("range from same anchor = %#v", got)
	}

	s = Click(Normal{}, "c", Range, active)
	if got := mustSelected(t, s); !reflect.DeepEqual(got.IDs, []string{"c"}) {
		t.Fatalf("range from normal should select one, got %#v", got)
	}

	s = Click(Selected{IDs: []string{"gone"}, Anchor: "gone"}, "c", Range, active)
	if got := mustSelected(t, s); !reflect.DeepEqual(got.IDs, []string{"c"}) {
		t.Fatalf("range with missing anchor should select one, got %#v", got)
	}
}

func TestEditingIgnoresOtherInput(t *testing.T) {
	s := DoubleClick(Click(Normal{}, "a", Replace, active), "b", "Buy milk")
	e, ok := s.(Editing)
	if !ok || e.ID != "b" || e.Buffer != "Buy milk" {
		t.Fatalf("double click = %#v", s)
	}
	if got := Click(s, "c", Replace, active); got != s {
		t.Fatalf("click while editing changed state to %#v", got)
	}
	if got := DoubleClick(s, "c", "other"); got != s {
		t.Fatalf("double click while editing changed state to %#v", got)
	}
	if got := All(s, active); got != s {
		t.Fatalf("select all while editing changed state to %#v", got)
	}
	s = SetBuffer(s, "Buy oat milk")
	if e := s.(Editing); e.Buffer != "Buy oat milk" {
		t.Fatalf("buffer not updated: %#v", e)
	}
	if got := SetBuffer(Normal{}, "x"); got != (Normal{}) {
		t.Fatalf("SetBuffer outside editing = %#v", got)
	}
}

func TestStep(t *testing.T) {
	s := Step(Normal{}, 1, false, active)
	if got := mustSelected(t, s); got.Anchor != "a" {
		t.Fatalf("step down from normal = %#v", got)
	}
	s = Step(Normal{}, -1, false, active)
	if got := mustSelected(t, s); got.Anchor != "e" {
		t.Fatalf("step up from normal = %#v", got)
	}

	s = Step(single("b"), 1, true, active)
	got := mustSelected(t, s)
	if !reflect.DeepEqual(got.IDs, []string{"b", "c"}) || got.Anchor != "c" {
		t.Fatalf("extend = %#v", got)
	}

	s = Step(single("e"), 1, false, active)
	if got := mustSelected(t, s); got.Anchor != "e" {
		t.Fatalf("step past the end should clamp, got %#v", got)
	}

	if _, ok := Step(single("a"), 1, false, nil).(Normal); !ok {
		t.Fatalf("step over an empty view should return Normal")
	}
}

func TestAfterDelete(t *testing.T) {
	tests := map[string]struct {
		deleted []string
		after   []string
		want    State
	}{
		"middle slides up": {
			deleted: []string{"b", "c"},
			after:   []string{"a", "d", "e"},
			want:    single("d"),
		},
		"end selects new last": {
			deleted: []string{"d", "e"},
			after:   []string{"a", "b", "c"},
			want:    single("c"),
		},
		"everything gone": {
			deleted: active,
			after:   nil,
			want:    Normal{},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := AfterDelete(active, tc.deleted, tc.after)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("AfterDelete = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestPrune(t *testing.T) {
	exists := func(id string) bool { return id != "b" }

	got := Prune(Selected{IDs: []string{"a", "b"}, Anchor: "b"}, exists)
	if !reflect.DeepEqual(got, Selected{IDs: []string{"a"}, Anchor: "a"}) {
		t.Fatalf("prune selection = %#v", got)
	}
	if got := Prune(Selected{IDs: []string{"b"}, Anchor: "b"}, exists); !reflect.DeepEqual(got, Normal{}) {
		t.Fatalf("prune to empty = %#v", got)
	}
	if got := Prune(Editing{ID: "b"}, exists); !reflect.DeepEqual(got, Normal{}) {
		t.Fatalf("prune edit of missing task = %#v", got)
	}
	if got := Prune(Editing{ID: "a", Buffer: "x"}, exists); got != (Editing{ID: "a", Buffer: "x"}) {
		t.Fatalf("prune edit of existing task = %#v", got)
	}
}

func TestOrdered(t *testing.T) {
	sel := Selected{IDs: []string{"d", "a", "zz"}, Anchor: "a"}
	if got := sel.Ordered(active); !reflect.DeepEqual(got, []string{"a", "d"}) {
		t.Fatalf("Ordered = %v", got)
	}
}
