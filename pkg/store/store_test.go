package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/frog/pkg/task"
)

func loadTestStore(t *testing.T) (Store, string) {
	t.Helper()
	base := t.TempDir()
	s, err := Load(NewConfig(base))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return s, base
}

func TestLoadEmptyStore(t *testing.T) {
	s, _ := loadTestStore(t)
	tasks, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty non-nil sequence, got %#v", tasks)
	}
}

func TestSaveThenLoad(t *testing.T) {
	s, _ := loadTestStore(t)
	at := time.Date(2024, 3, 9, 8, 30, 0, 0, time.UTC)
	want := []task.Task{
		{ID: "a", Title: "Write tests", Priority: task.PriorityHigh},
		{ID: "b", Title: "Eat the frog", IsFrog: true, Priority: task.PriorityLow},
		{ID: "c", Title: "Done thing", IsCompleted: true, CompletedAt: &at, Priority: task.PriorityMedium},
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round-trip mismatch\nwant=%+v\ngot=%+v", want, got)
	}
}

func TestLoadSeesWritesFromAnotherStore(t *testing.T) {
	first, base := loadTestStore(t)
	if err := first.Save([]task.Task{{ID: "a", Title: "a", Priority: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := first.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	second, err := Load(NewConfig(base))
	if err != nil {
		t.Fatalf("load second store: %v", err)
	}
	if err := second.Save([]task.Task{{ID: "a", Title: "a", Priority: 1}, {ID: "b", Title: "b", Priority: 1}}); err != nil {
		t.Fatalf("save from second: %v", err)
	}

	got, err := first.Load(context.Background())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if ids := task.IDs(got); !reflect.DeepEqual(ids, []string{"a", "b"}) {
		t.Fatalf("stale read through cache: %v", ids)
	}
}

func TestDecodeFillsDefaults(t *testing.T) {
	data := []byte(`[
		{"id": "a", "title": "old record", "isCompleted": false, "isFrog": true},
		{"id": "b", "title": "too high", "isCompleted": false, "isFrog": true, "priority": 7},
		{"id": "a", "title": "duplicate"}
	]`)
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []task.Task{
		{ID: "a", Title: "old record", IsFrog: true, Priority: task.PriorityLow},
		{ID: "b", Title: "too high", Priority: task.PriorityHigh},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decode mismatch\nwant=%+v\ngot=%+v", want, got)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
	got, err := Decode([]byte("  \n"))
	if err != nil || len(got) != 0 {
		t.Fatalf("blank file should decode to empty, got %v, %v", got, err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s, base := loadTestStore(t)
	values := map[string]string{
		"geometry.list":  `{"x":1,"y":2,"width":300,"height":500}`,
		"geometry.focus": `{"x":1,"y":2,"width":300,"height":40}`,
		"zoom":           "1.25",
	}
	for k, v := range values {
		if err := s.SetSetting(k, v); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	if err := s.SetSetting("../escape", "x"); err == nil {
		t.Fatalf("expected invalid key error")
	}

	reopened, err := Load(NewConfig(base))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Settings(context.Background())
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if !reflect.DeepEqual(got, values) {
		t.Fatalf("settings mismatch\nwant=%v\ngot=%v", values, got)
	}
	if _, err := os.Stat(filepath.Join(base, settingsDir, "zoom")); err != nil {
		t.Fatalf("expected setting file on disk: %v", err)
	}
}

func TestWatchEmitsTaskChanges(t *testing.T) {
	s, base := loadTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to start before writing.
	time.Sleep(50 * time.Millisecond)

	other, err := Load(NewConfig(base))
	if err != nil {
		t.Fatalf("load second store: %v", err)
	}
	if err := other.Save([]task.Task{{ID: "a", Title: "quick add", Priority: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventTasksChanged {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for task change event")
		}
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory(task.Task{ID: "a", Title: "a", Priority: 0})
	got, _ := m.Load(context.Background())
	if got[0].Priority != task.PriorityLow {
		t.Fatalf("memory load should normalize, got %+v", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, _ := m.Watch(ctx)
	m.Replace([]task.Task{{ID: "b", Title: "b", Priority: 1}})
	select {
	case evt := <-ch:
		if evt.Type != EventTasksChanged {
			t.Fatalf("unexpected event %v", evt.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("expected replace to notify watchers")
	}
	cancel()
	for range ch {
	}
}
