package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/frog/pkg/app"
	"tableflip.dev/frog/pkg/task"
)

func init() {
	color.NoColor = true
}

func sample() []task.Task {
	return []task.Task{
		{ID: "0123456789abcdef", Title: "Eat the frog", IsFrog: true, Priority: task.PriorityHigh},
		{ID: "fedcba9876543210", Title: "Reply to mail", Priority: task.PriorityLow},
	}
}

func TestPrettyTasks(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{ShowID: true, Out: &buf}
	pp.Tasks(sample()...)

	out := buf.String()
	for _, want := range []string{"01234567", "◆ Eat the frog !!", "○ Reply to mail"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0123456789abcdef") {
		t.Fatalf("ids should be shortened:\n%s", out)
	}
}

func TestPrettyTasksEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Tasks()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestReport(t *testing.T) {
	at := time.Date(2024, 5, 6, 10, 0, 0, 0, time.Local)
	done := sample()[0]
	done.IsCompleted = true
	done.CompletedAt = &at

	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Report(app.ReportResult{
		Since: at.Add(-time.Hour),
		Until: at.Add(time.Hour),
		Days:  []app.ReportDay{{Day: at, Tasks: []task.Task{done}}},
		Total: 1,
		Frogs: 1,
	}, "1d")

	out := buf.String()
	for _, want := range []string{"last 1d", "Monday, May 6 - 1 task", "✔ Eat the frog", "1 completed, 1 of them frogs"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, FormatJSON, sample()); err != nil {
		t.Fatalf("json: %v", err)
	}
	var fromJSON []task.Task
	if err := json.Unmarshal(buf.Bytes(), &fromJSON); err != nil || len(fromJSON) != 2 {
		t.Fatalf("unexpected json %s: %v", buf.String(), err)
	}

	buf.Reset()
	if err := Encode(&buf, FormatYAML, sample()); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(buf.String(), "isFrog: true") {
		t.Fatalf("unexpected yaml:\n%s", buf.String())
	}
	var fromYAML []task.Task
	if err := yaml.Unmarshal(buf.Bytes(), &fromYAML); err != nil || fromYAML[0].Title != "Eat the frog" {
		t.Fatalf("yaml did not decode: %v %+v", err, fromYAML)
	}

	if err := Encode(&buf, "xml", nil); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, sample(), true)
	out := buf.String()
	for _, want := range []string{"ID", "Title", "fedcba98", "Reply to mail", "high"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}

func TestCompletedPerDay(t *testing.T) {
	month := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	count := CompletedPerDay(month, []time.Time{
		time.Date(2024, 2, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 3, 18, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC),
	})
	if len(count) != 29 || count[2] != 2 {
		t.Fatalf("unexpected counts %v", count)
	}

	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Month(month, count)
	if !strings.Contains(buf.String(), "February") || !strings.Contains(buf.String(), "29") {
		t.Fatalf("unexpected calendar:\n%s", buf.String())
	}
}
