package tui

import (
	"strings"
	"testing"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
)

func sampleTask(id, title string) task.Task {
	return task.Task{
		ID:        task.ID(id),
		Title:     title,
		Status:    task.StatusPending,
		OwnerID:   "7",
		OwnerName: "Ana Gomez",
	}
}

func TestTableViewEmptyState(t *testing.T) {
	v := NewTableView()
	out := v.View(80, false)
	if !strings.Contains(out, "No tasks registered yet.") {
		t.Fatalf("expected empty-state message, got %q", out)
	}
}

func TestTableViewAppendAndNumbering(t *testing.T) {
	v := NewTableView()
	v.AppendRow(sampleTask("1", "Buy milk"))
	v.AppendRow(sampleTask("2", "Write report"))

	out := v.View(100, false)
	if !strings.Contains(out, "Buy milk") || !strings.Contains(out, "Write report") {
		t.Fatalf("expected both titles in view, got %q", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
}

func TestTableViewUpdateRowKeepsPosition(t *testing.T) {
	v := NewTableView()
	v.AppendRow(sampleTask("1", "First"))
	v.AppendRow(sampleTask("2", "Second"))

	updated := sampleTask("1", "First edited")
	updated.Status = task.StatusDone
	v.UpdateRow(updated)

	rows := v.Rows()
	if rows[0].Title != "First edited" {
		t.Fatalf("expected edited title in place, got %q", rows[0].Title)
	}
	if rows[0].Status != task.StatusDone {
		t.Fatalf("expected updated status, got %q", rows[0].Status)
	}
	if rows[1].Title != "Second" {
		t.Fatalf("expected second row untouched, got %q", rows[1].Title)
	}
}

func TestTableViewUpdateRowUnknownIDIsNoop(t *testing.T) {
	v := NewTableView()
	v.AppendRow(sampleTask("1", "Only"))
	v.UpdateRow(sampleTask("99", "Ghost"))
	if v.Count() != 1 || v.Rows()[0].Title != "Only" {
		t.Fatalf("unexpected rows after unknown-id update: %+v", v.Rows())
	}
}

func TestTableViewRemoveRowRenumbers(t *testing.T) {
	v := NewTableView()
	v.AppendRow(sampleTask("1", "Alpha"))
	v.AppendRow(sampleTask("2", "Beta"))
	v.AppendRow(sampleTask("3", "Gamma"))

	v.RemoveRow("2")

	rows := v.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != "1" || rows[1].ID != "3" {
		t.Fatalf("unexpected order after remove: %v %v", rows[0].ID, rows[1].ID)
	}
	out := v.View(100, false)
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[2], "Gamma") {
		t.Fatalf("expected Gamma on the second row, got %q", lines[2])
	}
}

func TestTableViewRemoveLastRowShowsEmptyState(t *testing.T) {
	v := NewTableView()
	v.AppendRow(sampleTask("1", "Solo"))
	v.RemoveRow("1")
	if v.Count() != 0 {
		t.Fatalf("expected empty table, got %d rows", v.Count())
	}
	if !strings.Contains(v.View(80, false), "No tasks registered yet.") {
		t.Fatal("expected empty-state message after removing last row")
	}
}

func TestTableViewFullRerenderReplacesRows(t *testing.T) {
	v := NewTableView()
	v.AppendRow(sampleTask("1", "Old"))

	v.FullRerender([]task.Task{
		sampleTask("5", "New first"),
		sampleTask("6", "New second"),
	})

	rows := v.Rows()
	if len(rows) != 2 || rows[0].ID != "5" || rows[1].ID != "6" {
		t.Fatalf("unexpected rows after full rerender: %+v", rows)
	}
}

func TestTableViewCountLabelPluralizes(t *testing.T) {
	v := NewTableView()
	if got := v.CountLabel(); got != "0 tasks" {
		t.Fatalf("expected plural zero label, got %q", got)
	}
	v.AppendRow(sampleTask("1", "Solo"))
	if got := v.CountLabel(); got != "1 task" {
		t.Fatalf("expected singular label, got %q", got)
	}
	v.AppendRow(sampleTask("2", "Pair"))
	if got := v.CountLabel(); got != "2 tasks" {
		t.Fatalf("expected plural label, got %q", got)
	}
	v.RemoveRow("2")
	if got := v.CountLabel(); got != "1 task" {
		t.Fatalf("expected singular label after remove, got %q", got)
	}
}

func TestTableViewCursorClamping(t *testing.T) {
	v := NewTableView()
	v.AppendRow(sampleTask("1", "A"))
	v.AppendRow(sampleTask("2", "B"))
	v.AppendRow(sampleTask("3", "C"))

	v.MoveCursor(10)
	if v.Cursor() != 2 {
		t.Fatalf("expected cursor clamped to 2, got %d", v.Cursor())
	}
	v.MoveCursor(-10)
	if v.Cursor() != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", v.Cursor())
	}
	v.CursorBottom()
	v.RemoveRow("3")
	if v.Cursor() != 1 {
		t.Fatalf("expected cursor pulled back after remove, got %d", v.Cursor())
	}
	if sel, ok := v.Selected(); !ok || sel.ID != "2" {
		t.Fatalf("unexpected selection: %+v ok=%v", sel, ok)
	}
}
