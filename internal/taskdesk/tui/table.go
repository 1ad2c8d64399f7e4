package tui

import (
	"fmt"
	"strings"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
	sharedtui "github.com/mistakeknot/taskdesk/pkg/tui"
)

// TableView is the presentation layer for the task table. Rows are keyed
// by task id; the session tells it how to reconcile after each mutation.
// Sequence numbers are derived from display position at render time, so
// incremental removals never leave stale numbering.
type TableView struct {
	rows   []task.Task
	cursor int
}

// NewTableView returns an empty table.
func NewTableView() *TableView {
	return &TableView{}
}

// AppendRow adds a task at the end of the display order.
func (v *TableView) AppendRow(t task.Task) {
	v.rows = append(v.rows, t)
}

// UpdateRow locates the row by id and replaces its cells in place; the row
// keeps its position. Unknown ids are ignored.
func (v *TableView) UpdateRow(t task.Task) {
	for i := range v.rows {
		if v.rows[i].ID == t.ID {
			v.rows[i] = t
			return
		}
	}
}

// RemoveRow removes the row with the given id.
func (v *TableView) RemoveRow(id task.ID) {
	for i := range v.rows {
		if v.rows[i].ID == id {
			v.rows = append(v.rows[:i], v.rows[i+1:]...)
			break
		}
	}
	v.clampCursor()
}

// FullRerender clears and rebuilds every row in the given order.
func (v *TableView) FullRerender(ordered []task.Task) {
	v.rows = make([]task.Task, len(ordered))
	copy(v.rows, ordered)
	v.clampCursor()
}

// Count returns the number of displayed rows.
func (v *TableView) Count() int { return len(v.rows) }

// CountLabel returns the pluralized row count rendered with the table.
func (v *TableView) CountLabel() string {
	if len(v.rows) == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", len(v.rows))
}

// Rows returns the displayed tasks in order.
func (v *TableView) Rows() []task.Task {
	out := make([]task.Task, len(v.rows))
	copy(out, v.rows)
	return out
}

// Cursor returns the selected row index.
func (v *TableView) Cursor() int { return v.cursor }

// Selected returns the task under the cursor, or false when the table is
// empty.
func (v *TableView) Selected() (task.Task, bool) {
	if len(v.rows) == 0 {
		return task.Task{}, false
	}
	return v.rows[v.cursor], true
}

// MoveCursor shifts the selection by delta, clamped to the row range.
func (v *TableView) MoveCursor(delta int) {
	v.cursor += delta
	v.clampCursor()
}

// CursorTop and CursorBottom jump to the ends of the table.
func (v *TableView) CursorTop()    { v.cursor = 0 }
func (v *TableView) CursorBottom() { v.cursor = len(v.rows) - 1; v.clampCursor() }

func (v *TableView) clampCursor() {
	if v.cursor >= len(v.rows) {
		v.cursor = len(v.rows) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

const (
	colSeq    = 4
	colTitle  = 22
	colStatus = 13
	colOwner  = 14
)

// View renders the table at the given width, or the empty-state when no
// rows are displayed.
func (v *TableView) View(width int, focused bool) string {
	if len(v.rows) == 0 {
		return sharedtui.LabelStyle.Render("No tasks registered yet.")
	}
	descWidth := width - colSeq - colTitle - colStatus - colOwner - 8
	if descWidth < 10 {
		descWidth = 10
	}
	var b strings.Builder
	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %s",
		colSeq, "#", colTitle, "Title", colStatus, "Status", colOwner, "Owner", "Description")
	b.WriteString(sharedtui.SubtitleStyle.Render(header))
	b.WriteString("\n")
	for i, t := range v.rows {
		line := fmt.Sprintf("%-*d %-*s %-*s %-*s %s",
			colSeq, i+1,
			colTitle, truncate(t.Title, colTitle-1),
			colStatus, t.Status.Badge(),
			colOwner, truncate(t.OwnerName, colOwner-1),
			truncate(t.Description, descWidth))
		if focused && i == v.cursor {
			line = sharedtui.SelectedStyle.Render("> " + line)
		} else {
			line = sharedtui.UnselectedStyle.Render("  " + line)
		}
		b.WriteString(line)
		if i < len(v.rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// StatusBadge renders the styled badge for a status.
func StatusBadge(s task.Status) string {
	switch s {
	case task.StatusPending:
		return sharedtui.BadgePendingStyle.Render(s.Badge())
	case task.StatusInProgress:
		return sharedtui.BadgeInProgressStyle.Render(s.Badge())
	case task.StatusDone:
		return sharedtui.BadgeDoneStyle.Render(s.Badge())
	default:
		return sharedtui.BadgeUnknownStyle.Render(s.Badge())
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
