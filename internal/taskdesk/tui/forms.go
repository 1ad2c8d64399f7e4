package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
	"github.com/mistakeknot/taskdesk/internal/taskdesk/validate"
	sharedtui "github.com/mistakeknot/taskdesk/pkg/tui"
)

// SearchForm is the single-field person lookup form.
type SearchForm struct {
	input  textinput.Model
	errors validate.FieldErrors
}

func NewSearchForm() *SearchForm {
	ti := textinput.New()
	ti.Placeholder = "Document id..."
	ti.CharLimit = 40
	ti.Width = 30
	return &SearchForm{input: ti}
}

func (f *SearchForm) Focus() { f.input.Focus() }
func (f *SearchForm) Blur()  { f.input.Blur() }

func (f *SearchForm) Value() string { return f.input.Value() }

func (f *SearchForm) Reset() {
	f.input.SetValue("")
	f.errors = nil
}

func (f *SearchForm) SetErrors(errs validate.FieldErrors) { f.errors = errs }

func (f *SearchForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *SearchForm) View(width int) string {
	lines := []string{
		sharedtui.TitleStyle.Render("Search person"),
		"",
		sharedtui.LabelStyle.Render("Document") + "  " + f.input.View(),
	}
	if msg, ok := f.errors[validate.FieldDocument]; ok {
		lines = append(lines, sharedtui.ErrorTextStyle.Render(msg))
	}
	lines = append(lines, "",
		sharedtui.HelpKeyStyle.Render("enter")+sharedtui.HelpDescStyle.Render(" search")+
			sharedtui.HelpDescStyle.Render("  ")+
			sharedtui.HelpKeyStyle.Render("esc")+sharedtui.HelpDescStyle.Render(" cancel"))
	box := sharedtui.PanelFocusedStyle.Padding(1, 2)
	if width > 0 {
		box = box.Width(min(54, width-4))
	}
	return box.Render(strings.Join(lines, "\n"))
}

// Field order inside the task form.
const (
	fieldTitle = iota
	fieldDescription
	fieldStatus
	taskFieldCount
)

// statusCycle is the order the status selector steps through.
var statusCycle = []task.Status{task.StatusPending, task.StatusInProgress, task.StatusDone}

// TaskForm collects the fields shared by creation and editing.
type TaskForm struct {
	title       textinput.Model
	description textinput.Model
	status      task.Status
	focused     int
	errors      validate.FieldErrors
}

func NewTaskForm() *TaskForm {
	title := textinput.New()
	title.Placeholder = "Title..."
	title.CharLimit = 120
	title.Width = 40
	desc := textinput.New()
	desc.Placeholder = "Description..."
	desc.CharLimit = 400
	desc.Width = 40
	return &TaskForm{title: title, description: desc, status: task.StatusPending}
}

// SetDraft loads existing values, used when editing.
func (f *TaskForm) SetDraft(d task.Draft) {
	f.title.SetValue(d.Title)
	f.description.SetValue(d.Description)
	f.status = d.Status
	if f.status == "" {
		f.status = task.StatusPending
	}
	f.errors = nil
	f.focused = fieldTitle
	f.applyFocus()
}

// Reset clears the form back to a blank pending draft.
func (f *TaskForm) Reset() {
	f.SetDraft(task.Draft{Status: task.StatusPending})
}

// Draft returns the current field values.
func (f *TaskForm) Draft() task.Draft {
	return task.Draft{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Status:      f.status,
	}
}

func (f *TaskForm) SetErrors(errs validate.FieldErrors) { f.errors = errs }

// NextField and PrevField move focus through the fields, wrapping.
func (f *TaskForm) NextField() {
	f.focused = (f.focused + 1) % taskFieldCount
	f.applyFocus()
}

func (f *TaskForm) PrevField() {
	f.focused = (f.focused + taskFieldCount - 1) % taskFieldCount
	f.applyFocus()
}

// OnLastField reports whether focus sits on the final field, where enter
// submits instead of advancing.
func (f *TaskForm) OnLastField() bool { return f.focused == taskFieldCount-1 }

// StatusFocused reports whether the status selector has focus.
func (f *TaskForm) StatusFocused() bool { return f.focused == fieldStatus }

// CycleStatus steps the status selector forward.
func (f *TaskForm) CycleStatus() {
	for i, s := range statusCycle {
		if s == f.status {
			f.status = statusCycle[(i+1)%len(statusCycle)]
			return
		}
	}
	f.status = task.StatusPending
}

func (f *TaskForm) applyFocus() {
	f.title.Blur()
	f.description.Blur()
	switch f.focused {
	case fieldTitle:
		f.title.Focus()
	case fieldDescription:
		f.description.Focus()
	}
}

func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focused {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return cmd
}

func (f *TaskForm) View(width int, heading string) string {
	statusLabel := StatusBadge(f.status)
	if f.StatusFocused() {
		statusLabel = sharedtui.SelectedStyle.Render("< ") + statusLabel + sharedtui.SelectedStyle.Render(" >")
	}
	lines := []string{
		sharedtui.TitleStyle.Render(heading),
		"",
		sharedtui.LabelStyle.Render("Title      ") + f.title.View(),
	}
	if msg, ok := f.errors[validate.FieldTitle]; ok {
		lines = append(lines, sharedtui.ErrorTextStyle.Render(msg))
	}
	lines = append(lines, sharedtui.LabelStyle.Render("Description")+" "+f.description.View())
	if msg, ok := f.errors[validate.FieldDescription]; ok {
		lines = append(lines, sharedtui.ErrorTextStyle.Render(msg))
	}
	lines = append(lines, sharedtui.LabelStyle.Render("Status     ")+" "+statusLabel)
	if msg, ok := f.errors[validate.FieldStatus]; ok {
		lines = append(lines, sharedtui.ErrorTextStyle.Render(msg))
	}
	lines = append(lines, "",
		sharedtui.HelpKeyStyle.Render("tab")+sharedtui.HelpDescStyle.Render(" next field")+
			sharedtui.HelpDescStyle.Render("  ")+
			sharedtui.HelpKeyStyle.Render("space")+sharedtui.HelpDescStyle.Render(" cycle status")+
			sharedtui.HelpDescStyle.Render("  ")+
			sharedtui.HelpKeyStyle.Render("enter")+sharedtui.HelpDescStyle.Render(" save")+
			sharedtui.HelpDescStyle.Render("  ")+
			sharedtui.HelpKeyStyle.Render("esc")+sharedtui.HelpDescStyle.Render(" cancel"))
	box := sharedtui.PanelFocusedStyle.Padding(1, 2)
	if width > 0 {
		box = box.Width(min(64, width-4))
	}
	return box.Render(strings.Join(lines, "\n"))
}

// FilterForm collects the status and owner filter criteria.
type FilterForm struct {
	owner   textinput.Model
	status  task.Status
	focused int
}

const (
	filterFieldStatus = iota
	filterFieldOwner
	filterFieldCount
)

func NewFilterForm() *FilterForm {
	owner := textinput.New()
	owner.Placeholder = "Owner id (blank for all)..."
	owner.CharLimit = 40
	owner.Width = 30
	return &FilterForm{owner: owner}
}

// SetCriteria loads the active criteria so reopening shows current state.
func (f *FilterForm) SetCriteria(c task.Criteria) {
	f.status = c.Status
	f.owner.SetValue(c.Owner)
	f.focused = filterFieldStatus
	f.applyFocus()
}

// Criteria returns the selected filter values.
func (f *FilterForm) Criteria() task.Criteria {
	return task.Criteria{Status: f.status, Owner: f.owner.Value()}
}

// CycleStatus steps status through blank, pending, in_progress, done.
func (f *FilterForm) CycleStatus() {
	switch f.status {
	case "":
		f.status = task.StatusPending
	case task.StatusPending:
		f.status = task.StatusInProgress
	case task.StatusInProgress:
		f.status = task.StatusDone
	default:
		f.status = ""
	}
}

func (f *FilterForm) NextField() {
	f.focused = (f.focused + 1) % filterFieldCount
	f.applyFocus()
}

func (f *FilterForm) StatusFocused() bool { return f.focused == filterFieldStatus }

func (f *FilterForm) applyFocus() {
	if f.focused == filterFieldOwner {
		f.owner.Focus()
	} else {
		f.owner.Blur()
	}
}

func (f *FilterForm) Update(msg tea.Msg) tea.Cmd {
	if f.focused != filterFieldOwner {
		return nil
	}
	var cmd tea.Cmd
	f.owner, cmd = f.owner.Update(msg)
	return cmd
}

func (f *FilterForm) View(width int) string {
	statusLabel := "all"
	if f.status != "" {
		statusLabel = f.status.Badge()
	}
	if f.StatusFocused() {
		statusLabel = sharedtui.SelectedStyle.Render("< " + statusLabel + " >")
	}
	lines := []string{
		sharedtui.TitleStyle.Render("Filter tasks"),
		"",
		sharedtui.LabelStyle.Render("Status") + "  " + statusLabel,
		sharedtui.LabelStyle.Render("Owner ") + "  " + f.owner.View(),
		"",
		sharedtui.HelpKeyStyle.Render("tab") + sharedtui.HelpDescStyle.Render(" next field") +
			sharedtui.HelpDescStyle.Render("  ") +
			sharedtui.HelpKeyStyle.Render("space") + sharedtui.HelpDescStyle.Render(" cycle status") +
			sharedtui.HelpDescStyle.Render("  ") +
			sharedtui.HelpKeyStyle.Render("enter") + sharedtui.HelpDescStyle.Render(" apply") +
			sharedtui.HelpDescStyle.Render("  ") +
			sharedtui.HelpKeyStyle.Render("esc") + sharedtui.HelpDescStyle.Render(" cancel"),
	}
	box := sharedtui.PanelFocusedStyle.Padding(1, 2)
	if width > 0 {
		box = box.Width(min(54, width-4))
	}
	return box.Render(strings.Join(lines, "\n"))
}
