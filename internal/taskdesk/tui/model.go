package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/session"
	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
	sharedtui "github.com/mistakeknot/taskdesk/pkg/tui"
)

// sortCycle is the order the sort key steps through.
var sortCycle = []task.SortKey{task.SortNone, task.SortTitle, task.SortStatus, task.SortCreated}

// statusTTL is how long a footer toast stays up before clearing itself.
const statusTTL = 6 * time.Second

// clearStatusMsg expires the toast from generation gen; a stale generation
// means a newer toast replaced it and must stay.
type clearStatusMsg struct{ gen int }

type Model struct {
	sess           *session.Session
	table          *TableView
	searchForm     *SearchForm
	taskForm       *TaskForm
	filterForm     *FilterForm
	mode           string
	confirmAction  string
	confirmMessage string
	confirmID      task.ID
	status         string
	statusKind     session.Kind
	statusGen      int
	keys           sharedtui.CommonKeys
	helpOverlay    sharedtui.HelpOverlay
	width          int
	height         int
}

// NewModel wires the view around an existing session. The table must be the
// same TableView the session renders into.
func NewModel(sess *session.Session, table *TableView) Model {
	return Model{
		sess:        sess,
		table:       table,
		searchForm:  NewSearchForm(),
		taskForm:    NewTaskForm(),
		filterForm:  NewFilterForm(),
		mode:        "browse",
		keys:        sharedtui.NewCommonKeys(),
		helpOverlay: sharedtui.NewHelpOverlay(),
		width:       120,
		height:      40,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearStatusMsg:
		if msg.gen == m.statusGen {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		if m.confirmAction != "" {
			switch {
			case key.Matches(msg, m.keys.Select):
				return m, m.applyConfirmAction()
			case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
				m.clearConfirm()
			}
			return m, nil
		}
		if m.helpOverlay.Visible {
			switch {
			case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back):
				m.helpOverlay.Toggle()
			}
			return m, nil
		}
		switch m.mode {
		case "search":
			return m.updateSearch(msg)
		case "create", "edit":
			return m.updateTaskForm(msg)
		case "filter":
			return m.updateFilter(msg)
		}
		return m.updateBrowse(msg)
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpOverlay.Toggle()
	case key.Matches(msg, m.keys.Search):
		m.mode = "search"
		m.searchForm.Reset()
		m.searchForm.Focus()
	case key.Matches(msg, m.keys.New):
		if m.sess.Person() == nil {
			return m, m.setToast(session.Result{Kind: session.KindInvalid, Message: "Search a person first"})
		}
		m.mode = "create"
		m.taskForm.Reset()
	case key.Matches(msg, m.keys.Edit):
		sel, ok := m.table.Selected()
		if !ok {
			return m, m.setToast(session.Result{Kind: session.KindInvalid, Message: "No task selected"})
		}
		current, ok := m.sess.BeginEdit(sel.ID)
		if !ok {
			return m, m.setToast(session.Result{Kind: session.KindFailure, Message: "Task no longer exists"})
		}
		m.mode = "edit"
		m.taskForm.SetDraft(task.Draft{
			Title:       current.Title,
			Description: current.Description,
			Status:      current.Status,
		})
	case key.Matches(msg, m.keys.Delete):
		sel, ok := m.table.Selected()
		if !ok {
			return m, m.setToast(session.Result{Kind: session.KindInvalid, Message: "No task selected"})
		}
		m.confirmAction = "delete"
		m.confirmID = sel.ID
		m.confirmMessage = fmt.Sprintf("Delete %q?", sel.Title)
	case key.Matches(msg, m.keys.Filter):
		m.mode = "filter"
		m.filterForm.SetCriteria(m.sess.Criteria())
	case key.Matches(msg, m.keys.Sort):
		return m, m.cycleSort()
	case key.Matches(msg, m.keys.Clear):
		m.sess.ClearFilters()
		return m, m.setToast(session.Result{Kind: session.KindSuccess, Message: "Filters cleared"})
	case key.Matches(msg, m.keys.Export):
		return m, m.setToast(m.sess.ExportVisible())
	case key.Matches(msg, m.keys.NavDown):
		m.table.MoveCursor(1)
	case key.Matches(msg, m.keys.NavUp):
		m.table.MoveCursor(-1)
	case key.Matches(msg, m.keys.Top):
		m.table.CursorTop()
	case key.Matches(msg, m.keys.Bottom):
		m.table.CursorBottom()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = "browse"
		m.searchForm.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		res := m.sess.SearchPerson(context.Background(), m.searchForm.Value())
		if res.Kind == session.KindInvalid {
			m.searchForm.SetErrors(res.Fields)
			return m, nil
		}
		cmd := m.setToast(res)
		if res.Kind == session.KindSuccess {
			m.mode = "browse"
			m.searchForm.Blur()
		}
		return m, cmd
	}
	return m, m.searchForm.Update(msg)
}

func (m Model) updateTaskForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case key.Matches(msg, m.keys.Back):
		if m.mode == "edit" {
			m.sess.CancelEdit()
		}
		m.mode = "browse"
		return m, nil
	case keyStr == "tab":
		m.taskForm.NextField()
		return m, nil
	case keyStr == "shift+tab":
		m.taskForm.PrevField()
		return m, nil
	case keyStr == " " && m.taskForm.StatusFocused():
		m.taskForm.CycleStatus()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if !m.taskForm.OnLastField() {
			m.taskForm.NextField()
			return m, nil
		}
		return m.submitTaskForm()
	}
	return m, m.taskForm.Update(msg)
}

func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	draft := m.taskForm.Draft()
	var res session.Result
	if m.mode == "edit" {
		res = m.sess.SaveEdit(context.Background(), draft)
	} else {
		res = m.sess.CreateTask(context.Background(), draft)
	}
	if res.Kind == session.KindInvalid && len(res.Fields) > 0 {
		m.taskForm.SetErrors(res.Fields)
		return m, nil
	}
	cmd := m.setToast(res)
	if res.Kind == session.KindSuccess {
		m.mode = "browse"
	}
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = "browse"
		return m, nil
	case keyStr == "tab":
		m.filterForm.NextField()
		return m, nil
	case keyStr == " " && m.filterForm.StatusFocused():
		m.filterForm.CycleStatus()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		m.sess.SetFilter(m.filterForm.Criteria())
		cmd := m.setToast(session.Result{Kind: session.KindSuccess, Message: describeCriteria(m.sess.Criteria())})
		m.mode = "browse"
		return m, cmd
	}
	return m, m.filterForm.Update(msg)
}

func (m *Model) cycleSort() tea.Cmd {
	current := m.sess.SortKey()
	next := sortCycle[0]
	for i, k := range sortCycle {
		if k == current {
			next = sortCycle[(i+1)%len(sortCycle)]
			break
		}
	}
	m.sess.SetSort(next)
	return m.setToast(session.Result{Kind: session.KindSuccess, Message: describeSort(next)})
}

func (m *Model) applyConfirmAction() tea.Cmd {
	action := m.confirmAction
	id := m.confirmID
	m.clearConfirm()
	if action != "delete" {
		return nil
	}
	return m.setToast(m.sess.DeleteTask(context.Background(), id, true))
}

func (m *Model) clearConfirm() {
	m.confirmAction = ""
	m.confirmMessage = ""
	m.confirmID = ""
}

func (m *Model) setToast(res session.Result) tea.Cmd {
	m.status = res.Message
	m.statusKind = res.Kind
	m.statusGen++
	gen := m.statusGen
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{gen: gen}
	})
}

func (m Model) View() string {
	title := "TASKS"
	focus := "TABLE"
	if m.confirmAction != "" {
		header := renderHeader("CONFIRM", "CONFIRM")
		footer := renderFooter("enter confirm  esc cancel", m.styledStatus())
		body := padBodyToHeight(renderConfirmOverlay(m.confirmMessage), m.height-2)
		return renderFrame(header, body, footer)
	}
	if m.helpOverlay.Visible {
		header := renderHeader("HELP", focus)
		footer := renderFooter(browseKeys(), m.styledStatus())
		body := padBodyToHeight(m.helpOverlay.Render(m.keys, nil, m.width), m.height-2)
		return renderFrame(header, body, footer)
	}
	var body string
	switch m.mode {
	case "search":
		title = "SEARCH"
		focus = "SEARCH"
		body = m.searchForm.View(m.width)
	case "create":
		title = "NEW TASK"
		focus = "FORM"
		body = m.taskForm.View(m.width, "Register task")
	case "edit":
		title = "EDIT TASK"
		focus = "FORM"
		body = m.taskForm.View(m.width, "Edit task")
	case "filter":
		title = "FILTER"
		focus = "FILTER"
		body = m.filterForm.View(m.width)
	default:
		body = m.renderBrowse()
	}
	header := renderHeader(title, focus)
	footer := renderFooter(browseKeys(), m.styledStatus())
	body = padBodyToHeight(body, m.height-2)
	return renderFrame(header, body, footer)
}

func (m Model) renderBrowse() string {
	person := m.renderPersonPanel()
	table := renderPanelTitle("Tasks"+m.viewSuffix(), m.width-4) + "\n" +
		m.table.View(m.width-4, true) + "\n" +
		sharedtui.LabelStyle.Render(m.table.CountLabel())
	return person + "\n" + table
}

func (m Model) renderPersonPanel() string {
	label := sharedtui.LabelStyle.Render("No person selected. Press / to search by document id.")
	if p := m.sess.Person(); p != nil {
		label = sharedtui.SubtitleStyle.Render(p.Name) +
			sharedtui.HelpDescStyle.Render("  "+p.Email+"  id "+string(p.ID))
	}
	return renderPanelTitle("Person", m.width-4) + "\n" + label
}

// viewSuffix summarizes the active filter and sort in the table panel title.
func (m Model) viewSuffix() string {
	suffix := ""
	if c := m.sess.Criteria(); c.Active() {
		suffix += " | " + describeCriteria(c)
	}
	if k := m.sess.SortKey(); k != task.SortNone {
		suffix += " | " + describeSort(k)
	}
	return suffix
}

func (m Model) styledStatus() string {
	if m.status == "" {
		return ""
	}
	switch m.statusKind {
	case session.KindSuccess:
		return sharedtui.ToastSuccessStyle.Render(m.status)
	case session.KindFailure:
		return sharedtui.ToastErrorStyle.Render(m.status)
	default:
		return sharedtui.ToastInfoStyle.Render(m.status)
	}
}

func describeCriteria(c task.Criteria) string {
	if !c.Active() {
		return "No filters"
	}
	out := "Filtered by"
	if c.Status != "" {
		out += " status " + c.Status.Badge()
	}
	if c.Owner != "" {
		out += " owner " + c.Owner
	}
	return out
}

func describeSort(k task.SortKey) string {
	switch k {
	case task.SortTitle:
		return "Sorted by title"
	case task.SortStatus:
		return "Sorted by status"
	case task.SortCreated:
		return "Sorted by creation"
	default:
		return "Insertion order"
	}
}

func browseKeys() string {
	return "/ search  n new  e edit  d delete  f filter  s sort  c clear  x export  ? help  ctrl+c quit"
}
