// Package session owns the client-side state of one task-management
// session: the selected person, the authoritative task list, and the active
// filter/sort criteria. It orchestrates remote calls, mutates state only on
// confirmed responses, and tells the renderer how to reconcile the visible
// table after every change.
package session

import (
	"context"
	"log/slog"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/export"
	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
	"github.com/mistakeknot/taskdesk/internal/taskdesk/validate"
)

// Remote is the slice of the store client the session depends on.
type Remote interface {
	FindPersonByDocument(ctx context.Context, document string) (*task.Person, error)
	CreateTask(ctx context.Context, t task.Task) (task.Task, error)
	UpdateTask(ctx context.Context, id task.ID, patch task.Patch) (task.Task, error)
	DeleteTask(ctx context.Context, id task.ID) error
}

// Renderer reconciles the displayed table with the derived view. Row
// identity is the task id; FullRerender rebuilds everything in derived
// order when incremental reconciliation cannot keep numbering correct.
type Renderer interface {
	AppendRow(t task.Task)
	UpdateRow(t task.Task)
	RemoveRow(id task.ID)
	FullRerender(ordered []task.Task)
}

// Session is the coordinator. It is not safe for concurrent use: callers
// drive it from a single event loop and each operation runs to completion
// before the next begins. The busy flag rejects submissions that arrive
// while a remote call is still unresolved.
type Session struct {
	remote   Remote
	renderer Renderer
	sorter   *task.Sorter
	exporter *export.Writer
	log      *slog.Logger

	person    *task.Person
	tasks     []task.Task
	criteria  task.Criteria
	sortKey   task.SortKey
	editingID task.ID
	busy      bool
}

// New builds an empty session.
func New(remote Remote, renderer Renderer, sorter *task.Sorter, exporter *export.Writer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		remote:   remote,
		renderer: renderer,
		sorter:   sorter,
		exporter: exporter,
		log:      log,
	}
}

// Person returns the currently selected person, or nil.
func (s *Session) Person() *task.Person { return s.person }

// Tasks returns a snapshot of the authoritative task list.
func (s *Session) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Criteria returns the active filter criteria.
func (s *Session) Criteria() task.Criteria { return s.criteria }

// SortKey returns the active sort criterion.
func (s *Session) SortKey() task.SortKey { return s.sortKey }

// EditingID returns the id of the task currently open in the edit surface.
func (s *Session) EditingID() task.ID { return s.editingID }

// Busy reports whether a remote call is unresolved.
func (s *Session) Busy() bool { return s.busy }

// Visible computes the derived view: filter first, then sort.
func (s *Session) Visible() []task.Task {
	return s.sorter.Sort(task.Filter(s.tasks, s.criteria), s.sortKey)
}

// SearchPerson resolves a person by document id. The prior selection is
// dropped before the remote call, so a failed search leaves no person
// selected. Exactly one remote call per invocation.
func (s *Session) SearchPerson(ctx context.Context, document string) Result {
	if s.busy {
		return busy()
	}
	if fe := validate.SearchForm(document); !fe.OK() {
		return invalid(fe)
	}
	s.person = nil

	s.busy = true
	found, err := s.remote.FindPersonByDocument(ctx, document)
	s.busy = false
	if err != nil {
		return failure("Could not reach the task store. Try again.")
	}
	if found == nil {
		return failure("No person found with that document id")
	}
	s.person = found
	return success("Found " + found.Name)
}

// CreateTask validates the draft, submits it, and on confirmation appends
// the stored task to the authoritative list and reconciles the table.
func (s *Session) CreateTask(ctx context.Context, draft task.Draft) Result {
	if s.busy {
		return busy()
	}
	if s.person == nil {
		return failure("Search for a person before registering tasks")
	}
	if fe := validate.TaskForm(draft.Title, draft.Description, string(draft.Status)); !fe.OK() {
		return invalid(fe)
	}

	payload := task.New(draft, *s.person)
	s.busy = true
	created, err := s.remote.CreateTask(ctx, payload)
	s.busy = false
	if err != nil {
		return failure("Could not register the task. Try again.")
	}

	s.tasks = append(s.tasks, created)
	if s.criteria.Active() || s.sortKey != task.SortNone {
		s.renderer.FullRerender(s.Visible())
	} else {
		s.renderer.AppendRow(created)
	}
	return success("Task registered")
}

// BeginEdit opens the edit surface for the task with the given id and
// returns its current values for prefill. The session records the editing
// id so a single persistent submit path can resolve the target, instead of
// a fresh handler per open.
func (s *Session) BeginEdit(id task.ID) (task.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			s.editingID = id
			return t, true
		}
	}
	s.log.Warn("edit target not in session", "id", id)
	return task.Task{}, false
}

// CancelEdit closes the edit surface without saving.
func (s *Session) CancelEdit() { s.editingID = "" }

// SaveEdit validates the edited fields, applies a partial update, and on
// confirmation replaces the matching task and reconciles the table.
func (s *Session) SaveEdit(ctx context.Context, draft task.Draft) Result {
	if s.busy {
		return busy()
	}
	id := s.editingID
	if id == "" {
		s.log.Warn("save edit with no edit target")
		return failure("No task is being edited")
	}
	if fe := validate.TaskForm(draft.Title, draft.Description, string(draft.Status)); !fe.OK() {
		return invalid(fe)
	}

	s.busy = true
	updated, err := s.remote.UpdateTask(ctx, id, task.NewPatch(draft))
	s.busy = false
	if err != nil {
		return failure("Could not update the task. Try again.")
	}

	s.editingID = ""
	idx := s.indexOf(updated.ID)
	if idx < 0 {
		// should not occur under correct operation; abort without crashing
		s.log.Warn("updated task missing from session", "id", updated.ID)
		return success("Task updated")
	}
	s.tasks[idx] = updated
	if s.criteria.Active() || s.sortKey != task.SortNone {
		s.renderer.FullRerender(s.Visible())
	} else {
		s.renderer.UpdateRow(updated)
	}
	return success("Task updated")
}

// DeleteTask removes the task after the caller has obtained explicit user
// confirmation. A declined confirmation must not reach this method; callers
// pass confirmed=false to record the cancellation without a remote call.
func (s *Session) DeleteTask(ctx context.Context, id task.ID, confirmed bool) Result {
	if !confirmed {
		return Result{Kind: KindCanceled, Message: "Deletion canceled"}
	}
	if s.busy {
		return busy()
	}

	s.busy = true
	err := s.remote.DeleteTask(ctx, id)
	s.busy = false
	if err != nil {
		return failure("Could not delete the task. Try again.")
	}

	idx := s.indexOf(id)
	if idx < 0 {
		s.log.Warn("deleted task missing from session", "id", id)
		return success("Task deleted")
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	if s.criteria.Active() || s.sortKey != task.SortNone {
		s.renderer.FullRerender(s.Visible())
	} else {
		s.renderer.RemoveRow(id)
	}
	return success("Task deleted")
}

// SetFilter replaces the filter criteria and rebuilds the table so row
// numbers and order always match the derived view.
func (s *Session) SetFilter(c task.Criteria) {
	s.criteria = c
	s.renderer.FullRerender(s.Visible())
}

// SetSort replaces the sort criterion and rebuilds the table.
func (s *Session) SetSort(key task.SortKey) {
	s.sortKey = key
	s.renderer.FullRerender(s.Visible())
}

// ClearFilters drops all criteria and rebuilds the table.
func (s *Session) ClearFilters() {
	s.criteria = task.Criteria{}
	s.sortKey = task.SortNone
	s.renderer.FullRerender(s.Visible())
}

// ExportVisible writes the derived view to a JSON artifact, reporting
// empty, success, and failure distinctly.
func (s *Session) ExportVisible() Result {
	visible := s.Visible()
	ok, path, err := s.exporter.Write(visible)
	if err != nil {
		s.log.Warn("export failed", "err", err)
		return failure("Could not export tasks. Try again.")
	}
	if !ok {
		return Result{Kind: KindEmpty, Message: "No visible tasks to export"}
	}
	return Result{Kind: KindSuccess, Message: "Exported " + path, Path: path}
}

func (s *Session) indexOf(id task.ID) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
