// Package task defines the domain types shared by the session, the remote
// client, and the terminal views: people looked up by document id, the tasks
// registered against them, and the pure filter/sort derivations over the
// authoritative task list.
package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ID is the opaque identifier assigned by the remote store. The store is
// loose about representation and may echo ids as JSON numbers or strings;
// ID absorbs both on decode so every later comparison is plain equality.
type ID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	return fmt.Errorf("id: cannot decode %s", string(data))
}

// MarshalJSON always emits the string form.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// NormalizeID canonicalizes user-supplied id text (form inputs, CLI args)
// into the same representation IDs take on ingestion from the store.
func NormalizeID(raw string) ID {
	return ID(strings.TrimSpace(raw))
}

// Person is the external subject tasks are registered against. Read-only;
// sourced from the remote store.
type Person struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Status is a task's lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses lists the known states in workflow order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusDone}

var badgeLabels = map[Status]string{
	StatusPending:    "Pending",
	StatusInProgress: "In Progress",
	StatusDone:       "Done",
}

// Badge returns the display label for the status. Unknown statuses pass
// through unchanged rather than being masked.
func (s Status) Badge() string {
	if label, ok := badgeLabels[s]; ok {
		return label
	}
	return string(s)
}

// rank orders statuses by workflow position; unknown states sort last.
func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 1
	case StatusInProgress:
		return 2
	case StatusDone:
		return 3
	default:
		return 99
	}
}

// Known reports whether s is one of the defined lifecycle states.
func (s Status) Known() bool {
	_, ok := badgeLabels[s]
	return ok
}

// Task is a unit of work owned by a Person. OwnerName is a snapshot of the
// person's name at creation time and is not resynchronized afterwards.
// Completed mirrors Status == done and is never set independently.
type Task struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	OwnerID     ID     `json:"ownerId"`
	OwnerName   string `json:"ownerName"`
	Completed   bool   `json:"completed"`
}

// Draft carries the user-entered fields of a task before the store assigns
// an id and the session denormalizes the owner.
type Draft struct {
	Title       string
	Description string
	Status      Status
}

// New builds the full task payload from a draft and its owner, deriving the
// completed flag from the status.
func New(d Draft, owner Person) Task {
	return Task{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Status:      d.Status,
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		Completed:   d.Status == StatusDone,
	}
}

// Patch holds a partial update: nil fields are left untouched by the store.
type Patch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *Status `json:"status,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// NewPatch builds the partial update for an edit, keeping the completed
// flag in step with the new status.
func NewPatch(d Draft) Patch {
	title := strings.TrimSpace(d.Title)
	desc := strings.TrimSpace(d.Description)
	status := d.Status
	completed := status == StatusDone
	return Patch{
		Title:       &title,
		Description: &desc,
		Status:      &status,
		Completed:   &completed,
	}
}
