package task

import "strings"

// Criteria holds the active filter inputs. Empty fields are inactive and
// vacuously satisfied.
type Criteria struct {
	Status Status
	Owner  string
}

// Active reports whether any criterion is set.
func (c Criteria) Active() bool {
	return strings.TrimSpace(string(c.Status)) != "" || strings.TrimSpace(c.Owner) != ""
}

// Filter returns the tasks satisfying every active criterion, preserving
// input order. The input slice is never mutated; the result is always a
// fresh slice so callers can hold it across later mutations.
func Filter(tasks []Task, c Criteria) []Task {
	status := Status(strings.TrimSpace(string(c.Status)))
	owner := NormalizeID(c.Owner)
	if status == "" && owner == "" {
		out := make([]Task, len(tasks))
		copy(out, tasks)
		return out
	}
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if status != "" && t.Status != status {
			continue
		}
		if owner != "" && t.OwnerID != owner {
			continue
		}
		out = append(out, t)
	}
	return out
}
