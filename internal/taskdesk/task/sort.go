package task

import (
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering applied to the derived view.
type SortKey string

const (
	SortNone    SortKey = ""
	SortTitle   SortKey = "title"
	SortStatus  SortKey = "status"
	SortCreated SortKey = "created"
)

// Sorter orders task slices. Title ordering is locale-aware and
// case-insensitive, so user-facing text with accented characters collates
// the way the user expects.
type Sorter struct {
	col *collate.Collator
}

// NewSorter builds a sorter collating titles under the given locale.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{col: collate.New(tag, collate.IgnoreCase, collate.IgnoreDiacritics)}
}

// Sort returns a new slice ordered by key. SortNone returns the input order
// unchanged. All orderings are stable, so sorting twice by the same key is
// idempotent. The input slice is never mutated.
func (s *Sorter) Sort(tasks []Task, key SortKey) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	if key == SortNone {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch key {
		case SortTitle:
			return s.col.CompareString(a.Title, b.Title) < 0
		case SortStatus:
			return a.Status.rank() < b.Status.rank()
		case SortCreated:
			return createdBefore(a.ID, b.ID)
		default:
			return false
		}
	})
	return out
}

// createdBefore compares store-assigned ids as a numeric sequence: the
// store hands them out in increasing order, so the lower number was created
// first. Lexicographic comparison would put "10" before "9".
func createdBefore(a, b ID) bool {
	aNum, aErr := strconv.ParseInt(string(a), 10, 64)
	bNum, bErr := strconv.ParseInt(string(b), 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		return aNum < bNum
	case aErr == nil:
		// numeric ids order before non-numeric ones
		return true
	default:
		// non-numeric ids keep their relative order
		return false
	}
}
