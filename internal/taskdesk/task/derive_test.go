package task

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func sampleTasks() []Task {
	return []Task{
		{ID: "1", Title: "Zanahoria", Status: StatusPending, OwnerID: "1"},
		{ID: "2", Title: "ábaco", Status: StatusDone, OwnerID: "2"},
		{ID: "10", Title: "Banana", Status: StatusInProgress, OwnerID: "1"},
		{ID: "9", Title: "casa", Status: StatusDone, OwnerID: "2"},
	}
}

func titles(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestFilterNoCriteriaReturnsAllInOrder(t *testing.T) {
	in := sampleTasks()
	out := Filter(in, Criteria{})
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("expected element-for-element copy, got %v", titles(out))
	}
	// result must be a fresh slice, not an alias
	out[0].Title = "mutated"
	if in[0].Title == "mutated" {
		t.Fatalf("filter aliases its input")
	}
}

func TestFilterByStatusAndOwner(t *testing.T) {
	in := sampleTasks()
	byStatus := Filter(in, Criteria{Status: StatusDone})
	if len(byStatus) != 2 {
		t.Fatalf("status filter: got %d tasks", len(byStatus))
	}
	both := Filter(in, Criteria{Status: StatusDone, Owner: " 2 "})
	if len(both) != 2 {
		t.Fatalf("combined filter: got %d tasks", len(both))
	}
	none := Filter(in, Criteria{Status: StatusDone, Owner: "1"})
	if len(none) != 0 {
		t.Fatalf("conflicting criteria: got %d tasks", len(none))
	}
}

func TestSortEmptyKeyPreservesOrder(t *testing.T) {
	s := NewSorter(language.Spanish)
	in := sampleTasks()
	out := s.Sort(in, SortNone)
	if !reflect.DeepEqual(titles(in), titles(out)) {
		t.Fatalf("order changed: %v", titles(out))
	}
}

func TestSortByTitleIsLocaleAware(t *testing.T) {
	s := NewSorter(language.Spanish)
	out := s.Sort(sampleTasks(), SortTitle)
	want := []string{"ábaco", "Banana", "casa", "Zanahoria"}
	if !reflect.DeepEqual(titles(out), want) {
		t.Fatalf("got %v want %v", titles(out), want)
	}
}

func TestSortByStatusWorkflowOrder(t *testing.T) {
	s := NewSorter(language.Spanish)
	in := []Task{
		{ID: "1", Status: StatusPending},
		{ID: "2", Status: StatusDone},
		{ID: "3", Status: StatusInProgress},
	}
	out := s.Sort(in, SortStatus)
	want := []Status{StatusPending, StatusInProgress, StatusDone}
	for i, status := range want {
		if out[i].Status != status {
			t.Fatalf("position %d: got %q want %q", i, out[i].Status, status)
		}
	}
}

func TestSortByStatusIsIdempotent(t *testing.T) {
	s := NewSorter(language.Spanish)
	once := s.Sort(sampleTasks(), SortStatus)
	twice := s.Sort(once, SortStatus)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second sort changed order: %v vs %v", titles(once), titles(twice))
	}
}

func TestSortByCreatedComparesNumerically(t *testing.T) {
	s := NewSorter(language.Spanish)
	out := s.Sort(sampleTasks(), SortCreated)
	want := []ID{"1", "2", "9", "10"}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("position %d: got %q want %q", i, out[i].ID, id)
		}
	}
}

func TestSortUnknownStatusRanksLast(t *testing.T) {
	s := NewSorter(language.Spanish)
	in := []Task{
		{ID: "1", Status: Status("mystery")},
		{ID: "2", Status: StatusDone},
	}
	out := s.Sort(in, SortStatus)
	if out[len(out)-1].Status != Status("mystery") {
		t.Fatalf("unknown status should rank last: %v", out)
	}
}

func TestFilterThenSortPreservesCount(t *testing.T) {
	s := NewSorter(language.Spanish)
	filtered := Filter(sampleTasks(), Criteria{Owner: "2"})
	sorted := s.Sort(filtered, SortTitle)
	if len(sorted) != len(filtered) {
		t.Fatalf("sort changed count: %d vs %d", len(sorted), len(filtered))
	}
}
