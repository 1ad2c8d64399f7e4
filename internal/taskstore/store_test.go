package taskstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
)

func TestStoreCreateAssignsSequentialIDs(t *testing.T) {
	s := NewStore()
	a := s.Create(task.Task{Title: "first"})
	b := s.Create(task.Task{Title: "second"})
	if a.ID != "1" || b.ID != "2" {
		t.Fatalf("expected ids 1 and 2, got %q and %q", a.ID, b.ID)
	}
}

func TestStoreUpdateMergesPatch(t *testing.T) {
	s := NewStore()
	created := s.Create(task.Task{Title: "before", Description: "keep", Status: task.StatusPending})

	title := "after"
	status := task.StatusDone
	completed := true
	updated, ok := s.Update(created.ID, task.Patch{Title: &title, Status: &status, Completed: &completed})
	if !ok {
		t.Fatal("expected update to find the task")
	}
	if updated.Title != "after" || updated.Description != "keep" {
		t.Fatalf("unexpected merge result: %+v", updated)
	}
	if updated.Status != task.StatusDone || !updated.Completed {
		t.Fatalf("expected done/completed, got %+v", updated)
	}
}

func TestStoreUpdateUnknownID(t *testing.T) {
	s := NewStore()
	if _, ok := s.Update("404", task.Patch{}); ok {
		t.Fatal("expected unknown id to report not found")
	}
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	created := s.Create(task.Task{Title: "doomed"})
	if !s.Delete(created.ID) {
		t.Fatal("expected delete to succeed")
	}
	if s.Delete(created.ID) {
		t.Fatal("expected second delete to report not found")
	}
	if len(s.Tasks()) != 0 {
		t.Fatalf("expected empty store, got %d tasks", len(s.Tasks()))
	}
}

func TestLoadSeedPopulatesStore(t *testing.T) {
	fixture := `users:
  - id: "42"
    name: Ana Gomez
    email: ana@example.com
tasks:
  - id: "7"
    title: Seeded task
    description: From fixture
    status: done
    owner_id: "42"
    owner_name: Ana Gomez
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	if err := LoadSeed(s, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	people := s.People()
	if len(people) != 1 || people[0].Name != "Ana Gomez" {
		t.Fatalf("unexpected people: %+v", people)
	}
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "7" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
	if !tasks[0].Completed {
		t.Fatal("expected completed derived from done status")
	}

	// seeded ids advance the sequence
	next := s.Create(task.Task{Title: "new"})
	if next.ID != "8" {
		t.Fatalf("expected id 8 after seeding id 7, got %q", next.ID)
	}
}

func TestLoadSeedMissingFile(t *testing.T) {
	if err := LoadSeed(NewStore(), filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}
