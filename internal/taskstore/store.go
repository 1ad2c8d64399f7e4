// Package taskstore is the bundled task store: an in-memory, json-server
// compatible backend the front end talks to during development. State lives
// for the lifetime of the process; a yaml seed file provides the initial
// people and tasks.
package taskstore

import (
	"strconv"
	"sync"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
)

// Store holds the collections behind the REST surface. Safe for concurrent
// use.
type Store struct {
	mu     sync.Mutex
	people []task.Person
	tasks  []task.Task
	nextID int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// AddPerson appends a person to the user collection.
func (s *Store) AddPerson(p task.Person) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.people = append(s.people, p)
}

// People returns a snapshot of the user collection.
func (s *Store) People() []task.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]task.Person, len(s.people))
	copy(out, s.people)
	return out
}

// Tasks returns a snapshot of the task collection.
func (s *Store) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Create assigns the next numeric id and stores the task.
func (s *Store) Create(t task.Task) task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = task.ID(strconv.Itoa(s.nextID))
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// seed inserts a task keeping nextID ahead of any numeric seed id.
func (s *Store) seed(t task.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, err := strconv.Atoi(string(t.ID)); err == nil && n >= s.nextID {
		s.nextID = n + 1
	}
	s.tasks = append(s.tasks, t)
}

// Update merges the non-nil patch fields into the stored task. The second
// return is false when the id is unknown.
func (s *Store) Update(id task.ID, patch task.Patch) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		return *t, true
	}
	return task.Task{}, false
}

// Delete removes the task with the given id, reporting whether it existed.
func (s *Store) Delete(id task.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}
