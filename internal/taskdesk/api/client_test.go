package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
)

func usersHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			http.NotFound(w, r)
			return
		}
		// numeric ids: the store is loose about representation
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Ana","email":"a@x.com"},{"id":"2","name":"Bo","email":"b@x.com"}]`))
	}
}

func TestFindPersonByDocumentMatchesNumericID(t *testing.T) {
	srv := httptest.NewServer(usersHandler(t))
	defer srv.Close()

	c := NewClient(srv.URL)
	p, err := c.FindPersonByDocument(context.Background(), " 1 ")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Name != "Ana" {
		t.Fatalf("got %+v", p)
	}
}

func TestFindPersonByDocumentNotFound(t *testing.T) {
	srv := httptest.NewServer(usersHandler(t))
	defer srv.Close()

	c := NewClient(srv.URL)
	p, err := c.FindPersonByDocument(context.Background(), "123")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Fatalf("expected nil, got %+v", p)
	}
}

func TestFindPersonByDocumentFailsClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	p, err := c.FindPersonByDocument(context.Background(), "1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if p != nil {
		t.Fatalf("expected nil person on failure")
	}
}

func TestCreateTaskReturnsServerAssignedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tasks" {
			http.NotFound(w, r)
			return
		}
		var in task.Task
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		in.ID = "5"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	created, err := c.CreateTask(context.Background(), task.Task{Title: "T", Status: task.StatusDone, Completed: true})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "5" || !created.Completed {
		t.Fatalf("got %+v", created)
	}
}

func TestUpdateTaskSendsPartialBody(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/tasks/5" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(task.Task{ID: "5", Title: "New", Status: task.StatusDone, Completed: true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	patch := task.NewPatch(task.Draft{Title: "New", Description: "D", Status: task.StatusDone})
	updated, err := c.UpdateTask(context.Background(), "5", patch)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Title != "New" {
		t.Fatalf("got %+v", updated)
	}
	if _, ok := received["id"]; ok {
		t.Fatalf("patch must not carry the id: %v", received)
	}
}

func TestDeleteTaskStatusMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/tasks/1" {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{}`))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.DeleteTask(context.Background(), "1"); err != nil {
		t.Fatal(err)
	}
	if err := c.DeleteTask(context.Background(), "404"); err == nil {
		t.Fatalf("expected error for missing task")
	}
}
