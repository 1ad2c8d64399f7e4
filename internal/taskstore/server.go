package taskstore

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
)

// Server exposes the store over the json-server compatible REST surface the
// front end expects: GET /users, GET/POST /tasks, PATCH/DELETE /tasks/{id}.
type Server struct {
	store *Store
	log   *slog.Logger
}

// NewServer wraps a store.
func NewServer(store *Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{store: store, log: log}
}

// Handler builds the routed handler with permissive CORS, matching what a
// browser-hosted client needs during development.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", s.listUsers)
	mux.HandleFunc("GET /tasks", s.listTasks)
	mux.HandleFunc("POST /tasks", s.createTask)
	mux.HandleFunc("PATCH /tasks/{id}", s.updateTask)
	mux.HandleFunc("DELETE /tasks/{id}", s.deleteTask)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.People())
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Tasks())
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var t task.Task
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if t.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	created := s.store.Create(t)
	s.log.Info("task created", "id", created.ID, "owner", created.OwnerID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id := task.NormalizeID(r.PathValue("id"))
	var patch task.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	updated, ok := s.store.Update(id, patch)
	if !ok {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	s.log.Info("task updated", "id", id)
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	id := task.NormalizeID(r.PathValue("id"))
	if !s.store.Delete(id) {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	s.log.Info("task deleted", "id", id)
	writeJSON(w, http.StatusOK, struct{}{})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "err", err)
	}
}
