// Package validate holds the pure form-validation helpers. The TUI and CLI
// annotate their inputs with the returned messages; nothing here touches
// presentation or the remote store.
package validate

import "strings"

// Field names used as keys in validation results.
const (
	FieldDocument    = "document"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
)

// FieldErrors maps field names to user-facing messages. Empty means valid.
type FieldErrors map[string]string

// OK reports whether validation passed.
func (fe FieldErrors) OK() bool { return len(fe) == 0 }

// First returns one message for compact surfaces like the CLI.
func (fe FieldErrors) First() string {
	for _, field := range []string{FieldDocument, FieldTitle, FieldDescription, FieldStatus} {
		if msg, ok := fe[field]; ok {
			return msg
		}
	}
	for _, msg := range fe {
		return msg
	}
	return ""
}

// Required reports whether value has content after trimming.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// SearchForm validates the person-search input.
func SearchForm(document string) FieldErrors {
	fe := FieldErrors{}
	if !Required(document) {
		fe[FieldDocument] = "Enter a document id to search"
	}
	return fe
}

// TaskForm validates the create/edit task inputs.
func TaskForm(title, description, status string) FieldErrors {
	fe := FieldErrors{}
	if !Required(title) {
		fe[FieldTitle] = "Title is required"
	}
	if !Required(description) {
		fe[FieldDescription] = "Description is required"
	}
	if !Required(status) {
		fe[FieldStatus] = "Select a status"
	}
	return fe
}
