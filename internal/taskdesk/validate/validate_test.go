package validate

import "testing"

func TestSearchFormRejectsBlankDocument(t *testing.T) {
	if SearchForm("   ").OK() {
		t.Fatalf("expected blank document to fail")
	}
	if !SearchForm("123").OK() {
		t.Fatalf("expected non-empty document to pass")
	}
}

func TestTaskFormReportsEachMissingField(t *testing.T) {
	fe := TaskForm("", " ", "")
	if fe.OK() {
		t.Fatalf("expected failures")
	}
	for _, field := range []string{FieldTitle, FieldDescription, FieldStatus} {
		if fe[field] == "" {
			t.Fatalf("missing message for %s", field)
		}
	}
	if fe.First() == "" {
		t.Fatalf("expected a first message")
	}
}

func TestTaskFormPassesWhenComplete(t *testing.T) {
	if fe := TaskForm("T", "D", "pending"); !fe.OK() {
		t.Fatalf("unexpected errors: %v", fe)
	}
}
