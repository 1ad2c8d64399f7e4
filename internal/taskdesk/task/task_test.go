package task

import (
	"encoding/json"
	"testing"
)

func TestIDDecodesNumbersAndStrings(t *testing.T) {
	cases := []struct {
		raw  string
		want ID
	}{
		{`"7"`, "7"},
		{`7`, "7"},
		{`"  12 "`, "12"},
		{`"abc"`, "abc"},
	}
	for _, tc := range cases {
		var id ID
		if err := json.Unmarshal([]byte(tc.raw), &id); err != nil {
			t.Fatalf("decode %s: %v", tc.raw, err)
		}
		if id != tc.want {
			t.Fatalf("decode %s: got %q want %q", tc.raw, id, tc.want)
		}
	}
}

func TestIDEncodesAsString(t *testing.T) {
	out, err := json.Marshal(ID("42"))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"42"` {
		t.Fatalf("got %s", out)
	}
}

func TestNewDerivesCompletedFromStatus(t *testing.T) {
	owner := Person{ID: "1", Name: "Ana", Email: "a@x.com"}
	done := New(Draft{Title: "T", Description: "D", Status: StatusDone}, owner)
	if !done.Completed {
		t.Fatalf("expected done task to be completed")
	}
	pending := New(Draft{Title: "T", Description: "D", Status: StatusPending}, owner)
	if pending.Completed {
		t.Fatalf("expected pending task to not be completed")
	}
	if done.OwnerID != owner.ID || done.OwnerName != "Ana" {
		t.Fatalf("owner not denormalized: %+v", done)
	}
}

func TestNewPatchKeepsCompletedInStep(t *testing.T) {
	p := NewPatch(Draft{Title: "T", Description: "D", Status: StatusDone})
	if p.Completed == nil || !*p.Completed {
		t.Fatalf("expected completed=true for done status")
	}
	p = NewPatch(Draft{Title: "T", Description: "D", Status: StatusInProgress})
	if p.Completed == nil || *p.Completed {
		t.Fatalf("expected completed=false for in_progress status")
	}
}

func TestBadgeMapping(t *testing.T) {
	cases := map[Status]string{
		StatusPending:    "Pending",
		StatusInProgress: "In Progress",
		StatusDone:       "Done",
		Status("weird"):  "weird",
	}
	for status, want := range cases {
		if got := status.Badge(); got != want {
			t.Fatalf("badge(%q): got %q want %q", status, got, want)
		}
	}
}
