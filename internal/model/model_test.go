package model

import (
	"context"
	"testing"
)

func TestBucketIsValid(t *testing.T) {
	for _, b := range Buckets {
		if !b.IsValid() {
			t.Errorf("expected %q to be valid", b)
		}
	}
	for _, b := range []Bucket{"", "todo", "Done", "archive"} {
		if b.IsValid() {
			t.Errorf("expected %q to be invalid", b)
		}
	}
}

func TestTaskClone(t *testing.T) {
	orig := Task{ID: 1, Assigned: []int64{1, 2}, Subtasks: []Subtask{{Title: "a"}}}
	c := orig.Clone()
	c.Assigned[0] = 9
	c.Subtasks[0].Done = true

	if orig.Assigned[0] != 1 || orig.Subtasks[0].Done {
		t.Errorf("clone shares memory with original: %+v", orig)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		subs []Subtask
		want SubtaskProgress
	}{
		{"empty", nil, SubtaskProgress{}},
		{"half", []Subtask{{Done: true}, {}}, SubtaskProgress{Done: 1, Total: 2, Percent: 50}},
		{"all", []Subtask{{Done: true}, {Done: true}, {Done: true}}, SubtaskProgress{Done: 3, Total: 3, Percent: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Task{Subtasks: tt.subs}.Progress()
			if got != tt.want {
				t.Errorf("Progress() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Anna Schmidt":    "AS",
		"  émile  zola  ": "ÉZ",
		"Guest":           "G",
		"":                "",
	}
	for in, want := range tests {
		if got := Initials(in); got != want {
			t.Errorf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSessionState(t *testing.T) {
	if (Session{}).State() != SessionAnonymous {
		t.Error("empty session should be anonymous")
	}
	s := Session{Token: "x", CurrentUserIndex: GuestUserIndex}
	if s.State() != SessionAuthenticated || !s.IsGuest() {
		t.Errorf("guest session misreported: %+v", s)
	}
}

func TestScopeContext(t *testing.T) {
	sc := NewScope(Session{Token: "t", CurrentUserIndex: 12, Username: "Anna"})
	ctx := SetScopeToContext(context.Background(), sc)

	got := GetScopeFromContext(ctx)
	if got.UserID != "12" || got.Username != "Anna" {
		t.Errorf("unexpected scope: %+v", got)
	}
	if (GetScopeFromContext(context.Background()) != Scope{}) {
		t.Errorf("expected zero scope without value")
	}
}
