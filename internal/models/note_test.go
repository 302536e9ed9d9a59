package models

import "testing"

func TestNoteVisibleTo(t *testing.T) {
	t.Parallel()

	alice := &User{Username: "alice", Role: RoleUser}
	bob := &User{Username: "bob", Role: RoleUser}
	admin := &User{Username: "root", Role: RoleAdmin}

	tests := []struct {
		name string
		note Note
		user *User
		want bool
	}{
		{"public note, stranger", Note{Owner: "alice", IsPrivate: false}, bob, true},
		{"public note, owner", Note{Owner: "alice", IsPrivate: false}, alice, true},
		{"private note, owner", Note{Owner: "alice", IsPrivate: true}, alice, true},
		{"private note, stranger", Note{Owner: "alice", IsPrivate: true}, bob, false},
		{"private note, admin", Note{Owner: "alice", IsPrivate: true}, admin, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.note.VisibleTo(tt.user); got != tt.want {
				t.Errorf("VisibleTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNoteUpdateApply(t *testing.T) {
	t.Parallel()

	note := Note{Title: "groceries", Content: "milk", Owner: "alice", IsPrivate: false}

	newContent := "milk, eggs"
	private := true
	patch := NoteUpdate{Content: &newContent, IsPrivate: &private}
	patch.Apply(&note)

	if note.Title != "groceries" {
		t.Errorf("Title changed to %q, want untouched", note.Title)
	}
	if note.Content != "milk, eggs" {
		t.Errorf("Content = %q, want %q", note.Content, "milk, eggs")
	}
	if !note.IsPrivate {
		t.Error("IsPrivate not applied")
	}
	if note.Owner != "alice" {
		t.Errorf("Owner changed to %q", note.Owner)
	}

	// An empty patch is a no-op.
	before := note
	(&NoteUpdate{}).Apply(&note)
	if note != before {
		t.Errorf("empty patch mutated note: %+v != %+v", note, before)
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	if r, err := ParseRole("admin"); err != nil || r != RoleAdmin {
		t.Errorf("ParseRole(admin) = %v, %v", r, err)
	}
	if r, err := ParseRole("user"); err != nil || r != RoleUser {
		t.Errorf("ParseRole(user) = %v, %v", r, err)
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Error("ParseRole(superuser) succeeded, want error")
	}
	if _, err := ParseRole(""); err == nil {
		t.Error("ParseRole(empty) succeeded, want error")
	}
}
