package models

import "github.com/google/uuid"

// Note is owned by the username recorded at creation time. Ownership never
// changes, including across updates by an admin.
type Note struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Owner     string    `json:"owner" db:"owner"`
	IsPrivate bool      `json:"is_private" db:"is_private"`
}

// NoteUpdate is a partial patch. Nil fields are left untouched; Owner is not
// part of the patch surface at all.
type NoteUpdate struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	IsPrivate *bool   `json:"is_private"`
}

func (p *NoteUpdate) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.IsPrivate != nil {
		n.IsPrivate = *p.IsPrivate
	}
}

// VisibleTo reports whether a note may be read by the given user: public
// notes by anyone, private notes only by their owner or an admin.
func (n *Note) VisibleTo(u *User) bool {
	if !n.IsPrivate {
		return true
	}
	return n.Owner == u.Username || u.IsAdmin()
}
