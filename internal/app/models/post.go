package models

import "time"

// Post defines a feed post based on the 'posts' table.
// Likes holds user ids and never contains the same id twice.
type Post struct {
	ID        string       `json:"_id" db:"id"`
	Content   string       `json:"content" db:"content"`
	Image     *string      `json:"image,omitempty" db:"image"`
	AuthorID  string       `json:"-" db:"author_id"`
	Author    *UserSummary `json:"author,omitempty"`
	Likes     []string     `json:"likes"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time    `json:"updatedAt" db:"updated_at"`
}
