package models

import "time"

// Post is a publication written by a teacher or student.
type Post struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Content  string `json:"content" db:"content"`
	AuthorID int64  `json:"author_id" db:"author_id"`
}

// Comment belongs to a post. ReplyToID points at the parent comment when the
// comment is a reply; it is nil for top-level comments.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	ReplyToID *int64    `json:"reply_to_id,omitempty" db:"reply_to_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Like marks that a user liked a post. One row per (user, post) pair.
type Like struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
