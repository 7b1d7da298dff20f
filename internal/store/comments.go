package store

import (
	"database/sql"
	"time"

	"github.com/luizgag/fiap-backend-qualidade/internal/models"
)

// CreateComment inserts a new comment and fills in its generated id and
// creation time.
func (s *Store) CreateComment(comment *models.Comment) error {
	comment.CreatedAt = time.Now()

	if s.postgres() {
		return s.db.QueryRow(
			`INSERT INTO comments (post_id, user_id, content, reply_to_id, created_at)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			comment.PostID, comment.UserID, comment.Content, comment.ReplyToID, comment.CreatedAt,
		).Scan(&comment.ID)
	}

	result, err := s.db.Exec(
		`INSERT INTO comments (post_id, user_id, content, reply_to_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.PostID, comment.UserID, comment.Content, comment.ReplyToID, comment.CreatedAt,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	comment.ID = id
	return nil
}

// GetCommentsByPostID returns the comments on a post, oldest first.
func (s *Store) GetCommentsByPostID(postID int64) ([]*models.Comment, error) {
	rows, err := s.db.Query(
		s.rebind(`SELECT id, post_id, user_id, content, reply_to_id, created_at
			 FROM comments WHERE post_id = ? ORDER BY created_at`),
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		comment := &models.Comment{}
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID,
			&comment.Content, &comment.ReplyToID, &comment.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// GetCommentByID retrieves a single comment
func (s *Store) GetCommentByID(id int64) (*models.Comment, error) {
	comment := &models.Comment{}
	err := s.db.QueryRow(
		s.rebind(`SELECT id, post_id, user_id, content, reply_to_id, created_at
			 FROM comments WHERE id = ?`),
		id,
	).Scan(&comment.ID, &comment.PostID, &comment.UserID,
		&comment.Content, &comment.ReplyToID, &comment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment replaces a comment's content and returns the updated row.
func (s *Store) UpdateComment(id int64, content string) (*models.Comment, error) {
	result, err := s.db.Exec(
		s.rebind("UPDATE comments SET content = ? WHERE id = ?"),
		content, id,
	)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrCommentNotFound
	}
	return s.GetCommentByID(id)
}

// DeleteComment removes a comment and returns the deleted row, or nil when
// the comment did not exist.
func (s *Store) DeleteComment(id int64) (*models.Comment, error) {
	comment, err := s.GetCommentByID(id)
	if err == ErrCommentNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec(s.rebind("DELETE FROM comments WHERE id = ?"), id)
	if err != nil {
		return nil, err
	}
	return comment, nil
}
