package store

import (
	"database/sql"
	"time"

	"github.com/luizgag/fiap-backend-qualidade/internal/models"
)

// ToggleLike likes the post for the user, or removes the like when one
// already exists. Returns the resulting state: true when the post ends up
// liked.
func (s *Store) ToggleLike(postID, userID int64) (bool, error) {
	var id int64
	err := s.db.QueryRow(
		s.rebind("SELECT id FROM likes WHERE post_id = ? AND user_id = ?"),
		postID, userID,
	).Scan(&id)

	switch {
	case err == sql.ErrNoRows:
		_, err = s.db.Exec(
			s.rebind("INSERT INTO likes (post_id, user_id, created_at) VALUES (?, ?, ?)"),
			postID, userID, time.Now(),
		)
		if err != nil {
			return false, err
		}
		return true, nil
	case err != nil:
		return false, err
	default:
		_, err = s.db.Exec(s.rebind("DELETE FROM likes WHERE id = ?"), id)
		if err != nil {
			return false, err
		}
		return false, nil
	}
}

// GetLikeCount returns how many likes a post has.
func (s *Store) GetLikeCount(postID int64) (int, error) {
	var count int
	err := s.db.QueryRow(
		s.rebind("SELECT COUNT(*) FROM likes WHERE post_id = ?"),
		postID,
	).Scan(&count)
	return count, err
}

// GetPostLikes returns the like rows on a post.
func (s *Store) GetPostLikes(postID int64) ([]*models.Like, error) {
	return s.queryLikes("SELECT id, user_id, post_id, created_at FROM likes WHERE post_id = ?", postID)
}

// GetUserLikes returns the likes a user has given.
func (s *Store) GetUserLikes(userID int64) ([]*models.Like, error) {
	return s.queryLikes("SELECT id, user_id, post_id, created_at FROM likes WHERE user_id = ?", userID)
}

func (s *Store) queryLikes(query string, arg int64) ([]*models.Like, error) {
	rows, err := s.db.Query(s.rebind(query), arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	likes := []*models.Like{}
	for rows.Next() {
		like := &models.Like{}
		if err := rows.Scan(&like.ID, &like.UserID, &like.PostID, &like.CreatedAt); err != nil {
			return nil, err
		}
		likes = append(likes, like)
	}
	return likes, rows.Err()
}
