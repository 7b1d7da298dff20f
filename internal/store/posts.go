package store

import (
	"database/sql"
	"strings"

	"github.com/luizgag/fiap-backend-qualidade/internal/models"
)

// ListPosts returns every post, or the posts whose title or content match the
// search term when one is given.
func (s *Store) ListPosts(search string) ([]*models.Post, error) {
	query := "SELECT id, title, content, author_id FROM posts"
	var values []interface{}

	if search != "" {
		query += " WHERE title LIKE ? OR content LIKE ?"
		pattern := "%" + search + "%"
		values = append(values, pattern, pattern)
	}

	rows, err := s.db.Query(s.rebind(query), values...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetPostByID retrieves a single post
func (s *Store) GetPostByID(id int64) (*models.Post, error) {
	post := &models.Post{}
	err := s.db.QueryRow(
		s.rebind("SELECT id, title, content, author_id FROM posts WHERE id = ?"),
		id,
	).Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID)
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePost inserts a new post and fills in its generated id.
func (s *Store) CreatePost(post *models.Post) error {
	if s.postgres() {
		return s.db.QueryRow(
			`INSERT INTO posts (title, content, author_id) VALUES ($1, $2, $3) RETURNING id`,
			post.Title, post.Content, post.AuthorID,
		).Scan(&post.ID)
	}

	result, err := s.db.Exec(
		`INSERT INTO posts (title, content, author_id) VALUES (?, ?, ?)`,
		post.Title, post.Content, post.AuthorID,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	post.ID = id
	return nil
}

// PostUpdate holds the optional fields of a partial post update.
type PostUpdate struct {
	Title    *string
	Content  *string
	AuthorID *int64
}

// UpdatePost applies a partial update and returns the updated row.
// ErrPostNotFound when the id does not exist, ErrNoFieldsToUpdate when the
// update carries nothing.
func (s *Store) UpdatePost(id int64, upd PostUpdate) (*models.Post, error) {
	fields := []string{}
	values := []interface{}{}

	if upd.Title != nil {
		fields = append(fields, "title = ?")
		values = append(values, *upd.Title)
	}
	if upd.Content != nil {
		fields = append(fields, "content = ?")
		values = append(values, *upd.Content)
	}
	if upd.AuthorID != nil {
		fields = append(fields, "author_id = ?")
		values = append(values, *upd.AuthorID)
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	values = append(values, id)
	query := "UPDATE posts SET " + strings.Join(fields, ", ") + " WHERE id = ?"

	result, err := s.db.Exec(s.rebind(query), values...)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPostNotFound
	}

	return s.GetPostByID(id)
}

// DeletePost removes a post and returns the deleted row. Deleting a missing
// post is not an error; the returned post is nil in that case.
func (s *Store) DeletePost(id int64) (*models.Post, error) {
	post, err := s.GetPostByID(id)
	if err == ErrPostNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec(s.rebind("DELETE FROM posts WHERE id = ?"), id)
	if err != nil {
		return nil, err
	}
	return post, nil
}
