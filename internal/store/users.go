package store

import (
	"database/sql"
	"strings"

	"github.com/luizgag/fiap-backend-qualidade/internal/models"
)

// CreateUser inserts a new user and fills in its generated id. The caller is
// responsible for hashing the password; this layer never sees plaintext.
func (s *Store) CreateUser(user *models.User) error {
	if s.postgres() {
		return s.db.QueryRow(
			`INSERT INTO users (name, email, password_hash, role)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			user.Name, user.Email, user.PasswordHash, user.Role,
		).Scan(&user.ID)
	}

	result, err := s.db.Exec(
		`INSERT INTO users (name, email, password_hash, role) VALUES (?, ?, ?, ?)`,
		user.Name, user.Email, user.PasswordHash, user.Role,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// EmailExists reports whether a user with that email is already registered.
func (s *Store) EmailExists(email string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		s.rebind("SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)"),
		email,
	).Scan(&exists)
	return exists, err
}

// GetUserByEmail retrieves a user by email
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRow(
		s.rebind("SELECT id, name, email, password_hash, role FROM users WHERE email = ?"),
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by id
func (s *Store) GetUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRow(
		s.rebind("SELECT id, name, email, password_hash, role FROM users WHERE id = ?"),
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UserUpdate holds the optional fields of a partial user update.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *string
}

// UpdateUser applies a partial update and returns the updated row. Targeting
// a missing id fails with ErrUserNotFound.
func (s *Store) UpdateUser(id int64, upd UserUpdate) (*models.User, error) {
	fields := []string{}
	values := []interface{}{}

	if upd.Name != nil {
		fields = append(fields, "name = ?")
		values = append(values, *upd.Name)
	}
	if upd.Email != nil {
		fields = append(fields, "email = ?")
		values = append(values, *upd.Email)
	}
	if upd.PasswordHash != nil {
		fields = append(fields, "password_hash = ?")
		values = append(values, *upd.PasswordHash)
	}
	if upd.Role != nil {
		fields = append(fields, "role = ?")
		values = append(values, *upd.Role)
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	values = append(values, id)
	query := "UPDATE users SET " + strings.Join(fields, ", ") + " WHERE id = ?"

	result, err := s.db.Exec(s.rebind(query), values...)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrUserNotFound
	}

	return s.GetUserByID(id)
}
