package store

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// Store handles all database operations. It is safe for concurrent use:
// every method issues a single statement against the underlying pool.
type Store struct {
	db     *sql.DB
	dbType string
}

// New creates a new store instance over an already opened connection.
// dbType is "sqlite" or "postgres" and selects the placeholder style.
func New(db *sql.DB, dbType string) *Store {
	return &Store{db: db, dbType: dbType}
}

// rebind rewrites ? placeholders to $1..$n for PostgreSQL. SQLite queries
// pass through untouched.
func (s *Store) rebind(query string) string {
	if s.dbType != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) postgres() bool {
	return s.dbType == "postgres"
}
