package database

import (
	"database/sql"
	"fmt"
)

// RunMigrations creates the schema for the given driver. Every statement is
// idempotent so the migrations can run on every startup.
func RunMigrations(db *sql.DB, dbType string) error {
	var queries []string

	if dbType == "postgres" {
		queries = []string{
			`CREATE TABLE IF NOT EXISTS users (
				id BIGSERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT UNIQUE NOT NULL,
				password_hash TEXT NOT NULL,
				role TEXT NOT NULL CHECK (role IN ('student', 'teacher'))
			)`,
			`CREATE TABLE IF NOT EXISTS sessions (
				id BIGSERIAL PRIMARY KEY,
				user_id BIGINT NOT NULL REFERENCES users(id),
				refresh_token_hash TEXT NOT NULL,
				expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
				ip TEXT NOT NULL,
				user_agent TEXT NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS posts (
				id BIGSERIAL PRIMARY KEY,
				title TEXT NOT NULL,
				content TEXT NOT NULL,
				author_id BIGINT NOT NULL REFERENCES users(id)
			)`,
			`CREATE TABLE IF NOT EXISTS comments (
				id BIGSERIAL PRIMARY KEY,
				post_id BIGINT NOT NULL REFERENCES posts(id),
				user_id BIGINT NOT NULL REFERENCES users(id),
				content TEXT NOT NULL,
				reply_to_id BIGINT REFERENCES comments(id),
				created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS likes (
				id BIGSERIAL PRIMARY KEY,
				user_id BIGINT NOT NULL REFERENCES users(id),
				post_id BIGINT NOT NULL REFERENCES posts(id),
				created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
				UNIQUE(user_id, post_id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
			`CREATE INDEX IF NOT EXISTS idx_sessions_refresh_token_hash ON sessions(refresh_token_hash)`,
			`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)`,
			`CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts(author_id)`,
			`CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id)`,
			`CREATE INDEX IF NOT EXISTS idx_likes_post_id ON likes(post_id)`,
		}
	} else {
		queries = []string{
			`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				role TEXT NOT NULL CHECK (role IN ('student', 'teacher'))
			)`,
			`CREATE TABLE IF NOT EXISTS sessions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL,
				refresh_token_hash TEXT NOT NULL,
				expires_at DATETIME NOT NULL,
				ip TEXT NOT NULL,
				user_agent TEXT NOT NULL,
				FOREIGN KEY (user_id) REFERENCES users(id)
			)`,
			`CREATE TABLE IF NOT EXISTS posts (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL,
				content TEXT NOT NULL,
				author_id INTEGER NOT NULL,
				FOREIGN KEY (author_id) REFERENCES users(id)
			)`,
			`CREATE TABLE IF NOT EXISTS comments (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				post_id INTEGER NOT NULL,
				user_id INTEGER NOT NULL,
				content TEXT NOT NULL,
				reply_to_id INTEGER,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (post_id) REFERENCES posts(id),
				FOREIGN KEY (user_id) REFERENCES users(id),
				FOREIGN KEY (reply_to_id) REFERENCES comments(id)
			)`,
			`CREATE TABLE IF NOT EXISTS likes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL,
				post_id INTEGER NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id),
				FOREIGN KEY (post_id) REFERENCES posts(id),
				UNIQUE(user_id, post_id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_sessions_refresh_token_hash ON sessions(refresh_token_hash)`,
		}
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
