package store

import (
	"database/sql"
	"time"

	"github.com/luizgag/fiap-backend-qualidade/internal/models"
)

// CreateSession inserts one session row and returns its id. Uniqueness of the
// hash is not enforced here: the token source carries 320 bits of entropy, so
// collisions are not a practical concern.
func (s *Store) CreateSession(userID int64, refreshTokenHash string, expiresAt time.Time, ip, userAgent string) (int64, error) {
	if s.postgres() {
		var id int64
		err := s.db.QueryRow(
			`INSERT INTO sessions (user_id, refresh_token_hash, expires_at, ip, user_agent)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			userID, refreshTokenHash, expiresAt, ip, userAgent,
		).Scan(&id)
		return id, err
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (user_id, refresh_token_hash, expires_at, ip, user_agent)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, refreshTokenHash, expiresAt, ip, userAgent,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetSessionByHash returns the session matching the hash, provided it has not
// expired. A missing row and an expired row both come back as
// ErrSessionNotFound: callers cannot tell whether a session ever existed.
func (s *Store) GetSessionByHash(refreshTokenHash string) (*models.Session, error) {
	session := &models.Session{}
	err := s.db.QueryRow(
		s.rebind(`SELECT id, user_id, refresh_token_hash, expires_at, ip, user_agent
			 FROM sessions WHERE refresh_token_hash = ? AND expires_at > ?`),
		refreshTokenHash, time.Now(),
	).Scan(&session.ID, &session.UserID, &session.RefreshTokenHash, &session.ExpiresAt, &session.IP, &session.UserAgent)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSessionByHash removes the session matching the hash. Deleting a
// session that does not exist is not an error; logout is idempotent cleanup.
func (s *Store) DeleteSessionByHash(refreshTokenHash string) error {
	_, err := s.db.Exec(
		s.rebind("DELETE FROM sessions WHERE refresh_token_hash = ?"),
		refreshTokenHash,
	)
	return err
}

// UpdateSessionExpiry extends the matching session's lifetime. Unlike delete,
// it must confirm the session still exists and returns ErrSessionNotFound when
// no row matched.
func (s *Store) UpdateSessionExpiry(refreshTokenHash string, newExpiresAt time.Time) error {
	result, err := s.db.Exec(
		s.rebind("UPDATE sessions SET expires_at = ? WHERE refresh_token_hash = ?"),
		newExpiresAt, refreshTokenHash,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteExpiredSessions removes expired rows. Expired sessions are already
// invisible to GetSessionByHash; this exists for operational cleanup only.
func (s *Store) DeleteExpiredSessions() error {
	_, err := s.db.Exec(
		s.rebind("DELETE FROM sessions WHERE expires_at < ?"),
		time.Now(),
	)
	return err
}
