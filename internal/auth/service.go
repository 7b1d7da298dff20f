package auth

import (
	"errors"
	"log"
	"time"

	"github.com/luizgag/fiap-backend-qualidade/internal/models"
	"github.com/luizgag/fiap-backend-qualidade/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases must stay indistinguishable to the client.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
	// ErrSessionInvalid covers both a missing and an expired session.
	ErrSessionInvalid = errors.New("session is invalid or expired")
)

// UserStore is the credential storage contract the auth service depends on.
type UserStore interface {
	CreateUser(user *models.User) error
	EmailExists(email string) (bool, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
}

// SessionStore is the session storage contract. Session rows are owned by
// this service; nothing else mutates them.
type SessionStore interface {
	CreateSession(userID int64, refreshTokenHash string, expiresAt time.Time, ip, userAgent string) (int64, error)
	GetSessionByHash(refreshTokenHash string) (*models.Session, error)
	DeleteSessionByHash(refreshTokenHash string) error
	UpdateSessionExpiry(refreshTokenHash string, newExpiresAt time.Time) error
}

// Service orchestrates registration, login, logout and session refresh.
type Service struct {
	users      UserStore
	sessions   SessionStore
	tokens     *TokenManager
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewService creates the auth service.
func NewService(users UserStore, sessions SessionStore, tokens *TokenManager, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// LoginResult carries the credentials minted for a client. The raw refresh
// token is handed to the transport layer to be set as an HTTP-only cookie; it
// never travels in a response body.
type LoginResult struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// Register validates the request, hashes the password and creates the user.
func (s *Service) Register(req RegisterRequest) (*models.User, error) {
	if verr := ValidateRegister(req); verr != nil {
		return nil, verr
	}

	exists, err := s.users.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}

	log.Printf("Registered user %d (%s)", user.ID, user.Role)
	return user, nil
}

// Login verifies the credentials, mints an access token and a refresh token,
// and persists a session holding the refresh token's hash.
func (s *Service) Login(req LoginRequest, ip, userAgent string) (*LoginResult, error) {
	if verr := ValidateLogin(req); verr != nil {
		return nil, verr
	}

	user, err := s.users.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateToken(user, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := NewRefreshToken()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.refreshTTL)
	if _, err := s.sessions.CreateSession(user.ID, HashRefreshToken(refreshToken), expiresAt, ip, userAgent); err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: expiresAt,
	}, nil
}

// Logout destroys the session matching the refresh token. Logging out with
// no token, or with a token that matches nothing, still succeeds.
func (s *Service) Logout(rawRefreshToken string) error {
	if rawRefreshToken == "" {
		return nil
	}
	return s.sessions.DeleteSessionByHash(HashRefreshToken(rawRefreshToken))
}

// ValidateSession resolves a raw refresh token to its session. Missing and
// expired sessions both come back as ErrSessionInvalid.
func (s *Service) ValidateSession(rawRefreshToken string) (*models.Session, error) {
	if rawRefreshToken == "" {
		return nil, ErrSessionInvalid
	}
	session, err := s.sessions.GetSessionByHash(HashRefreshToken(rawRefreshToken))
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	return session, nil
}

// Refresh re-arms the session's expiry and mints a fresh access token. The
// refresh token itself is not rotated: the session keeps its hash.
func (s *Service) Refresh(rawRefreshToken string) (*LoginResult, error) {
	session, err := s.ValidateSession(rawRefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}

	newExpiresAt := time.Now().Add(s.refreshTTL)
	if err := s.sessions.UpdateSessionExpiry(session.RefreshTokenHash, newExpiresAt); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}

	accessToken, err := s.tokens.GenerateToken(user, s.accessTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:      accessToken,
		RefreshToken:     rawRefreshToken,
		RefreshExpiresAt: newExpiresAt,
	}, nil
}
