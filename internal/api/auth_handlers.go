package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/luizgag/fiap-backend-qualidade/internal/auth"
	"github.com/luizgag/fiap-backend-qualidade/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// refreshCookieName is the HTTP-only cookie carrying the raw refresh token.
// The token never appears in a response body.
const refreshCookieName = "refreshToken"

func (api *Api) setRefreshCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   api.Config.Production(),
		SameSite: http.SameSiteStrictMode,
	})
}

func (api *Api) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   api.Config.Production(),
		SameSite: http.SameSiteStrictMode,
	})
}

// refreshTokenFromRequest reads the refresh cookie. An absent cookie yields
// the empty string; callers treat that as "no session presented".
func refreshTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (api *Api) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := api.Auth.Register(req)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "user created",
		"user":    user,
	})
}

func (api *Api) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := api.Auth.Login(req, clientIP(r), r.UserAgent())
	if err != nil {
		writeAuthError(w, err)
		return
	}

	api.setRefreshCookie(w, result.RefreshToken, result.RefreshExpiresAt)
	writeJSON(w, http.StatusOK, map[string]string{"access_token": result.AccessToken})
}

func (api *Api) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	result, err := api.Auth.Refresh(refreshTokenFromRequest(r))
	if err != nil {
		writeAuthError(w, err)
		return
	}

	api.setRefreshCookie(w, result.RefreshToken, result.RefreshExpiresAt)
	writeJSON(w, http.StatusOK, map[string]string{"access_token": result.AccessToken})
}

func (api *Api) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := api.Auth.Logout(refreshTokenFromRequest(r)); err != nil {
		writeAuthError(w, err)
		return
	}

	api.clearRefreshCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// MeHandler echoes the identity the access guard attached to the request.
func (api *Api) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":   claims.UserID,
		"name": claims.UserName,
		"role": claims.Role,
	})
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (api *Api) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email != nil && !auth.ValidateEmail(*req.Email) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "validation failed: " + auth.StepEmail,
			"step":  auth.StepEmail,
		})
		return
	}

	upd := store.UserUpdate{Name: req.Name, Email: req.Email, Role: req.Role}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		hashed := string(hash)
		upd.PasswordHash = &hashed
	}

	user, err := api.Store.UpdateUser(id, upd)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
