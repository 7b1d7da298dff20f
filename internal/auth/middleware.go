package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const UserContextKey contextKey = "user"

// AccessGuard validates the access token on every protected request. The
// token travels in the accessToken header; login, register and the refresh
// flow are mounted outside this guard.
func AccessGuard(tokenManager *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("accessToken")
			if token == "" {
				writeUnauthorized(w, "missing access token")
				return
			}

			claims, err := tokenManager.ValidateToken(token)
			if err != nil {
				writeUnauthorized(w, "invalid or expired access token")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the verified token claims from the context.
func GetUserFromContext(ctx context.Context) (*TokenClaims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*TokenClaims)
	return claims, ok
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
