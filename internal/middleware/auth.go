package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/planetary/planetary-api/internal/crypto"
)

type contextKey string

const emailKey contextKey = "email"

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header. The token's subject email is placed in the request
// context; any valid token authorizes the request.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONMessage(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONMessage(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			email, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONMessage(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), emailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext extracts the authenticated email from the request context.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

func writeJSONMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
