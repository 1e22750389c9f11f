package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Dan9191/fintrack/internal/service"
)

// TokenParser resolves a bearer token to a user id
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// Auth rejects requests without a valid bearer token and stores the user id
// in the request context
func Auth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				writeMessage(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			userID, err := tokens.ParseToken(strings.TrimSpace(token))
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(service.WithUserID(r.Context(), userID)))
		})
	}
}
