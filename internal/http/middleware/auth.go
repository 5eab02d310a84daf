package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bragboard/bragboard-service/internal/storage"
	"github.com/bragboard/bragboard-service/internal/types"
	"github.com/bragboard/bragboard-service/internal/utils/jwt"
	"github.com/bragboard/bragboard-service/internal/utils/response"
)

type contextKey string

const UserIDKey contextKey = "userID"

// AuthMiddleware creates a middleware that validates JWT bearer tokens and
// injects the user ID into the request context.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(
					errors.New("Authorization header required")))
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(
					errors.New("Invalid authorization header format")))
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(
					errors.New("Token not provided")))
				return
			}

			userID, err := jwt.ExtractUserIDFromToken(token, jwtSecret)
			if err != nil {
				response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(
					errors.New("Invalid token")))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// AdminOnly guards admin routes: the authenticated user must exist and carry
// the admin role. Runs after AuthMiddleware.
func AdminOnly(store storage.Storage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserIDFromContext(r.Context())
			if !ok {
				response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(
					errors.New("user not authenticated")))
				return
			}

			user, err := store.GetUserByID(userID)
			if err != nil {
				response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(
					errors.New("user not found")))
				return
			}
			if user.Role != string(types.RoleAdmin) {
				response.WriteJSON(w, http.StatusForbidden, response.GeneralError(
					errors.New("admin access required")))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
