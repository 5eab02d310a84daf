package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/bragboard/bragboard-service/internal/ratelimit"
	"github.com/bragboard/bragboard-service/internal/utils/response"
)

type RateLimitConfig struct {
	redisClient *redis.Client
	limiters    map[string]*ratelimit.TokenBucket
}

func NewRateLimitConfig(redisClient *redis.Client) *RateLimitConfig {
	config := &RateLimitConfig{
		redisClient: redisClient,
		limiters:    make(map[string]*ratelimit.TokenBucket),
	}

	// Budgets per write action, per user per minute.
	config.limiters["shoutouts"] = ratelimit.NewTokenBucket(redisClient, 20, 20)
	config.limiters["reactions"] = ratelimit.NewTokenBucket(redisClient, 60, 60)
	config.limiters["comments"] = ratelimit.NewTokenBucket(redisClient, 30, 30)
	config.limiters["reports"] = ratelimit.NewTokenBucket(redisClient, 10, 10)

	return config
}

// RateLimitMiddleware limits the named action for the authenticated user.
// Runs after AuthMiddleware.
func (rlc *RateLimitConfig) RateLimitMiddleware(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserIDFromContext(r.Context())
			if !ok {
				response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(
					errors.New("user not authenticated")))
				return
			}

			limiter, exists := rlc.limiters[action]
			if !exists {
				next.ServeHTTP(w, r)
				return
			}

			allowed, err := limiter.Allow(r.Context(), userID, action)
			if err != nil {
				// Fail open: the rate limiter is protection, not a dependency.
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				remaining, _ := limiter.GetRemaining(r.Context(), userID, action)
				w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
				response.WriteJSON(w, http.StatusTooManyRequests, response.GeneralError(
					fmt.Errorf("rate limit exceeded for %s", action)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
