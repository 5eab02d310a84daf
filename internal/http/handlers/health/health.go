package health

import (
	"database/sql"
	"net/http"

	"github.com/go-redis/redis/v8"

	"github.com/bragboard/bragboard-service/internal/utils/response"
)

// Status is the health check payload. A degraded dependency does not fail the
// check; load balancers only need to know the process is serving.
type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// Health reports liveness plus dependency reachability
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} Status "Service is healthy"
// @Router /health [get]
func Health(db *sql.DB, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := Status{Status: "ok", Database: "ok", Redis: "ok"}

		if err := db.PingContext(r.Context()); err != nil {
			status.Status = "degraded"
			status.Database = err.Error()
		}

		if redisClient != nil {
			if err := redisClient.Ping(r.Context()).Err(); err != nil {
				status.Status = "degraded"
				status.Redis = err.Error()
			}
		} else {
			status.Redis = "disabled"
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Health check", status))
	}
}
