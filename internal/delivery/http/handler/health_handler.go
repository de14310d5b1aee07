package handler

import (
	"net/http"
	"time"

	"medico-backend/pkg/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db      *gorm.DB
	redis   *redis.Client
	version string
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		redis:   redisClient,
		version: version,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "OK", map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
}

// DetailedHealth pings each dependency and reports per-component status.
// A degraded dependency yields 503 so load balancers can rotate the
// instance out.
func (h *HealthHandler) DetailedHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	components := map[string]string{
		"database": "healthy",
		"redis":    "healthy",
	}
	healthy := true

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		components["database"] = "unreachable"
		healthy = false
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		components["redis"] = "unreachable"
		healthy = false
	}

	payload := map[string]interface{}{
		"status":     "healthy",
		"version":    h.version,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"components": components,
	}

	if !healthy {
		payload["status"] = "degraded"
		response.Error(w, http.StatusServiceUnavailable, "One or more dependencies are unreachable", payload)
		return
	}

	response.Success(w, http.StatusOK, "All systems operational", payload)
}
