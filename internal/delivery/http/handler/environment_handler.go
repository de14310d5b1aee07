package handler

import (
	"net/http"
	"strconv"

	"medico-backend/internal/service"
	"medico-backend/pkg/response"
)

type EnvironmentHandler struct {
	environmentService *service.EnvironmentService
}

func NewEnvironmentHandler(environmentService *service.EnvironmentService) *EnvironmentHandler {
	return &EnvironmentHandler{environmentService: environmentService}
}

// GetLocalConditions returns the joined air-quality and weather reading
// for the caller's coordinates.
func (h *EnvironmentHandler) GetLocalConditions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("latitude"), 64)
	if err != nil || lat < -90 || lat > 90 {
		response.Error(w, http.StatusBadRequest, "Invalid latitude parameter", nil)
		return
	}
	lng, err := strconv.ParseFloat(q.Get("longitude"), 64)
	if err != nil || lng < -180 || lng > 180 {
		response.Error(w, http.StatusBadRequest, "Invalid longitude parameter", nil)
		return
	}

	conditions, err := h.environmentService.GetLocalConditions(r.Context(), lat, lng)
	if err != nil {
		response.Error(w, http.StatusServiceUnavailable, "Environmental data currently unavailable", nil)
		return
	}

	response.Success(w, http.StatusOK, "Environmental conditions retrieved successfully", conditions)
}
