package handler

import (
	"net/http"
	"strconv"

	"medico-backend/internal/domain/entity"
	"medico-backend/internal/usecase"
	"medico-backend/pkg/response"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	q := r.URL.Query()

	filter := entity.UserFilter{
		Role:     q.Get("role"),
		Search:   q.Get("search"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := q.Get("is_active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid is_active value", nil)
			return
		}
		filter.IsActive = &v
	}

	users, err := h.adminUsecase.ListUsers(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *AdminHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminUsecase.DashboardStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to collect dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
