package handler

import (
	"encoding/json"
	"net/http"

	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/delivery/http/middleware"
	"medico-backend/internal/domain/entity"
	"medico-backend/internal/usecase"
	"medico-backend/pkg/response"
	"medico-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	validator           *validator.CustomValidator
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, validator *validator.CustomValidator) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		validator:           validator,
	}
}

func (h *NotificationHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found in context")
		return
	}

	var req dto.RegisterPushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.notificationUsecase.RegisterToken(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPlatform:
			response.Error(w, http.StatusBadRequest, "Invalid platform", nil)
		default:
			response.InternalServerError(w, "Failed to register push token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Push token registered successfully", token)
}

func (h *NotificationHandler) DeactivateToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found in context")
		return
	}

	var req dto.DeactivatePushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.notificationUsecase.DeactivateToken(r.Context(), userID, &req); err != nil {
		switch err {
		case usecase.ErrPushTokenNotFound:
			response.NotFound(w, "Push token not found")
		default:
			response.InternalServerError(w, "Failed to deactivate push token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Push token deactivated successfully", nil)
}

func (h *NotificationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found in context")
		return
	}

	page, pageSize := parsePagination(r)

	notifications, err := h.notificationUsecase.ListMine(r.Context(), userID, page, pageSize)
	if err != nil {
		response.InternalServerError(w, "Failed to list notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found in context")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	if err := h.notificationUsecase.MarkRead(r.Context(), userID, id); err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		default:
			response.InternalServerError(w, "Failed to mark notification as read")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", nil)
}

// Send pushes a notification to a single user. It is guarded by the
// X-Admin-Secret header rather than a user session so that backend jobs
// can call it.
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	notification, err := h.notificationUsecase.SendToUser(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "Target user not found")
		default:
			response.InternalServerError(w, "Failed to send notification")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification processed", notification)
}

func (h *NotificationHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req dto.BroadcastNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.notificationUsecase.Broadcast(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to broadcast notification")
		return
	}

	response.Success(w, http.StatusOK, "Broadcast completed", result)
}

func (h *NotificationHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	q := r.URL.Query()

	filter := entity.NotificationFilter{
		Status:   q.Get("status"),
		Type:     q.Get("type"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := q.Get("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
			return
		}
		filter.UserID = &id
	}

	logs, err := h.notificationUsecase.ListLogs(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list notification logs")
		return
	}

	response.Success(w, http.StatusOK, "Notification logs retrieved successfully", logs)
}
