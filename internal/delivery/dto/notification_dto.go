package dto

import (
	"time"

	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPushTokenRequest struct {
	Token    string `json:"token" validate:"required,min=1"`
	Platform string `json:"platform" validate:"required,oneof=android ios web"`
}

// DeactivatePushTokenRequest disables one token, or every token the user
// has when Token is empty.
type DeactivatePushTokenRequest struct {
	Token string `json:"token,omitempty"`
}

type SendNotificationRequest struct {
	UserID           uuid.UUID   `json:"user_id" validate:"required"`
	Title            string      `json:"title" validate:"required,min=1,max=255"`
	Body             string      `json:"body" validate:"required,min=1"`
	NotificationType string      `json:"notification_type,omitempty" validate:"omitempty,max=50"`
	Priority         string      `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	Data             entity.JSON `json:"data,omitempty"`
}

type BroadcastNotificationRequest struct {
	Role             string      `json:"role,omitempty" validate:"omitempty,oneof=patient doctor pharmacy admin"`
	Title            string      `json:"title" validate:"required,min=1,max=255"`
	Body             string      `json:"body" validate:"required,min=1"`
	NotificationType string      `json:"notification_type,omitempty" validate:"omitempty,max=50"`
	Priority         string      `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	Data             entity.JSON `json:"data,omitempty"`
}

// Response DTOs

type PushTokenResponse struct {
	ID         uuid.UUID  `json:"id"`
	Platform   string     `json:"platform"`
	IsActive   bool       `json:"is_active"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type NotificationResponse struct {
	ID               uuid.UUID                      `json:"id"`
	UserID           uuid.UUID                      `json:"user_id"`
	Title            string                         `json:"title"`
	Body             string                         `json:"body"`
	NotificationType string                         `json:"notification_type"`
	Priority         string                         `json:"priority"`
	Data             entity.JSON                    `json:"data,omitempty"`
	Status           string                         `json:"status"`
	SentAt           *time.Time                     `json:"sent_at,omitempty"`
	DeliveredAt      *time.Time                     `json:"delivered_at,omitempty"`
	ReadAt           *time.Time                     `json:"read_at,omitempty"`
	FailureReason    string                         `json:"failure_reason,omitempty"`
	SuccessCount     int                            `json:"success_count"`
	FailureCount     int                            `json:"failure_count"`
	Deliveries       []NotificationDeliveryResponse `json:"deliveries,omitempty"`
	CreatedAt        time.Time                      `json:"created_at"`
}

type NotificationDeliveryResponse struct {
	ID             uuid.UUID  `json:"id"`
	PushTokenID    uuid.UUID  `json:"push_token_id"`
	FCMMessageID   string     `json:"fcm_message_id,omitempty"`
	DeliveryStatus string     `json:"delivery_status"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	FailureReason  string     `json:"failure_reason,omitempty"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

type BroadcastResultResponse struct {
	TotalUsers int `json:"total_users"`
	Sent       int `json:"sent"`
	Failed     int `json:"failed"`
}
