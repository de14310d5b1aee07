package converter

import (
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
)

// NotificationToResponse converts a Notification entity to its DTO
func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}

	response := &dto.NotificationResponse{
		ID:               notification.ID,
		UserID:           notification.UserID,
		Title:            notification.Title,
		Body:             notification.Body,
		NotificationType: notification.NotificationType,
		Priority:         notification.Priority,
		Data:             notification.Data,
		Status:           string(notification.Status),
		SentAt:           notification.SentAt,
		DeliveredAt:      notification.DeliveredAt,
		ReadAt:           notification.ReadAt,
		FailureReason:    notification.FailureReason,
		CreatedAt:        notification.CreatedAt,
	}

	for _, d := range notification.Deliveries {
		if d.DeliveryStatus == entity.DeliveryStatusSent || d.DeliveryStatus == entity.DeliveryStatusDelivered {
			response.SuccessCount++
		} else {
			response.FailureCount++
		}
		response.Deliveries = append(response.Deliveries, dto.NotificationDeliveryResponse{
			ID:             d.ID,
			PushTokenID:    d.PushTokenID,
			FCMMessageID:   d.FCMMessageID,
			DeliveryStatus: string(d.DeliveryStatus),
			DeliveredAt:    d.DeliveredAt,
			FailureReason:  d.FailureReason,
		})
	}

	return response
}

func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = *NotificationToResponse(&notification)
	}
	return responses
}

// PushTokenToResponse converts a PushToken entity to its DTO
func PushTokenToResponse(token *entity.PushToken) *dto.PushTokenResponse {
	if token == nil {
		return nil
	}

	return &dto.PushTokenResponse{
		ID:         token.ID,
		Platform:   token.Platform,
		IsActive:   token.IsActive,
		LastUsedAt: token.LastUsedAt,
		CreatedAt:  token.CreatedAt,
	}
}
