package converter

import (
	"testing"

	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationToResponseCountsDeliveries(t *testing.T) {
	notification := &entity.Notification{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Appointment confirmed",
		Status: entity.NotificationStatusDelivered,
		Deliveries: []entity.NotificationDelivery{
			{ID: uuid.New(), DeliveryStatus: entity.DeliveryStatusSent},
			{ID: uuid.New(), DeliveryStatus: entity.DeliveryStatusSent},
			{ID: uuid.New(), DeliveryStatus: entity.DeliveryStatusFailed, FailureReason: "unregistered"},
			{ID: uuid.New(), DeliveryStatus: entity.DeliveryStatusInvalidToken},
		},
	}

	response := NotificationToResponse(notification)
	require.NotNil(t, response)
	assert.Equal(t, 2, response.SuccessCount)
	assert.Equal(t, 2, response.FailureCount)
	assert.Len(t, response.Deliveries, 4)
}

func TestNotificationToResponseWithoutDeliveries(t *testing.T) {
	notification := &entity.Notification{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: entity.NotificationStatusFailed,
	}

	response := NotificationToResponse(notification)
	require.NotNil(t, response)
	assert.Equal(t, 0, response.SuccessCount)
	assert.Equal(t, 0, response.FailureCount)
	assert.Empty(t, response.Deliveries)
}

func TestNotificationToResponseNil(t *testing.T) {
	assert.Nil(t, NotificationToResponse(nil))
}
