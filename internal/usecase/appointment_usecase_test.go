package usecase

import (
	"context"
	"testing"
	"time"

	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures SendToUser requests without touching FCM.
type recordingNotifier struct {
	sent []*dto.SendNotificationRequest
}

func (n *recordingNotifier) RegisterToken(ctx context.Context, userID uuid.UUID, req *dto.RegisterPushTokenRequest) (*dto.PushTokenResponse, error) {
	return nil, nil
}

func (n *recordingNotifier) DeactivateToken(ctx context.Context, userID uuid.UUID, req *dto.DeactivatePushTokenRequest) error {
	return nil
}

func (n *recordingNotifier) SendToUser(ctx context.Context, req *dto.SendNotificationRequest) (*dto.NotificationResponse, error) {
	n.sent = append(n.sent, req)
	return &dto.NotificationResponse{ID: uuid.New(), UserID: req.UserID}, nil
}

func (n *recordingNotifier) Broadcast(ctx context.Context, req *dto.BroadcastNotificationRequest) (*dto.BroadcastResultResponse, error) {
	return nil, nil
}

func (n *recordingNotifier) ListMine(ctx context.Context, userID uuid.UUID, page, pageSize int) (*dto.NotificationListResponse, error) {
	return nil, nil
}

func (n *recordingNotifier) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return nil
}

func (n *recordingNotifier) ListLogs(ctx context.Context, filter entity.NotificationFilter) (*dto.NotificationListResponse, error) {
	return nil, nil
}

func newNotifyTestUsecase(notifier NotificationUsecase) *appointmentUsecase {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &appointmentUsecase{log: log, notifier: notifier}
}

func sampleAppointment() *entity.Appointment {
	return &entity.Appointment{
		ID:            uuid.New(),
		PatientID:     uuid.New(),
		DoctorName:    "Dr. Siregar",
		AppointmentAt: time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC),
		Status:        entity.AppointmentStatusScheduled,
	}
}

func TestNotifyStatusChangeKnownStatuses(t *testing.T) {
	tests := []struct {
		status    entity.AppointmentStatus
		wantTitle string
		wantBody  string
		wantType  string
	}{
		{entity.AppointmentStatusConfirmed, "Appointment confirmed", "Your appointment with Dr. Siregar is confirmed.", entity.NotificationTypeAppointmentConfirmation},
		{entity.AppointmentStatusCancelled, "Appointment cancelled", "Your appointment with Dr. Siregar has been cancelled.", entity.NotificationTypeAppointmentCancelled},
		{entity.AppointmentStatusRescheduled, "Appointment rescheduled", "Your appointment with Dr. Siregar has been rescheduled.", entity.NotificationTypeAppointmentReminder},
		{entity.AppointmentStatusCompleted, "Appointment completed", "Your appointment with Dr. Siregar is completed.", entity.NotificationTypeOther},
	}

	for _, tt := range tests {
		notifier := &recordingNotifier{}
		u := newNotifyTestUsecase(notifier)
		appointment := sampleAppointment()

		u.notifyStatusChange(appointment, tt.status)

		require.Len(t, notifier.sent, 1, string(tt.status))
		req := notifier.sent[0]
		assert.Equal(t, appointment.PatientID, req.UserID)
		assert.Equal(t, tt.wantTitle, req.Title)
		assert.Equal(t, tt.wantBody, req.Body)
		assert.Equal(t, tt.wantType, req.NotificationType)
		assert.Equal(t, entity.PriorityHigh, req.Priority)
		assert.Equal(t, string(tt.status), req.Data["status"])
	}
}

func TestNotifyStatusChangeFallsBackForUnmappedStatus(t *testing.T) {
	notifier := &recordingNotifier{}
	u := newNotifyTestUsecase(notifier)
	appointment := sampleAppointment()

	u.notifyStatusChange(appointment, entity.AppointmentStatusNoShow)

	require.Len(t, notifier.sent, 1)
	req := notifier.sent[0]
	assert.Equal(t, "Appointment update", req.Title)
	assert.Equal(t, "Appointment status updated to no_show.", req.Body)
	assert.Equal(t, entity.NotificationTypeOther, req.NotificationType)
}

func TestNotifyCreated(t *testing.T) {
	notifier := &recordingNotifier{}
	u := newNotifyTestUsecase(notifier)
	appointment := sampleAppointment()

	u.notifyCreated(appointment)

	require.Len(t, notifier.sent, 1)
	req := notifier.sent[0]
	assert.Equal(t, appointment.PatientID, req.UserID)
	assert.Equal(t, "Appointment scheduled", req.Title)
	assert.Equal(t, "Appointment with Dr. Siregar on Sep 14, 10:30 AM", req.Body)
	assert.Equal(t, entity.NotificationTypeAppointmentConfirmation, req.NotificationType)
	assert.Equal(t, appointment.ID.String(), req.Data["appointment_id"])
}

func TestNotifyHelpersTolerateNilNotifier(t *testing.T) {
	u := newNotifyTestUsecase(nil)
	appointment := sampleAppointment()

	u.notifyCreated(appointment)
	u.notifyStatusChange(appointment, entity.AppointmentStatusConfirmed)
}
