package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medico-backend/internal/converter"
	"medico-backend/internal/delivery/dto"
	"medico-backend/internal/domain/entity"
	"medico-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrAppointmentInPast   = errors.New("cannot book an appointment in the past")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, patientID, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListMine(ctx context.Context, patientID uuid.UUID, status string, page, pageSize int) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, patientID, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, patientID, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	SoftDelete(ctx context.Context, patientID, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context, filter entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	notifier        NotificationUsecase
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	notifier NotificationUsecase,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
	}
}

// Create books an appointment for the logged-in patient. Every new
// appointment starts as scheduled regardless of input.
func (u *appointmentUsecase) Create(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.AppointmentAt.Before(time.Now()) {
		return nil, ErrAppointmentInPast
	}

	appointment := &entity.Appointment{
		PatientID:      patientID,
		DoctorID:       req.DoctorID,
		ClinicID:       req.ClinicID,
		DoctorClinicID: req.DoctorClinicID,
		DoctorName:     req.DoctorName,
		ClinicName:     req.ClinicName,
		AppointmentAt:  req.AppointmentAt,
		Reason:         req.Reason,
		ContactPhone:   req.ContactPhone,
		Notes:          req.Notes,
		Status:         entity.AppointmentStatusScheduled,
		Source:         "patient_app",
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		if isForeignKeyError(err, "doctor") || isForeignKeyError(err, "clinic") {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s patient=%s at=%s", appointment.ID, patientID, appointment.AppointmentAt)
	u.notifyCreated(appointment)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, patientID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findOwned(ctx, patientID, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListMine(ctx context.Context, patientID uuid.UUID, status string, page, pageSize int) (*dto.AppointmentListResponse, error) {
	filter := entity.AppointmentFilter{
		PatientID: &patientID,
		Status:    status,
		Page:      page,
		PageSize:  pageSize,
	}

	appointments, total, err := u.appointmentRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, patientID, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findOwned(ctx, patientID, id)
	if err != nil {
		return nil, err
	}

	if req.DoctorName != nil {
		appointment.DoctorName = *req.DoctorName
	}
	if req.ClinicName != nil {
		appointment.ClinicName = *req.ClinicName
	}
	if req.AppointmentAt != nil {
		if req.AppointmentAt.Before(time.Now()) {
			return nil, ErrAppointmentInPast
		}
		appointment.AppointmentAt = *req.AppointmentAt
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.ContactPhone != nil {
		appointment.ContactPhone = *req.ContactPhone
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus writes any valid status from any other; there is no
// transition graph. Cancelling stamps cancelled_at. A push notification is
// attempted best-effort and never fails the request.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, patientID, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	status := entity.AppointmentStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.findOwned(ctx, patientID, id)
	if err != nil {
		return nil, err
	}

	previous := appointment.Status
	appointment.Status = status
	if status == entity.AppointmentStatusCancelled && appointment.CancelledAt == nil {
		now := time.Now()
		appointment.CancelledAt = &now
	}

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to update appointment status %s: %+v", id, err)
		return nil, err
	}

	if previous != status {
		u.notifyStatusChange(appointment, status)
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) SoftDelete(ctx context.Context, patientID, id uuid.UUID) error {
	if _, err := u.findOwned(ctx, patientID, id); err != nil {
		return err
	}

	affected, err := u.appointmentRepo.SoftDelete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to soft delete appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (u *appointmentUsecase) HardDelete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.appointmentRepo.HardDelete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to hard delete appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	u.log.Infof("Appointment hard deleted: id=%s", id)
	return nil
}

func (u *appointmentUsecase) ListAll(ctx context.Context, filter entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, total, err := u.appointmentRepo.List(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
	}, nil
}

func (u *appointmentUsecase) findOwned(ctx context.Context, patientID, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return nil, ErrAppointmentNotOwned
	}
	return appointment, nil
}

// notifyCreated fires the booking confirmation push. Failures are logged
// and swallowed; the appointment is already persisted.
func (u *appointmentUsecase) notifyCreated(appointment *entity.Appointment) {
	if u.notifier == nil {
		return
	}

	notifyCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	_, err := u.notifier.SendToUser(notifyCtx, &dto.SendNotificationRequest{
		UserID:           appointment.PatientID,
		Title:            "Appointment scheduled",
		Body:             fmt.Sprintf("Appointment with %s on %s", appointment.DoctorName, appointment.AppointmentAt.Format("Jan 2, 3:04 PM")),
		NotificationType: entity.NotificationTypeAppointmentConfirmation,
		Priority:         entity.PriorityHigh,
		Data: entity.JSON{
			"appointment_id": appointment.ID.String(),
			"status":         string(appointment.Status),
		},
	})
	if err != nil {
		u.log.Warnf("Creation notification failed for appointment %s (non-fatal): %+v", appointment.ID, err)
	}
}

// notifyStatusChange fires a push for the new status. Failures are logged
// and swallowed; the status change already committed.
func (u *appointmentUsecase) notifyStatusChange(appointment *entity.Appointment, status entity.AppointmentStatus) {
	if u.notifier == nil {
		return
	}

	var title, body, notificationType string
	switch status {
	case entity.AppointmentStatusConfirmed:
		title = "Appointment confirmed"
		body = fmt.Sprintf("Your appointment with %s is confirmed.", appointment.DoctorName)
		notificationType = entity.NotificationTypeAppointmentConfirmation
	case entity.AppointmentStatusCancelled:
		title = "Appointment cancelled"
		body = fmt.Sprintf("Your appointment with %s has been cancelled.", appointment.DoctorName)
		notificationType = entity.NotificationTypeAppointmentCancelled
	case entity.AppointmentStatusRescheduled:
		title = "Appointment rescheduled"
		body = fmt.Sprintf("Your appointment with %s has been rescheduled.", appointment.DoctorName)
		notificationType = entity.NotificationTypeAppointmentReminder
	case entity.AppointmentStatusCompleted:
		title = "Appointment completed"
		body = fmt.Sprintf("Your appointment with %s is completed.", appointment.DoctorName)
		notificationType = entity.NotificationTypeOther
	default:
		title = "Appointment update"
		body = fmt.Sprintf("Appointment status updated to %s.", status)
		notificationType = entity.NotificationTypeOther
	}

	notifyCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	_, err := u.notifier.SendToUser(notifyCtx, &dto.SendNotificationRequest{
		UserID:           appointment.PatientID,
		Title:            title,
		Body:             body,
		NotificationType: notificationType,
		Priority:         entity.PriorityHigh,
		Data: entity.JSON{
			"appointment_id": appointment.ID.String(),
			"status":         string(status),
		},
	})
	if err != nil {
		u.log.Warnf("Status change notification failed for appointment %s (non-fatal): %+v", appointment.ID, err)
	}
}
