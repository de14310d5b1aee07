package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID       *uuid.UUID `json:"doctor_id,omitempty"`
	ClinicID       *uuid.UUID `json:"clinic_id,omitempty"`
	DoctorClinicID *uuid.UUID `json:"doctor_clinic_id,omitempty"`
	DoctorName     string     `json:"doctor_name" validate:"required,min=1,max=255"`
	ClinicName     string     `json:"clinic_name,omitempty" validate:"omitempty,max=255"`
	AppointmentAt  time.Time  `json:"appointment_at" validate:"required"`
	Reason         string     `json:"reason" validate:"required,min=1"`
	ContactPhone   string     `json:"contact_phone" validate:"required,max=20"`
	Notes          string     `json:"notes,omitempty"`
}

type UpdateAppointmentRequest struct {
	DoctorName    *string    `json:"doctor_name,omitempty" validate:"omitempty,min=1,max=255"`
	ClinicName    *string    `json:"clinic_name,omitempty" validate:"omitempty,max=255"`
	AppointmentAt *time.Time `json:"appointment_at,omitempty"`
	Reason        *string    `json:"reason,omitempty" validate:"omitempty,min=1"`
	ContactPhone  *string    `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	Notes         *string    `json:"notes,omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed rescheduled cancelled completed no_show"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID  `json:"id"`
	PatientID        uuid.UUID  `json:"patient_id"`
	DoctorID         *uuid.UUID `json:"doctor_id,omitempty"`
	ClinicID         *uuid.UUID `json:"clinic_id,omitempty"`
	DoctorClinicID   *uuid.UUID `json:"doctor_clinic_id,omitempty"`
	DoctorName       string     `json:"doctor_name"`
	ClinicName       string     `json:"clinic_name,omitempty"`
	AppointmentAt    time.Time  `json:"appointment_at"`
	AppointmentEndAt *time.Time `json:"appointment_end_at,omitempty"`
	Reason           string     `json:"reason"`
	ContactPhone     string     `json:"contact_phone"`
	Status           string     `json:"status"`
	Notes            string     `json:"notes,omitempty"`
	Source           string     `json:"source"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}
