package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is a flat enumeration. Any status may be written from
// any other; there is no transition graph.
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusNoShow      AppointmentStatus = "no_show"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusRescheduled,
		AppointmentStatusCancelled, AppointmentStatusCompleted, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Appointment is a booking owned by a patient. DoctorName/ClinicName are
// denormalized snapshots kept for audit even if the referenced rows change.
type Appointment struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID         *uuid.UUID        `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	ClinicID         *uuid.UUID        `gorm:"type:uuid;index" json:"clinic_id,omitempty"`
	DoctorClinicID   *uuid.UUID        `gorm:"type:uuid" json:"doctor_clinic_id,omitempty"`
	DoctorName       string            `gorm:"type:text;not null" json:"doctor_name"`
	ClinicName       string            `gorm:"type:text" json:"clinic_name,omitempty"`
	AppointmentAt    time.Time         `gorm:"type:timestamptz;not null;index" json:"appointment_at"`
	AppointmentEndAt *time.Time        `gorm:"type:timestamptz" json:"appointment_end_at,omitempty"`
	Reason           string            `gorm:"type:text;not null" json:"reason"`
	ContactPhone     string            `gorm:"type:varchar(20);not null" json:"contact_phone"`
	Status           AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes            string            `gorm:"type:text" json:"notes,omitempty"`
	Source           string            `gorm:"type:text;default:'patient_app'" json:"source"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	CancelledAt      *time.Time        `gorm:"type:timestamptz" json:"cancelled_at,omitempty"`
	DeletedAt        *time.Time        `gorm:"type:timestamptz" json:"deleted_at,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
