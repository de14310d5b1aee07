package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorClinic joins a doctor to a clinic with clinic-specific overrides.
// A (doctor, clinic) pair is unique while active: end_date IS NULL AND
// status = 'active', enforced by a partial unique index.
type DoctorClinic struct {
	ID                          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID                    uuid.UUID        `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ClinicID                    uuid.UUID        `gorm:"type:uuid;not null;index" json:"clinic_id"`
	IsPrimary                   bool             `gorm:"not null;default:false" json:"is_primary"`
	StartDate                   time.Time        `gorm:"type:timestamptz;not null;default:now()" json:"start_date"`
	EndDate                     *time.Time       `gorm:"type:timestamptz" json:"end_date,omitempty"`
	ConsultationFee             *decimal.Decimal `gorm:"type:decimal(10,2)" json:"consultation_fee,omitempty"`
	ConsultationDurationMinutes *int             `json:"consultation_duration_minutes,omitempty"`
	Department                  string           `gorm:"type:varchar(200)" json:"department,omitempty"`
	Designation                 string           `gorm:"type:varchar(200)" json:"designation,omitempty"`
	AvailableDays               JSON             `gorm:"type:jsonb" json:"available_days,omitempty"`
	AvailableTimeSlots          JSON             `gorm:"type:jsonb" json:"available_time_slots,omitempty"`
	AppointmentBookingEnabled   bool             `gorm:"not null;default:true" json:"appointment_booking_enabled"`
	TotalAppointments           int              `gorm:"not null;default:0" json:"total_appointments"`
	CompletedAppointments       int              `gorm:"not null;default:0" json:"completed_appointments"`
	RatingAtClinic              *decimal.Decimal `gorm:"type:decimal(3,2)" json:"rating_at_clinic,omitempty"`
	RatingCountAtClinic         int              `gorm:"not null;default:0" json:"rating_count_at_clinic"`
	Status                      string           `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt                   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Clinic Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (DoctorClinic) TableName() string {
	return "doctor_clinics"
}

// IsCurrentlyActive reports whether the association is the live one for
// its (doctor, clinic) pair.
func (dc *DoctorClinic) IsCurrentlyActive() bool {
	return dc.EndDate == nil && dc.Status == "active"
}
