package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor carries its own identity fields (email, name, phone) and is not
// tied to the users table. A user whose role is 'doctor' therefore has no
// satellite row; see the role lifecycle in the user usecase.
type Doctor struct {
	ID                          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email                       string           `gorm:"type:text;uniqueIndex" json:"email,omitempty"`
	FullName                    string           `gorm:"type:text;not null" json:"full_name"`
	Phone                       string           `gorm:"type:varchar(20)" json:"phone,omitempty"`
	ProfilePictureURL           string           `gorm:"type:text" json:"profile_picture_url,omitempty"`
	LicenseNumber               string           `gorm:"type:varchar(100);uniqueIndex" json:"license_number,omitempty"`
	Specialization              string           `gorm:"type:varchar(200);index" json:"specialization,omitempty"`
	SubSpecialization           string           `gorm:"type:varchar(200)" json:"sub_specialization,omitempty"`
	Qualification               string           `gorm:"type:text" json:"qualification,omitempty"`
	ExperienceYears             *int             `json:"experience_years,omitempty"`
	ConsultationFee             *decimal.Decimal `gorm:"type:decimal(10,2)" json:"consultation_fee,omitempty"`
	Bio                         string           `gorm:"type:text" json:"bio,omitempty"`
	LanguagesSpoken             JSON             `gorm:"type:jsonb" json:"languages_spoken,omitempty"`
	MedicalCouncilRegistration  string           `gorm:"type:varchar(100)" json:"medical_council_registration,omitempty"`
	IsVerified                  bool             `gorm:"not null;default:false;index" json:"is_verified"`
	VerifiedAt                  *time.Time       `gorm:"type:timestamptz" json:"verified_at,omitempty"`
	VerifiedBy                  *uuid.UUID       `gorm:"type:uuid" json:"verified_by,omitempty"`
	Rating                      *decimal.Decimal `gorm:"type:decimal(3,2)" json:"rating,omitempty"`
	RatingCount                 int              `gorm:"not null;default:0" json:"rating_count"`
	TotalConsultations          int              `gorm:"not null;default:0" json:"total_consultations"`
	AvailableDays               JSON             `gorm:"type:jsonb" json:"available_days,omitempty"`
	AvailableTimeSlots          JSON             `gorm:"type:jsonb" json:"available_time_slots,omitempty"`
	ConsultationDurationMinutes int              `gorm:"default:30" json:"consultation_duration_minutes"`
	CreatedAt                   time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                   time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinics []DoctorClinic `gorm:"foreignKey:DoctorID" json:"clinics,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
