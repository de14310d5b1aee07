package dto

import (
	"time"

	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email                      string      `json:"email,omitempty" validate:"omitempty,email"`
	FullName                   string      `json:"full_name" validate:"required,min=1,max=255"`
	Phone                      string      `json:"phone,omitempty" validate:"omitempty,max=20"`
	ProfilePictureURL          string      `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
	LicenseNumber              string      `json:"license_number,omitempty" validate:"omitempty,max=100"`
	Specialization             string      `json:"specialization,omitempty" validate:"omitempty,max=200"`
	SubSpecialization          string      `json:"sub_specialization,omitempty" validate:"omitempty,max=200"`
	Qualification              string      `json:"qualification,omitempty"`
	ExperienceYears            *int        `json:"experience_years,omitempty" validate:"omitempty,gte=0,lte=80"`
	ConsultationFee            *float64    `json:"consultation_fee,omitempty" validate:"omitempty,gte=0"`
	Bio                        string      `json:"bio,omitempty"`
	LanguagesSpoken            entity.JSON `json:"languages_spoken,omitempty"`
	MedicalCouncilRegistration string      `json:"medical_council_registration,omitempty" validate:"omitempty,max=100"`
	AvailableDays              entity.JSON `json:"available_days,omitempty"`
	AvailableTimeSlots         entity.JSON `json:"available_time_slots,omitempty"`
}

type UpdateDoctorRequest struct {
	Email              *string     `json:"email,omitempty" validate:"omitempty,email"`
	FullName           *string     `json:"full_name,omitempty" validate:"omitempty,min=1,max=255"`
	Phone              *string     `json:"phone,omitempty" validate:"omitempty,max=20"`
	ProfilePictureURL  *string     `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
	Specialization     *string     `json:"specialization,omitempty" validate:"omitempty,max=200"`
	SubSpecialization  *string     `json:"sub_specialization,omitempty" validate:"omitempty,max=200"`
	Qualification      *string     `json:"qualification,omitempty"`
	ExperienceYears    *int        `json:"experience_years,omitempty" validate:"omitempty,gte=0,lte=80"`
	ConsultationFee    *float64    `json:"consultation_fee,omitempty" validate:"omitempty,gte=0"`
	Bio                *string     `json:"bio,omitempty"`
	LanguagesSpoken    entity.JSON `json:"languages_spoken,omitempty"`
	AvailableDays      entity.JSON `json:"available_days,omitempty"`
	AvailableTimeSlots entity.JSON `json:"available_time_slots,omitempty"`
}

type AssignClinicRequest struct {
	ClinicID        uuid.UUID `json:"clinic_id" validate:"required"`
	IsPrimary       bool      `json:"is_primary"`
	ConsultationFee *float64  `json:"consultation_fee,omitempty" validate:"omitempty,gte=0"`
	Department      string    `json:"department,omitempty" validate:"omitempty,max=200"`
	Designation     string    `json:"designation,omitempty" validate:"omitempty,max=200"`
}

// Response DTOs

type DoctorResponse struct {
	ID                          uuid.UUID                `json:"id"`
	Email                       string                   `json:"email,omitempty"`
	FullName                    string                   `json:"full_name"`
	Phone                       string                   `json:"phone,omitempty"`
	ProfilePictureURL           string                   `json:"profile_picture_url,omitempty"`
	LicenseNumber               string                   `json:"license_number,omitempty"`
	Specialization              string                   `json:"specialization,omitempty"`
	SubSpecialization           string                   `json:"sub_specialization,omitempty"`
	Qualification               string                   `json:"qualification,omitempty"`
	ExperienceYears             *int                     `json:"experience_years,omitempty"`
	ConsultationFee             *float64                 `json:"consultation_fee,omitempty"`
	Bio                         string                   `json:"bio,omitempty"`
	LanguagesSpoken             entity.JSON              `json:"languages_spoken,omitempty"`
	IsVerified                  bool                     `json:"is_verified"`
	Rating                      *float64                 `json:"rating,omitempty"`
	RatingCount                 int                      `json:"rating_count"`
	TotalConsultations          int                      `json:"total_consultations"`
	AvailableDays               entity.JSON              `json:"available_days,omitempty"`
	AvailableTimeSlots          entity.JSON              `json:"available_time_slots,omitempty"`
	ConsultationDurationMinutes int                      `json:"consultation_duration_minutes"`
	Clinics                     []DoctorClinicResponse   `json:"clinics,omitempty"`
	CreatedAt                   time.Time                `json:"created_at"`
	UpdatedAt                   time.Time                `json:"updated_at"`
}

type DoctorClinicResponse struct {
	ID              uuid.UUID  `json:"id"`
	DoctorID        uuid.UUID  `json:"doctor_id"`
	ClinicID        uuid.UUID  `json:"clinic_id"`
	ClinicName      string     `json:"clinic_name,omitempty"`
	IsPrimary       bool       `json:"is_primary"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	ConsultationFee *float64   `json:"consultation_fee,omitempty"`
	Department      string     `json:"department,omitempty"`
	Designation     string     `json:"designation,omitempty"`
	Status          string     `json:"status"`
}

type NearbyDoctorResponse struct {
	DoctorResponse
	ClinicID   uuid.UUID `json:"clinic_id"`
	ClinicName string    `json:"clinic_name"`
	DistanceKM float64   `json:"distance_km"`
}

type DoctorListResponse struct {
	Doctors  []DoctorResponse `json:"doctors"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type NearbyDoctorListResponse struct {
	Doctors []NearbyDoctorResponse `json:"doctors"`
	Total   int                    `json:"total"`
}
