package entity

import (
	"time"

	"github.com/google/uuid"
)

// Domain-level filters used by the repository layer so it stays decoupled
// from delivery DTOs.

type UserFilter struct {
	Role     string
	IsActive *bool
	Search   string // matches full_name or email, ILIKE
	Page     int
	PageSize int
}

type AppointmentFilter struct {
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
	ClinicID  *uuid.UUID
	Status    string
	FromDate  *time.Time
	ToDate    *time.Time
	Page      int
	PageSize  int
}

type ClinicFilter struct {
	Status   string
	City     string
	Search   string
	Page     int
	PageSize int
}

type DoctorFilter struct {
	Specialization string
	Search         string
	VerifiedOnly   bool
	Page           int
	PageSize       int
}

type PharmacyFilter struct {
	City             string
	Search           string
	SupportsDelivery *bool
	Page             int
	PageSize         int
}

type NotificationFilter struct {
	UserID   *uuid.UUID
	Status   string
	Type     string
	Page     int
	PageSize int
}

// NearbyQuery is a validated radius search input.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKM  float64
	Page      int
	PageSize  int
}

func (q NearbyQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Nearby search rows annotated with the computed great-circle distance.

type NearbyPharmacy struct {
	Pharmacy   `gorm:"embedded"`
	DistanceKM float64 `gorm:"column:distance_km" json:"distance_km"`
}

type NearbyClinic struct {
	Clinic     `gorm:"embedded"`
	DistanceKM float64 `gorm:"column:distance_km" json:"distance_km"`
}

type NearbyDoctor struct {
	Doctor     `gorm:"embedded"`
	ClinicID   uuid.UUID `gorm:"column:clinic_id" json:"clinic_id"`
	ClinicName string    `gorm:"column:clinic_name" json:"clinic_name"`
	DistanceKM float64   `gorm:"column:distance_km" json:"distance_km"`
}
