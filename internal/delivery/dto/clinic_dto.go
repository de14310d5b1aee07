package dto

import (
	"time"

	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type CreateClinicRequest struct {
	Name         string      `json:"name" validate:"required,min=1,max=255"`
	Slug         string      `json:"slug,omitempty" validate:"omitempty,max=255"`
	Description  string      `json:"description,omitempty"`
	LogoURL      string      `json:"logo_url,omitempty" validate:"omitempty,url"`
	Contacts     entity.JSON `json:"contacts,omitempty"`
	Address      string      `json:"address" validate:"required,min=1"`
	Latitude     *float64    `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64    `json:"longitude,omitempty" validate:"omitempty,longitude"`
	OpeningHours entity.JSON `json:"opening_hours,omitempty"`
}

type UpdateClinicRequest struct {
	Name         *string     `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description  *string     `json:"description,omitempty"`
	LogoURL      *string     `json:"logo_url,omitempty" validate:"omitempty,url"`
	Contacts     entity.JSON `json:"contacts,omitempty"`
	Address      *string     `json:"address,omitempty" validate:"omitempty,min=1"`
	Latitude     *float64    `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64    `json:"longitude,omitempty" validate:"omitempty,longitude"`
	OpeningHours entity.JSON `json:"opening_hours,omitempty"`
	Status       *string     `json:"status,omitempty" validate:"omitempty,oneof=active inactive temporarily_closed permanently_closed"`
}

// Response DTOs

type ClinicResponse struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Slug         string                 `json:"slug,omitempty"`
	Description  string                 `json:"description,omitempty"`
	LogoURL      string                 `json:"logo_url,omitempty"`
	Contacts     entity.JSON            `json:"contacts,omitempty"`
	Address      string                 `json:"address"`
	Latitude     *float64               `json:"latitude,omitempty"`
	Longitude    *float64               `json:"longitude,omitempty"`
	OpeningHours entity.JSON            `json:"opening_hours,omitempty"`
	Rating       *float64               `json:"rating,omitempty"`
	RatingCount  int                    `json:"rating_count"`
	Status       string                 `json:"status"`
	IsActive     bool                   `json:"is_active"`
	Doctors      []DoctorClinicResponse `json:"doctors,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type NearbyClinicResponse struct {
	ClinicResponse
	DistanceKM float64 `json:"distance_km"`
}

type ClinicListResponse struct {
	Clinics  []ClinicResponse `json:"clinics"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type NearbyClinicListResponse struct {
	Clinics []NearbyClinicResponse `json:"clinics"`
	Total   int                    `json:"total"`
}
