package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type PharmacyLocationRequest struct {
	AddressLine string  `json:"address_line" validate:"required,min=1"`
	City        string  `json:"city" validate:"required,max=100"`
	State       string  `json:"state,omitempty" validate:"omitempty,max=100"`
	Country     string  `json:"country" validate:"required,max=100"`
	Pincode     string  `json:"pincode,omitempty" validate:"omitempty,max=20"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
}

type PharmacyHoursRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
	IsClosed  bool   `json:"is_closed"`
}

type CreatePharmacyRequest struct {
	Name             string                   `json:"name" validate:"required,min=1,max=255"`
	Description      string                   `json:"description,omitempty"`
	Phone            string                   `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email            string                   `json:"email,omitempty" validate:"omitempty,email"`
	SupportsDelivery bool                     `json:"supports_delivery"`
	SupportsPickup   bool                     `json:"supports_pickup"`
	Location         *PharmacyLocationRequest `json:"location" validate:"required"`
	Hours            []PharmacyHoursRequest   `json:"hours,omitempty" validate:"omitempty,max=7,dive"`
}

type UpdatePharmacyRequest struct {
	Name             *string                  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description      *string                  `json:"description,omitempty"`
	Phone            *string                  `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email            *string                  `json:"email,omitempty" validate:"omitempty,email"`
	SupportsDelivery *bool                    `json:"supports_delivery,omitempty"`
	SupportsPickup   *bool                    `json:"supports_pickup,omitempty"`
	Location         *PharmacyLocationRequest `json:"location,omitempty"`
	Hours            []PharmacyHoursRequest   `json:"hours,omitempty" validate:"omitempty,max=7,dive"`
}

// Response DTOs

type PharmacyLocationResponse struct {
	AddressLine string  `json:"address_line"`
	City        string  `json:"city"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country"`
	Pincode     string  `json:"pincode,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type PharmacyHoursResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
	IsClosed  bool   `json:"is_closed"`
}

type PharmacyResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Name             string                    `json:"name"`
	Description      string                    `json:"description,omitempty"`
	Phone            string                    `json:"phone,omitempty"`
	Email            string                    `json:"email,omitempty"`
	SupportsDelivery bool                      `json:"supports_delivery"`
	SupportsPickup   bool                      `json:"supports_pickup"`
	IsVerified       bool                      `json:"is_verified"`
	VerifiedAt       *time.Time                `json:"verified_at,omitempty"`
	IsActive         bool                      `json:"is_active"`
	Location         *PharmacyLocationResponse `json:"location,omitempty"`
	Hours            []PharmacyHoursResponse   `json:"hours,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

type NearbyPharmacyResponse struct {
	PharmacyResponse
	DistanceKM float64 `json:"distance_km"`
}

type PharmacyListResponse struct {
	Pharmacies []PharmacyResponse `json:"pharmacies"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

type NearbyPharmacyListResponse struct {
	Pharmacies []NearbyPharmacyResponse `json:"pharmacies"`
	Total      int                      `json:"total"`
}
