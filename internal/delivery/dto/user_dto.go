package dto

import (
	"time"

	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateProfileRequest struct {
	FullName   *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=255"`
	GivenName  *string `json:"given_name,omitempty" validate:"omitempty,max=255"`
	FamilyName *string `json:"family_name,omitempty" validate:"omitempty,max=255"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	PhotoURL   *string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// UpdateRoleRequest changes a user's role. PharmacyID only applies to the
// pharmacy role and points the staff record at a pharmacy.
type UpdateRoleRequest struct {
	Role       string     `json:"role" validate:"required,oneof=patient doctor pharmacy admin"`
	PharmacyID *uuid.UUID `json:"pharmacy_id,omitempty"`
}

type UpdatePatientProfileRequest struct {
	BloodGroup            *string     `json:"blood_group,omitempty" validate:"omitempty,max=10"`
	DateOfBirth           *string     `json:"date_of_birth,omitempty"`
	Gender                *string     `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	AddressLine1          *string     `json:"address_line_1,omitempty"`
	AddressLine2          *string     `json:"address_line_2,omitempty"`
	City                  *string     `json:"city,omitempty" validate:"omitempty,max=100"`
	State                 *string     `json:"state,omitempty" validate:"omitempty,max=100"`
	Country               *string     `json:"country,omitempty" validate:"omitempty,max=100"`
	Pincode               *string     `json:"pincode,omitempty" validate:"omitempty,max=20"`
	EmergencyContactName  *string     `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string     `json:"emergency_contact_phone,omitempty" validate:"omitempty,max=20"`
	MedicalHistory        entity.JSON `json:"medical_history,omitempty"`
	CurrentMedications    entity.JSON `json:"current_medications,omitempty"`
	Allergies             entity.JSON `json:"allergies,omitempty"`
	ChronicConditions     entity.JSON `json:"chronic_conditions,omitempty"`
	InsuranceProvider     *string     `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber *string     `json:"insurance_policy_number,omitempty" validate:"omitempty,max=100"`
}

// Response DTOs

type UserResponse struct {
	ID            uuid.UUID             `json:"id"`
	FirebaseUID   string                `json:"firebase_uid"`
	Email         string                `json:"email"`
	EmailVerified bool                  `json:"email_verified"`
	AuthProvider  string                `json:"auth_provider"`
	FullName      string                `json:"full_name,omitempty"`
	GivenName     string                `json:"given_name,omitempty"`
	FamilyName    string                `json:"family_name,omitempty"`
	PhotoURL      string                `json:"photo_url,omitempty"`
	Phone         string                `json:"phone,omitempty"`
	Role          string                `json:"role"`
	IsActive      bool                  `json:"is_active"`
	IsOnboarded   bool                  `json:"is_onboarded"`
	LastLoginAt   *time.Time            `json:"last_login_at,omitempty"`
	Patient       *entity.Patient       `json:"patient,omitempty"`
	Admin         *entity.Admin         `json:"admin,omitempty"`
	PharmacyStaff *entity.PharmacyStaff `json:"pharmacy_staff,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
