package entity

import (
	"time"

	"github.com/google/uuid"
)

// PharmacyStaff is the role record for users with role 'pharmacy'.
// PharmacyID is nullable: the owning pharmacy is assigned by a later
// explicit update after the role record is created.
type PharmacyStaff struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	PharmacyID       *uuid.UUID `gorm:"type:uuid;index" json:"pharmacy_id,omitempty"`
	Position         string     `gorm:"type:varchar(100)" json:"position,omitempty"`
	LicenseNumber    string     `gorm:"type:varchar(100)" json:"license_number,omitempty"`
	IsOwner          bool       `gorm:"not null;default:false;index" json:"is_owner"`
	IsPrimaryContact bool       `gorm:"not null;default:false" json:"is_primary_contact"`
	EmploymentType   string     `gorm:"type:varchar(50)" json:"employment_type,omitempty"`
	DateJoined       *time.Time `gorm:"type:date" json:"date_joined,omitempty"`
	DateLeft         *time.Time `gorm:"type:date" json:"date_left,omitempty"`
	Permissions      JSON       `gorm:"type:jsonb" json:"permissions,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PharmacyStaff) TableName() string {
	return "pharmacy_staff"
}
