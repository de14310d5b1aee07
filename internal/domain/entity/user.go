package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the single mutable role field on a user. Each role has a
// satellite profile table kept in sync by the user usecase.
type UserRole string

const (
	RolePatient  UserRole = "patient"
	RoleDoctor   UserRole = "doctor"
	RolePharmacy UserRole = "pharmacy"
	RoleAdmin    UserRole = "admin"
)

// ValidRoles lists every role accepted on user creation or role change.
var ValidRoles = []UserRole{RolePatient, RoleDoctor, RolePharmacy, RoleAdmin}

func (r UserRole) Valid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// User represents an identity record sourced from Firebase
type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirebaseUID   string     `gorm:"type:text;uniqueIndex;not null" json:"firebase_uid"`
	Email         string     `gorm:"type:text;not null;index" json:"email"`
	EmailVerified bool       `gorm:"not null;default:false" json:"email_verified"`
	AuthProvider  string     `gorm:"type:text;not null;default:'google'" json:"auth_provider"`
	FullName      string     `gorm:"type:text" json:"full_name,omitempty"`
	GivenName     string     `gorm:"type:text" json:"given_name,omitempty"`
	FamilyName    string     `gorm:"type:text" json:"family_name,omitempty"`
	PhotoURL      string     `gorm:"type:text" json:"photo_url,omitempty"`
	Phone         string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Role          UserRole   `gorm:"type:text;not null;default:'patient';index" json:"role"`
	IsActive      bool       `gorm:"not null;default:true;index" json:"is_active"`
	IsOnboarded   bool       `gorm:"not null;default:false" json:"is_onboarded"`
	LastLoginAt   *time.Time `gorm:"type:timestamptz" json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       *Patient       `gorm:"foreignKey:UserID" json:"patient,omitempty"`
	Admin         *Admin         `gorm:"foreignKey:UserID" json:"admin,omitempty"`
	PharmacyStaff *PharmacyStaff `gorm:"foreignKey:UserID" json:"pharmacy_staff,omitempty"`
}

func (User) TableName() string {
	return "users"
}
