package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClinicStatus represents the lifecycle status of a clinic
type ClinicStatus string

const (
	ClinicStatusActive            ClinicStatus = "active"
	ClinicStatusInactive          ClinicStatus = "inactive"
	ClinicStatusTemporarilyClosed ClinicStatus = "temporarily_closed"
	ClinicStatusPermanentlyClosed ClinicStatus = "permanently_closed"
)

// Clinic represents a physical or virtual practice location
type Clinic struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string           `gorm:"type:varchar(255);not null;index" json:"name"`
	Slug         string           `gorm:"type:varchar(255);uniqueIndex" json:"slug,omitempty"`
	Description  string           `gorm:"type:text" json:"description,omitempty"`
	LogoURL      string           `gorm:"type:text" json:"logo_url,omitempty"`
	Contacts     JSON             `gorm:"type:jsonb" json:"contacts,omitempty"`
	Address      string           `gorm:"type:text;not null" json:"address"`
	Latitude     *decimal.Decimal `gorm:"type:decimal(10,8)" json:"latitude,omitempty"`
	Longitude    *decimal.Decimal `gorm:"type:decimal(11,8)" json:"longitude,omitempty"`
	OpeningHours JSON             `gorm:"type:jsonb" json:"opening_hours,omitempty"`
	Rating       *decimal.Decimal `gorm:"type:decimal(3,2)" json:"rating,omitempty"`
	RatingCount  int              `gorm:"not null;default:0" json:"rating_count"`
	Status       ClinicStatus     `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	IsActive     bool             `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    *time.Time       `gorm:"type:timestamptz" json:"deleted_at,omitempty"`

	// Relationships
	Doctors []DoctorClinic `gorm:"foreignKey:ClinicID" json:"doctors,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}
