package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pharmacy profile. Location and hours live in satellite tables.
type Pharmacy struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string     `gorm:"type:varchar(255);not null;index" json:"name"`
	Description      string     `gorm:"type:text" json:"description,omitempty"`
	Phone            string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email            string     `gorm:"type:text" json:"email,omitempty"`
	SupportsDelivery bool       `gorm:"not null;default:false" json:"supports_delivery"`
	SupportsPickup   bool       `gorm:"not null;default:true" json:"supports_pickup"`
	IsVerified       bool       `gorm:"not null;default:false;index" json:"is_verified"`
	VerifiedAt       *time.Time `gorm:"type:timestamptz" json:"verified_at,omitempty"`
	IsActive         bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Location *PharmacyLocation `gorm:"foreignKey:PharmacyID" json:"location,omitempty"`
	Hours    []PharmacyHours   `gorm:"foreignKey:PharmacyID" json:"hours,omitempty"`
}

func (Pharmacy) TableName() string {
	return "pharmacies"
}

// PharmacyLocation holds one geocoded address per pharmacy. The geo column
// is a PostGIS geography point maintained alongside latitude/longitude and
// backs the radius search.
type PharmacyLocation struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PharmacyID  uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"pharmacy_id"`
	AddressLine string          `gorm:"type:text;not null" json:"address_line"`
	City        string          `gorm:"type:varchar(100);not null;index" json:"city"`
	State       string          `gorm:"type:varchar(100)" json:"state,omitempty"`
	Country     string          `gorm:"type:varchar(100);not null" json:"country"`
	Pincode     string          `gorm:"type:varchar(20);index" json:"pincode,omitempty"`
	Latitude    decimal.Decimal `gorm:"type:decimal(10,8);not null" json:"latitude"`
	Longitude   decimal.Decimal `gorm:"type:decimal(11,8);not null" json:"longitude"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PharmacyLocation) TableName() string {
	return "pharmacy_locations"
}

// PharmacyHours is a per-day open/close schedule, unique per
// (pharmacy, day_of_week). day_of_week is 0=Sunday .. 6=Saturday.
type PharmacyHours struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PharmacyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pharmacy_hours_day" json:"pharmacy_id"`
	DayOfWeek int       `gorm:"not null;uniqueIndex:idx_pharmacy_hours_day" json:"day_of_week"`
	OpenTime  string    `gorm:"type:time" json:"open_time,omitempty"`
	CloseTime string    `gorm:"type:time" json:"close_time,omitempty"`
	IsClosed  bool      `gorm:"not null;default:false" json:"is_closed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PharmacyHours) TableName() string {
	return "pharmacy_hours"
}
