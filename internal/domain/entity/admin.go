package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the role record for users with role 'admin'
type Admin struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Department     string    `gorm:"type:varchar(100)" json:"department,omitempty"`
	AccessLevel    string    `gorm:"type:varchar(50);not null;default:'support'" json:"access_level"`
	JobTitle       string    `gorm:"type:varchar(100)" json:"job_title,omitempty"`
	Permissions    JSON      `gorm:"type:jsonb" json:"permissions,omitempty"`
	AllowedModules JSON      `gorm:"type:jsonb" json:"allowed_modules,omitempty"`
	LastLoginIP    string    `gorm:"type:varchar(45)" json:"last_login_ip,omitempty"`
	LoginCount     int       `gorm:"not null;default:0" json:"login_count"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}
