package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform values accepted for push tokens
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
	PlatformWeb     = "web"
)

func ValidPlatform(p string) bool {
	return p == PlatformAndroid || p == PlatformIOS || p == PlatformWeb
}

// PushToken is a device messaging token, unique per (user, token).
// Registering a new token for a platform deactivates the user's other
// tokens on that platform.
type PushToken struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_push_tokens_user_token" json:"user_id"`
	FCMToken   string     `gorm:"column:fcm_token;type:text;not null;uniqueIndex:idx_push_tokens_user_token" json:"fcm_token"`
	Platform   string     `gorm:"type:varchar(10);not null" json:"platform"`
	IsActive   bool       `gorm:"not null;default:true;index" json:"is_active"`
	LastUsedAt *time.Time `gorm:"type:timestamptz" json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (PushToken) TableName() string {
	return "push_tokens"
}
