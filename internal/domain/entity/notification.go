package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus is the lifecycle of a logical notification
type NotificationStatus string

const (
	NotificationStatusPending   NotificationStatus = "pending"
	NotificationStatusSent      NotificationStatus = "sent"
	NotificationStatusDelivered NotificationStatus = "delivered"
	NotificationStatusFailed    NotificationStatus = "failed"
	NotificationStatusRead      NotificationStatus = "read"
)

// DeliveryStatus tracks the per-device outcome of a fan-out
type DeliveryStatus string

const (
	DeliveryStatusPending      DeliveryStatus = "pending"
	DeliveryStatusSent         DeliveryStatus = "sent"
	DeliveryStatusDelivered    DeliveryStatus = "delivered"
	DeliveryStatusFailed       DeliveryStatus = "failed"
	DeliveryStatusInvalidToken DeliveryStatus = "invalid_token"
)

// Notification types
const (
	NotificationTypeAppointmentReminder     = "appointment_reminder"
	NotificationTypeAppointmentConfirmation = "appointment_confirmation"
	NotificationTypeAppointmentCancelled    = "appointment_cancelled"
	NotificationTypePrescriptionReady       = "prescription_ready"
	NotificationTypePharmacyUpdate          = "pharmacy_update"
	NotificationTypeSystemAnnouncement      = "system_announcement"
	NotificationTypeOther                   = "other"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Notification is one logical message to a user, fanned out into one
// NotificationDelivery row per active device token.
//
// RetryCount/MaxRetries exist in the schema but no code path acts on them;
// there is no retry policy.
type Notification struct {
	ID               uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title            string             `gorm:"type:text;not null" json:"title"`
	Body             string             `gorm:"type:text;not null" json:"body"`
	NotificationType string             `gorm:"type:varchar(50);not null;index" json:"notification_type"`
	Priority         string             `gorm:"type:varchar(20);not null;default:'normal'" json:"priority"`
	Data             JSON               `gorm:"type:jsonb" json:"data,omitempty"`
	Status           NotificationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	SentAt           *time.Time         `gorm:"type:timestamptz" json:"sent_at,omitempty"`
	DeliveredAt      *time.Time         `gorm:"type:timestamptz" json:"delivered_at,omitempty"`
	ReadAt           *time.Time         `gorm:"type:timestamptz" json:"read_at,omitempty"`
	FailureReason    string             `gorm:"type:text" json:"failure_reason,omitempty"`
	RetryCount       int                `gorm:"not null;default:0" json:"retry_count"`
	MaxRetries       int                `gorm:"not null;default:3" json:"max_retries"`
	ScheduledFor     *time.Time         `gorm:"type:timestamptz" json:"scheduled_for,omitempty"`
	ExpiresAt        *time.Time         `gorm:"type:timestamptz" json:"expires_at,omitempty"`
	Metadata         JSON               `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt        time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Deliveries []NotificationDelivery `gorm:"foreignKey:NotificationID" json:"deliveries,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NotificationDelivery records the send/fail outcome of one notification on
// one device token, unique per (notification, token).
type NotificationDelivery struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NotificationID uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_notification_token" json:"notification_id"`
	PushTokenID    uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_notification_token" json:"push_token_id"`
	FCMMessageID   string         `gorm:"column:fcm_message_id;type:text" json:"fcm_message_id,omitempty"`
	DeliveryStatus DeliveryStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"delivery_status"`
	DeliveredAt    *time.Time     `gorm:"type:timestamptz" json:"delivered_at,omitempty"`
	FailureReason  string         `gorm:"type:text" json:"failure_reason,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (NotificationDelivery) TableName() string {
	return "notification_deliveries"
}
