package repository

import (
	"medico-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Notification, error)
	Update(db *gorm.DB, notification *entity.Notification) error
	MarkRead(db *gorm.DB, id, userID uuid.UUID) (int64, error)
	List(db *gorm.DB, filter entity.NotificationFilter) ([]entity.Notification, int64, error)
	CountByStatus(db *gorm.DB) (map[string]int64, error)

	CreateDeliveries(db *gorm.DB, deliveries []entity.NotificationDelivery) error
	UpdateDelivery(db *gorm.DB, delivery *entity.NotificationDelivery) error
	ListDeliveries(db *gorm.DB, notificationID uuid.UUID) ([]entity.NotificationDelivery, error)
}
